package trip

import (
	"fmt"
	"time"

	"trucklog-backend/internal/audit"
	"trucklog-backend/internal/auth"
	"trucklog-backend/internal/database"
	"trucklog-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type TripRequest struct {
	Date             string  `json:"date"` // "2025-12-09"
	Customer         string  `json:"customer"`
	QuarryName       string  `json:"quarry_name"`
	TransporterName  string  `json:"transporter_name"`
	RoyaltyOwnerName string  `json:"royalty_owner_name"`
	VehicleNo        string  `json:"vehicle_no"`
	Material         string  `json:"material"`
	NetWeight        float64 `json:"net_weight"`
	Revenue          float64 `json:"revenue"`
	MaterialCost     float64 `json:"material_cost"`
	TransportCost    float64 `json:"transport_cost"`
	RoyaltyCost      float64 `json:"royalty_cost"`
}

type TripResponse struct {
	ID               uint    `json:"id"`
	Date             string  `json:"date"`
	Customer         string  `json:"customer"`
	QuarryName       string  `json:"quarry_name"`
	TransporterName  string  `json:"transporter_name"`
	RoyaltyOwnerName string  `json:"royalty_owner_name"`
	VehicleNo        string  `json:"vehicle_no"`
	Material         string  `json:"material"`
	NetWeight        float64 `json:"net_weight"`
	Revenue          float64 `json:"revenue"`
	MaterialCost     float64 `json:"material_cost"`
	TransportCost    float64 `json:"transport_cost"`
	RoyaltyCost      float64 `json:"royalty_cost"`
	ImportBatchID    string  `json:"import_batch_id,omitempty"`
}

func toResponse(t models.Trip) TripResponse {
	return TripResponse{
		ID:               t.ID,
		Date:             t.Date.Format("2006-01-02"),
		Customer:         t.Customer,
		QuarryName:       t.QuarryName,
		TransporterName:  t.TransporterName,
		RoyaltyOwnerName: t.RoyaltyOwnerName,
		VehicleNo:        t.VehicleNo,
		Material:         t.Material,
		NetWeight:        t.NetWeight,
		Revenue:          t.Revenue,
		MaterialCost:     t.MaterialCost,
		TransportCost:    t.TransportCost,
		RoyaltyCost:      t.RoyaltyCost,
		ImportBatchID:    t.ImportBatchID,
	}
}

func getUserInfo(c *fiber.Ctx) (uint, string, error) {
	userIDVal := c.Locals(auth.CtxUserIDKey)
	userID, ok := userIDVal.(uint)
	if !ok {
		return 0, "", fiber.NewError(fiber.StatusForbidden, "Could not read user")
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return 0, "", fiber.NewError(fiber.StatusInternalServerError, "User not found")
	}

	return userID, user.Name, nil
}

// POST /api/trips
func CreateTripHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body TripRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		t, err := tripFromRequest(body)
		if err != nil {
			return err
		}

		if err := database.DB.Create(&t).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create trip")
		}

		userID, userName, uerr := getUserInfo(c)
		if uerr == nil {
			if logErr := audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "trip",
				EntityID:    t.ID,
				Action:      models.AuditActionCreate,
				Description: fmt.Sprintf("Trip added: %s %s - %.2f MT", t.Date.Format("2006-01-02"), t.VehicleNo, t.NetWeight),
				Before:      nil,
				After:       t,
			}); logErr != nil {
				fmt.Printf("Could not write audit log: %v\n", logErr)
			}
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(t))
	}
}

// GET /api/trips?from=2025-12-01&to=2025-12-31&customer=...&vehicle_no=...
func ListTripsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Trip{})

		if fromStr := c.Query("from"); fromStr != "" {
			from, err := time.Parse("2006-01-02", fromStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid 'from' date")
			}
			dbq = dbq.Where("date >= ?", from)
		}
		if toStr := c.Query("to"); toStr != "" {
			to, err := time.Parse("2006-01-02", toStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid 'to' date")
			}
			dbq = dbq.Where("date <= ?", to)
		}
		if customer := c.Query("customer"); customer != "" {
			dbq = dbq.Where("customer = ?", customer)
		}
		if quarry := c.Query("quarry"); quarry != "" {
			dbq = dbq.Where("quarry_name = ?", quarry)
		}
		if vehicleNo := c.Query("vehicle_no"); vehicleNo != "" {
			dbq = dbq.Where("vehicle_no = ?", vehicleNo)
		}

		var trips []models.Trip
		if err := dbq.Order("date asc, id asc").Find(&trips).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list trips")
		}

		resp := make([]TripResponse, 0, len(trips))
		for _, t := range trips {
			resp = append(resp, toResponse(t))
		}

		return c.JSON(resp)
	}
}

// GET /api/trips/:id
func GetTripHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var t models.Trip
		if err := database.DB.First(&t, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Trip not found")
		}

		return c.JSON(toResponse(t))
	}
}

// PUT /api/trips/:id
func UpdateTripHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var t models.Trip
		if err := database.DB.First(&t, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Trip not found")
		}

		var body TripRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		updated, err := tripFromRequest(body)
		if err != nil {
			return err
		}

		oldTrip := t

		t.Date = updated.Date
		t.Customer = updated.Customer
		t.QuarryName = updated.QuarryName
		t.TransporterName = updated.TransporterName
		t.RoyaltyOwnerName = updated.RoyaltyOwnerName
		t.VehicleNo = updated.VehicleNo
		t.Material = updated.Material
		t.NetWeight = updated.NetWeight
		t.Tonnage = updated.Tonnage
		t.Revenue = updated.Revenue
		t.MaterialCost = updated.MaterialCost
		t.TransportCost = updated.TransportCost
		t.RoyaltyCost = updated.RoyaltyCost

		if err := database.DB.Save(&t).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update trip")
		}

		userID, userName, uerr := getUserInfo(c)
		if uerr == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "trip",
				EntityID:    t.ID,
				Action:      models.AuditActionUpdate,
				Description: fmt.Sprintf("Trip updated: %s %s", t.Date.Format("2006-01-02"), t.VehicleNo),
				Before:      oldTrip,
				After:       t,
			})
		}

		return c.JSON(toResponse(t))
	}
}

// DELETE /api/trips/:id
func DeleteTripHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var t models.Trip
		if err := database.DB.First(&t, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Trip not found")
		}

		// advances reference the trip
		var count int64
		database.DB.Model(&models.Advance{}).Where("trip_id = ?", id).Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Advances exist against this trip, delete them first")
		}

		if err := database.DB.Delete(&t).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete trip")
		}

		userID, userName, uerr := getUserInfo(c)
		if uerr == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "trip",
				EntityID:    t.ID,
				Action:      models.AuditActionDelete,
				Description: fmt.Sprintf("Trip deleted: %s %s", t.Date.Format("2006-01-02"), t.VehicleNo),
				Before:      t,
				After:       nil,
			})
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
