package payment

import (
	"fmt"
	"time"

	"trucklog-backend/internal/audit"
	"trucklog-backend/internal/database"
	"trucklog-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type AdvanceRequest struct {
	TripID        uint             `json:"trip_id"`
	RatePartyType models.PartyType `json:"rate_party_type"`
	RatePartyID   *uint            `json:"rate_party_id"`
	Amount        float64          `json:"amount"`
	Date          string           `json:"date"`
	Description   string           `json:"description"`
}

type AdvanceResponse struct {
	ID            uint             `json:"id"`
	TripID        uint             `json:"trip_id"`
	RatePartyType models.PartyType `json:"rate_party_type"`
	RatePartyID   *uint            `json:"rate_party_id,omitempty"`
	Amount        float64          `json:"amount"`
	Date          string           `json:"date"`
	Description   string           `json:"description"`
}

func toAdvanceResponse(a models.Advance) AdvanceResponse {
	return AdvanceResponse{
		ID:            a.ID,
		TripID:        a.TripID,
		RatePartyType: a.RatePartyType,
		RatePartyID:   a.RatePartyID,
		Amount:        a.Amount,
		Date:          a.Date.Format("2006-01-02"),
		Description:   a.Description,
	}
}

// POST /api/advances
func CreateAdvanceHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body AdvanceRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Amount <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "amount must be greater than 0")
		}
		if !validPartyType(body.RatePartyType) {
			return fiber.NewError(fiber.StatusBadRequest, "rate_party_type is invalid")
		}

		var trip models.Trip
		if err := database.DB.First(&trip, "id = ?", body.TripID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Trip not found")
		}

		date, err := parseDateOrToday(body.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Date must be 'YYYY-MM-DD'")
		}

		a := models.Advance{
			TripID:        body.TripID,
			RatePartyType: body.RatePartyType,
			RatePartyID:   body.RatePartyID,
			Amount:        body.Amount,
			Date:          date,
			Description:   body.Description,
		}

		if err := database.DB.Create(&a).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create advance")
		}

		userID, userName, uerr := getUserInfo(c)
		if uerr == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "advance",
				EntityID:    a.ID,
				Action:      models.AuditActionCreate,
				Description: fmt.Sprintf("Advance of %.2f against trip #%d", a.Amount, a.TripID),
				Before:      nil,
				After:       a,
			})
		}

		return c.Status(fiber.StatusCreated).JSON(toAdvanceResponse(a))
	}
}

// GET /api/advances?trip_id=...&from=...&to=...
func ListAdvancesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Advance{})

		if tripIDStr := c.Query("trip_id"); tripIDStr != "" {
			var tripID uint
			if _, err := fmt.Sscan(tripIDStr, &tripID); err != nil || tripID == 0 {
				return fiber.NewError(fiber.StatusBadRequest, "trip_id is invalid")
			}
			dbq = dbq.Where("trip_id = ?", tripID)
		}
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

		var advances []models.Advance
		if err := dbq.Order("date asc, id asc").Find(&advances).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list advances")
		}

		resp := make([]AdvanceResponse, 0, len(advances))
		for _, a := range advances {
			resp = append(resp, toAdvanceResponse(a))
		}

		return c.JSON(resp)
	}
}

// PUT /api/advances/:id
func UpdateAdvanceHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var a models.Advance
		if err := database.DB.First(&a, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Advance not found")
		}

		var body AdvanceRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Amount <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "amount must be greater than 0")
		}
		if !validPartyType(body.RatePartyType) {
			return fiber.NewError(fiber.StatusBadRequest, "rate_party_type is invalid")
		}

		date, err := parseDateOrToday(body.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Date must be 'YYYY-MM-DD'")
		}

		oldAdvance := a

		a.TripID = body.TripID
		a.RatePartyType = body.RatePartyType
		a.RatePartyID = body.RatePartyID
		a.Amount = body.Amount
		a.Date = date
		a.Description = body.Description

		if err := database.DB.Save(&a).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update advance")
		}

		userID, userName, uerr := getUserInfo(c)
		if uerr == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "advance",
				EntityID:    a.ID,
				Action:      models.AuditActionUpdate,
				Description: fmt.Sprintf("Advance updated: %.2f", a.Amount),
				Before:      oldAdvance,
				After:       a,
			})
		}

		return c.JSON(toAdvanceResponse(a))
	}
}

// DELETE /api/advances/:id
func DeleteAdvanceHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var a models.Advance
		if err := database.DB.First(&a, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Advance not found")
		}

		if err := database.DB.Delete(&a).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete advance")
		}

		userID, userName, uerr := getUserInfo(c)
		if uerr == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "advance",
				EntityID:    a.ID,
				Action:      models.AuditActionDelete,
				Description: fmt.Sprintf("Advance deleted: %.2f against trip #%d", a.Amount, a.TripID),
				Before:      a,
				After:       nil,
			})
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
