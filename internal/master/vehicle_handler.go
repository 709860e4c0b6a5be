package master

import (
	"strings"

	"trucklog-backend/internal/database"
	"trucklog-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type VehicleRequest struct {
	RegistrationNo string  `json:"registration_no"`
	OwnerName      string  `json:"owner_name"`
	CapacityTons   float64 `json:"capacity_tons"`
}

// POST /api/master/vehicles
func CreateVehicleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body VehicleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		regNo := strings.ToUpper(strings.TrimSpace(body.RegistrationNo))
		if regNo == "" {
			return fiber.NewError(fiber.StatusBadRequest, "registration_no is required")
		}
		if body.CapacityTons < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "capacity_tons must not be negative")
		}

		var existing models.Vehicle
		if err := database.DB.Where("registration_no = ?", regNo).First(&existing).Error; err == nil {
			return fiber.NewError(fiber.StatusConflict, "A vehicle with this registration already exists")
		} else if err != gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not check registration")
		}

		v := models.Vehicle{
			RegistrationNo: regNo,
			OwnerName:      strings.TrimSpace(body.OwnerName),
			CapacityTons:   body.CapacityTons,
		}

		if err := database.DB.Create(&v).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create vehicle")
		}
		return c.Status(fiber.StatusCreated).JSON(v)
	}
}

// GET /api/master/vehicles?owner=...
func ListVehiclesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Vehicle{})
		if owner := c.Query("owner"); owner != "" {
			dbq = dbq.Where("owner_name ILIKE ?", "%"+owner+"%")
		}

		var vehicles []models.Vehicle
		if err := dbq.Order("registration_no asc").Find(&vehicles).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list vehicles")
		}
		return c.JSON(vehicles)
	}
}

// PUT /api/master/vehicles/:id
func UpdateVehicleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var v models.Vehicle
		if err := database.DB.First(&v, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Vehicle not found")
		}

		var body VehicleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.RegistrationNo != "" {
			v.RegistrationNo = strings.ToUpper(strings.TrimSpace(body.RegistrationNo))
		}
		v.OwnerName = strings.TrimSpace(body.OwnerName)
		if body.CapacityTons < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "capacity_tons must not be negative")
		}
		v.CapacityTons = body.CapacityTons

		if err := database.DB.Save(&v).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update vehicle")
		}
		return c.JSON(v)
	}
}

// DELETE /api/master/vehicles/:id
func DeleteVehicleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var v models.Vehicle
		if err := database.DB.First(&v, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Vehicle not found")
		}

		var tripCount int64
		if err := database.DB.Model(&models.Trip{}).Where("vehicle_no = ?", v.RegistrationNo).Count(&tripCount).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not check trips")
		}
		if tripCount > 0 {
			return fiber.NewError(fiber.StatusConflict, "Vehicle has recorded trips and cannot be deleted")
		}

		if err := database.DB.Delete(&v).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete vehicle")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
