package master

import (
	"trucklog-backend/internal/database"
	"trucklog-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MaterialRequest struct {
	Name string `json:"name"`
	Unit string `json:"unit"`
}

// POST /api/master/materials
func CreateMaterialHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body MaterialRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name is required")
		}

		var existing models.Material
		if err := database.DB.Where("name = ?", body.Name).First(&existing).Error; err == nil {
			return fiber.NewError(fiber.StatusConflict, "A material with this name already exists")
		} else if err != gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not check material name")
		}

		m := models.Material{Name: body.Name, Unit: body.Unit}
		if m.Unit == "" {
			m.Unit = "ton"
		}

		if err := database.DB.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create material")
		}
		return c.Status(fiber.StatusCreated).JSON(m)
	}
}

// GET /api/master/materials
func ListMaterialsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var materials []models.Material
		if err := database.DB.Order("name asc").Find(&materials).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list materials")
		}
		return c.JSON(materials)
	}
}

// PUT /api/master/materials/:id
func UpdateMaterialHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var m models.Material
		if err := database.DB.First(&m, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Material not found")
		}

		var body MaterialRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Name != "" {
			m.Name = body.Name
		}
		if body.Unit != "" {
			m.Unit = body.Unit
		}

		if err := database.DB.Save(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update material")
		}
		return c.JSON(m)
	}
}

// DELETE /api/master/materials/:id
func DeleteMaterialHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var m models.Material
		if err := database.DB.First(&m, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Material not found")
		}

		var cardCount int64
		if err := database.DB.Model(&models.RateCard{}).Where("material_id = ?", m.ID).Count(&cardCount).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not check rate cards")
		}
		if cardCount > 0 {
			return fiber.NewError(fiber.StatusConflict, "Material is referenced by rate cards and cannot be deleted")
		}

		if err := database.DB.Delete(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete material")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
