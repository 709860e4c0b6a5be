package master

import (
	"trucklog-backend/internal/database"
	"trucklog-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Legacy master lists predate the id-keyed records and are kept read-only:
// old trips still join against them by free-text name.

// GET /api/master/legacy/customers
func ListLegacyCustomersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var customers []models.Customer
		if err := database.DB.Order("name asc").Find(&customers).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list legacy customers")
		}
		return c.JSON(customers)
	}
}

// GET /api/master/legacy/quarries
func ListLegacyQuarriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var quarries []models.Quarry
		if err := database.DB.Order("quarry_name asc").Find(&quarries).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list legacy quarries")
		}
		return c.JSON(quarries)
	}
}

// GET /api/master/legacy/royalty-owners
func ListLegacyRoyaltyOwnersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var owners []models.RoyaltyOwner
		if err := database.DB.Order("owner_name asc").Find(&owners).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list legacy royalty owners")
		}
		return c.JSON(owners)
	}
}
