package capital

import (
	"trucklog-backend/internal/database"
	"trucklog-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CapitalAccountRequest struct {
	Name     string             `json:"name"`
	Kind     models.AccountKind `json:"kind"`
	IsActive *bool              `json:"is_active"`
}

func validKind(k models.AccountKind) bool {
	switch k {
	case models.AccountKindBank, models.AccountKindCapitalLoans, models.AccountKindInvestment, models.AccountKindPersonal:
		return true
	}
	return false
}

// POST /api/capital/accounts
func CreateCapitalAccountHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CapitalAccountRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name is required")
		}
		if !validKind(body.Kind) {
			return fiber.NewError(fiber.StatusBadRequest, "kind must be one of 'bank', 'capital_loans', 'investment', 'personal'")
		}

		var existing models.CapitalAccount
		if err := database.DB.Where("name = ?", body.Name).First(&existing).Error; err == nil {
			return fiber.NewError(fiber.StatusConflict, "An account with this name already exists")
		} else if err != gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not check account name")
		}

		account := models.CapitalAccount{Name: body.Name, Kind: body.Kind, IsActive: true}
		if body.IsActive != nil {
			account.IsActive = *body.IsActive
		}

		if err := database.DB.Create(&account).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create account")
		}

		return c.Status(fiber.StatusCreated).JSON(account)
	}
}

// GET /api/capital/accounts
func ListCapitalAccountsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.CapitalAccount{})
		if c.Query("active") == "true" {
			dbq = dbq.Where("is_active = ?", true)
		}

		var accounts []models.CapitalAccount
		if err := dbq.Order("name asc").Find(&accounts).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list accounts")
		}

		return c.JSON(accounts)
	}
}

// PUT /api/capital/accounts/:id
func UpdateCapitalAccountHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var account models.CapitalAccount
		if err := database.DB.First(&account, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Account not found")
		}

		var body CapitalAccountRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Name != "" {
			account.Name = body.Name
		}
		if body.Kind != "" {
			if !validKind(body.Kind) {
				return fiber.NewError(fiber.StatusBadRequest, "kind is invalid")
			}
			account.Kind = body.Kind
		}
		if body.IsActive != nil {
			account.IsActive = *body.IsActive
		}

		if err := database.DB.Save(&account).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update account")
		}

		return c.JSON(account)
	}
}

// DELETE /api/capital/accounts/:id - deactivates rather than removes, so
// historical ledger entries keep resolving.
func DeleteCapitalAccountHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var account models.CapitalAccount
		if err := database.DB.First(&account, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Account not found")
		}

		account.IsActive = false
		if err := database.DB.Save(&account).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not deactivate account")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
