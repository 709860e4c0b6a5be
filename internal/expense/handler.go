package expense

import (
	"fmt"
	"time"

	"trucklog-backend/internal/audit"
	"trucklog-backend/internal/auth"
	"trucklog-backend/internal/database"
	"trucklog-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type DailyExpenseRequest struct {
	Type          models.EntryType `json:"type"` // "DEBIT" | "CREDIT"
	RatePartyType models.PartyType `json:"rate_party_type"`
	RatePartyID   *uint            `json:"rate_party_id"`
	Amount        float64          `json:"amount"`
	Date          string           `json:"date"`
	Description   string           `json:"description"`
}

type DailyExpenseResponse struct {
	ID            uint             `json:"id"`
	Type          models.EntryType `json:"type"`
	RatePartyType models.PartyType `json:"rate_party_type"`
	RatePartyID   *uint            `json:"rate_party_id,omitempty"`
	Amount        float64          `json:"amount"`
	Date          string           `json:"date"`
	Description   string           `json:"description"`
}

func toResponse(e models.DailyExpense) DailyExpenseResponse {
	return DailyExpenseResponse{
		ID:            e.ID,
		Type:          e.Type,
		RatePartyType: e.RatePartyType,
		RatePartyID:   e.RatePartyID,
		Amount:        e.Amount,
		Date:          e.Date.Format("2006-01-02"),
		Description:   e.Description,
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

func validPartyType(pt models.PartyType) bool {
	switch pt {
	case models.PartyTypeCustomer, models.PartyTypeQuarry, models.PartyTypeTransport, models.PartyTypeRoyalty:
		return true
	}
	return false
}

func validateExpense(body *DailyExpenseRequest) error {
	if body.Amount <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "amount must be greater than 0")
	}
	switch body.Type {
	case models.EntryTypeDebit, models.EntryTypeCredit:
	default:
		return fiber.NewError(fiber.StatusBadRequest, "type must be 'DEBIT' or 'CREDIT'")
	}
	if !validPartyType(body.RatePartyType) {
		return fiber.NewError(fiber.StatusBadRequest, "rate_party_type is invalid")
	}
	return nil
}

// POST /api/daily-expenses
func CreateDailyExpenseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body DailyExpenseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if err := validateExpense(&body); err != nil {
			return err
		}

		date := time.Now()
		if body.Date != "" {
			parsed, err := time.Parse("2006-01-02", body.Date)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Date must be 'YYYY-MM-DD'")
			}
			date = parsed
		}

		e := models.DailyExpense{
			Type:          body.Type,
			RatePartyType: body.RatePartyType,
			RatePartyID:   body.RatePartyID,
			Amount:        body.Amount,
			Date:          date,
			Description:   body.Description,
		}

		if err := database.DB.Create(&e).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create expense")
		}

		userID, userName, uerr := getUserInfo(c)
		if uerr == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "daily_expense",
				EntityID:    e.ID,
				Action:      models.AuditActionCreate,
				Description: fmt.Sprintf("%s expense: %.2f (%s)", e.Type, e.Amount, e.RatePartyType),
				Before:      nil,
				After:       e,
			})
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(e))
	}
}

// GET /api/daily-expenses?from=...&to=...&type=DEBIT&rate_party_type=...&rate_party_id=...
func ListDailyExpensesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.DailyExpense{})

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
		if typeStr := c.Query("type"); typeStr != "" {
			dbq = dbq.Where("type = ?", typeStr)
		}
		if ptStr := c.Query("rate_party_type"); ptStr != "" {
			dbq = dbq.Where("rate_party_type = ?", ptStr)
		}
		if pidStr := c.Query("rate_party_id"); pidStr != "" {
			var pid uint
			if _, err := fmt.Sscan(pidStr, &pid); err != nil || pid == 0 {
				return fiber.NewError(fiber.StatusBadRequest, "rate_party_id is invalid")
			}
			dbq = dbq.Where("rate_party_id = ?", pid)
		}

		var expenses []models.DailyExpense
		if err := dbq.Order("date asc, id asc").Find(&expenses).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list expenses")
		}

		resp := make([]DailyExpenseResponse, 0, len(expenses))
		for _, e := range expenses {
			resp = append(resp, toResponse(e))
		}

		return c.JSON(resp)
	}
}

// PUT /api/daily-expenses/:id
func UpdateDailyExpenseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var e models.DailyExpense
		if err := database.DB.First(&e, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Expense not found")
		}

		var body DailyExpenseRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if err := validateExpense(&body); err != nil {
			return err
		}

		date := e.Date
		if body.Date != "" {
			parsed, err := time.Parse("2006-01-02", body.Date)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Date must be 'YYYY-MM-DD'")
			}
			date = parsed
		}

		oldExpense := e

		e.Type = body.Type
		e.RatePartyType = body.RatePartyType
		e.RatePartyID = body.RatePartyID
		e.Amount = body.Amount
		e.Date = date
		e.Description = body.Description

		if err := database.DB.Save(&e).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update expense")
		}

		userID, userName, uerr := getUserInfo(c)
		if uerr == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "daily_expense",
				EntityID:    e.ID,
				Action:      models.AuditActionUpdate,
				Description: fmt.Sprintf("Expense updated: %.2f", e.Amount),
				Before:      oldExpense,
				After:       e,
			})
		}

		return c.JSON(toResponse(e))
	}
}

// DELETE /api/daily-expenses/:id
func DeleteDailyExpenseHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var e models.DailyExpense
		if err := database.DB.First(&e, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Expense not found")
		}

		if err := database.DB.Delete(&e).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete expense")
		}

		userID, userName, uerr := getUserInfo(c)
		if uerr == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "daily_expense",
				EntityID:    e.ID,
				Action:      models.AuditActionDelete,
				Description: fmt.Sprintf("Expense deleted: %s %.2f", e.Type, e.Amount),
				Before:      e,
				After:       nil,
			})
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
