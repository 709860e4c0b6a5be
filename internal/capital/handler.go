package capital

import (
	"fmt"
	"time"

	"trucklog-backend/internal/audit"
	"trucklog-backend/internal/auth"
	"trucklog-backend/internal/database"
	"trucklog-backend/internal/ledger"
	"trucklog-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type LedgerEntryRequest struct {
	FromAccount string           `json:"from_account"`
	ToAccount   string           `json:"to_account"`
	Type        models.EntryType `json:"type"` // "DEBIT" | "CREDIT"
	Amount      float64          `json:"amount"`
	Date        string           `json:"date"`
	Description string           `json:"description"`
}

type LedgerEntryResponse struct {
	ID          uint             `json:"id"`
	FromAccount string           `json:"from_account"`
	ToAccount   string           `json:"to_account"`
	Type        models.EntryType `json:"type"`
	Amount      float64          `json:"amount"`
	Date        string           `json:"date"`
	Description string           `json:"description"`
}

func toEntryResponse(e models.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:          e.ID,
		FromAccount: e.FromAccount,
		ToAccount:   e.ToAccount,
		Type:        e.Type,
		Amount:      e.Amount,
		Date:        e.Date.Format("2006-01-02"),
		Description: e.Description,
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

func validateEntry(body *LedgerEntryRequest) error {
	if body.FromAccount == "" || body.ToAccount == "" {
		return fiber.NewError(fiber.StatusBadRequest, "from_account and to_account are required")
	}
	if body.Amount <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "amount must be greater than 0")
	}
	switch body.Type {
	case models.EntryTypeDebit, models.EntryTypeCredit:
	default:
		return fiber.NewError(fiber.StatusBadRequest, "type must be 'DEBIT' or 'CREDIT'")
	}
	return nil
}

// POST /api/ledger-entries
func CreateLedgerEntryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LedgerEntryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if err := validateEntry(&body); err != nil {
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

		e := models.LedgerEntry{
			FromAccount: body.FromAccount,
			ToAccount:   body.ToAccount,
			Type:        body.Type,
			Amount:      body.Amount,
			Date:        date,
			Description: body.Description,
		}

		if err := database.DB.Create(&e).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create ledger entry")
		}

		userID, userName, uerr := getUserInfo(c)
		if uerr == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "ledger_entry",
				EntityID:    e.ID,
				Action:      models.AuditActionCreate,
				Description: fmt.Sprintf("%s: %s -> %s %.2f", e.Type, e.FromAccount, e.ToAccount, e.Amount),
				Before:      nil,
				After:       e,
			})
		}

		return c.Status(fiber.StatusCreated).JSON(toEntryResponse(e))
	}
}

// GET /api/ledger-entries?from=...&to=...&account=...
func ListLedgerEntriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.LedgerEntry{})

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
		if account := c.Query("account"); account != "" {
			dbq = dbq.Where("from_account = ? OR to_account = ?", account, account)
		}

		var entries []models.LedgerEntry
		if err := dbq.Order("date asc, id asc").Find(&entries).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list ledger entries")
		}

		resp := make([]LedgerEntryResponse, 0, len(entries))
		for _, e := range entries {
			resp = append(resp, toEntryResponse(e))
		}

		return c.JSON(resp)
	}
}

// PUT /api/ledger-entries/:id
func UpdateLedgerEntryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var e models.LedgerEntry
		if err := database.DB.First(&e, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ledger entry not found")
		}

		var body LedgerEntryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if err := validateEntry(&body); err != nil {
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

		oldEntry := e

		e.FromAccount = body.FromAccount
		e.ToAccount = body.ToAccount
		e.Type = body.Type
		e.Amount = body.Amount
		e.Date = date
		e.Description = body.Description

		if err := database.DB.Save(&e).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update ledger entry")
		}

		userID, userName, uerr := getUserInfo(c)
		if uerr == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "ledger_entry",
				EntityID:    e.ID,
				Action:      models.AuditActionUpdate,
				Description: fmt.Sprintf("Ledger entry updated: %.2f", e.Amount),
				Before:      oldEntry,
				After:       e,
			})
		}

		return c.JSON(toEntryResponse(e))
	}
}

// DELETE /api/ledger-entries/:id
func DeleteLedgerEntryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var e models.LedgerEntry
		if err := database.DB.First(&e, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ledger entry not found")
		}

		if err := database.DB.Delete(&e).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete ledger entry")
		}

		userID, userName, uerr := getUserInfo(c)
		if uerr == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "ledger_entry",
				EntityID:    e.ID,
				Action:      models.AuditActionDelete,
				Description: fmt.Sprintf("Ledger entry deleted: %s -> %s %.2f", e.FromAccount, e.ToAccount, e.Amount),
				Before:      e,
				After:       nil,
			})
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GET /api/capital/balances
func CapitalBalancesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var accounts []models.CapitalAccount
		if err := database.DB.Where("is_active = ?", true).Order("name asc").Find(&accounts).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list capital accounts")
		}

		var entries []models.LedgerEntry
		if err := database.DB.Find(&entries).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load ledger entries")
		}

		tracked := make([]string, 0, len(accounts))
		for _, a := range accounts {
			tracked = append(tracked, a.Name)
		}

		balances := ledger.AccountBalances(tracked, entries)

		type accountBalance struct {
			Name    string             `json:"name"`
			Kind    models.AccountKind `json:"kind"`
			Balance float64            `json:"balance"`
		}
		resp := make([]accountBalance, 0, len(accounts))
		for _, a := range accounts {
			resp = append(resp, accountBalance{Name: a.Name, Kind: a.Kind, Balance: balances[a.Name]})
		}

		return c.JSON(resp)
	}
}
