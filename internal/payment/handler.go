package payment

import (
	"fmt"
	"time"

	"trucklog-backend/internal/audit"
	"trucklog-backend/internal/auth"
	"trucklog-backend/internal/database"
	"trucklog-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreatePaymentRequest struct {
	Type          models.PaymentType `json:"type"` // "RECEIPT" | "PAYMENT"
	Amount        float64            `json:"amount"`
	Date          string             `json:"date"` // "2025-12-09", today when empty
	RatePartyType models.PartyType   `json:"rate_party_type"`
	RatePartyID   *uint              `json:"rate_party_id"`
	Method        string             `json:"method"`
	Description   string             `json:"description"`
}

type PaymentResponse struct {
	ID            uint               `json:"id"`
	Type          models.PaymentType `json:"type"`
	Amount        float64            `json:"amount"`
	Date          string             `json:"date"`
	RatePartyType models.PartyType   `json:"rate_party_type,omitempty"`
	RatePartyID   *uint              `json:"rate_party_id,omitempty"`
	Method        string             `json:"method"`
	Description   string             `json:"description"`
}

func toPaymentResponse(p models.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		Type:          p.Type,
		Amount:        p.Amount,
		Date:          p.Date.Format("2006-01-02"),
		RatePartyType: p.RatePartyType,
		RatePartyID:   p.RatePartyID,
		Method:        p.Method,
		Description:   p.Description,
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

func parseDateOrToday(dateStr string) (time.Time, error) {
	if dateStr == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	return time.Parse("2006-01-02", dateStr)
}

func validPartyType(pt models.PartyType) bool {
	switch pt {
	case models.PartyTypeCustomer, models.PartyTypeQuarry, models.PartyTypeTransport, models.PartyTypeRoyalty:
		return true
	}
	return false
}

// POST /api/payments
func CreatePaymentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreatePaymentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Amount <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "amount must be greater than 0")
		}

		switch body.Type {
		case models.PaymentTypeReceipt, models.PaymentTypePayment:
			// ok
		default:
			return fiber.NewError(fiber.StatusBadRequest, "type must be 'RECEIPT' or 'PAYMENT'")
		}

		// rate-party addressing is optional, but half an address is a bug
		if body.RatePartyID != nil && !validPartyType(body.RatePartyType) {
			return fiber.NewError(fiber.StatusBadRequest, "rate_party_type is invalid")
		}
		if body.RatePartyID == nil && body.Method == "" {
			return fiber.NewError(fiber.StatusBadRequest, "rate_party_id or method is required")
		}

		date, err := parseDateOrToday(body.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Date must be 'YYYY-MM-DD'")
		}

		p := models.Payment{
			Type:          body.Type,
			Amount:        body.Amount,
			Date:          date,
			RatePartyType: body.RatePartyType,
			RatePartyID:   body.RatePartyID,
			Method:        body.Method,
			Description:   body.Description,
		}

		if err := database.DB.Create(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create payment")
		}

		userID, userName, uerr := getUserInfo(c)
		if uerr == nil {
			if logErr := audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "payment",
				EntityID:    p.ID,
				Action:      models.AuditActionCreate,
				Description: fmt.Sprintf("%s recorded: %.2f via %s", p.Type, p.Amount, p.Method),
				Before:      nil,
				After:       p,
			}); logErr != nil {
				fmt.Printf("Could not write audit log: %v\n", logErr)
			}
		}

		return c.Status(fiber.StatusCreated).JSON(toPaymentResponse(p))
	}
}

// GET /api/payments?from=...&to=...&type=RECEIPT&rate_party_type=...&rate_party_id=...
func ListPaymentsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Payment{})

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

		var payments []models.Payment
		if err := dbq.Order("date asc, id asc").Find(&payments).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list payments")
		}

		resp := make([]PaymentResponse, 0, len(payments))
		for _, p := range payments {
			resp = append(resp, toPaymentResponse(p))
		}

		return c.JSON(resp)
	}
}

// PUT /api/payments/:id
func UpdatePaymentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var p models.Payment
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Payment not found")
		}

		var body CreatePaymentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Amount <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "amount must be greater than 0")
		}

		switch body.Type {
		case models.PaymentTypeReceipt, models.PaymentTypePayment:
		default:
			return fiber.NewError(fiber.StatusBadRequest, "type must be 'RECEIPT' or 'PAYMENT'")
		}

		date, err := parseDateOrToday(body.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Date must be 'YYYY-MM-DD'")
		}

		oldPayment := p

		p.Type = body.Type
		p.Amount = body.Amount
		p.Date = date
		p.RatePartyType = body.RatePartyType
		p.RatePartyID = body.RatePartyID
		p.Method = body.Method
		p.Description = body.Description

		if err := database.DB.Save(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update payment")
		}

		userID, userName, uerr := getUserInfo(c)
		if uerr == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "payment",
				EntityID:    p.ID,
				Action:      models.AuditActionUpdate,
				Description: fmt.Sprintf("Payment updated: %.2f", p.Amount),
				Before:      oldPayment,
				After:       p,
			})
		}

		return c.JSON(toPaymentResponse(p))
	}
}

// DELETE /api/payments/:id
func DeletePaymentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var p models.Payment
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Payment not found")
		}

		if err := database.DB.Delete(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete payment")
		}

		userID, userName, uerr := getUserInfo(c)
		if uerr == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "payment",
				EntityID:    p.ID,
				Action:      models.AuditActionDelete,
				Description: fmt.Sprintf("Payment deleted: %s %.2f", p.Type, p.Amount),
				Before:      p,
				After:       nil,
			})
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
