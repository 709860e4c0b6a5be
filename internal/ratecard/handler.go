package ratecard

import (
	"fmt"
	"time"

	"trucklog-backend/internal/audit"
	"trucklog-backend/internal/auth"
	"trucklog-backend/internal/database"
	"trucklog-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type RateCardRequest struct {
	PartyType     models.PartyType `json:"party_type"`
	PartyID       uint             `json:"party_id"`
	MaterialID    uint             `json:"material_id"`
	RatePerTon    float64          `json:"rate_per_ton"`
	EffectiveFrom string           `json:"effective_from"`
	EffectiveTo   string           `json:"effective_to"` // empty for open-ended
}

type RateCardResponse struct {
	ID            uint             `json:"id"`
	PartyType     models.PartyType `json:"party_type"`
	PartyID       uint             `json:"party_id"`
	MaterialID    uint             `json:"material_id"`
	MaterialName  string           `json:"material_name,omitempty"`
	RatePerTon    float64          `json:"rate_per_ton"`
	EffectiveFrom string           `json:"effective_from"`
	EffectiveTo   string           `json:"effective_to,omitempty"`
}

func toResponse(rc models.RateCard) RateCardResponse {
	resp := RateCardResponse{
		ID:            rc.ID,
		PartyType:     rc.PartyType,
		PartyID:       rc.PartyID,
		MaterialID:    rc.MaterialID,
		MaterialName:  rc.Material.Name,
		RatePerTon:    rc.RatePerTon,
		EffectiveFrom: rc.EffectiveFrom.Format("2006-01-02"),
	}
	if rc.EffectiveTo != nil {
		resp.EffectiveTo = rc.EffectiveTo.Format("2006-01-02")
	}
	return resp
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

func cardFromRequest(body *RateCardRequest) (models.RateCard, error) {
	if !validPartyType(body.PartyType) {
		return models.RateCard{}, fiber.NewError(fiber.StatusBadRequest, "party_type is invalid")
	}
	if body.PartyID == 0 || body.MaterialID == 0 {
		return models.RateCard{}, fiber.NewError(fiber.StatusBadRequest, "party_id and material_id are required")
	}
	if body.RatePerTon <= 0 {
		return models.RateCard{}, fiber.NewError(fiber.StatusBadRequest, "rate_per_ton must be greater than 0")
	}

	from, err := time.Parse("2006-01-02", body.EffectiveFrom)
	if err != nil {
		return models.RateCard{}, fiber.NewError(fiber.StatusBadRequest, "effective_from must be 'YYYY-MM-DD'")
	}

	rc := models.RateCard{
		PartyType:     body.PartyType,
		PartyID:       body.PartyID,
		MaterialID:    body.MaterialID,
		RatePerTon:    body.RatePerTon,
		EffectiveFrom: from,
	}

	if body.EffectiveTo != "" {
		to, err := time.Parse("2006-01-02", body.EffectiveTo)
		if err != nil {
			return models.RateCard{}, fiber.NewError(fiber.StatusBadRequest, "effective_to must be 'YYYY-MM-DD'")
		}
		if to.Before(from) {
			return models.RateCard{}, fiber.NewError(fiber.StatusBadRequest, "effective_to must not precede effective_from")
		}
		rc.EffectiveTo = &to
	}

	return rc, nil
}

// overlapConflict answers 409 with a machine-readable code so clients can
// distinguish a window clash from other conflicts.
func overlapConflict(c *fiber.Ctx, conflict *models.RateCard) error {
	to := "open-ended"
	if conflict.EffectiveTo != nil {
		to = conflict.EffectiveTo.Format("2006-01-02")
	}
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{
		"error": fmt.Sprintf("Rate card #%d already covers %s to %s for this party and material",
			conflict.ID, conflict.EffectiveFrom.Format("2006-01-02"), to),
		"code": "overlapping_rate",
	})
}

func loadPeerCards(rc models.RateCard) ([]models.RateCard, error) {
	var peers []models.RateCard
	err := database.DB.
		Where("party_type = ? AND party_id = ? AND material_id = ?", rc.PartyType, rc.PartyID, rc.MaterialID).
		Find(&peers).Error
	return peers, err
}

// POST /api/rate-cards
func CreateRateCardHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RateCardRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		rc, err := cardFromRequest(&body)
		if err != nil {
			return err
		}

		var material models.Material
		if err := database.DB.First(&material, "id = ?", rc.MaterialID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Material not found")
		}

		peers, err := loadPeerCards(rc)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not check rate windows")
		}
		if conflict := FindConflict(rc, peers); conflict != nil {
			return overlapConflict(c, conflict)
		}

		if err := database.DB.Create(&rc).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create rate card")
		}

		userID, userName, uerr := getUserInfo(c)
		if uerr == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "rate_card",
				EntityID:    rc.ID,
				Action:      models.AuditActionCreate,
				Description: fmt.Sprintf("Rate card for %s #%d: %.2f/ton", rc.PartyType, rc.PartyID, rc.RatePerTon),
				Before:      nil,
				After:       rc,
			})
		}

		rc.Material = material
		return c.Status(fiber.StatusCreated).JSON(toResponse(rc))
	}
}

// GET /api/rate-cards?party_type=...&party_id=...&material_id=...
func ListRateCardsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.RateCard{}).Preload("Material")

		if ptStr := c.Query("party_type"); ptStr != "" {
			dbq = dbq.Where("party_type = ?", ptStr)
		}
		if pidStr := c.Query("party_id"); pidStr != "" {
			dbq = dbq.Where("party_id = ?", pidStr)
		}
		if midStr := c.Query("material_id"); midStr != "" {
			dbq = dbq.Where("material_id = ?", midStr)
		}

		var cards []models.RateCard
		if err := dbq.Order("effective_from asc, id asc").Find(&cards).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list rate cards")
		}

		resp := make([]RateCardResponse, 0, len(cards))
		for _, rc := range cards {
			resp = append(resp, toResponse(rc))
		}

		return c.JSON(resp)
	}
}

// PUT /api/rate-cards/:id
func UpdateRateCardHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var rc models.RateCard
		if err := database.DB.First(&rc, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Rate card not found")
		}

		var body RateCardRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		updated, err := cardFromRequest(&body)
		if err != nil {
			return err
		}
		updated.ID = rc.ID

		peers, err := loadPeerCards(updated)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not check rate windows")
		}
		if conflict := FindConflict(updated, peers); conflict != nil {
			return overlapConflict(c, conflict)
		}

		if err := database.DB.Save(&updated).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update rate card")
		}

		userID, userName, uerr := getUserInfo(c)
		if uerr == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "rate_card",
				EntityID:    updated.ID,
				Action:      models.AuditActionUpdate,
				Description: fmt.Sprintf("Rate card updated: %.2f/ton", updated.RatePerTon),
				Before:      rc,
				After:       updated,
			})
		}

		database.DB.Preload("Material").First(&updated, "id = ?", updated.ID)
		return c.JSON(toResponse(updated))
	}
}

// DELETE /api/rate-cards/:id
func DeleteRateCardHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var rc models.RateCard
		if err := database.DB.First(&rc, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Rate card not found")
		}

		if err := database.DB.Delete(&rc).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete rate card")
		}

		userID, userName, uerr := getUserInfo(c)
		if uerr == nil {
			_ = audit.WriteLog(audit.LogOptions{
				UserID:      userID,
				UserName:    userName,
				EntityType:  "rate_card",
				EntityID:    rc.ID,
				Action:      models.AuditActionDelete,
				Description: fmt.Sprintf("Rate card deleted for %s #%d", rc.PartyType, rc.PartyID),
				Before:      rc,
				After:       nil,
			})
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
