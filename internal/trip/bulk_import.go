package trip

import (
	"fmt"
	"strings"
	"time"

	"trucklog-backend/internal/database"
	"trucklog-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type BulkImportRequest struct {
	Rows []TripRequest `json:"rows"`
}

type BulkImportFailure struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

type BulkImportResponse struct {
	BatchID  string              `json:"batch_id"`
	Imported int                 `json:"imported"`
	Failed   []BulkImportFailure `json:"failed"`
}

// validateTripRow checks one import row. Partial party naming is fine (a
// trip may only touch a customer and a quarry), but a trip with no party
// at all aggregates nowhere and is rejected up front.
func validateTripRow(body TripRequest) error {
	if strings.TrimSpace(body.Date) == "" {
		return fmt.Errorf("date is required")
	}
	if _, err := time.Parse("2006-01-02", body.Date); err != nil {
		return fmt.Errorf("date must be 'YYYY-MM-DD'")
	}
	if body.Customer == "" && body.QuarryName == "" && body.TransporterName == "" && body.RoyaltyOwnerName == "" {
		return fmt.Errorf("at least one party name is required")
	}
	if body.NetWeight < 0 {
		return fmt.Errorf("net_weight cannot be negative")
	}
	if body.Revenue < 0 || body.MaterialCost < 0 || body.TransportCost < 0 || body.RoyaltyCost < 0 {
		return fmt.Errorf("money fields cannot be negative")
	}
	return nil
}

func tripFromRequest(body TripRequest) (models.Trip, error) {
	if err := validateTripRow(body); err != nil {
		return models.Trip{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	d, _ := time.Parse("2006-01-02", body.Date)
	return models.Trip{
		Date:             d,
		Customer:         strings.TrimSpace(body.Customer),
		QuarryName:       strings.TrimSpace(body.QuarryName),
		TransporterName:  strings.TrimSpace(body.TransporterName),
		RoyaltyOwnerName: strings.TrimSpace(body.RoyaltyOwnerName),
		VehicleNo:        strings.TrimSpace(body.VehicleNo),
		Material:         strings.TrimSpace(body.Material),
		NetWeight:        body.NetWeight,
		Tonnage:          body.NetWeight, // keep the legacy column in step
		Revenue:          body.Revenue,
		MaterialCost:     body.MaterialCost,
		TransportCost:    body.TransportCost,
		RoyaltyCost:      body.RoyaltyCost,
	}, nil
}

// POST /api/trips/bulk-import
// Each row is attempted independently: failures are collected and reported
// with their row index so the client can retry just those, successes are
// not rolled back. Partial completion is an accepted outcome, not a
// transaction.
func BulkImportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body BulkImportRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if len(body.Rows) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "rows is empty")
		}

		batchID := uuid.NewString()
		resp := BulkImportResponse{
			BatchID: batchID,
			Failed:  make([]BulkImportFailure, 0),
		}

		for i, row := range body.Rows {
			t, err := tripFromRequest(row)
			if err != nil {
				msg := err.Error()
				if fe, ok := err.(*fiber.Error); ok {
					msg = fe.Message
				}
				resp.Failed = append(resp.Failed, BulkImportFailure{Index: i, Error: msg})
				continue
			}
			t.ImportBatchID = batchID

			if err := database.DB.Create(&t).Error; err != nil {
				resp.Failed = append(resp.Failed, BulkImportFailure{Index: i, Error: "could not save row"})
				continue
			}
			resp.Imported++
		}

		status := fiber.StatusCreated
		if resp.Imported == 0 {
			status = fiber.StatusBadRequest
		} else if len(resp.Failed) > 0 {
			status = fiber.StatusMultiStatus
		}

		return c.Status(status).JSON(resp)
	}
}
