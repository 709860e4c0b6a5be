package report

import (
	"fmt"
	"time"

	"trucklog-backend/internal/database"
	"trucklog-backend/internal/ledger"
	"trucklog-backend/internal/models"
	"trucklog-backend/internal/party"

	"github.com/gofiber/fiber/v2"
)

// loadResolver fetches fresh master-data lists and builds the name resolver.
// Reports never cache: every request sees the current master data.
func loadResolver() (*party.Resolver, error) {
	var snap party.Snapshot

	loaders := []error{
		database.DB.Find(&snap.VendorCustomers).Error,
		database.DB.Find(&snap.Customers).Error,
		database.DB.Find(&snap.MineQuarries).Error,
		database.DB.Find(&snap.Quarries).Error,
		database.DB.Find(&snap.TransportOwners).Error,
		database.DB.Find(&snap.Vehicles).Error,
		database.DB.Find(&snap.RoyaltyOwners).Error,
		database.DB.Find(&snap.LegacyRoyaltyOwners).Error,
	}
	for _, err := range loaders {
		if err != nil {
			return nil, err
		}
	}

	return party.NewResolver(snap), nil
}

type PartyOverviewResponse struct {
	Rows     []ledger.OverviewRow         `json:"rows"`
	Warnings []ledger.UnresolvedReference `json:"warnings"`
}

// GET /api/reports/party-overview
func PartyOverviewHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		r, err := loadResolver()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load master data")
		}

		var trips []models.Trip
		var advances []models.Advance
		var expenses []models.DailyExpense
		var payments []models.Payment
		if err := database.DB.Find(&trips).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load trips")
		}
		if err := database.DB.Find(&advances).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load advances")
		}
		if err := database.DB.Find(&expenses).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load expenses")
		}
		if err := database.DB.Find(&payments).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load payments")
		}

		rows, warnings := ledger.BuildOverview(trips, advances, expenses, payments, r)
		if warnings == nil {
			warnings = []ledger.UnresolvedReference{}
		}

		return c.JSON(PartyOverviewResponse{Rows: rows, Warnings: warnings})
	}
}

// statementParty resolves query params to a PartyRef plus the stored closing
// balance on the party's master record.
func statementParty(c *fiber.Ctx) (ledger.PartyRef, float64, error) {
	pt := models.PartyType(c.Query("party_type"))
	idStr := c.Query("party_id")

	var id uint
	if _, err := fmt.Sscan(idStr, &id); err != nil || id == 0 {
		return ledger.PartyRef{}, 0, fiber.NewError(fiber.StatusBadRequest, "party_id is required")
	}

	switch pt {
	case models.PartyTypeCustomer:
		var p models.VendorCustomer
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return ledger.PartyRef{}, 0, fiber.NewError(fiber.StatusNotFound, "Vendor-customer not found")
		}
		return ledger.PartyRef{Type: pt, ID: id, Name: p.Name}, p.Balance, nil
	case models.PartyTypeQuarry:
		var p models.MineQuarry
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return ledger.PartyRef{}, 0, fiber.NewError(fiber.StatusNotFound, "Quarry not found")
		}
		return ledger.PartyRef{Type: pt, ID: id, Name: p.Name}, p.Balance, nil
	case models.PartyTypeTransport:
		var p models.TransportOwnerProfile
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return ledger.PartyRef{}, 0, fiber.NewError(fiber.StatusNotFound, "Transport owner not found")
		}
		return ledger.PartyRef{Type: pt, ID: id, Name: p.Name}, p.Balance, nil
	case models.PartyTypeRoyalty:
		var p models.RoyaltyOwnerProfile
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return ledger.PartyRef{}, 0, fiber.NewError(fiber.StatusNotFound, "Royalty owner not found")
		}
		return ledger.PartyRef{Type: pt, ID: id, Name: p.Name}, p.Balance, nil
	}

	return ledger.PartyRef{}, 0, fiber.NewError(fiber.StatusBadRequest, "party_type is invalid")
}

func buildStatement(c *fiber.Ctx) (ledger.PartyRef, []ledger.StatementLine, error) {
	p, finalBalance, err := statementParty(c)
	if err != nil {
		return ledger.PartyRef{}, nil, err
	}

	r, err := loadResolver()
	if err != nil {
		return ledger.PartyRef{}, nil, fiber.NewError(fiber.StatusInternalServerError, "Could not load master data")
	}

	var trips []models.Trip
	var entries []models.LedgerEntry
	var payments []models.Payment
	if err := database.DB.Find(&trips).Error; err != nil {
		return ledger.PartyRef{}, nil, fiber.NewError(fiber.StatusInternalServerError, "Could not load trips")
	}
	if err := database.DB.
		Where("from_account = ? OR to_account = ?", p.Name, p.Name).
		Find(&entries).Error; err != nil {
		return ledger.PartyRef{}, nil, fiber.NewError(fiber.StatusInternalServerError, "Could not load ledger entries")
	}
	if err := database.DB.Find(&payments).Error; err != nil {
		return ledger.PartyRef{}, nil, fiber.NewError(fiber.StatusInternalServerError, "Could not load payments")
	}

	return p, ledger.BuildStatement(p, finalBalance, trips, entries, payments, r), nil
}

type StatementResponse struct {
	PartyType models.PartyType       `json:"party_type"`
	PartyID   uint                   `json:"party_id"`
	PartyName string                 `json:"party_name"`
	Lines     []ledger.StatementLine `json:"lines"`
}

// GET /api/reports/statement?party_type=...&party_id=...
func StatementHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, lines, err := buildStatement(c)
		if err != nil {
			return err
		}

		return c.JSON(StatementResponse{
			PartyType: p.Type,
			PartyID:   p.ID,
			PartyName: p.Name,
			Lines:     lines,
		})
	}
}

// GET /api/reports/statement/export?party_type=...&party_id=...&format=csv|xlsx
func StatementExportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, lines, err := buildStatement(c)
		if err != nil {
			return err
		}

		filename := ledger.StatementFilename(p.Name, time.Now())

		switch c.Query("format", "csv") {
		case "csv":
			c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
			c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
			return c.SendString(ledger.StatementCSV(lines))
		case "xlsx":
			data, err := ledger.StatementXLSX(p.Name, lines)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not build workbook")
			}
			c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
			c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename[:len(filename)-4]+".xlsx"))
			return c.Send(data)
		}

		return fiber.NewError(fiber.StatusBadRequest, "format must be 'csv' or 'xlsx'")
	}
}
