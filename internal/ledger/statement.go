// Package ledger holds the reconciliation arithmetic: pure folds over
// already-fetched event slices, recomputed per call from the full history.
// Nothing in here touches the database.
package ledger

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"trucklog-backend/internal/models"
	"trucklog-backend/internal/party"
)

// PartyRef identifies one rate party for statement building. Name is the
// canonical name, which also serves as the account name payments may settle
// against via their Method field.
type PartyRef struct {
	Type models.PartyType
	ID   uint
	Name string
}

const (
	LineTypeTrip   = "TRIP"
	LineTypeLedger = "LEDGER"
)

// StatementLine - one row of a per-entity transaction ledger.
type StatementLine struct {
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Credit      float64   `json:"credit"`
	Debit       float64   `json:"debit"`
	Balance     float64   `json:"balance"`
}

// BuildStatement merges the three transaction sources touching a party
// (trips, ledger entries on its account, payments addressed to it), sorts
// them by date and computes a running balance consistent with the
// externally supplied final balance.
//
// The true opening balance is never stored anywhere, so it is back-computed:
// opening = finalBalance − Σ(credit − debit) over the visible transactions,
// then the fold walks forward adding credit − debit per line. The last
// line's balance therefore reproduces finalBalance exactly.
//
// Intra-day ordering is insertion order (trips, then ledger entries, then
// payments); the sort is stable, but within one day the order carries no
// chronological meaning.
func BuildStatement(p PartyRef, finalBalance float64, trips []models.Trip, entries []models.LedgerEntry, payments []models.Payment, r *party.Resolver) []StatementLine {
	lines := make([]StatementLine, 0, len(trips)+len(entries)+len(payments))

	for _, t := range trips {
		if !r.TripMatches(t, p.Type, p.ID) {
			continue
		}
		line := StatementLine{
			Date:        t.Date,
			Description: tripDescription(t),
			Type:        LineTypeTrip,
		}
		if p.Type == models.PartyTypeCustomer {
			line.Credit = t.Revenue
		} else {
			line.Debit = TripRoleAmount(t, p.Type)
		}
		lines = append(lines, line)
	}

	for _, e := range entries {
		line := StatementLine{
			Date:        e.Date,
			Description: e.Description,
			Type:        LineTypeLedger,
		}
		switch p.Name {
		case e.FromAccount:
			line.Debit = e.Amount // money left the account
		case e.ToAccount:
			line.Credit = e.Amount
		default:
			continue
		}
		lines = append(lines, line)
	}

	for _, pm := range payments {
		if !paymentAddressesParty(pm, p) {
			continue
		}
		line := StatementLine{
			Date:        pm.Date,
			Description: paymentDescription(pm),
			Type:        string(pm.Type),
		}
		// A receipt pulls the signed balance down, a payment pushes it up.
		// The trip lines already orient the balance per role (customer
		// credit = revenue, vendor debit = cost), so the mapping here is
		// the same for both roles.
		if pm.Type == models.PaymentTypeReceipt {
			line.Debit = pm.Amount
		} else {
			line.Credit = pm.Amount
		}
		lines = append(lines, line)
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Date.Before(lines[j].Date)
	})

	var delta float64
	for _, l := range lines {
		delta += l.Credit - l.Debit
	}
	balance := finalBalance - delta
	for i := range lines {
		balance += lines[i].Credit - lines[i].Debit
		lines[i].Balance = balance
	}

	return lines
}

// TripRoleAmount returns the trip money field owed to/by the given role.
func TripRoleAmount(t models.Trip, pt models.PartyType) float64 {
	switch pt {
	case models.PartyTypeCustomer:
		return t.Revenue
	case models.PartyTypeQuarry:
		return t.MaterialCost
	case models.PartyTypeTransport:
		return t.TransportCost
	case models.PartyTypeRoyalty:
		return t.RoyaltyCost
	}
	return 0
}

func paymentAddressesParty(pm models.Payment, p PartyRef) bool {
	if pm.RatePartyID != nil && *pm.RatePartyID == p.ID && pm.RatePartyType == p.Type {
		return true
	}
	// Legacy rows predate rate-party ids; they settle against an account
	// whose name is the party name.
	return pm.Method != "" && pm.Method == p.Name
}

func tripDescription(t models.Trip) string {
	parts := make([]string, 0, 3)
	if t.VehicleNo != "" {
		parts = append(parts, t.VehicleNo)
	}
	if t.Material != "" {
		parts = append(parts, t.Material)
	}
	if t.NetWeight > 0 {
		parts = append(parts, fmt.Sprintf("%.2f MT", t.NetWeight))
	}
	if len(parts) == 0 {
		return "Trip"
	}
	return "Trip " + strings.Join(parts, " ")
}

func paymentDescription(pm models.Payment) string {
	if pm.Description != "" {
		return pm.Description
	}
	if pm.Method != "" {
		return fmt.Sprintf("%s via %s", pm.Type, pm.Method)
	}
	return string(pm.Type)
}
