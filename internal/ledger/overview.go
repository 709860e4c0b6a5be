package ledger

import (
	"sort"

	"trucklog-backend/internal/models"
	"trucklog-backend/internal/party"
)

// OverviewRow - derived account summary for one (type, name) rate party
// over the supplied history. Never persisted; rebuilt on every call.
type OverviewRow struct {
	PartyType   models.PartyType `json:"party_type"`
	Name        string           `json:"name"`
	TotalTrips  int              `json:"total_trips"`
	TotalTons   float64          `json:"total_tons"`
	GrossAmount float64          `json:"gross_amount"`
	PaidAmount  float64          `json:"paid_amount"`
	Balance     float64          `json:"balance"`
}

// UnresolvedReference - an event whose RatePartyID no longer resolves to
// any master record. The event is excluded from every bucket (historical
// behavior), but callers get to see what was dropped instead of the report
// silently understating activity.
type UnresolvedReference struct {
	Source  string           `json:"source"` // "payment" | "advance" | "daily_expense"
	EventID uint             `json:"event_id"`
	Type    models.PartyType `json:"party_type"`
	PartyID uint             `json:"party_id"`
}

type bucketKey struct {
	pt   models.PartyType
	name string
}

// BuildOverview aggregates one summary row per (type, name) pair across all
// trips, advances, expenses and payments.
//
// Gross side: every non-empty party-role field of a trip accrues that
// trip's net weight and role money into its bucket. Paid side: advances
// always add; DEBIT expenses add, CREDIT expenses subtract; payments add or
// subtract by the RECEIPT/PAYMENT × customer-vs-vendor rule. Buckets are
// created lazily from any of the four sources, so a party with zero trips
// still gets a row when a payment references it.
func BuildOverview(trips []models.Trip, advances []models.Advance, expenses []models.DailyExpense, payments []models.Payment, r *party.Resolver) ([]OverviewRow, []UnresolvedReference) {
	buckets := make(map[bucketKey]*OverviewRow)
	var warnings []UnresolvedReference

	bucket := func(pt models.PartyType, name string) *OverviewRow {
		key := bucketKey{pt, name}
		row, ok := buckets[key]
		if !ok {
			row = &OverviewRow{PartyType: pt, Name: name}
			buckets[key] = row
		}
		return row
	}

	roles := []models.PartyType{
		models.PartyTypeCustomer,
		models.PartyTypeQuarry,
		models.PartyTypeTransport,
		models.PartyTypeRoyalty,
	}

	for _, t := range trips {
		for _, pt := range roles {
			name := party.TripPartyName(t, pt)
			if name == "" {
				continue
			}
			row := bucket(pt, name)
			row.TotalTrips++
			row.TotalTons += t.NetWeight
			row.GrossAmount += TripRoleAmount(t, pt)
		}
	}

	// resolveBucket maps an event's (type, id) reference back to its
	// (type, name) bucket. Orphans are skipped and reported.
	resolveBucket := func(source string, eventID uint, pt models.PartyType, id *uint) *OverviewRow {
		if id == nil {
			return nil
		}
		name, ok := r.NameByID(pt, *id)
		if !ok {
			warnings = append(warnings, UnresolvedReference{
				Source:  source,
				EventID: eventID,
				Type:    pt,
				PartyID: *id,
			})
			return nil
		}
		return bucket(pt, name)
	}

	for _, a := range advances {
		if row := resolveBucket("advance", a.ID, a.RatePartyType, a.RatePartyID); row != nil {
			row.PaidAmount += a.Amount
		}
	}

	for _, e := range expenses {
		row := resolveBucket("daily_expense", e.ID, e.RatePartyType, e.RatePartyID)
		if row == nil {
			continue
		}
		if e.Type == models.EntryTypeDebit {
			row.PaidAmount += e.Amount
		} else {
			row.PaidAmount -= e.Amount
		}
	}

	for _, pm := range payments {
		if pm.RatePartyID == nil {
			continue // not addressed to a rate party
		}
		row := resolveBucket("payment", pm.ID, pm.RatePartyType, pm.RatePartyID)
		if row == nil {
			continue
		}
		row.PaidAmount += paymentPaidDelta(pm)
	}

	rows := make([]OverviewRow, 0, len(buckets))
	for _, row := range buckets {
		row.Balance = row.GrossAmount - row.PaidAmount
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Name != rows[j].Name {
			return rows[i].Name < rows[j].Name
		}
		return rows[i].PartyType < rows[j].PartyType
	})

	return rows, warnings
}

// paymentPaidDelta - signed contribution of a payment to a party's paid
// amount. For a customer (receivable) a RECEIPT settles what they owe; for
// vendor-side parties (payable) a PAYMENT settles what we owe them. The
// opposite event type reopens the balance.
func paymentPaidDelta(pm models.Payment) float64 {
	receivable := pm.RatePartyType == models.PartyTypeCustomer
	receipt := pm.Type == models.PaymentTypeReceipt
	if receivable == receipt {
		return pm.Amount
	}
	return -pm.Amount
}
