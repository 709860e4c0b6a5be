package ledger

import (
	"testing"

	"trucklog-backend/internal/models"
	"trucklog-backend/internal/party"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func overviewResolver() *party.Resolver {
	return party.NewResolver(party.Snapshot{
		VendorCustomers: []models.VendorCustomer{{ID: 1, Name: "Shree Constructions"}},
		MineQuarries:    []models.MineQuarry{{ID: 2, Name: "Kharun Sand Depot"}},
		TransportOwners: []models.TransportOwnerProfile{{ID: 3, Name: "Yadav Transport"}},
		RoyaltyOwners:   []models.RoyaltyOwnerProfile{{ID: 4, Name: "Verma Royalty"}},
	})
}

func findRow(t *testing.T, rows []OverviewRow, pt models.PartyType, name string) OverviewRow {
	t.Helper()
	for _, r := range rows {
		if r.PartyType == pt && r.Name == name {
			return r
		}
	}
	t.Fatalf("no row for (%s, %s)", pt, name)
	return OverviewRow{}
}

func TestOverviewCustomerReceiptReducesBalance(t *testing.T) {
	r := overviewResolver()

	trips := []models.Trip{
		{Customer: "Shree Constructions", NetWeight: 20, Revenue: 12000},
		{Customer: "Shree Constructions", NetWeight: 15, Revenue: 8000},
	}
	// one receipt exceeding one trip's revenue
	payments := []models.Payment{
		{Type: models.PaymentTypeReceipt, Amount: 15000,
			RatePartyType: models.PartyTypeCustomer, RatePartyID: uintPtr(1)},
	}

	rows, warnings := BuildOverview(trips, nil, nil, payments, r)
	require.Empty(t, warnings)

	row := findRow(t, rows, models.PartyTypeCustomer, "Shree Constructions")
	assert.Equal(t, 2, row.TotalTrips)
	assert.Equal(t, 35.0, row.TotalTons)
	assert.Equal(t, 20000.0, row.GrossAmount)
	assert.Equal(t, 15000.0, row.PaidAmount)
	assert.Equal(t, 5000.0, row.Balance) // Σrevenue − receipt
}

func TestOverviewVendorSignConvention(t *testing.T) {
	r := overviewResolver()

	trips := []models.Trip{
		{QuarryName: "Kharun Sand Depot", NetWeight: 20, MaterialCost: 6000},
	}

	// outgoing payment settles what we owe the quarry
	payment := models.Payment{Type: models.PaymentTypePayment, Amount: 2500,
		RatePartyType: models.PartyTypeQuarry, RatePartyID: uintPtr(2)}
	rows, _ := BuildOverview(trips, nil, nil, []models.Payment{payment}, r)
	row := findRow(t, rows, models.PartyTypeQuarry, "Kharun Sand Depot")
	assert.Equal(t, 3500.0, row.Balance)

	// a receipt from a vendor-side party reopens the balance
	receipt := models.Payment{Type: models.PaymentTypeReceipt, Amount: 1000,
		RatePartyType: models.PartyTypeQuarry, RatePartyID: uintPtr(2)}
	rows, _ = BuildOverview(trips, nil, nil, []models.Payment{payment, receipt}, r)
	row = findRow(t, rows, models.PartyTypeQuarry, "Kharun Sand Depot")
	assert.Equal(t, 4500.0, row.Balance)
}

func TestOverviewAdvancesAndExpenses(t *testing.T) {
	r := overviewResolver()

	trips := []models.Trip{
		{TransporterName: "Yadav Transport", NetWeight: 10, TransportCost: 5000},
	}
	advances := []models.Advance{
		{TripID: 1, RatePartyType: models.PartyTypeTransport, RatePartyID: uintPtr(3), Amount: 2000},
	}
	expenses := []models.DailyExpense{
		{Type: models.EntryTypeDebit, RatePartyType: models.PartyTypeTransport, RatePartyID: uintPtr(3), Amount: 500},
		{Type: models.EntryTypeCredit, RatePartyType: models.PartyTypeTransport, RatePartyID: uintPtr(3), Amount: 300},
	}

	rows, warnings := BuildOverview(trips, advances, expenses, nil, r)
	require.Empty(t, warnings)

	row := findRow(t, rows, models.PartyTypeTransport, "Yadav Transport")
	// advance +2000, debit expense +500, credit expense −300
	assert.Equal(t, 2200.0, row.PaidAmount)
	assert.Equal(t, 2800.0, row.Balance)
}

func TestOverviewBucketCreatedWithoutTrips(t *testing.T) {
	r := overviewResolver()

	payments := []models.Payment{
		{Type: models.PaymentTypePayment, Amount: 900,
			RatePartyType: models.PartyTypeRoyalty, RatePartyID: uintPtr(4)},
	}

	rows, _ := BuildOverview(nil, nil, nil, payments, r)
	row := findRow(t, rows, models.PartyTypeRoyalty, "Verma Royalty")
	assert.Zero(t, row.TotalTrips)
	assert.Zero(t, row.GrossAmount)
	assert.Equal(t, 900.0, row.PaidAmount)
	assert.Equal(t, -900.0, row.Balance)
}

func TestOverviewOrphanedReferenceSkippedWithWarning(t *testing.T) {
	r := overviewResolver()

	trips := []models.Trip{
		{Customer: "Shree Constructions", Revenue: 1000},
	}
	payments := []models.Payment{
		// master record 77 was deleted after this payment was recorded
		{ID: 42, Type: models.PaymentTypeReceipt, Amount: 400,
			RatePartyType: models.PartyTypeCustomer, RatePartyID: uintPtr(77)},
	}

	var rows []OverviewRow
	var warnings []UnresolvedReference
	require.NotPanics(t, func() {
		rows, warnings = BuildOverview(trips, nil, nil, payments, r)
	})

	// the orphan contributes to no bucket
	row := findRow(t, rows, models.PartyTypeCustomer, "Shree Constructions")
	assert.Zero(t, row.PaidAmount)
	assert.Equal(t, 1000.0, row.Balance)

	require.Len(t, warnings, 1)
	assert.Equal(t, "payment", warnings[0].Source)
	assert.Equal(t, uint(42), warnings[0].EventID)
	assert.Equal(t, uint(77), warnings[0].PartyID)
}

func TestOverviewMultiRoleTripFansOut(t *testing.T) {
	r := overviewResolver()

	trips := []models.Trip{
		{
			Customer:         "Shree Constructions",
			QuarryName:       "Kharun Sand Depot",
			TransporterName:  "Yadav Transport",
			RoyaltyOwnerName: "Verma Royalty",
			NetWeight:        18,
			Revenue:          10000,
			MaterialCost:     4000,
			TransportCost:    2500,
			RoyaltyCost:      800,
		},
	}

	rows, _ := BuildOverview(trips, nil, nil, nil, r)
	require.Len(t, rows, 4)

	assert.Equal(t, 10000.0, findRow(t, rows, models.PartyTypeCustomer, "Shree Constructions").GrossAmount)
	assert.Equal(t, 4000.0, findRow(t, rows, models.PartyTypeQuarry, "Kharun Sand Depot").GrossAmount)
	assert.Equal(t, 2500.0, findRow(t, rows, models.PartyTypeTransport, "Yadav Transport").GrossAmount)
	assert.Equal(t, 800.0, findRow(t, rows, models.PartyTypeRoyalty, "Verma Royalty").GrossAmount)

	// every role bucket accrues the trip's net weight
	for _, row := range rows {
		assert.Equal(t, 18.0, row.TotalTons)
	}
}

func TestOverviewRowsSortedByName(t *testing.T) {
	r := overviewResolver()

	trips := []models.Trip{
		{TransporterName: "Yadav Transport", TransportCost: 1},
		{Customer: "Shree Constructions", Revenue: 1},
		{QuarryName: "Kharun Sand Depot", MaterialCost: 1},
	}

	rows, _ := BuildOverview(trips, nil, nil, nil, r)
	require.Len(t, rows, 3)
	assert.Equal(t, "Kharun Sand Depot", rows[0].Name)
	assert.Equal(t, "Shree Constructions", rows[1].Name)
	assert.Equal(t, "Yadav Transport", rows[2].Name)
}
