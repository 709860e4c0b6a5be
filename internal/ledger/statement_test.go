package ledger

import (
	"testing"
	"time"

	"trucklog-backend/internal/models"
	"trucklog-backend/internal/party"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

func uintPtr(v uint) *uint { return &v }

func testResolver() *party.Resolver {
	return party.NewResolver(party.Snapshot{
		VendorCustomers: []models.VendorCustomer{{ID: 1, Name: "Shree Constructions"}},
		MineQuarries:    []models.MineQuarry{{ID: 2, Name: "Kharun Sand Depot"}},
		TransportOwners: []models.TransportOwnerProfile{{ID: 3, Name: "Yadav Transport"}},
	})
}

func TestBuildStatementRunningBalanceRoundTrip(t *testing.T) {
	r := testResolver()
	p := PartyRef{Type: models.PartyTypeCustomer, ID: 1, Name: "Shree Constructions"}

	trips := []models.Trip{
		{Date: day(1), Customer: "Shree Constructions", Revenue: 12000},
		{Date: day(3), Customer: "Shree Constructions", Revenue: 8000},
	}
	payments := []models.Payment{
		{Date: day(2), Type: models.PaymentTypeReceipt, Amount: 15000,
			RatePartyType: models.PartyTypeCustomer, RatePartyID: uintPtr(1)},
	}

	const finalBalance = 5000 // externally maintained closing balance

	lines := BuildStatement(p, finalBalance, trips, nil, payments, r)
	require.Len(t, lines, 3)

	// ascending by date
	assert.Equal(t, day(1), lines[0].Date)
	assert.Equal(t, day(2), lines[1].Date)
	assert.Equal(t, day(3), lines[2].Date)

	// balance[i] = balance[i-1] + credit[i] - debit[i]
	opening := lines[0].Balance - (lines[0].Credit - lines[0].Debit)
	prev := opening
	for i, l := range lines {
		assert.InDelta(t, prev+l.Credit-l.Debit, l.Balance, 1e-9, "line %d", i)
		prev = l.Balance
	}

	// the forward fold must reproduce the supplied final balance exactly
	assert.Equal(t, float64(finalBalance), lines[len(lines)-1].Balance)

	// implied opening: 5000 - (12000 + 8000 - 15000) = 0
	assert.InDelta(t, 0, opening, 1e-9)
}

func TestBuildStatementCustomerLines(t *testing.T) {
	r := testResolver()
	p := PartyRef{Type: models.PartyTypeCustomer, ID: 1, Name: "Shree Constructions"}

	trips := []models.Trip{
		{Date: day(1), Customer: "Shree Constructions", Revenue: 9000, MaterialCost: 4000},
	}
	payments := []models.Payment{
		{Date: day(2), Type: models.PaymentTypeReceipt, Amount: 3000,
			RatePartyType: models.PartyTypeCustomer, RatePartyID: uintPtr(1)},
	}

	lines := BuildStatement(p, 6000, trips, nil, payments, r)
	require.Len(t, lines, 2)

	// the trip line carries revenue as credit, never the cost fields
	assert.Equal(t, LineTypeTrip, lines[0].Type)
	assert.Equal(t, 9000.0, lines[0].Credit)
	assert.Zero(t, lines[0].Debit)

	// a receipt pulls the customer's balance down
	assert.Equal(t, "RECEIPT", lines[1].Type)
	assert.Equal(t, 3000.0, lines[1].Debit)
	assert.Less(t, lines[1].Balance, lines[0].Balance)
}

func TestBuildStatementVendorLines(t *testing.T) {
	r := testResolver()
	p := PartyRef{Type: models.PartyTypeQuarry, ID: 2, Name: "Kharun Sand Depot"}

	trips := []models.Trip{
		{Date: day(1), QuarryName: "Kharun Sand Depot", Revenue: 9000, MaterialCost: 4000},
	}
	payments := []models.Payment{
		{Date: day(2), Type: models.PaymentTypePayment, Amount: 4000,
			RatePartyType: models.PartyTypeQuarry, RatePartyID: uintPtr(2)},
	}

	lines := BuildStatement(p, 0, trips, nil, payments, r)
	require.Len(t, lines, 2)

	// the quarry sees its material cost as debit, not the trip revenue
	assert.Equal(t, 4000.0, lines[0].Debit)
	assert.Zero(t, lines[0].Credit)

	// the settling payment moves the balance back toward the final value
	assert.Equal(t, 4000.0, lines[1].Credit)
	assert.Equal(t, 0.0, lines[1].Balance)
}

func TestBuildStatementLedgerEntrySides(t *testing.T) {
	r := testResolver()
	p := PartyRef{Type: models.PartyTypeTransport, ID: 3, Name: "Yadav Transport"}

	entries := []models.LedgerEntry{
		{Date: day(1), FromAccount: "Yadav Transport", ToAccount: "SBI Current", Amount: 500, Type: models.EntryTypeDebit},
		{Date: day(2), FromAccount: "Cash Box", ToAccount: "Yadav Transport", Amount: 700, Type: models.EntryTypeCredit},
		{Date: day(3), FromAccount: "Cash Box", ToAccount: "SBI Current", Amount: 900, Type: models.EntryTypeDebit}, // unrelated
	}

	lines := BuildStatement(p, 200, nil, entries, nil, r)
	require.Len(t, lines, 2)

	// money left the account -> debit; money arrived -> credit
	assert.Equal(t, 500.0, lines[0].Debit)
	assert.Equal(t, 700.0, lines[1].Credit)
	assert.Equal(t, 200.0, lines[1].Balance)
}

func TestBuildStatementPaymentMatchedByMethodAccount(t *testing.T) {
	r := testResolver()
	p := PartyRef{Type: models.PartyTypeTransport, ID: 3, Name: "Yadav Transport"}

	payments := []models.Payment{
		// no rate-party id; matched because the settlement account carries
		// the party name (pre-migration rows)
		{Date: day(1), Type: models.PaymentTypePayment, Amount: 1200, Method: "Yadav Transport"},
		// addressed elsewhere
		{Date: day(2), Type: models.PaymentTypePayment, Amount: 800, Method: "SBI Current"},
	}

	lines := BuildStatement(p, 0, nil, nil, payments, r)
	require.Len(t, lines, 1)
	assert.Equal(t, 1200.0, lines[0].Credit)
}

func TestBuildStatementSameDateKeepsInsertionOrder(t *testing.T) {
	r := testResolver()
	p := PartyRef{Type: models.PartyTypeCustomer, ID: 1, Name: "Shree Constructions"}

	trips := []models.Trip{
		{Date: day(5), Customer: "Shree Constructions", Revenue: 100, Material: "sand"},
		{Date: day(5), Customer: "Shree Constructions", Revenue: 200, Material: "gravel"},
	}

	lines := BuildStatement(p, 300, trips, nil, nil, r)
	require.Len(t, lines, 2)

	// stable sort: intra-day order is insertion order, nothing more
	assert.Equal(t, 100.0, lines[0].Credit)
	assert.Equal(t, 200.0, lines[1].Credit)
}

func TestBuildStatementEmptyHistory(t *testing.T) {
	r := testResolver()
	p := PartyRef{Type: models.PartyTypeCustomer, ID: 1, Name: "Shree Constructions"}

	lines := BuildStatement(p, 750, nil, nil, nil, r)
	assert.Empty(t, lines)
}
