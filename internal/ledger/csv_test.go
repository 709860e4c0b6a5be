package ledger

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatementCSVRoundTrip(t *testing.T) {
	lines := []StatementLine{
		{Date: day(1), Description: "Trip CG04AB1234 sand", Type: "TRIP", Credit: 12000, Debit: 0, Balance: 12000},
		{Date: day(2), Description: "RECEIPT via SBI Current", Type: "RECEIPT", Credit: 0, Debit: 7500.25, Balance: 4499.75},
		{Date: day(3), Description: "adjustment", Type: "LEDGER", Credit: 0.1, Debit: 0, Balance: 4499.85},
	}

	out := StatementCSV(lines)
	rows := strings.Split(out, "\n")

	// header + N rows, nothing more
	require.Len(t, rows, len(lines)+1)
	assert.Equal(t, "Date, Description, Type, Credit (₹), Debit (₹), Balance (₹)", rows[0])

	// numeric columns re-parse to the original values exactly
	for i, l := range lines {
		fields := strings.Split(rows[i+1], ",")
		require.Len(t, fields, 6)

		credit, err := strconv.ParseFloat(fields[3], 64)
		require.NoError(t, err)
		debit, err := strconv.ParseFloat(fields[4], 64)
		require.NoError(t, err)
		balance, err := strconv.ParseFloat(fields[5], 64)
		require.NoError(t, err)

		assert.Equal(t, l.Credit, credit)
		assert.Equal(t, l.Debit, debit)
		assert.Equal(t, l.Balance, balance)
	}
}

func TestStatementCSVQuotesDescription(t *testing.T) {
	lines := []StatementLine{
		{Date: day(1), Description: `payment for "urgent" load`, Type: "PAYMENT", Credit: 10, Balance: 10},
	}

	out := StatementCSV(lines)
	assert.Contains(t, out, `"payment for ""urgent"" load"`)
}

func TestStatementCSVEmpty(t *testing.T) {
	out := StatementCSV(nil)
	assert.Equal(t, 1, len(strings.Split(out, "\n"))) // header only
}

func TestStatementFilename(t *testing.T) {
	d := time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "ledger_Shree_Constructions_2025-03-07.csv",
		StatementFilename("Shree Constructions", d))
}
