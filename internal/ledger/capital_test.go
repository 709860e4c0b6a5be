package ledger

import (
	"testing"

	"trucklog-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestAccountBalancesDebitConvention(t *testing.T) {
	tracked := []string{"SBI Current", "Personal Funds"}

	entries := []models.LedgerEntry{
		{FromAccount: "Personal Funds", ToAccount: "SBI Current", Amount: 100, Type: models.EntryTypeDebit},
	}

	balances := AccountBalances(tracked, entries)

	// historical convention: DEBIT increases the From side and decreases
	// the To side
	assert.Equal(t, -100.0, balances["SBI Current"])
	assert.Equal(t, 100.0, balances["Personal Funds"])
}

func TestAccountBalancesCreditConvention(t *testing.T) {
	tracked := []string{"SBI Current", "Personal Funds"}

	entries := []models.LedgerEntry{
		{FromAccount: "Personal Funds", ToAccount: "SBI Current", Amount: 250, Type: models.EntryTypeCredit},
	}

	balances := AccountBalances(tracked, entries)

	assert.Equal(t, 250.0, balances["SBI Current"])
	assert.Equal(t, -250.0, balances["Personal Funds"])
}

func TestAccountBalancesUntrackedSideIgnored(t *testing.T) {
	tracked := []string{"SBI Current"}

	entries := []models.LedgerEntry{
		{FromAccount: "Cash Box", ToAccount: "SBI Current", Amount: 50, Type: models.EntryTypeCredit},
		{FromAccount: "SBI Current", ToAccount: "Cash Box", Amount: 20, Type: models.EntryTypeCredit},
		{FromAccount: "Cash Box", ToAccount: "Petty Cash", Amount: 999, Type: models.EntryTypeDebit}, // unrelated
	}

	balances := AccountBalances(tracked, entries)

	assert.Len(t, balances, 1)
	assert.Equal(t, 30.0, balances["SBI Current"])
}

func TestAccountBalancesStartAtZero(t *testing.T) {
	balances := AccountBalances([]string{"SBI Current"}, nil)
	assert.Equal(t, 0.0, balances["SBI Current"])
}
