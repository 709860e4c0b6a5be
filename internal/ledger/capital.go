package ledger

import (
	"trucklog-backend/internal/models"
)

// AccountBalances computes running balances for the tracked internal
// accounts (bank, capital & loans, investment, personal funds) from the
// double-entry ledger stream.
//
// Sign convention, kept exactly as the historical books record it: a DEBIT
// entry increases the From account and decreases the To account; a CREDIT
// entry does the opposite. This is inverted from textbook double-entry
// (where a debit increases the receiving side) and must not be "corrected"
// without a product-owner decision, or every stored balance shifts.
func AccountBalances(tracked []string, entries []models.LedgerEntry) map[string]float64 {
	balances := make(map[string]float64, len(tracked))
	for _, name := range tracked {
		balances[name] = 0
	}

	for _, e := range entries {
		if _, ok := balances[e.ToAccount]; ok {
			if e.Type == models.EntryTypeDebit {
				balances[e.ToAccount] -= e.Amount
			} else {
				balances[e.ToAccount] += e.Amount
			}
		}
		if _, ok := balances[e.FromAccount]; ok {
			if e.Type == models.EntryTypeDebit {
				balances[e.FromAccount] += e.Amount
			} else {
				balances[e.FromAccount] -= e.Amount
			}
		}
	}

	return balances
}
