package models

import "time"

type AccountKind string

const (
	AccountKindBank         AccountKind = "bank"
	AccountKindCapitalLoans AccountKind = "capital_loans"
	AccountKindInvestment   AccountKind = "investment"
	AccountKindPersonal     AccountKind = "personal"
)

// CapitalAccount - an internal account tracked by the capital overview
// (bank, capital & loans, investment, personal funds).
type CapitalAccount struct {
	ID        uint        `gorm:"primaryKey"`
	Name      string      `gorm:"size:100;not null;unique"`
	Kind      AccountKind `gorm:"size:20;not null"`
	IsActive  bool        `gorm:"default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LedgerEntry - double-entry transfer between two named accounts. The sign
// convention is historical and deliberately kept: a DEBIT entry increases
// the From side and decreases the To side of tracked balances.
type LedgerEntry struct {
	ID          uint      `gorm:"primaryKey"`
	FromAccount string    `gorm:"size:100;not null;index"`
	ToAccount   string    `gorm:"size:100;not null;index"`
	Type        EntryType `gorm:"size:10;not null"`
	Amount      float64   `gorm:"not null"`
	Date        time.Time `gorm:"index;not null"`
	Description string    `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
