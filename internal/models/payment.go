package models

import "time"

type PaymentType string

const (
	PaymentTypeReceipt PaymentType = "RECEIPT" // money into the business
	PaymentTypePayment PaymentType = "PAYMENT" // money out of the business
)

// Payment - a settlement event. RatePartyID/RatePartyType address a party
// directly; when absent, statement matching falls back on the Method
// account name. Sign against a party's balance depends on the party role:
// a RECEIPT reduces what a customer owes, a PAYMENT reduces what is owed
// to a vendor-side party.
type Payment struct {
	ID            uint        `gorm:"primaryKey"`
	Type          PaymentType `gorm:"size:10;not null;index"`
	Amount        float64     `gorm:"not null"`
	Date          time.Time   `gorm:"index;not null"`
	RatePartyType PartyType   `gorm:"size:30;index"`
	RatePartyID   *uint       `gorm:"index"`
	Method        string      `gorm:"size:100"` // settling bank/cash account name
	Description   string      `gorm:"size:255"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Advance - prepayment against a specific trip, debited against the
// trip's outstanding amount for the given party role.
type Advance struct {
	ID            uint      `gorm:"primaryKey"`
	TripID        uint      `gorm:"index;not null"`
	Trip          Trip
	RatePartyType PartyType `gorm:"size:30;not null;index"`
	RatePartyID   *uint     `gorm:"index"`
	Amount        float64   `gorm:"not null"`
	Date          time.Time `gorm:"index;not null"`
	Description   string    `gorm:"size:255"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
