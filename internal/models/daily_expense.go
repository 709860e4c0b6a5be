package models

import "time"

type EntryType string

const (
	EntryTypeDebit  EntryType = "DEBIT"
	EntryTypeCredit EntryType = "CREDIT"
)

// DailyExpense - a DEBIT/CREDIT event against a rate party, independent of
// any specific trip (diesel, repairs, misc adjustments).
type DailyExpense struct {
	ID            uint      `gorm:"primaryKey"`
	Type          EntryType `gorm:"size:10;not null"`
	RatePartyType PartyType `gorm:"size:30;not null;index"`
	RatePartyID   *uint     `gorm:"index"`
	Amount        float64   `gorm:"not null"`
	Date          time.Time `gorm:"index;not null"`
	Description   string    `gorm:"size:255"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
