package models

import "time"

// PartyType - counterparty role. "vendor-customer" is the receivable side
// (they owe us for delivered material); the other three are payable sides
// (we owe them material, freight or royalty).
type PartyType string

const (
	PartyTypeCustomer  PartyType = "vendor-customer"
	PartyTypeQuarry    PartyType = "mine-quarry"
	PartyTypeTransport PartyType = "transport-owner"
	PartyTypeRoyalty   PartyType = "royalty-owner"
)

// Modern master records (post-migration, referenced by id).

type VendorCustomer struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null;index"`
	Phone     string `gorm:"size:50"`
	Address   string `gorm:"size:255"`
	Balance   float64 `gorm:"default:0"` // externally maintained closing balance
	CreatedAt time.Time
	UpdatedAt time.Time
}

type MineQuarry struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null;index"`
	Location  string `gorm:"size:255"`
	Balance   float64 `gorm:"default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TransportOwnerProfile struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null;index"`
	Phone     string `gorm:"size:50"`
	Balance   float64 `gorm:"default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RoyaltyOwnerProfile struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null;index"`
	Balance   float64 `gorm:"default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Legacy master records (pre-migration, keyed by free-text name).
// Kept read-only: trips recorded before the id migration still join
// against these lists by name.

type Customer struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Quarry struct {
	ID         uint   `gorm:"primaryKey"`
	QuarryName string `gorm:"size:100;not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type RoyaltyOwner struct {
	ID        uint   `gorm:"primaryKey"`
	OwnerName string `gorm:"size:100;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
