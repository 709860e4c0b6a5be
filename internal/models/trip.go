package models

import "time"

// Trip - one truck movement from quarry to customer. Party references are
// free-text names (legacy scheme); the resolver joins them against both the
// legacy and modern master lists. The four money fields are fixed at entry
// time: Revenue is what the customer owes, the three cost fields are what
// the business owes the quarry, transporter and royalty owner respectively.
// Trips are never algorithmically mutated once settled.
type Trip struct {
	ID               uint      `gorm:"primaryKey"`
	Date             time.Time `gorm:"index;not null"`
	Customer         string    `gorm:"size:100;index"`
	QuarryName       string    `gorm:"size:100;index"`
	TransporterName  string    `gorm:"size:100;index"`
	RoyaltyOwnerName string    `gorm:"size:100;index"`
	VehicleNo        string    `gorm:"size:20"`
	Material         string    `gorm:"size:100"`
	Tonnage          float64   `gorm:"default:0"` // legacy column, superseded by NetWeight
	NetWeight        float64   `gorm:"default:0"` // weighbridge net weight in tons
	Revenue          float64   `gorm:"default:0"`
	MaterialCost     float64   `gorm:"default:0"`
	TransportCost    float64   `gorm:"default:0"`
	RoyaltyCost      float64   `gorm:"default:0"`
	ImportBatchID    string    `gorm:"size:36;index"` // set for bulk-imported rows
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
