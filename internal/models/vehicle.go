package models

import "time"

// Vehicle - legacy vehicle register. OwnerName doubles as the legacy
// transport-owner list: pre-migration trips reference transporters via
// the owner name recorded here.
type Vehicle struct {
	ID             uint    `gorm:"primaryKey"`
	RegistrationNo string  `gorm:"size:20;not null;uniqueIndex"`
	OwnerName      string  `gorm:"size:100;index"`
	CapacityTons   float64 `gorm:"default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
