package models

import "time"

// RateCard - agreed rate per party and material over an effective window.
// EffectiveTo nil means open-ended. Two cards for the same party+material
// must not have overlapping windows.
type RateCard struct {
	ID            uint      `gorm:"primaryKey"`
	PartyType     PartyType `gorm:"size:30;not null;index"`
	PartyID       uint      `gorm:"not null;index"`
	MaterialID    uint      `gorm:"not null;index"`
	Material      Material
	RatePerTon    float64   `gorm:"not null"`
	EffectiveFrom time.Time `gorm:"index;not null"`
	EffectiveTo   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
