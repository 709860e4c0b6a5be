package models

import "time"

type Material struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null;unique"`
	Unit      string `gorm:"size:20;default:ton"` // ton / cft / brass
	CreatedAt time.Time
	UpdatedAt time.Time
}
