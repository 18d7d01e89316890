package models

import "time"

// TespitTanim: Tespit türlerinin tanım listesi.
type TespitTanim struct {
	ID        uint      `gorm:"primaryKey"`
	Ad        string    `gorm:"size:300;not null"`
	Sira      int       `gorm:"default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
