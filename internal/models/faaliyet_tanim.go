package models

import "time"

// FaaliyetTanim: Düzeltici / önleyici faaliyet tanım listesi.
type FaaliyetTanim struct {
	ID        uint      `gorm:"primaryKey"`
	Ad        string    `gorm:"size:300;not null"`
	Sira      int       `gorm:"default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
