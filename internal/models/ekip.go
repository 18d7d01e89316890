package models

import "time"

// Ekip: Saha ekibi; kod, lider (kullanıcı), kişi sayısı ve serbest metin üyeler.
type Ekip struct {
	ID           uint      `gorm:"primaryKey"`
	Kod          string    `gorm:"size:20;uniqueIndex;not null"`
	EkipLideriID uint      `gorm:"not null"`
	EkipLideri   User      `gorm:"constraint:OnDelete:RESTRICT"`
	KisiSayisi   int       `gorm:"default:0"`
	Uyeler       string    `gorm:"type:text"` // Üye isimleri veya not
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
