package models

import "time"

// Customer: Müşteri (firma). Yetkili ve iletişim bilgileri Contact ile tutulur.
type Customer struct {
	ID        uint      `gorm:"primaryKey"`
	Kod       string    `gorm:"size:20;uniqueIndex;not null"`
	FirmaIsmi string    `gorm:"size:200;not null"`
	Adres     string    `gorm:"type:text"`
	NotAlani  string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
