package models

import "time"

// TalepTipi: Talep tipi tanımı (Şikayet, Periyodik ziyaret vb.).
type TalepTipi struct {
	ID        uint      `gorm:"primaryKey"`
	Ad        string    `gorm:"size:100;not null"`
	Sira      int       `gorm:"default:0"` // Liste sıralaması
	CreatedAt time.Time
	UpdatedAt time.Time
}
