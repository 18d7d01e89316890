package models

import "time"

// FaaliyetRaporu: İş kaydına bağlı faaliyet raporu kaydı (1-1). Rapor
// üretimi idempotenttir; tekrar üretim aynı satırın üzerine yazar.
type FaaliyetRaporu struct {
	ID               uint       `gorm:"primaryKey"`
	WorkRecordID     uint       `gorm:"uniqueIndex;not null"`
	WorkRecord       WorkRecord `gorm:"constraint:OnDelete:CASCADE"`
	MusteriKod       string     `gorm:"size:20"`
	IsKaydiKod       string     `gorm:"size:80"` // Form numarası anlık görüntüsü
	RaporTarihi      time.Time  `gorm:"type:date"`
	RaporOlusturuldu bool       `gorm:"default:false"`
	PdfYolu          string     `gorm:"size:255"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
