package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Station: İstasyon (bölgede). Kodu kullanıcı girer; benzersiz kod
// müşteri-tesis-bölge-istasyon kodlarının birleşimidir ve her kayıtta
// yeniden hesaplanıp saklanır.
type Station struct {
	ID           uint      `gorm:"primaryKey"`
	ZoneID       uint      `gorm:"uniqueIndex:uniq_zone_station_kod;not null"`
	Zone         Zone      `gorm:"constraint:OnDelete:CASCADE"`
	Kod          string    `gorm:"size:20;uniqueIndex:uniq_zone_station_kod;not null"`
	Ad           string    `gorm:"size:150"`
	BenzersizKod string    `gorm:"size:80;uniqueIndex"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BeforeSave benzersiz kodu üst kayıtların güncel kodlarından türetir.
// Çakışma DB'deki unique index ile yakalanır.
func (s *Station) BeforeSave(tx *gorm.DB) error {
	if s.ZoneID == 0 || s.Kod == "" {
		return nil
	}
	var zone Zone
	if err := tx.Preload("Facility.Customer").First(&zone, s.ZoneID).Error; err != nil {
		return err
	}
	s.BenzersizKod = fmt.Sprintf("%s-%s-%s-%s",
		zone.Facility.Customer.Kod, zone.Facility.Kod, zone.Kod, s.Kod)
	return nil
}
