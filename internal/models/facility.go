package models

import "time"

// Facility: Tesis (müşteriye ait). Kod müşteri içinde benzersizdir.
type Facility struct {
	ID         uint      `gorm:"primaryKey"`
	CustomerID uint      `gorm:"uniqueIndex:uniq_customer_facility_kod;not null"`
	Customer   Customer  `gorm:"constraint:OnDelete:CASCADE"`
	Kod        string    `gorm:"size:20;uniqueIndex:uniq_customer_facility_kod;not null"`
	Ad         string    `gorm:"size:200;not null"`
	Adres      string    `gorm:"type:text"`
	NotAlani   string    `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
