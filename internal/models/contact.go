package models

import (
	"time"

	"gorm.io/gorm"

	"ilaclama-backend/internal/apperr"
)

// Contact: Müşteri veya tesis iletişim kişisi. En az biri bağlı olmalıdır.
type Contact struct {
	ID         uint      `gorm:"primaryKey"`
	CustomerID *uint     `gorm:"index"`
	Customer   *Customer
	FacilityID *uint     `gorm:"index"`
	Facility   *Facility
	AdSoyad    string    `gorm:"size:150;not null"`
	Unvan      string    `gorm:"size:100"`
	Telefon    string    `gorm:"size:30"`
	Email      string    `gorm:"size:100"`
	NotAlani   string    `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (c *Contact) BeforeSave(tx *gorm.DB) error {
	if c.CustomerID == nil && c.FacilityID == nil {
		return apperr.Validationf("iletişim kaydı bir müşteri veya tesise bağlı olmalı")
	}
	// Hem müşteri hem tesis verildiyse tesis o müşteriye ait olmalı
	if c.CustomerID != nil && c.FacilityID != nil {
		var facility Facility
		if err := tx.First(&facility, *c.FacilityID).Error; err != nil {
			return apperr.Validationf("tesis bulunamadı: %d", *c.FacilityID)
		}
		if facility.CustomerID != *c.CustomerID {
			return apperr.Validationf("tesis seçilen müşteriye ait değil")
		}
	}
	return nil
}
