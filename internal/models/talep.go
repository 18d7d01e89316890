package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TalepDurum string

const (
	TalepDurumBeklemede TalepDurum = "beklemede"
	TalepDurumPlanlandi TalepDurum = "planlandi"
	TalepDurumYapildi   TalepDurum = "yapildi"
)

// Talep: Servis talebi. Planlama bilgisi dolunca Planlandı olur;
// Yapıldı durumuna yalnızca kapatan iş kaydının kaydedilmesi geçirir.
type Talep struct {
	ID              uint       `gorm:"primaryKey"`
	CustomerID      uint       `gorm:"not null;index"`
	Customer        Customer   `gorm:"constraint:OnDelete:CASCADE"`
	FacilityID      *uint      `gorm:"index"`
	Facility        *Facility  `gorm:"constraint:OnDelete:CASCADE"`
	Tarih           time.Time  `gorm:"type:date;not null;index"`
	TipID           uint       `gorm:"not null"`
	Tip             TalepTipi  `gorm:"foreignKey:TipID;constraint:OnDelete:RESTRICT"`
	Aciklama        string     `gorm:"type:text;not null"`
	Durum           TalepDurum `gorm:"size:20;not null;default:beklemede;index"`
	PlanlananTarih  *time.Time `gorm:"type:date"`
	PlanlananEkipID *uint
	PlanlananEkip   *Ekip      `gorm:"foreignKey:PlanlananEkipID"`
	IliskiTalepID   *uint
	IliskiTalep     *Talep     `gorm:"foreignKey:IliskiTalepID"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// BeforeSave: planlanan tarih ve ekip doluysa durum Planlandı olur (Yapıldı değilse).
// Yapıldı ataması burada değil, WorkRecord kaydetme yolundadır.
func (t *Talep) BeforeSave(tx *gorm.DB) error {
	if t.Durum == "" {
		t.Durum = TalepDurumBeklemede
	}
	if t.PlanlananTarih != nil && t.PlanlananEkipID != nil && t.Durum != TalepDurumYapildi {
		t.Durum = TalepDurumPlanlandi
	}
	return nil
}

// RecalculateTalepDurum kapatan iş kaydı kalktığında (yeniden bağlama veya
// silme) talebin durumunu planlama bilgisine göre günceller. Bu yol asla
// Yapıldı üretmez. Talep bu arada silindiyse sessizce geçilir.
func RecalculateTalepDurum(tx *gorm.DB, talepID uint) error {
	var talep Talep
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&talep, talepID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	durum := TalepDurumBeklemede
	if talep.PlanlananTarih != nil && talep.PlanlananEkipID != nil {
		durum = TalepDurumPlanlandi
	}
	if talep.Durum == durum {
		return nil
	}
	return tx.Model(&Talep{}).Where("id = ?", talepID).UpdateColumn("durum", durum).Error
}
