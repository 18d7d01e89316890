package models

import "time"

type PeriyodSiklik string

const (
	SiklikGunluk   PeriyodSiklik = "gunluk"
	SiklikHaftalik PeriyodSiklik = "haftalik"
	SiklikAylik    PeriyodSiklik = "aylik"
	SiklikYillik   PeriyodSiklik = "yillik"
)

// Periyod: Periyodik ziyaret tanımı. Müşteri/tesis için belirli aralıklarla
// talep kaydı üretmek üzere kullanılır (cron işi veya elle tetikleme).
type Periyod struct {
	ID          uint       `gorm:"primaryKey"`
	CustomerID  uint       `gorm:"not null;index"`
	Customer    Customer   `gorm:"constraint:OnDelete:CASCADE"`
	FacilityID  *uint
	Facility    *Facility  `gorm:"constraint:OnDelete:CASCADE"`
	Ad          string     `gorm:"size:200"`
	TalepTipiID *uint
	TalepTipi   *TalepTipi `gorm:"foreignKey:TalepTipiID;constraint:OnDelete:RESTRICT"`

	BaslangicTarihi time.Time  `gorm:"type:date;not null"`
	BitisTarihi     *time.Time `gorm:"type:date"` // Boşsa süresiz
	TekrarSayisi    *int       // Bu kadar üretince dur; boşsa bitiş tarihine kadar

	Siklik PeriyodSiklik `gorm:"size:20;not null;default:haftalik"`
	Aralik int           `gorm:"default:1"` // Her kaç birimde bir

	HaftaninGunleri string `gorm:"size:50"` // Haftalık: 1=Pzt..7=Paz, virgülle
	AyinGunu        *int   // Aylık: 1-31
	Ay              *int   // Yıllık: 1-12

	Aktif     bool      `gorm:"default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
