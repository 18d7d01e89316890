package models

type TespitYogunluk string

const (
	YogunlukAz     TespitYogunluk = "az"
	YogunlukCok    TespitYogunluk = "cok"
	YogunlukIstila TespitYogunluk = "istila"
)

type TespitEden string

const (
	TespitEdenMusteri TespitEden = "musteri"
	TespitEdenFirma   TespitEden = "firma"
)

// WorkRecordTespit: İş kaydında yapılan tespit; yoğunluk ve tespit eden taraf.
type WorkRecordTespit struct {
	ID            uint           `gorm:"primaryKey"`
	WorkRecordID  uint           `gorm:"index;not null"`
	WorkRecord    WorkRecord     `gorm:"constraint:OnDelete:CASCADE"`
	TespitTanimID uint           `gorm:"not null"`
	TespitTanim   TespitTanim    `gorm:"constraint:OnDelete:RESTRICT"`
	Yogunluk      TespitYogunluk `gorm:"size:20;default:az"`
	TespitEden    TespitEden     `gorm:"size:20;default:firma"`
}
