package models

import "time"

// PeriyodTalep: Periyoddan üretilmiş talebin kaydı. Aynı periyot + tarih için
// ikinci kez talep üretilmesini engeller (cron tekrar çalışsa bile).
type PeriyodTalep struct {
	ID        uint      `gorm:"primaryKey"`
	PeriyodID uint      `gorm:"uniqueIndex:uniq_periyod_tarih;not null"`
	Periyod   Periyod   `gorm:"constraint:OnDelete:CASCADE"`
	Tarih     time.Time `gorm:"type:date;uniqueIndex:uniq_periyod_tarih;not null"`
	TalepID   uint      `gorm:"not null"`
	Talep     Talep     `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}
