package models

import "time"

// IlacTanim: İlaç / fare yemi tanımı. Pasif ilaçlar yeni iş kaydında
// seçilemez; mevcut kayıtlar referanslarını korur.
type IlacTanim struct {
	ID                 uint      `gorm:"primaryKey"`
	TeminEdildigiFirma string    `gorm:"size:150"`
	TicariIsmi         string    `gorm:"size:150;not null"`
	AktifMadde         string    `gorm:"size:100"`
	Ambalaj            string    `gorm:"size:20"`
	Antidot            string    `gorm:"size:50"`
	Aktif              bool      `gorm:"default:true"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Secilebilir yeni kayıtlarda seçime açık olup olmadığını söyler.
func (i *IlacTanim) Secilebilir() bool {
	return i.Aktif
}
