package models

import "time"

// UygulamaTanim: Yapılabilecek uygulamaların tanım listesi.
// İş kaydındaki yapılan uygulamalar buradan seçilir.
type UygulamaTanim struct {
	ID        uint      `gorm:"primaryKey"`
	Ad        string    `gorm:"size:300;not null"`
	Sira      int       `gorm:"default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
