package models

import "time"

// WorkRecordStationCount: İş kaydında istasyon bazlı tüketim gözlemi.
// (iş kaydı, istasyon) çifti başına en fazla bir satır; yazma upsert ile yapılır.
// Tüketim raporlara yalnızca Var/Yok olarak çıkar, sayısal değer tutulmaz.
type WorkRecordStationCount struct {
	ID           uint       `gorm:"primaryKey"`
	WorkRecordID uint       `gorm:"uniqueIndex:uniq_workrecord_station;not null"`
	WorkRecord   WorkRecord `gorm:"constraint:OnDelete:CASCADE"`
	StationID    uint       `gorm:"uniqueIndex:uniq_workrecord_station;not null"`
	Station      Station    `gorm:"constraint:OnDelete:CASCADE"`
	TuketimVar   bool       `gorm:"default:false"`
	NotAlani     string     `gorm:"size:200"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
