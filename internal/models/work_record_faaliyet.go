package models

// WorkRecordFaaliyet: İş kaydında düzeltici/önleyici faaliyet satırı;
// faaliyet seçimi + durum bayrakları.
type WorkRecordFaaliyet struct {
	ID              uint          `gorm:"primaryKey"`
	WorkRecordID    uint          `gorm:"uniqueIndex:uniq_workrecord_faaliyet;not null"`
	WorkRecord      WorkRecord    `gorm:"constraint:OnDelete:CASCADE"`
	FaaliyetTanimID uint          `gorm:"uniqueIndex:uniq_workrecord_faaliyet;not null"`
	FaaliyetTanim   FaaliyetTanim `gorm:"constraint:OnDelete:RESTRICT"`

	Kontrol          bool `gorm:"default:false"`
	Kuruldu          bool `gorm:"default:false"`
	Eklendi          bool `gorm:"default:false"`
	Sabitlendi       bool `gorm:"default:false"`
	YeriDegistirildi bool `gorm:"default:false"`
	Yenilendi        bool `gorm:"default:false"`
}
