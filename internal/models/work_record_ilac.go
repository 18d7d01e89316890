package models

// WorkRecordIlac: İş kaydında kullanılan ilaç; tanımdan seçim + miktar.
type WorkRecordIlac struct {
	ID           uint       `gorm:"primaryKey"`
	WorkRecordID uint       `gorm:"uniqueIndex:uniq_workrecord_ilac;not null"`
	WorkRecord   WorkRecord `gorm:"constraint:OnDelete:CASCADE"`
	IlacTanimID  uint       `gorm:"uniqueIndex:uniq_workrecord_ilac;not null"`
	IlacTanim    IlacTanim  `gorm:"constraint:OnDelete:RESTRICT"`
	Miktar       float64    `gorm:"type:numeric(12,2);default:0"`
}
