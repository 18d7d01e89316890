package models

// WorkRecordUygulama: İş kaydında yapılan uygulama (tanım listesinden seçilen).
type WorkRecordUygulama struct {
	ID              uint          `gorm:"primaryKey"`
	WorkRecordID    uint          `gorm:"uniqueIndex:uniq_workrecord_uygulama;not null"`
	WorkRecord      WorkRecord    `gorm:"constraint:OnDelete:CASCADE"`
	UygulamaTanimID uint          `gorm:"uniqueIndex:uniq_workrecord_uygulama;not null"`
	UygulamaTanim   UygulamaTanim `gorm:"constraint:OnDelete:RESTRICT"`
}
