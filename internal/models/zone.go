package models

import "time"

// Zone: Bölge (tesise ait). Kod tesis içinde benzersizdir.
type Zone struct {
	ID         uint      `gorm:"primaryKey"`
	FacilityID uint      `gorm:"uniqueIndex:uniq_facility_zone_kod;not null"`
	Facility   Facility  `gorm:"constraint:OnDelete:CASCADE"`
	Kod        string    `gorm:"size:20;uniqueIndex:uniq_facility_zone_kod;not null"`
	Ad         string    `gorm:"size:200;not null"`
	NotAlani   string    `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
