package models

import "time"

// UserProfile: Kullanıcı profili; opsiyonel müşteri bağlantısı taşır.
// Kullanıcı oluşturulurken auth.CreateUserWithProfile üzerinden açılır.
type UserProfile struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"uniqueIndex;not null"`
	User       User      `gorm:"constraint:OnDelete:CASCADE"`
	CustomerID *uint
	Customer   *Customer
	AvatarYolu string    `gorm:"size:255"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
