package auth

import (
	"gorm.io/gorm"

	"ilaclama-backend/internal/database"
	"ilaclama-backend/internal/models"
)

// CreateUserWithProfile kullanıcıyı ve profil satırını tek transaction'da açar.
// Profil, sinyal benzeri örtük bir mekanizma yerine kullanıcıyı oluşturan
// her yolun çağırdığı açık bir kancadır.
func CreateUserWithProfile(user *models.User, customerID *uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile := models.UserProfile{
			UserID:     user.ID,
			CustomerID: customerID,
		}
		return tx.Create(&profile).Error
	})
}
