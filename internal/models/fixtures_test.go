package models_test

import (
	"testing"
	"time"

	"ilaclama-backend/internal/models"

	"gorm.io/gorm"
)

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := models.User{
		Name:         "Test Personel",
		Email:        email,
		PasswordHash: "x",
		Role:         models.RolePersonel,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Kullanıcı oluşturulamadı: %v", err)
	}
	return &user
}

func createHiyerarsi(t *testing.T, db *gorm.DB, musteriKod, tesisKod, bolgeKod string) (*models.Customer, *models.Facility, *models.Zone) {
	t.Helper()

	customer := models.Customer{Kod: musteriKod, FirmaIsmi: musteriKod + " A.Ş."}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("Müşteri oluşturulamadı: %v", err)
	}
	facility := models.Facility{CustomerID: customer.ID, Kod: tesisKod, Ad: tesisKod + " Tesisi"}
	if err := db.Create(&facility).Error; err != nil {
		t.Fatalf("Tesis oluşturulamadı: %v", err)
	}
	zone := models.Zone{FacilityID: facility.ID, Kod: bolgeKod, Ad: bolgeKod + " Bölgesi"}
	if err := db.Create(&zone).Error; err != nil {
		t.Fatalf("Bölge oluşturulamadı: %v", err)
	}
	return &customer, &facility, &zone
}

func createTalepTipi(t *testing.T, db *gorm.DB) *models.TalepTipi {
	t.Helper()
	tip := models.TalepTipi{Ad: "Şikayet"}
	if err := db.Create(&tip).Error; err != nil {
		t.Fatalf("Talep tipi oluşturulamadı: %v", err)
	}
	return &tip
}

func createEkip(t *testing.T, db *gorm.DB, lider *models.User, kod string) *models.Ekip {
	t.Helper()
	ekip := models.Ekip{Kod: kod, EkipLideriID: lider.ID, KisiSayisi: 2}
	if err := db.Create(&ekip).Error; err != nil {
		t.Fatalf("Ekip oluşturulamadı: %v", err)
	}
	return &ekip
}

func gun(yil int, ay time.Month, g int) time.Time {
	return time.Date(yil, ay, g, 0, 0, 0, 0, time.UTC)
}
