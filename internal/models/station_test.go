package models_test

import (
	"testing"

	"ilaclama-backend/internal/models"
	"ilaclama-backend/internal/testutil"
)

func TestStationBenzersizKodTuretimi(t *testing.T) {
	db := testutil.SetupTestDB(t)
	_, _, zone := createHiyerarsi(t, db, "C1", "F1", "Z1")

	station := models.Station{ZoneID: zone.ID, Kod: "S1", Ad: "Giriş kapısı"}
	if err := db.Create(&station).Error; err != nil {
		t.Fatalf("İstasyon oluşturulamadı: %v", err)
	}

	if station.BenzersizKod != "C1-F1-Z1-S1" {
		t.Errorf("Benzersiz kod = %q, beklenen C1-F1-Z1-S1", station.BenzersizKod)
	}
}

func TestStationKodDegisinceYenidenTuretilir(t *testing.T) {
	db := testutil.SetupTestDB(t)
	_, _, zone := createHiyerarsi(t, db, "C1", "F1", "Z1")

	station := models.Station{ZoneID: zone.ID, Kod: "S1"}
	if err := db.Create(&station).Error; err != nil {
		t.Fatalf("İstasyon oluşturulamadı: %v", err)
	}

	station.Kod = "S9"
	if err := db.Save(&station).Error; err != nil {
		t.Fatalf("İstasyon güncellenemedi: %v", err)
	}

	var yeniden models.Station
	if err := db.First(&yeniden, station.ID).Error; err != nil {
		t.Fatalf("İstasyon okunamadı: %v", err)
	}
	if yeniden.BenzersizKod != "C1-F1-Z1-S9" {
		t.Errorf("Benzersiz kod = %q, beklenen C1-F1-Z1-S9", yeniden.BenzersizKod)
	}
}

func TestStationAyniBolgedeKodCakismasi(t *testing.T) {
	db := testutil.SetupTestDB(t)
	_, _, zone := createHiyerarsi(t, db, "C1", "F1", "Z1")

	ilk := models.Station{ZoneID: zone.ID, Kod: "S1"}
	if err := db.Create(&ilk).Error; err != nil {
		t.Fatalf("İstasyon oluşturulamadı: %v", err)
	}

	kopya := models.Station{ZoneID: zone.ID, Kod: "S1"}
	if err := db.Create(&kopya).Error; err == nil {
		t.Fatal("Aynı bölgede aynı kodla ikinci istasyon kabul edildi")
	}
}

func TestFarkliHiyerarsilerdeAyniIstasyonKodu(t *testing.T) {
	db := testutil.SetupTestDB(t)
	_, _, zone1 := createHiyerarsi(t, db, "C1", "F1", "Z1")
	_, _, zone2 := createHiyerarsi(t, db, "C2", "F1", "Z1")

	s1 := models.Station{ZoneID: zone1.ID, Kod: "S1"}
	s2 := models.Station{ZoneID: zone2.ID, Kod: "S1"}
	if err := db.Create(&s1).Error; err != nil {
		t.Fatalf("İlk istasyon oluşturulamadı: %v", err)
	}
	if err := db.Create(&s2).Error; err != nil {
		t.Fatalf("İkinci istasyon oluşturulamadı: %v", err)
	}

	if s1.BenzersizKod == s2.BenzersizKod {
		t.Errorf("Farklı müşterilerde benzersiz kodlar çakıştı: %q", s1.BenzersizKod)
	}
}

func TestContactMusteriVeyaTesisZorunlu(t *testing.T) {
	db := testutil.SetupTestDB(t)

	contact := models.Contact{AdSoyad: "Ali Veli"}
	if err := db.Create(&contact).Error; err == nil {
		t.Fatal("Müşterisiz ve tesissiz iletişim kaydı kabul edildi")
	}
}

func TestContactTesisBaskaMusterininOlamaz(t *testing.T) {
	db := testutil.SetupTestDB(t)
	customer1, _, _ := createHiyerarsi(t, db, "C1", "F1", "Z1")
	_, facility2, _ := createHiyerarsi(t, db, "C2", "F2", "Z2")

	contact := models.Contact{
		CustomerID: &customer1.ID,
		FacilityID: &facility2.ID,
		AdSoyad:    "Ali Veli",
	}
	if err := db.Create(&contact).Error; err == nil {
		t.Fatal("Başka müşterinin tesisine bağlı iletişim kaydı kabul edildi")
	}
}
