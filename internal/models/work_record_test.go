package models_test

import (
	"errors"
	"testing"
	"time"

	"ilaclama-backend/internal/apperr"
	"ilaclama-backend/internal/models"
	"ilaclama-backend/internal/testutil"

	"gorm.io/gorm"
)

func createTalep(t *testing.T, db *gorm.DB, customer *models.Customer, facility *models.Facility, planli bool) *models.Talep {
	t.Helper()

	tip := models.TalepTipi{Ad: "Periyodik"}
	if err := db.Create(&tip).Error; err != nil {
		t.Fatalf("Talep tipi oluşturulamadı: %v", err)
	}

	talep := models.Talep{
		CustomerID: customer.ID,
		Tarih:      gun(2026, time.April, 1),
		TipID:      tip.ID,
		Aciklama:   "Aylık ziyaret",
	}
	if facility != nil {
		talep.FacilityID = &facility.ID
	}
	if planli {
		lider := createUser(t, db, "planlider@test.com")
		ekip := createEkip(t, db, lider, "EP")
		planTarih := gun(2026, time.April, 10)
		talep.PlanlananTarih = &planTarih
		talep.PlanlananEkipID = &ekip.ID
	}
	if err := db.Create(&talep).Error; err != nil {
		t.Fatalf("Talep oluşturulamadı: %v", err)
	}
	return &talep
}

func TestKapatanKayitTalebiYapildiYapar(t *testing.T) {
	db := testutil.SetupTestDB(t)
	customer, facility, _ := createHiyerarsi(t, db, "C1", "F1", "Z1")
	talep := createTalep(t, db, customer, facility, false)
	personel := createUser(t, db, "personel@test.com")

	record := models.WorkRecord{
		Tarih:            gun(2026, time.April, 15),
		PersonelID:       personel.ID,
		KapatilanTalepID: &talep.ID,
	}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("İş kaydı oluşturulamadı: %v", err)
	}

	var yeniden models.Talep
	db.First(&yeniden, talep.ID)
	if yeniden.Durum != models.TalepDurumYapildi {
		t.Errorf("Talep durumu = %q, beklenen yapildi", yeniden.Durum)
	}
	if record.FormNumarasi != "C1-F1-20260415" {
		t.Errorf("Form numarası = %q, beklenen C1-F1-20260415", record.FormNumarasi)
	}
}

func TestFormNumarasiTesissizTalepteBos(t *testing.T) {
	db := testutil.SetupTestDB(t)
	customer, _, _ := createHiyerarsi(t, db, "C1", "F1", "Z1")
	talep := createTalep(t, db, customer, nil, false)
	personel := createUser(t, db, "personel@test.com")

	record := models.WorkRecord{
		Tarih:            gun(2026, time.April, 15),
		PersonelID:       personel.ID,
		KapatilanTalepID: &talep.ID,
	}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("İş kaydı oluşturulamadı: %v", err)
	}

	if record.FormNumarasi != "" {
		t.Errorf("Form numarası = %q, tesissiz talepte boş olmalı", record.FormNumarasi)
	}
}

func TestTalepsizKayitFormNumarasiBos(t *testing.T) {
	db := testutil.SetupTestDB(t)
	_, facility, _ := createHiyerarsi(t, db, "C1", "F1", "Z1")
	personel := createUser(t, db, "personel@test.com")

	record := models.WorkRecord{
		Tarih:      gun(2026, time.April, 15),
		PersonelID: personel.ID,
		FacilityID: &facility.ID,
	}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("İş kaydı oluşturulamadı: %v", err)
	}

	// Kaydın kendi tesisi olsa bile form numarası kapatılan talebe bağlıdır
	if record.FormNumarasi != "" {
		t.Errorf("Form numarası = %q, talepsiz kayıtta boş olmalı", record.FormNumarasi)
	}
}

func TestYenidenBaglamaEskiTalebiGunceller(t *testing.T) {
	db := testutil.SetupTestDB(t)
	customer, facility, _ := createHiyerarsi(t, db, "C1", "F1", "Z1")
	eskiTalep := createTalep(t, db, customer, facility, true)
	yeniTalep := createTalep(t, db, customer, facility, false)
	personel := createUser(t, db, "personel@test.com")

	record := models.WorkRecord{
		Tarih:            gun(2026, time.April, 15),
		PersonelID:       personel.ID,
		KapatilanTalepID: &eskiTalep.ID,
	}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("İş kaydı oluşturulamadı: %v", err)
	}

	record.KapatilanTalepID = &yeniTalep.ID
	if err := db.Save(&record).Error; err != nil {
		t.Fatalf("İş kaydı güncellenemedi: %v", err)
	}

	var eski, yeni models.Talep
	db.First(&eski, eskiTalep.ID)
	db.First(&yeni, yeniTalep.ID)

	// Eski talep planlama bilgisi taşıdığından planlandi'ye döner, yapildi kalmaz
	if eski.Durum != models.TalepDurumPlanlandi {
		t.Errorf("Eski talep durumu = %q, beklenen planlandi", eski.Durum)
	}
	if yeni.Durum != models.TalepDurumYapildi {
		t.Errorf("Yeni talep durumu = %q, beklenen yapildi", yeni.Durum)
	}
}

func TestSilmeKapatilanTalebiSerbestBirakir(t *testing.T) {
	db := testutil.SetupTestDB(t)
	customer, facility, _ := createHiyerarsi(t, db, "C1", "F1", "Z1")
	talep := createTalep(t, db, customer, facility, false)
	personel := createUser(t, db, "personel@test.com")

	record := models.WorkRecord{
		Tarih:            gun(2026, time.April, 15),
		PersonelID:       personel.ID,
		KapatilanTalepID: &talep.ID,
	}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("İş kaydı oluşturulamadı: %v", err)
	}

	if err := db.Delete(&record).Error; err != nil {
		t.Fatalf("İş kaydı silinemedi: %v", err)
	}

	var yeniden models.Talep
	db.First(&yeniden, talep.ID)
	if yeniden.Durum != models.TalepDurumBeklemede {
		t.Errorf("Talep durumu = %q, beklenen beklemede", yeniden.Durum)
	}
}

func TestVarOlmayanTalepKapatilamaz(t *testing.T) {
	db := testutil.SetupTestDB(t)
	personel := createUser(t, db, "personel@test.com")

	yok := uint(99999)
	record := models.WorkRecord{
		Tarih:            gun(2026, time.April, 15),
		PersonelID:       personel.ID,
		KapatilanTalepID: &yok,
	}
	err := db.Create(&record).Error
	if err == nil {
		t.Fatal("Var olmayan talebi kapatan kayıt kabul edildi")
	}
	if !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("Hata türü doğrulama değil: %v", err)
	}
}

func TestAyniTalebiIkinciKayitKapatamaz(t *testing.T) {
	db := testutil.SetupTestDB(t)
	customer, facility, _ := createHiyerarsi(t, db, "C1", "F1", "Z1")
	talep := createTalep(t, db, customer, facility, false)
	personel := createUser(t, db, "personel@test.com")

	ilk := models.WorkRecord{
		Tarih:            gun(2026, time.April, 15),
		PersonelID:       personel.ID,
		KapatilanTalepID: &talep.ID,
	}
	if err := db.Create(&ilk).Error; err != nil {
		t.Fatalf("İlk iş kaydı oluşturulamadı: %v", err)
	}

	ikinci := models.WorkRecord{
		Tarih:            gun(2026, time.April, 16),
		PersonelID:       personel.ID,
		KapatilanTalepID: &talep.ID,
	}
	if err := db.Create(&ikinci).Error; err == nil {
		t.Fatal("Aynı talebi kapatan ikinci iş kaydı kabul edildi")
	}
}
