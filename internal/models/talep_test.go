package models_test

import (
	"testing"
	"time"

	"ilaclama-backend/internal/models"
	"ilaclama-backend/internal/testutil"
)

func TestTalepVarsayilanBeklemede(t *testing.T) {
	db := testutil.SetupTestDB(t)
	customer, _, _ := createHiyerarsi(t, db, "C1", "F1", "Z1")
	tip := createTalepTipi(t, db)

	talep := models.Talep{
		CustomerID: customer.ID,
		Tarih:      gun(2026, time.March, 5),
		TipID:      tip.ID,
		Aciklama:   "Fare görüldü",
	}
	if err := db.Create(&talep).Error; err != nil {
		t.Fatalf("Talep oluşturulamadı: %v", err)
	}

	if talep.Durum != models.TalepDurumBeklemede {
		t.Errorf("Durum = %q, beklenen beklemede", talep.Durum)
	}
}

func TestTalepPlanlamaylaAcilirsaPlanlandi(t *testing.T) {
	db := testutil.SetupTestDB(t)
	customer, _, _ := createHiyerarsi(t, db, "C1", "F1", "Z1")
	tip := createTalepTipi(t, db)
	lider := createUser(t, db, "lider@test.com")
	ekip := createEkip(t, db, lider, "E1")

	planTarih := gun(2026, time.March, 10)
	talep := models.Talep{
		CustomerID:      customer.ID,
		Tarih:           gun(2026, time.March, 5),
		TipID:           tip.ID,
		Aciklama:        "Periyodik ziyaret",
		PlanlananTarih:  &planTarih,
		PlanlananEkipID: &ekip.ID,
	}
	if err := db.Create(&talep).Error; err != nil {
		t.Fatalf("Talep oluşturulamadı: %v", err)
	}

	if talep.Durum != models.TalepDurumPlanlandi {
		t.Errorf("Durum = %q, beklenen planlandi", talep.Durum)
	}
}

func TestTalepPlanlamaSonradanEklenincePlanlandi(t *testing.T) {
	db := testutil.SetupTestDB(t)
	customer, _, _ := createHiyerarsi(t, db, "C1", "F1", "Z1")
	tip := createTalepTipi(t, db)
	lider := createUser(t, db, "lider@test.com")
	ekip := createEkip(t, db, lider, "E1")

	talep := models.Talep{
		CustomerID: customer.ID,
		Tarih:      gun(2026, time.March, 5),
		TipID:      tip.ID,
		Aciklama:   "Fare görüldü",
	}
	if err := db.Create(&talep).Error; err != nil {
		t.Fatalf("Talep oluşturulamadı: %v", err)
	}

	planTarih := gun(2026, time.March, 12)
	talep.PlanlananTarih = &planTarih
	talep.PlanlananEkipID = &ekip.ID
	if err := db.Save(&talep).Error; err != nil {
		t.Fatalf("Talep güncellenemedi: %v", err)
	}

	if talep.Durum != models.TalepDurumPlanlandi {
		t.Errorf("Durum = %q, beklenen planlandi", talep.Durum)
	}
}

func TestRecalculateYapildiUretmez(t *testing.T) {
	db := testutil.SetupTestDB(t)
	customer, _, _ := createHiyerarsi(t, db, "C1", "F1", "Z1")
	tip := createTalepTipi(t, db)

	talep := models.Talep{
		CustomerID: customer.ID,
		Tarih:      gun(2026, time.March, 5),
		TipID:      tip.ID,
		Aciklama:   "Fare görüldü",
	}
	if err := db.Create(&talep).Error; err != nil {
		t.Fatalf("Talep oluşturulamadı: %v", err)
	}

	// Kapatan kayıt ayrıldığında yapildi kalmamalı
	db.Model(&models.Talep{}).Where("id = ?", talep.ID).
		UpdateColumn("durum", models.TalepDurumYapildi)

	if err := models.RecalculateTalepDurum(db, talep.ID); err != nil {
		t.Fatalf("Durum yeniden hesaplanamadı: %v", err)
	}

	var yeniden models.Talep
	db.First(&yeniden, talep.ID)
	if yeniden.Durum != models.TalepDurumBeklemede {
		t.Errorf("Durum = %q, beklenen beklemede", yeniden.Durum)
	}
}

func TestRecalculateSilinmisTalepteSessiz(t *testing.T) {
	db := testutil.SetupTestDB(t)

	if err := models.RecalculateTalepDurum(db, 99999); err != nil {
		t.Errorf("Silinmiş talep için hata döndü: %v", err)
	}
}
