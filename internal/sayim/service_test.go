package sayim_test

import (
	"errors"
	"testing"
	"time"

	"ilaclama-backend/internal/apperr"
	"ilaclama-backend/internal/models"
	"ilaclama-backend/internal/sayim"
	"ilaclama-backend/internal/testutil"

	"gorm.io/gorm"
)

type fixture struct {
	facility *models.Facility
	stations []models.Station
	record   *models.WorkRecord
}

// Tesiste tek bölge + istasyonlar ve tesise bağlı bir iş kaydı kurar.
func setupFixture(t *testing.T, db *gorm.DB, istasyonSayisi int) *fixture {
	t.Helper()

	customer := models.Customer{Kod: "C1", FirmaIsmi: "C1 A.Ş."}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("Müşteri oluşturulamadı: %v", err)
	}
	facility := models.Facility{CustomerID: customer.ID, Kod: "F1", Ad: "F1 Tesisi"}
	if err := db.Create(&facility).Error; err != nil {
		t.Fatalf("Tesis oluşturulamadı: %v", err)
	}
	zone := models.Zone{FacilityID: facility.ID, Kod: "Z1", Ad: "Z1 Bölgesi"}
	if err := db.Create(&zone).Error; err != nil {
		t.Fatalf("Bölge oluşturulamadı: %v", err)
	}

	stations := make([]models.Station, 0, istasyonSayisi)
	for i := 0; i < istasyonSayisi; i++ {
		st := models.Station{ZoneID: zone.ID, Kod: string(rune('A' + i))}
		if err := db.Create(&st).Error; err != nil {
			t.Fatalf("İstasyon oluşturulamadı: %v", err)
		}
		stations = append(stations, st)
	}

	personel := models.User{Name: "Personel", Email: "p@test.com", PasswordHash: "x", Role: models.RolePersonel}
	if err := db.Create(&personel).Error; err != nil {
		t.Fatalf("Kullanıcı oluşturulamadı: %v", err)
	}
	record := models.WorkRecord{
		Tarih:      time.Date(2026, time.May, 4, 0, 0, 0, 0, time.UTC),
		PersonelID: personel.ID,
		FacilityID: &facility.ID,
	}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("İş kaydı oluşturulamadı: %v", err)
	}

	return &fixture{facility: &facility, stations: stations, record: &record}
}

func TestRecordCountUpsert(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := setupFixture(t, db, 2)

	satir, err := sayim.RecordCount(db, f.record.ID, sayim.CountItem{
		StationID: f.stations[0].ID, TuketimVar: true, NotAlani: "yem bitmiş",
	})
	if err != nil {
		t.Fatalf("Sayım yazılamadı: %v", err)
	}
	if !satir.TuketimVar {
		t.Error("Tüketim Var olarak yazılmadı")
	}

	// Aynı istasyona ikinci yazım güncelleme olmalı, ikinci satır değil
	satir, err = sayim.RecordCount(db, f.record.ID, sayim.CountItem{
		StationID: f.stations[0].ID, TuketimVar: false,
	})
	if err != nil {
		t.Fatalf("Sayım güncellenemedi: %v", err)
	}
	if satir.TuketimVar {
		t.Error("Tüketim Yok olarak güncellenmedi")
	}

	var toplam int64
	db.Model(&models.WorkRecordStationCount{}).
		Where("work_record_id = ?", f.record.ID).Count(&toplam)
	if toplam != 1 {
		t.Errorf("Satır sayısı = %d, beklenen 1", toplam)
	}
}

func TestKilitliKayitSayimiReddeder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := setupFixture(t, db, 2)

	bitis := time.Now()
	db.Model(&models.WorkRecord{}).Where("id = ?", f.record.ID).
		UpdateColumn("bitis_saati", bitis)

	_, err := sayim.RecordCount(db, f.record.ID, sayim.CountItem{
		StationID: f.stations[0].ID, TuketimVar: true,
	})
	if !errors.Is(err, apperr.ErrLocked) {
		t.Fatalf("Kilitli kayda yazım kilit hatası döndürmedi: %v", err)
	}

	_, err = sayim.BulkRecordCount(db, f.record.ID, []sayim.CountItem{
		{StationID: f.stations[0].ID, TuketimVar: true},
	})
	if !errors.Is(err, apperr.ErrLocked) {
		t.Fatalf("Kilitli kayda toplu yazım kilit hatası döndürmedi: %v", err)
	}

	var toplam int64
	db.Model(&models.WorkRecordStationCount{}).
		Where("work_record_id = ?", f.record.ID).Count(&toplam)
	if toplam != 0 {
		t.Errorf("Kilitli kayda rağmen %d satır yazıldı", toplam)
	}
}

func TestBulkEksikIstasyonlariAtlar(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := setupFixture(t, db, 2)

	applied, err := sayim.BulkRecordCount(db, f.record.ID, []sayim.CountItem{
		{StationID: f.stations[0].ID, TuketimVar: true},
		{StationID: 99999, TuketimVar: true},
		{StationID: f.stations[1].ID, TuketimVar: false},
	})
	if err != nil {
		t.Fatalf("Toplu sayım yazılamadı: %v", err)
	}
	if applied != 2 {
		t.Errorf("Uygulanan satır = %d, beklenen 2", applied)
	}
}

func TestSummaryToplamGirilenKalan(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := setupFixture(t, db, 3)

	_, err := sayim.BulkRecordCount(db, f.record.ID, []sayim.CountItem{
		{StationID: f.stations[0].ID, TuketimVar: true},
		{StationID: f.stations[1].ID, TuketimVar: false},
	})
	if err != nil {
		t.Fatalf("Toplu sayım yazılamadı: %v", err)
	}

	summary, err := sayim.SummaryFor(db, f.record.ID, nil)
	if err != nil {
		t.Fatalf("Özet alınamadı: %v", err)
	}

	if summary.Toplam != 3 || summary.Girilen != 2 || summary.Kalan != 1 {
		t.Errorf("Özet = %d/%d/%d, beklenen 3/2/1",
			summary.Toplam, summary.Girilen, summary.Kalan)
	}

	girilmeyen := 0
	for _, st := range summary.Istasyonlar {
		if st.TuketimVar == nil {
			girilmeyen++
		}
	}
	if girilmeyen != 1 {
		t.Errorf("Girilmeyen istasyon = %d, beklenen 1", girilmeyen)
	}
}
