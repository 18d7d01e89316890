package katalog_test

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	"ilaclama-backend/internal/katalog"
	"ilaclama-backend/internal/models"
	"ilaclama-backend/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func setupApp() *fiber.App {
	app := testutil.NewApp()
	app.Post("/api/stations", katalog.CreateStationHandler())
	app.Get("/api/stations", katalog.ListStationsHandler())
	app.Delete("/api/stations/:id", katalog.DeleteStationHandler())
	app.Post("/api/contacts", katalog.CreateContactHandler())
	return app
}

func createZone(t *testing.T, db *gorm.DB) *models.Zone {
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
	return &zone
}

func TestCreateStationBenzersizKodDoner(t *testing.T) {
	db := testutil.SetupTestDB(t)
	zone := createZone(t, db)
	app := setupApp()

	resp := testutil.DoRequest(t, app, http.MethodPost, "/api/stations", fiber.Map{
		"zone_id": zone.ID,
		"kod":     "S1",
		"ad":      "Giriş kapısı",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Durum kodu = %d, beklenen 201", resp.StatusCode)
	}

	var body struct {
		BenzersizKod string `json:"benzersiz_kod"`
	}
	testutil.ParseBody(t, resp, &body)
	if body.BenzersizKod != "C1-F1-Z1-S1" {
		t.Errorf("Benzersiz kod = %q, beklenen C1-F1-Z1-S1", body.BenzersizKod)
	}
}

func TestBenzersizKodIleArama(t *testing.T) {
	db := testutil.SetupTestDB(t)
	zone := createZone(t, db)
	app := setupApp()

	station := models.Station{ZoneID: zone.ID, Kod: "S1", Ad: "Giriş kapısı"}
	if err := db.Create(&station).Error; err != nil {
		t.Fatalf("İstasyon oluşturulamadı: %v", err)
	}

	resp := testutil.DoRequest(t, app, http.MethodGet,
		"/api/stations?benzersiz_kod=C1-F1-Z1-S1", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Durum kodu = %d, beklenen 200", resp.StatusCode)
	}

	var body struct {
		CustomerKod string `json:"customer_kod"`
		FacilityKod string `json:"facility_kod"`
		ZoneKod     string `json:"zone_kod"`
		Kod         string `json:"kod"`
	}
	testutil.ParseBody(t, resp, &body)
	if body.CustomerKod != "C1" || body.FacilityKod != "F1" || body.ZoneKod != "Z1" || body.Kod != "S1" {
		t.Errorf("Hiyerarşi = %s/%s/%s/%s, beklenen C1/F1/Z1/S1",
			body.CustomerKod, body.FacilityKod, body.ZoneKod, body.Kod)
	}
}

func TestSayimliIstasyonSilinemez(t *testing.T) {
	db := testutil.SetupTestDB(t)
	zone := createZone(t, db)
	app := setupApp()

	station := models.Station{ZoneID: zone.ID, Kod: "S1"}
	if err := db.Create(&station).Error; err != nil {
		t.Fatalf("İstasyon oluşturulamadı: %v", err)
	}

	personel := models.User{Name: "Personel", Email: "p@test.com", PasswordHash: "x", Role: models.RolePersonel}
	if err := db.Create(&personel).Error; err != nil {
		t.Fatalf("Kullanıcı oluşturulamadı: %v", err)
	}
	record := models.WorkRecord{
		Tarih:      time.Date(2026, time.May, 4, 0, 0, 0, 0, time.UTC),
		PersonelID: personel.ID,
	}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("İş kaydı oluşturulamadı: %v", err)
	}
	sayimSatiri := models.WorkRecordStationCount{
		WorkRecordID: record.ID, StationID: station.ID, TuketimVar: true,
	}
	if err := db.Create(&sayimSatiri).Error; err != nil {
		t.Fatalf("Sayım satırı oluşturulamadı: %v", err)
	}

	resp := testutil.DoRequest(t, app, http.MethodDelete,
		"/api/stations/"+strconv.FormatUint(uint64(station.ID), 10), nil)
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("Durum kodu = %d, beklenen 409", resp.StatusCode)
	}
}

func TestContactHandlerMusteriVeyaTesisZorunlu(t *testing.T) {
	testutil.SetupTestDB(t)
	app := setupApp()

	resp := testutil.DoRequest(t, app, http.MethodPost, "/api/contacts", fiber.Map{
		"ad_soyad": "Ali Veli",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Durum kodu = %d, beklenen 400", resp.StatusCode)
	}
}
