package rapor_test

import (
	"testing"
	"time"

	"ilaclama-backend/internal/models"
	"ilaclama-backend/internal/rapor"
	"ilaclama-backend/internal/sayim"
	"ilaclama-backend/internal/testutil"

	"gorm.io/gorm"
)

func tarih(g int) time.Time {
	return time.Date(2026, time.June, g, 0, 0, 0, 0, time.UTC)
}

type raporFixture struct {
	facility *models.Facility
	stations []models.Station
	personel *models.User
}

func setupRaporFixture(t *testing.T, db *gorm.DB) *raporFixture {
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

	stations := make([]models.Station, 3)
	for i, kod := range []string{"S1", "S2", "S3"} {
		stations[i] = models.Station{ZoneID: zone.ID, Kod: kod}
		if err := db.Create(&stations[i]).Error; err != nil {
			t.Fatalf("İstasyon oluşturulamadı: %v", err)
		}
	}

	personel := models.User{Name: "Personel", Email: "p@test.com", PasswordHash: "x", Role: models.RolePersonel}
	if err := db.Create(&personel).Error; err != nil {
		t.Fatalf("Kullanıcı oluşturulamadı: %v", err)
	}

	return &raporFixture{facility: &facility, stations: stations, personel: &personel}
}

func createRecordWithCounts(t *testing.T, db *gorm.DB, f *raporFixture, gun time.Time, varDurumu map[int]bool) {
	t.Helper()

	record := models.WorkRecord{
		Tarih:      gun,
		PersonelID: f.personel.ID,
		FacilityID: &f.facility.ID,
	}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("İş kaydı oluşturulamadı: %v", err)
	}

	items := make([]sayim.CountItem, 0, len(varDurumu))
	for idx, v := range varDurumu {
		items = append(items, sayim.CountItem{StationID: f.stations[idx].ID, TuketimVar: v})
	}
	if _, err := sayim.BulkRecordCount(db, record.ID, items); err != nil {
		t.Fatalf("Sayım yazılamadı: %v", err)
	}
}

func TestIstasyonRaporuMatrisVeOranlar(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := setupRaporFixture(t, db)

	// 1 Haziran: S1 ve S2'de tüketim var, S3 girilmedi
	createRecordWithCounts(t, db, f, tarih(1), map[int]bool{0: true, 1: true})
	// 15 Haziran: yalnızca S1'de tüketim var, S2 Yok, S3 Yok
	createRecordWithCounts(t, db, f, tarih(15), map[int]bool{0: true, 1: false, 2: false})

	r, err := rapor.IstasyonRaporuData(db, f.facility.ID, tarih(1), tarih(30))
	if err != nil {
		t.Fatalf("Rapor üretilemedi: %v", err)
	}

	if len(r.Tarihler) != 2 {
		t.Fatalf("Tarih sayısı = %d, beklenen 2", len(r.Tarihler))
	}
	if len(r.Satirlar) != 3 {
		t.Fatalf("Satır sayısı = %d, beklenen 3", len(r.Satirlar))
	}

	// S3'ün ilk tarihte hücresi boş olmalı
	s3 := r.Satirlar[2]
	if s3.Hucreler[0] != nil {
		t.Error("Girilmeyen sayım hücresi nil değil")
	}
	if s3.Hucreler[1] == nil || *s3.Hucreler[1] {
		t.Error("S3 ikinci tarihte Yok olmalı")
	}

	// Tesis oranı: 1 Haziran 2/3, 15 Haziran 1/3
	ilk := r.TesisOranlari[0]
	if ilk.VarSayisi != 2 || ilk.Toplam != 3 {
		t.Errorf("İlk tarih oranı = %d/%d, beklenen 2/3", ilk.VarSayisi, ilk.Toplam)
	}
	son := r.TesisOranlari[1]
	if son.VarSayisi != 1 {
		t.Errorf("Son tarih Var sayısı = %d, beklenen 1", son.VarSayisi)
	}
}

func TestBolgeDegisimIstatistikleri(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := setupRaporFixture(t, db)

	// İlk tarihte 2 Var, son tarihte 1 Var: %-50 değişim.
	// S2 Var->Yok döndü, S1 sabit, S3 girilmedi->Yok sayılır: 1/3 istasyon değişti.
	createRecordWithCounts(t, db, f, tarih(1), map[int]bool{0: true, 1: true})
	createRecordWithCounts(t, db, f, tarih(15), map[int]bool{0: true, 1: false, 2: false})

	r, err := rapor.IstasyonRaporuData(db, f.facility.ID, tarih(1), tarih(30))
	if err != nil {
		t.Fatalf("Rapor üretilemedi: %v", err)
	}
	if len(r.BolgeDegisimleri) != 1 {
		t.Fatalf("Bölge değişim sayısı = %d, beklenen 1", len(r.BolgeDegisimleri))
	}

	d := r.BolgeDegisimleri[0]
	if d.IlkVarSayisi != 2 || d.SonVarSayisi != 1 {
		t.Errorf("Var sayıları = %d/%d, beklenen 2/1", d.IlkVarSayisi, d.SonVarSayisi)
	}
	if d.DegisimYuzdesi == nil || *d.DegisimYuzdesi != -50 {
		t.Errorf("Değişim yüzdesi = %v, beklenen -50", d.DegisimYuzdesi)
	}
	if d.FlipYuzdesi == nil || *d.FlipYuzdesi < 33 || *d.FlipYuzdesi > 34 {
		t.Errorf("Durum değiştiren istasyon yüzdesi = %v, beklenen ~33.3", d.FlipYuzdesi)
	}
}

func TestSifirTabanDegisimNil(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := setupRaporFixture(t, db)

	// İlk tarihte hiç tüketim yok, son tarihte 2: taban olmadığından yüzde nil
	createRecordWithCounts(t, db, f, tarih(1), map[int]bool{0: false, 1: false, 2: false})
	createRecordWithCounts(t, db, f, tarih(15), map[int]bool{0: true, 1: true})

	r, err := rapor.IstasyonRaporuData(db, f.facility.ID, tarih(1), tarih(30))
	if err != nil {
		t.Fatalf("Rapor üretilemedi: %v", err)
	}

	d := r.BolgeDegisimleri[0]
	if d.DegisimYuzdesi != nil {
		t.Errorf("Sıfır tabanda değişim yüzdesi = %v, beklenen nil", *d.DegisimYuzdesi)
	}
}

func TestSifirdanSifiraDegisimYuzdeSifir(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := setupRaporFixture(t, db)

	createRecordWithCounts(t, db, f, tarih(1), map[int]bool{0: false})
	createRecordWithCounts(t, db, f, tarih(15), map[int]bool{0: false})

	r, err := rapor.IstasyonRaporuData(db, f.facility.ID, tarih(1), tarih(30))
	if err != nil {
		t.Fatalf("Rapor üretilemedi: %v", err)
	}

	d := r.BolgeDegisimleri[0]
	if d.DegisimYuzdesi == nil || *d.DegisimYuzdesi != 0 {
		t.Errorf("Sıfırdan sıfıra değişim = %v, beklenen 0", d.DegisimYuzdesi)
	}
}

func TestIstasyonsuzTesisteOranNil(t *testing.T) {
	db := testutil.SetupTestDB(t)

	customer := models.Customer{Kod: "C9", FirmaIsmi: "C9 A.Ş."}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("Müşteri oluşturulamadı: %v", err)
	}
	facility := models.Facility{CustomerID: customer.ID, Kod: "F9", Ad: "Boş Tesis"}
	if err := db.Create(&facility).Error; err != nil {
		t.Fatalf("Tesis oluşturulamadı: %v", err)
	}
	personel := models.User{Name: "Personel", Email: "p9@test.com", PasswordHash: "x", Role: models.RolePersonel}
	if err := db.Create(&personel).Error; err != nil {
		t.Fatalf("Kullanıcı oluşturulamadı: %v", err)
	}
	record := models.WorkRecord{Tarih: tarih(1), PersonelID: personel.ID, FacilityID: &facility.ID}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("İş kaydı oluşturulamadı: %v", err)
	}

	r, err := rapor.IstasyonRaporuData(db, facility.ID, tarih(1), tarih(30))
	if err != nil {
		t.Fatalf("Rapor üretilemedi: %v", err)
	}

	if len(r.TesisOranlari) != 1 {
		t.Fatalf("Tesis oran satırı = %d, beklenen 1", len(r.TesisOranlari))
	}
	if r.TesisOranlari[0].Oran != nil {
		t.Errorf("İstasyonsuz tesiste oran = %v, beklenen nil", *r.TesisOranlari[0].Oran)
	}
}
