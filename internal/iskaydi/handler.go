package iskaydi

import (
	"strings"
	"time"

	"ilaclama-backend/internal/apperr"
	"ilaclama-backend/internal/audit"
	"ilaclama-backend/internal/database"
	"ilaclama-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type FaaliyetSatir struct {
	FaaliyetTanimID  uint `json:"faaliyet_tanim_id"`
	Kontrol          bool `json:"kontrol"`
	Kuruldu          bool `json:"kuruldu"`
	Eklendi          bool `json:"eklendi"`
	Sabitlendi       bool `json:"sabitlendi"`
	YeriDegistirildi bool `json:"yeri_degistirildi"`
	Yenilendi        bool `json:"yenilendi"`
}

type IlacSatir struct {
	IlacTanimID uint    `json:"ilac_tanim_id"`
	Miktar      float64 `json:"miktar"`
}

type TespitSatir struct {
	TespitTanimID uint   `json:"tespit_tanim_id"`
	Yogunluk      string `json:"yogunluk"`
	TespitEden    string `json:"tespit_eden"`
}

type WorkRecordRequest struct {
	Tarih      string `json:"tarih"` // YYYY-MM-DD
	PersonelID uint   `json:"personel_id"`
	EkipID     *uint  `json:"ekip_id"`
	FacilityID *uint  `json:"facility_id"`

	BaslamaSaati *string `json:"baslama_saati"` // HH:MM
	BitisSaati   *string `json:"bitis_saati"`

	GozlemZiyaretiYapilmali bool `json:"gozlem_ziyareti_yapilmali"`
	SozlesmeDisiIslemVar    bool `json:"sozlesme_disi_islem_var"`

	SKB           bool `json:"skb"`
	Atomizor      bool `json:"atomizor"`
	Pulverizator  bool `json:"pulverizator"`
	TermalSis     bool `json:"termal_sis"`
	ArUzULV       bool `json:"ar_uz_ulv"`
	ElkULV        bool `json:"elk_ulv"`
	CiviTabancasi bool `json:"civi_tabancasi"`

	Oneriler string `json:"oneriler"`
	NotAlani string `json:"not_alani"`

	KapatilanTalepID *uint `json:"kapatilan_talep_id"`

	Uygulamalar []uint          `json:"uygulamalar"`
	Faaliyetler []FaaliyetSatir `json:"faaliyetler"`
	Ilaclar     []IlacSatir     `json:"ilaclar"`
	Tespitler   []TespitSatir   `json:"tespitler"`
}

func parseSaat(s string) (*time.Time, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseRecordRequest(c *fiber.Ctx) (*WorkRecordRequest, *models.WorkRecord, error) {
	var body WorkRecordRequest
	if err := c.BodyParser(&body); err != nil {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
	}
	if body.Tarih == "" || body.PersonelID == 0 {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "Tarih ve personel zorunlu")
	}
	tarih, err := time.Parse("2006-01-02", body.Tarih)
	if err != nil {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "Tarih formatı YYYY-AA-GG olmalı")
	}

	record := models.WorkRecord{
		Tarih:                   tarih,
		PersonelID:              body.PersonelID,
		EkipID:                  body.EkipID,
		FacilityID:              body.FacilityID,
		GozlemZiyaretiYapilmali: body.GozlemZiyaretiYapilmali,
		SozlesmeDisiIslemVar:    body.SozlesmeDisiIslemVar,
		SKB:                     body.SKB,
		Atomizor:                body.Atomizor,
		Pulverizator:            body.Pulverizator,
		TermalSis:               body.TermalSis,
		ArUzULV:                 body.ArUzULV,
		ElkULV:                  body.ElkULV,
		CiviTabancasi:           body.CiviTabancasi,
		Oneriler:                body.Oneriler,
		NotAlani:                body.NotAlani,
		KapatilanTalepID:        body.KapatilanTalepID,
	}

	if body.BaslamaSaati != nil && *body.BaslamaSaati != "" {
		t, err := parseSaat(*body.BaslamaSaati)
		if err != nil {
			return nil, nil, fiber.NewError(fiber.StatusBadRequest, "Başlama saati formatı SS:DD olmalı")
		}
		record.BaslamaSaati = t
	}
	if body.BitisSaati != nil && *body.BitisSaati != "" {
		t, err := parseSaat(*body.BitisSaati)
		if err != nil {
			return nil, nil, fiber.NewError(fiber.StatusBadRequest, "Bitiş saati formatı SS:DD olmalı")
		}
		record.BitisSaati = t
	}

	return &body, &record, nil
}

// Pasif ilaç yalnızca kayıtta zaten varsa korunabilir, yeni satır olamaz.
func checkIlacSatirlari(tx *gorm.DB, recordID uint, satirlar []IlacSatir) error {
	var mevcut []uint
	if recordID != 0 {
		tx.Model(&models.WorkRecordIlac{}).Where("work_record_id = ?", recordID).
			Pluck("ilac_tanim_id", &mevcut)
	}
	mevcutSet := make(map[uint]bool, len(mevcut))
	for _, id := range mevcut {
		mevcutSet[id] = true
	}

	for _, satir := range satirlar {
		var ilac models.IlacTanim
		if err := tx.First(&ilac, satir.IlacTanimID).Error; err != nil {
			return apperr.Validationf("ilaç bulunamadı: %d", satir.IlacTanimID)
		}
		if !ilac.Secilebilir() && !mevcutSet[satir.IlacTanimID] {
			return apperr.Validationf("ilaç pasif, yeni kayıtta seçilemez: %s", ilac.TicariIsmi)
		}
	}
	return nil
}

// Satır koleksiyonları sil-yeniden yaz ile eşitlenir; tek transaction içinde
// ana kayıtla birlikte kaydedilir.
func writeSatirlar(tx *gorm.DB, record *models.WorkRecord, body *WorkRecordRequest) error {
	if record.ID != 0 {
		for _, model := range []any{
			&models.WorkRecordUygulama{}, &models.WorkRecordFaaliyet{},
			&models.WorkRecordIlac{}, &models.WorkRecordTespit{},
		} {
			if err := tx.Where("work_record_id = ?", record.ID).Delete(model).Error; err != nil {
				return err
			}
		}
	}

	for _, tanimID := range body.Uygulamalar {
		satir := models.WorkRecordUygulama{WorkRecordID: record.ID, UygulamaTanimID: tanimID}
		if err := tx.Create(&satir).Error; err != nil {
			return err
		}
	}
	for _, f := range body.Faaliyetler {
		satir := models.WorkRecordFaaliyet{
			WorkRecordID:     record.ID,
			FaaliyetTanimID:  f.FaaliyetTanimID,
			Kontrol:          f.Kontrol,
			Kuruldu:          f.Kuruldu,
			Eklendi:          f.Eklendi,
			Sabitlendi:       f.Sabitlendi,
			YeriDegistirildi: f.YeriDegistirildi,
			Yenilendi:        f.Yenilendi,
		}
		if err := tx.Create(&satir).Error; err != nil {
			return err
		}
	}
	for _, i := range body.Ilaclar {
		satir := models.WorkRecordIlac{WorkRecordID: record.ID, IlacTanimID: i.IlacTanimID, Miktar: i.Miktar}
		if err := tx.Create(&satir).Error; err != nil {
			return err
		}
	}
	for _, t := range body.Tespitler {
		satir := models.WorkRecordTespit{WorkRecordID: record.ID, TespitTanimID: t.TespitTanimID}
		if t.Yogunluk != "" {
			satir.Yogunluk = models.TespitYogunluk(t.Yogunluk)
		}
		if t.TespitEden != "" {
			satir.TespitEden = models.TespitEden(t.TespitEden)
		}
		if err := tx.Create(&satir).Error; err != nil {
			return err
		}
	}
	return nil
}

func CreateWorkRecordHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, record, err := parseRecordRequest(c)
		if err != nil {
			return err
		}

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := checkIlacSatirlari(tx, 0, body.Ilaclar); err != nil {
				return err
			}
			if err := tx.Create(record).Error; err != nil {
				return err
			}
			return writeSatirlar(tx, record, body)
		})
		if err != nil {
			return apperr.ToFiber(err)
		}

		userID, userName := audit.CurrentUser(c)
		audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "work_record", EntityID: record.ID,
			Action:      models.AuditActionCreate,
			Description: "İş kaydı oluşturuldu",
			After:       record,
		})

		return c.Status(fiber.StatusCreated).JSON(recordToResponse(record))
	}
}

func UpdateWorkRecordHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var mevcut models.WorkRecord
		if err := database.DB.First(&mevcut, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "İş kaydı bulunamadı")
		}
		onceki := mevcut

		body, record, err := parseRecordRequest(c)
		if err != nil {
			return err
		}
		record.ID = mevcut.ID
		record.CreatedAt = mevcut.CreatedAt

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := checkIlacSatirlari(tx, record.ID, body.Ilaclar); err != nil {
				return err
			}
			if err := tx.Save(record).Error; err != nil {
				return err
			}
			return writeSatirlar(tx, record, body)
		})
		if err != nil {
			return apperr.ToFiber(err)
		}

		userID, userName := audit.CurrentUser(c)
		audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "work_record", EntityID: record.ID,
			Action:      models.AuditActionUpdate,
			Description: "İş kaydı güncellendi",
			Before:      onceki,
			After:       record,
		})

		return c.JSON(recordToResponse(record))
	}
}

// GET /api/is-kayitlari?baslangic=...&bitis=...&facility_id=1&personel_id=2&ekip_id=3
func ListWorkRecordsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := database.DB.Model(&models.WorkRecord{}).
			Preload("Personel").Preload("Ekip").Preload("Facility").
			Preload("KapatilanTalep.Customer").Preload("KapatilanTalep.Facility").
			Order("tarih DESC, id DESC")

		if s := c.Query("baslangic"); s != "" {
			if t, err := time.Parse("2006-01-02", s); err == nil {
				q = q.Where("tarih >= ?", t)
			}
		}
		if s := c.Query("bitis"); s != "" {
			if t, err := time.Parse("2006-01-02", s); err == nil {
				q = q.Where("tarih <= ?", t)
			}
		}
		if fid := c.QueryInt("facility_id"); fid > 0 {
			q = q.Where("facility_id = ?", fid)
		}
		if pid := c.QueryInt("personel_id"); pid > 0 {
			q = q.Where("personel_id = ?", pid)
		}
		if eid := c.QueryInt("ekip_id"); eid > 0 {
			q = q.Where("ekip_id = ?", eid)
		}

		var records []models.WorkRecord
		if err := q.Find(&records).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İş kayıtları listelenemedi")
		}

		res := make([]WorkRecordResponse, 0, len(records))
		for i := range records {
			res = append(res, recordToResponse(&records[i]))
		}
		return c.JSON(res)
	}
}

func GetWorkRecordHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var record models.WorkRecord
		if err := database.DB.
			Preload("Personel").Preload("Ekip").Preload("Facility").
			Preload("KapatilanTalep.Customer").Preload("KapatilanTalep.Facility").
			First(&record, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "İş kaydı bulunamadı")
		}

		res := recordToResponse(&record)
		res.Uygulamalar = loadUygulamalar(record.ID)
		res.Faaliyetler = loadFaaliyetler(record.ID)
		res.Ilaclar = loadIlaclar(record.ID)
		res.Tespitler = loadTespitler(record.ID)

		return c.JSON(res)
	}
}

// Silme struct üzerinden yapılır ki AfterDelete kapatılan talebi görebilsin.
func DeleteWorkRecordHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var record models.WorkRecord
		if err := database.DB.First(&record, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "İş kaydı bulunamadı")
		}

		if err := database.DB.Delete(&record).Error; err != nil {
			return apperr.ToFiber(err)
		}

		userID, userName := audit.CurrentUser(c)
		audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "work_record", EntityID: record.ID,
			Action:      models.AuditActionDelete,
			Description: "İş kaydı silindi",
			Before:      record,
		})

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// POST /api/is-kayitlari/:id/baslat — başlama saatini şimdiye (veya verilen saate) ayarlar.
func BaslatWorkRecordHandler() fiber.Handler {
	return setSaatHandler(true)
}

// POST /api/is-kayitlari/:id/bitir — bitiş saatini ayarlar; sonrasında sayım kilitlenir.
func BitirWorkRecordHandler() fiber.Handler {
	return setSaatHandler(false)
}

func setSaatHandler(baslama bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var record models.WorkRecord
		if err := database.DB.First(&record, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "İş kaydı bulunamadı")
		}

		var body struct {
			Saat string `json:"saat"` // HH:MM, boşsa şu an
		}
		if err := c.BodyParser(&body); err != nil && len(c.Body()) > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		saat := time.Now()
		if body.Saat != "" {
			t, err := parseSaat(body.Saat)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Saat formatı SS:DD olmalı")
			}
			saat = *t
		}

		if baslama {
			record.BaslamaSaati = &saat
		} else {
			if record.BaslamaSaati == nil {
				return fiber.NewError(fiber.StatusBadRequest, "Önce başlama saati girilmeli")
			}
			record.BitisSaati = &saat
		}

		if err := database.DB.Save(&record).Error; err != nil {
			return apperr.ToFiber(err)
		}

		return c.JSON(recordToResponse(&record))
	}
}
