package rapor

import (
	"fmt"
	"time"

	"ilaclama-backend/internal/apperr"
	"ilaclama-backend/internal/config"
	"ilaclama-backend/internal/database"
	"ilaclama-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

func parseAralik(c *fiber.Ctx) (uint, time.Time, time.Time, error) {
	fid := c.QueryInt("facility_id")
	if fid <= 0 {
		return 0, time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Tesis seçilmeli")
	}
	baslangic, err := time.Parse("2006-01-02", c.Query("baslangic"))
	if err != nil {
		return 0, time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Başlangıç tarihi YYYY-AA-GG olmalı")
	}
	bitis, err := time.Parse("2006-01-02", c.Query("bitis"))
	if err != nil {
		return 0, time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Bitiş tarihi YYYY-AA-GG olmalı")
	}
	if bitis.Before(baslangic) {
		return 0, time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Bitiş başlangıçtan önce olamaz")
	}
	return uint(fid), baslangic, bitis, nil
}

// GET /api/rapor/istasyon?facility_id=1&baslangic=2026-01-01&bitis=2026-01-31
func IstasyonRaporuHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		facilityID, baslangic, bitis, err := parseAralik(c)
		if err != nil {
			return err
		}

		rapor, err := IstasyonRaporuData(database.DB, facilityID, baslangic, bitis)
		if err != nil {
			return apperr.ToFiber(err)
		}
		return c.JSON(rapor)
	}
}

// GET /api/rapor/istasyon/excel — aynı rapor xlsx indirme olarak.
func IstasyonRaporuExcelHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		facilityID, baslangic, bitis, err := parseAralik(c)
		if err != nil {
			return err
		}

		rapor, err := IstasyonRaporuData(database.DB, facilityID, baslangic, bitis)
		if err != nil {
			return apperr.ToFiber(err)
		}

		f, err := IstasyonRaporuExcel(rapor)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Excel dosyası oluşturulamadı")
		}
		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Excel dosyası yazılamadı")
		}

		dosyaAdi := fmt.Sprintf("istasyon-raporu-%s-%s.xlsx",
			rapor.FacilityKod, bitis.Format("20060102"))
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, dosyaAdi))
		return c.Send(buf.Bytes())
	}
}

// GET /api/rapor/ilac-kullanimlari?baslangic=...&bitis=...&facility_id=...
// İş kayıtlarındaki ilaç satırlarını bağlamlarıyla listeler.
func IlacKullanimlariHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := database.DB.Model(&models.WorkRecordIlac{}).
			Preload("IlacTanim").
			Preload("WorkRecord.Personel").
			Preload("WorkRecord.Facility").
			Preload("WorkRecord.KapatilanTalep.Customer").
			Preload("WorkRecord.KapatilanTalep.Facility").
			Joins("JOIN work_records ON work_records.id = work_record_ilacs.work_record_id").
			Order("work_records.tarih DESC, work_record_ilacs.id")

		if s := c.Query("baslangic"); s != "" {
			if t, err := time.Parse("2006-01-02", s); err == nil {
				q = q.Where("work_records.tarih >= ?", t)
			}
		}
		if s := c.Query("bitis"); s != "" {
			if t, err := time.Parse("2006-01-02", s); err == nil {
				q = q.Where("work_records.tarih <= ?", t)
			}
		}
		if fid := c.QueryInt("facility_id"); fid > 0 {
			q = q.Where("work_records.facility_id = ?", fid)
		}

		var satirlar []models.WorkRecordIlac
		if err := q.Find(&satirlar).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İlaç kullanımları listelenemedi")
		}

		type kullanimResponse struct {
			WorkRecordID uint    `json:"work_record_id"`
			Tarih        string  `json:"tarih"`
			Personel     string  `json:"personel"`
			FormNumarasi string  `json:"form_numarasi"`
			MusteriKod   string  `json:"musteri_kod"`
			TesisKod     string  `json:"tesis_kod"`
			TicariIsmi   string  `json:"ticari_ismi"`
			AktifMadde   string  `json:"aktif_madde"`
			Miktar       float64 `json:"miktar"`
		}

		res := make([]kullanimResponse, 0, len(satirlar))
		for _, s := range satirlar {
			r := kullanimResponse{
				WorkRecordID: s.WorkRecordID,
				Tarih:        s.WorkRecord.Tarih.Format("2006-01-02"),
				Personel:     s.WorkRecord.Personel.Name,
				FormNumarasi: s.WorkRecord.FormNumarasi,
				TicariIsmi:   s.IlacTanim.TicariIsmi,
				AktifMadde:   s.IlacTanim.AktifMadde,
				Miktar:       s.Miktar,
			}
			if talep := s.WorkRecord.KapatilanTalep; talep != nil {
				r.MusteriKod = talep.Customer.Kod
				if talep.Facility != nil {
					r.TesisKod = talep.Facility.Kod
				}
			} else if s.WorkRecord.Facility != nil {
				r.TesisKod = s.WorkRecord.Facility.Kod
			}
			res = append(res, r)
		}
		return c.JSON(res)
	}
}

// POST /api/is-kayitlari/:id/faaliyet-raporu — 1-1 rapor satırını üretir/yeniler.
func GenerateFaaliyetRaporuHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		recordID, err := c.ParamsInt("id")
		if err != nil || recordID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz iş kaydı")
		}

		rapor, err := GenerateFaaliyetRaporu(database.DB, uint(recordID), cfg.RaporPath)
		if err != nil {
			return apperr.ToFiber(err)
		}
		return c.JSON(rapor)
	}
}

// GET /api/faaliyet-raporlari
func ListFaaliyetRaporlariHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var raporlar []models.FaaliyetRaporu
		if err := database.DB.Order("rapor_tarihi DESC, id DESC").Find(&raporlar).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Faaliyet raporları listelenemedi")
		}
		return c.JSON(raporlar)
	}
}
