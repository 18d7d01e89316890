package talep

import (
	"strings"
	"time"

	"ilaclama-backend/internal/apperr"
	"ilaclama-backend/internal/audit"
	"ilaclama-backend/internal/database"
	"ilaclama-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type TalepRequest struct {
	CustomerID      uint    `json:"customer_id"`
	FacilityID      *uint   `json:"facility_id"`
	Tarih           string  `json:"tarih"` // YYYY-MM-DD
	TipID           uint    `json:"tip_id"`
	Aciklama        string  `json:"aciklama"`
	PlanlananTarih  *string `json:"planlanan_tarih"`
	PlanlananEkipID *uint   `json:"planlanan_ekip_id"`
	IliskiTalepID   *uint   `json:"iliski_talep_id"`
}

type TalepResponse struct {
	ID              uint    `json:"id"`
	CustomerID      uint    `json:"customer_id"`
	CustomerKod     string  `json:"customer_kod"`
	FacilityID      *uint   `json:"facility_id"`
	FacilityKod     string  `json:"facility_kod"`
	Tarih           string  `json:"tarih"`
	TipID           uint    `json:"tip_id"`
	TipAd           string  `json:"tip_ad"`
	Aciklama        string  `json:"aciklama"`
	Durum           string  `json:"durum"`
	PlanlananTarih  *string `json:"planlanan_tarih"`
	PlanlananEkipID *uint   `json:"planlanan_ekip_id"`
	IliskiTalepID   *uint   `json:"iliski_talep_id"`
}

func talepToResponse(m *models.Talep) TalepResponse {
	res := TalepResponse{
		ID:              m.ID,
		CustomerID:      m.CustomerID,
		CustomerKod:     m.Customer.Kod,
		FacilityID:      m.FacilityID,
		Tarih:           m.Tarih.Format("2006-01-02"),
		TipID:           m.TipID,
		TipAd:           m.Tip.Ad,
		Aciklama:        m.Aciklama,
		Durum:           string(m.Durum),
		PlanlananEkipID: m.PlanlananEkipID,
		IliskiTalepID:   m.IliskiTalepID,
	}
	if m.Facility != nil {
		res.FacilityKod = m.Facility.Kod
	}
	if m.PlanlananTarih != nil {
		s := m.PlanlananTarih.Format("2006-01-02")
		res.PlanlananTarih = &s
	}
	return res
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(s))
}

// Tesis verildiyse müşteriye ait olmalı.
func checkFacility(customerID uint, facilityID *uint) error {
	if facilityID == nil {
		return nil
	}
	var facility models.Facility
	if err := database.DB.First(&facility, *facilityID).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Tesis bulunamadı")
	}
	if facility.CustomerID != customerID {
		return fiber.NewError(fiber.StatusBadRequest, "Tesis seçilen müşteriye ait değil")
	}
	return nil
}

func CreateTalepHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body TalepRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Aciklama = strings.TrimSpace(body.Aciklama)
		if body.CustomerID == 0 || body.TipID == 0 || body.Aciklama == "" || body.Tarih == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Müşteri, tarih, tip ve açıklama zorunlu")
		}

		tarih, err := parseDate(body.Tarih)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Tarih formatı YYYY-AA-GG olmalı")
		}

		var customer models.Customer
		if err := database.DB.First(&customer, body.CustomerID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Müşteri bulunamadı")
		}
		if err := checkFacility(body.CustomerID, body.FacilityID); err != nil {
			return err
		}

		talep := models.Talep{
			CustomerID:      body.CustomerID,
			FacilityID:      body.FacilityID,
			Tarih:           tarih,
			TipID:           body.TipID,
			Aciklama:        body.Aciklama,
			PlanlananEkipID: body.PlanlananEkipID,
			IliskiTalepID:   body.IliskiTalepID,
		}
		if body.PlanlananTarih != nil && *body.PlanlananTarih != "" {
			pt, err := parseDate(*body.PlanlananTarih)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Planlanan tarih formatı YYYY-AA-GG olmalı")
			}
			talep.PlanlananTarih = &pt
		}

		// Planlama bilgisi doluysa BeforeSave talebi doğrudan Planlandı açar
		if err := database.DB.Create(&talep).Error; err != nil {
			return apperr.ToFiber(err)
		}

		userID, userName := audit.CurrentUser(c)
		audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "talep", EntityID: talep.ID,
			Action:      models.AuditActionCreate,
			Description: "Talep oluşturuldu",
			After:       talep,
		})

		database.DB.Preload("Customer").Preload("Facility").Preload("Tip").First(&talep, talep.ID)
		return c.Status(fiber.StatusCreated).JSON(talepToResponse(&talep))
	}
}

// GET /api/talepler?durum=beklemede&customer_id=1&baslangic=2026-01-01&bitis=2026-01-31
func ListTaleplerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := database.DB.Model(&models.Talep{}).
			Preload("Customer").Preload("Facility").Preload("Tip").
			Order("tarih DESC, id DESC")

		if durum := strings.TrimSpace(c.Query("durum")); durum != "" {
			q = q.Where("durum = ?", durum)
		}
		if cid := c.QueryInt("customer_id"); cid > 0 {
			q = q.Where("customer_id = ?", cid)
		}
		if fid := c.QueryInt("facility_id"); fid > 0 {
			q = q.Where("facility_id = ?", fid)
		}
		if s := c.Query("baslangic"); s != "" {
			if t, err := parseDate(s); err == nil {
				q = q.Where("tarih >= ?", t)
			}
		}
		if s := c.Query("bitis"); s != "" {
			if t, err := parseDate(s); err == nil {
				q = q.Where("tarih <= ?", t)
			}
		}

		var talepler []models.Talep
		if err := q.Find(&talepler).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Talepler listelenemedi")
		}

		res := make([]TalepResponse, 0, len(talepler))
		for i := range talepler {
			res = append(res, talepToResponse(&talepler[i]))
		}
		return c.JSON(res)
	}
}

func GetTalepHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var talep models.Talep
		if err := database.DB.Preload("Customer").Preload("Facility").Preload("Tip").
			First(&talep, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Talep bulunamadı")
		}
		return c.JSON(talepToResponse(&talep))
	}
}

func UpdateTalepHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var talep models.Talep
		if err := database.DB.First(&talep, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Talep bulunamadı")
		}
		onceki := talep

		var body TalepRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		// Talebin müşterisi düzenlemede değiştirilemez
		if err := checkFacility(talep.CustomerID, body.FacilityID); err != nil {
			return err
		}
		talep.FacilityID = body.FacilityID

		if body.Tarih != "" {
			tarih, err := parseDate(body.Tarih)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Tarih formatı YYYY-AA-GG olmalı")
			}
			talep.Tarih = tarih
		}
		if body.TipID != 0 {
			talep.TipID = body.TipID
		}
		if aciklama := strings.TrimSpace(body.Aciklama); aciklama != "" {
			talep.Aciklama = aciklama
		}
		talep.PlanlananEkipID = body.PlanlananEkipID
		talep.PlanlananTarih = nil
		if body.PlanlananTarih != nil && *body.PlanlananTarih != "" {
			pt, err := parseDate(*body.PlanlananTarih)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Planlanan tarih formatı YYYY-AA-GG olmalı")
			}
			talep.PlanlananTarih = &pt
		}
		talep.IliskiTalepID = body.IliskiTalepID

		if err := database.DB.Save(&talep).Error; err != nil {
			return apperr.ToFiber(err)
		}

		userID, userName := audit.CurrentUser(c)
		audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "talep", EntityID: talep.ID,
			Action:      models.AuditActionUpdate,
			Description: "Talep güncellendi",
			Before:      onceki,
			After:       talep,
		})

		database.DB.Preload("Customer").Preload("Facility").Preload("Tip").First(&talep, talep.ID)
		return c.JSON(talepToResponse(&talep))
	}
}

func DeleteTalepHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var talep models.Talep
		if err := database.DB.First(&talep, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Talep bulunamadı")
		}

		var kapatanSayisi int64
		database.DB.Model(&models.WorkRecord{}).Where("kapatilan_talep_id = ?", talep.ID).Count(&kapatanSayisi)
		if kapatanSayisi > 0 {
			return apperr.ToFiber(apperr.Referencedf("talebi kapatan iş kaydı var, önce onu silin veya ayırın"))
		}

		if err := database.DB.Delete(&talep).Error; err != nil {
			return apperr.ToFiber(err)
		}

		userID, userName := audit.CurrentUser(c)
		audit.WriteLog(audit.LogOptions{
			UserID: userID, UserName: userName,
			EntityType: "talep", EntityID: talep.ID,
			Action:      models.AuditActionDelete,
			Description: "Talep silindi",
			Before:      talep,
		})

		return c.SendStatus(fiber.StatusNoContent)
	}
}
