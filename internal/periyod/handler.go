package periyod

import (
	"strings"
	"time"

	"ilaclama-backend/internal/apperr"
	"ilaclama-backend/internal/database"
	"ilaclama-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type PeriyodRequest struct {
	CustomerID      uint    `json:"customer_id"`
	FacilityID      *uint   `json:"facility_id"`
	Ad              string  `json:"ad"`
	TalepTipiID     *uint   `json:"talep_tipi_id"`
	BaslangicTarihi string  `json:"baslangic_tarihi"`
	BitisTarihi     *string `json:"bitis_tarihi"`
	TekrarSayisi    *int    `json:"tekrar_sayisi"`
	Siklik          string  `json:"siklik"`
	Aralik          int     `json:"aralik"`
	HaftaninGunleri string  `json:"haftanin_gunleri"`
	AyinGunu        *int    `json:"ayin_gunu"`
	Ay              *int    `json:"ay"`
	Aktif           *bool   `json:"aktif"`
}

func applyRequest(p *models.Periyod, body *PeriyodRequest) error {
	baslangic, err := time.Parse("2006-01-02", body.BaslangicTarihi)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Başlangıç tarihi YYYY-AA-GG olmalı")
	}
	p.BaslangicTarihi = baslangic

	p.BitisTarihi = nil
	if body.BitisTarihi != nil && *body.BitisTarihi != "" {
		bitis, err := time.Parse("2006-01-02", *body.BitisTarihi)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Bitiş tarihi YYYY-AA-GG olmalı")
		}
		if bitis.Before(baslangic) {
			return fiber.NewError(fiber.StatusBadRequest, "Bitiş başlangıçtan önce olamaz")
		}
		p.BitisTarihi = &bitis
	}

	switch models.PeriyodSiklik(body.Siklik) {
	case models.SiklikGunluk, models.SiklikHaftalik, models.SiklikAylik, models.SiklikYillik:
		p.Siklik = models.PeriyodSiklik(body.Siklik)
	default:
		return fiber.NewError(fiber.StatusBadRequest, "Sıklık gunluk/haftalik/aylik/yillik olmalı")
	}

	p.FacilityID = body.FacilityID
	p.Ad = strings.TrimSpace(body.Ad)
	p.TalepTipiID = body.TalepTipiID
	p.TekrarSayisi = body.TekrarSayisi
	p.Aralik = body.Aralik
	if p.Aralik < 1 {
		p.Aralik = 1
	}
	p.HaftaninGunleri = body.HaftaninGunleri
	p.AyinGunu = body.AyinGunu
	p.Ay = body.Ay
	if body.Aktif != nil {
		p.Aktif = *body.Aktif
	}
	return nil
}

func CreatePeriyodHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body PeriyodRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}
		if body.CustomerID == 0 || body.BaslangicTarihi == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Müşteri ve başlangıç tarihi zorunlu")
		}

		var customer models.Customer
		if err := database.DB.First(&customer, body.CustomerID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Müşteri bulunamadı")
		}

		p := models.Periyod{CustomerID: body.CustomerID, Aktif: true}
		if err := applyRequest(&p, &body); err != nil {
			return err
		}

		if err := database.DB.Create(&p).Error; err != nil {
			return apperr.ToFiber(err)
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// GET /api/periyotlar?customer_id=1&aktif=1
func ListPeriyotlarHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := database.DB.Model(&models.Periyod{}).
			Preload("Customer").Preload("Facility").Preload("TalepTipi").
			Order("id DESC")

		if cid := c.QueryInt("customer_id"); cid > 0 {
			q = q.Where("customer_id = ?", cid)
		}
		if c.QueryBool("aktif") {
			q = q.Where("aktif = ?", true)
		}

		var periyotlar []models.Periyod
		if err := q.Find(&periyotlar).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Periyotlar listelenemedi")
		}
		return c.JSON(periyotlar)
	}
}

func UpdatePeriyodHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var p models.Periyod
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Periyot bulunamadı")
		}

		var body PeriyodRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}
		if body.BaslangicTarihi == "" {
			body.BaslangicTarihi = p.BaslangicTarihi.Format("2006-01-02")
		}
		if body.Siklik == "" {
			body.Siklik = string(p.Siklik)
		}

		// Periyodun müşterisi düzenlemede değiştirilemez
		if err := applyRequest(&p, &body); err != nil {
			return err
		}

		if err := database.DB.Save(&p).Error; err != nil {
			return apperr.ToFiber(err)
		}
		return c.JSON(p)
	}
}

func DeletePeriyodHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		// Üretilmiş talepler kalır; yalnızca periyot ve üretim kayıtları silinir
		if err := database.DB.Where("periyod_id = ?", id).
			Delete(&models.PeriyodTalep{}).Error; err != nil {
			return apperr.ToFiber(err)
		}
		if err := database.DB.Delete(&models.Periyod{}, "id = ?", id).Error; err != nil {
			return apperr.ToFiber(err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// POST /api/periyotlar/uret — cron işinin elle tetiklenen hali.
func GenerateTaleplerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		uretilen, err := GenerateTalepler(database.DB, time.Now())
		if err != nil {
			return apperr.ToFiber(err)
		}
		return c.JSON(fiber.Map{"uretilen": uretilen})
	}
}
