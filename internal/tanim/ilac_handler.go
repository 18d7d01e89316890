package tanim

import (
	"strings"

	"ilaclama-backend/internal/apperr"
	"ilaclama-backend/internal/database"
	"ilaclama-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type IlacRequest struct {
	TeminEdildigiFirma string `json:"temin_edildigi_firma"`
	TicariIsmi         string `json:"ticari_ismi"`
	AktifMadde         string `json:"aktif_madde"`
	Ambalaj            string `json:"ambalaj"`
	Antidot            string `json:"antidot"`
	Aktif              *bool  `json:"aktif"`
}

func CreateIlacTanimHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body IlacRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.TicariIsmi = strings.TrimSpace(body.TicariIsmi)
		if body.TicariIsmi == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Ticari isim zorunlu")
		}

		ilac := models.IlacTanim{
			TeminEdildigiFirma: body.TeminEdildigiFirma,
			TicariIsmi:         body.TicariIsmi,
			AktifMadde:         body.AktifMadde,
			Ambalaj:            body.Ambalaj,
			Antidot:            body.Antidot,
			Aktif:              true,
		}
		if body.Aktif != nil {
			ilac.Aktif = *body.Aktif
		}

		if err := database.DB.Create(&ilac).Error; err != nil {
			return apperr.ToFiber(err)
		}

		return c.Status(fiber.StatusCreated).JSON(ilac)
	}
}

// GET /api/ilaclar?selectable=1 yalnızca yeni kayıtta seçilebilir (aktif)
// ilaçları döner; filtresiz liste pasifleri de içerir.
func ListIlacTanimlariHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := database.DB.Model(&models.IlacTanim{}).Order("ticari_ismi")
		if c.QueryBool("selectable") {
			q = q.Where("aktif = ?", true)
		}

		var list []models.IlacTanim
		if err := q.Find(&list).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İlaçlar listelenemedi")
		}

		return c.JSON(list)
	}
}

func UpdateIlacTanimHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var ilac models.IlacTanim
		if err := database.DB.First(&ilac, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "İlaç bulunamadı")
		}

		var body IlacRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		if isim := strings.TrimSpace(body.TicariIsmi); isim != "" {
			ilac.TicariIsmi = isim
		}
		ilac.TeminEdildigiFirma = body.TeminEdildigiFirma
		ilac.AktifMadde = body.AktifMadde
		ilac.Ambalaj = body.Ambalaj
		ilac.Antidot = body.Antidot
		if body.Aktif != nil {
			ilac.Aktif = *body.Aktif
		}

		if err := database.DB.Save(&ilac).Error; err != nil {
			return apperr.ToFiber(err)
		}

		return c.JSON(ilac)
	}
}

// Kullanılmış ilaç silinmez, pasife çekilir.
func DeleteIlacTanimHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var satirSayisi int64
		database.DB.Model(&models.WorkRecordIlac{}).Where("ilac_tanim_id = ?", id).Count(&satirSayisi)
		if satirSayisi > 0 {
			return apperr.ToFiber(apperr.Referencedf("ilaç %d iş kaydında kullanılıyor, pasife çekin", satirSayisi))
		}

		if err := database.DB.Delete(&models.IlacTanim{}, "id = ?", id).Error; err != nil {
			return apperr.ToFiber(err)
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
