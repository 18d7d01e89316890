package ekip

import (
	"strings"

	"ilaclama-backend/internal/apperr"
	"ilaclama-backend/internal/database"
	"ilaclama-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type EkipRequest struct {
	Kod          string `json:"kod"`
	EkipLideriID uint   `json:"ekip_lideri_id"`
	KisiSayisi   int    `json:"kisi_sayisi"`
	Uyeler       string `json:"uyeler"`
}

type EkipResponse struct {
	ID           uint   `json:"id"`
	Kod          string `json:"kod"`
	EkipLideriID uint   `json:"ekip_lideri_id"`
	EkipLideri   string `json:"ekip_lideri"`
	KisiSayisi   int    `json:"kisi_sayisi"`
	Uyeler       string `json:"uyeler"`
}

func ekipToResponse(m *models.Ekip) EkipResponse {
	return EkipResponse{
		ID:           m.ID,
		Kod:          m.Kod,
		EkipLideriID: m.EkipLideriID,
		EkipLideri:   m.EkipLideri.Name,
		KisiSayisi:   m.KisiSayisi,
		Uyeler:       m.Uyeler,
	}
}

func CreateEkipHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body EkipRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Kod = strings.TrimSpace(body.Kod)
		if body.Kod == "" || body.EkipLideriID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Kod ve ekip lideri zorunlu")
		}

		var lider models.User
		if err := database.DB.First(&lider, body.EkipLideriID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Ekip lideri bulunamadı")
		}

		ekip := models.Ekip{
			Kod:          body.Kod,
			EkipLideriID: body.EkipLideriID,
			KisiSayisi:   body.KisiSayisi,
			Uyeler:       body.Uyeler,
		}

		if err := database.DB.Create(&ekip).Error; err != nil {
			return apperr.ToFiber(err)
		}

		ekip.EkipLideri = lider
		return c.Status(fiber.StatusCreated).JSON(ekipToResponse(&ekip))
	}
}

func ListEkiplerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var ekipler []models.Ekip
		if err := database.DB.Preload("EkipLideri").Order("kod").Find(&ekipler).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ekipler listelenemedi")
		}

		res := make([]EkipResponse, 0, len(ekipler))
		for i := range ekipler {
			res = append(res, ekipToResponse(&ekipler[i]))
		}

		return c.JSON(res)
	}
}

func UpdateEkipHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var ekip models.Ekip
		if err := database.DB.First(&ekip, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ekip bulunamadı")
		}

		var body EkipRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		if kod := strings.TrimSpace(body.Kod); kod != "" {
			ekip.Kod = kod
		}
		if body.EkipLideriID != 0 {
			var lider models.User
			if err := database.DB.First(&lider, body.EkipLideriID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Ekip lideri bulunamadı")
			}
			ekip.EkipLideriID = body.EkipLideriID
		}
		ekip.KisiSayisi = body.KisiSayisi
		ekip.Uyeler = body.Uyeler

		if err := database.DB.Save(&ekip).Error; err != nil {
			return apperr.ToFiber(err)
		}

		database.DB.Preload("EkipLideri").First(&ekip, ekip.ID)
		return c.JSON(ekipToResponse(&ekip))
	}
}

func DeleteEkipHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var planliTalep int64
		database.DB.Model(&models.Talep{}).Where("planlanan_ekip_id = ?", id).Count(&planliTalep)
		if planliTalep > 0 {
			return apperr.ToFiber(apperr.Referencedf("ekip %d talepte planlı", planliTalep))
		}
		var isKaydi int64
		database.DB.Model(&models.WorkRecord{}).Where("ekip_id = ?", id).Count(&isKaydi)
		if isKaydi > 0 {
			return apperr.ToFiber(apperr.Referencedf("ekibin %d iş kaydı var", isKaydi))
		}

		if err := database.DB.Delete(&models.Ekip{}, "id = ?", id).Error; err != nil {
			return apperr.ToFiber(err)
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
