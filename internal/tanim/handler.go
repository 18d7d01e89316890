package tanim

import (
	"strings"

	"ilaclama-backend/internal/apperr"
	"ilaclama-backend/internal/database"
	"ilaclama-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Sıralı metin tanım listeleri (talep tipi, uygulama, faaliyet, tespit) aynı
// şekle sahip; her biri için handler'lar buradan üretilir. Kullanımda olan
// bir tanım silinemez, 409 döner.

type TanimRequest struct {
	Ad   string `json:"ad"`
	Sira int    `json:"sira"`
}

func CreateTalepTipiHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := parseTanim(c)
		if err != nil {
			return err
		}
		m := models.TalepTipi{Ad: body.Ad, Sira: body.Sira}
		if err := database.DB.Create(&m).Error; err != nil {
			return apperr.ToFiber(err)
		}
		return c.Status(fiber.StatusCreated).JSON(m)
	}
}

func ListTalepTipleriHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var list []models.TalepTipi
		if err := database.DB.Order("sira, ad").Find(&list).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Talep tipleri listelenemedi")
		}
		return c.JSON(list)
	}
}

func DeleteTalepTipiHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var talepSayisi int64
		database.DB.Model(&models.Talep{}).Where("tip_id = ?", id).Count(&talepSayisi)
		if talepSayisi > 0 {
			return apperr.ToFiber(apperr.Referencedf("talep tipi %d talepte kullanılıyor", talepSayisi))
		}
		var periyodSayisi int64
		database.DB.Model(&models.Periyod{}).Where("talep_tipi_id = ?", id).Count(&periyodSayisi)
		if periyodSayisi > 0 {
			return apperr.ToFiber(apperr.Referencedf("talep tipi %d periyotta kullanılıyor", periyodSayisi))
		}

		if err := database.DB.Delete(&models.TalepTipi{}, "id = ?", id).Error; err != nil {
			return apperr.ToFiber(err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func CreateUygulamaTanimHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := parseTanim(c)
		if err != nil {
			return err
		}
		m := models.UygulamaTanim{Ad: body.Ad, Sira: body.Sira}
		if err := database.DB.Create(&m).Error; err != nil {
			return apperr.ToFiber(err)
		}
		return c.Status(fiber.StatusCreated).JSON(m)
	}
}

func ListUygulamaTanimlariHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var list []models.UygulamaTanim
		if err := database.DB.Order("sira, ad").Find(&list).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Uygulama tanımları listelenemedi")
		}
		return c.JSON(list)
	}
}

func DeleteUygulamaTanimHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var satirSayisi int64
		database.DB.Model(&models.WorkRecordUygulama{}).Where("uygulama_tanim_id = ?", id).Count(&satirSayisi)
		if satirSayisi > 0 {
			return apperr.ToFiber(apperr.Referencedf("uygulama tanımı %d iş kaydı satırında kullanılıyor", satirSayisi))
		}

		if err := database.DB.Delete(&models.UygulamaTanim{}, "id = ?", id).Error; err != nil {
			return apperr.ToFiber(err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func CreateFaaliyetTanimHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := parseTanim(c)
		if err != nil {
			return err
		}
		m := models.FaaliyetTanim{Ad: body.Ad, Sira: body.Sira}
		if err := database.DB.Create(&m).Error; err != nil {
			return apperr.ToFiber(err)
		}
		return c.Status(fiber.StatusCreated).JSON(m)
	}
}

func ListFaaliyetTanimlariHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var list []models.FaaliyetTanim
		if err := database.DB.Order("sira, ad").Find(&list).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Faaliyet tanımları listelenemedi")
		}
		return c.JSON(list)
	}
}

func DeleteFaaliyetTanimHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var satirSayisi int64
		database.DB.Model(&models.WorkRecordFaaliyet{}).Where("faaliyet_tanim_id = ?", id).Count(&satirSayisi)
		if satirSayisi > 0 {
			return apperr.ToFiber(apperr.Referencedf("faaliyet tanımı %d iş kaydı satırında kullanılıyor", satirSayisi))
		}

		if err := database.DB.Delete(&models.FaaliyetTanim{}, "id = ?", id).Error; err != nil {
			return apperr.ToFiber(err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func CreateTespitTanimHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := parseTanim(c)
		if err != nil {
			return err
		}
		m := models.TespitTanim{Ad: body.Ad, Sira: body.Sira}
		if err := database.DB.Create(&m).Error; err != nil {
			return apperr.ToFiber(err)
		}
		return c.Status(fiber.StatusCreated).JSON(m)
	}
}

func ListTespitTanimlariHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var list []models.TespitTanim
		if err := database.DB.Order("sira, ad").Find(&list).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Tespit tanımları listelenemedi")
		}
		return c.JSON(list)
	}
}

func DeleteTespitTanimHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var satirSayisi int64
		database.DB.Model(&models.WorkRecordTespit{}).Where("tespit_tanim_id = ?", id).Count(&satirSayisi)
		if satirSayisi > 0 {
			return apperr.ToFiber(apperr.Referencedf("tespit tanımı %d iş kaydı satırında kullanılıyor", satirSayisi))
		}

		if err := database.DB.Delete(&models.TespitTanim{}, "id = ?", id).Error; err != nil {
			return apperr.ToFiber(err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func parseTanim(c *fiber.Ctx) (*TanimRequest, error) {
	var body TanimRequest
	if err := c.BodyParser(&body); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
	}
	body.Ad = strings.TrimSpace(body.Ad)
	if body.Ad == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Ad boş olamaz")
	}
	return &body, nil
}
