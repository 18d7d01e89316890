package katalog

import (
	"strings"

	"ilaclama-backend/internal/apperr"
	"ilaclama-backend/internal/database"
	"ilaclama-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ContactRequest struct {
	CustomerID *uint  `json:"customer_id"`
	FacilityID *uint  `json:"facility_id"`
	AdSoyad    string `json:"ad_soyad"`
	Unvan      string `json:"unvan"`
	Telefon    string `json:"telefon"`
	Email      string `json:"email"`
	NotAlani   string `json:"not_alani"`
}

func CreateContactHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ContactRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.AdSoyad = strings.TrimSpace(body.AdSoyad)
		if body.AdSoyad == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Ad soyad zorunlu")
		}

		contact := models.Contact{
			CustomerID: body.CustomerID,
			FacilityID: body.FacilityID,
			AdSoyad:    body.AdSoyad,
			Unvan:      body.Unvan,
			Telefon:    body.Telefon,
			Email:      body.Email,
			NotAlani:   body.NotAlani,
		}

		// Müşteri/tesis tutarlılığı BeforeSave'de doğrulanır
		if err := database.DB.Create(&contact).Error; err != nil {
			return apperr.ToFiber(err)
		}

		return c.Status(fiber.StatusCreated).JSON(contact)
	}
}

// GET /api/contacts?customer_id=1&facility_id=2
func ListContactsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := database.DB.Model(&models.Contact{}).Order("ad_soyad")
		if cid := c.QueryInt("customer_id"); cid > 0 {
			q = q.Where("customer_id = ?", cid)
		}
		if fid := c.QueryInt("facility_id"); fid > 0 {
			q = q.Where("facility_id = ?", fid)
		}

		var contacts []models.Contact
		if err := q.Find(&contacts).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İletişim kayıtları listelenemedi")
		}

		return c.JSON(contacts)
	}
}

func UpdateContactHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var contact models.Contact
		if err := database.DB.First(&contact, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "İletişim kaydı bulunamadı")
		}

		var body ContactRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		contact.CustomerID = body.CustomerID
		contact.FacilityID = body.FacilityID
		if ad := strings.TrimSpace(body.AdSoyad); ad != "" {
			contact.AdSoyad = ad
		}
		contact.Unvan = body.Unvan
		contact.Telefon = body.Telefon
		contact.Email = body.Email
		contact.NotAlani = body.NotAlani

		if err := database.DB.Save(&contact).Error; err != nil {
			return apperr.ToFiber(err)
		}

		return c.JSON(contact)
	}
}

func DeleteContactHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := database.DB.Delete(&models.Contact{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İletişim kaydı silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
