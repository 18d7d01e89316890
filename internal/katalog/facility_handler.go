package katalog

import (
	"strings"

	"ilaclama-backend/internal/apperr"
	"ilaclama-backend/internal/database"
	"ilaclama-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type FacilityResponse struct {
	ID         uint   `json:"id"`
	CustomerID uint   `json:"customer_id"`
	Kod        string `json:"kod"`
	Ad         string `json:"ad"`
	Adres      string `json:"adres"`
	NotAlani   string `json:"not_alani"`
	CreatedAt  string `json:"created_at"`
}

type CreateFacilityRequest struct {
	CustomerID uint   `json:"customer_id"`
	Kod        string `json:"kod"`
	Ad         string `json:"ad"`
	Adres      string `json:"adres"`
	NotAlani   string `json:"not_alani"`
}

type UpdateFacilityRequest struct {
	Kod      *string `json:"kod"`
	Ad       *string `json:"ad"`
	Adres    *string `json:"adres"`
	NotAlani *string `json:"not_alani"`
}

func facilityToResponse(m *models.Facility) FacilityResponse {
	return FacilityResponse{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		Kod:        m.Kod,
		Ad:         m.Ad,
		Adres:      m.Adres,
		NotAlani:   m.NotAlani,
		CreatedAt:  m.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func CreateFacilityHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateFacilityRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Kod = strings.TrimSpace(body.Kod)
		body.Ad = strings.TrimSpace(body.Ad)
		if body.CustomerID == 0 || body.Kod == "" || body.Ad == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Müşteri, kod ve tesis adı zorunlu")
		}

		var customer models.Customer
		if err := database.DB.First(&customer, body.CustomerID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Müşteri bulunamadı")
		}

		facility := models.Facility{
			CustomerID: body.CustomerID,
			Kod:        body.Kod,
			Ad:         body.Ad,
			Adres:      body.Adres,
			NotAlani:   body.NotAlani,
		}

		if err := database.DB.Create(&facility).Error; err != nil {
			return apperr.ToFiber(err)
		}

		return c.Status(fiber.StatusCreated).JSON(facilityToResponse(&facility))
	}
}

// GET /api/facilities?customer_id=1&q=...
func ListFacilitiesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := database.DB.Model(&models.Facility{}).
			Joins("JOIN customers ON customers.id = facilities.customer_id").
			Order("customers.kod, facilities.kod")

		if cid := c.QueryInt("customer_id"); cid > 0 {
			q = q.Where("facilities.customer_id = ?", cid)
		}
		if search := strings.TrimSpace(c.Query("q")); search != "" {
			like := "%" + search + "%"
			q = q.Where("facilities.kod ILIKE ? OR facilities.ad ILIKE ? OR customers.kod ILIKE ? OR customers.firma_ismi ILIKE ?",
				like, like, like, like)
		}

		var facilities []models.Facility
		if err := q.Find(&facilities).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Tesisler listelenemedi")
		}

		res := make([]FacilityResponse, 0, len(facilities))
		for i := range facilities {
			res = append(res, facilityToResponse(&facilities[i]))
		}

		return c.JSON(res)
	}
}

func UpdateFacilityHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var facility models.Facility
		if err := database.DB.First(&facility, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Tesis bulunamadı")
		}

		var body UpdateFacilityRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		// Tesisin müşterisi düzenlemede değiştirilemez
		if body.Kod != nil {
			kod := strings.TrimSpace(*body.Kod)
			if kod == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Kod boş olamaz")
			}
			facility.Kod = kod
		}
		if body.Ad != nil {
			facility.Ad = strings.TrimSpace(*body.Ad)
		}
		if body.Adres != nil {
			facility.Adres = *body.Adres
		}
		if body.NotAlani != nil {
			facility.NotAlani = *body.NotAlani
		}

		if err := database.DB.Save(&facility).Error; err != nil {
			return apperr.ToFiber(err)
		}

		return c.JSON(facilityToResponse(&facility))
	}
}

func DeleteFacilityHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := database.DB.Delete(&models.Facility{}, "id = ?", id).Error; err != nil {
			return apperr.ToFiber(err)
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
