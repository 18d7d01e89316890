package katalog

import (
	"strings"

	"ilaclama-backend/internal/apperr"
	"ilaclama-backend/internal/database"
	"ilaclama-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CustomerResponse struct {
	ID          uint   `json:"id"`
	Kod         string `json:"kod"`
	FirmaIsmi   string `json:"firma_ismi"`
	Adres       string `json:"adres"`
	NotAlani    string `json:"not_alani"`
	TesisSayisi int64  `json:"tesis_sayisi"`
	CreatedAt   string `json:"created_at"`
}

type CreateCustomerRequest struct {
	Kod       string `json:"kod"`
	FirmaIsmi string `json:"firma_ismi"`
	Adres     string `json:"adres"`
	NotAlani  string `json:"not_alani"`
}

type UpdateCustomerRequest struct {
	Kod       *string `json:"kod"`
	FirmaIsmi *string `json:"firma_ismi"`
	Adres     *string `json:"adres"`
	NotAlani  *string `json:"not_alani"`
}

func customerToResponse(m *models.Customer, tesisSayisi int64) CustomerResponse {
	return CustomerResponse{
		ID:          m.ID,
		Kod:         m.Kod,
		FirmaIsmi:   m.FirmaIsmi,
		Adres:       m.Adres,
		NotAlani:    m.NotAlani,
		TesisSayisi: tesisSayisi,
		CreatedAt:   m.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func CreateCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateCustomerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Kod = strings.TrimSpace(body.Kod)
		body.FirmaIsmi = strings.TrimSpace(body.FirmaIsmi)
		if body.Kod == "" || body.FirmaIsmi == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Kod ve firma ismi zorunlu")
		}

		customer := models.Customer{
			Kod:       body.Kod,
			FirmaIsmi: body.FirmaIsmi,
			Adres:     body.Adres,
			NotAlani:  body.NotAlani,
		}

		if err := database.DB.Create(&customer).Error; err != nil {
			return apperr.ToFiber(err)
		}

		return c.Status(fiber.StatusCreated).JSON(customerToResponse(&customer, 0))
	}
}

// GET /api/customers?q=...
func ListCustomersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := database.DB.Model(&models.Customer{}).Order("kod")
		if search := strings.TrimSpace(c.Query("q")); search != "" {
			like := "%" + search + "%"
			q = q.Where("kod ILIKE ? OR firma_ismi ILIKE ?", like, like)
		}

		var customers []models.Customer
		if err := q.Find(&customers).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Müşteriler listelenemedi")
		}

		res := make([]CustomerResponse, 0, len(customers))
		for i := range customers {
			var tesisSayisi int64
			database.DB.Model(&models.Facility{}).Where("customer_id = ?", customers[i].ID).Count(&tesisSayisi)
			res = append(res, customerToResponse(&customers[i], tesisSayisi))
		}

		return c.JSON(res)
	}
}

func GetCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var customer models.Customer
		if err := database.DB.First(&customer, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Müşteri bulunamadı")
		}

		var tesisSayisi int64
		database.DB.Model(&models.Facility{}).Where("customer_id = ?", customer.ID).Count(&tesisSayisi)

		return c.JSON(customerToResponse(&customer, tesisSayisi))
	}
}

func UpdateCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var customer models.Customer
		if err := database.DB.First(&customer, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Müşteri bulunamadı")
		}

		var body UpdateCustomerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		if body.Kod != nil {
			kod := strings.TrimSpace(*body.Kod)
			if kod == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Kod boş olamaz")
			}
			customer.Kod = kod
		}
		if body.FirmaIsmi != nil {
			customer.FirmaIsmi = strings.TrimSpace(*body.FirmaIsmi)
		}
		if body.Adres != nil {
			customer.Adres = *body.Adres
		}
		if body.NotAlani != nil {
			customer.NotAlani = *body.NotAlani
		}

		if err := database.DB.Save(&customer).Error; err != nil {
			return apperr.ToFiber(err)
		}

		return c.JSON(customerToResponse(&customer, 0))
	}
}

func DeleteCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		// Müşteri silinince tesis/bölge/istasyon hiyerarşisi de gider (cascade)
		if err := database.DB.Delete(&models.Customer{}, "id = ?", id).Error; err != nil {
			return apperr.ToFiber(err)
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
