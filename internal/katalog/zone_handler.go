package katalog

import (
	"strings"

	"ilaclama-backend/internal/apperr"
	"ilaclama-backend/internal/database"
	"ilaclama-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ZoneResponse struct {
	ID         uint   `json:"id"`
	FacilityID uint   `json:"facility_id"`
	Kod        string `json:"kod"`
	Ad         string `json:"ad"`
	NotAlani   string `json:"not_alani"`
}

type CreateZoneRequest struct {
	FacilityID uint   `json:"facility_id"`
	Kod        string `json:"kod"`
	Ad         string `json:"ad"`
	NotAlani   string `json:"not_alani"`
}

type UpdateZoneRequest struct {
	Kod      *string `json:"kod"`
	Ad       *string `json:"ad"`
	NotAlani *string `json:"not_alani"`
}

func zoneToResponse(m *models.Zone) ZoneResponse {
	return ZoneResponse{
		ID:         m.ID,
		FacilityID: m.FacilityID,
		Kod:        m.Kod,
		Ad:         m.Ad,
		NotAlani:   m.NotAlani,
	}
}

func CreateZoneHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateZoneRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Kod = strings.TrimSpace(body.Kod)
		body.Ad = strings.TrimSpace(body.Ad)
		if body.FacilityID == 0 || body.Kod == "" || body.Ad == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Tesis, kod ve ad zorunlu")
		}

		var facility models.Facility
		if err := database.DB.First(&facility, body.FacilityID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Tesis bulunamadı")
		}

		zone := models.Zone{
			FacilityID: body.FacilityID,
			Kod:        body.Kod,
			Ad:         body.Ad,
			NotAlani:   body.NotAlani,
		}

		if err := database.DB.Create(&zone).Error; err != nil {
			return apperr.ToFiber(err)
		}

		return c.Status(fiber.StatusCreated).JSON(zoneToResponse(&zone))
	}
}

// GET /api/zones?facility_id=1
func ListZonesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := database.DB.Model(&models.Zone{}).Order("kod")
		if fid := c.QueryInt("facility_id"); fid > 0 {
			q = q.Where("facility_id = ?", fid)
		}

		var zones []models.Zone
		if err := q.Find(&zones).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bölgeler listelenemedi")
		}

		res := make([]ZoneResponse, 0, len(zones))
		for i := range zones {
			res = append(res, zoneToResponse(&zones[i]))
		}

		return c.JSON(res)
	}
}

func UpdateZoneHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var zone models.Zone
		if err := database.DB.First(&zone, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Bölge bulunamadı")
		}

		var body UpdateZoneRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		if body.Kod != nil {
			kod := strings.TrimSpace(*body.Kod)
			if kod == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Kod boş olamaz")
			}
			zone.Kod = kod
		}
		if body.Ad != nil {
			zone.Ad = strings.TrimSpace(*body.Ad)
		}
		if body.NotAlani != nil {
			zone.NotAlani = *body.NotAlani
		}

		if err := database.DB.Save(&zone).Error; err != nil {
			return apperr.ToFiber(err)
		}

		return c.JSON(zoneToResponse(&zone))
	}
}

func DeleteZoneHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := database.DB.Delete(&models.Zone{}, "id = ?", id).Error; err != nil {
			return apperr.ToFiber(err)
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
