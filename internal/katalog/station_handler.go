package katalog

import (
	"strings"

	"ilaclama-backend/internal/apperr"
	"ilaclama-backend/internal/database"
	"ilaclama-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type StationResponse struct {
	ID           uint   `json:"id"`
	ZoneID       uint   `json:"zone_id"`
	Kod          string `json:"kod"`
	Ad           string `json:"ad"`
	BenzersizKod string `json:"benzersiz_kod"`
}

type CreateStationRequest struct {
	ZoneID uint   `json:"zone_id"`
	Kod    string `json:"kod"`
	Ad     string `json:"ad"`
}

type UpdateStationRequest struct {
	Kod *string `json:"kod"`
	Ad  *string `json:"ad"`
}

func stationToResponse(m *models.Station) StationResponse {
	return StationResponse{
		ID:           m.ID,
		ZoneID:       m.ZoneID,
		Kod:          m.Kod,
		Ad:           m.Ad,
		BenzersizKod: m.BenzersizKod,
	}
}

func CreateStationHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateStationRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Kod = strings.TrimSpace(body.Kod)
		if body.ZoneID == 0 || body.Kod == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Bölge ve kod zorunlu")
		}

		var zone models.Zone
		if err := database.DB.First(&zone, body.ZoneID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Bölge bulunamadı")
		}

		station := models.Station{
			ZoneID: body.ZoneID,
			Kod:    body.Kod,
			Ad:     strings.TrimSpace(body.Ad),
		}

		// Benzersiz kod BeforeSave'de türetilir; çakışma 409 döner
		if err := database.DB.Create(&station).Error; err != nil {
			return apperr.ToFiber(err)
		}

		return c.Status(fiber.StatusCreated).JSON(stationToResponse(&station))
	}
}

// GET /api/stations?zone_id=1&facility_id=2&benzersiz_kod=C1-F1-Z1-S1
func ListStationsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Benzersiz kod ile tekil arama (saha tarafındaki barkod/etiket okuma)
		if kod := strings.TrimSpace(c.Query("benzersiz_kod")); kod != "" {
			var station models.Station
			if err := database.DB.Where("benzersiz_kod = ?", kod).
				Preload("Zone.Facility.Customer").First(&station).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "İstasyon bulunamadı")
			}
			return c.JSON(fiber.Map{
				"id":            station.ID,
				"benzersiz_kod": station.BenzersizKod,
				"kod":           station.Kod,
				"ad":            station.Ad,
				"zone_kod":      station.Zone.Kod,
				"zone_ad":       station.Zone.Ad,
				"facility_kod":  station.Zone.Facility.Kod,
				"facility_ad":   station.Zone.Facility.Ad,
				"customer_kod":  station.Zone.Facility.Customer.Kod,
			})
		}

		q := database.DB.Model(&models.Station{}).
			Joins("JOIN zones ON zones.id = stations.zone_id").
			Order("zones.kod, stations.kod")

		if zid := c.QueryInt("zone_id"); zid > 0 {
			q = q.Where("stations.zone_id = ?", zid)
		}
		if fid := c.QueryInt("facility_id"); fid > 0 {
			q = q.Where("zones.facility_id = ?", fid)
		}

		var stations []models.Station
		if err := q.Find(&stations).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İstasyonlar listelenemedi")
		}

		res := make([]StationResponse, 0, len(stations))
		for i := range stations {
			res = append(res, stationToResponse(&stations[i]))
		}

		return c.JSON(res)
	}
}

func UpdateStationHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var station models.Station
		if err := database.DB.First(&station, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "İstasyon bulunamadı")
		}

		var body UpdateStationRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		if body.Kod != nil {
			kod := strings.TrimSpace(*body.Kod)
			if kod == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Kod boş olamaz")
			}
			station.Kod = kod
		}
		if body.Ad != nil {
			station.Ad = strings.TrimSpace(*body.Ad)
		}

		if err := database.DB.Save(&station).Error; err != nil {
			return apperr.ToFiber(err)
		}

		return c.JSON(stationToResponse(&station))
	}
}

func DeleteStationHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		// Sayım kaydı olan istasyon silinmez; geçmiş raporlar bozulur
		var sayimSayisi int64
		database.DB.Model(&models.WorkRecordStationCount{}).Where("station_id = ?", id).Count(&sayimSayisi)
		if sayimSayisi > 0 {
			return apperr.ToFiber(apperr.Referencedf("istasyonun %d sayım kaydı var", sayimSayisi))
		}

		if err := database.DB.Delete(&models.Station{}, "id = ?", id).Error; err != nil {
			return apperr.ToFiber(err)
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
