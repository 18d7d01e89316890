package sayim

import (
	"ilaclama-backend/internal/apperr"
	"ilaclama-backend/internal/database"
	"ilaclama-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// PUT /api/is-kayitlari/:id/sayim/:station_id — tek istasyon sayımı (upsert).
func RecordCountHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		recordID, err := c.ParamsInt("id")
		if err != nil || recordID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz iş kaydı")
		}
		stationID, err := c.ParamsInt("station_id")
		if err != nil || stationID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istasyon")
		}

		var body struct {
			TuketimVar bool   `json:"tuketim_var"`
			NotAlani   string `json:"not_alani"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		satir, err := RecordCount(database.DB, uint(recordID), CountItem{
			StationID:  uint(stationID),
			TuketimVar: body.TuketimVar,
			NotAlani:   body.NotAlani,
		})
		if err != nil {
			return apperr.ToFiber(err)
		}

		return c.JSON(fiber.Map{
			"work_record_id": satir.WorkRecordID,
			"station_id":     satir.StationID,
			"tuketim_var":    satir.TuketimVar,
			"not_alani":      satir.NotAlani,
		})
	}
}

// PUT /api/is-kayitlari/:id/sayim — toplu sayım; bilinmeyen istasyonlar atlanır.
func BulkRecordCountHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		recordID, err := c.ParamsInt("id")
		if err != nil || recordID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz iş kaydı")
		}

		var body struct {
			Sayimlar []CountItem `json:"sayimlar"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}
		if len(body.Sayimlar) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Sayım listesi boş")
		}

		applied, err := BulkRecordCount(database.DB, uint(recordID), body.Sayimlar)
		if err != nil {
			return apperr.ToFiber(err)
		}

		return c.JSON(fiber.Map{
			"gonderilen": len(body.Sayimlar),
			"uygulanan":  applied,
			"atlanan":    len(body.Sayimlar) - applied,
		})
	}
}

// GET /api/is-kayitlari/:id/sayim — tesisin tüm istasyonları + girilme durumu.
func SummaryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		recordID, err := c.ParamsInt("id")
		if err != nil || recordID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz iş kaydı")
		}

		var zoneID *uint
		if zid := c.QueryInt("zone_id"); zid > 0 {
			z := uint(zid)
			zoneID = &z
		}

		summary, err := SummaryFor(database.DB, uint(recordID), zoneID)
		if err != nil {
			return apperr.ToFiber(err)
		}
		return c.JSON(summary)
	}
}

// DELETE /api/is-kayitlari/:id/sayim/:station_id — sayım satırını kaldırır.
func DeleteCountHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		recordID, err := c.ParamsInt("id")
		if err != nil || recordID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz iş kaydı")
		}
		stationID, err := c.ParamsInt("station_id")
		if err != nil || stationID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istasyon")
		}

		var record models.WorkRecord
		if err := database.DB.First(&record, recordID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "İş kaydı bulunamadı")
		}
		if record.BitisSaati != nil {
			return apperr.ToFiber(apperr.Lockedf("iş kaydı kapatıldı, sayım değiştirilemez"))
		}

		if err := database.DB.
			Where("work_record_id = ? AND station_id = ?", recordID, stationID).
			Delete(&models.WorkRecordStationCount{}).Error; err != nil {
			return apperr.ToFiber(err)
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
