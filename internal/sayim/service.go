package sayim

import (
	"errors"

	"ilaclama-backend/internal/apperr"
	"ilaclama-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CountItem struct {
	StationID  uint   `json:"station_id"`
	TuketimVar bool   `json:"tuketim_var"`
	NotAlani   string `json:"not_alani"`
}

type SummaryStation struct {
	StationID    uint   `json:"station_id"`
	BenzersizKod string `json:"benzersiz_kod"`
	Ad           string `json:"ad"`
	TuketimVar   *bool  `json:"tuketim_var"` // nil: henüz girilmedi
	NotAlani     string `json:"not_alani"`
}

type Summary struct {
	WorkRecordID uint             `json:"work_record_id"`
	Toplam       int              `json:"toplam"`
	Girilen      int              `json:"girilen"`
	Kalan        int              `json:"kalan"`
	Istasyonlar  []SummaryStation `json:"istasyonlar"`
}

// Bitiş saati girilmiş iş kaydının sayımı salt okunurdur. Kayıt kilitlenerek
// okunur ki eşzamanlı bitirme ile sayım yazma yarışmasın.
func lockRecord(tx *gorm.DB, workRecordID uint) (*models.WorkRecord, error) {
	var record models.WorkRecord
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&record, workRecordID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Validationf("iş kaydı bulunamadı: %d", workRecordID)
		}
		return nil, err
	}
	if record.BitisSaati != nil {
		return nil, apperr.Lockedf("iş kaydı kapatıldı, sayım değiştirilemez")
	}
	return &record, nil
}

func upsertCount(tx *gorm.DB, workRecordID uint, item CountItem) error {
	satir := models.WorkRecordStationCount{
		WorkRecordID: workRecordID,
		StationID:    item.StationID,
		TuketimVar:   item.TuketimVar,
		NotAlani:     item.NotAlani,
	}
	// (iş kaydı, istasyon) başına tek satır; tekrar yazım güncellemedir
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "work_record_id"}, {Name: "station_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"tuketim_var", "not_alani", "updated_at"}),
	}).Create(&satir).Error
}

// RecordCount tek istasyon için sayım yazar (upsert). İstasyon yoksa
// doğrulama hatası döner.
func RecordCount(db *gorm.DB, workRecordID uint, item CountItem) (*models.WorkRecordStationCount, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := lockRecord(tx, workRecordID); err != nil {
			return err
		}
		var station models.Station
		if err := tx.First(&station, item.StationID).Error; err != nil {
			return apperr.Validationf("istasyon bulunamadı: %d", item.StationID)
		}
		return upsertCount(tx, workRecordID, item)
	})
	if err != nil {
		return nil, err
	}

	var satir models.WorkRecordStationCount
	if err := db.Where("work_record_id = ? AND station_id = ?", workRecordID, item.StationID).
		First(&satir).Error; err != nil {
		return nil, err
	}
	return &satir, nil
}

// BulkRecordCount birden çok istasyonu tek transaction'da yazar. Silinmiş
// veya bilinmeyen istasyonlar atlanır; uygulanan satır sayısı döner.
func BulkRecordCount(db *gorm.DB, workRecordID uint, items []CountItem) (int, error) {
	applied := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := lockRecord(tx, workRecordID); err != nil {
			return err
		}
		for _, item := range items {
			var count int64
			tx.Model(&models.Station{}).Where("id = ?", item.StationID).Count(&count)
			if count == 0 {
				continue
			}
			if err := upsertCount(tx, workRecordID, item); err != nil {
				return err
			}
			applied++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return applied, nil
}

// SummaryFor iş kaydının tesisindeki tüm istasyonları, girilmiş sayımlarla
// birleştirip toplam/girilen/kalan özetini üretir. Tesis, iş kaydının kendi
// tesisi; yoksa kapatılan talebin tesisidir. zoneID verilirse tek bölgeye
// daraltılır.
func SummaryFor(db *gorm.DB, workRecordID uint, zoneID *uint) (*Summary, error) {
	var record models.WorkRecord
	if err := db.Preload("KapatilanTalep").First(&record, workRecordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Validationf("iş kaydı bulunamadı: %d", workRecordID)
		}
		return nil, err
	}

	var facilityID *uint
	if record.FacilityID != nil {
		facilityID = record.FacilityID
	} else if record.KapatilanTalep != nil {
		facilityID = record.KapatilanTalep.FacilityID
	}

	summary := Summary{WorkRecordID: workRecordID}

	var stations []models.Station
	if facilityID != nil {
		q := db.Joins("JOIN zones ON zones.id = stations.zone_id").
			Where("zones.facility_id = ?", *facilityID).
			Order("zones.kod, stations.kod")
		if zoneID != nil {
			q = q.Where("stations.zone_id = ?", *zoneID)
		}
		if err := q.Find(&stations).Error; err != nil {
			return nil, err
		}
	}

	var girilenler []models.WorkRecordStationCount
	if err := db.Where("work_record_id = ?", workRecordID).Find(&girilenler).Error; err != nil {
		return nil, err
	}
	girilenMap := make(map[uint]*models.WorkRecordStationCount, len(girilenler))
	for i := range girilenler {
		girilenMap[girilenler[i].StationID] = &girilenler[i]
	}

	summary.Toplam = len(stations)
	summary.Istasyonlar = make([]SummaryStation, 0, len(stations))
	for i := range stations {
		st := SummaryStation{
			StationID:    stations[i].ID,
			BenzersizKod: stations[i].BenzersizKod,
			Ad:           stations[i].Ad,
		}
		if satir, ok := girilenMap[stations[i].ID]; ok {
			v := satir.TuketimVar
			st.TuketimVar = &v
			st.NotAlani = satir.NotAlani
			summary.Girilen++
		}
		summary.Istasyonlar = append(summary.Istasyonlar, st)
	}
	summary.Kalan = summary.Toplam - summary.Girilen

	return &summary, nil
}
