package rapor

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"ilaclama-backend/internal/apperr"
	"ilaclama-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GenerateFaaliyetRaporu iş kaydının 1-1 faaliyet raporu satırını üretir veya
// günceller. Anlık görüntü alanları (müşteri kodu, form numarası) her üretimde
// yeniden yazılır; satır zaten varsa üzerine yazılır.
func GenerateFaaliyetRaporu(db *gorm.DB, workRecordID uint, raporDir string) (*models.FaaliyetRaporu, error) {
	var record models.WorkRecord
	err := db.Preload("KapatilanTalep.Customer").First(&record, workRecordID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Validationf("iş kaydı bulunamadı: %d", workRecordID)
		}
		return nil, err
	}

	rapor := models.FaaliyetRaporu{
		WorkRecordID:     record.ID,
		IsKaydiKod:       record.FormNumarasi,
		RaporTarihi:      time.Now(),
		RaporOlusturuldu: true,
	}
	if record.KapatilanTalep != nil {
		rapor.MusteriKod = record.KapatilanTalep.Customer.Kod
	}

	dosyaAdi := fmt.Sprintf("faaliyet-raporu-%d.pdf", record.ID)
	if record.FormNumarasi != "" {
		dosyaAdi = fmt.Sprintf("faaliyet-raporu-%s.pdf", record.FormNumarasi)
	}
	rapor.PdfYolu = filepath.Join(raporDir, dosyaAdi)

	err = db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "work_record_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"musteri_kod", "is_kaydi_kod", "rapor_tarihi", "rapor_olusturuldu", "pdf_yolu", "updated_at",
		}),
	}).Create(&rapor).Error
	if err != nil {
		return nil, err
	}

	var sonuc models.FaaliyetRaporu
	if err := db.Where("work_record_id = ?", record.ID).First(&sonuc).Error; err != nil {
		return nil, err
	}
	return &sonuc, nil
}
