package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ilaclama-backend/internal/apperr"
)

// WorkRecord: İş kaydı (tarih, personel, ekip, başlama/bitiş saati, kullanılan
// ekipman bayrakları, öneriler). Bir talep bu kayıtla kapatılır (1-1); kapatan
// kayıt değişince eski talebin durumu yeniden hesaplanır. Bitiş saati girilince
// istasyon sayımı o kayıt için salt okunur hale gelir.
type WorkRecord struct {
	ID         uint      `gorm:"primaryKey"`
	Tarih      time.Time `gorm:"type:date;not null;index"`
	PersonelID uint      `gorm:"not null"`
	Personel   User      `gorm:"foreignKey:PersonelID;constraint:OnDelete:RESTRICT"`
	EkipID     *uint
	Ekip       *Ekip     `gorm:"foreignKey:EkipID"`
	FacilityID *uint     `gorm:"index"` // Talep kapatmadan yapılan işler için doğrudan tesis bağlantısı
	Facility   *Facility

	BaslamaSaati *time.Time `gorm:"type:time"`
	BitisSaati   *time.Time `gorm:"type:time"`

	GozlemZiyaretiYapilmali bool `gorm:"default:false"`
	SozlesmeDisiIslemVar    bool `gorm:"default:false"`

	// Makine ve ekipman bayrakları
	SKB           bool `gorm:"default:false"`
	Atomizor      bool `gorm:"default:false"`
	Pulverizator  bool `gorm:"default:false"`
	TermalSis     bool `gorm:"default:false"`
	ArUzULV       bool `gorm:"default:false"`
	ElkULV        bool `gorm:"default:false"`
	CiviTabancasi bool `gorm:"default:false"`

	Oneriler string `gorm:"type:text"`
	NotAlani string `gorm:"type:text"`

	// Kapatılan talep: tek iş kaydı bir talebi kapatabilir (unique index,
	// NULL'lar hariç). Kaydedildiğinde talep Yapıldı olur.
	KapatilanTalepID *uint  `gorm:"uniqueIndex"`
	KapatilanTalep   *Talep `gorm:"foreignKey:KapatilanTalepID"`

	// Otomatik: MüşteriKodu-TesisKodu-YYYYMMDD, yalnızca kapatılan talep varsa
	FormNumarasi string `gorm:"size:80"`

	CreatedAt time.Time
	UpdatedAt time.Time

	// Kaydetme sırasında önceki kapatılan talep (hook'lar arası taşınır)
	oncekiTalepID *uint `gorm:"-"`
}

// BeforeSave önceki kapatılan talebi kilitleyerek okur ve form numarasını
// yeniden türetir. Kapatılan talep yoksa form numarası boş kalır; iş kaydının
// kendi tesisi olsa bile (form numarası raporu kapatılan talebe bağlar).
func (w *WorkRecord) BeforeSave(tx *gorm.DB) error {
	w.oncekiTalepID = nil
	if w.ID != 0 {
		var eski WorkRecord
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id", "kapatilan_talep_id").First(&eski, w.ID).Error
		if err == nil {
			w.oncekiTalepID = eski.KapatilanTalepID
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}

	w.FormNumarasi = ""
	if w.KapatilanTalepID != nil {
		var talep Talep
		err := tx.Preload("Customer").Preload("Facility").First(&talep, *w.KapatilanTalepID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Validationf("kapatılan talep bulunamadı: %d", *w.KapatilanTalepID)
			}
			return err
		}
		if talep.Facility != nil {
			w.FormNumarasi = fmt.Sprintf("%s-%s-%s",
				talep.Customer.Kod, talep.Facility.Kod, w.Tarih.Format("20060102"))
		}
	}
	return nil
}

// AfterSave kapatılan talebi Yapıldı yapar; kapatan kayıt başka talebe
// geçtiyse (veya kaldırıldıysa) eski talebin durumunu yeniden hesaplar.
func (w *WorkRecord) AfterSave(tx *gorm.DB) error {
	if w.KapatilanTalepID != nil {
		var talep Talep
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&talep, *w.KapatilanTalepID).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		} else if talep.Durum != TalepDurumYapildi {
			if err := tx.Model(&Talep{}).Where("id = ?", talep.ID).
				UpdateColumn("durum", TalepDurumYapildi).Error; err != nil {
				return err
			}
		}
	}
	if w.oncekiTalepID != nil && (w.KapatilanTalepID == nil || *w.oncekiTalepID != *w.KapatilanTalepID) {
		return RecalculateTalepDurum(tx, *w.oncekiTalepID)
	}
	return nil
}

// AfterDelete kapatılan talebi serbest bırakır; durum Planlandı/Beklemede'ye
// döner, asla Yapıldı kalmaz.
func (w *WorkRecord) AfterDelete(tx *gorm.DB) error {
	if w.KapatilanTalepID != nil {
		return RecalculateTalepDurum(tx, *w.KapatilanTalepID)
	}
	return nil
}
