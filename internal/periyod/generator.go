package periyod

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"ilaclama-backend/internal/models"

	"gorm.io/gorm"
)

// Occurrences periyodun başlangıçtan verilen güne kadarki vade tarihlerini
// üretir. Bitiş tarihi ve tekrar sayısı sınırları burada uygulanır.
func Occurrences(p *models.Periyod, bugun time.Time) []time.Time {
	bugun = bugun.Truncate(24 * time.Hour)
	var tarihler []time.Time

	son := bugun
	if p.BitisTarihi != nil && p.BitisTarihi.Before(son) {
		son = *p.BitisTarihi
	}

	aralik := p.Aralik
	if aralik < 1 {
		aralik = 1
	}

	ekle := func(t time.Time) bool {
		if p.TekrarSayisi != nil && len(tarihler) >= *p.TekrarSayisi {
			return false
		}
		tarihler = append(tarihler, t)
		return true
	}

	switch p.Siklik {
	case models.SiklikGunluk:
		for t := p.BaslangicTarihi; !t.After(son); t = t.AddDate(0, 0, aralik) {
			if !ekle(t) {
				break
			}
		}

	case models.SiklikHaftalik:
		gunler := parseHaftaninGunleri(p.HaftaninGunleri)
		if len(gunler) == 0 {
			// Gün seçilmemişse başlangıç gününün haftalık tekrarı
			gunler = map[int]bool{isoWeekday(p.BaslangicTarihi): true}
		}
		// Başlangıç haftasının pazartesisi
		haftaBasi := p.BaslangicTarihi.AddDate(0, 0, -(isoWeekday(p.BaslangicTarihi) - 1))
		done := false
		for hafta := haftaBasi; !hafta.After(son) && !done; hafta = hafta.AddDate(0, 0, 7*aralik) {
			for gun := 0; gun < 7; gun++ {
				t := hafta.AddDate(0, 0, gun)
				if t.Before(p.BaslangicTarihi) || t.After(son) {
					continue
				}
				if !gunler[isoWeekday(t)] {
					continue
				}
				if !ekle(t) {
					done = true
					break
				}
			}
		}

	case models.SiklikAylik:
		gun := p.BaslangicTarihi.Day()
		if p.AyinGunu != nil && *p.AyinGunu >= 1 && *p.AyinGunu <= 31 {
			gun = *p.AyinGunu
		}
		for ay := time.Date(p.BaslangicTarihi.Year(), p.BaslangicTarihi.Month(), 1, 0, 0, 0, 0, p.BaslangicTarihi.Location()); ; ay = ay.AddDate(0, aralik, 0) {
			t := ayinGunu(ay, gun)
			if t.After(son) {
				break
			}
			if t.Before(p.BaslangicTarihi) {
				continue
			}
			if !ekle(t) {
				break
			}
		}

	case models.SiklikYillik:
		ay := int(p.BaslangicTarihi.Month())
		if p.Ay != nil && *p.Ay >= 1 && *p.Ay <= 12 {
			ay = *p.Ay
		}
		gun := p.BaslangicTarihi.Day()
		if p.AyinGunu != nil && *p.AyinGunu >= 1 && *p.AyinGunu <= 31 {
			gun = *p.AyinGunu
		}
		for yil := p.BaslangicTarihi.Year(); ; yil += aralik {
			t := ayinGunu(time.Date(yil, time.Month(ay), 1, 0, 0, 0, 0, p.BaslangicTarihi.Location()), gun)
			if t.After(son) {
				break
			}
			if t.Before(p.BaslangicTarihi) {
				continue
			}
			if !ekle(t) {
				break
			}
		}
	}

	return tarihler
}

// 1=Pzt .. 7=Paz
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

func parseHaftaninGunleri(s string) map[int]bool {
	gunler := make(map[int]bool)
	for _, parca := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(parca))
		if err == nil && n >= 1 && n <= 7 {
			gunler[n] = true
		}
	}
	return gunler
}

// Ayın n. günü; ay kısa ise son güne çekilir (31 Şubat -> 28/29).
func ayinGunu(ayBasi time.Time, gun int) time.Time {
	sonGun := ayBasi.AddDate(0, 1, -1).Day()
	if gun > sonGun {
		gun = sonGun
	}
	return time.Date(ayBasi.Year(), ayBasi.Month(), gun, 0, 0, 0, 0, ayBasi.Location())
}

// GenerateTalepler aktif periyotların vadesi gelmiş taleplerini üretir.
// (periyot, tarih) çifti PeriyodTalep ile tekilleştirilir; cron tekrar
// çalıştığında mevcut tarihler atlanır. Üretilen talep sayısı döner.
func GenerateTalepler(db *gorm.DB, bugun time.Time) (int, error) {
	var periyotlar []models.Periyod
	if err := db.Where("aktif = ?", true).Find(&periyotlar).Error; err != nil {
		return 0, err
	}

	uretilen := 0
	for i := range periyotlar {
		p := &periyotlar[i]
		if p.TalepTipiID == nil {
			continue
		}

		for _, tarih := range Occurrences(p, bugun) {
			err := db.Transaction(func(tx *gorm.DB) error {
				var mevcut int64
				tx.Model(&models.PeriyodTalep{}).
					Where("periyod_id = ? AND tarih = ?", p.ID, tarih).Count(&mevcut)
				if mevcut > 0 {
					return nil
				}

				talep := models.Talep{
					CustomerID: p.CustomerID,
					FacilityID: p.FacilityID,
					Tarih:      tarih,
					TipID:      *p.TalepTipiID,
					Aciklama:   fmt.Sprintf("Periyodik ziyaret: %s", p.Ad),
				}
				if err := tx.Create(&talep).Error; err != nil {
					return err
				}

				kayit := models.PeriyodTalep{PeriyodID: p.ID, Tarih: tarih, TalepID: talep.ID}
				if err := tx.Create(&kayit).Error; err != nil {
					return err
				}
				uretilen++
				return nil
			})
			if err != nil {
				return uretilen, err
			}
		}
	}

	return uretilen, nil
}
