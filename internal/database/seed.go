package database

import (
	"log"

	"ilaclama-backend/internal/models"

	"gorm.io/gorm"
)

// Varsayılan tanım listeleri. Seed idempotenttir: ada göre yoksa ekler,
// varsa dokunmaz; her açılışta güvenle çağrılır.

var varsayilanTalepTipleri = []string{
	"Periyodik ziyaret",
	"Şikayet",
	"Gözlem ziyareti",
	"Kurulum",
}

var varsayilanUygulamalar = []string{
	"Rezidüel püskürtme",
	"ULV uygulaması",
	"Jel uygulaması",
	"Yemleme istasyonu kontrolü",
	"Sisleme",
}

var varsayilanFaaliyetler = []string{
	"Yemleme istasyonu",
	"Canlı yakalama kapanı",
	"Elektrikli sinek tutucu",
	"Feromon tuzağı",
}

var varsayilanTespitler = []string{
	"Fare aktivitesi",
	"Hamam böceği",
	"Karınca",
	"Uçkun",
	"Depo zararlısı",
}

func Seed(db *gorm.DB) error {
	for i, ad := range varsayilanTalepTipleri {
		if err := seedByAd(db, &models.TalepTipi{Ad: ad, Sira: i}, ad); err != nil {
			return err
		}
	}
	for i, ad := range varsayilanUygulamalar {
		if err := seedByAd(db, &models.UygulamaTanim{Ad: ad, Sira: i}, ad); err != nil {
			return err
		}
	}
	for i, ad := range varsayilanFaaliyetler {
		if err := seedByAd(db, &models.FaaliyetTanim{Ad: ad, Sira: i}, ad); err != nil {
			return err
		}
	}
	for i, ad := range varsayilanTespitler {
		if err := seedByAd(db, &models.TespitTanim{Ad: ad, Sira: i}, ad); err != nil {
			return err
		}
	}
	return nil
}

func seedByAd(db *gorm.DB, model any, ad string) error {
	res := db.Where("ad = ?", ad).FirstOrCreate(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		log.Printf("Varsayılan tanım eklendi: %s", ad)
	}
	return nil
}
