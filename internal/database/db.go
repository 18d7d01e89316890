package database

import (
	"log"

	"ilaclama-backend/internal/config"
	"ilaclama-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	// TranslateError: unique/foreign key ihlalleri gorm.ErrDuplicatedKey /
	// gorm.ErrForeignKeyViolated olarak döner, handler'lar 409'a çevirir
	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Veritabanına bağlanılamadı: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("AutoMigrate hatası: %v", err)
	}

	if err := Seed(DB); err != nil {
		log.Fatalf("Varsayılan kayıtlar yüklenemedi: %v", err)
	}

	log.Println("Veritabanı bağlantısı başarılı. Migration tamamlandı.")
}

// Migrate tüm tabloları oluşturur/günceller. Test şemaları da aynı listeyi kullanır.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Customer{},
		&models.Facility{},
		&models.Zone{},
		&models.Station{},
		&models.Contact{},
		&models.Ekip{},
		&models.TalepTipi{},
		&models.UygulamaTanim{},
		&models.FaaliyetTanim{},
		&models.TespitTanim{},
		&models.IlacTanim{},
		&models.Talep{},
		&models.WorkRecord{},
		&models.WorkRecordUygulama{},
		&models.WorkRecordFaaliyet{},
		&models.WorkRecordIlac{},
		&models.WorkRecordTespit{},
		&models.WorkRecordStationCount{},
		&models.FaaliyetRaporu{},
		&models.Periyod{},
		&models.PeriyodTalep{},
		&models.AuditLog{},
	)
}
