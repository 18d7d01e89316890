package main

import (
	"log"
	"strings"

	"ilaclama-backend/internal/audit"
	"ilaclama-backend/internal/auth"
	"ilaclama-backend/internal/config"
	"ilaclama-backend/internal/database"
	"ilaclama-backend/internal/ekip"
	"ilaclama-backend/internal/iskaydi"
	"ilaclama-backend/internal/katalog"
	"ilaclama-backend/internal/models"
	"ilaclama-backend/internal/periyod"
	"ilaclama-backend/internal/rapor"
	"ilaclama-backend/internal/sayim"
	"ilaclama-backend/internal/scheduler"
	"ilaclama-backend/internal/talep"
	"ilaclama-backend/internal/tanim"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den temizleyerek geçir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-super-admin", auth.RegisterSuperAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Super admin routes
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleSuperAdmin))

	// Personel yönetimi
	adminRoutes.Post("/personel", auth.CreatePersonelHandler())

	// Tanım listeleri (yalnızca yönetici düzenler)
	adminRoutes.Post("/talep-tipleri", tanim.CreateTalepTipiHandler())
	adminRoutes.Delete("/talep-tipleri/:id", tanim.DeleteTalepTipiHandler())
	adminRoutes.Post("/uygulama-tanimlari", tanim.CreateUygulamaTanimHandler())
	adminRoutes.Delete("/uygulama-tanimlari/:id", tanim.DeleteUygulamaTanimHandler())
	adminRoutes.Post("/faaliyet-tanimlari", tanim.CreateFaaliyetTanimHandler())
	adminRoutes.Delete("/faaliyet-tanimlari/:id", tanim.DeleteFaaliyetTanimHandler())
	adminRoutes.Post("/tespit-tanimlari", tanim.CreateTespitTanimHandler())
	adminRoutes.Delete("/tespit-tanimlari/:id", tanim.DeleteTespitTanimHandler())
	adminRoutes.Post("/ilaclar", tanim.CreateIlacTanimHandler())
	adminRoutes.Put("/ilaclar/:id", tanim.UpdateIlacTanimHandler())
	adminRoutes.Delete("/ilaclar/:id", tanim.DeleteIlacTanimHandler())

	// Denetim izi
	adminRoutes.Get("/audit-logs", audit.ListAuditLogsHandler())

	// Müşteri hiyerarşisi
	protected.Post("/customers", katalog.CreateCustomerHandler())
	protected.Get("/customers", katalog.ListCustomersHandler())
	protected.Get("/customers/:id", katalog.GetCustomerHandler())
	protected.Put("/customers/:id", katalog.UpdateCustomerHandler())
	protected.Delete("/customers/:id", katalog.DeleteCustomerHandler())

	protected.Post("/facilities", katalog.CreateFacilityHandler())
	protected.Get("/facilities", katalog.ListFacilitiesHandler())
	protected.Put("/facilities/:id", katalog.UpdateFacilityHandler())
	protected.Delete("/facilities/:id", katalog.DeleteFacilityHandler())

	protected.Post("/zones", katalog.CreateZoneHandler())
	protected.Get("/zones", katalog.ListZonesHandler())
	protected.Put("/zones/:id", katalog.UpdateZoneHandler())
	protected.Delete("/zones/:id", katalog.DeleteZoneHandler())

	protected.Post("/stations", katalog.CreateStationHandler())
	protected.Get("/stations", katalog.ListStationsHandler())
	protected.Put("/stations/:id", katalog.UpdateStationHandler())
	protected.Delete("/stations/:id", katalog.DeleteStationHandler())

	protected.Post("/contacts", katalog.CreateContactHandler())
	protected.Get("/contacts", katalog.ListContactsHandler())
	protected.Put("/contacts/:id", katalog.UpdateContactHandler())
	protected.Delete("/contacts/:id", katalog.DeleteContactHandler())

	// Tanım listeleri (okuma herkese açık)
	protected.Get("/talep-tipleri", tanim.ListTalepTipleriHandler())
	protected.Get("/uygulama-tanimlari", tanim.ListUygulamaTanimlariHandler())
	protected.Get("/faaliyet-tanimlari", tanim.ListFaaliyetTanimlariHandler())
	protected.Get("/tespit-tanimlari", tanim.ListTespitTanimlariHandler())
	protected.Get("/ilaclar", tanim.ListIlacTanimlariHandler())

	// Ekipler
	protected.Post("/ekipler", ekip.CreateEkipHandler())
	protected.Get("/ekipler", ekip.ListEkiplerHandler())
	protected.Put("/ekipler/:id", ekip.UpdateEkipHandler())
	protected.Delete("/ekipler/:id", ekip.DeleteEkipHandler())

	// Talepler
	protected.Post("/talepler", talep.CreateTalepHandler())
	protected.Get("/talepler", talep.ListTaleplerHandler())
	protected.Get("/talepler/:id", talep.GetTalepHandler())
	protected.Put("/talepler/:id", talep.UpdateTalepHandler())
	protected.Delete("/talepler/:id", talep.DeleteTalepHandler())

	// İş kayıtları
	protected.Post("/is-kayitlari", iskaydi.CreateWorkRecordHandler())
	protected.Get("/is-kayitlari", iskaydi.ListWorkRecordsHandler())
	protected.Get("/is-kayitlari/:id", iskaydi.GetWorkRecordHandler())
	protected.Put("/is-kayitlari/:id", iskaydi.UpdateWorkRecordHandler())
	protected.Delete("/is-kayitlari/:id", iskaydi.DeleteWorkRecordHandler())
	protected.Post("/is-kayitlari/:id/baslat", iskaydi.BaslatWorkRecordHandler())
	protected.Post("/is-kayitlari/:id/bitir", iskaydi.BitirWorkRecordHandler())

	// İstasyon sayımı
	protected.Get("/is-kayitlari/:id/sayim", sayim.SummaryHandler())
	protected.Put("/is-kayitlari/:id/sayim", sayim.BulkRecordCountHandler())
	protected.Put("/is-kayitlari/:id/sayim/:station_id", sayim.RecordCountHandler())
	protected.Delete("/is-kayitlari/:id/sayim/:station_id", sayim.DeleteCountHandler())

	// Raporlar
	protected.Get("/rapor/istasyon", rapor.IstasyonRaporuHandler())
	protected.Get("/rapor/istasyon/excel", rapor.IstasyonRaporuExcelHandler())
	protected.Get("/rapor/ilac-kullanimlari", rapor.IlacKullanimlariHandler())
	protected.Post("/is-kayitlari/:id/faaliyet-raporu", rapor.GenerateFaaliyetRaporuHandler(cfg))
	protected.Get("/faaliyet-raporlari", rapor.ListFaaliyetRaporlariHandler())

	// Periyodik ziyaretler
	protected.Post("/periyotlar", periyod.CreatePeriyodHandler())
	protected.Get("/periyotlar", periyod.ListPeriyotlarHandler())
	protected.Put("/periyotlar/:id", periyod.UpdatePeriyodHandler())
	protected.Delete("/periyotlar/:id", periyod.DeletePeriyodHandler())
	protected.Post("/periyotlar/uret", periyod.GenerateTaleplerHandler())

	cronJob := scheduler.Start()
	defer cronJob.Stop()

	log.Printf("Sunucu %s portunda dinleniyor", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatalf("[FATAL] Sunucu başlatılamadı: %v", err)
	}
}
