package scheduler

import (
	"log"
	"time"

	"ilaclama-backend/internal/database"
	"ilaclama-backend/internal/periyod"

	"github.com/robfig/cron/v3"
)

// Start her sabah 06:30'da aktif periyotlardan vadesi gelen talepleri üreten
// cron işini başlatır. Üretim tekilleştirildiği için işin tekrar çalışması
// güvenlidir.
func Start() *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("30 6 * * *", func() {
		uretilen, err := periyod.GenerateTalepler(database.DB, time.Now())
		if err != nil {
			log.Printf("[ERROR] Periyodik talep üretimi başarısız: %v", err)
			return
		}
		if uretilen > 0 {
			log.Printf("Periyodik talep üretildi: %d adet", uretilen)
		}
	})
	if err != nil {
		log.Fatalf("[FATAL] Cron işi eklenemedi: %v", err)
	}

	c.Start()
	log.Println("Zamanlayıcı başlatıldı (periyodik talep üretimi 06:30)")
	return c
}
