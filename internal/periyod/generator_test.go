package periyod_test

import (
	"testing"
	"time"

	"ilaclama-backend/internal/models"
	"ilaclama-backend/internal/periyod"
)

func g(yil int, ay time.Month, gun int) time.Time {
	return time.Date(yil, ay, gun, 0, 0, 0, 0, time.UTC)
}

func TestOccurrencesGunluk(t *testing.T) {
	p := &models.Periyod{
		BaslangicTarihi: g(2026, time.July, 1),
		Siklik:          models.SiklikGunluk,
		Aralik:          2,
	}

	tarihler := periyod.Occurrences(p, g(2026, time.July, 7))
	beklenen := []time.Time{
		g(2026, time.July, 1), g(2026, time.July, 3),
		g(2026, time.July, 5), g(2026, time.July, 7),
	}
	if len(tarihler) != len(beklenen) {
		t.Fatalf("Tarih sayısı = %d, beklenen %d", len(tarihler), len(beklenen))
	}
	for i := range beklenen {
		if !tarihler[i].Equal(beklenen[i]) {
			t.Errorf("tarihler[%d] = %v, beklenen %v", i, tarihler[i], beklenen[i])
		}
	}
}

func TestOccurrencesHaftalikGunSecimi(t *testing.T) {
	// 2026-07-01 Çarşamba; Pzt ve Cum seçili
	p := &models.Periyod{
		BaslangicTarihi: g(2026, time.July, 1),
		Siklik:          models.SiklikHaftalik,
		Aralik:          1,
		HaftaninGunleri: "1,5",
	}

	tarihler := periyod.Occurrences(p, g(2026, time.July, 12))
	beklenen := []time.Time{
		g(2026, time.July, 3),  // Cuma
		g(2026, time.July, 6),  // Pazartesi
		g(2026, time.July, 10), // Cuma
	}
	if len(tarihler) != len(beklenen) {
		t.Fatalf("Tarih sayısı = %d, beklenen %d: %v", len(tarihler), len(beklenen), tarihler)
	}
	for i := range beklenen {
		if !tarihler[i].Equal(beklenen[i]) {
			t.Errorf("tarihler[%d] = %v, beklenen %v", i, tarihler[i], beklenen[i])
		}
	}
}

func TestOccurrencesAylikKisaAy(t *testing.T) {
	ayinGunu := 31
	p := &models.Periyod{
		BaslangicTarihi: g(2026, time.January, 31),
		Siklik:          models.SiklikAylik,
		Aralik:          1,
		AyinGunu:        &ayinGunu,
	}

	tarihler := periyod.Occurrences(p, g(2026, time.March, 31))
	beklenen := []time.Time{
		g(2026, time.January, 31),
		g(2026, time.February, 28), // Şubat kısa, son güne çekilir
		g(2026, time.March, 31),
	}
	if len(tarihler) != len(beklenen) {
		t.Fatalf("Tarih sayısı = %d, beklenen %d: %v", len(tarihler), len(beklenen), tarihler)
	}
	for i := range beklenen {
		if !tarihler[i].Equal(beklenen[i]) {
			t.Errorf("tarihler[%d] = %v, beklenen %v", i, tarihler[i], beklenen[i])
		}
	}
}

func TestOccurrencesTekrarSayisiSiniri(t *testing.T) {
	tekrar := 3
	p := &models.Periyod{
		BaslangicTarihi: g(2026, time.July, 1),
		Siklik:          models.SiklikGunluk,
		Aralik:          1,
		TekrarSayisi:    &tekrar,
	}

	tarihler := periyod.Occurrences(p, g(2026, time.July, 31))
	if len(tarihler) != 3 {
		t.Errorf("Tarih sayısı = %d, tekrar sınırı 3 uygulanmadı", len(tarihler))
	}
}

func TestOccurrencesBitisTarihiSiniri(t *testing.T) {
	bitis := g(2026, time.July, 3)
	p := &models.Periyod{
		BaslangicTarihi: g(2026, time.July, 1),
		BitisTarihi:     &bitis,
		Siklik:          models.SiklikGunluk,
		Aralik:          1,
	}

	tarihler := periyod.Occurrences(p, g(2026, time.July, 31))
	if len(tarihler) != 3 {
		t.Errorf("Tarih sayısı = %d, bitiş tarihi sınırı uygulanmadı", len(tarihler))
	}
}
