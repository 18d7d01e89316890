package rapor

import (
	"time"

	"ilaclama-backend/internal/models"

	"gorm.io/gorm"
)

// İstasyon izleme raporu: seçilen tesiste, tarih aralığındaki iş kayıtlarının
// istasyon bazlı Var/Yok tüketim matrisi ve bölge/tesis oranları.

type IstasyonSatir struct {
	StationID  uint    `json:"station_id"`
	ZoneID     uint    `json:"zone_id"`
	ZoneKod    string  `json:"zone_kod"`
	StationKod string  `json:"station_kod"`
	Ad         string  `json:"ad"`
	Hucreler   []*bool `json:"hucreler"` // Tarih sırasıyla; nil = giriş yok
}

type OranSatir struct {
	Tarih     string   `json:"tarih"`
	Toplam    int      `json:"toplam"`
	VarSayisi int      `json:"var_sayisi"`
	Oran      *float64 `json:"oran"` // Var / toplam; istasyon yoksa nil
}

type BolgeOranlari struct {
	ZoneID  uint        `json:"zone_id"`
	ZoneKod string      `json:"zone_kod"`
	Oranlar []OranSatir `json:"oranlar"`
}

// BolgeDegisim ilk ve son tarih arasındaki değişimi özetler. Var sayısı
// sıfırdan sıfıra giderse değişim %0; sıfırdan pozitife giderse taban
// olmadığından nil.
type BolgeDegisim struct {
	ZoneID         uint     `json:"zone_id"`
	ZoneKod        string   `json:"zone_kod"`
	IlkVarSayisi   int      `json:"ilk_var_sayisi"`
	SonVarSayisi   int      `json:"son_var_sayisi"`
	DegisimYuzdesi *float64 `json:"degisim_yuzdesi"`
	FlipYuzdesi    *float64 `json:"flip_yuzdesi"` // Durumu değişen istasyon oranı
}

type hucreKey struct {
	stationID uint
	tarih     string
}

type IstasyonRaporu struct {
	FacilityID       uint            `json:"facility_id"`
	FacilityKod      string          `json:"facility_kod"`
	FacilityAd       string          `json:"facility_ad"`
	Tarihler         []string        `json:"tarihler"`
	Satirlar         []IstasyonSatir `json:"satirlar"`
	TesisOranlari    []OranSatir     `json:"tesis_oranlari"`
	BolgeOranlari    []BolgeOranlari `json:"bolge_oranlari"`
	BolgeDegisimleri []BolgeDegisim  `json:"bolge_degisimleri"`
}

func oran(varSayisi, toplam int) *float64 {
	if toplam == 0 {
		return nil
	}
	o := float64(varSayisi) / float64(toplam) * 100
	return &o
}

// IstasyonRaporuData matrisi kurar. Aralıktaki iş kayıtlarından tesise
// bağlı olanlar (doğrudan veya kapattığı talep üzerinden) alınır; aynı güne
// düşen birden fazla kayıtta son yazılan giriş geçerlidir.
func IstasyonRaporuData(db *gorm.DB, facilityID uint, baslangic, bitis time.Time) (*IstasyonRaporu, error) {
	var facility models.Facility
	if err := db.First(&facility, facilityID).Error; err != nil {
		return nil, err
	}

	var stations []models.Station
	if err := db.Preload("Zone").
		Joins("JOIN zones ON zones.id = stations.zone_id").
		Where("zones.facility_id = ?", facilityID).
		Order("zones.kod, stations.kod").Find(&stations).Error; err != nil {
		return nil, err
	}

	var records []models.WorkRecord
	if err := db.
		Joins("LEFT JOIN taleps ON taleps.id = work_records.kapatilan_talep_id").
		Where("work_records.tarih >= ? AND work_records.tarih <= ?", baslangic, bitis).
		Where("work_records.facility_id = ? OR taleps.facility_id = ?", facilityID, facilityID).
		Order("work_records.tarih, work_records.id").
		Find(&records).Error; err != nil {
		return nil, err
	}

	// Tarih listesi (tekrarsız, sıralı)
	var tarihler []string
	tarihIndex := make(map[string]int)
	for i := range records {
		key := records[i].Tarih.Format("2006-01-02")
		if _, ok := tarihIndex[key]; !ok {
			tarihIndex[key] = len(tarihler)
			tarihler = append(tarihler, key)
		}
	}

	// (istasyon, tarih) -> tüketim
	hucreler := make(map[hucreKey]bool)
	for i := range records {
		key := records[i].Tarih.Format("2006-01-02")
		var sayimlar []models.WorkRecordStationCount
		if err := db.Where("work_record_id = ?", records[i].ID).Find(&sayimlar).Error; err != nil {
			return nil, err
		}
		for _, s := range sayimlar {
			hucreler[hucreKey{s.StationID, key}] = s.TuketimVar
		}
	}

	rapor := IstasyonRaporu{
		FacilityID:  facility.ID,
		FacilityKod: facility.Kod,
		FacilityAd:  facility.Ad,
		Tarihler:    tarihler,
	}

	zoneKodlari := make(map[uint]string)
	zoneSira := make([]uint, 0)
	zoneStations := make(map[uint][]uint)

	for i := range stations {
		st := &stations[i]
		if _, ok := zoneKodlari[st.ZoneID]; !ok {
			zoneKodlari[st.ZoneID] = st.Zone.Kod
			zoneSira = append(zoneSira, st.ZoneID)
		}
		zoneStations[st.ZoneID] = append(zoneStations[st.ZoneID], st.ID)

		satir := IstasyonSatir{
			StationID:  st.ID,
			ZoneID:     st.ZoneID,
			ZoneKod:    st.Zone.Kod,
			StationKod: st.Kod,
			Ad:         st.Ad,
			Hucreler:   make([]*bool, len(tarihler)),
		}
		for j, tarih := range tarihler {
			if v, ok := hucreler[hucreKey{st.ID, tarih}]; ok {
				val := v
				satir.Hucreler[j] = &val
			}
		}
		rapor.Satirlar = append(rapor.Satirlar, satir)
	}

	// Tesis geneli oranlar
	for _, tarih := range tarihler {
		varSayisi := 0
		for i := range stations {
			if v, ok := hucreler[hucreKey{stations[i].ID, tarih}]; ok && v {
				varSayisi++
			}
		}
		rapor.TesisOranlari = append(rapor.TesisOranlari, OranSatir{
			Tarih:     tarih,
			Toplam:    len(stations),
			VarSayisi: varSayisi,
			Oran:      oran(varSayisi, len(stations)),
		})
	}

	// Bölge oranları ve ilk/son değişim
	for _, zoneID := range zoneSira {
		ids := zoneStations[zoneID]
		bolge := BolgeOranlari{ZoneID: zoneID, ZoneKod: zoneKodlari[zoneID]}

		varPerTarih := make([]int, len(tarihler))
		for j, tarih := range tarihler {
			for _, sid := range ids {
				if v, ok := hucreler[hucreKey{sid, tarih}]; ok && v {
					varPerTarih[j]++
				}
			}
			bolge.Oranlar = append(bolge.Oranlar, OranSatir{
				Tarih:     tarih,
				Toplam:    len(ids),
				VarSayisi: varPerTarih[j],
				Oran:      oran(varPerTarih[j], len(ids)),
			})
		}
		rapor.BolgeOranlari = append(rapor.BolgeOranlari, bolge)

		if len(tarihler) > 0 {
			rapor.BolgeDegisimleri = append(rapor.BolgeDegisimleri,
				bolgeDegisim(zoneID, zoneKodlari[zoneID], ids, tarihler, hucreler, varPerTarih))
		}
	}

	return &rapor, nil
}

func bolgeDegisim(zoneID uint, zoneKod string, stationIDs []uint, tarihler []string,
	hucreler map[hucreKey]bool, varPerTarih []int) BolgeDegisim {

	ilk := varPerTarih[0]
	son := varPerTarih[len(varPerTarih)-1]

	degisim := BolgeDegisim{
		ZoneID:       zoneID,
		ZoneKod:      zoneKod,
		IlkVarSayisi: ilk,
		SonVarSayisi: son,
	}

	switch {
	case ilk > 0:
		d := float64(son-ilk) / float64(ilk) * 100
		degisim.DegisimYuzdesi = &d
	case son == 0:
		sifir := 0.0
		degisim.DegisimYuzdesi = &sifir
	}
	// ilk == 0 && son > 0: taban yok, nil kalır

	if len(stationIDs) > 0 {
		ilkTarih := tarihler[0]
		sonTarih := tarihler[len(tarihler)-1]
		flip := 0
		for _, sid := range stationIDs {
			// Giriş yoksa Yok sayılır
			ilkV := hucreler[hucreKey{sid, ilkTarih}]
			sonV := hucreler[hucreKey{sid, sonTarih}]
			if ilkV != sonV {
				flip++
			}
		}
		f := float64(flip) / float64(len(stationIDs)) * 100
		degisim.FlipYuzdesi = &f
	}

	return degisim
}
