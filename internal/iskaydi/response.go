package iskaydi

import (
	"ilaclama-backend/internal/database"
	"ilaclama-backend/internal/models"
)

type UygulamaSatirResponse struct {
	UygulamaTanimID uint   `json:"uygulama_tanim_id"`
	Ad              string `json:"ad"`
}

type FaaliyetSatirResponse struct {
	FaaliyetTanimID  uint   `json:"faaliyet_tanim_id"`
	Ad               string `json:"ad"`
	Kontrol          bool   `json:"kontrol"`
	Kuruldu          bool   `json:"kuruldu"`
	Eklendi          bool   `json:"eklendi"`
	Sabitlendi       bool   `json:"sabitlendi"`
	YeriDegistirildi bool   `json:"yeri_degistirildi"`
	Yenilendi        bool   `json:"yenilendi"`
}

type IlacSatirResponse struct {
	IlacTanimID uint    `json:"ilac_tanim_id"`
	TicariIsmi  string  `json:"ticari_ismi"`
	Miktar      float64 `json:"miktar"`
}

type TespitSatirResponse struct {
	TespitTanimID uint   `json:"tespit_tanim_id"`
	Ad            string `json:"ad"`
	Yogunluk      string `json:"yogunluk"`
	TespitEden    string `json:"tespit_eden"`
}

type WorkRecordResponse struct {
	ID           uint    `json:"id"`
	Tarih        string  `json:"tarih"`
	PersonelID   uint    `json:"personel_id"`
	Personel     string  `json:"personel"`
	EkipID       *uint   `json:"ekip_id"`
	FacilityID   *uint   `json:"facility_id"`
	BaslamaSaati *string `json:"baslama_saati"`
	BitisSaati   *string `json:"bitis_saati"`

	GozlemZiyaretiYapilmali bool `json:"gozlem_ziyareti_yapilmali"`
	SozlesmeDisiIslemVar    bool `json:"sozlesme_disi_islem_var"`

	SKB           bool `json:"skb"`
	Atomizor      bool `json:"atomizor"`
	Pulverizator  bool `json:"pulverizator"`
	TermalSis     bool `json:"termal_sis"`
	ArUzULV       bool `json:"ar_uz_ulv"`
	ElkULV        bool `json:"elk_ulv"`
	CiviTabancasi bool `json:"civi_tabancasi"`

	Oneriler string `json:"oneriler"`
	NotAlani string `json:"not_alani"`

	KapatilanTalepID *uint  `json:"kapatilan_talep_id"`
	FormNumarasi     string `json:"form_numarasi"`

	Uygulamalar []UygulamaSatirResponse `json:"uygulamalar,omitempty"`
	Faaliyetler []FaaliyetSatirResponse `json:"faaliyetler,omitempty"`
	Ilaclar     []IlacSatirResponse     `json:"ilaclar,omitempty"`
	Tespitler   []TespitSatirResponse   `json:"tespitler,omitempty"`
}

func recordToResponse(m *models.WorkRecord) WorkRecordResponse {
	res := WorkRecordResponse{
		ID:                      m.ID,
		Tarih:                   m.Tarih.Format("2006-01-02"),
		PersonelID:              m.PersonelID,
		Personel:                m.Personel.Name,
		EkipID:                  m.EkipID,
		FacilityID:              m.FacilityID,
		GozlemZiyaretiYapilmali: m.GozlemZiyaretiYapilmali,
		SozlesmeDisiIslemVar:    m.SozlesmeDisiIslemVar,
		SKB:                     m.SKB,
		Atomizor:                m.Atomizor,
		Pulverizator:            m.Pulverizator,
		TermalSis:               m.TermalSis,
		ArUzULV:                 m.ArUzULV,
		ElkULV:                  m.ElkULV,
		CiviTabancasi:           m.CiviTabancasi,
		Oneriler:                m.Oneriler,
		NotAlani:                m.NotAlani,
		KapatilanTalepID:        m.KapatilanTalepID,
		FormNumarasi:            m.FormNumarasi,
	}
	if m.BaslamaSaati != nil {
		s := m.BaslamaSaati.Format("15:04")
		res.BaslamaSaati = &s
	}
	if m.BitisSaati != nil {
		s := m.BitisSaati.Format("15:04")
		res.BitisSaati = &s
	}
	return res
}

func loadUygulamalar(recordID uint) []UygulamaSatirResponse {
	var satirlar []models.WorkRecordUygulama
	database.DB.Preload("UygulamaTanim").Where("work_record_id = ?", recordID).Find(&satirlar)

	res := make([]UygulamaSatirResponse, 0, len(satirlar))
	for _, s := range satirlar {
		res = append(res, UygulamaSatirResponse{UygulamaTanimID: s.UygulamaTanimID, Ad: s.UygulamaTanim.Ad})
	}
	return res
}

func loadFaaliyetler(recordID uint) []FaaliyetSatirResponse {
	var satirlar []models.WorkRecordFaaliyet
	database.DB.Preload("FaaliyetTanim").Where("work_record_id = ?", recordID).Find(&satirlar)

	res := make([]FaaliyetSatirResponse, 0, len(satirlar))
	for _, s := range satirlar {
		res = append(res, FaaliyetSatirResponse{
			FaaliyetTanimID:  s.FaaliyetTanimID,
			Ad:               s.FaaliyetTanim.Ad,
			Kontrol:          s.Kontrol,
			Kuruldu:          s.Kuruldu,
			Eklendi:          s.Eklendi,
			Sabitlendi:       s.Sabitlendi,
			YeriDegistirildi: s.YeriDegistirildi,
			Yenilendi:        s.Yenilendi,
		})
	}
	return res
}

func loadIlaclar(recordID uint) []IlacSatirResponse {
	var satirlar []models.WorkRecordIlac
	database.DB.Preload("IlacTanim").Where("work_record_id = ?", recordID).Find(&satirlar)

	res := make([]IlacSatirResponse, 0, len(satirlar))
	for _, s := range satirlar {
		res = append(res, IlacSatirResponse{IlacTanimID: s.IlacTanimID, TicariIsmi: s.IlacTanim.TicariIsmi, Miktar: s.Miktar})
	}
	return res
}

func loadTespitler(recordID uint) []TespitSatirResponse {
	var satirlar []models.WorkRecordTespit
	database.DB.Preload("TespitTanim").Where("work_record_id = ?", recordID).Find(&satirlar)

	res := make([]TespitSatirResponse, 0, len(satirlar))
	for _, s := range satirlar {
		res = append(res, TespitSatirResponse{
			TespitTanimID: s.TespitTanimID,
			Ad:            s.TespitTanim.Ad,
			Yogunluk:      string(s.Yogunluk),
			TespitEden:    string(s.TespitEden),
		})
	}
	return res
}
