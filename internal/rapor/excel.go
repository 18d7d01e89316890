package rapor

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// IstasyonRaporuExcel raporu xlsx olarak üretir. Düzen: iki başlık satırı
// (tesis bilgisi + kolon başlıkları), Bölge / İstasyon Kodu / Açıklama ve
// tarih başına bir kolon; hücrelerde Var/Yok, giriş yoksa boş.
func IstasyonRaporuExcel(rapor *IstasyonRaporu) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Istasyon Raporu"

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	baslik := fmt.Sprintf("%s - %s İstasyon Takip Raporu", rapor.FacilityKod, rapor.FacilityAd)
	if err := f.SetCellValue(sheet, "A1", baslik); err != nil {
		return nil, err
	}

	// 2. satır: kolon başlıkları
	headers := []string{"Bölge", "İstasyon Kodu", "Açıklama"}
	headers = append(headers, rapor.Tarihler...)
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for r, satir := range rapor.Satirlar {
		row := r + 3
		values := []any{satir.ZoneKod, satir.StationKod, satir.Ad}
		for _, h := range satir.Hucreler {
			switch {
			case h == nil:
				values = append(values, "")
			case *h:
				values = append(values, "Var")
			default:
				values = append(values, "Yok")
			}
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	// Altta tesis geneli oran satırı
	oranRow := len(rapor.Satirlar) + 4
	if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", oranRow), "Tüketim Oranı (%)"); err != nil {
		return nil, err
	}
	for j, o := range rapor.TesisOranlari {
		cell, err := excelize.CoordinatesToCellName(j+4, oranRow)
		if err != nil {
			return nil, err
		}
		if o.Oran != nil {
			if err := f.SetCellValue(sheet, cell, fmt.Sprintf("%.1f", *o.Oran)); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
