package service

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportLaporan renders the periode report as an Excel workbook and returns
// the file content plus a suggested filename
func (s *pembayaranService) ExportLaporan(bulan, tahun *int) ([]byte, string, error) {
	b, t, err := resolvePeriode(bulan, tahun)
	if err != nil {
		return nil, "", err
	}

	pembayarans, err := s.pembayaranRepo.FindForLaporan(b, t)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load pembayaran for export")
		return nil, "", err
	}

	laporan, err := s.pembayaranRepo.Laporan(b, t)
	if err != nil {
		s.logger.WithError(err).Error("Failed to aggregate laporan for export")
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Laporan"
	f.SetSheetName("Sheet1", sheet)

	title := fmt.Sprintf("Laporan Pembayaran %s %d", fmtMonth(b), t)
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return nil, "", err
	}
	if err := f.MergeCell(sheet, "A1", "G1"); err != nil {
		return nil, "", err
	}

	headers := []string{"No", "Nomor Kamar", "Penyewa", "Tanggal Bayar", "Jumlah", "Status", "Bukti Bayar"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 3)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, "", err
		}
	}

	row := 4
	for i, p := range pembayarans {
		nomorKamar := fallbackDash
		if p.Kamar != nil {
			nomorKamar = p.Kamar.NomorKamar
		}
		namaPenyewa := fallbackDash
		if p.User != nil {
			namaPenyewa = p.User.Nama
		}
		buktiBayar := fallbackDash
		if p.BuktiBayar != nil {
			buktiBayar = *p.BuktiBayar
		}

		values := []interface{}{
			i + 1,
			nomorKamar,
			namaPenyewa,
			p.TanggalBayar.Format(tanggalLayout),
			p.Jumlah,
			statusLabel(p.Status),
			buktiBayar,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, "", err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, "", err
			}
		}
		row++
	}

	// Summary block below the table
	row++
	summary := [][]interface{}{
		{"Total Pembayaran", laporan.TotalPembayaran},
		{"Lunas", laporan.Lunas},
		{"Belum Lunas", laporan.BelumLunas},
	}
	for _, line := range summary {
		labelCell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, "", err
		}
		valueCell, err := excelize.CoordinatesToCellName(2, row)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetCellValue(sheet, labelCell, line[0]); err != nil {
			return nil, "", err
		}
		if err := f.SetCellValue(sheet, valueCell, line[1]); err != nil {
			return nil, "", err
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.WithError(err).Error("Failed to write export workbook")
		return nil, "", err
	}

	filename := fmt.Sprintf("laporan-pembayaran-%02d-%d.xlsx", b, t)

	s.logger.WithFields(map[string]interface{}{
		"bulan": b,
		"tahun": t,
		"rows":  len(pembayarans),
	}).Info("Laporan exported")

	return buf.Bytes(), filename, nil
}
