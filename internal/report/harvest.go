// Package report renders harvest records into downloadable spreadsheets.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/crabbyteti/tambak-monitor/internal/repository"
)

var harvestHeader = []string{
	"Tambak",
	"Tanggal Panen",
	"Jumlah (kg)",
	"Harga per Kg",
	"Total Nilai",
	"Keterangan",
}

// BuildHarvestReport renders the year's harvest rows into an .xlsx file and
// returns its bytes. An empty row set still yields a sheet with the header.
func BuildHarvestReport(year int, rows []repository.HarvestReportRow) ([]byte, error) {
	f := excelize.NewFile()

	sheet := fmt.Sprintf("Panen %d", year)
	index, err := f.NewSheet(sheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	for col, h := range harvestHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			f.Close()
			return nil, err
		}
	}

	for i, row := range rows {
		values := []any{
			row.TambakNama,
			row.TanggalPanen.Format("2006-01-02"),
			row.JumlahKg,
			deref(row.HargaPerKg),
			deref(row.TotalNilai),
			derefStr(row.Keterangan),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				f.Close()
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				f.Close()
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func deref(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}

func derefStr(v *string) any {
	if v == nil {
		return ""
	}
	return *v
}
