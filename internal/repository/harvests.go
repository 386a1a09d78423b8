package repository

import (
	"time"
)

func (r *Repos) SumHarvestThisMonth(userID int) (float64, error) {
	var total float64
	err := r.db.Get(&total, `
		SELECT COALESCE(SUM(jumlah_kg), 0)
		FROM panen p
		INNER JOIN tambak t ON p.tambak_id = t.id
		WHERE t.user_id = $1
		  AND EXTRACT(MONTH FROM tanggal_panen) = EXTRACT(MONTH FROM CURRENT_DATE)
		  AND EXTRACT(YEAR FROM tanggal_panen) = EXTRACT(YEAR FROM CURRENT_DATE)`,
		userID)
	return total, err
}

func (r *Repos) InsertHarvest(tambakID int, tanggalPanen time.Time, jumlahKg float64, hargaPerKg, totalNilai *float64, keterangan *string) error {
	_, err := r.db.Exec(`
		INSERT INTO panen (tambak_id, tanggal_panen, jumlah_kg, harga_per_kg, total_nilai, keterangan)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		tambakID, tanggalPanen, jumlahKg, hargaPerKg, totalNilai, keterangan)
	return err
}

// HarvestReportRow is one line of the yearly harvest report, joined with the
// pond name.
type HarvestReportRow struct {
	TambakNama   string    `db:"tambak_nama"`
	TanggalPanen time.Time `db:"tanggal_panen"`
	JumlahKg     float64   `db:"jumlah_kg"`
	HargaPerKg   *float64  `db:"harga_per_kg"`
	TotalNilai   *float64  `db:"total_nilai"`
	Keterangan   *string   `db:"keterangan"`
}

func (r *Repos) ListHarvestsForYear(userID, year int) ([]HarvestReportRow, error) {
	var out []HarvestReportRow
	err := r.db.Select(&out, `
		SELECT
			t.nama AS tambak_nama,
			p.tanggal_panen,
			p.jumlah_kg,
			p.harga_per_kg,
			p.total_nilai,
			p.keterangan
		FROM panen p
		INNER JOIN tambak t ON p.tambak_id = t.id
		WHERE t.user_id = $1
		  AND EXTRACT(YEAR FROM p.tanggal_panen) = $2
		ORDER BY p.tanggal_panen, t.nama`,
		userID, year)
	return out, err
}
