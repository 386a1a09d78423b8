package repository

import (
	"fmt"

	"github.com/crabbyteti/tambak-monitor/internal/domain"
)

func (r *Repos) CountActivePonds(userID int) (int, error) {
	var n int
	err := r.db.Get(&n, `
		SELECT COUNT(*) FROM tambak
		WHERE user_id = $1 AND status = 'Aktif'`,
		userID)
	return n, err
}

// metric columns allowed in AvgLatestReading; anything else is a programming
// error, not user input.
var latestMetricColumns = map[string]bool{
	"suhu":      true,
	"salinitas": true,
	"ph":        true,
}

// AvgLatestReading averages the single most recent value of one metric per
// pond across all of the user's ponds. It is not a flat average over history.
func (r *Repos) AvgLatestReading(userID int, metric string) (float64, error) {
	if !latestMetricColumns[metric] {
		return 0, fmt.Errorf("unknown metric column %q", metric)
	}
	var avg float64
	query := fmt.Sprintf(`
		SELECT COALESCE(AVG(%[1]s), 0)
		FROM (
			SELECT DISTINCT ON (tambak_id) %[1]s
			FROM monitoring_data md
			INNER JOIN tambak t ON md.tambak_id = t.id
			WHERE t.user_id = $1
			ORDER BY tambak_id, recorded_at DESC
		) latest_data`, metric)
	err := r.db.Get(&avg, query, userID)
	return avg, err
}

// ListPondsWithLatest returns the user's ponds ordered by name, each carrying
// its most recent reading and this-year harvest totals. Ponds without
// readings or harvests still appear, with nil/zero joined fields.
func (r *Repos) ListPondsWithLatest(userID int) ([]domain.Pond, error) {
	var out []domain.Pond
	err := r.db.Select(&out, `
		SELECT
			t.id,
			t.nama,
			t.lokasi,
			t.luas_m2,
			t.kapasitas,
			t.status,
			t.user_id,
			m.suhu AS suhu_terkini,
			m.salinitas AS salinitas_terkini,
			m.ph AS ph_terkini,
			m.recorded_at AS last_update,
			t.created_at,
			t.updated_at,
			COALESCE(p.total_panen_tahun_ini, 0) AS total_panen_tahun_ini,
			COALESCE(p.pendapatan_tahun_ini, 0) AS pendapatan_tahun_ini
		FROM tambak t
		LEFT JOIN LATERAL (
			SELECT suhu, salinitas, ph, recorded_at
			FROM monitoring_data
			WHERE tambak_id = t.id
			ORDER BY recorded_at DESC
			LIMIT 1
		) m ON true
		LEFT JOIN LATERAL (
			SELECT
				SUM(jumlah_kg) AS total_panen_tahun_ini,
				SUM(total_nilai) AS pendapatan_tahun_ini
			FROM panen
			WHERE tambak_id = t.id
			  AND EXTRACT(YEAR FROM tanggal_panen) = EXTRACT(YEAR FROM CURRENT_DATE)
		) p ON true
		WHERE t.user_id = $1
		ORDER BY t.nama`,
		userID)
	return out, err
}
