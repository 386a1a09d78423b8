package repository

import (
	"github.com/crabbyteti/tambak-monitor/internal/domain"
)

// RecentReadings returns all readings for the user's ponds recorded within
// the last 5 hours, oldest first. An empty slice is a valid result.
func (r *Repos) RecentReadings(userID int) ([]domain.MonitoringReading, error) {
	var out []domain.MonitoringReading
	err := r.db.Select(&out, `
		SELECT
			md.id,
			md.tambak_id,
			md.suhu,
			md.salinitas,
			md.ph,
			md.oksigen,
			md.recorded_at
		FROM monitoring_data md
		INNER JOIN tambak t ON md.tambak_id = t.id
		WHERE t.user_id = $1
		  AND md.recorded_at >= NOW() - INTERVAL '5 hours'
		ORDER BY md.recorded_at ASC`,
		userID)
	return out, err
}

func (r *Repos) InsertReading(rd *domain.MonitoringReading) error {
	_, err := r.db.Exec(`
		INSERT INTO monitoring_data (tambak_id, suhu, salinitas, ph, oksigen, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		rd.TambakID, rd.Suhu, rd.Salinitas, rd.Ph, rd.Oksigen, rd.RecordedAt)
	return err
}
