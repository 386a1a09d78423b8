package service

import (
	"encoding/json"
	"time"

	"github.com/crabbyteti/tambak-monitor/internal/domain"
	"github.com/crabbyteti/tambak-monitor/internal/repository"
)

// ReadingService stores sensor readings arriving over MQTT.
type ReadingService struct {
	repos *repository.Repos
}

// FromMQTT decodes one sensor payload and inserts it. A missing recorded_at
// defaults to the ingest time.
func (s *ReadingService) FromMQTT(topic string, payload []byte) error {
	var r struct {
		TambakID   int       `json:"tambak_id"`
		Suhu       float64   `json:"suhu"`
		Salinitas  float64   `json:"salinitas"`
		Ph         float64   `json:"ph"`
		Oksigen    *float64  `json:"oksigen"`
		RecordedAt time.Time `json:"recorded_at"`
	}
	if err := json.Unmarshal(payload, &r); err != nil {
		return err
	}
	if r.RecordedAt.IsZero() {
		r.RecordedAt = time.Now()
	}
	rd := &domain.MonitoringReading{
		TambakID:   r.TambakID,
		Suhu:       r.Suhu,
		Salinitas:  r.Salinitas,
		Ph:         r.Ph,
		Oksigen:    r.Oksigen,
		RecordedAt: r.RecordedAt,
	}
	return s.repos.InsertReading(rd)
}
