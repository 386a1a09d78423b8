package service

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/crabbyteti/tambak-monitor/internal/domain"
	"github.com/crabbyteti/tambak-monitor/internal/repository"
)

const (
	msgHarvestOK     = "Data panen berhasil ditambahkan!"
	msgHarvestFailed = "Gagal menambahkan data panen"
)

// DashboardService produces the summary cards, pond list and chart window.
// Query failures degrade to zero/empty values; the dashboard never errors
// out as a whole.
type DashboardService struct {
	repos *repository.Repos
}

// GetSummary gathers the five card values for one user. Each value falls
// back to zero independently when its query fails.
func (s *DashboardService) GetSummary(userID int) domain.DashboardSummary {
	var summary domain.DashboardSummary

	total, err := s.repos.CountActivePonds(userID)
	if err != nil {
		log.Error().Err(err).Int("user_id", userID).Msg("summary: active pond count failed")
	} else {
		summary.TotalTambak = total
	}

	for _, m := range []struct {
		column string
		dst    *float64
	}{
		{"suhu", &summary.RataSuhu},
		{"salinitas", &summary.RataSalinitas},
		{"ph", &summary.RataPh},
	} {
		avg, err := s.repos.AvgLatestReading(userID, m.column)
		if err != nil {
			log.Error().Err(err).Int("user_id", userID).Str("metric", m.column).Msg("summary: latest-reading average failed")
			continue
		}
		*m.dst = avg
	}

	harvest, err := s.repos.SumHarvestThisMonth(userID)
	if err != nil {
		log.Error().Err(err).Int("user_id", userID).Msg("summary: monthly harvest sum failed")
	} else {
		summary.TotalPanenBulanIni = harvest
	}

	return summary
}

// GetPondsWithLatest lists the user's ponds with joined latest readings and
// this-year harvest totals, ordered by name.
func (s *DashboardService) GetPondsWithLatest(userID int) []domain.Pond {
	ponds, err := s.repos.ListPondsWithLatest(userID)
	if err != nil {
		log.Error().Err(err).Int("user_id", userID).Msg("pond list failed")
		return []domain.Pond{}
	}
	if ponds == nil {
		ponds = []domain.Pond{}
	}
	return ponds
}

// GetRecentReadings returns the last 5 hours of readings for the user's
// ponds, oldest first. Empty is a valid chart state.
func (s *DashboardService) GetRecentReadings(userID int) []domain.MonitoringReading {
	readings, err := s.repos.RecentReadings(userID)
	if err != nil {
		log.Error().Err(err).Int("user_id", userID).Msg("recent readings failed")
		return []domain.MonitoringReading{}
	}
	if readings == nil {
		readings = []domain.MonitoringReading{}
	}
	return readings
}

// AddHarvest records a harvest event. The total value is derived exactly
// once here: quantity times unit price when a price is given, NULL
// otherwise. The caller layer guarantees quantityKg > 0.
func (s *DashboardService) AddHarvest(tambakID int, tanggalPanen time.Time, jumlahKg float64, hargaPerKg *float64, keterangan *string) domain.HarvestResult {
	var totalNilai *float64
	if hargaPerKg != nil {
		v := jumlahKg * *hargaPerKg
		totalNilai = &v
	}

	if err := s.repos.InsertHarvest(tambakID, tanggalPanen, jumlahKg, hargaPerKg, totalNilai, keterangan); err != nil {
		log.Error().Err(err).Int("tambak_id", tambakID).Msg("harvest insert failed")
		return domain.HarvestResult{Success: false, Message: fmt.Sprintf("Error: %v", err)}
	}

	return domain.HarvestResult{Success: true, Message: msgHarvestOK}
}
