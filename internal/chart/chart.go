// Package chart turns raw monitoring readings into the hourly line series
// shown on the dashboard.
package chart

import (
	"sort"
	"time"

	"github.com/crabbyteti/tambak-monitor/internal/domain"
)

// NoDataLabel is the sentinel axis label used when no readings exist in the
// window. An empty window is a defined state, not an error.
const NoDataLabel = "No data available"

// Data holds one hour label per bucket and three series aligned positionally
// with the labels: Temperature[i], Salinity[i] and Ph[i] all belong to
// Labels[i].
type Data struct {
	Labels      []string  `json:"labels"`
	Temperature []float64 `json:"suhu"`
	Salinity    []float64 `json:"salinitas"`
	Ph          []float64 `json:"ph"`
}

// Empty reports whether the data is the no-data placeholder.
func (d Data) Empty() bool {
	return len(d.Temperature) == 0
}

// truncateToHour zeroes minutes and seconds on the wall clock. Not
// time.Truncate, which rounds on absolute duration and drifts in zones with
// non-whole-hour offsets.
func truncateToHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}

type bucket struct {
	hour      time.Time
	suhu      float64
	salinitas float64
	ph        float64
	count     int
}

// Build groups readings into hour buckets and averages each metric per
// bucket. Readings from different ponds falling in the same hour share a
// bucket. Input order does not matter; output buckets are sorted ascending.
func Build(readings []domain.MonitoringReading) Data {
	if len(readings) == 0 {
		return Data{Labels: []string{NoDataLabel}}
	}

	buckets := make(map[time.Time]*bucket)
	for _, rd := range readings {
		hour := truncateToHour(rd.RecordedAt)
		b, ok := buckets[hour]
		if !ok {
			b = &bucket{hour: hour}
			buckets[hour] = b
		}
		b.suhu += rd.Suhu
		b.salinitas += rd.Salinitas
		b.ph += rd.Ph
		b.count++
	}

	// Guarded above, re-checked here so a future filter step cannot produce
	// unlabeled series.
	if len(buckets) == 0 {
		return Data{Labels: []string{NoDataLabel}}
	}

	ordered := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		ordered = append(ordered, b)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].hour.Before(ordered[j].hour) })

	out := Data{
		Labels:      make([]string, 0, len(ordered)),
		Temperature: make([]float64, 0, len(ordered)),
		Salinity:    make([]float64, 0, len(ordered)),
		Ph:          make([]float64, 0, len(ordered)),
	}
	for _, b := range ordered {
		n := float64(b.count)
		out.Labels = append(out.Labels, b.hour.Format("15:04"))
		out.Temperature = append(out.Temperature, b.suhu/n)
		out.Salinity = append(out.Salinity, b.salinitas/n)
		out.Ph = append(out.Ph, b.ph/n)
	}
	return out
}
