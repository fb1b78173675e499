package aggregate

import (
	"fmt"
	"sort"

	"github.com/f1viz/f1viz-data-go/pkg/model"
)

// Metric selects how per-driver points at a circuit are reduced.
type Metric string

const (
	MetricAvg Metric = "avg"
	MetricSum Metric = "sum"
)

// ParseMetric validates a metric name from a flag or query value.
func ParseMetric(arg string) (Metric, error) {
	switch Metric(arg) {
	case MetricAvg:
		return MetricAvg, nil
	case MetricSum:
		return MetricSum, nil
	}
	return "", fmt.Errorf("unknown metric %q (want avg or sum)", arg)
}

// trackPerformanceLimit caps the leaderboard length.
const trackPerformanceLimit = 10

// TrackPerformance ranks drivers at one circuit by average or total points.
// Only drivers with a positive points sum qualify; the list is cut to the top
// ten after sorting by the chosen metric descending, name ascending on ties.
func (a *Analyzer) TrackPerformance(circuitID int, w Window, metric Metric) *model.TrackPerformance {
	ret := &model.TrackPerformance{
		CircuitID:   circuitID,
		CircuitName: a.store.Circuit(circuitID).Name,
		Metric:      string(metric),
		Performance: make([]model.DriverTrackStat, 0),
	}
	stats := make(map[int]*model.DriverTrackStat)
	for _, race := range a.store.RacesInWindow(w.Start, w.End) {
		if race.CircuitID != circuitID {
			continue
		}
		for _, res := range a.store.ResultsByRace(race.ID) {
			st, ok := stats[res.DriverID]
			if !ok {
				st = &model.DriverTrackStat{
					DriverID:   res.DriverID,
					DriverName: a.store.Driver(res.DriverID).Name(),
				}
				stats[res.DriverID] = st
			}
			st.Sum += res.Points
			st.Count++
		}
	}
	for _, st := range stats {
		if st.Sum <= 0 {
			continue
		}
		st.Avg = st.Sum / float64(st.Count)
		ret.Performance = append(ret.Performance, *st)
	}
	key := func(s model.DriverTrackStat) float64 {
		if metric == MetricSum {
			return s.Sum
		}
		return s.Avg
	}
	sort.SliceStable(ret.Performance, func(i, j int) bool {
		ki, kj := key(ret.Performance[i]), key(ret.Performance[j])
		if ki != kj {
			return ki > kj
		}
		return ret.Performance[i].DriverName < ret.Performance[j].DriverName
	})
	if len(ret.Performance) > trackPerformanceLimit {
		ret.Performance = ret.Performance[:trackPerformanceLimit]
	}
	return ret
}
