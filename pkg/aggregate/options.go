package aggregate

import (
	"github.com/f1viz/f1viz-data-go/pkg/model"
)

// Seasons lists every year with at least one race, newest first (the order
// the season selector presents them in).
func (a *Analyzer) Seasons() []int {
	years := a.store.Years()
	ret := make([]int, 0, len(years))
	for i := len(years) - 1; i >= 0; i-- {
		ret = append(ret, years[i])
	}
	return ret
}

// RacesForYear feeds the race selectors, ordered by round.
func (a *Analyzer) RacesForYear(year int) []model.RaceOption {
	ret := make([]model.RaceOption, 0)
	for _, race := range a.store.RacesByYear(year) {
		ret = append(ret, model.RaceOption{
			RaceID: race.ID,
			Round:  race.Round,
			Label:  race.Label(),
		})
	}
	return ret
}
