package aggregate

import (
	"github.com/f1viz/f1viz-data-go/pkg/model"
)

// WinningMargins computes the gap between winner and runner-up for every race
// of a season, in seconds. Races where either car lacks a total race time
// (lapped runner-up, red flag results) are skipped entirely rather than
// reported as zero.
func (a *Analyzer) WinningMargins(year int) []model.WinningMargin {
	ret := make([]model.WinningMargin, 0)
	for _, race := range a.store.RacesByYear(year) {
		var winner, runnerUp *model.Result
		for _, res := range a.store.ResultsByRace(race.ID) {
			switch res.PositionOrder {
			case 1:
				winner = res
			case 2:
				runnerUp = res
			}
		}
		if winner == nil || runnerUp == nil {
			continue
		}
		if !winner.Milliseconds.IsValue() || !runnerUp.Milliseconds.IsValue() {
			continue
		}
		margin := float64(runnerUp.Milliseconds.MustGet()-winner.Milliseconds.MustGet()) / 1000.0
		ret = append(ret, model.WinningMargin{
			RaceID:   race.ID,
			Round:    race.Round,
			RaceName: race.Name,
			Margin:   margin,
			Winner:   a.store.Driver(winner.DriverID).Name(),
			RunnerUp: a.store.Driver(runnerUp.DriverID).Name(),
		})
	}
	return ret
}
