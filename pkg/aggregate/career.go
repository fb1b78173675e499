package aggregate

import (
	"fmt"
	"sort"

	"github.com/f1viz/f1viz-data-go/pkg/model"
)

// CareerPolicy selects how seasons without participation are represented.
// The two source views disagreed on this; the policy is an explicit parameter
// so the behaviors never get mixed silently.
type CareerPolicy int

const (
	// CareerDense emits one entry per year of the window, zero-filled for
	// seasons the driver did not compete in.
	CareerDense CareerPolicy = iota
	// CareerActiveOnly drops seasons without a resolved constructor, i.e.
	// seasons the driver has no result rows for.
	CareerActiveOnly
)

// ParseCareerPolicy maps a flag value to a policy.
func ParseCareerPolicy(arg string) (CareerPolicy, error) {
	switch arg {
	case "dense":
		return CareerDense, nil
	case "active":
		return CareerActiveOnly, nil
	}
	return CareerDense, fmt.Errorf("unknown career policy %q (want dense or active)", arg)
}

// CareerProgression builds the per-driver season time series. Final season
// points come from the last standings row by round; the primary constructor
// of a season is taken from the result with the minimum round ("first team
// raced for wins attribution" - drivers can switch mid-season).
func (a *Analyzer) CareerProgression(
	driverID int,
	w Window,
	policy CareerPolicy,
) *model.CareerProgression {
	driver := a.store.Driver(driverID)
	ret := &model.CareerProgression{
		DriverID:   driverID,
		DriverName: driver.Name(),
		Seasons:    make([]model.CareerSeason, 0, w.End-w.Start+1),
	}
	for year := w.Start; year <= w.End; year++ {
		entry := model.CareerSeason{Year: year}
		if standings := a.store.StandingsByDriverYear(driverID, year); len(standings) > 0 {
			entry.Points = standings[len(standings)-1].Points
		}
		results := a.store.ResultsByDriverYear(driverID, year)
		if len(results) > 0 {
			cons := a.store.Constructor(results[0].ConstructorID)
			entry.ConstructorID = results[0].ConstructorID
			entry.ConstructorRef = cons.Ref
			entry.ConstructorName = cons.Name
		} else if policy == CareerActiveOnly {
			continue
		}
		ret.Seasons = append(ret.Seasons, entry)
	}
	return ret
}

// CareerDrivers lists the drivers selectable for the career view: everyone
// with at least one standings row in the window, annotated with the first
// season they raced. minStart > 0 restricts the list to careers starting in
// or after that year (the source view used 2000).
func (a *Analyzer) CareerDrivers(w Window, minStart int) []model.DriverOption {
	ret := make([]model.DriverOption, 0)
	for _, d := range a.store.Drivers() {
		start := 0
		for year := w.Start; year <= w.End; year++ {
			if len(a.store.ResultsByDriverYear(d.ID, year)) > 0 {
				start = year
				break
			}
		}
		if start == 0 || (minStart > 0 && start < minStart) {
			continue
		}
		ret = append(ret, model.DriverOption{
			DriverID: d.ID,
			Name:     d.Name(),
			Start:    start,
		})
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].Name < ret[j].Name })
	return ret
}
