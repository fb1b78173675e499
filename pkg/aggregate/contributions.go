package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/f1viz/f1viz-data-go/pkg/model"
)

// DriverContributions splits a constructor's season points across its drivers.
// Percentages are computed with fixed-point arithmetic and closed to exactly
// 100: the largest share absorbs the rounding remainder. A zero-point season
// yields zero percentages for every driver.
func (a *Analyzer) DriverContributions(year, constructorID int) *model.ConstructorShare {
	ret := &model.ConstructorShare{
		Year:          year,
		ConstructorID: constructorID,
		Drivers:       make([]model.DriverShare, 0),
	}
	points := make(map[int]float64)
	for _, race := range a.store.RacesByYear(year) {
		for _, res := range a.store.ResultsByRace(race.ID) {
			if res.ConstructorID != constructorID {
				continue
			}
			points[res.DriverID] += res.Points
			ret.Total += res.Points
		}
	}
	for driverID, pts := range points {
		ret.Drivers = append(ret.Drivers, model.DriverShare{
			DriverID: driverID,
			Name:     a.store.Driver(driverID).Name(),
			Points:   pts,
		})
	}
	sort.SliceStable(ret.Drivers, func(i, j int) bool {
		if ret.Drivers[i].Points != ret.Drivers[j].Points {
			return ret.Drivers[i].Points > ret.Drivers[j].Points
		}
		return ret.Drivers[i].Name < ret.Drivers[j].Name
	})
	if ret.Total <= 0 || len(ret.Drivers) == 0 {
		return ret
	}

	total := decimal.NewFromFloat(ret.Total)
	hundred := decimal.NewFromInt(100)
	assigned := decimal.Zero
	for i := range ret.Drivers {
		share := decimal.NewFromFloat(ret.Drivers[i].Points).
			Div(total).Mul(hundred).Round(2)
		ret.Drivers[i].Percentage = share.InexactFloat64()
		assigned = assigned.Add(share)
	}
	// close the sum to exactly 100 on the largest share
	remainder := hundred.Sub(assigned)
	if !remainder.IsZero() {
		top := decimal.NewFromFloat(ret.Drivers[0].Percentage).Add(remainder)
		ret.Drivers[0].Percentage = top.InexactFloat64()
	}
	return ret
}

// ActiveConstructors lists the constructors that scored a result in the given
// year, sorted by name.
func (a *Analyzer) ActiveConstructors(year int) []model.ConstructorOption {
	seen := make(map[int]bool)
	ret := make([]model.ConstructorOption, 0)
	for _, race := range a.store.RacesByYear(year) {
		for _, res := range a.store.ResultsByRace(race.ID) {
			if seen[res.ConstructorID] {
				continue
			}
			seen[res.ConstructorID] = true
			ret = append(ret, model.ConstructorOption{
				ConstructorID: res.ConstructorID,
				Name:          a.store.Constructor(res.ConstructorID).Name,
			})
		}
	}
	sort.SliceStable(ret, func(i, j int) bool {
		return ret[i].Name < ret[j].Name
	})
	return ret
}
