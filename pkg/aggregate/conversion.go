package aggregate

import (
	"sort"

	"github.com/samber/lo"

	"github.com/f1viz/f1viz-data-go/pkg/model"
)

// qualifyingConversionDivisor is the fixed denominator of the conversion
// rate. Races with fewer than 10 classified qualifiers still divide by 10;
// this reproduces the source behavior on purpose (see DESIGN.md).
const qualifyingConversionDivisor = 10

// QualifyingConversion computes, per circuit, how many of the top-10
// qualifiers of each race also finished in the top 10.
func (a *Analyzer) QualifyingConversion(w Window) []model.CircuitConversion {
	races := a.store.RacesInWindow(w.Start, w.End)

	type raceRate struct {
		circuitID int
		year      int
		rate      float64
	}
	rates := make([]raceRate, 0, len(races))
	for _, race := range races {
		top10 := make(map[int]bool)
		for _, q := range a.store.QualifyingByRace(race.ID) {
			if q.Position <= 10 {
				top10[q.DriverID] = true
			}
		}
		converted := 0
		for _, res := range a.store.ResultsByRace(race.ID) {
			if top10[res.DriverID] && res.PositionOrder <= 10 {
				converted++
			}
		}
		rates = append(rates, raceRate{
			circuitID: race.CircuitID,
			year:      race.Year,
			rate:      float64(converted) / qualifyingConversionDivisor * 100,
		})
	}

	grouped := lo.GroupBy(rates, func(r raceRate) int { return r.circuitID })
	ret := make([]model.CircuitConversion, 0, len(grouped))
	for circuitID, circuitRates := range grouped {
		entry := model.CircuitConversion{
			CircuitID:   circuitID,
			CircuitName: a.store.Circuit(circuitID).Name,
			YearsData:   make([]model.ConversionYear, 0, len(circuitRates)),
		}
		for _, r := range circuitRates {
			entry.YearsData = append(entry.YearsData, model.ConversionYear{
				Year: r.year,
				Rate: r.rate,
			})
		}
		sort.SliceStable(entry.YearsData, func(i, j int) bool {
			return entry.YearsData[i].Year < entry.YearsData[j].Year
		})
		entry.AverageRate = lo.SumBy(circuitRates, func(r raceRate) float64 { return r.rate }) /
			float64(len(circuitRates))
		ret = append(ret, entry)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].CircuitName < ret[j].CircuitName })
	return ret
}
