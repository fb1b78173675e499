package aggregate

import (
	"sort"

	"github.com/samber/lo"

	"github.com/f1viz/f1viz-data-go/pkg/model"
)

// ConstructorDominance aggregates points and wins per constructor per year
// and derives the stacked layers for the area chart. Layers are keyed in
// ascending constructor id order; within a year each layer's span is offset
// by the cumulative points of all prior constructors.
func (a *Analyzer) ConstructorDominance(w Window) *model.ConstructorDominance {
	races := a.store.RacesInWindow(w.Start, w.End)
	ret := &model.ConstructorDominance{
		Constructors: make([]model.ConstructorSeries, 0),
		Stacked:      make([]model.StackedLayer, 0),
	}
	if len(races) == 0 {
		return ret
	}

	type cell struct {
		points float64
		wins   int
	}
	type consYear struct{ consID, year int }
	cells := make(map[consYear]*cell)
	consIDs := make([]int, 0)
	seen := make(map[int]bool)
	for _, race := range races {
		for _, res := range a.store.ResultsByRace(race.ID) {
			if !seen[res.ConstructorID] {
				seen[res.ConstructorID] = true
				consIDs = append(consIDs, res.ConstructorID)
			}
			key := consYear{res.ConstructorID, race.Year}
			c, ok := cells[key]
			if !ok {
				c = &cell{}
				cells[key] = c
			}
			c.points += res.Points
			if res.PositionOrder == 1 {
				c.wins++
			}
		}
	}
	sort.Ints(consIDs)

	years := lo.Filter(a.store.Years(), func(y int, _ int) bool { return w.Contains(y) })

	for _, id := range consIDs {
		series := model.ConstructorSeries{
			ConstructorID: id,
			Name:          a.store.Constructor(id).Name,
			YearsData:     make([]model.ConstructorYear, 0, len(years)),
		}
		for _, year := range years {
			entry := model.ConstructorYear{Year: year}
			if c, ok := cells[consYear{id, year}]; ok {
				entry.Points = c.points
				entry.Wins = c.wins
			}
			series.YearsData = append(series.YearsData, entry)
		}
		ret.Constructors = append(ret.Constructors, series)
	}

	// cumulative stacking transform
	offsets := make([]float64, len(years))
	for _, series := range ret.Constructors {
		layer := model.StackedLayer{
			Key:    series.ConstructorID,
			Points: make([]model.StackPoint, 0, len(years)),
		}
		for i, yd := range series.YearsData {
			layer.Points = append(layer.Points, model.StackPoint{
				Year: float64(yd.Year),
				Y0:   offsets[i],
				Y1:   offsets[i] + yd.Points,
			})
			offsets[i] += yd.Points
		}
		ret.Stacked = append(ret.Stacked, layer)
	}
	return ret
}
