package aggregate

import (
	"sort"

	"github.com/samber/lo"

	"github.com/f1viz/f1viz-data-go/pkg/model"
)

// DNFHeatmap builds the dense years x constructors retirement grid. A result
// counts as DNF when its status is in the store's DNF set; cells without any
// start still emit rate 0 so the grid stays rectangular. Constructors are
// ordered by average rate descending for display.
func (a *Analyzer) DNFHeatmap(w Window) *model.DNFHeatmap {
	races := a.store.RacesInWindow(w.Start, w.End)
	years := lo.Filter(a.store.Years(), func(y int, _ int) bool { return w.Contains(y) })

	type cell struct {
		total   int
		dnf     int
		reasons map[string]int
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
				c = &cell{reasons: make(map[string]int)}
				cells[key] = c
			}
			c.total++
			if a.store.IsDNF(res.StatusID) {
				c.dnf++
				c.reasons[a.store.Status(res.StatusID).Status]++
			}
		}
	}
	sort.Ints(consIDs)

	ret := &model.DNFHeatmap{
		Years:        years,
		Constructors: make([]model.DNFConstructor, 0, len(consIDs)),
		Cells:        make([]model.DNFCell, 0, len(consIDs)*len(years)),
	}
	for _, id := range consIDs {
		name := a.store.Constructor(id).Name
		rateSum := 0.0
		for _, year := range years {
			out := model.DNFCell{
				ConstructorID:   id,
				ConstructorName: name,
				Year:            year,
			}
			if c, ok := cells[consYear{id, year}]; ok && c.total > 0 {
				out.DNF = c.dnf
				out.Total = c.total
				out.Rate = float64(c.dnf) / float64(c.total)
				if len(c.reasons) > 0 {
					out.Reasons = c.reasons
					out.ReasonShare = make(map[string]float64, len(c.reasons))
					for reason, count := range c.reasons {
						out.ReasonShare[reason] = float64(count) / float64(c.dnf)
					}
				}
			}
			rateSum += out.Rate
			ret.Cells = append(ret.Cells, out)
		}
		ret.Constructors = append(ret.Constructors, model.DNFConstructor{
			ConstructorID: id,
			Name:          name,
			AvgRate:       rateSum / float64(len(years)),
		})
	}
	sort.SliceStable(ret.Constructors, func(i, j int) bool {
		return ret.Constructors[i].AvgRate > ret.Constructors[j].AvgRate
	})
	return ret
}
