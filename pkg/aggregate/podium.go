package aggregate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/f1viz/f1viz-data-go/pkg/model"
)

// podiumWeights mirror the championship scoring of the top three places and
// rank drivers for the top-N reduction.
var podiumWeights = map[int]float64{1: 25, 2: 18, 3: 15}

type podium struct {
	driverID  int
	position  int // 1..3
	race      *model.Race
	country   string
	raceType  string
	raceLabel string
}

func (a *Analyzer) podiums(w Window) []podium {
	races := a.store.RacesInWindow(w.Start, w.End)
	ret := make([]podium, 0)
	for _, race := range races {
		for _, res := range a.store.ResultsByRace(race.ID) {
			if res.PositionOrder < 1 || res.PositionOrder > 3 {
				continue
			}
			circuit := a.store.Circuit(race.CircuitID)
			raceType := "Other"
			if strings.Contains(race.Name, "Grand Prix") {
				raceType = "Grand Prix"
			}
			ret = append(ret, podium{
				driverID:  res.DriverID,
				position:  res.PositionOrder,
				race:      race,
				country:   circuit.Country,
				raceType:  raceType,
				raceLabel: race.Label(),
			})
		}
	}
	return ret
}

// topDriversByWeight ranks driver ids by weighted podium points, descending,
// ties broken by driver name for determinism.
func (a *Analyzer) topDriversByWeight(pods []podium, topN int) []int {
	points := make(map[int]float64)
	for _, p := range pods {
		points[p.driverID] += podiumWeights[p.position]
	}
	ids := make([]int, 0, len(points))
	for id := range points {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if points[ids[i]] != points[ids[j]] {
			return points[ids[i]] > points[ids[j]]
		}
		return a.store.Driver(ids[i]).Name() < a.store.Driver(ids[j]).Name()
	})
	if topN > 0 && len(ids) > topN {
		ids = ids[:topN]
	}
	return ids
}

// PodiumSunburst builds the 3-level podium hierarchy driver -> P1/P2/P3 ->
// race, restricted to one season, the given positions and the topN drivers
// by weighted points. Each race leaf carries value 1; the sum of children
// equals the parent total on every level.
func (a *Analyzer) PodiumSunburst(year int, positions []int, topN int) *model.TreeNode {
	w := Window{Start: year, End: year}
	pods := a.podiums(w)
	pods = filterPositions(pods, positions)

	root := &model.TreeNode{Name: "Podiums"}
	for _, driverID := range a.topDriversByWeight(pods, topN) {
		driverNode := &model.TreeNode{Name: a.store.Driver(driverID).Name()}
		for _, pos := range []int{1, 2, 3} {
			posNode := &model.TreeNode{Name: fmt.Sprintf("P%d", pos)}
			for _, p := range pods {
				if p.driverID != driverID || p.position != pos {
					continue
				}
				posNode.Children = append(posNode.Children,
					&model.TreeNode{Name: p.raceLabel, Value: 1})
			}
			if len(posNode.Children) > 0 {
				sortLeaves(posNode)
				driverNode.Children = append(driverNode.Children, posNode)
			}
		}
		if len(driverNode.Children) > 0 {
			root.Children = append(root.Children, driverNode)
		}
	}
	return root
}

// PodiumSunburstByCountry is the deep variant: driver -> position -> country
// -> race type -> race, keeping the topN drivers by total podium count over
// the whole window.
func (a *Analyzer) PodiumSunburstByCountry(w Window, topN int) *model.TreeNode {
	pods := a.podiums(w)

	counts := make(map[int]int)
	for _, p := range pods {
		counts[p.driverID]++
	}
	ids := make([]int, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if counts[ids[i]] != counts[ids[j]] {
			return counts[ids[i]] > counts[ids[j]]
		}
		return a.store.Driver(ids[i]).Name() < a.store.Driver(ids[j]).Name()
	})
	if topN > 0 && len(ids) > topN {
		ids = ids[:topN]
	}

	root := &model.TreeNode{Name: "Podiums"}
	for _, driverID := range ids {
		driverNode := &model.TreeNode{Name: a.store.Driver(driverID).Name()}
		for _, pos := range []int{1, 2, 3} {
			posNode := &model.TreeNode{Name: fmt.Sprintf("P%d", pos)}
			countries := groupCountries(pods, driverID, pos)
			for _, country := range sortedKeys(countries) {
				countryNode := &model.TreeNode{Name: country}
				byType := countries[country]
				for _, raceType := range sortedKeys(byType) {
					typeNode := &model.TreeNode{Name: raceType}
					for _, label := range byType[raceType] {
						typeNode.Children = append(typeNode.Children,
							&model.TreeNode{Name: label, Value: 1})
					}
					sortLeaves(typeNode)
					countryNode.Children = append(countryNode.Children, typeNode)
				}
				posNode.Children = append(posNode.Children, countryNode)
			}
			if len(posNode.Children) > 0 {
				driverNode.Children = append(driverNode.Children, posNode)
			}
		}
		if len(driverNode.Children) > 0 {
			root.Children = append(root.Children, driverNode)
		}
	}
	return root
}

func filterPositions(pods []podium, positions []int) []podium {
	if len(positions) == 0 {
		return pods
	}
	keep := makeSet(positions)
	ret := make([]podium, 0, len(pods))
	for _, p := range pods {
		if keep[p.position] {
			ret = append(ret, p)
		}
	}
	return ret
}

func groupCountries(pods []podium, driverID, position int) map[string]map[string][]string {
	ret := make(map[string]map[string][]string)
	for _, p := range pods {
		if p.driverID != driverID || p.position != position {
			continue
		}
		if ret[p.country] == nil {
			ret[p.country] = make(map[string][]string)
		}
		ret[p.country][p.raceType] = append(ret[p.country][p.raceType], p.raceLabel)
	}
	return ret
}

func sortLeaves(n *model.TreeNode) {
	sort.Slice(n.Children, func(i, j int) bool {
		return n.Children[i].Name < n.Children[j].Name
	})
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func makeSet(ids []int) map[int]bool {
	ret := make(map[int]bool, len(ids))
	for _, id := range ids {
		ret[id] = true
	}
	return ret
}

