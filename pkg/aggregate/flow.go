package aggregate

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/f1viz/f1viz-data-go/pkg/model"
)

// flowLinkWeight is the constant edge weight of every driver flow.
const flowLinkWeight = 10

// QualifyingFlow builds the qualifying-to-final-position flow graph of one
// race: one link per driver from node Q<qualifying> to node P<finish>.
// Drivers lacking either side are skipped. Nodes are deduplicated by label
// and ordered by the numeric rank embedded in the label: Q2 sorts before
// Q10, never lexicographically.
func (a *Analyzer) QualifyingFlow(raceID int) *model.SankeyGraph {
	ret := &model.SankeyGraph{
		Nodes: make([]model.SankeyNode, 0),
		Links: make([]model.SankeyLink, 0),
	}
	nodeSeen := make(map[string]bool)
	addNode := func(label string, rank int) {
		if nodeSeen[label] {
			return
		}
		nodeSeen[label] = true
		ret.Nodes = append(ret.Nodes, model.SankeyNode{Label: label, Rank: rank})
	}

	results := a.store.ResultsByRace(raceID)
	for _, res := range results {
		qual, ok := a.store.QualifyingFor(raceID, res.DriverID)
		if !ok || qual.Position == 0 || res.PositionOrder == 0 {
			continue
		}
		source := fmt.Sprintf("Q%d", qual.Position)
		target := fmt.Sprintf("P%d", res.PositionOrder)
		addNode(source, qual.Position)
		addNode(target, res.PositionOrder)
		ret.Links = append(ret.Links, model.SankeyLink{
			Source:        source,
			Target:        target,
			Value:         flowLinkWeight,
			DriverID:      res.DriverID,
			DriverName:    a.store.Driver(res.DriverID).Name(),
			ConstructorID: res.ConstructorID,
		})
	}

	sort.SliceStable(ret.Nodes, func(i, j int) bool {
		if ret.Nodes[i].Rank != ret.Nodes[j].Rank {
			return ret.Nodes[i].Rank < ret.Nodes[j].Rank
		}
		// same rank: qualifying column before finish column
		return ret.Nodes[i].Label > ret.Nodes[j].Label
	})
	sort.SliceStable(ret.Links, func(i, j int) bool {
		return nodeRank(ret.Links[i].Source) < nodeRank(ret.Links[j].Source)
	})
	return ret
}

// nodeRank extracts the numeric rank from a node label such as "Q10" or "P2".
func nodeRank(label string) int {
	if len(label) < 2 {
		return 0
	}
	rank, err := strconv.Atoi(label[1:])
	if err != nil {
		return 0
	}
	return rank
}
