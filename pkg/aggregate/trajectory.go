package aggregate

import (
	"sort"

	"github.com/samber/lo"

	"github.com/f1viz/f1viz-data-go/pkg/model"
)

var tierNames = []string{"Top", "Midfield", "Backmarkers"}

// SeasonTrajectory builds the championship battle shape: per driver one
// standings position per round, aligned to the shared round axis. Rounds a
// driver has no standing for are nil; a line generator must skip those
// without connecting across the gap.
func (a *Analyzer) SeasonTrajectory(year int) *model.SeasonTrajectory {
	races := a.store.RacesByYear(year)
	ret := &model.SeasonTrajectory{
		Year:    year,
		Rounds:  make([]model.RoundRef, 0, len(races)),
		Drivers: make([]model.DriverTrajectory, 0),
	}
	if len(races) == 0 {
		return ret
	}

	// one position lookup per round, built once
	byRound := make([]map[int]int, len(races))
	for i, race := range races {
		ret.Rounds = append(ret.Rounds, model.RoundRef{
			Round:    race.Round,
			RaceID:   race.ID,
			RaceName: race.Name,
		})
		positions := make(map[int]int)
		for _, st := range a.store.StandingsByRace(race.ID) {
			positions[st.DriverID] = st.Position
		}
		byRound[i] = positions
	}

	driverIDs := make([]int, 0)
	seen := make(map[int]bool)
	for _, positions := range byRound {
		for id := range positions {
			if !seen[id] {
				seen[id] = true
				driverIDs = append(driverIDs, id)
			}
		}
	}

	final := byRound[len(byRound)-1]
	// order by final-round standing, drivers without one after that by name
	sort.Slice(driverIDs, func(i, j int) bool {
		pi, oki := final[driverIDs[i]]
		pj, okj := final[driverIDs[j]]
		switch {
		case oki && okj:
			return pi < pj
		case oki != okj:
			return oki
		default:
			return a.store.Driver(driverIDs[i]).Name() < a.store.Driver(driverIDs[j]).Name()
		}
	})

	for _, id := range driverIDs {
		positions := make([]*int, len(races))
		for i, roundPositions := range byRound {
			if pos, ok := roundPositions[id]; ok {
				p := pos
				positions[i] = &p
			}
		}
		ret.Drivers = append(ret.Drivers, model.DriverTrajectory{
			DriverID:   id,
			DriverName: a.store.Driver(id).Name(),
			Positions:  positions,
		})
	}

	ret.Tiers = buildTiers(lo.Values(final))
	return ret
}

// buildTiers partitions the final-round positions into up to three contiguous
// ranges for background highlighting. Every classified driver falls into
// exactly one tier; tiers never overlap.
func buildTiers(finalPositions []int) []model.TrajectoryTier {
	if len(finalPositions) == 0 {
		return nil
	}
	positions := make([]int, len(finalPositions))
	copy(positions, finalPositions)
	sort.Ints(positions)

	n := len(positions)
	tiers := min(len(tierNames), n)
	ret := make([]model.TrajectoryTier, 0, tiers)
	chunk := n / tiers
	rest := n % tiers
	idx := 0
	for t := range tiers {
		size := chunk
		if t < rest {
			size++
		}
		ret = append(ret, model.TrajectoryTier{
			Name:   tierNames[t],
			MinPos: positions[idx],
			MaxPos: positions[idx+size-1],
		})
		idx += size
	}
	return ret
}
