package aggregate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f1viz/f1viz-data-go/testsupport/fixtures"
)

func TestSeasonTrajectory_RoundAxis(t *testing.T) {
	a := newAnalyzer()
	traj := a.SeasonTrajectory(2023)

	require.Len(t, traj.Rounds, 2)
	assert.Equal(t, 1, traj.Rounds[0].Round)
	assert.Equal(t, fixtures.Parkland2023, traj.Rounds[0].RaceID)
	assert.Equal(t, "Bayside Grand Prix", traj.Rounds[1].RaceName)
}

func TestSeasonTrajectory_OrderedByFinalStanding(t *testing.T) {
	a := newAnalyzer()
	traj := a.SeasonTrajectory(2023)

	require.Len(t, traj.Drivers, 6)
	assert.Equal(t, 1, traj.Drivers[0].DriverID)
	assert.Equal(t, 2, traj.Drivers[1].DriverID)

	// every trajectory is aligned to the round axis
	for _, d := range traj.Drivers {
		assert.Len(t, d.Positions, len(traj.Rounds))
	}
}

func TestSeasonTrajectory_NilMarksMissingRounds(t *testing.T) {
	a := newAnalyzer()
	// driver 6 has no standings row for the 2024 rounds
	traj := a.SeasonTrajectory(2024)

	for _, d := range traj.Drivers {
		assert.NotEqual(t, 6, d.DriverID)
	}
	// driver 1 is classified in every round
	for _, d := range traj.Drivers {
		if d.DriverID == 1 {
			for i, pos := range d.Positions {
				require.NotNil(t, pos, "round %d", i+1)
			}
		}
	}
}

func TestSeasonTrajectory_Tiers(t *testing.T) {
	a := newAnalyzer()
	traj := a.SeasonTrajectory(2023)

	require.Len(t, traj.Tiers, 3)
	assert.Equal(t, "Top", traj.Tiers[0].Name)
	// contiguous, non-overlapping, covering positions 1..6
	assert.Equal(t, 1, traj.Tiers[0].MinPos)
	assert.Equal(t, 6, traj.Tiers[2].MaxPos)
	for i := 1; i < len(traj.Tiers); i++ {
		assert.Greater(t, traj.Tiers[i].MinPos, traj.Tiers[i-1].MaxPos)
	}
}

func TestSeasonTrajectory_EmptySeason(t *testing.T) {
	a := newAnalyzer()
	traj := a.SeasonTrajectory(1999)

	assert.Empty(t, traj.Rounds)
	assert.Empty(t, traj.Drivers)
	assert.Empty(t, traj.Tiers)
}
