package aggregate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f1viz/f1viz-data-go/testsupport/fixtures"
)

func TestDriverRaceLog_MergedRecord(t *testing.T) {
	a := newAnalyzer()
	entry, ok := a.DriverRaceLog(fixtures.Parkland2023, 1)
	require.True(t, ok)

	assert.Equal(t, "Alice Archer", entry.DriverName)
	assert.Equal(t, "Parkland Grand Prix", entry.RaceName)
	assert.Equal(t, 2023, entry.Year)

	require.NotNil(t, entry.Qualifying)
	assert.Equal(t, 1, entry.Qualifying.Position)
	assert.Equal(t, "1:29.500", entry.Qualifying.Q3)

	assert.Len(t, entry.Laps, 4)
	assert.Len(t, entry.PitStops, 1)
	assert.Equal(t, 1, entry.FinalPosition)
	assert.Equal(t, 10.0, entry.Points)
	assert.Equal(t, "Finished", entry.Status)
}

func TestDriverRaceLog_MissingSegments(t *testing.T) {
	a := newAnalyzer()
	// driver 5 went out in Q1 of the opener
	entry, ok := a.DriverRaceLog(fixtures.Parkland2023, 5)
	require.True(t, ok)

	require.NotNil(t, entry.Qualifying)
	assert.Empty(t, entry.Qualifying.Q2)
	assert.Empty(t, entry.Qualifying.Q3)
	assert.Equal(t, "Engine", entry.Status)
	assert.Empty(t, entry.Laps)
}

func TestDriverRaceLog_UnknownRace(t *testing.T) {
	a := newAnalyzer()
	_, ok := a.DriverRaceLog(9999, 1)
	assert.False(t, ok)
}

func TestSeasonsAndRaceOptions(t *testing.T) {
	a := newAnalyzer()
	assert.Equal(t, []int{2024, 2023}, a.Seasons())

	races := a.RacesForYear(2023)
	require.Len(t, races, 2)
	assert.Equal(t, fixtures.Parkland2023, races[0].RaceID)
	assert.Equal(t, "2023 Parkland Grand Prix", races[0].Label)
	assert.Equal(t, 2, races[1].Round)
}
