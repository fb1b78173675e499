package aggregate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f1viz/f1viz-data-go/testsupport/fixtures"
)

func TestRaceReplay_Precomputed(t *testing.T) {
	a := newAnalyzer()
	replay := a.RaceReplay(fixtures.Parkland2023)

	assert.Equal(t, 4, replay.MaxLap)
	require.Len(t, replay.Drivers, 2)
	assert.Equal(t, 1, replay.Drivers[0].DriverID)
	assert.Equal(t, 10, replay.Drivers[0].ConstructorID)

	// laps sorted ascending per driver
	for _, d := range replay.Drivers {
		for i := 1; i < len(d.Laps); i++ {
			assert.Greater(t, d.Laps[i].Lap, d.Laps[i-1].Lap)
		}
	}

	require.Len(t, replay.Drivers[0].PitStops, 1)
	assert.Equal(t, 3, replay.Drivers[0].PitStops[0].Lap)
	assert.Equal(t, 22500, replay.Drivers[0].PitStops[0].Duration)
}

func TestRaceReplay_FrameIsPrefixSlice(t *testing.T) {
	a := newAnalyzer()
	replay := a.RaceReplay(fixtures.Parkland2023)

	frame := replay.Frame(2)
	require.Len(t, frame, 2)
	for _, d := range frame {
		require.Len(t, d.Laps, 2)
		assert.Equal(t, 2, d.Laps[len(d.Laps)-1].Lap)
		// the stop on lap 3 is not visible yet
		assert.Empty(t, d.PitStops)
	}

	full := replay.Frame(replay.MaxLap)
	for i, d := range full {
		assert.Len(t, d.Laps, len(replay.Drivers[i].Laps))
	}

	assert.Empty(t, replay.Frame(0)[0].Laps)
}

func TestRaceReplay_NoLapData(t *testing.T) {
	a := newAnalyzer()
	replay := a.RaceReplay(fixtures.Bayside2023)

	assert.Empty(t, replay.Drivers)
	assert.Zero(t, replay.MaxLap)
}
