//nolint:funlen // ok for tests
package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/f1viz/f1viz-data-go/pkg/store"
	"github.com/f1viz/f1viz-data-go/testsupport/fixtures"
)

func TestStore_Years(t *testing.T) {
	s := fixtures.Store()
	assert.Equal(t, []int{2023, 2024}, s.Years())
}

func TestStore_RacesByYear_RoundOrder(t *testing.T) {
	s := fixtures.Store()
	races := s.RacesByYear(2023)
	assert.Len(t, races, 2)
	assert.Equal(t, 1, races[0].Round)
	assert.Equal(t, 2, races[1].Round)
}

func TestStore_RacesInWindow(t *testing.T) {
	s := fixtures.Store()
	assert.Len(t, s.RacesInWindow(2023, 2024), 4)
	assert.Len(t, s.RacesInWindow(2024, 2024), 2)
	assert.Empty(t, s.RacesInWindow(1990, 1999))
}

func TestStore_UnknownLookupsDegradeToSentinels(t *testing.T) {
	s := fixtures.Store()

	assert.Equal(t, "Unknown", s.Driver(9999).Name())
	assert.Equal(t, "Unknown", s.Constructor(9999).Name)
	assert.Equal(t, "Unknown", s.Circuit(9999).Name)
	assert.Equal(t, "Unknown", s.Status(9999).Status)
	assert.False(t, s.HasDriver(9999))
	assert.True(t, s.HasDriver(1))
}

func TestIsDNFStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"Finished", false},
		{"+1 Lap", false},
		{"+4 Laps", false},
		{"Engine", true},
		{"Collision", true},
		{"Accident", true},
		{"Disqualified", true},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, store.IsDNFStatus(tt.status))
		})
	}
}

func TestStore_StandingsByDriverYear_SortedByRound(t *testing.T) {
	s := fixtures.Store()
	rows := s.StandingsByDriverYear(1, 2023)
	assert.Len(t, rows, 2)
	assert.Equal(t, 10.0, rows[0].Points)
	assert.Equal(t, 18.0, rows[1].Points)
}

func TestStore_LapTimes_SortedByLap(t *testing.T) {
	s := fixtures.Store()
	laps := s.LapTimes(fixtures.Parkland2023, 1)
	assert.Len(t, laps, 4)
	for i := 1; i < len(laps); i++ {
		assert.Greater(t, laps[i].Lap, laps[i-1].Lap)
	}
}

func TestStore_LapTimeDrivers_FirstSeenOrder(t *testing.T) {
	s := fixtures.Store()
	assert.Equal(t, []int{1, 2}, s.LapTimeDrivers(fixtures.Parkland2023))
}

func TestStore_ResultFor(t *testing.T) {
	s := fixtures.Store()
	res, ok := s.ResultFor(fixtures.Parkland2023, 1)
	assert.True(t, ok)
	assert.Equal(t, 1, res.PositionOrder)
	_, ok = s.ResultFor(fixtures.Parkland2023, 9999)
	assert.False(t, ok)
}

func TestStore_IsDNF(t *testing.T) {
	s := fixtures.Store()
	assert.True(t, s.IsDNF(fixtures.StatusEngine))
	assert.True(t, s.IsDNF(fixtures.StatusCollision))
	assert.False(t, s.IsDNF(fixtures.StatusFinished))
	assert.False(t, s.IsDNF(fixtures.StatusPlusLap))
}
