package aggregate_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f1viz/f1viz-data-go/pkg/aggregate"
	"github.com/f1viz/f1viz-data-go/pkg/model"
	"github.com/f1viz/f1viz-data-go/pkg/store"
)

func TestDriverContributions_Shares(t *testing.T) {
	a := newAnalyzer()
	// Silverline 2023: Becker 18, Cedar 12
	share := a.DriverContributions(2023, 20)

	assert.Equal(t, 30.0, share.Total)
	require.Len(t, share.Drivers, 2)
	assert.Equal(t, "Ben Becker", share.Drivers[0].Name)
	assert.InDelta(t, 60.0, share.Drivers[0].Percentage, 1e-9)
	assert.InDelta(t, 40.0, share.Drivers[1].Percentage, 1e-9)
}

func TestDriverContributions_PercentagesCloseTo100(t *testing.T) {
	// three drivers on 1 point each force a repeating fraction
	ds := &store.Dataset{
		Constructors: []*model.Constructor{{ID: 10, Name: "Redwood Racing"}},
		Races: []*model.Race{
			{ID: 100, Year: 2023, Round: 1, CircuitID: 1, Name: "Parkland Grand Prix"},
		},
		Seasons: []*model.Season{{Year: 2023}},
	}
	for i := 1; i <= 3; i++ {
		ds.Drivers = append(ds.Drivers, &model.Driver{
			ID: i, Forename: "Driver", Surname: fmt.Sprintf("%d", i),
		})
		ds.Results = append(ds.Results, &model.Result{
			RaceID: 100, DriverID: i, ConstructorID: 10,
			PositionOrder: i, Points: 1,
		})
	}
	a := aggregate.New(store.New(ds))
	share := a.DriverContributions(2023, 10)

	sum := 0.0
	for _, d := range share.Drivers {
		sum += d.Percentage
	}
	// 33.33 + 33.33 + 33.33 would leave 99.99; the remainder lands on the
	// largest share so the total closes exactly
	assert.InDelta(t, 100.0, sum, 1e-9)
}

func TestDriverContributions_ZeroPointSeason(t *testing.T) {
	a := newAnalyzer()
	share := a.DriverContributions(2023, 999)

	assert.Zero(t, share.Total)
	assert.Empty(t, share.Drivers)
}

func TestActiveConstructors(t *testing.T) {
	a := newAnalyzer()
	opts := a.ActiveConstructors(2024)

	require.Len(t, opts, 3)
	assert.Equal(t, "Corsa Motors", opts[0].Name)
	assert.Equal(t, "Redwood Racing", opts[1].Name)
	assert.Equal(t, "Silverline", opts[2].Name)
}
