//nolint:funlen // ok for tests
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

// conversionDataset builds one race with a field of thirteen: seven of the
// top-10 qualifiers finish inside the top 10, the other three drop out of it.
func conversionDataset() *store.Dataset {
	ds := &store.Dataset{
		Circuits: []*model.Circuit{{ID: 1, Name: "Parkland Circuit"}},
		Races: []*model.Race{
			{ID: 100, Year: 2023, Round: 1, CircuitID: 1, Name: "Parkland Grand Prix"},
		},
		Statuses: []*model.Status{{ID: 1, Status: "Finished"}},
		Seasons:  []*model.Season{{Year: 2023}},
	}
	for i := 1; i <= 13; i++ {
		ds.Drivers = append(ds.Drivers, &model.Driver{
			ID: i, Forename: "Driver", Surname: fmt.Sprintf("%02d", i),
		})
		ds.Qualifying = append(ds.Qualifying, &model.Qualifying{
			RaceID: 100, DriverID: i, Position: i,
		})
	}
	// qualifiers 8, 9 and 10 fall to 11th, 12th and 13th; qualifiers 11, 12
	// and 13 move up into the top 10; everyone else finishes where they started
	finish := map[int]int{8: 11, 9: 12, 10: 13, 11: 8, 12: 9, 13: 10}
	for i := 1; i <= 13; i++ {
		pos := i
		if p, ok := finish[i]; ok {
			pos = p
		}
		ds.Results = append(ds.Results, &model.Result{
			RaceID: 100, DriverID: i, PositionOrder: pos, StatusID: 1,
		})
	}
	return ds
}

func TestQualifyingConversion_SevenOfTen(t *testing.T) {
	a := aggregate.New(store.New(conversionDataset()))
	circuits := a.QualifyingConversion(aggregate.Window{Start: 2023, End: 2023})

	require.Len(t, circuits, 1)
	require.Len(t, circuits[0].YearsData, 1)
	assert.InDelta(t, 70.0, circuits[0].YearsData[0].Rate, 1e-9)
	assert.InDelta(t, 70.0, circuits[0].AverageRate, 1e-9)
}

func TestQualifyingConversion_GroupedByCircuit(t *testing.T) {
	a := newAnalyzer()
	circuits := a.QualifyingConversion(aggregate.Window{Start: 2023, End: 2023})

	require.Len(t, circuits, 2)
	// sorted by circuit name
	assert.Equal(t, "Bayside Street Circuit", circuits[0].CircuitName)
	assert.Equal(t, "Parkland Circuit", circuits[1].CircuitName)

	// all six qualifiers of the sample opener finish in the top 10, the
	// denominator stays 10 regardless of field size
	assert.InDelta(t, 60.0, circuits[1].YearsData[0].Rate, 1e-9)
}

func TestQualifyingConversion_AverageOverYears(t *testing.T) {
	ds := conversionDataset()
	// second edition a year later where everyone converts positionally
	ds.Seasons = append(ds.Seasons, &model.Season{Year: 2024})
	ds.Races = append(ds.Races, &model.Race{
		ID: 101, Year: 2024, Round: 1, CircuitID: 1, Name: "Parkland Grand Prix",
	})
	for i := 1; i <= 13; i++ {
		ds.Qualifying = append(ds.Qualifying, &model.Qualifying{
			RaceID: 101, DriverID: i, Position: i,
		})
		ds.Results = append(ds.Results, &model.Result{
			RaceID: 101, DriverID: i, PositionOrder: i, StatusID: 1,
		})
	}
	a := aggregate.New(store.New(ds))
	circuits := a.QualifyingConversion(aggregate.Window{Start: 2023, End: 2024})

	require.Len(t, circuits, 1)
	require.Len(t, circuits[0].YearsData, 2)
	assert.InDelta(t, 70.0, circuits[0].YearsData[0].Rate, 1e-9)
	assert.InDelta(t, 100.0, circuits[0].YearsData[1].Rate, 1e-9)
	assert.InDelta(t, 85.0, circuits[0].AverageRate, 1e-9)
}
