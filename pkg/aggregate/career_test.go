package aggregate_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/f1viz/f1viz-data-go/pkg/aggregate"
	"github.com/f1viz/f1viz-data-go/pkg/model"
	"github.com/f1viz/f1viz-data-go/testsupport/fixtures"
)

func newAnalyzer() *aggregate.Analyzer {
	return aggregate.New(fixtures.Store())
}

func TestCareerProgression_SeasonPointsFromLastRound(t *testing.T) {
	a := newAnalyzer()
	career := a.CareerProgression(1, aggregate.Window{Start: 2023, End: 2024}, aggregate.CareerDense)

	assert.Equal(t, "Alice Archer", career.DriverName)
	want := []model.CareerSeason{
		// 18 is the standing after the final round, not the sum of rows
		{Year: 2023, Points: 18, ConstructorID: 10, ConstructorRef: "redwood", ConstructorName: "Redwood Racing"},
		{Year: 2024, Points: 12, ConstructorID: 10, ConstructorRef: "redwood", ConstructorName: "Redwood Racing"},
	}
	if diff := cmp.Diff(want, career.Seasons); diff != "" {
		t.Errorf("seasons mismatch (-want +got):\n%s", diff)
	}
}

func TestCareerProgression_DensePolicyZeroFills(t *testing.T) {
	a := newAnalyzer()
	// driver 6 only raced in 2023
	career := a.CareerProgression(6, aggregate.Window{Start: 2023, End: 2024}, aggregate.CareerDense)

	assert.Len(t, career.Seasons, 2)
	assert.Equal(t, 2024, career.Seasons[1].Year)
	assert.Zero(t, career.Seasons[1].Points)
	assert.Zero(t, career.Seasons[1].ConstructorID)
}

func TestCareerProgression_ActivePolicyDropsIdleSeasons(t *testing.T) {
	a := newAnalyzer()
	career := a.CareerProgression(6, aggregate.Window{Start: 2023, End: 2024}, aggregate.CareerActiveOnly)

	assert.Len(t, career.Seasons, 1)
	assert.Equal(t, 2023, career.Seasons[0].Year)
}

func TestCareerProgression_PrimaryConstructorFromEarliestRound(t *testing.T) {
	a := newAnalyzer()
	// driver 3 drove for Silverline in 2023 and Redwood in 2024
	career := a.CareerProgression(3, aggregate.Window{Start: 2023, End: 2024}, aggregate.CareerDense)

	assert.Equal(t, 20, career.Seasons[0].ConstructorID)
	assert.Equal(t, 10, career.Seasons[1].ConstructorID)
}

func TestCareerDrivers(t *testing.T) {
	a := newAnalyzer()
	opts := a.CareerDrivers(aggregate.Window{Start: 2023, End: 2024}, 0)

	assert.Len(t, opts, 6)
	// sorted by name
	assert.Equal(t, "Alice Archer", opts[0].Name)
	assert.Equal(t, 2023, opts[0].Start)
}

func TestParseCareerPolicy(t *testing.T) {
	policy, err := aggregate.ParseCareerPolicy("dense")
	assert.NoError(t, err)
	assert.Equal(t, aggregate.CareerDense, policy)

	policy, err = aggregate.ParseCareerPolicy("active")
	assert.NoError(t, err)
	assert.Equal(t, aggregate.CareerActiveOnly, policy)

	_, err = aggregate.ParseCareerPolicy("bogus")
	assert.Error(t, err)
}
