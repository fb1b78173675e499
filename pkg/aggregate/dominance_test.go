package aggregate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f1viz/f1viz-data-go/pkg/aggregate"
)

func TestConstructorDominance_PointsAndWins(t *testing.T) {
	a := newAnalyzer()
	dom := a.ConstructorDominance(aggregate.Window{Start: 2023, End: 2024})

	require.Len(t, dom.Constructors, 3)
	// ascending constructor id order
	assert.Equal(t, 10, dom.Constructors[0].ConstructorID)
	assert.Equal(t, 20, dom.Constructors[1].ConstructorID)
	assert.Equal(t, 30, dom.Constructors[2].ConstructorID)

	redwood := dom.Constructors[0]
	require.Len(t, redwood.YearsData, 2)
	// 2023: Archer 10+8, Ford 0+0
	assert.Equal(t, 18.0, redwood.YearsData[0].Points)
	assert.Equal(t, 1, redwood.YearsData[0].Wins)
	// 2024: Cedar 10+8, Archer 6+6
	assert.Equal(t, 30.0, redwood.YearsData[1].Points)
	assert.Equal(t, 1, redwood.YearsData[1].Wins)
}

func TestConstructorDominance_StackingInvariant(t *testing.T) {
	a := newAnalyzer()
	dom := a.ConstructorDominance(aggregate.Window{Start: 2023, End: 2024})

	require.Len(t, dom.Stacked, len(dom.Constructors))
	for l, layer := range dom.Stacked {
		assert.Equal(t, dom.Constructors[l].ConstructorID, layer.Key)
		for i, pt := range layer.Points {
			// a layer's span equals the constructor's own points that year
			assert.InDelta(t, dom.Constructors[l].YearsData[i].Points, pt.Y1-pt.Y0, 1e-9)
			// layers stack seamlessly
			if l > 0 {
				assert.InDelta(t, dom.Stacked[l-1].Points[i].Y1, pt.Y0, 1e-9)
			} else {
				assert.Zero(t, pt.Y0)
			}
		}
	}
}

func TestConstructorDominance_WindowSelectsSeasons(t *testing.T) {
	a := newAnalyzer()
	dom := a.ConstructorDominance(aggregate.Window{Start: 2024, End: 2024})

	for _, series := range dom.Constructors {
		require.Len(t, series.YearsData, 1)
		assert.Equal(t, 2024, series.YearsData[0].Year)
	}
}

func TestConstructorDominance_EmptyWindow(t *testing.T) {
	a := newAnalyzer()
	dom := a.ConstructorDominance(aggregate.Window{Start: 1990, End: 1995})

	assert.Empty(t, dom.Constructors)
	assert.Empty(t, dom.Stacked)
}
