//nolint:funlen // ok for tests
package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f1viz/f1viz-data-go/pkg/store"
)

var sampleTables = map[string]string{
	"drivers.csv": `driverId,driverRef,number,code,forename,surname,nationality
1,archer,"44",ARC,Alice,Archer,British
2,becker,\N,\N,Ben,Becker,German
`,
	"constructors.csv": `constructorId,constructorRef,name,nationality
10,redwood,Redwood Racing,British
`,
	"circuits.csv": `circuitId,circuitRef,name,location,country
1,parkland,Parkland Circuit,Northfield,UK
`,
	"races.csv": `raceId,year,round,circuitId,name,date
100,2023,1,1,Parkland Grand Prix,2023-05-07
`,
	"results.csv": `raceId,driverId,constructorId,grid,position,positionOrder,points,laps,milliseconds,statusId
100,1,10,1,1,1,25,58,5432100,1
100,2,10,2,\N,2,0,40,\N,5
`,
	"qualifying.csv": `raceId,driverId,constructorId,position,q1,q2,q3
100,1,10,1,1:31.000,1:30.200,1:29.500
100,2,10,2,1:31.200,\N,\N
`,
	"driver_standings.csv": `raceId,driverId,points,position,wins
100,1,25,1,1
100,2,0,2,0
`,
	"lap_times.csv": `raceId,driverId,lap,position,milliseconds
100,1,1,1,92100
100,1,2,1,91800
`,
	"pit_stops.csv": `raceId,driverId,stop,lap,milliseconds
100,1,1,3,22500
`,
	"status.csv": `statusId,status
1,Finished
5,Engine
`,
	"seasons.csv": `year
2023
`,
}

func writeSampleDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range sampleTables {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644)
		require.NoError(t, err)
	}
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeSampleDir(t)
	s, err := store.Load(context.Background(), dir)
	require.NoError(t, err)

	d := s.Driver(1)
	assert.Equal(t, "Alice Archer", d.Name())
	assert.Equal(t, 44, d.Number.GetOrZero())
	assert.Equal(t, "ARC", d.Code.GetOrZero())

	// \N cells stay unset
	assert.False(t, s.Driver(2).Number.IsValue())
	res, ok := s.ResultFor(100, 2)
	require.True(t, ok)
	assert.False(t, res.Position.IsValue())
	assert.False(t, res.Milliseconds.IsValue())

	res, ok = s.ResultFor(100, 1)
	require.True(t, ok)
	assert.Equal(t, 25.0, res.Points)
	assert.Equal(t, 5432100, res.Milliseconds.GetOrZero())

	qual, ok := s.QualifyingFor(100, 2)
	require.True(t, ok)
	assert.False(t, qual.Q2.IsValue())
	assert.False(t, qual.Q3.IsValue())

	assert.Equal(t, []int{2023}, s.Years())
}

func TestLoad_MissingTable(t *testing.T) {
	dir := writeSampleDir(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "results.csv")))

	_, err := store.Load(context.Background(), dir)
	assert.ErrorContains(t, err, "results.csv")
}

func TestLoad_MalformedCell(t *testing.T) {
	dir := writeSampleDir(t)
	bad := "raceId,driverId,constructorId,grid,position,positionOrder,points,laps,milliseconds,statusId\n100,notanumber,10,1,1,1,25,58,\\N,1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "results.csv"), []byte(bad), 0o644))

	_, err := store.Load(context.Background(), dir)
	assert.ErrorContains(t, err, "driverId")
}
