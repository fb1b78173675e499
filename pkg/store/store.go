package store

import (
	"sort"
	"strings"

	"github.com/f1viz/f1viz-data-go/pkg/model"
)

// Dataset holds the raw tables as loaded. It exists so tests can build a
// store without going through CSV files.
type Dataset struct {
	Drivers      []*model.Driver
	Constructors []*model.Constructor
	Races        []*model.Race
	Circuits     []*model.Circuit
	Results      []*model.Result
	Qualifying   []*model.Qualifying
	Standings    []*model.DriverStanding
	LapTimes     []*model.LapTime
	PitStops     []*model.PitStop
	Statuses     []*model.Status
	Seasons      []*model.Season
}

type (
	driverYearKey struct{ driverID, year int }
	raceDriverKey struct{ raceID, driverID int }
)

// Store is the immutable, indexed record store. It is built once per session
// and never mutated afterwards, so concurrent reads are safe without locking.
type Store struct {
	data *Dataset

	driverByID      map[int]*model.Driver
	constructorByID map[int]*model.Constructor
	circuitByID     map[int]*model.Circuit
	statusByID      map[int]*model.Status
	raceByID        map[int]*model.Race

	racesByYear map[int][]*model.Race
	years       []int

	resultsByRace    map[int][]*model.Result
	qualifyingByRace map[int][]*model.Qualifying
	standingsByRace  map[int][]*model.DriverStanding

	resultsByDriverYear   map[driverYearKey][]*model.Result
	standingsByDriverYear map[driverYearKey][]*model.DriverStanding

	resultByRaceDriver    map[raceDriverKey]*model.Result
	qualifyingByRaceDrv   map[raceDriverKey]*model.Qualifying
	lapTimesByRaceDriver  map[raceDriverKey][]*model.LapTime
	pitStopsByRaceDriver  map[raceDriverKey][]*model.PitStop
	lapTimeDriversByRace  map[int][]int
	dnfStatusIDs          map[int]bool
}

// Sentinels for unresolved foreign keys. Lookups degrade to these instead of
// failing the pipeline.
var (
	unknownDriver      = &model.Driver{Forename: "Unknown"}
	unknownConstructor = &model.Constructor{Name: "Unknown", Ref: "unknown"}
	unknownCircuit     = &model.Circuit{Name: "Unknown", Country: "Unknown"}
	unknownStatus      = &model.Status{Status: "Unknown"}
)

//nolint:funlen // index construction is one linear pass per table
func New(data *Dataset) *Store {
	s := &Store{
		data:                  data,
		driverByID:            make(map[int]*model.Driver, len(data.Drivers)),
		constructorByID:       make(map[int]*model.Constructor, len(data.Constructors)),
		circuitByID:           make(map[int]*model.Circuit, len(data.Circuits)),
		statusByID:            make(map[int]*model.Status, len(data.Statuses)),
		raceByID:              make(map[int]*model.Race, len(data.Races)),
		racesByYear:           make(map[int][]*model.Race),
		resultsByRace:         make(map[int][]*model.Result),
		qualifyingByRace:      make(map[int][]*model.Qualifying),
		standingsByRace:       make(map[int][]*model.DriverStanding),
		resultsByDriverYear:   make(map[driverYearKey][]*model.Result),
		standingsByDriverYear: make(map[driverYearKey][]*model.DriverStanding),
		resultByRaceDriver:    make(map[raceDriverKey]*model.Result),
		qualifyingByRaceDrv:   make(map[raceDriverKey]*model.Qualifying),
		lapTimesByRaceDriver:  make(map[raceDriverKey][]*model.LapTime),
		pitStopsByRaceDriver:  make(map[raceDriverKey][]*model.PitStop),
		lapTimeDriversByRace:  make(map[int][]int),
		dnfStatusIDs:          make(map[int]bool),
	}

	for _, d := range data.Drivers {
		s.driverByID[d.ID] = d
	}
	for _, c := range data.Constructors {
		s.constructorByID[c.ID] = c
	}
	for _, c := range data.Circuits {
		s.circuitByID[c.ID] = c
	}
	for _, st := range data.Statuses {
		s.statusByID[st.ID] = st
		if IsDNFStatus(st.Status) {
			s.dnfStatusIDs[st.ID] = true
		}
	}
	for _, r := range data.Races {
		s.raceByID[r.ID] = r
		s.racesByYear[r.Year] = append(s.racesByYear[r.Year], r)
	}
	for y, races := range s.racesByYear {
		sort.Slice(races, func(i, j int) bool { return races[i].Round < races[j].Round })
		s.years = append(s.years, y)
	}
	sort.Ints(s.years)

	for _, r := range data.Results {
		s.resultsByRace[r.RaceID] = append(s.resultsByRace[r.RaceID], r)
		s.resultByRaceDriver[raceDriverKey{r.RaceID, r.DriverID}] = r
		if race, ok := s.raceByID[r.RaceID]; ok {
			key := driverYearKey{r.DriverID, race.Year}
			s.resultsByDriverYear[key] = append(s.resultsByDriverYear[key], r)
		}
	}
	for _, q := range data.Qualifying {
		s.qualifyingByRace[q.RaceID] = append(s.qualifyingByRace[q.RaceID], q)
		s.qualifyingByRaceDrv[raceDriverKey{q.RaceID, q.DriverID}] = q
	}
	for _, st := range data.Standings {
		s.standingsByRace[st.RaceID] = append(s.standingsByRace[st.RaceID], st)
		if race, ok := s.raceByID[st.RaceID]; ok {
			key := driverYearKey{st.DriverID, race.Year}
			s.standingsByDriverYear[key] = append(s.standingsByDriverYear[key], st)
		}
	}
	// standings and results per driver-year are kept in round order so the
	// "last standing" and "earliest constructor" rules are simple slice ends
	for key, rows := range s.standingsByDriverYear {
		sort.Slice(rows, func(i, j int) bool {
			return s.round(rows[i].RaceID) < s.round(rows[j].RaceID)
		})
		s.standingsByDriverYear[key] = rows
	}
	for key, rows := range s.resultsByDriverYear {
		sort.Slice(rows, func(i, j int) bool {
			return s.round(rows[i].RaceID) < s.round(rows[j].RaceID)
		})
		s.resultsByDriverYear[key] = rows
	}

	for _, lt := range data.LapTimes {
		key := raceDriverKey{lt.RaceID, lt.DriverID}
		if len(s.lapTimesByRaceDriver[key]) == 0 {
			s.lapTimeDriversByRace[lt.RaceID] = append(s.lapTimeDriversByRace[lt.RaceID], lt.DriverID)
		}
		s.lapTimesByRaceDriver[key] = append(s.lapTimesByRaceDriver[key], lt)
	}
	for key, rows := range s.lapTimesByRaceDriver {
		sort.Slice(rows, func(i, j int) bool { return rows[i].Lap < rows[j].Lap })
		s.lapTimesByRaceDriver[key] = rows
	}
	for _, ps := range data.PitStops {
		key := raceDriverKey{ps.RaceID, ps.DriverID}
		s.pitStopsByRaceDriver[key] = append(s.pitStopsByRaceDriver[key], ps)
	}
	for key, rows := range s.pitStopsByRaceDriver {
		sort.Slice(rows, func(i, j int) bool { return rows[i].Lap < rows[j].Lap })
		s.pitStopsByRaceDriver[key] = rows
	}
	return s
}

// IsDNFStatus classifies a status text. "Finished" and the lapped finishes
// ("+1 Lap", "+2 Laps", ...) are classified finishes; everything else is a DNF.
func IsDNFStatus(status string) bool {
	return !strings.Contains(status, "Finished") && !strings.Contains(status, "Lap")
}

func (s *Store) round(raceID int) int {
	if r, ok := s.raceByID[raceID]; ok {
		return r.Round
	}
	return 0
}

// HasDriver reports whether the id resolves to a real row (no sentinel).
func (s *Store) HasDriver(id int) bool {
	_, ok := s.driverByID[id]
	return ok
}

func (s *Store) HasConstructor(id int) bool {
	_, ok := s.constructorByID[id]
	return ok
}

func (s *Store) HasCircuit(id int) bool {
	_, ok := s.circuitByID[id]
	return ok
}

func (s *Store) HasStatus(id int) bool {
	_, ok := s.statusByID[id]
	return ok
}

// Driver resolves a driver id, degrading to the Unknown sentinel.
func (s *Store) Driver(id int) *model.Driver {
	if d, ok := s.driverByID[id]; ok {
		return d
	}
	return unknownDriver
}

// Constructor resolves a constructor id, degrading to the Unknown sentinel.
func (s *Store) Constructor(id int) *model.Constructor {
	if c, ok := s.constructorByID[id]; ok {
		return c
	}
	return unknownConstructor
}

// Circuit resolves a circuit id, degrading to the Unknown sentinel.
func (s *Store) Circuit(id int) *model.Circuit {
	if c, ok := s.circuitByID[id]; ok {
		return c
	}
	return unknownCircuit
}

// Status resolves a status id, degrading to the Unknown sentinel.
func (s *Store) Status(id int) *model.Status {
	if st, ok := s.statusByID[id]; ok {
		return st
	}
	return unknownStatus
}

func (s *Store) Race(id int) (*model.Race, bool) {
	r, ok := s.raceByID[id]
	return r, ok
}

// Years returns all years with at least one race, ascending.
func (s *Store) Years() []int { return s.years }

// RacesByYear returns the races of a year ordered by round.
func (s *Store) RacesByYear(year int) []*model.Race {
	return s.racesByYear[year]
}

// RacesInWindow returns all races with startYear <= year <= endYear ordered
// by year, then round. The window is resolved once here; aggregations never
// re-filter races per entity.
func (s *Store) RacesInWindow(startYear, endYear int) []*model.Race {
	ret := make([]*model.Race, 0)
	for _, y := range s.years {
		if y < startYear || y > endYear {
			continue
		}
		ret = append(ret, s.racesByYear[y]...)
	}
	return ret
}

func (s *Store) ResultsByRace(raceID int) []*model.Result {
	return s.resultsByRace[raceID]
}

func (s *Store) QualifyingByRace(raceID int) []*model.Qualifying {
	return s.qualifyingByRace[raceID]
}

func (s *Store) StandingsByRace(raceID int) []*model.DriverStanding {
	return s.standingsByRace[raceID]
}

// ResultsByDriverYear returns the driver's results of a year in round order.
func (s *Store) ResultsByDriverYear(driverID, year int) []*model.Result {
	return s.resultsByDriverYear[driverYearKey{driverID, year}]
}

// StandingsByDriverYear returns the driver's standings rows of a year in
// round order; the last entry is the final standing of the season.
func (s *Store) StandingsByDriverYear(driverID, year int) []*model.DriverStanding {
	return s.standingsByDriverYear[driverYearKey{driverID, year}]
}

func (s *Store) ResultFor(raceID, driverID int) (*model.Result, bool) {
	r, ok := s.resultByRaceDriver[raceDriverKey{raceID, driverID}]
	return r, ok
}

func (s *Store) QualifyingFor(raceID, driverID int) (*model.Qualifying, bool) {
	q, ok := s.qualifyingByRaceDrv[raceDriverKey{raceID, driverID}]
	return q, ok
}

// LapTimes returns the driver's laps of a race ordered by lap.
func (s *Store) LapTimes(raceID, driverID int) []*model.LapTime {
	return s.lapTimesByRaceDriver[raceDriverKey{raceID, driverID}]
}

// PitStops returns the driver's pit stops of a race ordered by lap.
func (s *Store) PitStops(raceID, driverID int) []*model.PitStop {
	return s.pitStopsByRaceDriver[raceDriverKey{raceID, driverID}]
}

// LapTimeDrivers returns the ids of drivers with lap data in a race, in
// first-seen order of the source table.
func (s *Store) LapTimeDrivers(raceID int) []int {
	return s.lapTimeDriversByRace[raceID]
}

// IsDNF reports whether a status id belongs to the DNF status set.
func (s *Store) IsDNF(statusID int) bool {
	return s.dnfStatusIDs[statusID]
}

func (s *Store) Drivers() []*model.Driver           { return s.data.Drivers }
func (s *Store) Constructors() []*model.Constructor { return s.data.Constructors }
func (s *Store) Circuits() []*model.Circuit         { return s.data.Circuits }
func (s *Store) Statuses() []*model.Status          { return s.data.Statuses }
func (s *Store) Seasons() []*model.Season           { return s.data.Seasons }
func (s *Store) AllResults() []*model.Result        { return s.data.Results }
func (s *Store) AllStandings() []*model.DriverStanding {
	return s.data.Standings
}
func (s *Store) AllQualifying() []*model.Qualifying { return s.data.Qualifying }
func (s *Store) AllLapTimes() []*model.LapTime      { return s.data.LapTimes }
func (s *Store) AllPitStops() []*model.PitStop      { return s.data.PitStops }
func (s *Store) AllRaces() []*model.Race            { return s.data.Races }
