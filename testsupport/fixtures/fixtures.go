// Package fixtures provides a small two-season sample dataset for tests. The
// numbers are hand-picked so derived values are easy to verify: driver 1 ends
// the 2023 season on 18 points, the 2023 opener has a 15.75s winning margin.
package fixtures

import (
	"github.com/aarondl/opt/null"

	"github.com/f1viz/f1viz-data-go/pkg/model"
	"github.com/f1viz/f1viz-data-go/pkg/store"
)

// race ids of the sample dataset
const (
	Parkland2023 = 100
	Bayside2023  = 101
	Parkland2024 = 102
	Bayside2024  = 103
)

// status ids of the sample dataset
const (
	StatusFinished  = 1
	StatusCollision = 4
	StatusEngine    = 5
	StatusPlusLap   = 11
)

func Dataset() *store.Dataset {
	return &store.Dataset{
		Drivers: []*model.Driver{
			{ID: 1, Ref: "archer", Code: null.From("ARC"), Forename: "Alice", Surname: "Archer", Nationality: "British"},
			{ID: 2, Ref: "becker", Code: null.From("BEC"), Forename: "Ben", Surname: "Becker", Nationality: "German"},
			{ID: 3, Ref: "cedar", Forename: "Carl", Surname: "Cedar", Nationality: "Spanish"},
			{ID: 4, Ref: "dale", Forename: "Dana", Surname: "Dale", Nationality: "French"},
			{ID: 5, Ref: "ellis", Forename: "Eve", Surname: "Ellis", Nationality: "Italian"},
			{ID: 6, Ref: "ford", Forename: "Finn", Surname: "Ford", Nationality: "Finnish"},
		},
		Constructors: []*model.Constructor{
			{ID: 10, Ref: "redwood", Name: "Redwood Racing", Nationality: "British"},
			{ID: 20, Ref: "silverline", Name: "Silverline", Nationality: "German"},
			{ID: 30, Ref: "corsa", Name: "Corsa Motors", Nationality: "Italian"},
		},
		Circuits: []*model.Circuit{
			{ID: 1, Ref: "parkland", Name: "Parkland Circuit", Location: "Northfield", Country: "UK"},
			{ID: 2, Ref: "bayside", Name: "Bayside Street Circuit", Location: "Bayside", Country: "Australia"},
		},
		Statuses: []*model.Status{
			{ID: StatusFinished, Status: "Finished"},
			{ID: StatusCollision, Status: "Collision"},
			{ID: StatusEngine, Status: "Engine"},
			{ID: StatusPlusLap, Status: "+1 Lap"},
		},
		Seasons: []*model.Season{{Year: 2023}, {Year: 2024}},
		Races: []*model.Race{
			{ID: Parkland2023, Year: 2023, Round: 1, CircuitID: 1, Name: "Parkland Grand Prix", Date: "2023-05-07"},
			{ID: Bayside2023, Year: 2023, Round: 2, CircuitID: 2, Name: "Bayside Grand Prix", Date: "2023-06-04"},
			{ID: Parkland2024, Year: 2024, Round: 1, CircuitID: 1, Name: "Parkland Grand Prix", Date: "2024-05-05"},
			{ID: Bayside2024, Year: 2024, Round: 2, CircuitID: 2, Name: "Bayside Grand Prix", Date: "2024-06-02"},
		},
		Results:    sampleResults(),
		Qualifying: sampleQualifying(),
		Standings:  sampleStandings(),
		LapTimes:   sampleLapTimes(),
		PitStops:   samplePitStops(),
	}
}

// Store builds the indexed store over the sample dataset.
func Store() *store.Store {
	return store.New(Dataset())
}

//nolint:funlen // table literal
func sampleResults() []*model.Result {
	return []*model.Result{
		// 2023 round 1: Archer wins 15.75s ahead of Becker, Ellis blows an
		// engine, Ford is collected in a collision
		res(Parkland2023, 1, 10, 1, 1, 1, 10, 5432100, StatusFinished),
		res(Parkland2023, 2, 20, 2, 2, 2, 8, 5447850, StatusFinished),
		res(Parkland2023, 3, 20, 3, 3, 3, 6, 0, StatusFinished),
		res(Parkland2023, 4, 30, 4, 4, 4, 5, 0, StatusPlusLap),
		res(Parkland2023, 5, 30, 6, 0, 5, 0, 0, StatusEngine),
		res(Parkland2023, 6, 10, 5, 0, 6, 0, 0, StatusCollision),
		// 2023 round 2: Becker wins, no timing for the lapped runner-up
		res(Bayside2023, 2, 20, 1, 1, 1, 10, 5601000, StatusFinished),
		res(Bayside2023, 1, 10, 2, 2, 2, 8, 0, StatusPlusLap),
		res(Bayside2023, 3, 20, 3, 3, 3, 6, 0, StatusPlusLap),
		res(Bayside2023, 4, 30, 4, 4, 4, 5, 0, StatusPlusLap),
		res(Bayside2023, 5, 30, 5, 5, 5, 4, 0, StatusPlusLap),
		res(Bayside2023, 6, 10, 6, 0, 6, 0, 0, StatusEngine),
		// 2024 round 1: Cedar has moved to Redwood and wins
		res(Parkland2024, 3, 10, 1, 1, 1, 10, 5390000, StatusFinished),
		res(Parkland2024, 2, 20, 2, 2, 2, 8, 5395500, StatusFinished),
		res(Parkland2024, 1, 10, 3, 3, 3, 6, 5400000, StatusFinished),
		res(Parkland2024, 4, 30, 4, 4, 4, 5, 0, StatusPlusLap),
		res(Parkland2024, 5, 30, 5, 0, 5, 0, 0, StatusCollision),
		// 2024 round 2
		res(Bayside2024, 2, 20, 1, 1, 1, 10, 5580000, StatusFinished),
		res(Bayside2024, 3, 10, 2, 2, 2, 8, 5582300, StatusFinished),
		res(Bayside2024, 1, 10, 3, 3, 3, 6, 5590000, StatusFinished),
		res(Bayside2024, 4, 30, 5, 4, 4, 5, 0, StatusPlusLap),
		res(Bayside2024, 5, 30, 4, 0, 5, 0, 0, StatusEngine),
	}
}

func res(
	raceID, driverID, constructorID, grid, position, positionOrder int,
	points float64,
	millis, statusID int,
) *model.Result {
	ret := &model.Result{
		RaceID:        raceID,
		DriverID:      driverID,
		ConstructorID: constructorID,
		Grid:          grid,
		PositionOrder: positionOrder,
		Points:        points,
		Laps:          58,
		StatusID:      statusID,
	}
	if position > 0 {
		ret.Position = null.From(position)
	}
	if millis > 0 {
		ret.Milliseconds = null.From(millis)
	}
	return ret
}

func sampleQualifying() []*model.Qualifying {
	qual := func(raceID, driverID, constructorID, pos int, q3 string) *model.Qualifying {
		ret := &model.Qualifying{
			RaceID:        raceID,
			DriverID:      driverID,
			ConstructorID: constructorID,
			Position:      pos,
			Q1:            null.From("1:31.000"),
		}
		if q3 != "" {
			ret.Q2 = null.From("1:30.200")
			ret.Q3 = null.From(q3)
		}
		return ret
	}
	return []*model.Qualifying{
		// grid order of the 2023 opener; positions 2 and 10 exercise the
		// numeric node ordering of the flow view
		qual(Parkland2023, 1, 10, 1, "1:29.500"),
		qual(Parkland2023, 2, 20, 2, "1:29.750"),
		qual(Parkland2023, 3, 20, 3, "1:29.990"),
		qual(Parkland2023, 4, 30, 4, "1:30.120"),
		qual(Parkland2023, 6, 10, 5, ""),
		qual(Parkland2023, 5, 30, 10, ""),

		qual(Bayside2023, 2, 20, 1, "1:24.100"),
		qual(Bayside2023, 1, 10, 2, "1:24.300"),
		qual(Bayside2023, 3, 20, 3, "1:24.450"),
		qual(Bayside2023, 4, 30, 4, "1:24.800"),
		qual(Bayside2023, 5, 30, 5, ""),
		qual(Bayside2023, 6, 10, 6, ""),
	}
}

func sampleStandings() []*model.DriverStanding {
	st := func(raceID, driverID int, points float64, pos, wins int) *model.DriverStanding {
		return &model.DriverStanding{
			RaceID: raceID, DriverID: driverID, Points: points, Position: pos, Wins: wins,
		}
	}
	return []*model.DriverStanding{
		// 2023 after round 1
		st(Parkland2023, 1, 10, 1, 1),
		st(Parkland2023, 2, 8, 2, 0),
		st(Parkland2023, 3, 6, 3, 0),
		st(Parkland2023, 4, 5, 4, 0),
		st(Parkland2023, 5, 0, 5, 0),
		st(Parkland2023, 6, 0, 6, 0),
		// 2023 after round 2: Archer ends the season on 18
		st(Bayside2023, 1, 18, 1, 1),
		st(Bayside2023, 2, 18, 2, 1),
		st(Bayside2023, 3, 12, 3, 0),
		st(Bayside2023, 4, 10, 4, 0),
		st(Bayside2023, 5, 4, 5, 0),
		st(Bayside2023, 6, 0, 6, 0),
		// 2024 after round 1
		st(Parkland2024, 3, 10, 1, 1),
		st(Parkland2024, 2, 8, 2, 0),
		st(Parkland2024, 1, 6, 3, 0),
		st(Parkland2024, 4, 5, 4, 0),
		st(Parkland2024, 5, 0, 5, 0),
		// 2024 after round 2
		st(Bayside2024, 2, 18, 1, 1),
		st(Bayside2024, 3, 18, 2, 1),
		st(Bayside2024, 1, 12, 3, 0),
		st(Bayside2024, 4, 10, 4, 0),
		st(Bayside2024, 5, 0, 5, 0),
	}
}

func sampleLapTimes() []*model.LapTime {
	lap := func(driverID, lapNo, pos, millis int) *model.LapTime {
		return &model.LapTime{
			RaceID: Parkland2023, DriverID: driverID, Lap: lapNo,
			Position: pos, Milliseconds: millis,
		}
	}
	return []*model.LapTime{
		lap(1, 1, 1, 92100),
		lap(1, 2, 1, 91800),
		lap(1, 3, 2, 93900), // pit stop lap
		lap(1, 4, 1, 91500),
		lap(2, 1, 2, 92400),
		lap(2, 2, 2, 92000),
		lap(2, 3, 1, 91900),
		lap(2, 4, 2, 92200),
	}
}

func samplePitStops() []*model.PitStop {
	return []*model.PitStop{
		{RaceID: Parkland2023, DriverID: 1, Stop: 1, Lap: 3, Milliseconds: 22500},
		{RaceID: Parkland2023, DriverID: 2, Stop: 1, Lap: 4, Milliseconds: 23100},
	}
}
