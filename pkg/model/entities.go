package model

import (
	"strconv"
	"strings"

	"github.com/aarondl/opt/null"
)

// The entities mirror the flat CSV tables. All rows are immutable after load;
// aggregations only ever produce new derived structures.

type Driver struct {
	ID          int
	Ref         string
	Number      null.Val[int]
	Code        null.Val[string]
	Forename    string
	Surname     string
	Nationality string
}

// Name returns the display name used by every view model.
func (d *Driver) Name() string {
	return strings.TrimSpace(d.Forename + " " + d.Surname)
}

type Constructor struct {
	ID          int
	Ref         string
	Name        string
	Nationality string
}

type Race struct {
	ID        int
	Year      int
	Round     int
	CircuitID int
	Name      string
	Date      string
}

// Label is the "<year> <name>" form used by podium leaves and race selectors.
func (r *Race) Label() string {
	return strconv.Itoa(r.Year) + " " + r.Name
}

type Circuit struct {
	ID       int
	Ref      string
	Name     string
	Location string
	Country  string
}

type Result struct {
	RaceID        int
	DriverID      int
	ConstructorID int
	Grid          int
	// Position is the classified position, unset for non-classified cars.
	// PositionOrder is always set and is the ordering the views rely on.
	Position      null.Val[int]
	PositionOrder int
	Points        float64
	Laps          int
	// Milliseconds is the total race time, only present for the lead lap cars.
	Milliseconds null.Val[int]
	StatusID     int
}

type Qualifying struct {
	RaceID        int
	DriverID      int
	ConstructorID int
	Position      int
	Q1            null.Val[string]
	Q2            null.Val[string]
	Q3            null.Val[string]
}

type DriverStanding struct {
	RaceID   int
	DriverID int
	Points   float64
	Position int
	Wins     int
}

type LapTime struct {
	RaceID       int
	DriverID     int
	Lap          int
	Position     int
	Milliseconds int
}

type PitStop struct {
	RaceID       int
	DriverID     int
	Stop         int
	Lap          int
	Milliseconds int
}

type Status struct {
	ID     int
	Status string
}

type Season struct {
	Year int
}
