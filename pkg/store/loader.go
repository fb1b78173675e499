package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/aarondl/opt/null"

	"github.com/f1viz/f1viz-data-go/log"
	"github.com/f1viz/f1viz-data-go/pkg/model"
)

// The flat tables use the Ergast CSV conventions: a header row, string typed
// cells and \N for SQL NULL. Each file is read completely once per session;
// a missing or malformed file is fatal (there is no partial mode).

const nullCell = `\N`

type row struct {
	file   string
	line   int
	cols   map[string]int
	fields []string
}

func (r *row) str(name string) string {
	idx, ok := r.cols[name]
	if !ok || idx >= len(r.fields) {
		return ""
	}
	return r.fields[idx]
}

func (r *row) optStr(name string) null.Val[string] {
	v := r.str(name)
	if v == "" || v == nullCell {
		return null.Val[string]{}
	}
	return null.From(v)
}

func (r *row) int(name string) (int, error) {
	v := r.str(name)
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s:%d: column %s: %q is not an integer",
			r.file, r.line, name, v)
	}
	return n, nil
}

func (r *row) optInt(name string) null.Val[int] {
	v := r.str(name)
	if v == "" || v == nullCell {
		return null.Val[int]{}
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return null.Val[int]{}
	}
	return null.From(n)
}

func (r *row) float(name string) (float64, error) {
	v := r.str(name)
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s:%d: column %s: %q is not a number",
			r.file, r.line, name, v)
	}
	return f, nil
}

func readTable(dir, name string, fn func(r *row) error) error {
	fileName := filepath.Join(dir, name)
	f, err := os.Open(fileName)
	if err != nil {
		return fmt.Errorf("opening table %s: %w", name, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("reading table %s: %w", name, err)
	}
	if len(records) == 0 {
		return fmt.Errorf("table %s: missing header row", name)
	}
	cols := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		cols[h] = i
	}
	r := &row{file: name, cols: cols}
	for i, fields := range records[1:] {
		r.line = i + 2
		r.fields = fields
		if err := fn(r); err != nil {
			return err
		}
	}
	return nil
}

// Load reads all tables from dir and returns the indexed store.
func Load(ctx context.Context, dir string) (*Store, error) {
	logger := log.GetFromContext(ctx).Named("store")
	ds := &Dataset{}

	if err := readTable(dir, "drivers.csv", func(r *row) error {
		id, err := r.int("driverId")
		if err != nil {
			return err
		}
		ds.Drivers = append(ds.Drivers, &model.Driver{
			ID:          id,
			Ref:         r.str("driverRef"),
			Number:      r.optInt("number"),
			Code:        r.optStr("code"),
			Forename:    r.str("forename"),
			Surname:     r.str("surname"),
			Nationality: r.str("nationality"),
		})
		return nil
	}); err != nil {
		return nil, err
	}

	if err := readTable(dir, "constructors.csv", func(r *row) error {
		id, err := r.int("constructorId")
		if err != nil {
			return err
		}
		ds.Constructors = append(ds.Constructors, &model.Constructor{
			ID:          id,
			Ref:         r.str("constructorRef"),
			Name:        r.str("name"),
			Nationality: r.str("nationality"),
		})
		return nil
	}); err != nil {
		return nil, err
	}

	if err := readTable(dir, "circuits.csv", func(r *row) error {
		id, err := r.int("circuitId")
		if err != nil {
			return err
		}
		ds.Circuits = append(ds.Circuits, &model.Circuit{
			ID:       id,
			Ref:      r.str("circuitRef"),
			Name:     r.str("name"),
			Location: r.str("location"),
			Country:  r.str("country"),
		})
		return nil
	}); err != nil {
		return nil, err
	}

	if err := readTable(dir, "races.csv", func(r *row) error {
		id, err := r.int("raceId")
		if err != nil {
			return err
		}
		year, err := r.int("year")
		if err != nil {
			return err
		}
		round, err := r.int("round")
		if err != nil {
			return err
		}
		circuitID, err := r.int("circuitId")
		if err != nil {
			return err
		}
		ds.Races = append(ds.Races, &model.Race{
			ID:        id,
			Year:      year,
			Round:     round,
			CircuitID: circuitID,
			Name:      r.str("name"),
			Date:      r.str("date"),
		})
		return nil
	}); err != nil {
		return nil, err
	}

	if err := readTable(dir, "results.csv", func(r *row) error {
		raceID, err := r.int("raceId")
		if err != nil {
			return err
		}
		driverID, err := r.int("driverId")
		if err != nil {
			return err
		}
		constructorID, err := r.int("constructorId")
		if err != nil {
			return err
		}
		positionOrder, err := r.int("positionOrder")
		if err != nil {
			return err
		}
		points, err := r.float("points")
		if err != nil {
			return err
		}
		statusID, err := r.int("statusId")
		if err != nil {
			return err
		}
		ds.Results = append(ds.Results, &model.Result{
			RaceID:        raceID,
			DriverID:      driverID,
			ConstructorID: constructorID,
			Grid:          r.optInt("grid").GetOrZero(),
			Position:      r.optInt("position"),
			PositionOrder: positionOrder,
			Points:        points,
			Laps:          r.optInt("laps").GetOrZero(),
			Milliseconds:  r.optInt("milliseconds"),
			StatusID:      statusID,
		})
		return nil
	}); err != nil {
		return nil, err
	}

	if err := readTable(dir, "qualifying.csv", func(r *row) error {
		raceID, err := r.int("raceId")
		if err != nil {
			return err
		}
		driverID, err := r.int("driverId")
		if err != nil {
			return err
		}
		position, err := r.int("position")
		if err != nil {
			return err
		}
		ds.Qualifying = append(ds.Qualifying, &model.Qualifying{
			RaceID:        raceID,
			DriverID:      driverID,
			ConstructorID: r.optInt("constructorId").GetOrZero(),
			Position:      position,
			Q1:            r.optStr("q1"),
			Q2:            r.optStr("q2"),
			Q3:            r.optStr("q3"),
		})
		return nil
	}); err != nil {
		return nil, err
	}

	if err := readTable(dir, "driver_standings.csv", func(r *row) error {
		raceID, err := r.int("raceId")
		if err != nil {
			return err
		}
		driverID, err := r.int("driverId")
		if err != nil {
			return err
		}
		points, err := r.float("points")
		if err != nil {
			return err
		}
		position, err := r.int("position")
		if err != nil {
			return err
		}
		ds.Standings = append(ds.Standings, &model.DriverStanding{
			RaceID:   raceID,
			DriverID: driverID,
			Points:   points,
			Position: position,
			Wins:     r.optInt("wins").GetOrZero(),
		})
		return nil
	}); err != nil {
		return nil, err
	}

	if err := readTable(dir, "lap_times.csv", func(r *row) error {
		raceID, err := r.int("raceId")
		if err != nil {
			return err
		}
		driverID, err := r.int("driverId")
		if err != nil {
			return err
		}
		lap, err := r.int("lap")
		if err != nil {
			return err
		}
		position, err := r.int("position")
		if err != nil {
			return err
		}
		millis, err := r.int("milliseconds")
		if err != nil {
			return err
		}
		ds.LapTimes = append(ds.LapTimes, &model.LapTime{
			RaceID:       raceID,
			DriverID:     driverID,
			Lap:          lap,
			Position:     position,
			Milliseconds: millis,
		})
		return nil
	}); err != nil {
		return nil, err
	}

	if err := readTable(dir, "pit_stops.csv", func(r *row) error {
		raceID, err := r.int("raceId")
		if err != nil {
			return err
		}
		driverID, err := r.int("driverId")
		if err != nil {
			return err
		}
		lap, err := r.int("lap")
		if err != nil {
			return err
		}
		ds.PitStops = append(ds.PitStops, &model.PitStop{
			RaceID:       raceID,
			DriverID:     driverID,
			Stop:         r.optInt("stop").GetOrZero(),
			Lap:          lap,
			Milliseconds: r.optInt("milliseconds").GetOrZero(),
		})
		return nil
	}); err != nil {
		return nil, err
	}

	if err := readTable(dir, "status.csv", func(r *row) error {
		id, err := r.int("statusId")
		if err != nil {
			return err
		}
		ds.Statuses = append(ds.Statuses, &model.Status{
			ID:     id,
			Status: r.str("status"),
		})
		return nil
	}); err != nil {
		return nil, err
	}

	if err := readTable(dir, "seasons.csv", func(r *row) error {
		year, err := r.int("year")
		if err != nil {
			return err
		}
		ds.Seasons = append(ds.Seasons, &model.Season{Year: year})
		return nil
	}); err != nil {
		return nil, err
	}

	s := New(ds)
	logger.Info("tables loaded",
		log.Int("drivers", len(ds.Drivers)),
		log.Int("constructors", len(ds.Constructors)),
		log.Int("races", len(ds.Races)),
		log.Int("results", len(ds.Results)),
		log.Int("qualifying", len(ds.Qualifying)),
		log.Int("standings", len(ds.Standings)),
		log.Int("lapTimes", len(ds.LapTimes)),
		log.Int("pitStops", len(ds.PitStops)))
	return s, nil
}
