package aggregate

import (
	"github.com/f1viz/f1viz-data-go/pkg/model"
)

// DriverRaceLog merges everything known about one driver in one race into a
// single record: qualifying segment times, the lap trace, pit stops and the
// final classification. Returns false when the race is unknown.
func (a *Analyzer) DriverRaceLog(raceID, driverID int) (*model.DriverRaceLog, bool) {
	race, ok := a.store.Race(raceID)
	if !ok {
		return nil, false
	}
	ret := &model.DriverRaceLog{
		DriverID:   driverID,
		DriverName: a.store.Driver(driverID).Name(),
		RaceID:     raceID,
		RaceName:   race.Name,
		Year:       race.Year,
		Laps:       make([]model.LapPosition, 0),
		PitStops:   make([]model.PitStopMark, 0),
	}
	if qual, found := a.store.QualifyingFor(raceID, driverID); found {
		ret.Qualifying = &model.QualifyingSegments{
			Position: qual.Position,
			Q1:       qual.Q1.GetOrZero(),
			Q2:       qual.Q2.GetOrZero(),
			Q3:       qual.Q3.GetOrZero(),
		}
	}
	for _, lt := range a.store.LapTimes(raceID, driverID) {
		ret.Laps = append(ret.Laps, model.LapPosition{Lap: lt.Lap, Position: lt.Position})
	}
	for _, ps := range a.store.PitStops(raceID, driverID) {
		ret.PitStops = append(ret.PitStops, model.PitStopMark{Lap: ps.Lap, Duration: ps.Milliseconds})
	}
	if res, found := a.store.ResultFor(raceID, driverID); found {
		ret.FinalPosition = res.PositionOrder
		ret.Points = res.Points
		ret.Status = a.store.Status(res.StatusID).Status
	}
	return ret, true
}
