package aggregate

import (
	"github.com/f1viz/f1viz-data-go/pkg/model"
)

// RaceReplay precomputes the full lap-by-lap state of one race. All per-driver
// arrays come out sorted by lap so a frame at any cursor is a plain prefix
// slice. Drivers appear in the order they first show up in the lap data.
func (a *Analyzer) RaceReplay(raceID int) *model.RaceReplay {
	ret := &model.RaceReplay{RaceID: raceID, Drivers: make([]model.DriverTrace, 0)}
	for _, driverID := range a.store.LapTimeDrivers(raceID) {
		trace := model.DriverTrace{
			DriverID:   driverID,
			DriverName: a.store.Driver(driverID).Name(),
			Laps:       make([]model.LapPosition, 0),
			PitStops:   make([]model.PitStopMark, 0),
		}
		if res, ok := a.store.ResultFor(raceID, driverID); ok {
			trace.ConstructorID = res.ConstructorID
		}
		for _, lt := range a.store.LapTimes(raceID, driverID) {
			trace.Laps = append(trace.Laps, model.LapPosition{Lap: lt.Lap, Position: lt.Position})
			if lt.Lap > ret.MaxLap {
				ret.MaxLap = lt.Lap
			}
		}
		for _, ps := range a.store.PitStops(raceID, driverID) {
			trace.PitStops = append(trace.PitStops, model.PitStopMark{Lap: ps.Lap, Duration: ps.Milliseconds})
		}
		ret.Drivers = append(ret.Drivers, trace)
	}
	return ret
}
