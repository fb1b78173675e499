package model

// View-model contracts. These are the stable shapes handed to the rendering
// collaborator: plain nested data, no DOM or chart references. Every shape is
// produced by exactly one aggregation in pkg/aggregate.

// CareerSeason is one point of the career progression time series.
type CareerSeason struct {
	Year            int     `json:"year"`
	Points          float64 `json:"points"`
	ConstructorID   int     `json:"constructorId,omitempty"`
	ConstructorRef  string  `json:"constructorRef,omitempty"`
	ConstructorName string  `json:"constructorName,omitempty"`
}

type CareerProgression struct {
	DriverID   int            `json:"driverId"`
	DriverName string         `json:"driverName"`
	Seasons    []CareerSeason `json:"seasons"`
}

// DriverOption feeds the driver selector; Start is the first season with a
// resolved constructor.
type DriverOption struct {
	DriverID int    `json:"driverId"`
	Name     string `json:"name"`
	Start    int    `json:"start"`
}

// RoundRef is one entry of the shared round axis of a season trajectory.
type RoundRef struct {
	Round    int    `json:"round"`
	RaceID   int    `json:"raceId"`
	RaceName string `json:"raceName"`
}

// DriverTrajectory holds one standings position per round; nil marks rounds
// the driver has no standing for. A line generator must skip nil points
// without connecting across the gap.
type DriverTrajectory struct {
	DriverID   int    `json:"driverId"`
	DriverName string `json:"driverName"`
	Positions  []*int `json:"positions"`
}

// TrajectoryTier is a contiguous final-position range used for background
// highlighting (top / midfield / backmarkers).
type TrajectoryTier struct {
	Name   string `json:"name"`
	MinPos int    `json:"minPos"`
	MaxPos int    `json:"maxPos"`
}

type SeasonTrajectory struct {
	Year    int                `json:"year"`
	Rounds  []RoundRef         `json:"rounds"`
	Drivers []DriverTrajectory `json:"drivers"`
	Tiers   []TrajectoryTier   `json:"tiers,omitempty"`
}

// ConstructorYear aggregates points and wins of one constructor in one year.
type ConstructorYear struct {
	Year   int     `json:"year"`
	Points float64 `json:"points"`
	Wins   int     `json:"wins"`
}

type ConstructorSeries struct {
	ConstructorID int               `json:"constructorId"`
	Name          string            `json:"name"`
	YearsData     []ConstructorYear `json:"yearsData"`
}

// StackPoint is one year of a stacked layer; Y1-Y0 equals the constructor's
// own points that year, Y0 the cumulative sum of all prior constructors.
type StackPoint struct {
	Year float64 `json:"year"`
	Y0   float64 `json:"y0"`
	Y1   float64 `json:"y1"`
}

type StackedLayer struct {
	Key    int          `json:"key"`
	Points []StackPoint `json:"points"`
}

type ConstructorDominance struct {
	Constructors []ConstructorSeries `json:"constructors"`
	Stacked      []StackedLayer      `json:"stacked"`
}

// ConversionYear is the top-10 qualifier to top-10 finisher rate of one race.
type ConversionYear struct {
	Year int     `json:"year"`
	Rate float64 `json:"conversionRate"`
}

type CircuitConversion struct {
	CircuitID   int              `json:"circuitId"`
	CircuitName string           `json:"circuitName"`
	AverageRate float64          `json:"averageRate"`
	YearsData   []ConversionYear `json:"yearsData"`
}

// DNFCell is one cell of the dense years x constructors grid. Cells with zero
// starts still emit Rate 0, they are never omitted.
type DNFCell struct {
	ConstructorID   int                `json:"constructorId"`
	ConstructorName string             `json:"constructorName"`
	Year            int                `json:"year"`
	Rate            float64            `json:"rate"`
	DNF             int                `json:"dnf"`
	Total           int                `json:"total"`
	Reasons         map[string]int     `json:"reasons,omitempty"`
	ReasonShare     map[string]float64 `json:"reasonShare,omitempty"`
}

// DNFConstructor carries the display ordering key (average rate descending).
type DNFConstructor struct {
	ConstructorID int     `json:"constructorId"`
	Name          string  `json:"name"`
	AvgRate       float64 `json:"avgRate"`
}

type DNFHeatmap struct {
	Years        []int            `json:"years"`
	Constructors []DNFConstructor `json:"constructors"`
	Cells        []DNFCell        `json:"cells"`
}

// TreeNode is a sunburst hierarchy node. Leaves carry Value 1 (one podium);
// the aggregated value of an inner node is the sum of its children.
type TreeNode struct {
	Name     string      `json:"name"`
	Value    float64     `json:"value,omitempty"`
	Children []*TreeNode `json:"children,omitempty"`
}

// Total returns the leaf sum below the node (or its own value for a leaf).
func (n *TreeNode) Total() float64 {
	if len(n.Children) == 0 {
		return n.Value
	}
	sum := 0.0
	for _, c := range n.Children {
		sum += c.Total()
	}
	return sum
}

// SankeyNode is a flow graph node; Rank is the numeric suffix of Label and is
// the only valid ordering key (Q2 sorts before Q10).
type SankeyNode struct {
	Label string `json:"name"`
	Rank  int    `json:"rank"`
}

type SankeyLink struct {
	Source        string `json:"source"`
	Target        string `json:"target"`
	Value         int    `json:"value"`
	DriverID      int    `json:"driverId"`
	DriverName    string `json:"driverName"`
	ConstructorID int    `json:"constructorId"`
}

type SankeyGraph struct {
	Nodes []SankeyNode `json:"nodes"`
	Links []SankeyLink `json:"links"`
}

// LapPosition is one step of the lap to position step function.
type LapPosition struct {
	Lap      int `json:"lap"`
	Position int `json:"position"`
}

type PitStopMark struct {
	Lap      int `json:"lap"`
	Duration int `json:"duration"`
}

type DriverTrace struct {
	DriverID      int           `json:"driverId"`
	DriverName    string        `json:"driverName"`
	ConstructorID int           `json:"constructorId"`
	Laps          []LapPosition `json:"laps"`
	PitStops      []PitStopMark `json:"pitStops"`
}

// RaceReplay is the precomputed per-lap state of one race; a frame at any
// cursor is a slice of the sorted arrays, nothing is recomputed per frame.
type RaceReplay struct {
	RaceID  int           `json:"raceId"`
	MaxLap  int           `json:"maxLap"`
	Drivers []DriverTrace `json:"drivers"`
}

// Frame returns the replay state at a lap cursor: every trace truncated to
// the laps and stops at or before the cursor. The returned traces share the
// precomputed backing arrays, no per-frame copies are made.
func (r *RaceReplay) Frame(lap int) []DriverTrace {
	frame := make([]DriverTrace, 0, len(r.Drivers))
	for _, d := range r.Drivers {
		cut := d
		cut.Laps = prefixLaps(d.Laps, lap)
		cut.PitStops = prefixStops(d.PitStops, lap)
		frame = append(frame, cut)
	}
	return frame
}

func prefixLaps(laps []LapPosition, lap int) []LapPosition {
	n := 0
	for n < len(laps) && laps[n].Lap <= lap {
		n++
	}
	return laps[:n]
}

func prefixStops(stops []PitStopMark, lap int) []PitStopMark {
	n := 0
	for n < len(stops) && stops[n].Lap <= lap {
		n++
	}
	return stops[:n]
}

type DriverShare struct {
	DriverID   int     `json:"driverId"`
	Name       string  `json:"name"`
	Points     float64 `json:"points"`
	Percentage float64 `json:"percentage"`
}

// ConstructorShare lists each driver's points share within a constructor-year.
// Percentages sum to 100 whenever Total is positive.
type ConstructorShare struct {
	Year          int           `json:"year"`
	ConstructorID int           `json:"constructorId"`
	Total         float64       `json:"total"`
	Drivers       []DriverShare `json:"drivers"`
}

type DriverTrackStat struct {
	DriverID   int     `json:"driverId"`
	DriverName string  `json:"driverName"`
	Sum        float64 `json:"sum"`
	Count      int     `json:"count"`
	Avg        float64 `json:"avg"`
}

type TrackPerformance struct {
	CircuitID   int               `json:"circuitId"`
	CircuitName string            `json:"circuitName"`
	Metric      string            `json:"metric"`
	Performance []DriverTrackStat `json:"performance"`
}

type WinningMargin struct {
	RaceID   int     `json:"raceId"`
	Round    int     `json:"round"`
	RaceName string  `json:"raceName"`
	Margin   float64 `json:"winningMargin"`
	Winner   string  `json:"winner"`
	RunnerUp string  `json:"runnerUp"`
}

// QualifyingSegments carries the raw Q1/Q2/Q3 times of one session entry;
// empty strings mark segments the driver did not take part in.
type QualifyingSegments struct {
	Position int    `json:"position"`
	Q1       string `json:"q1,omitempty"`
	Q2       string `json:"q2,omitempty"`
	Q3       string `json:"q3,omitempty"`
}

// DriverRaceLog is the merged per-driver per-race detail record.
type DriverRaceLog struct {
	DriverID      int                 `json:"driverId"`
	DriverName    string              `json:"driverName"`
	RaceID        int                 `json:"raceId"`
	RaceName      string              `json:"raceName"`
	Year          int                 `json:"year"`
	Qualifying    *QualifyingSegments `json:"qualifying,omitempty"`
	Laps          []LapPosition       `json:"laps"`
	PitStops      []PitStopMark       `json:"pitStops"`
	FinalPosition int                 `json:"finalPosition,omitempty"`
	Points        float64             `json:"points"`
	Status        string              `json:"status,omitempty"`
}

// ConstructorOption feeds the constructor selector of the contributions view.
type ConstructorOption struct {
	ConstructorID int    `json:"constructorId"`
	Name          string `json:"name"`
}

// RaceOption feeds the race selector of the flow and replay views.
type RaceOption struct {
	RaceID int    `json:"raceId"`
	Round  int    `json:"round"`
	Label  string `json:"label"`
}
