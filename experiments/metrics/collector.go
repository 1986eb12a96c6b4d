package metrics

import (
	"time"
)

// SearchMetric summarizes one move decision.
type SearchMetric struct {
	Budget     time.Duration // Wall-clock allowance for the decision (0 in fixed-depth mode)
	Duration   time.Duration
	Moves      int // Legal moves at the root
	Nodes      int // Positions visited
	Pruned     int // Sibling moves skipped by alpha-beta cuts
	Depth      int // Deepest ply reached
	Cutoffs    int // Positions evaluated because the clock ran out
	ExtraTurns int // Positions reached through an extra turn
	Score      float64
}

type MoveMetric struct {
	Step      int
	Player    int // Player ID
	Pit       int
	ExtraTurn bool
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int // Player ID
	Winner         int // Player ID, 0 on a tie
	P1Score        int
	P2Score        int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Aborted        bool // Stopped at the turn limit or by resignation
}

// Collector gathers the statistics of a single decision. A collector is
// owned by one search call and is not safe for concurrent use.
type Collector interface {
	Start(budget time.Duration, moves int)
	AddNode(depth int)
	AddPruned(n int)
	AddCutoff()
	AddExtraTurn()
	Complete(score float64) SearchMetric
}

type collector struct {
	metric    SearchMetric
	startTime time.Time
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(budget time.Duration, moves int) {
	m.startTime = time.Now()
	m.metric = SearchMetric{Budget: budget, Moves: moves}
}

func (m *collector) AddNode(depth int) {
	m.metric.Nodes++
	m.metric.Depth = max(m.metric.Depth, depth)
}

func (m *collector) AddPruned(n int) {
	m.metric.Pruned += n
}

func (m *collector) AddCutoff() {
	m.metric.Cutoffs++
}

func (m *collector) AddExtraTurn() {
	m.metric.ExtraTurns++
}

func (m *collector) Complete(score float64) SearchMetric {
	m.metric.Duration = time.Since(m.startTime)
	m.metric.Score = score
	return m.metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(budget time.Duration, moves int) {}
func (m *dummyCollector) AddNode(depth int)                     {}
func (m *dummyCollector) AddPruned(n int)                       {}
func (m *dummyCollector) AddCutoff()                            {}
func (m *dummyCollector) AddExtraTurn()                         {}
func (m *dummyCollector) Complete(score float64) SearchMetric   { return SearchMetric{Score: score} }
