package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines int
	Depth      int
	Duration   time.Duration
	Evaluated  int64 // Static evaluations at leaves
	Nodes      int64 // Expanded interior nodes
	Cutoffs    int64
	Stopped    string // Why the search stopped early, "none" when it ran to completion
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // "" on a draw or when the turn limit is reached
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector accumulates search telemetry. Implementations must be safe for concurrent use
// because root-parallel searches report from several goroutines.
type Collector interface {
	Start(goroutines, depth int)
	AddEvaluated(n int64)
	AddNodes(n int64)
	AddCutoffs(n int64)
	SetStopped(reason string)
	Complete() SearchMetric
}

type collector struct {
	goroutines int
	depth      int
	startTime  time.Time
	evaluated  atomic.Int64
	nodes      atomic.Int64
	cutoffs    atomic.Int64
	mu         sync.Mutex
	stopped    string
}

func NewCollector() Collector {
	return &collector{stopped: "none"}
}

func (m *collector) Start(goroutines, depth int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.depth = depth
	m.evaluated.Store(0)
	m.nodes.Store(0)
	m.cutoffs.Store(0)
	m.SetStopped("none")
}

func (m *collector) AddEvaluated(n int64) {
	m.evaluated.Add(n)
}

func (m *collector) AddNodes(n int64) {
	m.nodes.Add(n)
}

func (m *collector) AddCutoffs(n int64) {
	m.cutoffs.Add(n)
}

func (m *collector) SetStopped(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = reason
}

func (m *collector) Complete() SearchMetric {
	m.mu.Lock()
	stopped := m.stopped
	m.mu.Unlock()

	return SearchMetric{
		Goroutines: m.goroutines,
		Depth:      m.depth,
		Duration:   time.Since(m.startTime),
		Evaluated:  m.evaluated.Load(),
		Nodes:      m.nodes.Load(),
		Cutoffs:    m.cutoffs.Load(),
		Stopped:    stopped,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, depth int) {}
func (m *dummyCollector) AddEvaluated(n int64)        {}
func (m *dummyCollector) AddNodes(n int64)            {}
func (m *dummyCollector) AddCutoffs(n int64)          {}
func (m *dummyCollector) SetStopped(reason string)    {}
func (m *dummyCollector) Complete() SearchMetric      { return SearchMetric{} }
