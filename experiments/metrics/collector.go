package metrics

import (
	"time"
)

// SearchMetric describes one AI move decision: the configured search depth
// and what the tree build plus minimax pass actually did.
type SearchMetric struct {
	Depth    int
	Duration time.Duration
	Nodes    int // Tree nodes materialized
	Leaves   int // Nodes scored directly by the heuristic
	Cutoffs  int // Alpha/beta cuts taken
}

type MoveMetric struct {
	Step int
	Side string
	SearchMetric
}

type GameMetric struct {
	Winner     string // "dark", "light" or "tie"
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// AgentConfig identifies an agent in an experiment. Depth 0 marks the random
// baseline agent.
type AgentConfig struct {
	ID    int
	Depth int
}

type Collector interface {
	Start(depth int)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetric
}

// collector counts with plain ints: a single search runs on one goroutine.
type collector struct {
	depth     int
	startTime time.Time
	nodes     int
	leaves    int
	cutoffs   int
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(depth int) {
	c.startTime = time.Now()
	c.depth = depth
	c.nodes = 0
	c.leaves = 0
	c.cutoffs = 0
}

func (c *collector) AddNode() {
	c.nodes++
}

func (c *collector) AddLeaf() {
	c.leaves++
}

func (c *collector) AddCutoff() {
	c.cutoffs++
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:    c.depth,
		Duration: time.Since(c.startTime),
		Nodes:    c.nodes,
		Leaves:   c.leaves,
		Cutoffs:  c.cutoffs,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start(depth int)        {}
func (c *dummyCollector) AddNode()               {}
func (c *dummyCollector) AddLeaf()               {}
func (c *dummyCollector) AddCutoff()             {}
func (c *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
