package insights

import (
	"sort"
	"time"
)

const DefaultMaxInsights = 5

// Engine runs every registered detector against one snapshot and merges the
// results: non-nil insights only, stable-sorted by priority (1 first),
// dismissed IDs filtered out, capped at maxInsights.
type Engine struct {
	detectors   []Detector
	maxInsights int
}

func NewEngine(thresholds Thresholds, maxInsights int) *Engine {
	if maxInsights <= 0 {
		maxInsights = DefaultMaxInsights
	}
	return &Engine{
		detectors:   Registry(thresholds),
		maxInsights: maxInsights,
	}
}

func (e *Engine) Generate(snap Snapshot, dismissed map[string]time.Time) []Insight {
	collected := make([]Insight, 0, len(e.detectors))
	for _, detector := range e.detectors {
		if insight := detector.Evaluate(snap); insight != nil {
			collected = append(collected, *insight)
		}
	}

	sort.SliceStable(collected, func(i, j int) bool {
		return collected[i].Priority < collected[j].Priority
	})

	// dismissed insights are dropped before capping so the user always gets
	// up to maxInsights fresh ones
	result := make([]Insight, 0, e.maxInsights)
	for _, insight := range collected {
		if _, ok := dismissed[insight.ID]; ok {
			continue
		}
		result = append(result, insight)
		if len(result) == e.maxInsights {
			break
		}
	}
	return result
}
