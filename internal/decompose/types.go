package decompose

import (
	"time"

	"taskscape/internal/model"
)

// Pattern is a tag detected in a task description.
type Pattern string

const (
	// PatternCoreComponents fires on build-oriented language
	// (implement / develop / create).
	PatternCoreComponents Pattern = "core-components"
	// PatternFeatureBreakdown fires on feature-oriented language.
	PatternFeatureBreakdown Pattern = "feature-breakdown"
	// PatternOptimization fires on improvement language. It is
	// informational only: no strategy branches on it.
	PatternOptimization Pattern = "optimization"
)

// Strategy is the resolved decomposition rule.
type Strategy string

const (
	StrategyCoreComponents   Strategy = "core-components"
	StrategyFeatureBreakdown Strategy = "feature-breakdown"
	StrategyPhased           Strategy = "phased" // default fallback
)

// Analysis is the advisor's read of a single task.
type Analysis struct {
	Complexity float64 // Within [1, 10]
	Patterns   []Pattern
	Strategy   Strategy
}

// Stub is a suggested subtask. It is a proposal only: the caller decides
// whether to persist it.
type Stub struct {
	ID          string
	Title       string
	Description string
	Status      model.TaskStatus
	ParentID    string
	Weight      float64 // Share of the parent's complexity
	Complexity  float64 // Parent complexity × Weight
	CreatedAt   time.Time
}

// --- UseCase types ---

// SuggestOutput carries the advisor result for one task.
type SuggestOutput struct {
	Analysis Analysis
	Stubs    []Stub
}

// ApplyOutput is the result of persisting suggested stubs.
type ApplyOutput struct {
	Analysis Analysis
	Tasks    []model.Task
}
