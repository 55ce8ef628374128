package decompose

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskscape/internal/model"
)

const (
	minPhases = 2
	maxPhases = 5
)

// corePlan is the fixed breakdown used for build-oriented tasks.
var corePlan = []struct {
	title  string
	weight float64
}{
	{"Research & Planning", 0.2},
	{"Core Implementation", 0.4},
	{"Testing & Validation", 0.2},
	{"Documentation", 0.2},
}

// featurePhrase pulls the object of a build verb out of one sentence.
var featurePhrase = regexp.MustCompile(`(?i)(?:implement|add|create|develop)\s+(.+)`)

// Analyze scores the task and resolves its decomposition strategy.
func Analyze(task *model.Task) Analysis {
	patterns := IdentifyPatterns(task)
	return Analysis{
		Complexity: AnalyzeComplexity(task),
		Patterns:   patterns,
		Strategy:   ResolveStrategy(patterns),
	}
}

// Suggest emits subtask stubs for the task according to its resolved
// strategy. Stub complexities are proportional shares of the parent's
// analyzed complexity, so they sum back to it. The input is never mutated.
func Suggest(task *model.Task) ([]Stub, Analysis, error) {
	if task == nil {
		return nil, Analysis{}, ErrNilTask
	}

	analysis := Analyze(task)

	var stubs []Stub
	switch analysis.Strategy {
	case StrategyCoreComponents:
		for _, part := range corePlan {
			stubs = append(stubs, newStub(task, analysis.Complexity, part.title, part.weight))
		}
	case StrategyFeatureBreakdown:
		features := extractFeatures(task.Description)
		weight := 1 / float64(len(features))
		for _, feature := range features {
			stubs = append(stubs, newStub(task, analysis.Complexity, feature, weight))
		}
	default:
		phases := clampInt(minPhases, maxPhases, int(math.Ceil(analysis.Complexity/2)))
		weight := 1 / float64(phases)
		for i := 1; i <= phases; i++ {
			stubs = append(stubs, newStub(task, analysis.Complexity, fmt.Sprintf("Phase %d", i), weight))
		}
	}

	return stubs, analysis, nil
}

// extractFeatures scans each sentence for a build-verb phrase.
// A description that names no feature still yields one generic entry.
func extractFeatures(description string) []string {
	var features []string
	for _, sentence := range splitSentences(description) {
		if match := featurePhrase.FindStringSubmatch(sentence); match != nil {
			if phrase := strings.TrimSpace(match[1]); phrase != "" {
				features = append(features, phrase)
			}
		}
	}
	if len(features) == 0 {
		features = []string{"Core Feature"}
	}
	return features
}

func newStub(parent *model.Task, parentComplexity float64, title string, weight float64) Stub {
	return Stub{
		ID:          uuid.New().String(),
		Title:       title,
		Description: "Part of: " + parent.Title,
		Status:      model.StatusNotStarted,
		ParentID:    parent.ID,
		Weight:      weight,
		Complexity:  parentComplexity * weight,
		CreatedAt:   time.Now(),
	}
}

func clampInt(lo, hi, v int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
