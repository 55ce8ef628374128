package decompose

import (
	"strings"

	"taskscape/internal/model"
)

// patternTriggers maps each pattern to its trigger substrings.
// The groups are disjoint on purpose; a description can still fire several
// patterns at once.
var patternTriggers = []struct {
	pattern  Pattern
	triggers []string
}{
	{PatternCoreComponents, []string{"implement", "develop", "create"}},
	{PatternFeatureBreakdown, []string{"feature", "functionality"}},
	{PatternOptimization, []string{"improve", "optimize"}},
}

// IdentifyPatterns scans the task description for known trigger words.
// A missing description yields no patterns, never an error.
func IdentifyPatterns(task *model.Task) []Pattern {
	if task == nil || task.Description == "" {
		return nil
	}

	lower := strings.ToLower(task.Description)

	var patterns []Pattern
	for _, group := range patternTriggers {
		for _, trigger := range group.triggers {
			if strings.Contains(lower, trigger) {
				patterns = append(patterns, group.pattern)
				break
			}
		}
	}
	return patterns
}

// ResolveStrategy picks a single strategy from the detected patterns.
// Precedence: core-components over feature-breakdown; optimization is an
// informational tag only and falls through to the phased default.
func ResolveStrategy(patterns []Pattern) Strategy {
	if hasPattern(patterns, PatternCoreComponents) {
		return StrategyCoreComponents
	}
	if hasPattern(patterns, PatternFeatureBreakdown) {
		return StrategyFeatureBreakdown
	}
	return StrategyPhased
}

func hasPattern(patterns []Pattern, want Pattern) bool {
	for _, p := range patterns {
		if p == want {
			return true
		}
	}
	return false
}
