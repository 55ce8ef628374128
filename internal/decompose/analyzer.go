package decompose

import (
	"math"
	"strings"

	"taskscape/internal/model"
)

// technicalKeywords are the verbs that mark a description as technical work.
// Each keyword counts once no matter how often it appears.
var technicalKeywords = []string{
	"implement", "develop", "create", "integrate", "optimize", "refactor", "test",
}

// AnalyzeComplexity estimates task scope for decomposition weighting.
// This is a recursive formula, distinct from the layout engine's per-node
// score: nested subtasks contribute half their own analyzed complexity and
// dependencies count at half weight. Result is always within [1, 10].
func AnalyzeComplexity(task *model.Task) float64 {
	if task == nil {
		return 1
	}

	complexity := 1.0
	if task.Description != "" {
		complexity += TextComplexity(task.Description)
	}
	if len(task.Subtasks) > 0 {
		complexity += float64(len(task.Subtasks))
		for _, sub := range task.Subtasks {
			complexity += 0.5 * AnalyzeComplexity(sub)
		}
	}
	complexity += 0.5 * float64(len(task.Dependencies))

	return clamp(1, 10, complexity)
}

// TextComplexity scores free text in [0, 5] from word count, sentence count,
// and technical keyword hits. This is a crude heuristic, not NLP.
func TextComplexity(text string) float64 {
	if text == "" {
		return 0
	}

	words := len(strings.Fields(text))
	sentences := len(splitSentences(text))

	hits := 0
	lower := strings.ToLower(text)
	for _, keyword := range technicalKeywords {
		if strings.Contains(lower, keyword) {
			hits++
		}
	}

	score := float64(words)/50 + float64(sentences)/5 + 0.5*float64(hits)
	return clamp(0, 5, score)
}

// splitSentences cuts text on ./!/? and drops empty segments.
func splitSentences(text string) []string {
	segments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	sentences := make([]string, 0, len(segments))
	for _, seg := range segments {
		if strings.TrimSpace(seg) != "" {
			sentences = append(sentences, strings.TrimSpace(seg))
		}
	}
	return sentences
}

func clamp(lo, hi, v float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
