package http

import (
	"taskscape/internal/decompose"
	"taskscape/internal/model"
	"taskscape/pkg/response"
)

// --- Response DTOs ---

type analysisResp struct {
	Complexity float64  `json:"complexity"`
	Patterns   []string `json:"patterns,omitempty"`
	Strategy   string   `json:"strategy"`
}

func newAnalysisResp(a decompose.Analysis) analysisResp {
	patterns := make([]string, len(a.Patterns))
	for i, p := range a.Patterns {
		patterns[i] = string(p)
	}
	return analysisResp{
		Complexity: a.Complexity,
		Patterns:   patterns,
		Strategy:   string(a.Strategy),
	}
}

type stubResp struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      string            `json:"status"`
	ParentID    string            `json:"parent_id"`
	Weight      float64           `json:"weight"`
	Complexity  float64           `json:"complexity"`
	CreatedAt   response.DateTime `json:"created_at"`
}

func newStubResp(s decompose.Stub) stubResp {
	return stubResp{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Status:      string(s.Status),
		ParentID:    s.ParentID,
		Weight:      s.Weight,
		Complexity:  s.Complexity,
		CreatedAt:   response.DateTime(s.CreatedAt),
	}
}

type suggestResp struct {
	Analysis analysisResp `json:"analysis"`
	Stubs    []stubResp   `json:"stubs"`
}

func newSuggestResp(out decompose.SuggestOutput) suggestResp {
	stubs := make([]stubResp, len(out.Stubs))
	for i, s := range out.Stubs {
		stubs[i] = newStubResp(s)
	}
	return suggestResp{
		Analysis: newAnalysisResp(out.Analysis),
		Stubs:    stubs,
	}
}

type taskResp struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Status      string            `json:"status"`
	ParentID    string            `json:"parent_id,omitempty"`
	CreatedAt   response.DateTime `json:"created_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		ParentID:    t.ParentID,
		CreatedAt:   response.DateTime(t.CreatedAt),
	}
}

type applyResp struct {
	Analysis analysisResp `json:"analysis"`
	Tasks    []taskResp   `json:"tasks"`
}

func newApplyResp(out decompose.ApplyOutput) applyResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return applyResp{
		Analysis: newAnalysisResp(out.Analysis),
		Tasks:    tasks,
	}
}
