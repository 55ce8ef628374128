package http

import (
	"taskscape/internal/model"
	"taskscape/internal/task"
	"taskscape/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title        string   `json:"title"        binding:"required,min=1,max=255"`
	Description  string   `json:"description"  binding:"max=2000"`
	Status       string   `json:"status"       binding:"omitempty"`
	ParentID     string   `json:"parent_id"    binding:"omitempty"`
	Dependencies []string `json:"dependencies" binding:"omitempty"`
}

func (r createReq) toInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		Title:        r.Title,
		Description:  r.Description,
		Status:       r.Status,
		ParentID:     r.ParentID,
		Dependencies: r.Dependencies,
	}
}

// ---

type listReq struct {
	Status    string `form:"status"`
	ParentID  string `form:"parent_id"`
	RootsOnly bool   `form:"roots_only"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

func (r listReq) toInput() task.ListTasksInput {
	return task.ListTasksInput{
		Status:    r.Status,
		ParentID:  r.ParentID,
		RootsOnly: r.RootsOnly,
		Limit:     r.Limit,
		Offset:    r.Offset,
	}
}

// ---

type updateReq struct {
	ID           string   `json:"-"` // populated from URI param
	Title        string   `json:"title"        binding:"omitempty,min=1,max=255"`
	Description  string   `json:"description"  binding:"omitempty,max=2000"`
	Status       string   `json:"status"       binding:"omitempty"`
	ParentID     string   `json:"parent_id"    binding:"omitempty"`
	Dependencies []string `json:"dependencies" binding:"omitempty"`
}

func (r updateReq) toInput() task.UpdateTaskInput {
	return task.UpdateTaskInput{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		Status:       r.Status,
		ParentID:     r.ParentID,
		Dependencies: r.Dependencies,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description,omitempty"`
	Status       string            `json:"status"`
	ParentID     string            `json:"parent_id,omitempty"`
	Dependencies []string          `json:"dependencies,omitempty"`
	Subtasks     []taskResp        `json:"subtasks,omitempty"`
	CreatedAt    response.DateTime `json:"created_at"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		Status:       string(t.Status),
		ParentID:     t.ParentID,
		Dependencies: t.Dependencies,
		CreatedAt:    response.DateTime(t.CreatedAt),
	}
	for _, sub := range t.Subtasks {
		resp.Subtasks = append(resp.Subtasks, newTaskResp(*sub))
	}
	return resp
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateTaskOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListTasksOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.DetailTaskOutput) detailResp {
	return detailResp{Task: newTaskResp(out.Task)}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateTaskOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}
