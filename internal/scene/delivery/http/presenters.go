package http

import (
	"taskscape/internal/scene"
)

// --- Response DTOs ---

type nodeResp struct {
	TaskID     string        `json:"task_id"`
	Title      string        `json:"title"`
	Status     string        `json:"status"`
	ParentID   string        `json:"parent_id,omitempty"`
	Depth      int           `json:"depth"`
	Complexity float64       `json:"complexity"`
	Size       float64       `json:"size"`
	Color      scene.RGB     `json:"color"`
	Position   scene.Vector3 `json:"position"`
}

type sceneResp struct {
	RootID      string             `json:"root_id"`
	Nodes       []nodeResp         `json:"nodes"`
	Connections []scene.Connection `json:"connections"`
}

func newSceneResp(out scene.SceneOutput) sceneResp {
	nodes := make([]nodeResp, len(out.Nodes))
	for i, n := range out.Nodes {
		nodes[i] = nodeResp{
			TaskID:     n.TaskID,
			Title:      n.Title,
			Status:     string(n.Status),
			ParentID:   n.ParentID,
			Depth:      n.Depth,
			Complexity: n.Complexity,
			Size:       n.Size,
			Color:      n.Color,
			Position:   n.Position,
		}
	}
	return sceneResp{
		RootID:      out.RootID,
		Nodes:       nodes,
		Connections: out.Connections,
	}
}
