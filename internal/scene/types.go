package scene

import "taskscape/internal/model"

// Vector3 is a 3D coordinate.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// RGB is a color with 0-255 channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// LayoutNode is an ephemeral tree node pairing a source task with computed
// depth, position, size, and complexity. Trees are rebuilt on every request
// and hold no state across calls.
type LayoutNode struct {
	Task       *model.Task
	Depth      int
	Children   []*LayoutNode
	Complexity float64 // Always within [1, 10]
	Position   Vector3
	Size       float64
}

// Connection is a rendered parent→child edge with a strength weight in [0.2, 1.0].
type Connection struct {
	From     Vector3 `json:"from"`
	To       Vector3 `json:"to"`
	Strength float64 `json:"strength"`
}

// NodeVisual bundles everything the renderer needs for one node.
// Connections covers the whole subtree rooted at the node, not just its
// direct edges: callers assembling a full scene must collect from the root
// once instead of concatenating per-node results.
type NodeVisual struct {
	Size        float64      `json:"size"`
	Color       RGB          `json:"color"`
	Position    Vector3      `json:"position"`
	Connections []Connection `json:"connections"`
}

// --- UseCase types ---

// SceneNode is one laid-out task in a renderable scene.
type SceneNode struct {
	TaskID     string
	Title      string
	Status     model.TaskStatus
	ParentID   string
	Depth      int
	Complexity float64
	Size       float64
	Color      RGB
	Position   Vector3
}

// SceneOutput is a complete renderable scene for one task tree.
// Connections holds exactly one entry per parent→child edge.
type SceneOutput struct {
	RootID      string
	Nodes       []SceneNode
	Connections []Connection
}
