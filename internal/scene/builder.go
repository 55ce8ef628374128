package scene

import (
	"math"

	"taskscape/internal/model"
)

const (
	// DefaultMaxDepth bounds tree construction; subtasks nested deeper are
	// present in the source but not laid out.
	DefaultMaxDepth = 5
	// DefaultMinNodeSize is the floor for rendered node size.
	DefaultMinNodeSize = 0.1

	// Root nodes are anchored at a fixed position above the ground plane.
	rootAnchorY = 2.0
	// Each level of children sits one half unit below its parent.
	levelDrop = 0.5
	// Sibling rings never shrink below this radius.
	minRingRadius = 0.5
	// Ring radius gained per sibling.
	radiusPerSibling = 0.2
)

// Builder converts a task tree into an annotated layout tree and derives
// per-node visual properties. Implementations are pure: the same input
// always yields the same tree and the source tasks are never mutated.
type Builder interface {
	// BuildTree lays out the whole tree rooted at task, anchored at the
	// root position (0, 2, 0).
	BuildTree(task *model.Task) (*LayoutNode, error)

	// Visualize derives the render bundle for one node. Its connection
	// list spans the node's whole subtree.
	Visualize(node *LayoutNode) NodeVisual

	// Color derives the node color from task status and complexity.
	Color(node *LayoutNode) RGB

	// ConnectionStrength weights a parent→child edge in [0.2, 1.0].
	ConnectionStrength(parent, child *LayoutNode) float64

	// Connections collects one Connection per parent→child edge in the
	// subtree rooted at node, parent edges before descendant edges.
	Connections(node *LayoutNode) []Connection
}

// BuilderConfig holds the layout constants.
type BuilderConfig struct {
	MaxDepth    int
	MinNodeSize float64
}

type builder struct {
	maxDepth    int
	minNodeSize float64
}

// NewBuilder creates a Builder, filling in defaults for zero config values.
func NewBuilder(cfg BuilderConfig) Builder {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	if cfg.MinNodeSize <= 0 {
		cfg.MinNodeSize = DefaultMinNodeSize
	}
	return &builder{
		maxDepth:    cfg.MaxDepth,
		minNodeSize: cfg.MinNodeSize,
	}
}

// BuildTree runs the two-pass construction: first the pure tree build, then
// a single top-down layout traversal from the anchored root.
func (b *builder) BuildTree(task *model.Task) (*LayoutNode, error) {
	if task == nil {
		return nil, ErrNilTask
	}

	root := b.buildNode(task, 0)
	root.Position = Vector3{X: 0, Y: rootAnchorY, Z: 0}
	b.layout(root)
	return root, nil
}

// buildNode constructs the subtree at the given depth, scoring complexity
// and size per node. Recursion stops at maxDepth: nodes at that depth keep
// no children even when the source task has subtasks.
func (b *builder) buildNode(task *model.Task, depth int) *LayoutNode {
	node := &LayoutNode{
		Task:       task,
		Depth:      depth,
		Complexity: scoreComplexity(task),
	}
	node.Size = b.nodeSize(depth, node.Complexity)

	if depth < b.maxDepth {
		for _, sub := range task.Subtasks {
			node.Children = append(node.Children, b.buildNode(sub, depth+1))
		}
	}
	return node
}

// layout places each node's children on a horizontal ring one half unit
// below it, evenly spaced in insertion order, then cascades downward.
// Child positions depend on the parent position, so the traversal is
// strictly top-down.
func (b *builder) layout(node *LayoutNode) {
	n := len(node.Children)
	if n == 0 {
		return
	}

	angleStep := 2 * math.Pi / float64(n)
	radius := math.Max(minRingRadius, float64(n)*radiusPerSibling)

	for i, child := range node.Children {
		angle := float64(i) * angleStep
		child.Position = Vector3{
			X: node.Position.X + math.Cos(angle)*radius,
			Y: node.Position.Y - levelDrop,
			Z: node.Position.Z + math.Sin(angle)*radius,
		}
		b.layout(child)
	}
}

// scoreComplexity estimates a task's scope from its text length and its
// immediate subtask count. Result is always within [1, 10].
func scoreComplexity(task *model.Task) float64 {
	score := 1.0
	if task.Description != "" {
		score += math.Min(5, float64(len(task.Description))/100)
	}
	score += float64(len(task.Subtasks))
	return clamp(1, 10, score)
}

// nodeSize decays geometrically with depth and scales mildly with
// complexity, floored at the configured minimum.
func (b *builder) nodeSize(depth int, complexity float64) float64 {
	size := math.Pow(0.8, float64(depth)) * (0.5 + complexity/20)
	return math.Max(b.minNodeSize, size)
}

func clamp(lo, hi, v float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
