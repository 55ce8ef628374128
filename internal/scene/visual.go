package scene

import (
	"math"

	"taskscape/internal/model"
)

// statusPalette maps task status to its base color.
// Unknown statuses render as Not Started gray.
var statusPalette = map[model.TaskStatus]RGB{
	model.StatusNotStarted: {R: 156, G: 163, B: 175}, // gray
	model.StatusInProgress: {R: 99, G: 102, B: 241},  // indigo
	model.StatusCompleted:  {R: 34, G: 197, B: 94},   // green
	model.StatusBlocked:    {R: 239, G: 68, B: 68},   // red
}

// Color scales the status base color by a complexity-driven intensity.
func (b *builder) Color(node *LayoutNode) RGB {
	base, ok := statusPalette[node.Task.Status]
	if !ok {
		base = statusPalette[model.StatusNotStarted]
	}

	intensity := 0.5 + node.Complexity/20
	return RGB{
		R: scaleChannel(base.R, intensity),
		G: scaleChannel(base.G, intensity),
		B: scaleChannel(base.B, intensity),
	}
}

func scaleChannel(c uint8, intensity float64) uint8 {
	return uint8(math.Min(255, math.Round(float64(c)*intensity)))
}

// ConnectionStrength weights an edge by its depth and the complexity of
// both endpoints: shallower, higher-complexity pairs render stronger.
func (b *builder) ConnectionStrength(parent, child *LayoutNode) float64 {
	depthFactor := 1 - float64(child.Depth)/float64(b.maxDepth)
	strength := depthFactor * (parent.Complexity + child.Complexity) / 20
	return clamp(0.2, 1.0, strength)
}

// Connections walks the subtree depth-first: each node's edge to a child is
// emitted before that child's own edges, children in stored order.
func (b *builder) Connections(node *LayoutNode) []Connection {
	var connections []Connection

	var walk func(parent *LayoutNode)
	walk = func(parent *LayoutNode) {
		for _, child := range parent.Children {
			connections = append(connections, Connection{
				From:     parent.Position,
				To:       child.Position,
				Strength: b.ConnectionStrength(parent, child),
			})
			walk(child)
		}
	}
	walk(node)

	return connections
}

// Visualize bundles the derived render values for one node.
func (b *builder) Visualize(node *LayoutNode) NodeVisual {
	return NodeVisual{
		Size:        node.Size,
		Color:       b.Color(node),
		Position:    node.Position,
		Connections: b.Connections(node),
	}
}
