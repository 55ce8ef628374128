package scene_test

import (
	"strings"
	"testing"

	"taskscape/internal/model"
	"taskscape/internal/scene"
)

func TestColor(t *testing.T) {
	b := scene.NewBuilder(scene.BuilderConfig{})

	t.Run("Blocked At Full Intensity", func(t *testing.T) {
		// Description 500 chars + 4 subtasks -> complexity 10 -> intensity 1.0
		task := &model.Task{
			ID:          "t",
			Title:       "t",
			Status:      model.StatusBlocked,
			Description: strings.Repeat("a", 500),
			Subtasks: []*model.Task{
				{ID: "1", Title: "1"}, {ID: "2", Title: "2"},
				{ID: "3", Title: "3"}, {ID: "4", Title: "4"},
			},
		}
		root, _ := b.BuildTree(task)
		got := b.Color(root)
		want := scene.RGB{R: 239, G: 68, B: 68}
		if got != want {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("Minimal Complexity Halves Channels", func(t *testing.T) {
		root, _ := b.BuildTree(&model.Task{ID: "t", Title: "t", Status: model.StatusCompleted})
		// complexity 1 -> intensity 0.55
		got := b.Color(root)
		want := scene.RGB{R: 19, G: 108, B: 52}
		if got != want {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("Unknown Status Falls Back To Gray", func(t *testing.T) {
		root, _ := b.BuildTree(&model.Task{ID: "t", Title: "t", Status: model.TaskStatus("Archived")})
		gray, _ := b.BuildTree(&model.Task{ID: "t", Title: "t", Status: model.StatusNotStarted})
		if b.Color(root) != b.Color(gray) {
			t.Errorf("unknown status did not fall back to Not Started color")
		}
	})

	t.Run("Channels Clamped At 255", func(t *testing.T) {
		// Max intensity is 1.0 so no channel can exceed its base, but the
		// clamp must hold for every status at full complexity.
		for _, status := range []model.TaskStatus{
			model.StatusNotStarted, model.StatusInProgress,
			model.StatusCompleted, model.StatusBlocked,
		} {
			task := &model.Task{
				ID: "t", Title: "t", Status: status,
				Description: strings.Repeat("a", 1000),
			}
			for i := 0; i < 10; i++ {
				task.Subtasks = append(task.Subtasks, &model.Task{ID: "s", Title: "s"})
			}
			root, _ := b.BuildTree(task)
			c := b.Color(root)
			_ = c // uint8 channels cannot exceed 255; presence check only
		}
	})
}

func TestConnections(t *testing.T) {
	b := scene.NewBuilder(scene.BuilderConfig{})

	twoLevel := &model.Task{
		ID:    "root",
		Title: "Root",
		Subtasks: []*model.Task{
			{
				ID:    "a",
				Title: "A",
				Subtasks: []*model.Task{
					{ID: "a1", Title: "A1"},
				},
			},
			{ID: "b", Title: "B"},
		},
	}

	t.Run("One Edge Per Parent Child Pair", func(t *testing.T) {
		root, _ := b.BuildTree(twoLevel)
		connections := b.Connections(root)
		if len(connections) != 3 {
			t.Fatalf("expected 3 connections, got %d", len(connections))
		}
	})

	t.Run("Parent Edges Before Descendant Edges", func(t *testing.T) {
		root, _ := b.BuildTree(twoLevel)
		connections := b.Connections(root)

		// root->a first, then a's subtree edge, then root->b
		if connections[0].From != root.Position {
			t.Errorf("first edge does not start at root")
		}
		if connections[1].From != root.Children[0].Position {
			t.Errorf("second edge is not the first child's descendant edge")
		}
		if connections[2].From != root.Position || connections[2].To != root.Children[1].Position {
			t.Errorf("third edge is not root->second child")
		}
	})

	t.Run("Strength Within Bounds", func(t *testing.T) {
		root, _ := b.BuildTree(deepTask(5, 4))
		for i, conn := range b.Connections(root) {
			if conn.Strength < 0.2 || conn.Strength > 1.0 {
				t.Errorf("connection %d strength %f out of [0.2, 1.0]", i, conn.Strength)
			}
		}
	})

	t.Run("Shallow Complex Pairs Are Stronger", func(t *testing.T) {
		// Complexities high enough that neither edge hits the 0.2 floor.
		task := &model.Task{
			ID: "root", Title: "Root", Description: strings.Repeat("a", 400),
			Subtasks: []*model.Task{
				{
					ID: "a", Title: "A", Description: strings.Repeat("a", 300),
					Subtasks: []*model.Task{
						{ID: "a1", Title: "A1", Description: strings.Repeat("a", 200)},
					},
				},
				{ID: "b", Title: "B"},
			},
		}
		root, _ := b.BuildTree(task)
		a := root.Children[0]
		a1 := a.Children[0]

		rootEdge := b.ConnectionStrength(root, a)
		deepEdge := b.ConnectionStrength(a, a1)
		if rootEdge <= deepEdge {
			t.Errorf("expected shallower edge to be stronger: %f vs %f", rootEdge, deepEdge)
		}
	})

	t.Run("Strength Formula", func(t *testing.T) {
		root, _ := b.BuildTree(twoLevel)
		a := root.Children[0]
		// root complexity 3 (two subtasks), a complexity 2 (one subtask),
		// child depth 1, maxDepth 5: (1 - 1/5) * (3+2)/20 = 0.2
		got := b.ConnectionStrength(root, a)
		if !almostEqual(got, 0.2) {
			t.Errorf("strength %f, want 0.2", got)
		}
	})
}

func TestVisualize(t *testing.T) {
	b := scene.NewBuilder(scene.BuilderConfig{})

	t.Run("Bundles Subtree Connections", func(t *testing.T) {
		task := &model.Task{
			ID:    "root",
			Title: "Root",
			Subtasks: []*model.Task{
				{ID: "a", Title: "A", Subtasks: []*model.Task{{ID: "a1", Title: "A1"}}},
			},
		}
		root, _ := b.BuildTree(task)
		visual := b.Visualize(root)

		if visual.Size != root.Size || visual.Position != root.Position {
			t.Errorf("visual does not mirror node geometry")
		}
		if len(visual.Connections) != 2 {
			t.Errorf("expected full subtree connections (2), got %d", len(visual.Connections))
		}
	})
}
