package usecase

import (
	"context"
	"errors"

	"taskscape/internal/scene"
	"taskscape/internal/task/repository"
)

// Scene returns the renderable scene for the task tree rooted at taskID,
// building it on a cache miss.
func (uc *implUseCase) Scene(ctx context.Context, taskID string) (scene.SceneOutput, error) {
	if cached, ok := uc.cache.Get(taskID); ok {
		return cached, nil
	}

	snapshot, err := uc.repo.Get(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return scene.SceneOutput{}, scene.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.Scene Get: %v", err)
		return scene.SceneOutput{}, err
	}

	root, err := uc.builder.BuildTree(&snapshot)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Scene BuildTree: %v", err)
		return scene.SceneOutput{}, err
	}

	output := uc.assemble(root)
	uc.cache.Add(taskID, output)
	return output, nil
}

// assemble flattens the layout tree into scene nodes and collects the edge
// list once from the root, so every parent→child pair appears exactly once.
func (uc *implUseCase) assemble(root *scene.LayoutNode) scene.SceneOutput {
	var nodes []scene.SceneNode

	var walk func(n *scene.LayoutNode)
	walk = func(n *scene.LayoutNode) {
		nodes = append(nodes, scene.SceneNode{
			TaskID:     n.Task.ID,
			Title:      n.Task.Title,
			Status:     n.Task.Status,
			ParentID:   n.Task.ParentID,
			Depth:      n.Depth,
			Complexity: n.Complexity,
			Size:       n.Size,
			Color:      uc.builder.Color(n),
			Position:   n.Position,
		})
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(root)

	return scene.SceneOutput{
		RootID:      root.Task.ID,
		Nodes:       nodes,
		Connections: uc.builder.Connections(root),
	}
}
