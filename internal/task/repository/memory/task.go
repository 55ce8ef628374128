package memory

import (
	"context"
	"time"

	"taskscape/internal/model"
	"taskscape/internal/task/repository"
)

// Get returns a deep snapshot of the task with subtasks resolved recursively.
func (r *Repository) Get(ctx context.Context, id string) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.tasks[id]; !ok {
		return model.Task{}, repository.ErrNotFound
	}
	return r.snapshot(id), nil
}

// snapshot builds a detached copy of the subtree rooted at id.
// Caller must hold at least the read lock.
func (r *Repository) snapshot(id string) model.Task {
	t := r.tasks[id]
	t.Dependencies = append([]string(nil), t.Dependencies...)

	childIDs := r.children[id]
	if len(childIDs) > 0 {
		t.Subtasks = make([]*model.Task, 0, len(childIDs))
		for _, childID := range childIDs {
			child := r.snapshot(childID)
			t.Subtasks = append(t.Subtasks, &child)
		}
	}
	return t
}

// List returns shallow tasks matching opt plus the total match count.
func (r *Repository) List(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := opt.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := opt.Offset
	if offset < 0 {
		offset = 0
	}

	matched := make([]model.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if opt.Status != "" && t.Status != opt.Status {
			continue
		}
		if opt.ParentID != "" && t.ParentID != opt.ParentID {
			continue
		}
		if opt.RootsOnly && t.ParentID != "" {
			continue
		}
		t.Dependencies = append([]string(nil), t.Dependencies...)
		matched = append(matched, t)
	}

	// Stable order: oldest first, ID as tiebreaker
	sortTasks(matched)

	total := len(matched)
	if offset >= total {
		return []model.Task{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

// Upsert creates or replaces a task after validating its parent link.
func (r *Repository) Upsert(ctx context.Context, opt repository.UpsertTaskOptions) (model.Task, error) {
	if opt.ID == "" {
		return model.Task{}, repository.ErrMissingID
	}

	r.mu.Lock()

	if opt.ParentID != "" {
		if _, ok := r.tasks[opt.ParentID]; !ok {
			r.mu.Unlock()
			return model.Task{}, repository.ErrParentNotFound
		}
		// Walk up from the proposed parent: finding the task itself means
		// the reparent would close a cycle and snapshot/removeSubtree would
		// never terminate.
		for ancestorID := opt.ParentID; ancestorID != ""; ancestorID = r.tasks[ancestorID].ParentID {
			if ancestorID == opt.ID {
				r.mu.Unlock()
				return model.Task{}, repository.ErrCycle
			}
		}
	}

	existing, exists := r.tasks[opt.ID]

	t := model.Task{
		ID:           opt.ID,
		Title:        opt.Title,
		Description:  opt.Description,
		Status:       opt.Status,
		ParentID:     opt.ParentID,
		Dependencies: append([]string(nil), opt.Dependencies...),
		CreatedAt:    time.Now(),
	}
	if exists {
		t.CreatedAt = existing.CreatedAt
	}

	r.tasks[opt.ID] = t

	// Maintain the ordered child index
	if exists && existing.ParentID != opt.ParentID {
		r.detachChild(existing.ParentID, opt.ID)
	}
	if !exists || existing.ParentID != opt.ParentID {
		r.children[opt.ParentID] = append(r.children[opt.ParentID], opt.ID)
	}

	r.mu.Unlock()

	eventType := model.TaskCreated
	if exists {
		eventType = model.TaskUpdated
	}
	r.publish(model.TaskEvent{
		Type:       eventType,
		TaskID:     opt.ID,
		ParentID:   opt.ParentID,
		OccurredAt: time.Now(),
	})

	snapshot := t
	snapshot.Dependencies = append([]string(nil), t.Dependencies...)
	return snapshot, nil
}

// Delete removes the task and its whole subtree.
func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()

	t, ok := r.tasks[id]
	if !ok {
		r.mu.Unlock()
		return repository.ErrNotFound
	}

	removed := r.removeSubtree(id)
	r.detachChild(t.ParentID, id)

	r.mu.Unlock()

	now := time.Now()
	for _, rm := range removed {
		r.publish(model.TaskEvent{
			Type:       model.TaskDeleted,
			TaskID:     rm.ID,
			ParentID:   rm.ParentID,
			OccurredAt: now,
		})
	}
	return nil
}

// removeSubtree deletes id and all descendants; returns the removed tasks.
// Caller must hold the write lock.
func (r *Repository) removeSubtree(id string) []model.Task {
	removed := []model.Task{r.tasks[id]}
	for _, childID := range r.children[id] {
		removed = append(removed, r.removeSubtree(childID)...)
	}
	delete(r.tasks, id)
	delete(r.children, id)
	return removed
}

// detachChild removes id from its parent's ordered child list.
// Caller must hold the write lock.
func (r *Repository) detachChild(parentID, id string) {
	ids := r.children[parentID]
	for i, childID := range ids {
		if childID == id {
			r.children[parentID] = append(ids[:i], ids[i+1:]...)
			return
		}
	}
}

// Subscribe registers a mutation listener. Slow subscribers drop events
// rather than blocking store writes.
func (r *Repository) Subscribe(buffer int) (<-chan model.TaskEvent, func()) {
	if buffer <= 0 {
		buffer = 16
	}

	r.subMu.Lock()
	id := r.nextSubID
	r.nextSubID++
	ch := make(chan model.TaskEvent, buffer)
	r.subscribers[id] = ch
	r.subMu.Unlock()

	cancel := func() {
		r.subMu.Lock()
		if sub, ok := r.subscribers[id]; ok {
			delete(r.subscribers, id)
			close(sub)
		}
		r.subMu.Unlock()
	}
	return ch, cancel
}

func (r *Repository) publish(event model.TaskEvent) {
	r.subMu.Lock()
	defer r.subMu.Unlock()

	for _, ch := range r.subscribers {
		select {
		case ch <- event:
		default:
			r.l.Warnf(context.Background(), "task event dropped for slow subscriber: %s %s", event.Type, event.TaskID)
		}
	}
}
