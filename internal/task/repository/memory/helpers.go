package memory

import (
	"sort"

	"taskscape/internal/model"
)

// sortTasks orders tasks oldest-first, with ID as a deterministic tiebreaker.
func sortTasks(tasks []model.Task) {
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].ID < tasks[j].ID
		}
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})
}
