package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"task-tracker/internal/task"
	repo "task-tracker/internal/task/repository"
)

// CreateTask appends a new Task with a random UUID.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (task.Task, error) {
	now := r.now().UTC()
	t := task.Task{
		ID:        uuid.NewString(),
		Title:     opt.Title,
		StartTime: opt.StartTime,
		EndTime:   opt.EndTime,
		Priority:  opt.Priority,
		Status:    opt.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	r.mu.Lock()
	r.tasks = append(r.tasks, t)
	r.mu.Unlock()

	r.l.Debugf(ctx, "%s: created %s", r.dsn("CreateTask"), t.ID)
	return t, nil
}

// GetTask returns a zero-value Task when id is unknown.
func (r *implRepository) GetTask(ctx context.Context, id string) (task.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.tasks[i], nil
	}
	return task.Task{}, nil
}

// ListTasks filters by equality and sorts ascending by opt.SortBy.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]task.Task, error) {
	r.mu.RLock()
	out := make([]task.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if opt.Priority != "" && t.Priority != opt.Priority {
			continue
		}
		if opt.Status != "" && t.Status != opt.Status {
			continue
		}
		out = append(out, t)
	}
	r.mu.RUnlock()

	if opt.SortBy != "" {
		sort.SliceStable(out, func(i, j int) bool {
			return less(out[i], out[j], opt.SortBy)
		})
	}
	return out, nil
}

// UpdateTask replaces the user fields of an existing Task.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (task.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(opt.ID)
	if i < 0 {
		return task.Task{}, nil
	}

	t := &r.tasks[i]
	t.Title = opt.Title
	t.StartTime = opt.StartTime
	t.EndTime = opt.EndTime
	t.Priority = opt.Priority
	t.Status = opt.Status
	t.UpdatedAt = r.now().UTC()
	return *t, nil
}

// DeleteTask reports whether a Task was removed.
func (r *implRepository) DeleteTask(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
	return true, nil
}

// Ping always succeeds.
func (r *implRepository) Ping(ctx context.Context) error {
	return nil
}

// indexOf must be called with r.mu held.
func (r *implRepository) indexOf(id string) int {
	for i, t := range r.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func less(a, b task.Task, field string) bool {
	switch field {
	case task.SortByTitle:
		return strings.Compare(a.Title, b.Title) < 0
	case task.SortByStartTime:
		return a.StartTime.Before(b.StartTime)
	case task.SortByEndTime:
		return a.EndTime.Before(b.EndTime)
	case task.SortByPriority:
		return strings.Compare(a.Priority, b.Priority) < 0
	case task.SortByStatus:
		return strings.Compare(a.Status, b.Status) < 0
	case task.SortByCreatedAt:
		return a.CreatedAt.Before(b.CreatedAt)
	case task.SortByUpdatedAt:
		return a.UpdatedAt.Before(b.UpdatedAt)
	default:
		return false
	}
}
