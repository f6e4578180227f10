package usecase

import (
	"context"
	"fmt"

	"task-tracker/internal/task"
	repo "task-tracker/internal/task/repository"
)

// List returns every Task matching the filters, sorted ascending.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	sortBy := input.SortBy
	if sortBy == "" {
		sortBy = task.DefaultSortBy
	}
	if !task.IsSortable(sortBy) {
		return task.ListOutput{}, fmt.Errorf("%w: %q", task.ErrInvalidSortField, sortBy)
	}

	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		Priority: input.Priority,
		Status:   input.Status,
		SortBy:   sortBy,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{Tasks: tasks}, nil
}
