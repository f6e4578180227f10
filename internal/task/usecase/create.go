package usecase

import (
	"context"
	"fmt"
	"strings"

	"task-tracker/internal/task"
	repo "task-tracker/internal/task/repository"
)

// Create persists a new Task once every field is present.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	if missing := missingFields(input); len(missing) > 0 {
		return task.CreateOutput{}, fmt.Errorf("%w: %s", task.ErrMissingField, strings.Join(missing, ", "))
	}

	t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		Title:     input.Title,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Priority:  input.Priority,
		Status:    input.Status,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateOutput{}, err
	}

	return task.CreateOutput{Task: t}, nil
}
