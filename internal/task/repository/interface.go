package repository

import (
	"context"

	"task-tracker/internal/task"
)

// Repository is the composed interface for the task data store.
type Repository interface {
	TaskRepository
	Ping(ctx context.Context) error
}

// TaskRepository defines all data access methods for the Task entity.
//
// Not-found is never an error: GetTask and UpdateTask return a zero-value
// Task (ID == ""), DeleteTask returns false.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (task.Task, error)
	GetTask(ctx context.Context, id string) (task.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]task.Task, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (task.Task, error)
	DeleteTask(ctx context.Context, id string) (bool, error)
}
