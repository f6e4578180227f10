package repository

import "time"

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	Title     string
	StartTime time.Time
	EndTime   time.Time
	Priority  string
	Status    string
}

// ListTasksOptions holds equality filters and the sort key for listing Tasks.
// Empty filters are ignored; an empty SortBy lists in store order.
// SortBy uses the task package field names (task.SortByStartTime, ...).
type ListTasksOptions struct {
	Priority string
	Status   string
	SortBy   string
}

// UpdateTaskOptions replaces every user field of the Task with the given ID.
type UpdateTaskOptions struct {
	ID        string
	Title     string
	StartTime time.Time
	EndTime   time.Time
	Priority  string
	Status    string
}
