package task

import "time"

// --- Task Domain Model ---

// Task is the single entity tracked by the service.
type Task struct {
	ID        string
	Title     string
	StartTime time.Time
	EndTime   time.Time
	Priority  string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// --- UseCase Inputs ---

type CreateInput struct {
	Title     string
	StartTime time.Time
	EndTime   time.Time
	Priority  string
	Status    string
}

// ListInput holds optional equality filters and a sort field.
// Empty fields impose no constraint.
type ListInput struct {
	Priority string
	Status   string
	SortBy   string
}

// UpdateInput carries the fields to change. Zero-valued fields keep their stored value.
type UpdateInput struct {
	ID        string
	Title     string
	StartTime time.Time
	EndTime   time.Time
	Priority  string
	Status    string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Task Task
}

type ListOutput struct {
	Tasks []Task
}

type DetailOutput struct {
	Task Task
}

type UpdateOutput struct {
	Task Task
}

// StatsOutput is the aggregate view over every stored task.
// Durations are expressed in hours.
type StatsOutput struct {
	TotalTasks            int
	CompletedPercentage   float64
	PendingPercentage     float64
	TimeLapsed            float64
	BalanceTime           float64
	AverageCompletionTime float64
}
