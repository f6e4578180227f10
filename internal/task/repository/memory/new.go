package memory

import (
	"fmt"
	"sync"
	"time"

	"task-tracker/internal/task"
	"task-tracker/internal/task/repository"
	"task-tracker/pkg/log"
)

type implRepository struct {
	mu    sync.RWMutex
	tasks []task.Task
	l     log.Logger
	now   func() time.Time
}

// New creates an in-process Repository. Contents are lost when the process exits.
func New(l log.Logger) repository.Repository {
	return &implRepository{l: l, now: time.Now}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/memory.%s", method)
}
