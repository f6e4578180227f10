package postgre

import (
	"fmt"
	"strings"

	"task-tracker/internal/task"
	repo "task-tracker/internal/task/repository"
)

// sortColumns maps task sort keys to column names. Only these are ever
// interpolated into ORDER BY.
var sortColumns = map[string]string{
	task.SortByTitle:     "title",
	task.SortByStartTime: "start_time",
	task.SortByEndTime:   "end_time",
	task.SortByPriority:  "priority",
	task.SortByStatus:    "status",
	task.SortByCreatedAt: "created_at",
	task.SortByUpdatedAt: "updated_at",
}

// buildListQuery builds the WHERE + ORDER BY clause for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any
	idx := 1

	// Filters
	if opt.Priority != "" {
		conditions = append(conditions, fmt.Sprintf("priority = $%d", idx))
		args = append(args, opt.Priority)
		idx++
	}
	if opt.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", idx))
		args = append(args, opt.Status)
	}

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	// Sorting
	if col, ok := sortColumns[opt.SortBy]; ok {
		parts = append(parts, fmt.Sprintf("ORDER BY %s ASC, created_at ASC", col))
	}

	return strings.Join(parts, " "), args
}
