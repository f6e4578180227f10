package usecase

import (
	"time"

	"task-tracker/internal/task"
)

// coalesce returns newVal when set, otherwise the existing value.
func coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}

func coalesceTime(newVal, existing time.Time) time.Time {
	if !newVal.IsZero() {
		return newVal
	}
	return existing
}

// missingFields lists the JSON names of required fields that are empty.
func missingFields(in task.CreateInput) []string {
	var missing []string
	if in.Title == "" {
		missing = append(missing, "title")
	}
	if in.StartTime.IsZero() {
		missing = append(missing, "startTime")
	}
	if in.EndTime.IsZero() {
		missing = append(missing, "endTime")
	}
	if in.Priority == "" {
		missing = append(missing, "priority")
	}
	if in.Status == "" {
		missing = append(missing, "status")
	}
	return missing
}
