package usecase

import (
	"context"
	"math"
	"time"

	"task-tracker/internal/task"
	repo "task-tracker/internal/task/repository"
)

// Stats aggregates completion ratios and pending time figures over every Task.
func (uc *implUseCase) Stats(ctx context.Context) (task.StatsOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats ListTasks: %v", err)
		return task.StatsOutput{}, err
	}

	return computeStats(tasks, uc.now()), nil
}

// computeStats is the pure part of Stats. All durations are in hours.
//
// Pending tasks contribute time elapsed since start and time remaining until end,
// each clamped at zero, and only when both times are after the Unix epoch.
// Finished tasks contribute end-start to the average without clamping.
func computeStats(tasks []task.Task, now time.Time) task.StatsOutput {
	out := task.StatsOutput{TotalTasks: len(tasks)}

	var completed, pending int
	var completionHours float64

	for _, t := range tasks {
		switch t.Status {
		case task.StatusFinished:
			completed++
			completionHours += hoursBetween(t.StartTime, t.EndTime)
		case task.StatusPending:
			pending++
			if !validInstant(t.StartTime) || !validInstant(t.EndTime) {
				continue
			}
			out.TimeLapsed += math.Max(0, hoursBetween(t.StartTime, now))
			out.BalanceTime += math.Max(0, hoursBetween(now, t.EndTime))
		}
	}

	if out.TotalTasks > 0 {
		out.CompletedPercentage = percentage(completed, out.TotalTasks)
		out.PendingPercentage = percentage(pending, out.TotalTasks)
	}
	if completed > 0 {
		out.AverageCompletionTime = completionHours / float64(completed)
	}

	return out
}

func hoursBetween(from, to time.Time) float64 {
	return to.Sub(from).Hours()
}

func percentage(part, total int) float64 {
	return float64(part) / float64(total) * 100
}

// validInstant rejects zero and pre-epoch timestamps.
func validInstant(t time.Time) bool {
	return !t.IsZero() && t.UnixMilli() > 0
}
