package usecase

import (
	"math"
	"testing"
	"time"

	"task-tracker/internal/task"
)

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	base := time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)

	t.Run("Mixed Statuses", func(t *testing.T) {
		tasks := []task.Task{
			{Status: task.StatusFinished, StartTime: base, EndTime: base.Add(2 * time.Hour)},
			{Status: task.StatusPending, StartTime: now.Add(-time.Hour), EndTime: now.Add(3 * time.Hour)},
			{Status: task.StatusCancelled, StartTime: base, EndTime: base.Add(time.Hour)},
		}

		got := computeStats(tasks, now)

		if got.TotalTasks != 3 {
			t.Errorf("expected 3 total tasks, got %d", got.TotalTasks)
		}
		if !approxEqual(got.CompletedPercentage, 100.0/3) {
			t.Errorf("expected completed 33.33%%, got %v", got.CompletedPercentage)
		}
		if !approxEqual(got.PendingPercentage, 100.0/3) {
			t.Errorf("expected pending 33.33%%, got %v", got.PendingPercentage)
		}
		if !approxEqual(got.TimeLapsed, 1) {
			t.Errorf("expected timeLapsed 1, got %v", got.TimeLapsed)
		}
		if !approxEqual(got.BalanceTime, 3) {
			t.Errorf("expected balanceTime 3, got %v", got.BalanceTime)
		}
		if !approxEqual(got.AverageCompletionTime, 2) {
			t.Errorf("expected averageCompletionTime 2, got %v", got.AverageCompletionTime)
		}
	})

	t.Run("No Tasks", func(t *testing.T) {
		got := computeStats(nil, now)
		if got != (task.StatsOutput{}) {
			t.Errorf("expected all zero stats, got %+v", got)
		}
	})

	t.Run("Pending With Inverted Window", func(t *testing.T) {
		tasks := []task.Task{
			{Status: task.StatusPending, StartTime: now.Add(-2 * time.Hour), EndTime: now.Add(-5 * time.Hour)},
		}
		got := computeStats(tasks, now)
		if got.BalanceTime != 0 {
			t.Errorf("expected balanceTime clamped to 0, got %v", got.BalanceTime)
		}
		if !approxEqual(got.TimeLapsed, 2) {
			t.Errorf("expected timeLapsed 2, got %v", got.TimeLapsed)
		}
	})

	t.Run("Pending Not Started Yet", func(t *testing.T) {
		tasks := []task.Task{
			{Status: task.StatusPending, StartTime: now.Add(time.Hour), EndTime: now.Add(4 * time.Hour)},
		}
		got := computeStats(tasks, now)
		if got.TimeLapsed != 0 {
			t.Errorf("expected timeLapsed clamped to 0, got %v", got.TimeLapsed)
		}
		if !approxEqual(got.BalanceTime, 4) {
			t.Errorf("expected balanceTime 4, got %v", got.BalanceTime)
		}
	})

	t.Run("Pending With Invalid Times Is Skipped", func(t *testing.T) {
		tasks := []task.Task{
			{Status: task.StatusPending, StartTime: time.Time{}, EndTime: now.Add(time.Hour)},
			{Status: task.StatusPending, StartTime: time.Unix(0, 0), EndTime: now.Add(time.Hour)},
			{Status: task.StatusPending, StartTime: now.Add(-time.Hour), EndTime: time.Unix(-3600, 0)},
		}
		got := computeStats(tasks, now)
		if got.TimeLapsed != 0 || got.BalanceTime != 0 {
			t.Errorf("expected invalid windows to be skipped, got lapsed=%v balance=%v", got.TimeLapsed, got.BalanceTime)
		}
		if !approxEqual(got.PendingPercentage, 100) {
			t.Errorf("skipped tasks still count as pending, got %v", got.PendingPercentage)
		}
	})

	t.Run("Pending Sums Across Tasks", func(t *testing.T) {
		tasks := []task.Task{
			{Status: task.StatusPending, StartTime: now.Add(-time.Hour), EndTime: now.Add(time.Hour)},
			{Status: task.StatusPending, StartTime: now.Add(-90 * time.Minute), EndTime: now.Add(30 * time.Minute)},
		}
		got := computeStats(tasks, now)
		if !approxEqual(got.TimeLapsed, 2.5) {
			t.Errorf("expected timeLapsed 2.5, got %v", got.TimeLapsed)
		}
		if !approxEqual(got.BalanceTime, 1.5) {
			t.Errorf("expected balanceTime 1.5, got %v", got.BalanceTime)
		}
	})

	t.Run("Negative Completion Keeps Sign", func(t *testing.T) {
		tasks := []task.Task{
			{Status: task.StatusFinished, StartTime: base.Add(3 * time.Hour), EndTime: base},
			{Status: task.StatusFinished, StartTime: base, EndTime: base.Add(time.Hour)},
		}
		got := computeStats(tasks, now)
		if !approxEqual(got.AverageCompletionTime, -1) {
			t.Errorf("expected averageCompletionTime -1, got %v", got.AverageCompletionTime)
		}
		if !approxEqual(got.CompletedPercentage, 100) {
			t.Errorf("expected completed 100%%, got %v", got.CompletedPercentage)
		}
	})

	t.Run("Status Match Is Exact", func(t *testing.T) {
		tasks := []task.Task{
			{Status: "finished", StartTime: base, EndTime: base.Add(time.Hour)},
			{Status: "pending", StartTime: now.Add(-time.Hour), EndTime: now.Add(time.Hour)},
		}
		got := computeStats(tasks, now)
		if got.CompletedPercentage != 0 || got.PendingPercentage != 0 {
			t.Errorf("expected case-sensitive match, got %+v", got)
		}
		if got.TotalTasks != 2 {
			t.Errorf("expected 2 total tasks, got %d", got.TotalTasks)
		}
	})
}

func TestComputeStatsPercentagesBounded(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	statuses := []string{task.StatusPending, task.StatusFinished, task.StatusCancelled, "Blocked"}

	for n := 1; n <= 40; n++ {
		tasks := make([]task.Task, n)
		for i := range tasks {
			tasks[i] = task.Task{
				Status:    statuses[(i*7+n)%len(statuses)],
				StartTime: now.Add(time.Duration(i-n/2) * time.Hour),
				EndTime:   now.Add(time.Duration(n-i) * time.Hour),
			}
		}

		got := computeStats(tasks, now)
		sum := got.CompletedPercentage + got.PendingPercentage
		if sum < 0 || sum > 100+epsilon {
			t.Fatalf("n=%d: completed+pending out of range: %v", n, sum)
		}
		if got.TimeLapsed < 0 || got.BalanceTime < 0 {
			t.Fatalf("n=%d: pending figures must be non-negative: %+v", n, got)
		}
	}
}
