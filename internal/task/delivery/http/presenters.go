package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"task-tracker/internal/task"
)

// acceptedTimeLayouts are tried in order when parsing startTime/endTime strings.
var acceptedTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// timeInput holds a startTime/endTime as sent: an ISO string or Unix milliseconds.
type timeInput struct {
	text   string
	millis *int64
}

func (t *timeInput) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || string(b) == "null":
		return nil
	case b[0] == '"':
		return json.Unmarshal(b, &t.text)
	}

	ms, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("time must be a string or Unix milliseconds: %w", err)
	}
	v := int64(ms)
	t.millis = &v
	return nil
}

// parseTime returns the zero time for an absent value so presence is judged by the use case.
func parseTime(field string, in timeInput) (time.Time, error) {
	if in.millis != nil {
		return time.UnixMilli(*in.millis).UTC(), nil
	}

	value := strings.TrimSpace(in.text)
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range acceptedTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid %s %q", field, value)
}

// --- Request DTOs ---

// taskReq is the body shared by create and update.
type taskReq struct {
	Title     string    `json:"title"`
	StartTime timeInput `json:"startTime" swaggertype:"string"`
	EndTime   timeInput `json:"endTime" swaggertype:"string"`
	Priority  string    `json:"priority"`
	Status    string    `json:"status"`

	startTime time.Time
	endTime   time.Time
}

func (r *taskReq) validate() error {
	var err error
	if r.startTime, err = parseTime("startTime", r.StartTime); err != nil {
		return err
	}
	if r.endTime, err = parseTime("endTime", r.EndTime); err != nil {
		return err
	}
	return nil
}

type createReq struct {
	taskReq
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:     r.Title,
		StartTime: r.startTime,
		EndTime:   r.endTime,
		Priority:  r.Priority,
		Status:    r.Status,
	}
}

// ---

type listReq struct {
	Priority string `form:"priority"`
	Status   string `form:"status"`
	SortBy   string `form:"sortBy"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		Priority: r.Priority,
		Status:   r.Status,
		SortBy:   r.SortBy,
	}
}

// ---

type updateReq struct {
	ID string `json:"-"` // populated from URI param
	taskReq
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:        r.ID,
		Title:     r.Title,
		StartTime: r.startTime,
		EndTime:   r.endTime,
		Priority:  r.Priority,
		Status:    r.Status,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Priority  string    `json:"priority"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newTaskResp(t task.Task) taskResp {
	return taskResp{
		ID:        t.ID,
		Title:     t.Title,
		StartTime: t.StartTime,
		EndTime:   t.EndTime,
		Priority:  t.Priority,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (h *handler) newListResp(out task.ListOutput) []taskResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return tasks
}

type statsResp struct {
	TotalTasks            int     `json:"totalTasks"`
	CompletedPercentage   float64 `json:"completedPercentage"`
	PendingPercentage     float64 `json:"pendingPercentage"`
	TimeLapsed            float64 `json:"timeLapsed"`
	BalanceTime           float64 `json:"balanceTime"`
	AverageCompletionTime float64 `json:"averageCompletionTime"`
}

func (h *handler) newStatsResp(out task.StatsOutput) statsResp {
	return statsResp{
		TotalTasks:            out.TotalTasks,
		CompletedPercentage:   out.CompletedPercentage,
		PendingPercentage:     out.PendingPercentage,
		TimeLapsed:            out.TimeLapsed,
		BalanceTime:           out.BalanceTime,
		AverageCompletionTime: out.AverageCompletionTime,
	}
}
