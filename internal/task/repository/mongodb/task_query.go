package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"

	"task-tracker/internal/task"
	repo "task-tracker/internal/task/repository"
)

// sortFields maps task sort keys to document field names.
var sortFields = map[string]string{
	task.SortByTitle:     "title",
	task.SortByStartTime: "startTime",
	task.SortByEndTime:   "endTime",
	task.SortByPriority:  "priority",
	task.SortByStatus:    "status",
	task.SortByCreatedAt: "createdAt",
	task.SortByUpdatedAt: "updatedAt",
}

// buildListFilter builds an equality filter from the non-empty options.
func (r *implRepository) buildListFilter(opt repo.ListTasksOptions) bson.M {
	filter := bson.M{}
	if opt.Priority != "" {
		filter["priority"] = opt.Priority
	}
	if opt.Status != "" {
		filter["status"] = opt.Status
	}
	return filter
}

// buildSort returns an ascending single-field sort, or nil for store order.
// _id is appended as a tiebreaker so equal keys list in insertion order.
func (r *implRepository) buildSort(opt repo.ListTasksOptions) bson.D {
	field, ok := sortFields[opt.SortBy]
	if !ok {
		return nil
	}
	return bson.D{{Key: field, Value: 1}, {Key: "_id", Value: 1}}
}

// buildUpdateSet builds the $set document for UpdateTask.
func (r *implRepository) buildUpdateSet(opt repo.UpdateTaskOptions) bson.M {
	return bson.M{
		"title":     opt.Title,
		"startTime": storedTime(opt.StartTime),
		"endTime":   storedTime(opt.EndTime),
		"priority":  opt.Priority,
		"status":    opt.Status,
		"updatedAt": storedTime(r.now()),
	}
}
