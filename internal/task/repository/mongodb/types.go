package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"task-tracker/internal/task"
)

// taskDoc is the BSON shape of a task document.
type taskDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	StartTime time.Time          `bson:"startTime"`
	EndTime   time.Time          `bson:"endTime"`
	Priority  string             `bson:"priority"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d taskDoc) toDomain() task.Task {
	return task.Task{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		StartTime: d.StartTime.UTC(),
		EndTime:   d.EndTime.UTC(),
		Priority:  d.Priority,
		Status:    d.Status,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

// storedTime drops what a BSON date cannot hold (sub-millisecond precision).
func storedTime(t time.Time) time.Time {
	return t.Truncate(time.Millisecond).UTC()
}
