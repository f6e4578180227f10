package mongodb

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"task-tracker/internal/task/repository"
	"task-tracker/pkg/log"
)

const collectionName = "tasks"

type implRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
	l    log.Logger
	now  func() time.Time
}

// New creates a new MongoDB-backed Repository for the task domain.
func New(db *mongo.Database, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/mongodb: db is required")
	}
	return &implRepository{
		db:   db,
		coll: db.Collection(collectionName),
		l:    l,
		now:  time.Now,
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/mongodb.%s", method)
}
