package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"task-tracker/internal/task"
	repo "task-tracker/internal/task/repository"
)

// CreateTask inserts a new task document and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (task.Task, error) {
	now := storedTime(r.now())
	doc := taskDoc{
		Title:     opt.Title,
		StartTime: storedTime(opt.StartTime),
		EndTime:   storedTime(opt.EndTime),
		Priority:  opt.Priority,
		Status:    opt.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return task.Task{}, repo.ErrFailedToInsert
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		r.l.Errorf(ctx, "%s: unexpected inserted id type %T", r.dsn("CreateTask"), res.InsertedID)
		return task.Task{}, repo.ErrFailedToInsert
	}
	doc.ID = id
	return doc.toDomain(), nil
}

// GetTask retrieves a single task by id.
// Returns zero-value Task (ID == "") when not found, including malformed ids.
func (r *implRepository) GetTask(ctx context.Context, id string) (task.Task, error) {
	oid, ok := parseID(id)
	if !ok {
		return task.Task{}, nil
	}

	var doc taskDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return task.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTask"), err)
		return task.Task{}, repo.ErrFailedToGet
	}
	return doc.toDomain(), nil
}

// ListTasks returns every task matching the filters, sorted ascending.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]task.Task, error) {
	findOpts := options.Find()
	if s := r.buildSort(opt); s != nil {
		findOpts.SetSort(s)
	}

	cur, err := r.coll.Find(ctx, r.buildListFilter(opt), findOpts)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer cur.Close(ctx)

	var docs []taskDoc
	if err := cur.All(ctx, &docs); err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}

	tasks := make([]task.Task, 0, len(docs))
	for _, d := range docs {
		tasks = append(tasks, d.toDomain())
	}
	return tasks, nil
}

// UpdateTask overwrites the user fields of a task and returns the post-update document.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (task.Task, error) {
	oid, ok := parseID(opt.ID)
	if !ok {
		return task.Task{}, nil
	}

	update := bson.M{"$set": r.buildUpdateSet(opt)}
	after := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc taskDoc
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, after).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return task.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return task.Task{}, repo.ErrFailedToUpdate
	}
	return doc.toDomain(), nil
}

// DeleteTask removes a task by id and reports whether one was removed.
func (r *implRepository) DeleteTask(ctx context.Context, id string) (bool, error) {
	oid, ok := parseID(id)
	if !ok {
		return false, nil
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return false, repo.ErrFailedToDelete
	}
	return res.DeletedCount > 0, nil
}

// Ping checks connectivity to the primary.
func (r *implRepository) Ping(ctx context.Context) error {
	return r.db.Client().Ping(ctx, readpref.Primary())
}

func parseID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}
