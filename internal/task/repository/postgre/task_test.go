package postgre

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"task-tracker/internal/task"
	repo "task-tracker/internal/task/repository"
	"task-tracker/pkg/log"
)

var (
	errConnReset = errors.New("read tcp 10.0.0.5:5432: connection reset by peer")
	testStart    = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	testEnd      = time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC)
)

// scanInto copies vals into dest pointers, mimicking pgx.Row.Scan.
func scanInto(vals []any, dest []any) error {
	if len(vals) != len(dest) {
		return errors.New("column count mismatch")
	}
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(vals[i]))
	}
	return nil
}

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return scanInto(r.vals, dest)
}

type fakeRows struct {
	rows [][]any
	i    int
	err  error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.i < len(r.rows) {
		r.i++
		return true
	}
	return false
}

func (r *fakeRows) Scan(dest ...any) error {
	return scanInto(r.rows[r.i-1], dest)
}

func (r *fakeRows) Values() ([]any, error) {
	return r.rows[r.i-1], nil
}

// fakeDB answers with canned results and records every statement.
type fakeDB struct {
	row      fakeRow
	rows     *fakeRows
	queryErr error
	tag      pgconn.CommandTag
	execErr  error
	pingErr  error

	statements []string
	args       [][]any
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.statements = append(f.statements, sql)
	f.args = append(f.args, args)
	return f.tag, f.execErr
}

func (f *fakeDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.statements = append(f.statements, sql)
	f.args = append(f.args, args)
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.rows, nil
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.statements = append(f.statements, sql)
	f.args = append(f.args, args)
	return f.row
}

func (f *fakeDB) Ping(context.Context) error { return f.pingErr }

func taskRow(id, title, status string) []any {
	return []any{id, title, testStart, testEnd, task.PriorityHigh, status, testStart, testStart}
}

func TestCreateTask(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		id := uuid.NewString()
		db := &fakeDB{row: fakeRow{vals: taskRow(id, "Write report", task.StatusPending)}}
		r := New(db, log.NewNop())

		got, err := r.CreateTask(ctx, repo.CreateTaskOptions{
			Title: "Write report", StartTime: testStart, EndTime: testEnd,
			Priority: task.PriorityHigh, Status: task.StatusPending,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != id || got.Title != "Write report" || !got.StartTime.Equal(testStart) {
			t.Errorf("unexpected task %+v", got)
		}
		if !strings.HasPrefix(strings.TrimSpace(db.statements[0]), "INSERT INTO tasks") {
			t.Errorf("unexpected statement %q", db.statements[0])
		}
		if _, err := uuid.Parse(db.args[0][0].(string)); err != nil {
			t.Errorf("expected generated uuid as first arg, got %v", db.args[0][0])
		}
	})

	t.Run("Store Failure", func(t *testing.T) {
		r := New(&fakeDB{row: fakeRow{err: errConnReset}}, log.NewNop())
		if _, err := r.CreateTask(ctx, repo.CreateTaskOptions{}); !errors.Is(err, repo.ErrFailedToInsert) {
			t.Errorf("expected ErrFailedToInsert, got %v", err)
		}
	})
}

func TestGetTask(t *testing.T) {
	ctx := context.Background()
	id := uuid.NewString()

	tests := []struct {
		name    string
		id      string
		row     fakeRow
		wantID  string
		wantErr error
	}{
		{name: "Found", id: id, row: fakeRow{vals: taskRow(id, "a", task.StatusPending)}, wantID: id},
		{name: "No Rows", id: id, row: fakeRow{err: pgx.ErrNoRows}},
		{name: "Store Failure", id: id, row: fakeRow{err: errConnReset}, wantErr: repo.ErrFailedToGet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(&fakeDB{row: tt.row}, log.NewNop())
			got, err := r.GetTask(ctx, tt.id)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if got.ID != tt.wantID {
				t.Errorf("expected id %q, got %q", tt.wantID, got.ID)
			}
		})
	}

	t.Run("Malformed ID Skips Query", func(t *testing.T) {
		db := &fakeDB{}
		got, err := New(db, log.NewNop()).GetTask(ctx, "stats")
		if err != nil || got.ID != "" {
			t.Errorf("expected zero value without error, got %+v %v", got, err)
		}
		if len(db.statements) != 0 {
			t.Errorf("expected no statement, got %v", db.statements)
		}
	})
}

func TestListTasks(t *testing.T) {
	ctx := context.Background()

	t.Run("Scans Every Row", func(t *testing.T) {
		db := &fakeDB{rows: &fakeRows{rows: [][]any{
			taskRow(uuid.NewString(), "a", task.StatusPending),
			taskRow(uuid.NewString(), "b", task.StatusFinished),
		}}}
		got, err := New(db, log.NewNop()).ListTasks(ctx, repo.ListTasksOptions{Status: task.StatusPending, SortBy: task.SortByTitle})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[1].Title != "b" {
			t.Errorf("unexpected tasks %+v", got)
		}
		if !strings.Contains(db.statements[0], "WHERE status = $1 ORDER BY title ASC") {
			t.Errorf("unexpected statement %q", db.statements[0])
		}
	})

	t.Run("Empty Is Not Nil", func(t *testing.T) {
		got, err := New(&fakeDB{rows: &fakeRows{}}, log.NewNop()).ListTasks(ctx, repo.ListTasksOptions{})
		if err != nil || got == nil || len(got) != 0 {
			t.Errorf("expected empty non-nil slice, got %#v %v", got, err)
		}
	})

	t.Run("Query Failure", func(t *testing.T) {
		r := New(&fakeDB{queryErr: errConnReset}, log.NewNop())
		if _, err := r.ListTasks(ctx, repo.ListTasksOptions{}); !errors.Is(err, repo.ErrFailedToList) {
			t.Errorf("expected ErrFailedToList, got %v", err)
		}
	})

	t.Run("Rows Failure", func(t *testing.T) {
		r := New(&fakeDB{rows: &fakeRows{err: errConnReset}}, log.NewNop())
		if _, err := r.ListTasks(ctx, repo.ListTasksOptions{}); !errors.Is(err, repo.ErrFailedToList) {
			t.Errorf("expected ErrFailedToList, got %v", err)
		}
	})
}

func TestUpdateTask(t *testing.T) {
	ctx := context.Background()
	id := uuid.NewString()

	t.Run("Returns Updated Row", func(t *testing.T) {
		db := &fakeDB{row: fakeRow{vals: taskRow(id, "a", task.StatusFinished)}}
		got, err := New(db, log.NewNop()).UpdateTask(ctx, repo.UpdateTaskOptions{ID: id, Status: task.StatusFinished})
		if err != nil || got.Status != task.StatusFinished {
			t.Errorf("unexpected result %+v %v", got, err)
		}
		if last := db.args[0][len(db.args[0])-1]; last != id {
			t.Errorf("expected id as last arg, got %v", last)
		}
	})

	t.Run("No Rows", func(t *testing.T) {
		got, err := New(&fakeDB{row: fakeRow{err: pgx.ErrNoRows}}, log.NewNop()).UpdateTask(ctx, repo.UpdateTaskOptions{ID: id})
		if err != nil || got.ID != "" {
			t.Errorf("expected zero value without error, got %+v %v", got, err)
		}
	})

	t.Run("Store Failure", func(t *testing.T) {
		_, err := New(&fakeDB{row: fakeRow{err: errConnReset}}, log.NewNop()).UpdateTask(ctx, repo.UpdateTaskOptions{ID: id})
		if !errors.Is(err, repo.ErrFailedToUpdate) {
			t.Errorf("expected ErrFailedToUpdate, got %v", err)
		}
	})
}

func TestDeleteTask(t *testing.T) {
	ctx := context.Background()
	id := uuid.NewString()

	tests := []struct {
		name    string
		db      *fakeDB
		want    bool
		wantErr error
	}{
		{name: "Deleted", db: &fakeDB{tag: pgconn.NewCommandTag("DELETE 1")}, want: true},
		{name: "Nothing Matched", db: &fakeDB{tag: pgconn.NewCommandTag("DELETE 0")}},
		{name: "Store Failure", db: &fakeDB{execErr: errConnReset}, wantErr: repo.ErrFailedToDelete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.db, log.NewNop()).DeleteTask(ctx, id)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestPingAndSchema(t *testing.T) {
	ctx := context.Background()

	db := &fakeDB{pingErr: errConnReset}
	if err := New(db, log.NewNop()).Ping(ctx); !errors.Is(err, errConnReset) {
		t.Errorf("expected ping error to pass through, got %v", err)
	}

	if err := EnsureSchema(ctx, db); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	if !strings.Contains(db.statements[0], "CREATE TABLE IF NOT EXISTS tasks") {
		t.Errorf("unexpected schema statement %q", db.statements[0])
	}
}
