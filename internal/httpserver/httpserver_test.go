package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"task-tracker/internal/httpserver"
	"task-tracker/internal/middleware"
	"task-tracker/internal/task/repository"
	"task-tracker/internal/task/repository/memory"
	"task-tracker/pkg/log"
)

// downRepo answers every call like the in-memory store except Ping.
type downRepo struct {
	repository.Repository
}

func (downRepo) Ping(context.Context) error { return errors.New("no reachable servers") }

func newServer(t *testing.T, cfg httpserver.Config) *gin.Engine {
	t.Helper()
	cfg.Logger = log.NewNop()
	cfg.Port = 4000
	cfg.Mode = "test"
	if cfg.TaskRepository == nil {
		cfg.TaskRepository = memory.New(log.NewNop())
	}
	srv, err := httpserver.New(cfg.Logger, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv.Handler()
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  httpserver.Config
	}{
		{"Missing Port", httpserver.Config{Mode: "test", TaskRepository: memory.New(log.NewNop())}},
		{"Missing Mode", httpserver.Config{Port: 4000, TaskRepository: memory.New(log.NewNop())}},
		{"Missing Repository", httpserver.Config{Port: 4000, Mode: "test"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := httpserver.New(log.NewNop(), tt.cfg); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	t.Run("Missing Logger", func(t *testing.T) {
		if _, err := httpserver.New(nil, httpserver.Config{Port: 4000, Mode: "test", TaskRepository: memory.New(log.NewNop())}); err == nil {
			t.Error("expected validation error")
		}
	})
}

func TestSystemRoutes(t *testing.T) {
	h := newServer(t, httpserver.Config{})

	for _, path := range []string{"/health", "/live", "/ready"} {
		t.Run(path, func(t *testing.T) {
			if w := get(h, path); w.Code != http.StatusOK {
				t.Errorf("expected 200, got %d", w.Code)
			}
		})
	}

	t.Run("Ready With Store Down", func(t *testing.T) {
		down := newServer(t, httpserver.Config{TaskRepository: downRepo{memory.New(log.NewNop())}})
		if w := get(down, "/ready"); w.Code != http.StatusServiceUnavailable {
			t.Errorf("expected 503, got %d", w.Code)
		}
	})

	t.Run("Metrics", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		h := newServer(t, httpserver.Config{Registry: reg})
		get(h, "/tasks")

		w := get(h, "/metrics")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `http_requests_total{method="GET",route="/tasks",status="200"} 1`) {
			t.Errorf("expected request counter in exposition, got:\n%s", w.Body.String())
		}
	})
}

func TestTaskRoutes(t *testing.T) {
	h := newServer(t, httpserver.Config{})

	t.Run("Stats Literal Route", func(t *testing.T) {
		w := get(h, "/tasks/stats")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "totalTasks") {
			t.Errorf("expected stats body, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("Request ID Header", func(t *testing.T) {
		if w := get(h, "/tasks"); w.Header().Get(middleware.HeaderRequestID) == "" {
			t.Error("expected request id header on every response")
		}
	})

	t.Run("Rate Limited", func(t *testing.T) {
		limited := newServer(t, httpserver.Config{Limiter: middleware.NewLocalLimiter(60, 1)})
		if w := get(limited, "/tasks"); w.Code != http.StatusOK {
			t.Fatalf("expected first request allowed, got %d", w.Code)
		}
		if w := get(limited, "/tasks"); w.Code != http.StatusTooManyRequests {
			t.Errorf("expected 429, got %d", w.Code)
		}
		if w := get(limited, "/health"); w.Code != http.StatusOK {
			t.Errorf("system routes must not be rate limited, got %d", w.Code)
		}
	})
}

func TestErrorBodies(t *testing.T) {
	h := newServer(t, httpserver.Config{})
	h.GET("/boom", func(*gin.Context) { panic("nil map write") })

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"Unknown Route", http.MethodGet, "/nope", http.StatusNotFound},
		{"Unsupported Method", http.MethodPatch, "/tasks/x", http.StatusMethodNotAllowed},
		{"Recovered Panic", http.MethodGet, "/boom", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, w.Code)
			}
			var body struct {
				Error string `json:"error"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.Error == "" {
				t.Errorf("expected {\"error\": ...} body, got %q", w.Body.String())
			}
			if strings.Contains(w.Body.String(), "nil map write") {
				t.Error("panic value must not reach the client")
			}
		})
	}
}
