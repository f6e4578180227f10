package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	taskHTTP "task-tracker/internal/task/delivery/http"
	taskUC "task-tracker/internal/task/usecase"
)

// setupTaskDomain wires the task domain onto the injected repository and registers its routes.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. UseCase
	uc := taskUC.New(srv.taskRepo, srv.l)

	// 2. HTTP Handler
	h := taskHTTP.New(srv.l, uc)

	// 3. Routes: registers /tasks
	taskHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
