package httpserver

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"task-tracker/internal/model"
	"task-tracker/pkg/response"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.HandleMethodNotAllowed = true
	srv.gin.NoRoute(func(c *gin.Context) {
		response.Abort(c, http.StatusNotFound, response.RouteNotFound)
	})
	srv.gin.NoMethod(func(c *gin.Context) {
		response.Abort(c, http.StatusMethodNotAllowed, response.MethodNotAllowed)
	})

	srv.gin.Use(
		gin.CustomRecovery(srv.recoverPanic),
		srv.mw.RequestID(),
		srv.mw.AccessLog(),
		srv.mw.Metrics(),
		srv.mw.CORS(),
	)

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

// recoverPanic logs the panic and answers with the generic 500 body.
func (srv HTTPServer) recoverPanic(c *gin.Context, recovered any) {
	err := fmt.Errorf("panic: %v", recovered)
	srv.l.Errorf(c.Request.Context(), "httpserver.recoverPanic %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	response.InternalError(c, err)
	c.Abort()
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/metrics", gin.WrapH(promhttp.HandlerFor(srv.gatherer, promhttp.HandlerOpts{})))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes behind the rate limiter.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	api := srv.gin.Group("", srv.mw.RateLimit())
	if err := srv.setupTaskDomain(ctx, api); err != nil {
		return err
	}

	return nil
}
