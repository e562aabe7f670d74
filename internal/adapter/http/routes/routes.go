package routes

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	_ "estimate_agent/docs"
	"estimate_agent/internal/adapter/http/handlers"
	"estimate_agent/internal/adapter/http/middleware"
	"estimate_agent/internal/app"
	"estimate_agent/pkg"
	"estimate_agent/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	PathAPI     = "/api"
	PathHealth  = "/health"
	PathMetrics = "/metrics"
	PathSwagger = "/swagger/*any"

	shutdownTimeout   = 15 * time.Second
	readHeaderTimeout = 10 * time.Second
)

var errRouteNotFound = pkg.NewDomainErrorSimple("NOT_FOUND", "Route not found", http.StatusNotFound)

// Run seeds the catalog, serves HTTP on the configured port and shuts down
// gracefully once ctx is cancelled.
func Run(ctx context.Context, a *app.App) error {
	report, err := a.Catalog.Setup(ctx)
	if err != nil {
		return err
	}
	logger.Info(ctx, "catalog ready",
		"categories_created", report.CategoriesCreated,
		"templates_created", report.TemplatesCreated,
	)

	if a.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(a.Config.Port),
		Handler:           NewRouter(a),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "http server listening", "addr", srv.Addr, "env", a.Config.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info(context.Background(), "shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter builds the gin engine with the middleware chain and every route.
func NewRouter(a *app.App) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, a)

	router.GET(PathMetrics, gin.WrapH(a.Metrics.Handler()))
	router.GET(PathSwagger, ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group(PathAPI)
	api.GET(PathHealth, handlers.NewHealthHandler(a.Config.APIVersion).Health)

	v1 := api.Group("/v1")
	v1.Use(middleware.RateLimit(middleware.NewRateLimiter(a.Config.RateLimit.Max, a.Config.RateLimit.Window)))
	if a.Config.APIKeyRequired {
		v1.Use(middleware.APIKeyAuth(a.APIKeys))
	}

	addRequirementRoutes(v1, handlers.NewRequirementHandler(a.Requirements))
	addQuestionRoutes(v1, handlers.NewQuestionHandler(a.Questions))
	addEstimateRoutes(v1, handlers.NewEstimateHandler(a.Estimates))
	addRAGRoutes(v1, handlers.NewRAGHandler(a.RAG))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(errRouteNotFound.HTTPStatus, errRouteNotFound.ToHTTPError())
	})
	return router
}

func setMiddlewares(router *gin.Engine, a *app.App) {
	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.AccessLog(),
		middleware.Metrics(a.Metrics),
		middleware.CORS(),
		middleware.VersionDetector(a.Config.APIVersion, a.Config.APIVersion),
	)
}
