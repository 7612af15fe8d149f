package api

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/taskvault/taskboard/internal/api/handler"
	"github.com/taskvault/taskboard/internal/api/middleware"
	"github.com/taskvault/taskboard/internal/core/domain"
	"github.com/taskvault/taskboard/internal/core/service"
	"github.com/taskvault/taskboard/internal/infrastructure/db/postgres"
)

const tokenTTL = 2 * time.Hour

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("taskboard"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)

	authService := service.NewAuthService(userRepo, jwtSecret, tokenTTL)
	directoryService := service.NewDirectoryService(userRepo)
	projectService := service.NewProjectService(projectRepo, log)
	taskService := service.NewTaskService(taskRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(directoryService)
	projectHandler := handler.NewProjectHandler(projectService)
	taskHandler := handler.NewTaskHandler(taskService)

	// --- API routes ---
	g := e.Group("/api")
	g.POST("/login", authHandler.Login)

	secured := g.Group("", middleware.Auth(jwtSecret))
	secured.GET("/users", userHandler.List)
	secured.GET("/projects", projectHandler.List)
	secured.POST("/projects", projectHandler.Create, middleware.RBAC(domain.RoleAdmin))
	secured.GET("/projects/:projectId/tasks", taskHandler.List)
	secured.POST("/projects/:projectId/tasks", taskHandler.Create, middleware.RBAC(domain.RoleAdmin, domain.RoleManager))
	secured.PATCH("/tasks/:id", taskHandler.Update)
	secured.DELETE("/tasks/:id", taskHandler.Delete, middleware.RBAC(domain.RoleAdmin, domain.RoleManager))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pool)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
