package router

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	commonmw "github.com/OrangesCloud/wealist-advanced-go-pkg/middleware"
	"kanban-board-api/internal/client"
	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/handler"
	"kanban-board-api/internal/imageproc"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/middleware"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/service"
	"kanban-board-api/internal/session"
)

// Forbidden messages per route
const (
	MsgKanbanAddForbidden     = "Log in before creating a kanban"
	MsgKanbanListForbidden    = "Log in to see your kanbans"
	MsgKanbanDetailForbidden  = "You are not allowed to view this kanban"
	MsgKanbanDeleteForbidden  = "You are not allowed to delete this kanban"
	MsgTaskAddForbidden       = "Log in before creating tasks"
	MsgTaskDetailForbidden    = "You are not allowed to view this task"
	MsgTaskUpdateForbidden    = "You are not allowed to edit this task"
	MsgTaskDeleteForbidden    = "You are not allowed to delete this task"
	MsgTaskAssignForbidden    = "You are not allowed to assign this task"
	MsgSignupForbidden        = "You are already logged in"
	MsgUsersForbidden         = "Log in to see users"
	MsgAccountDeleteForbidden = "Log in to delete your account"
)

// Config holds router configuration
type Config struct {
	DB       *gorm.DB
	Logger   *zap.Logger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer // nil serves the default registry
	Store    client.FileStore
	Sessions *session.Manager
	Pipeline *imageproc.Pipeline
	Images   service.ImageOptions

	BasePath       string
	AllowedOrigins []string
	CookieName     string
	CookieSecure   bool

	// MediaRoot is served under MediaURL when images live on local disk
	MediaRoot string
	MediaURL  string
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if err := dto.RegisterValidators(); err != nil {
		cfg.Logger.Error("Failed to register form validators", zap.Error(err))
	}

	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(commonmw.Logger(cfg.Logger))
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(middleware.CORS(cfg.AllowedOrigins))
	} else {
		r.Use(commonmw.DefaultCORS())
	}
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics, cfg.BasePath))
	}

	metricsHandler := promhttp.Handler()
	if cfg.Gatherer != nil {
		metricsHandler = promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})
	}
	r.GET("/metrics", gin.WrapH(metricsHandler))

	healthHandler := handler.NewHealthHandler(cfg.DB)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)

	// Initialize repositories
	userRepo := repository.NewUserRepository(cfg.DB)
	kanbanRepo := repository.NewKanbanRepository(cfg.DB)
	taskRepo := repository.NewTaskRepository(cfg.DB)

	// Initialize services
	authService := service.NewAuthService(userRepo, taskRepo, cfg.Store, cfg.Logger)
	kanbanService := service.NewKanbanService(kanbanRepo, taskRepo, cfg.Store, cfg.Metrics, cfg.Logger)
	taskService := service.NewTaskService(taskRepo, kanbanRepo, userRepo, cfg.Store, cfg.Pipeline, cfg.Images, cfg.Metrics, cfg.Logger)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg.Sessions, handler.CookieConfig{
		Name:   cfg.CookieName,
		Secure: cfg.CookieSecure,
	}, cfg.Logger)
	userHandler := handler.NewUserHandler(authService, cfg.Logger)
	kanbanHandler := handler.NewKanbanHandler(kanbanService, cfg.Logger)
	taskHandler := handler.NewTaskHandler(taskService, cfg.Logger)

	loadKanban := func(ctx context.Context, id uuid.UUID) (domain.Owned, error) {
		kanban, err := kanbanService.Load(ctx, id)
		if err != nil {
			return nil, err
		}
		return kanban, nil
	}
	loadTask := func(ctx context.Context, id uuid.UUID) (domain.Owned, error) {
		task, err := taskService.Load(ctx, id)
		if err != nil {
			return nil, err
		}
		return task, nil
	}

	api := r.Group(cfg.BasePath)
	if cfg.BasePath != "" && cfg.BasePath != "/" {
		api.GET("/metrics", gin.WrapH(metricsHandler))
	}
	api.Use(middleware.Session(cfg.Sessions, userRepo, cfg.CookieName, cfg.Logger))

	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if cfg.MediaRoot != "" && cfg.MediaURL != "" {
		api.Static(cfg.MediaURL, cfg.MediaRoot)
	}

	// Accounts
	api.GET("/", authHandler.Index)
	api.POST("/login/", authHandler.Login)
	api.POST("/logout/", authHandler.Logout)
	api.POST("/signup/", middleware.RequireAnonymous(MsgSignupForbidden), authHandler.Signup)
	api.GET("/users/", middleware.RequireAuth(MsgUsersForbidden), userHandler.ListUsers)
	api.POST("/account_delete/", middleware.RequireAuth(MsgAccountDeleteForbidden), authHandler.DeleteAccount)

	// Kanbans
	api.POST("/kanban_add/", middleware.RequireAuth(MsgKanbanAddForbidden), kanbanHandler.CreateKanban)
	api.GET("/kanban_list/", middleware.RequireAuth(MsgKanbanListForbidden), kanbanHandler.ListKanbans)
	api.GET("/:id/kanban_detail/", middleware.RequireOwner(loadKanban, MsgKanbanDetailForbidden), kanbanHandler.GetKanban)
	api.POST("/:id/kanban_delete/", middleware.RequireOwner(loadKanban, MsgKanbanDeleteForbidden), kanbanHandler.DeleteKanban)

	// Tasks. task_add reads :id as the kanban id.
	api.POST("/:id/task_add/", middleware.RequireAuth(MsgTaskAddForbidden), taskHandler.CreateTask)
	api.GET("/:id/task_detail/", middleware.RequireOwner(loadTask, MsgTaskDetailForbidden), taskHandler.GetTask)
	api.POST("/:id/task_update/", middleware.RequireOwner(loadTask, MsgTaskUpdateForbidden), taskHandler.UpdateTask)
	api.POST("/:id/task_delete/", middleware.RequireOwner(loadTask, MsgTaskDeleteForbidden), taskHandler.DeleteTask)
	api.POST("/:id/task_assign/", middleware.RequireOwner(loadTask, MsgTaskAssignForbidden), taskHandler.AssignTask)

	return r
}
