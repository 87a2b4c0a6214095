package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"jobdesk/internal/application/jobcard/usecases"
	"jobdesk/internal/infrastructure/config"
	"jobdesk/internal/infrastructure/repository"
	"jobdesk/internal/infrastructure/services"
	"jobdesk/internal/infrastructure/storage"
	jobcardhandlers "jobdesk/internal/interfaces/http/handlers/jobcard"
	"jobdesk/internal/interfaces/http/middleware"
	"jobdesk/internal/interfaces/http/routes"
	"jobdesk/internal/shared/db"
	"jobdesk/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine         *gin.Engine
	jobCardHandler *jobcardhandlers.JobCardHandler
	config         *config.Config
	logger         logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(database *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	jobCardRepo := repository.NewJobCardRepository(database)
	attachmentRepo := repository.NewAttachmentRepository(database)

	allocator := services.NewTicketNumberAllocator(jobCardRepo)
	fileStore := storage.NewLocalFileStore(cfg.Storage.UploadDir, cfg.Storage.MaxUploadSize)
	txManager := db.NewTransactionManager(database)

	createTicketUC := usecases.NewCreateTicketUseCase(jobCardRepo, attachmentRepo, allocator, fileStore, txManager, log)
	editTicketUC := usecases.NewEditTicketUseCase(jobCardRepo, attachmentRepo, fileStore, txManager, log)
	listJobCardsUC := usecases.NewListJobCardsUseCase(jobCardRepo, attachmentRepo, log)
	getTicketUC := usecases.NewGetTicketUseCase(jobCardRepo, attachmentRepo, log)
	deleteJobCardUC := usecases.NewDeleteJobCardUseCase(jobCardRepo, attachmentRepo, fileStore, txManager, log)
	deleteTicketUC := usecases.NewDeleteTicketUseCase(jobCardRepo, attachmentRepo, fileStore, txManager, log)
	changeStatusUC := usecases.NewChangeStatusUseCase(jobCardRepo, log)

	jobCardHandler := jobcardhandlers.NewJobCardHandler(
		createTicketUC, editTicketUC, listJobCardsUC, getTicketUC,
		deleteJobCardUC, deleteTicketUC, changeStatusUC,
	)

	return &Router{
		engine:         engine,
		jobCardHandler: jobCardHandler,
		config:         cfg,
		logger:         log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.config.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Uploaded attachments are served straight off disk.
	r.engine.Static("/uploads", r.config.Storage.UploadDir)

	routes.SetupJobCardRoutes(r.engine, &routes.JobCardRouteConfig{
		JobCardHandler: r.jobCardHandler,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
