package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/orris-inc/casedesk/internal/infrastructure/config"
	"github.com/orris-inc/casedesk/internal/interfaces/http/middleware"
	"github.com/orris-inc/casedesk/internal/interfaces/http/routes"
	"github.com/orris-inc/casedesk/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	container *Container
	engine    *gin.Engine
	log       logger.Interface
}

// NewRouter wires the container and returns a router ready for SetupRoutes.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	container, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{
		container: container,
		engine:    container.engine,
		log:       log,
	}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.log.Named("http")))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", r.healthCheck)

	h := r.container.hdlrs
	routes.SetupEmployeeRoutes(r.engine, &routes.EmployeeRouteConfig{
		AuthHandler:     h.authHandler,
		EmployeeHandler: h.employeeHandler,
		AuthMiddleware:  r.container.authMiddleware,
	})
	routes.SetupCaseRoutes(r.engine, &routes.CaseRouteConfig{
		CaseHandler:           h.caseHandler,
		CorrespondenceHandler: h.correspondenceHandler,
		AttachmentHandler:     h.attachmentHandler,
		LookupHandler:         h.lookupHandler,
		AuthMiddleware:        r.container.authMiddleware,
	})
}

func (r *Router) healthCheck(c *gin.Context) {
	sqlDB, err := r.container.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetEngine returns the gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

// Shutdown releases resources held by the container.
func (r *Router) Shutdown() {
	r.container.Shutdown()
}
