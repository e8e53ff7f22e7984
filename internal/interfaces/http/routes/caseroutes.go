package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/casedesk/internal/interfaces/http/handlers"
	"github.com/orris-inc/casedesk/internal/interfaces/http/middleware"
)

// CaseRouteConfig holds dependencies for the case desk routes.
type CaseRouteConfig struct {
	CaseHandler           *handlers.CaseHandler
	CorrespondenceHandler *handlers.CorrespondenceHandler
	AttachmentHandler     *handlers.AttachmentHandler
	LookupHandler         *handlers.LookupHandler
	AuthMiddleware        *middleware.AuthMiddleware
}

// SetupCaseRoutes configures case, correspondence, attachment and lookup routes.
func SetupCaseRoutes(engine *gin.Engine, cfg *CaseRouteConfig) {
	cases := engine.Group("/cases")
	cases.Use(cfg.AuthMiddleware.RequireAuth())
	{
		cases.POST("", cfg.CaseHandler.CreateCase)
		cases.GET("", cfg.CaseHandler.ListCases)

		// Named endpoints before /:id
		cases.GET("/search", cfg.CaseHandler.SearchCases)

		cases.GET("/:id", cfg.CaseHandler.GetCase)
		cases.PUT("/:id", cfg.CaseHandler.UpdateCase)
		cases.DELETE("/:id", cfg.CaseHandler.DeleteCase)
		cases.GET("/:id/audit", cfg.CaseHandler.GetAuditTrail)

		cases.POST("/:id/correspondences", cfg.CorrespondenceHandler.AddCorrespondence)
		cases.GET("/:id/correspondences", cfg.CorrespondenceHandler.ListCorrespondences)

		cases.POST("/:id/attachments", cfg.AttachmentHandler.AddAttachment)
		cases.GET("/:id/attachments", cfg.AttachmentHandler.ListAttachments)
	}

	correspondences := engine.Group("/correspondences")
	correspondences.Use(cfg.AuthMiddleware.RequireAuth())
	{
		correspondences.GET("/search", cfg.CorrespondenceHandler.SearchCorrespondences)
		correspondences.GET("/next-number", cfg.CorrespondenceHandler.PreviewNextNumber)
		correspondences.DELETE("/:id", cfg.CorrespondenceHandler.DeleteCorrespondence)
	}

	attachments := engine.Group("/attachments")
	attachments.Use(cfg.AuthMiddleware.RequireAuth())
	{
		attachments.DELETE("/:id", cfg.AttachmentHandler.DeleteAttachment)
	}

	lookups := engine.Group("")
	lookups.Use(cfg.AuthMiddleware.RequireAuth())
	{
		lookups.GET("/lookups", cfg.LookupHandler.GetLookups)
		lookups.GET("/categories", cfg.LookupHandler.ListCategories)
		lookups.GET("/categories/:id", cfg.LookupHandler.GetCategory)
		lookups.GET("/statistics", cfg.LookupHandler.GetStatistics)
	}
}
