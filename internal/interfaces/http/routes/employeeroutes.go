package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/casedesk/internal/interfaces/http/handlers"
	"github.com/orris-inc/casedesk/internal/interfaces/http/middleware"
)

// EmployeeRouteConfig holds dependencies for login and employee routes.
type EmployeeRouteConfig struct {
	AuthHandler     *handlers.AuthHandler
	EmployeeHandler *handlers.EmployeeHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// SetupEmployeeRoutes configures authentication and employee management routes.
func SetupEmployeeRoutes(engine *gin.Engine, cfg *EmployeeRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/login", cfg.AuthHandler.Login)
	}

	employees := engine.Group("/employees")
	employees.Use(cfg.AuthMiddleware.RequireAuth())
	{
		employees.POST("", cfg.EmployeeHandler.CreateEmployee)
		employees.GET("", cfg.EmployeeHandler.ListEmployees)
		employees.DELETE("/:id", cfg.EmployeeHandler.DeactivateEmployee)
	}
}
