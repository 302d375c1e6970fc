// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/timesheet-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/timesheet-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine           *gin.Engine
	healthController *controller.HealthController
	authController   *controller.AuthController
	weekController   *controller.WeekController
	entryController  *controller.EntryController
	loginRateLimiter *middleware.RateLimiter
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	weekController *controller.WeekController,
	entryController *controller.EntryController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController: healthController,
		authController:   authController,
		weekController:   weekController,
		entryController:  entryController,
		loginRateLimiter: loginRateLimiter,
		authMiddleware:   authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Week routes (require authentication)
		if r.weekController != nil && r.authMiddleware != nil {
			weeks := v1.Group("/weeks")
			weeks.Use(r.authMiddleware.Authenticate())
			{
				weeks.GET("", r.weekController.List)
				weeks.POST("", r.weekController.Create)
				weeks.GET("/:id", r.weekController.Get)
				weeks.PUT("/:id", r.weekController.Override)
			}
		}

		// Timesheet entry routes (require authentication)
		if r.entryController != nil && r.authMiddleware != nil {
			timesheet := v1.Group("/timesheet")
			timesheet.Use(r.authMiddleware.Authenticate())
			{
				timesheet.GET("", r.entryController.List)
				timesheet.POST("", r.entryController.Create)
				timesheet.GET("/:id", r.entryController.Get)
				timesheet.PUT("/:id", r.entryController.Update)
				timesheet.DELETE("/:id", r.entryController.Delete)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
