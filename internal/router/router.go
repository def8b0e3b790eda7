package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/gradekeep/gradebook-backend/internal/config"
	"github.com/gradekeep/gradebook-backend/internal/handler"
	"github.com/gradekeep/gradebook-backend/internal/middleware"
	"github.com/gradekeep/gradebook-backend/internal/response"
	"github.com/gradekeep/gradebook-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth    *handler.AuthHandler
	Account *handler.AccountHandler
	Student *handler.StudentHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
// Authorization is uniform: RequireAuth resolves the token, then role
// predicates run in order, then the handler.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := middleware.RequireAuth(authService)

	// Rate limiter for login (30 requests per minute per IP).
	loginLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── Users: login, logout, admin-gated registration ────────────────
	users := router.Group("/api/users")
	{
		users.POST("/login/", loginLimiter.Middleware(), handlers.Auth.Login)
		users.POST("/logout/", requireAuth, handlers.Auth.Logout)
		users.POST("/register/", requireAuth, middleware.Require(middleware.Admin), handlers.Account.Register)
	}

	// ─── Students: staff only ──────────────────────────────────────────
	students := router.Group("/api/students", requireAuth, middleware.Require(middleware.Staff))
	{
		students.GET("/", handlers.Student.List)
		students.POST("/", handlers.Student.Create)
		students.GET("/:id/", handlers.Student.Get)
		students.PUT("/:id/", handlers.Student.Update)
		students.PATCH("/:id/", handlers.Student.Patch)
		students.DELETE("/:id/", handlers.Student.Delete)
	}

	// ─── Admin management: staff or superuser ──────────────────────────
	admin := router.Group("/api/admin", requireAuth, middleware.Require(middleware.Admin))
	{
		admin.POST("/create/", handlers.Account.CreateAdmin)
		admin.GET("/list/", handlers.Account.ListAdmins)
	}

	// ─── Profile: any resolved identity ────────────────────────────────
	router.GET("/api/user/profile/", requireAuth, handlers.Account.Profile)

	return router
}
