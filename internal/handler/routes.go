package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"kos-be-svc/internal/middleware"
	"kos-be-svc/internal/repository"
	"kos-be-svc/internal/service"
	"kos-be-svc/pkg/logger"
)

// SetupRoutes sets up all API routes
func SetupRoutes(
	router *gin.Engine,
	authService service.AuthService,
	kamarService service.KamarService,
	pembayaranService service.PembayaranService,
	userService service.UserService,
	tokenRepo repository.TokenRepository,
	logger *logger.Logger,
) {
	// Initialize handlers
	authHandler := NewAuthHandler(authService, logger)
	kamarHandler := NewKamarHandler(kamarService, logger)
	pembayaranHandler := NewPembayaranHandler(pembayaranService, logger)
	userHandler := NewUserHandler(userService, logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", HealthCheck)

	authRequired := middleware.TokenAuth(tokenRepo, logger)
	adminOnly := middleware.AdminOnly()

	api := router.Group("/api")
	{
		// Public routes
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		// Authenticated routes
		authed := api.Group("", authRequired)
		{
			authed.POST("/logout", authHandler.Logout)
			authed.GET("/profile", authHandler.Profile)
			authed.PUT("/profile", authHandler.UpdateProfile)
			authed.POST("/profile/change-password", authHandler.ChangePassword)

			// Kamar routes (read for every authenticated role)
			kamar := authed.Group("/kamar")
			{
				kamar.GET("", kamarHandler.List)
				kamar.GET("/:id", kamarHandler.Get)
				kamar.GET("/statistics/dashboard", kamarHandler.Statistics)

				// Mutations are admin only
				kamar.POST("", adminOnly, kamarHandler.Create)
				kamar.PUT("/:id", adminOnly, kamarHandler.Update)
				kamar.DELETE("/:id", adminOnly, kamarHandler.Delete)
			}

			// User routes (admin only)
			users := authed.Group("/users", adminOnly)
			{
				users.GET("", userHandler.List)
				users.POST("", userHandler.Create)
				users.GET("/:id", userHandler.Get)
				users.PUT("/:id", userHandler.Update)
				users.DELETE("/:id", userHandler.Delete)
			}

			// Pembayaran routes (reads row-filtered per role)
			pembayaran := authed.Group("/pembayaran")
			{
				pembayaran.GET("", pembayaranHandler.List)
				pembayaran.GET("/:id", pembayaranHandler.Get)
				pembayaran.GET("/kamar/:kamar_id", pembayaranHandler.ByKamar)
				pembayaran.GET("/laporan/dashboard", pembayaranHandler.Laporan)

				// Mutations and export are admin only
				pembayaran.GET("/laporan/export", adminOnly, pembayaranHandler.ExportLaporan)
				pembayaran.POST("", adminOnly, pembayaranHandler.Create)
				pembayaran.PUT("/:id", adminOnly, pembayaranHandler.Update)
				pembayaran.DELETE("/:id", adminOnly, pembayaranHandler.Delete)
			}
		}
	}
}

// HealthCheck reports service liveness
func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "Kos Backend Service",
	})
}
