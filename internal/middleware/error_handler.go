package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kos-be-svc/pkg/logger"
	"kos-be-svc/pkg/utils"
)

// Recovery converts panics into a 500 envelope instead of dropping the
// connection
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.WithField("panic", r).Error("Recovered from panic")
				utils.InternalServerErrorResponse(c, "Terjadi kesalahan pada server")
				c.Abort()
			}
		}()
		c.Next()
	}
}

// NoRouteHandler answers unknown paths with the standard envelope
func NoRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.NotFoundResponse(c, "Endpoint tidak ditemukan")
	}
}

// NoMethodHandler answers unsupported methods with the standard envelope
func NoMethodHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, utils.APIResponse{
			Success: false,
			Message: "Method tidak diizinkan",
		})
	}
}
