package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"kos-be-svc/internal/models"
	"kos-be-svc/internal/repository"
	"kos-be-svc/pkg/logger"
	"kos-be-svc/pkg/utils"
)

// Context keys for the authenticated caller
const (
	ContextUserKey  = "auth_user"
	ContextTokenKey = "auth_token"
)

// TokenAuth resolves the opaque bearer token against the token store and
// injects the caller into the request context. Revoked tokens fail here
// immediately since revocation deletes the row.
func TokenAuth(tokenRepo repository.TokenRepository, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			utils.UnauthorizedResponse(c, "Token tidak ditemukan")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		accessToken, err := tokenRepo.FindByToken(tokenString)
		if err != nil {
			log.WithError(err).Error("Failed to look up access token")
			utils.InternalServerErrorResponse(c, "Terjadi kesalahan pada server")
			c.Abort()
			return
		}
		if accessToken == nil || accessToken.User == nil {
			utils.UnauthorizedResponse(c, "Token tidak valid")
			c.Abort()
			return
		}

		if err := tokenRepo.Touch(accessToken); err != nil {
			log.WithError(err).WithField("user_id", accessToken.UserID).Warn("Failed to touch access token")
		}

		c.Set(ContextUserKey, accessToken.User)
		c.Set(ContextTokenKey, accessToken)
		c.Next()
	}
}

// AdminOnly rejects callers without the admin role. Must run after TokenAuth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin() {
			utils.ForbiddenResponse(c, "Akses ditolak")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated caller, nil when unauthenticated
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// CurrentToken returns the token row used for the current request
func CurrentToken(c *gin.Context) *models.AccessToken {
	value, exists := c.Get(ContextTokenKey)
	if !exists {
		return nil
	}
	token, ok := value.(*models.AccessToken)
	if !ok {
		return nil
	}
	return token
}
