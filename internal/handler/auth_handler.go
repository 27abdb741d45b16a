package handler

import (
	"github.com/gin-gonic/gin"

	"kos-be-svc/internal/middleware"
	"kos-be-svc/internal/service"
	"kos-be-svc/pkg/logger"
	"kos-be-svc/pkg/utils"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService service.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register handles POST /api/register
// @Summary Register a new account
// @Description Create a user account and issue a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.RegisterInput true "Registration payload"
// @Success 201 {object} utils.APIResponse{data=response.AuthResponse} "Registrasi berhasil"
// @Failure 400 {object} utils.APIResponse "Validation error"
// @Router /api/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input service.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "Data tidak valid: "+err.Error())
		return
	}

	result, err := h.authService.Register(input)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Registrasi berhasil", result)
}

// Login handles POST /api/login
// @Summary Log in
// @Description Verify credentials and rotate the session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.LoginInput true "Login payload"
// @Success 200 {object} utils.APIResponse{data=response.AuthResponse} "Login berhasil"
// @Failure 400 {object} utils.APIResponse "Invalid credentials"
// @Router /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input service.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "Data tidak valid: "+err.Error())
		return
	}

	result, err := h.authService.Login(input)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Login berhasil", result)
}

// Logout handles POST /api/logout
// @Summary Log out
// @Description Revoke the token used for this request
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse "Logout berhasil"
// @Failure 401 {object} utils.APIResponse "Unauthenticated"
// @Router /api/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.CurrentToken(c)
	if token == nil {
		utils.UnauthorizedResponse(c, "Token tidak valid")
		return
	}

	if err := h.authService.Logout(token); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Logout berhasil", nil)
}

// Profile handles GET /api/profile
// @Summary Get own profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=models.User}
// @Failure 401 {object} utils.APIResponse "Unauthenticated"
// @Router /api/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	utils.SuccessResponse(c, "", user)
}

// UpdateProfile handles PUT /api/profile
// @Summary Update own profile
// @Description Partial update; absent fields are left unchanged
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.UpdateProfileInput true "Profile payload"
// @Success 200 {object} utils.APIResponse{data=models.User} "Profile berhasil diupdate"
// @Failure 400 {object} utils.APIResponse "Validation error"
// @Router /api/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var input service.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "Data tidak valid: "+err.Error())
		return
	}

	user, err := h.authService.UpdateProfile(middleware.CurrentUser(c), input)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Profile berhasil diupdate", user)
}

// ChangePassword handles POST /api/profile/change-password
// @Summary Change own password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.ChangePasswordInput true "Password payload"
// @Success 200 {object} utils.APIResponse "Password berhasil diubah"
// @Failure 400 {object} utils.APIResponse "Old password mismatch"
// @Router /api/profile/change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var input service.ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "Data tidak valid: "+err.Error())
		return
	}

	if err := h.authService.ChangePassword(middleware.CurrentUser(c), input); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Password berhasil diubah", nil)
}
