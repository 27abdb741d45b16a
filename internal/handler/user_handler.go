package handler

import (
	"github.com/gin-gonic/gin"

	"kos-be-svc/internal/service"
	"kos-be-svc/pkg/logger"
	"kos-be-svc/pkg/utils"
)

// UserHandler handles user management HTTP requests
type UserHandler struct {
	userService service.UserService
	logger      *logger.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserService, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// List handles GET /api/users
// @Summary List penyewa
// @Description Penyewa accounts ordered by nama with their kamar
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=[]models.User}
// @Failure 403 {object} utils.APIResponse "Admin only"
// @Router /api/users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List()
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "", users)
}

// Create handles POST /api/users
// @Summary Create penyewa
// @Description The created account always gets the penyewa role
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.UserCreateInput true "Penyewa payload"
// @Success 201 {object} utils.APIResponse{data=models.User} "Penyewa berhasil ditambahkan"
// @Failure 400 {object} utils.APIResponse "Validation error"
// @Router /api/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var input service.UserCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "Data tidak valid: "+err.Error())
		return
	}

	user, err := h.userService.Create(input)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Penyewa berhasil ditambahkan", user)
}

// Get handles GET /api/users/:id
// @Summary Get user detail
// @Description User with kamar and pembayaran history
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} utils.APIResponse{data=models.User}
// @Failure 404 {object} utils.APIResponse "User tidak ditemukan"
// @Router /api/users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.Get(id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "", user)
}

// Update handles PUT /api/users/:id
// @Summary Update user
// @Description Partial update; a supplied password is re-hashed
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body service.UserUpdateInput true "User payload"
// @Success 200 {object} utils.APIResponse{data=models.User} "User berhasil diupdate"
// @Failure 400 {object} utils.APIResponse "Validation error"
// @Failure 404 {object} utils.APIResponse "User tidak ditemukan"
// @Router /api/users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input service.UserUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "Data tidak valid: "+err.Error())
		return
	}

	user, err := h.userService.Update(id, input)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "User berhasil diupdate", user)
}

// Delete handles DELETE /api/users/:id
// @Summary Delete user
// @Description Fails while the user occupies a kamar with status terisi
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} utils.APIResponse "User berhasil dihapus"
// @Failure 400 {object} utils.APIResponse "User still occupies a kamar"
// @Failure 404 {object} utils.APIResponse "User tidak ditemukan"
// @Router /api/users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.userService.Delete(id); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "User berhasil dihapus", nil)
}
