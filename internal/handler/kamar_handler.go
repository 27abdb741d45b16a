package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"kos-be-svc/internal/repository"
	"kos-be-svc/internal/service"
	"kos-be-svc/pkg/logger"
	"kos-be-svc/pkg/utils"
)

// KamarHandler handles kamar HTTP requests
type KamarHandler struct {
	kamarService service.KamarService
	logger       *logger.Logger
}

// NewKamarHandler creates a new kamar handler
func NewKamarHandler(kamarService service.KamarService, logger *logger.Logger) *KamarHandler {
	return &KamarHandler{
		kamarService: kamarService,
		logger:       logger,
	}
}

// List handles GET /api/kamar
// @Summary List kamar
// @Description List rooms ordered by nomor_kamar with the occupying user
// @Tags kamar
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (tersedia|terisi)"
// @Param tipe query string false "Filter by tipe (single|double)"
// @Success 200 {object} utils.APIResponse{data=[]models.Kamar}
// @Router /api/kamar [get]
func (h *KamarHandler) List(c *gin.Context) {
	var filter repository.KamarFilter
	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}
	if tipe := c.Query("tipe"); tipe != "" {
		filter.Tipe = &tipe
	}

	kamars, err := h.kamarService.List(filter)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "", kamars)
}

// Create handles POST /api/kamar
// @Summary Create kamar
// @Tags kamar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.KamarCreateInput true "Kamar payload"
// @Success 201 {object} utils.APIResponse{data=models.Kamar} "Kamar berhasil ditambahkan"
// @Failure 400 {object} utils.APIResponse "Validation error"
// @Failure 403 {object} utils.APIResponse "Admin only"
// @Router /api/kamar [post]
func (h *KamarHandler) Create(c *gin.Context) {
	var input service.KamarCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "Data tidak valid: "+err.Error())
		return
	}

	kamar, err := h.kamarService.Create(input)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Kamar berhasil ditambahkan", kamar)
}

// Get handles GET /api/kamar/:id
// @Summary Get kamar detail
// @Description Room with its user and payment history
// @Tags kamar
// @Produce json
// @Security BearerAuth
// @Param id path int true "Kamar ID"
// @Success 200 {object} utils.APIResponse{data=models.Kamar}
// @Failure 404 {object} utils.APIResponse "Kamar tidak ditemukan"
// @Router /api/kamar/{id} [get]
func (h *KamarHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	kamar, err := h.kamarService.Get(id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "", kamar)
}

// Update handles PUT /api/kamar/:id
// @Summary Update kamar
// @Description Partial update; nomor_kamar uniqueness excludes the record itself
// @Tags kamar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Kamar ID"
// @Param request body service.KamarUpdateInput true "Kamar payload"
// @Success 200 {object} utils.APIResponse{data=models.Kamar} "Kamar berhasil diupdate"
// @Failure 400 {object} utils.APIResponse "Validation error"
// @Failure 404 {object} utils.APIResponse "Kamar tidak ditemukan"
// @Router /api/kamar/{id} [put]
func (h *KamarHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input service.KamarUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "Data tidak valid: "+err.Error())
		return
	}

	kamar, err := h.kamarService.Update(id, input)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Kamar berhasil diupdate", kamar)
}

// Delete handles DELETE /api/kamar/:id
// @Summary Delete kamar
// @Description Fails when the room has payment history
// @Tags kamar
// @Produce json
// @Security BearerAuth
// @Param id path int true "Kamar ID"
// @Success 200 {object} utils.APIResponse "Kamar berhasil dihapus"
// @Failure 400 {object} utils.APIResponse "Kamar has payment history"
// @Failure 404 {object} utils.APIResponse "Kamar tidak ditemukan"
// @Router /api/kamar/{id} [delete]
func (h *KamarHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.kamarService.Delete(id); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Kamar berhasil dihapus", nil)
}

// Statistics handles GET /api/kamar/statistics/dashboard
// @Summary Kamar statistics
// @Tags kamar
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=response.KamarStatisticsResponse}
// @Router /api/kamar/statistics/dashboard [get]
func (h *KamarHandler) Statistics(c *gin.Context) {
	stats, err := h.kamarService.Statistics()
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "", stats)
}

// parseIDParam parses a numeric path parameter, writing the 400 envelope on
// failure
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, "Parameter "+name+" tidak valid")
		return 0, false
	}
	return uint(id), true
}
