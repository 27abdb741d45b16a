package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kos-be-svc/internal/middleware"
	"kos-be-svc/internal/service"
	"kos-be-svc/pkg/logger"
	"kos-be-svc/pkg/utils"
)

// PembayaranHandler handles pembayaran HTTP requests
type PembayaranHandler struct {
	pembayaranService service.PembayaranService
	logger            *logger.Logger
}

// NewPembayaranHandler creates a new pembayaran handler
func NewPembayaranHandler(pembayaranService service.PembayaranService, logger *logger.Logger) *PembayaranHandler {
	return &PembayaranHandler{
		pembayaranService: pembayaranService,
		logger:            logger,
	}
}

// List handles GET /api/pembayaran
// @Summary List pembayaran
// @Description Newest period first. Penyewa callers only see their own rows.
// @Tags pembayaran
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (lunas|belum)"
// @Param bulan query int false "Filter by month, together with tahun"
// @Param tahun query int false "Filter by year, together with bulan"
// @Param kamar_id query int false "Filter by kamar"
// @Success 200 {object} utils.APIResponse{data=[]models.Pembayaran}
// @Router /api/pembayaran [get]
func (h *PembayaranHandler) List(c *gin.Context) {
	filter, ok := parseListFilter(c)
	if !ok {
		return
	}

	pembayarans, err := h.pembayaranService.List(middleware.CurrentUser(c), filter)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "", pembayarans)
}

// Create handles POST /api/pembayaran
// @Summary Record a payment
// @Description One payment per (kamar, user, bulan, tahun); duplicates are rejected
// @Tags pembayaran
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.PembayaranCreateInput true "Pembayaran payload"
// @Success 201 {object} utils.APIResponse{data=models.Pembayaran} "Pembayaran berhasil dicatat"
// @Failure 400 {object} utils.APIResponse "Validation error or duplicate periode"
// @Router /api/pembayaran [post]
func (h *PembayaranHandler) Create(c *gin.Context) {
	var input service.PembayaranCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "Data tidak valid: "+err.Error())
		return
	}

	pembayaran, err := h.pembayaranService.Create(input)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Pembayaran berhasil dicatat", pembayaran)
}

// Get handles GET /api/pembayaran/:id
// @Summary Get pembayaran detail
// @Tags pembayaran
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pembayaran ID"
// @Success 200 {object} utils.APIResponse{data=models.Pembayaran}
// @Failure 403 {object} utils.APIResponse "Not the owner"
// @Failure 404 {object} utils.APIResponse "Pembayaran tidak ditemukan"
// @Router /api/pembayaran/{id} [get]
func (h *PembayaranHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	pembayaran, err := h.pembayaranService.Get(middleware.CurrentUser(c), id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "", pembayaran)
}

// Update handles PUT /api/pembayaran/:id
// @Summary Update pembayaran
// @Tags pembayaran
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pembayaran ID"
// @Param request body service.PembayaranUpdateInput true "Pembayaran payload"
// @Success 200 {object} utils.APIResponse{data=models.Pembayaran} "Pembayaran berhasil diupdate"
// @Failure 404 {object} utils.APIResponse "Pembayaran tidak ditemukan"
// @Router /api/pembayaran/{id} [put]
func (h *PembayaranHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input service.PembayaranUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "Data tidak valid: "+err.Error())
		return
	}

	pembayaran, err := h.pembayaranService.Update(id, input)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Pembayaran berhasil diupdate", pembayaran)
}

// Delete handles DELETE /api/pembayaran/:id
// @Summary Delete pembayaran
// @Tags pembayaran
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pembayaran ID"
// @Success 200 {object} utils.APIResponse "Pembayaran berhasil dihapus"
// @Failure 404 {object} utils.APIResponse "Pembayaran tidak ditemukan"
// @Router /api/pembayaran/{id} [delete]
func (h *PembayaranHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.pembayaranService.Delete(id); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Pembayaran berhasil dihapus", nil)
}

// ByKamar handles GET /api/pembayaran/kamar/:kamar_id
// @Summary Payment history of one kamar
// @Description Penyewa callers only see their own rows
// @Tags pembayaran
// @Produce json
// @Security BearerAuth
// @Param kamar_id path int true "Kamar ID"
// @Success 200 {object} utils.APIResponse{data=[]models.Pembayaran}
// @Router /api/pembayaran/kamar/{kamar_id} [get]
func (h *PembayaranHandler) ByKamar(c *gin.Context) {
	kamarID, ok := parseIDParam(c, "kamar_id")
	if !ok {
		return
	}

	pembayarans, err := h.pembayaranService.ByKamar(middleware.CurrentUser(c), kamarID)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "", pembayarans)
}

// Laporan handles GET /api/pembayaran/laporan/dashboard
// @Summary Monthly payment report
// @Description Defaults to the current month and year when omitted
// @Tags pembayaran
// @Produce json
// @Security BearerAuth
// @Param bulan query int false "Month (1-12)"
// @Param tahun query int false "Year"
// @Success 200 {object} utils.APIResponse{data=response.LaporanPembayaranResponse}
// @Router /api/pembayaran/laporan/dashboard [get]
func (h *PembayaranHandler) Laporan(c *gin.Context) {
	bulan, ok := parseOptionalIntQuery(c, "bulan")
	if !ok {
		return
	}
	tahun, ok := parseOptionalIntQuery(c, "tahun")
	if !ok {
		return
	}

	laporan, err := h.pembayaranService.Laporan(bulan, tahun)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "", laporan)
}

// ExportLaporan handles GET /api/pembayaran/laporan/export
// @Summary Export the monthly report as Excel
// @Tags pembayaran
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param bulan query int false "Month (1-12)"
// @Param tahun query int false "Year"
// @Success 200 {file} binary "Workbook"
// @Router /api/pembayaran/laporan/export [get]
func (h *PembayaranHandler) ExportLaporan(c *gin.Context) {
	bulan, ok := parseOptionalIntQuery(c, "bulan")
	if !ok {
		return
	}
	tahun, ok := parseOptionalIntQuery(c, "tahun")
	if !ok {
		return
	}

	content, filename, err := h.pembayaranService.ExportLaporan(bulan, tahun)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}

// parseListFilter reads the optional pembayaran list filters
func parseListFilter(c *gin.Context) (service.PembayaranListFilter, bool) {
	var filter service.PembayaranListFilter

	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}

	var ok bool
	if filter.Bulan, ok = parseOptionalIntQuery(c, "bulan"); !ok {
		return filter, false
	}
	if filter.Tahun, ok = parseOptionalIntQuery(c, "tahun"); !ok {
		return filter, false
	}

	if raw := c.Query("kamar_id"); raw != "" {
		kamarID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.BadRequestResponse(c, "Parameter kamar_id tidak valid")
			return filter, false
		}
		id := uint(kamarID)
		filter.KamarID = &id
	}

	return filter, true
}

// parseOptionalIntQuery reads an optional integer query parameter, writing
// the 400 envelope on malformed input
func parseOptionalIntQuery(c *gin.Context, name string) (*int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		utils.BadRequestResponse(c, "Parameter "+name+" tidak valid")
		return nil, false
	}
	return &value, true
}
