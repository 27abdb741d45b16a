package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"kos-be-svc/internal/models"
	"kos-be-svc/internal/models/response"
	"kos-be-svc/internal/repository"
	"kos-be-svc/pkg/apperr"
	"kos-be-svc/pkg/logger"
)

// tanggalLayout is the wire format for tanggal_bayar
const tanggalLayout = "2006-01-02"

// PembayaranCreateInput is the pembayaran creation request body
type PembayaranCreateInput struct {
	KamarID         uint     `json:"kamar_id" binding:"required"`
	UserID          uint     `json:"user_id" binding:"required"`
	BulanPembayaran int      `json:"bulan_pembayaran" binding:"required,gte=1,lte=12"`
	TahunPembayaran int      `json:"tahun_pembayaran" binding:"required,gte=2020"`
	TanggalBayar    string   `json:"tanggal_bayar" binding:"required"`
	Jumlah          *float64 `json:"jumlah" binding:"required,gte=0"`
	Status          string   `json:"status" binding:"required,oneof=lunas belum"`
	BuktiBayar      *string  `json:"bukti_bayar"`
}

// PembayaranUpdateInput is the partial pembayaran update request body
type PembayaranUpdateInput struct {
	KamarID         *uint    `json:"kamar_id"`
	UserID          *uint    `json:"user_id"`
	BulanPembayaran *int     `json:"bulan_pembayaran" binding:"omitempty,gte=1,lte=12"`
	TahunPembayaran *int     `json:"tahun_pembayaran" binding:"omitempty,gte=2020"`
	TanggalBayar    *string  `json:"tanggal_bayar"`
	Jumlah          *float64 `json:"jumlah" binding:"omitempty,gte=0"`
	Status          *string  `json:"status" binding:"omitempty,oneof=lunas belum"`
	BuktiBayar      *string  `json:"bukti_bayar"`
}

// PembayaranListFilter holds the caller-supplied list filters
type PembayaranListFilter struct {
	Status  *string
	Bulan   *int
	Tahun   *int
	KamarID *uint
}

// PembayaranService interface defines pembayaran operations
type PembayaranService interface {
	List(caller *models.User, filter PembayaranListFilter) ([]*models.Pembayaran, error)
	Create(input PembayaranCreateInput) (*models.Pembayaran, error)
	Get(caller *models.User, id uint) (*models.Pembayaran, error)
	Update(id uint, input PembayaranUpdateInput) (*models.Pembayaran, error)
	Delete(id uint) error
	ByKamar(caller *models.User, kamarID uint) ([]*models.Pembayaran, error)
	Laporan(bulan, tahun *int) (*response.LaporanPembayaranResponse, error)
	ExportLaporan(bulan, tahun *int) ([]byte, string, error)
}

// pembayaranService implements PembayaranService interface
type pembayaranService struct {
	pembayaranRepo repository.PembayaranRepository
	kamarRepo      repository.KamarRepository
	userRepo       repository.UserRepository
	logger         *logger.Logger
}

// NewPembayaranService creates a new pembayaran service
func NewPembayaranService(
	pembayaranRepo repository.PembayaranRepository,
	kamarRepo repository.KamarRepository,
	userRepo repository.UserRepository,
	logger *logger.Logger,
) PembayaranService {
	return &pembayaranService{
		pembayaranRepo: pembayaranRepo,
		kamarRepo:      kamarRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

// List retrieves pembayaran newest period first. Penyewa callers only ever
// see their own rows, whatever filters they supply.
func (s *pembayaranService) List(caller *models.User, filter PembayaranListFilter) ([]*models.Pembayaran, error) {
	repoFilter := repository.PembayaranFilter{
		Status:  filter.Status,
		Bulan:   filter.Bulan,
		Tahun:   filter.Tahun,
		KamarID: filter.KamarID,
	}
	if caller.IsPenyewa() {
		repoFilter.UserID = &caller.ID
	}

	pembayarans, err := s.pembayaranRepo.FindAll(repoFilter)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list pembayaran")
		return nil, err
	}
	return pembayarans, nil
}

// Create validates and stores a new payment record. The duplicate check is
// advisory; the composite unique index is what holds under concurrent creates.
func (s *pembayaranService) Create(input PembayaranCreateInput) (*models.Pembayaran, error) {
	if input.BulanPembayaran < 1 || input.BulanPembayaran > 12 {
		return nil, apperr.Validation("Bulan pembayaran harus antara 1-12")
	}
	if input.TahunPembayaran < models.MinTahunPembayaran {
		return nil, apperr.Validation("Tahun pembayaran tidak valid")
	}
	if input.Jumlah == nil || *input.Jumlah < 0 {
		return nil, apperr.Validation("Jumlah pembayaran tidak boleh negatif")
	}
	if input.Status != models.StatusLunas && input.Status != models.StatusBelum {
		return nil, apperr.Validation("Status pembayaran tidak valid")
	}

	tanggalBayar, err := time.Parse(tanggalLayout, input.TanggalBayar)
	if err != nil {
		return nil, apperr.Validation("Format tanggal bayar tidak valid")
	}

	kamarExists, err := s.kamarRepo.Exists(input.KamarID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to check kamar existence")
		return nil, err
	}
	if !kamarExists {
		return nil, apperr.Validation("Kamar tidak ditemukan")
	}

	userExists, err := s.userRepo.Exists(input.UserID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to check user existence")
		return nil, err
	}
	if !userExists {
		return nil, apperr.Validation("User tidak ditemukan")
	}

	exists, err := s.pembayaranRepo.ExistsForPeriode(input.KamarID, input.UserID, input.BulanPembayaran, input.TahunPembayaran)
	if err != nil {
		s.logger.WithError(err).Error("Failed to check pembayaran periode")
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("Pembayaran untuk bulan ini sudah tercatat")
	}

	pembayaran := &models.Pembayaran{
		KamarID:         input.KamarID,
		UserID:          input.UserID,
		BulanPembayaran: input.BulanPembayaran,
		TahunPembayaran: input.TahunPembayaran,
		TanggalBayar:    tanggalBayar,
		Jumlah:          *input.Jumlah,
		Status:          input.Status,
		BuktiBayar:      input.BuktiBayar,
	}
	if err := s.pembayaranRepo.Create(pembayaran); err != nil {
		// A concurrent create for the same periode loses the race here
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Pembayaran untuk bulan ini sudah tercatat")
		}
		s.logger.WithError(err).WithFields(map[string]interface{}{
			"kamar_id": input.KamarID,
			"user_id":  input.UserID,
		}).Error("Failed to create pembayaran")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"pembayaran_id": pembayaran.ID,
		"kamar_id":      pembayaran.KamarID,
		"user_id":       pembayaran.UserID,
		"bulan":         pembayaran.BulanPembayaran,
		"tahun":         pembayaran.TahunPembayaran,
	}).Info("Pembayaran created")

	return s.pembayaranRepo.FindByIDWithRelations(pembayaran.ID)
}

// Get retrieves one payment record. Penyewa callers may only see their own.
func (s *pembayaranService) Get(caller *models.User, id uint) (*models.Pembayaran, error) {
	pembayaran, err := s.pembayaranRepo.FindByIDWithRelations(id)
	if err != nil {
		s.logger.WithError(err).WithField("pembayaran_id", id).Error("Failed to get pembayaran")
		return nil, err
	}
	if pembayaran == nil {
		return nil, apperr.NotFound("Pembayaran tidak ditemukan")
	}
	if caller.IsPenyewa() && pembayaran.UserID != caller.ID {
		return nil, apperr.Forbidden("Akses ditolak")
	}
	return pembayaran, nil
}

// Update applies a partial update to a payment record
func (s *pembayaranService) Update(id uint, input PembayaranUpdateInput) (*models.Pembayaran, error) {
	pembayaran, err := s.pembayaranRepo.FindByID(id)
	if err != nil {
		s.logger.WithError(err).WithField("pembayaran_id", id).Error("Failed to get pembayaran")
		return nil, err
	}
	if pembayaran == nil {
		return nil, apperr.NotFound("Pembayaran tidak ditemukan")
	}

	if input.KamarID != nil {
		exists, err := s.kamarRepo.Exists(*input.KamarID)
		if err != nil {
			s.logger.WithError(err).Error("Failed to check kamar existence")
			return nil, err
		}
		if !exists {
			return nil, apperr.Validation("Kamar tidak ditemukan")
		}
		pembayaran.KamarID = *input.KamarID
	}
	if input.UserID != nil {
		exists, err := s.userRepo.Exists(*input.UserID)
		if err != nil {
			s.logger.WithError(err).Error("Failed to check user existence")
			return nil, err
		}
		if !exists {
			return nil, apperr.Validation("User tidak ditemukan")
		}
		pembayaran.UserID = *input.UserID
	}
	if input.BulanPembayaran != nil {
		if *input.BulanPembayaran < 1 || *input.BulanPembayaran > 12 {
			return nil, apperr.Validation("Bulan pembayaran harus antara 1-12")
		}
		pembayaran.BulanPembayaran = *input.BulanPembayaran
	}
	if input.TahunPembayaran != nil {
		if *input.TahunPembayaran < models.MinTahunPembayaran {
			return nil, apperr.Validation("Tahun pembayaran tidak valid")
		}
		pembayaran.TahunPembayaran = *input.TahunPembayaran
	}
	if input.TanggalBayar != nil {
		tanggalBayar, err := time.Parse(tanggalLayout, *input.TanggalBayar)
		if err != nil {
			return nil, apperr.Validation("Format tanggal bayar tidak valid")
		}
		pembayaran.TanggalBayar = tanggalBayar
	}
	if input.Jumlah != nil {
		if *input.Jumlah < 0 {
			return nil, apperr.Validation("Jumlah pembayaran tidak boleh negatif")
		}
		pembayaran.Jumlah = *input.Jumlah
	}
	if input.Status != nil {
		if *input.Status != models.StatusLunas && *input.Status != models.StatusBelum {
			return nil, apperr.Validation("Status pembayaran tidak valid")
		}
		pembayaran.Status = *input.Status
	}
	if input.BuktiBayar != nil {
		pembayaran.BuktiBayar = input.BuktiBayar
	}

	if err := s.pembayaranRepo.Update(pembayaran); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Pembayaran untuk bulan ini sudah tercatat")
		}
		s.logger.WithError(err).WithField("pembayaran_id", id).Error("Failed to update pembayaran")
		return nil, err
	}

	s.logger.WithField("pembayaran_id", id).Info("Pembayaran updated")
	return s.pembayaranRepo.FindByIDWithRelations(id)
}

// Delete removes a payment record
func (s *pembayaranService) Delete(id uint) error {
	pembayaran, err := s.pembayaranRepo.FindByID(id)
	if err != nil {
		s.logger.WithError(err).WithField("pembayaran_id", id).Error("Failed to get pembayaran")
		return err
	}
	if pembayaran == nil {
		return apperr.NotFound("Pembayaran tidak ditemukan")
	}

	if err := s.pembayaranRepo.Delete(pembayaran); err != nil {
		s.logger.WithError(err).WithField("pembayaran_id", id).Error("Failed to delete pembayaran")
		return err
	}

	s.logger.WithField("pembayaran_id", id).Info("Pembayaran deleted")
	return nil
}

// ByKamar retrieves the payment history of one kamar. The penyewa row filter
// applies here exactly as in List.
func (s *pembayaranService) ByKamar(caller *models.User, kamarID uint) ([]*models.Pembayaran, error) {
	filter := repository.PembayaranFilter{
		KamarID: &kamarID,
	}
	if caller.IsPenyewa() {
		filter.UserID = &caller.ID
	}

	pembayarans, err := s.pembayaranRepo.FindAll(filter)
	if err != nil {
		s.logger.WithError(err).WithField("kamar_id", kamarID).Error("Failed to list pembayaran by kamar")
		return nil, err
	}
	return pembayarans, nil
}

// Laporan aggregates one periode, defaulting to the current month and year
func (s *pembayaranService) Laporan(bulan, tahun *int) (*response.LaporanPembayaranResponse, error) {
	b, t, err := resolvePeriode(bulan, tahun)
	if err != nil {
		return nil, err
	}

	laporan, err := s.pembayaranRepo.Laporan(b, t)
	if err != nil {
		s.logger.WithError(err).WithFields(map[string]interface{}{
			"bulan": b,
			"tahun": t,
		}).Error("Failed to build laporan")
		return nil, err
	}
	return laporan, nil
}

// resolvePeriode fills missing bulan/tahun with the current calendar values
func resolvePeriode(bulan, tahun *int) (int, int, error) {
	now := time.Now()
	b := int(now.Month())
	t := now.Year()
	if bulan != nil {
		if *bulan < 1 || *bulan > 12 {
			return 0, 0, apperr.Validation("Bulan pembayaran harus antara 1-12")
		}
		b = *bulan
	}
	if tahun != nil {
		if *tahun < models.MinTahunPembayaran {
			return 0, 0, apperr.Validation("Tahun pembayaran tidak valid")
		}
		t = *tahun
	}
	return b, t, nil
}

// monthNames for the Excel export header
var monthNames = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// statusLabel translates a pembayaran status for the export
func statusLabel(status string) string {
	if status == models.StatusLunas {
		return "Lunas"
	}
	return "Belum Lunas"
}

const fallbackDash = "-"

func fmtMonth(bulan int) string {
	if bulan >= 1 && bulan <= 12 {
		return monthNames[bulan-1]
	}
	return fmt.Sprintf("%d", bulan)
}
