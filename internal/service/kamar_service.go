package service

import (
	"kos-be-svc/internal/models"
	"kos-be-svc/internal/models/response"
	"kos-be-svc/internal/repository"
	"kos-be-svc/pkg/apperr"
	"kos-be-svc/pkg/logger"
)

// KamarCreateInput is the kamar creation request body
type KamarCreateInput struct {
	NomorKamar   string   `json:"nomor_kamar" binding:"required,max=10"`
	Tipe         string   `json:"tipe" binding:"required,oneof=single double"`
	HargaBulanan *float64 `json:"harga_bulanan" binding:"required,gte=0"`
	Status       string   `json:"status" binding:"required,oneof=tersedia terisi"`
	Fasilitas    *string  `json:"fasilitas"`
	UserID       *uint    `json:"user_id"`
}

// KamarUpdateInput is the partial kamar update request body
type KamarUpdateInput struct {
	NomorKamar   *string  `json:"nomor_kamar" binding:"omitempty,max=10"`
	Tipe         *string  `json:"tipe" binding:"omitempty,oneof=single double"`
	HargaBulanan *float64 `json:"harga_bulanan" binding:"omitempty,gte=0"`
	Status       *string  `json:"status" binding:"omitempty,oneof=tersedia terisi"`
	Fasilitas    *string  `json:"fasilitas"`
	UserID       *uint    `json:"user_id"`
}

// KamarService interface defines kamar operations
type KamarService interface {
	List(filter repository.KamarFilter) ([]*models.Kamar, error)
	Create(input KamarCreateInput) (*models.Kamar, error)
	Get(id uint) (*models.Kamar, error)
	Update(id uint, input KamarUpdateInput) (*models.Kamar, error)
	Delete(id uint) error
	Statistics() (*response.KamarStatisticsResponse, error)
}

// kamarService implements KamarService interface
type kamarService struct {
	kamarRepo repository.KamarRepository
	userRepo  repository.UserRepository
	logger    *logger.Logger
}

// NewKamarService creates a new kamar service
func NewKamarService(kamarRepo repository.KamarRepository, userRepo repository.UserRepository, logger *logger.Logger) KamarService {
	return &kamarService{
		kamarRepo: kamarRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// List retrieves kamar ordered by nomor_kamar with the occupying user
func (s *kamarService) List(filter repository.KamarFilter) ([]*models.Kamar, error) {
	kamars, err := s.kamarRepo.FindAll(filter)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list kamar")
		return nil, err
	}
	return kamars, nil
}

// Create validates and stores a new kamar
func (s *kamarService) Create(input KamarCreateInput) (*models.Kamar, error) {
	if input.Tipe != models.TipeSingle && input.Tipe != models.TipeDouble {
		return nil, apperr.Validation("Tipe kamar tidak valid")
	}
	if input.Status != models.StatusTersedia && input.Status != models.StatusTerisi {
		return nil, apperr.Validation("Status kamar tidak valid")
	}
	if input.HargaBulanan == nil || *input.HargaBulanan < 0 {
		return nil, apperr.Validation("Harga bulanan tidak boleh negatif")
	}

	taken, err := s.kamarRepo.NomorExists(input.NomorKamar, 0)
	if err != nil {
		s.logger.WithError(err).Error("Failed to check nomor kamar uniqueness")
		return nil, err
	}
	if taken {
		return nil, apperr.Validation("Nomor kamar sudah digunakan")
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
	}

	kamar := &models.Kamar{
		NomorKamar:   input.NomorKamar,
		Tipe:         input.Tipe,
		HargaBulanan: *input.HargaBulanan,
		Status:       input.Status,
		Fasilitas:    input.Fasilitas,
		UserID:       input.UserID,
	}
	if err := s.kamarRepo.Create(kamar); err != nil {
		s.logger.WithError(err).WithField("nomor_kamar", input.NomorKamar).Error("Failed to create kamar")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"kamar_id":    kamar.ID,
		"nomor_kamar": kamar.NomorKamar,
	}).Info("Kamar created")

	return kamar, nil
}

// Get retrieves one kamar with its user and payment history
func (s *kamarService) Get(id uint) (*models.Kamar, error) {
	kamar, err := s.kamarRepo.FindByIDWithRelations(id)
	if err != nil {
		s.logger.WithError(err).WithField("kamar_id", id).Error("Failed to get kamar")
		return nil, err
	}
	if kamar == nil {
		return nil, apperr.NotFound("Kamar tidak ditemukan")
	}
	return kamar, nil
}

// Update applies a partial update; the nomor_kamar uniqueness check excludes
// the record's own id
func (s *kamarService) Update(id uint, input KamarUpdateInput) (*models.Kamar, error) {
	kamar, err := s.kamarRepo.FindByID(id)
	if err != nil {
		s.logger.WithError(err).WithField("kamar_id", id).Error("Failed to get kamar")
		return nil, err
	}
	if kamar == nil {
		return nil, apperr.NotFound("Kamar tidak ditemukan")
	}

	if input.NomorKamar != nil {
		taken, err := s.kamarRepo.NomorExists(*input.NomorKamar, id)
		if err != nil {
			s.logger.WithError(err).Error("Failed to check nomor kamar uniqueness")
			return nil, err
		}
		if taken {
			return nil, apperr.Validation("Nomor kamar sudah digunakan")
		}
		kamar.NomorKamar = *input.NomorKamar
	}
	if input.Tipe != nil {
		if *input.Tipe != models.TipeSingle && *input.Tipe != models.TipeDouble {
			return nil, apperr.Validation("Tipe kamar tidak valid")
		}
		kamar.Tipe = *input.Tipe
	}
	if input.HargaBulanan != nil {
		if *input.HargaBulanan < 0 {
			return nil, apperr.Validation("Harga bulanan tidak boleh negatif")
		}
		kamar.HargaBulanan = *input.HargaBulanan
	}
	if input.Status != nil {
		if *input.Status != models.StatusTersedia && *input.Status != models.StatusTerisi {
			return nil, apperr.Validation("Status kamar tidak valid")
		}
		kamar.Status = *input.Status
	}
	if input.Fasilitas != nil {
		kamar.Fasilitas = input.Fasilitas
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
		kamar.UserID = input.UserID
	}

	if err := s.kamarRepo.Update(kamar); err != nil {
		s.logger.WithError(err).WithField("kamar_id", id).Error("Failed to update kamar")
		return nil, err
	}

	s.logger.WithField("kamar_id", id).Info("Kamar updated")
	return kamar, nil
}

// Delete removes a kamar unless payment history references it
func (s *kamarService) Delete(id uint) error {
	kamar, err := s.kamarRepo.FindByID(id)
	if err != nil {
		s.logger.WithError(err).WithField("kamar_id", id).Error("Failed to get kamar")
		return err
	}
	if kamar == nil {
		return apperr.NotFound("Kamar tidak ditemukan")
	}

	count, err := s.kamarRepo.CountPembayaran(id)
	if err != nil {
		s.logger.WithError(err).WithField("kamar_id", id).Error("Failed to count pembayaran")
		return err
	}
	if count > 0 {
		return apperr.Conflict("Kamar tidak bisa dihapus karena memiliki riwayat pembayaran")
	}

	if err := s.kamarRepo.Delete(kamar); err != nil {
		s.logger.WithError(err).WithField("kamar_id", id).Error("Failed to delete kamar")
		return err
	}

	s.logger.WithField("kamar_id", id).Info("Kamar deleted")
	return nil
}

// Statistics returns the kamar dashboard counters
func (s *kamarService) Statistics() (*response.KamarStatisticsResponse, error) {
	stats, err := s.kamarRepo.Statistics()
	if err != nil {
		s.logger.WithError(err).Error("Failed to get kamar statistics")
		return nil, err
	}
	return stats, nil
}
