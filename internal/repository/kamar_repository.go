package repository

import (
	"errors"

	"gorm.io/gorm"

	"kos-be-svc/internal/models"
	"kos-be-svc/internal/models/response"
)

// KamarFilter holds the optional list filters for kamar
type KamarFilter struct {
	Status *string
	Tipe   *string
}

// KamarRepository defines the interface for kamar data operations
type KamarRepository interface {
	FindAll(filter KamarFilter) ([]*models.Kamar, error)
	FindByID(id uint) (*models.Kamar, error)
	FindByIDWithRelations(id uint) (*models.Kamar, error)
	NomorExists(nomorKamar string, excludeID uint) (bool, error)
	Exists(id uint) (bool, error)
	Create(kamar *models.Kamar) error
	Update(kamar *models.Kamar) error
	Delete(kamar *models.Kamar) error
	CountPembayaran(kamarID uint) (int64, error)
	Statistics() (*response.KamarStatisticsResponse, error)
}

// kamarRepository implements KamarRepository
type kamarRepository struct {
	db *gorm.DB
}

// NewKamarRepository creates a new instance of KamarRepository
func NewKamarRepository(db *gorm.DB) KamarRepository {
	return &kamarRepository{
		db: db,
	}
}

// FindAll retrieves kamar with the occupying user, ordered by nomor_kamar
func (r *kamarRepository) FindAll(filter KamarFilter) ([]*models.Kamar, error) {
	var kamars []*models.Kamar

	query := r.db.Preload("User")
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Tipe != nil {
		query = query.Where("tipe = ?", *filter.Tipe)
	}

	err := query.Order("nomor_kamar asc").Find(&kamars).Error
	if err != nil {
		return nil, err
	}
	return kamars, nil
}

// FindByID retrieves a kamar by primary key, nil when not found
func (r *kamarRepository) FindByID(id uint) (*models.Kamar, error) {
	var kamar models.Kamar
	err := r.db.First(&kamar, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &kamar, nil
}

// FindByIDWithRelations retrieves a kamar with its user and payment history,
// nil when not found
func (r *kamarRepository) FindByIDWithRelations(id uint) (*models.Kamar, error) {
	var kamar models.Kamar
	err := r.db.
		Preload("User").
		Preload("Pembayarans", func(db *gorm.DB) *gorm.DB {
			return db.Order("tahun_pembayaran desc, bulan_pembayaran desc")
		}).
		First(&kamar, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &kamar, nil
}

// NomorExists reports whether another kamar already uses the room number.
// excludeID is ignored when zero.
func (r *kamarRepository) NomorExists(nomorKamar string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&models.Kamar{}).Where("nomor_kamar = ?", nomorKamar)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Exists reports whether a kamar with the id exists
func (r *kamarRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Kamar{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a new kamar
func (r *kamarRepository) Create(kamar *models.Kamar) error {
	return r.db.Create(kamar).Error
}

// Update persists all fields of the kamar
func (r *kamarRepository) Update(kamar *models.Kamar) error {
	return r.db.Save(kamar).Error
}

// Delete removes the kamar row
func (r *kamarRepository) Delete(kamar *models.Kamar) error {
	return r.db.Delete(kamar).Error
}

// CountPembayaran counts payment records referencing the kamar
func (r *kamarRepository) CountPembayaran(kamarID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Pembayaran{}).
		Where("kamar_id = ?", kamarID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Statistics counts kamar per status for the dashboard
func (r *kamarRepository) Statistics() (*response.KamarStatisticsResponse, error) {
	var stats response.KamarStatisticsResponse

	if err := r.db.Model(&models.Kamar{}).Count(&stats.TotalKamar).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Kamar{}).Where("status = ?", models.StatusTersedia).Count(&stats.KamarTersedia).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Kamar{}).Where("status = ?", models.StatusTerisi).Count(&stats.KamarTerisi).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
