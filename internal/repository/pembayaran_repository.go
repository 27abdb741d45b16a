package repository

import (
	"errors"

	"gorm.io/gorm"

	"kos-be-svc/internal/models"
	"kos-be-svc/internal/models/response"
)

// PembayaranFilter holds the optional list filters for pembayaran.
// UserID restricts the result to one tenant (row-level policy for penyewa).
type PembayaranFilter struct {
	UserID  *uint
	Status  *string
	Bulan   *int
	Tahun   *int
	KamarID *uint
}

// PembayaranRepository defines the interface for pembayaran data operations
type PembayaranRepository interface {
	FindAll(filter PembayaranFilter) ([]*models.Pembayaran, error)
	FindByID(id uint) (*models.Pembayaran, error)
	FindByIDWithRelations(id uint) (*models.Pembayaran, error)
	ExistsForPeriode(kamarID, userID uint, bulan, tahun int) (bool, error)
	Create(pembayaran *models.Pembayaran) error
	Update(pembayaran *models.Pembayaran) error
	Delete(pembayaran *models.Pembayaran) error
	Laporan(bulan, tahun int) (*response.LaporanPembayaranResponse, error)
	FindForLaporan(bulan, tahun int) ([]*models.Pembayaran, error)
}

// pembayaranRepository implements PembayaranRepository
type pembayaranRepository struct {
	db *gorm.DB
}

// NewPembayaranRepository creates a new instance of PembayaranRepository
func NewPembayaranRepository(db *gorm.DB) PembayaranRepository {
	return &pembayaranRepository{
		db: db,
	}
}

// FindAll retrieves pembayaran with kamar and user, newest period first
func (r *pembayaranRepository) FindAll(filter PembayaranFilter) ([]*models.Pembayaran, error) {
	var pembayarans []*models.Pembayaran

	query := r.db.Preload("Kamar").Preload("User")
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Bulan != nil && filter.Tahun != nil {
		query = query.Where("bulan_pembayaran = ? AND tahun_pembayaran = ?", *filter.Bulan, *filter.Tahun)
	}
	if filter.KamarID != nil {
		query = query.Where("kamar_id = ?", *filter.KamarID)
	}

	err := query.
		Order("tahun_pembayaran desc").
		Order("bulan_pembayaran desc").
		Find(&pembayarans).Error
	if err != nil {
		return nil, err
	}
	return pembayarans, nil
}

// FindByID retrieves a pembayaran by primary key, nil when not found
func (r *pembayaranRepository) FindByID(id uint) (*models.Pembayaran, error) {
	var pembayaran models.Pembayaran
	err := r.db.First(&pembayaran, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pembayaran, nil
}

// FindByIDWithRelations retrieves a pembayaran with kamar and user,
// nil when not found
func (r *pembayaranRepository) FindByIDWithRelations(id uint) (*models.Pembayaran, error) {
	var pembayaran models.Pembayaran
	err := r.db.Preload("Kamar").Preload("User").First(&pembayaran, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pembayaran, nil
}

// ExistsForPeriode reports whether a payment already exists for the
// (kamar, user, bulan, tahun) tuple
func (r *pembayaranRepository) ExistsForPeriode(kamarID, userID uint, bulan, tahun int) (bool, error) {
	var count int64
	err := r.db.Model(&models.Pembayaran{}).
		Where("kamar_id = ? AND user_id = ? AND bulan_pembayaran = ? AND tahun_pembayaran = ?",
			kamarID, userID, bulan, tahun).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a new pembayaran. The composite unique index rejects
// concurrent duplicates for the same periode.
func (r *pembayaranRepository) Create(pembayaran *models.Pembayaran) error {
	return r.db.Create(pembayaran).Error
}

// Update persists all fields of the pembayaran
func (r *pembayaranRepository) Update(pembayaran *models.Pembayaran) error {
	return r.db.Save(pembayaran).Error
}

// Delete removes the pembayaran row
func (r *pembayaranRepository) Delete(pembayaran *models.Pembayaran) error {
	return r.db.Delete(pembayaran).Error
}

// Laporan aggregates the payment report for one periode
func (r *pembayaranRepository) Laporan(bulan, tahun int) (*response.LaporanPembayaranResponse, error) {
	laporan := &response.LaporanPembayaranResponse{
		Bulan: bulan,
		Tahun: tahun,
	}

	err := r.db.Model(&models.Pembayaran{}).
		Where("bulan_pembayaran = ? AND tahun_pembayaran = ?", bulan, tahun).
		Select("COALESCE(SUM(jumlah), 0)").
		Scan(&laporan.TotalPembayaran).Error
	if err != nil {
		return nil, err
	}

	err = r.db.Model(&models.Pembayaran{}).
		Where("bulan_pembayaran = ? AND tahun_pembayaran = ? AND status = ?", bulan, tahun, models.StatusLunas).
		Count(&laporan.Lunas).Error
	if err != nil {
		return nil, err
	}

	err = r.db.Model(&models.Pembayaran{}).
		Where("bulan_pembayaran = ? AND tahun_pembayaran = ? AND status = ?", bulan, tahun, models.StatusBelum).
		Count(&laporan.BelumLunas).Error
	if err != nil {
		return nil, err
	}

	return laporan, nil
}

// FindForLaporan retrieves the payment rows of one periode for export,
// ordered by room number
func (r *pembayaranRepository) FindForLaporan(bulan, tahun int) ([]*models.Pembayaran, error) {
	var pembayarans []*models.Pembayaran
	err := r.db.
		Preload("Kamar").
		Preload("User").
		Where("bulan_pembayaran = ? AND tahun_pembayaran = ?", bulan, tahun).
		Joins("JOIN kamars ON kamars.id = pembayarans.kamar_id").
		Order("kamars.nomor_kamar asc").
		Find(&pembayarans).Error
	if err != nil {
		return nil, err
	}
	return pembayarans, nil
}
