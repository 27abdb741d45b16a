package repository

import (
	"errors"

	"gorm.io/gorm"

	"kos-be-svc/internal/models"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByIDWithRelations(id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	EmailExists(email string, excludeID uint) (bool, error)
	Exists(id uint) (bool, error)
	FindPenyewa() ([]*models.User, error)
	Update(user *models.User) error
	Delete(user *models.User) error
	CountKamarTerisi(userID uint) (int64, error)
}

// userRepository implements UserRepository
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create inserts a new user
func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID retrieves a user by primary key, nil when not found
func (r *userRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIDWithRelations retrieves a user with kamar and pembayaran history,
// nil when not found
func (r *userRepository) FindByIDWithRelations(id uint) (*models.User, error) {
	var user models.User
	err := r.db.
		Preload("Kamars").
		Preload("Pembayarans", func(db *gorm.DB) *gorm.DB {
			return db.Order("tahun_pembayaran desc, bulan_pembayaran desc")
		}).
		First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail retrieves a user by email, nil when not found
func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// EmailExists reports whether another user already uses the email.
// excludeID is ignored when zero.
func (r *userRepository) EmailExists(email string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&models.User{}).Where("email = ?", email)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Exists reports whether a user with the id exists
func (r *userRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindPenyewa retrieves all penyewa users ordered by nama with their kamar
func (r *userRepository) FindPenyewa() ([]*models.User, error) {
	var users []*models.User
	err := r.db.
		Where("role = ?", models.RolePenyewa).
		Preload("Kamars").
		Order("nama asc").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Update persists all fields of the user
func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete removes the user row
func (r *userRepository) Delete(user *models.User) error {
	return r.db.Delete(user).Error
}

// CountKamarTerisi counts kamar the user currently occupies with status terisi
func (r *userRepository) CountKamarTerisi(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Kamar{}).
		Where("user_id = ? AND status = ?", userID, models.StatusTerisi).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
