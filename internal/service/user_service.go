package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kos-be-svc/internal/models"
	"kos-be-svc/internal/repository"
	"kos-be-svc/pkg/apperr"
	"kos-be-svc/pkg/logger"
)

// UserCreateInput is the admin tenant creation request body. The role is not
// part of the input: created accounts are always penyewa.
type UserCreateInput struct {
	Nama      string  `json:"nama" binding:"required,max=100"`
	Email     string  `json:"email" binding:"required,email,max=100"`
	Password  string  `json:"password" binding:"required,min=6"`
	NoTelepon *string `json:"no_telepon" binding:"omitempty,max=15"`
}

// UserUpdateInput is the partial user update request body
type UserUpdateInput struct {
	Nama      *string `json:"nama" binding:"omitempty,max=100"`
	Email     *string `json:"email" binding:"omitempty,email,max=100"`
	Password  *string `json:"password" binding:"omitempty,min=6"`
	NoTelepon *string `json:"no_telepon" binding:"omitempty,max=15"`
}

// UserService interface defines user management operations
type UserService interface {
	List() ([]*models.User, error)
	Create(input UserCreateInput) (*models.User, error)
	Get(id uint) (*models.User, error)
	Update(id uint, input UserUpdateInput) (*models.User, error)
	Delete(id uint) error
}

// userService implements UserService interface
type userService struct {
	userRepo repository.UserRepository
	logger   *logger.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// List retrieves all penyewa ordered by nama with their kamar
func (s *userService) List() ([]*models.User, error) {
	users, err := s.userRepo.FindPenyewa()
	if err != nil {
		s.logger.WithError(err).Error("Failed to list penyewa")
		return nil, err
	}
	return users, nil
}

// Create stores a new penyewa account. The role is forced to penyewa
// regardless of caller input.
func (s *userService) Create(input UserCreateInput) (*models.User, error) {
	if len(input.Password) < 6 {
		return nil, apperr.Validation("Password minimal 6 karakter")
	}

	taken, err := s.userRepo.EmailExists(input.Email, 0)
	if err != nil {
		s.logger.WithError(err).Error("Failed to check email uniqueness")
		return nil, err
	}
	if taken {
		return nil, apperr.Validation("Email sudah terdaftar")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.WithError(err).Error("Failed to hash password")
		return nil, err
	}

	user := &models.User{
		Nama:      input.Nama,
		Email:     input.Email,
		Password:  string(hashed),
		Role:      models.RolePenyewa,
		NoTelepon: input.NoTelepon,
	}
	if err := s.userRepo.Create(user); err != nil {
		s.logger.WithError(err).WithField("email", input.Email).Error("Failed to create penyewa")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
	}).Info("Penyewa created")

	return user, nil
}

// Get retrieves one user with kamar and pembayaran history
func (s *userService) Get(id uint) (*models.User, error) {
	user, err := s.userRepo.FindByIDWithRelations(id)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", id).Error("Failed to get user")
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User tidak ditemukan")
	}
	return user, nil
}

// Update applies a partial update; the email uniqueness check excludes the
// record's own id and a supplied password is re-hashed before storage
func (s *userService) Update(id uint, input UserUpdateInput) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", id).Error("Failed to get user")
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User tidak ditemukan")
	}

	if input.Email != nil {
		taken, err := s.userRepo.EmailExists(*input.Email, id)
		if err != nil {
			s.logger.WithError(err).Error("Failed to check email uniqueness")
			return nil, err
		}
		if taken {
			return nil, apperr.Validation("Email sudah terdaftar")
		}
		user.Email = *input.Email
	}
	if input.Nama != nil {
		user.Nama = *input.Nama
	}
	if input.NoTelepon != nil {
		user.NoTelepon = input.NoTelepon
	}
	if input.Password != nil {
		if len(*input.Password) < 6 {
			return nil, apperr.Validation("Password minimal 6 karakter")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			s.logger.WithError(err).Error("Failed to hash password")
			return nil, err
		}
		user.Password = string(hashed)
	}

	if err := s.userRepo.Update(user); err != nil {
		s.logger.WithError(err).WithField("user_id", id).Error("Failed to update user")
		return nil, err
	}

	s.logger.WithField("user_id", id).Info("User updated")
	return user, nil
}

// Delete removes a user unless they still occupy a kamar with status terisi
func (s *userService) Delete(id uint) error {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", id).Error("Failed to get user")
		return err
	}
	if user == nil {
		return apperr.NotFound("User tidak ditemukan")
	}

	count, err := s.userRepo.CountKamarTerisi(id)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", id).Error("Failed to count occupied kamar")
		return err
	}
	if count > 0 {
		return apperr.Conflict("User tidak bisa dihapus karena masih menempati kamar")
	}

	if err := s.userRepo.Delete(user); err != nil {
		// pembayarans.user_id is ON DELETE RESTRICT
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return apperr.Conflict("User tidak bisa dihapus karena memiliki riwayat pembayaran")
		}
		s.logger.WithError(err).WithField("user_id", id).Error("Failed to delete user")
		return err
	}

	s.logger.WithField("user_id", id).Info("User deleted")
	return nil
}
