package service

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"kos-be-svc/internal/models"
	"kos-be-svc/internal/models/response"
	"kos-be-svc/internal/repository"
	"kos-be-svc/pkg/apperr"
	"kos-be-svc/pkg/logger"
)

// RegisterInput is the registration request body
type RegisterInput struct {
	Nama      string  `json:"nama" binding:"required,max=100"`
	Email     string  `json:"email" binding:"required,email,max=100"`
	Password  string  `json:"password" binding:"required,min=6"`
	Role      string  `json:"role" binding:"required,oneof=admin penyewa"`
	NoTelepon *string `json:"no_telepon" binding:"omitempty,max=15"`
}

// LoginInput is the login request body
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileInput is the partial profile update request body
type UpdateProfileInput struct {
	Nama      *string `json:"nama" binding:"omitempty,max=100"`
	NoTelepon *string `json:"no_telepon" binding:"omitempty,max=15"`
}

// ChangePasswordInput is the change password request body
type ChangePasswordInput struct {
	OldPassword          string `json:"old_password" binding:"required"`
	Password             string `json:"password" binding:"required,min=6"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required,eqfield=Password"`
}

// AuthService interface defines authentication operations
type AuthService interface {
	Register(input RegisterInput) (*response.AuthResponse, error)
	Login(input LoginInput) (*response.AuthResponse, error)
	Logout(token *models.AccessToken) error
	UpdateProfile(user *models.User, input UpdateProfileInput) (*models.User, error)
	ChangePassword(user *models.User, input ChangePasswordInput) error
}

// authService implements AuthService interface
type authService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	logger    *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.TokenRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		logger:    logger,
	}
}

// Register creates a new account and issues a fresh token
func (s *authService) Register(input RegisterInput) (*response.AuthResponse, error) {
	if input.Role != models.RoleAdmin && input.Role != models.RolePenyewa {
		return nil, apperr.Validation("Role tidak valid")
	}
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
		Role:      input.Role,
		NoTelepon: input.NoTelepon,
	}
	if err := s.userRepo.Create(user); err != nil {
		s.logger.WithError(err).WithField("email", input.Email).Error("Failed to create user")
		return nil, err
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
	}).Info("User registered")

	return &response.AuthResponse{User: user, Token: token}, nil
}

// Login verifies credentials and rotates the session token. All prior tokens
// of the user are revoked before a new one is issued.
func (s *authService) Login(input LoginInput) (*response.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(input.Email)
	if err != nil {
		s.logger.WithError(err).Error("Failed to look up user by email")
		return nil, err
	}

	// Uniform message: do not reveal whether the email exists
	if user == nil {
		return nil, apperr.Validation("Email atau password salah")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, apperr.Validation("Email atau password salah")
	}

	// Single active session: revoke everything issued before
	if err := s.tokenRepo.DeleteByUser(user.ID); err != nil {
		s.logger.WithError(err).WithField("user_id", user.ID).Error("Failed to revoke previous tokens")
		return nil, err
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
	}).Info("User logged in")

	return &response.AuthResponse{User: user, Token: token}, nil
}

// Logout revokes only the token used for the current request
func (s *authService) Logout(token *models.AccessToken) error {
	if err := s.tokenRepo.Delete(token); err != nil {
		s.logger.WithError(err).WithField("user_id", token.UserID).Error("Failed to revoke token")
		return err
	}

	s.logger.WithField("user_id", token.UserID).Info("User logged out")
	return nil
}

// UpdateProfile applies a partial update to the caller's profile
func (s *authService) UpdateProfile(user *models.User, input UpdateProfileInput) (*models.User, error) {
	if input.Nama != nil {
		user.Nama = *input.Nama
	}
	if input.NoTelepon != nil {
		user.NoTelepon = input.NoTelepon
	}

	if err := s.userRepo.Update(user); err != nil {
		s.logger.WithError(err).WithField("user_id", user.ID).Error("Failed to update profile")
		return nil, err
	}

	s.logger.WithField("user_id", user.ID).Info("Profile updated")
	return user, nil
}

// ChangePassword re-hashes and stores the new password after verifying the
// old one
func (s *authService) ChangePassword(user *models.User, input ChangePasswordInput) error {
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.OldPassword)); err != nil {
		return apperr.Validation("Password lama tidak sesuai")
	}
	if len(input.Password) < 6 {
		return apperr.Validation("Password minimal 6 karakter")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.WithError(err).Error("Failed to hash password")
		return err
	}

	user.Password = string(hashed)
	if err := s.userRepo.Update(user); err != nil {
		s.logger.WithError(err).WithField("user_id", user.ID).Error("Failed to store new password")
		return err
	}

	s.logger.WithField("user_id", user.ID).Info("Password changed")
	return nil
}

// issueToken stores and returns a fresh opaque bearer token
func (s *authService) issueToken(userID uint) (string, error) {
	token := &models.AccessToken{
		UserID: userID,
		Token:  uuid.NewString(),
	}
	if err := s.tokenRepo.Create(token); err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to issue token")
		return "", err
	}
	return token.Token, nil
}
