package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"kos-be-svc/internal/models"
)

// TokenRepository defines the interface for access token operations
type TokenRepository interface {
	Create(token *models.AccessToken) error
	FindByToken(token string) (*models.AccessToken, error)
	Touch(token *models.AccessToken) error
	Delete(token *models.AccessToken) error
	DeleteByUser(userID uint) error
}

// tokenRepository implements TokenRepository
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new instance of TokenRepository
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

// Create inserts a new access token
func (r *tokenRepository) Create(token *models.AccessToken) error {
	return r.db.Create(token).Error
}

// FindByToken retrieves a token row with its user, nil when the token is
// unknown (or revoked, since revocation deletes the row)
func (r *tokenRepository) FindByToken(token string) (*models.AccessToken, error) {
	var accessToken models.AccessToken
	err := r.db.Preload("User").Where("token = ?", token).First(&accessToken).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &accessToken, nil
}

// Touch records when the token was last used
func (r *tokenRepository) Touch(token *models.AccessToken) error {
	now := time.Now()
	return r.db.Model(token).Update("last_used_at", now).Error
}

// Delete revokes a single token
func (r *tokenRepository) Delete(token *models.AccessToken) error {
	return r.db.Delete(token).Error
}

// DeleteByUser revokes every token the user holds
func (r *tokenRepository) DeleteByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.AccessToken{}).Error
}
