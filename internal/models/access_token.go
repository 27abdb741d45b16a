package models

import (
	"time"
)

// AccessToken represents the access_tokens table. Tokens are opaque bearer
// credentials; a row in this table is the single source of truth for token
// validity, so deleting it revokes the token immediately.
type AccessToken struct {
	ID         uint       `json:"id" gorm:"primarykey"`
	UserID     uint       `json:"user_id" gorm:"column:user_id;not null;index"`
	Token      string     `json:"token" gorm:"column:token;size:64;uniqueIndex;not null"`
	LastUsedAt *time.Time `json:"last_used_at" gorm:"column:last_used_at"`
	CreatedAt  time.Time  `json:"created_at"`
	User       *User      `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName sets the insert table name for AccessToken
func (AccessToken) TableName() string {
	return "access_tokens"
}
