package models

import (
	"time"
)

// Role values for User.Role
const (
	RoleAdmin   = "admin"
	RolePenyewa = "penyewa"
)

// User represents the users table. The password hash is never serialized.
type User struct {
	ID          uint         `json:"id" gorm:"primarykey"`
	Nama        string       `json:"nama" gorm:"column:nama;size:100;not null"`
	Email       string       `json:"email" gorm:"column:email;size:100;uniqueIndex;not null"`
	Password    string       `json:"-" gorm:"column:password;not null"`
	Role        string       `json:"role" gorm:"column:role;size:10;not null;default:penyewa"`
	NoTelepon   *string      `json:"no_telepon" gorm:"column:no_telepon;size:15"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Kamars      []Kamar      `json:"kamars,omitempty" gorm:"foreignKey:UserID"`
	Pembayarans []Pembayaran `json:"pembayarans,omitempty" gorm:"foreignKey:UserID"`
}

// TableName sets the insert table name for User
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsPenyewa reports whether the user has the penyewa role
func (u *User) IsPenyewa() bool {
	return u.Role == RolePenyewa
}
