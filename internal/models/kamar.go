package models

import (
	"time"
)

// Tipe values for Kamar.Tipe
const (
	TipeSingle = "single"
	TipeDouble = "double"
)

// Status values for Kamar.Status
const (
	StatusTersedia = "tersedia"
	StatusTerisi   = "terisi"
)

// Kamar represents the kamars table. A kamar is optionally occupied by one
// penyewa; deleting that user sets user_id to null.
type Kamar struct {
	ID           uint         `json:"id" gorm:"primarykey"`
	NomorKamar   string       `json:"nomor_kamar" gorm:"column:nomor_kamar;size:10;uniqueIndex;not null"`
	Tipe         string       `json:"tipe" gorm:"column:tipe;size:10;not null;default:single"`
	HargaBulanan float64      `json:"harga_bulanan" gorm:"column:harga_bulanan;type:decimal(10,2);not null"`
	Status       string       `json:"status" gorm:"column:status;size:10;not null;default:tersedia"`
	Fasilitas    *string      `json:"fasilitas" gorm:"column:fasilitas;type:text"`
	UserID       *uint        `json:"user_id" gorm:"column:user_id"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	User         *User        `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
	Pembayarans  []Pembayaran `json:"pembayarans,omitempty" gorm:"foreignKey:KamarID"`
}

// TableName sets the insert table name for Kamar
func (Kamar) TableName() string {
	return "kamars"
}
