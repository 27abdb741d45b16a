package models

import (
	"time"
)

// Status values for Pembayaran.Status
const (
	StatusLunas = "lunas"
	StatusBelum = "belum"
)

// MinTahunPembayaran is the earliest accepted payment year
const MinTahunPembayaran = 2020

// Pembayaran represents the pembayarans table. The composite unique index on
// (kamar_id, user_id, bulan_pembayaran, tahun_pembayaran) guarantees at most
// one payment per room, tenant and period even under concurrent creates.
type Pembayaran struct {
	ID              uint      `json:"id" gorm:"primarykey"`
	KamarID         uint      `json:"kamar_id" gorm:"column:kamar_id;not null;uniqueIndex:idx_pembayaran_periode"`
	UserID          uint      `json:"user_id" gorm:"column:user_id;not null;uniqueIndex:idx_pembayaran_periode"`
	BulanPembayaran int       `json:"bulan_pembayaran" gorm:"column:bulan_pembayaran;not null;uniqueIndex:idx_pembayaran_periode"`
	TahunPembayaran int       `json:"tahun_pembayaran" gorm:"column:tahun_pembayaran;not null;uniqueIndex:idx_pembayaran_periode"`
	TanggalBayar    time.Time `json:"tanggal_bayar" gorm:"column:tanggal_bayar;type:date;not null"`
	Jumlah          float64   `json:"jumlah" gorm:"column:jumlah;type:decimal(10,2);not null"`
	Status          string    `json:"status" gorm:"column:status;size:10;not null;default:belum"`
	BuktiBayar      *string   `json:"bukti_bayar" gorm:"column:bukti_bayar"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Kamar           *Kamar    `json:"kamar,omitempty" gorm:"foreignKey:KamarID;constraint:OnDelete:RESTRICT"`
	User            *User     `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}

// TableName sets the insert table name for Pembayaran
func (Pembayaran) TableName() string {
	return "pembayarans"
}
