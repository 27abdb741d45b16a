package database

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kos-be-svc/internal/models"
)

// Seed populates the database with the demo dataset: one admin, three
// penyewa, five kamar (three occupied) and the last months of payments per
// occupied tenant. Existing data is left untouched.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("database is not empty, refusing to seed")
	}

	password, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	phone := func(s string) *string { return &s }
	text := func(s string) *string { return &s }

	admin := &models.User{
		Nama:      "Admin Kos",
		Email:     "admin@kos.com",
		Password:  string(password),
		Role:      models.RoleAdmin,
		NoTelepon: phone("081234567890"),
	}
	budi := &models.User{
		Nama:      "Budi Santoso",
		Email:     "budi@gmail.com",
		Password:  string(password),
		Role:      models.RolePenyewa,
		NoTelepon: phone("081234567891"),
	}
	siti := &models.User{
		Nama:      "Siti Aminah",
		Email:     "siti@gmail.com",
		Password:  string(password),
		Role:      models.RolePenyewa,
		NoTelepon: phone("081234567892"),
	}
	ahmad := &models.User{
		Nama:      "Ahmad Fadli",
		Email:     "ahmad@gmail.com",
		Password:  string(password),
		Role:      models.RolePenyewa,
		NoTelepon: phone("081234567893"),
	}
	for _, user := range []*models.User{admin, budi, siti, ahmad} {
		if err := db.Create(user).Error; err != nil {
			return err
		}
	}

	kamarA01 := &models.Kamar{
		NomorKamar:   "A01",
		Tipe:         models.TipeSingle,
		HargaBulanan: 800000,
		Status:       models.StatusTerisi,
		Fasilitas:    text("AC, Kamar Mandi Dalam, WiFi, Kasur"),
		UserID:       &budi.ID,
	}
	kamarA02 := &models.Kamar{
		NomorKamar:   "A02",
		Tipe:         models.TipeSingle,
		HargaBulanan: 800000,
		Status:       models.StatusTerisi,
		Fasilitas:    text("AC, Kamar Mandi Dalam, WiFi, Kasur"),
		UserID:       &siti.ID,
	}
	kamarB01 := &models.Kamar{
		NomorKamar:   "B01",
		Tipe:         models.TipeDouble,
		HargaBulanan: 1200000,
		Status:       models.StatusTerisi,
		Fasilitas:    text("AC, Kamar Mandi Dalam, WiFi, 2 Kasur, Lemari"),
		UserID:       &ahmad.ID,
	}
	kamarB02 := &models.Kamar{
		NomorKamar:   "B02",
		Tipe:         models.TipeDouble,
		HargaBulanan: 1200000,
		Status:       models.StatusTersedia,
		Fasilitas:    text("AC, Kamar Mandi Dalam, WiFi, 2 Kasur, Lemari"),
	}
	kamarC01 := &models.Kamar{
		NomorKamar:   "C01",
		Tipe:         models.TipeSingle,
		HargaBulanan: 700000,
		Status:       models.StatusTersedia,
		Fasilitas:    text("Kipas, Kamar Mandi Luar, WiFi, Kasur"),
	}
	for _, kamar := range []*models.Kamar{kamarA01, kamarA02, kamarB01, kamarB02, kamarC01} {
		if err := db.Create(kamar).Error; err != nil {
			return err
		}
	}

	// Payments for the last months per occupied tenant; the current month of
	// the first tenant is still unpaid
	if err := seedPembayaran(db, kamarA01, budi, 3, true); err != nil {
		return err
	}
	if err := seedPembayaran(db, kamarA02, siti, 3, false); err != nil {
		return err
	}
	if err := seedPembayaran(db, kamarB01, ahmad, 2, false); err != nil {
		return err
	}

	return nil
}

// seedPembayaran inserts payment rows for the given tenant covering the last
// n months up to the current one
func seedPembayaran(db *gorm.DB, kamar *models.Kamar, user *models.User, months int, currentUnpaid bool) error {
	now := time.Now()
	// Anchor on the first of the month so month arithmetic never rolls over
	base := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := months - 1; i >= 0; i-- {
		periode := base.AddDate(0, -i, 0)
		status := models.StatusLunas
		if currentUnpaid && i == 0 {
			status = models.StatusBelum
		}

		pembayaran := &models.Pembayaran{
			KamarID:         kamar.ID,
			UserID:          user.ID,
			BulanPembayaran: int(periode.Month()),
			TahunPembayaran: periode.Year(),
			TanggalBayar:    time.Date(periode.Year(), periode.Month(), 5, 0, 0, 0, 0, time.UTC),
			Jumlah:          kamar.HargaBulanan,
			Status:          status,
		}
		if err := db.Create(pembayaran).Error; err != nil {
			return err
		}
	}
	return nil
}
