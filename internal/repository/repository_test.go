package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"kos-be-svc/internal/models"
)

// testDB opens an isolated in-memory database per test
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Kamar{},
		&models.Pembayaran{},
		&models.AccessToken{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, nama, email, role string) *models.User {
	t.Helper()

	user := &models.User{
		Nama:     nama,
		Email:    email,
		Password: "hash",
		Role:     role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedKamar(t *testing.T, db *gorm.DB, nomor string, userID *uint) *models.Kamar {
	t.Helper()

	status := models.StatusTersedia
	if userID != nil {
		status = models.StatusTerisi
	}
	kamar := &models.Kamar{
		NomorKamar:   nomor,
		Tipe:         models.TipeSingle,
		HargaBulanan: 800000,
		Status:       status,
		UserID:       userID,
	}
	require.NoError(t, db.Create(kamar).Error)
	return kamar
}

func seedPembayaranRow(t *testing.T, db *gorm.DB, kamar *models.Kamar, user *models.User, bulan, tahun int, status string, jumlah float64) *models.Pembayaran {
	t.Helper()

	pembayaran := &models.Pembayaran{
		KamarID:         kamar.ID,
		UserID:          user.ID,
		BulanPembayaran: bulan,
		TahunPembayaran: tahun,
		TanggalBayar:    time.Date(tahun, time.Month(bulan), 5, 0, 0, 0, 0, time.UTC),
		Jumlah:          jumlah,
		Status:          status,
	}
	require.NoError(t, db.Create(pembayaran).Error)
	return pembayaran
}
