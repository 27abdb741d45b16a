package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"kos-be-svc/internal/models"
	"kos-be-svc/pkg/logger"
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

func testLogger() *logger.Logger {
	return logger.NewLogger("error", "text")
}

func createUser(t *testing.T, db *gorm.DB, nama, email, role string) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("rahasia1"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Nama:     nama,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createKamar(t *testing.T, db *gorm.DB, nomor string, userID *uint) *models.Kamar {
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

func createPembayaran(t *testing.T, db *gorm.DB, kamar *models.Kamar, user *models.User, bulan, tahun int, status string) *models.Pembayaran {
	t.Helper()

	pembayaran := &models.Pembayaran{
		KamarID:         kamar.ID,
		UserID:          user.ID,
		BulanPembayaran: bulan,
		TahunPembayaran: tahun,
		TanggalBayar:    time.Date(tahun, time.Month(bulan), 5, 0, 0, 0, 0, time.UTC),
		Jumlah:          kamar.HargaBulanan,
		Status:          status,
	}
	require.NoError(t, db.Create(pembayaran).Error)
	return pembayaran
}

func ptrString(s string) *string  { return &s }
func ptrInt(i int) *int           { return &i }
func ptrFloat(f float64) *float64 { return &f }
