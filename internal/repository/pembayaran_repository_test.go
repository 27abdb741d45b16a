package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kos-be-svc/internal/models"
)

func TestPembayaranRepositoryFindAllOrdering(t *testing.T) {
	db := testDB(t)
	repo := NewPembayaranRepository(db)
	budi := seedUser(t, db, "Budi Santoso", "budi@gmail.com", models.RolePenyewa)
	kamar := seedKamar(t, db, "A01", &budi.ID)
	seedPembayaranRow(t, db, kamar, budi, 12, 2023, models.StatusLunas, 800000)
	seedPembayaranRow(t, db, kamar, budi, 2, 2024, models.StatusLunas, 800000)
	seedPembayaranRow(t, db, kamar, budi, 1, 2024, models.StatusBelum, 800000)

	all, err := repo.FindAll(PembayaranFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Newest period first: year desc, then month desc
	assert.Equal(t, 2024, all[0].TahunPembayaran)
	assert.Equal(t, 2, all[0].BulanPembayaran)
	assert.Equal(t, 1, all[1].BulanPembayaran)
	assert.Equal(t, 2023, all[2].TahunPembayaran)
}

func TestPembayaranRepositoryFindAllFilters(t *testing.T) {
	db := testDB(t)
	repo := NewPembayaranRepository(db)
	budi := seedUser(t, db, "Budi Santoso", "budi@gmail.com", models.RolePenyewa)
	siti := seedUser(t, db, "Siti Aminah", "siti@gmail.com", models.RolePenyewa)
	kamarA := seedKamar(t, db, "A01", &budi.ID)
	kamarB := seedKamar(t, db, "A02", &siti.ID)
	seedPembayaranRow(t, db, kamarA, budi, 1, 2024, models.StatusLunas, 800000)
	seedPembayaranRow(t, db, kamarB, siti, 1, 2024, models.StatusBelum, 800000)
	seedPembayaranRow(t, db, kamarB, siti, 2, 2024, models.StatusLunas, 800000)

	byUser, err := repo.FindAll(PembayaranFilter{UserID: &siti.ID})
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	status := models.StatusBelum
	byStatus, err := repo.FindAll(PembayaranFilter{Status: &status})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, siti.ID, byStatus[0].UserID)

	bulan, tahun := 1, 2024
	byPeriode, err := repo.FindAll(PembayaranFilter{Bulan: &bulan, Tahun: &tahun})
	require.NoError(t, err)
	assert.Len(t, byPeriode, 2)

	byKamar, err := repo.FindAll(PembayaranFilter{KamarID: &kamarA.ID})
	require.NoError(t, err)
	require.Len(t, byKamar, 1)
	require.NotNil(t, byKamar[0].Kamar)
	assert.Equal(t, "A01", byKamar[0].Kamar.NomorKamar)
}

func TestPembayaranRepositoryExistsForPeriode(t *testing.T) {
	db := testDB(t)
	repo := NewPembayaranRepository(db)
	budi := seedUser(t, db, "Budi Santoso", "budi@gmail.com", models.RolePenyewa)
	kamar := seedKamar(t, db, "A01", &budi.ID)
	seedPembayaranRow(t, db, kamar, budi, 3, 2024, models.StatusLunas, 800000)

	exists, err := repo.ExistsForPeriode(kamar.ID, budi.ID, 3, 2024)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsForPeriode(kamar.ID, budi.ID, 4, 2024)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPembayaranRepositoryLaporan(t *testing.T) {
	db := testDB(t)
	repo := NewPembayaranRepository(db)
	budi := seedUser(t, db, "Budi Santoso", "budi@gmail.com", models.RolePenyewa)
	siti := seedUser(t, db, "Siti Aminah", "siti@gmail.com", models.RolePenyewa)
	kamarA := seedKamar(t, db, "A01", &budi.ID)
	kamarB := seedKamar(t, db, "A02", &siti.ID)
	seedPembayaranRow(t, db, kamarA, budi, 3, 2024, models.StatusLunas, 800000)
	seedPembayaranRow(t, db, kamarB, siti, 3, 2024, models.StatusBelum, 700000)
	seedPembayaranRow(t, db, kamarA, budi, 4, 2024, models.StatusLunas, 800000)

	laporan, err := repo.Laporan(3, 2024)
	require.NoError(t, err)
	// The sum covers both statuses
	assert.Equal(t, 1500000.0, laporan.TotalPembayaran)
	assert.Equal(t, int64(1), laporan.Lunas)
	assert.Equal(t, int64(1), laporan.BelumLunas)
}

func TestPembayaranRepositoryLaporanEmpty(t *testing.T) {
	db := testDB(t)
	repo := NewPembayaranRepository(db)

	laporan, err := repo.Laporan(1, 2023)
	require.NoError(t, err)
	assert.Zero(t, laporan.TotalPembayaran)
	assert.Zero(t, laporan.Lunas)
	assert.Zero(t, laporan.BelumLunas)
}

func TestPembayaranRepositoryFindForLaporanOrdering(t *testing.T) {
	db := testDB(t)
	repo := NewPembayaranRepository(db)
	budi := seedUser(t, db, "Budi Santoso", "budi@gmail.com", models.RolePenyewa)
	siti := seedUser(t, db, "Siti Aminah", "siti@gmail.com", models.RolePenyewa)
	kamarB := seedKamar(t, db, "B01", &siti.ID)
	kamarA := seedKamar(t, db, "A01", &budi.ID)
	seedPembayaranRow(t, db, kamarB, siti, 3, 2024, models.StatusLunas, 1200000)
	seedPembayaranRow(t, db, kamarA, budi, 3, 2024, models.StatusLunas, 800000)

	rows, err := repo.FindForLaporan(3, 2024)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.NotNil(t, rows[0].Kamar)
	assert.Equal(t, "A01", rows[0].Kamar.NomorKamar)
	assert.Equal(t, "B01", rows[1].Kamar.NomorKamar)
}
