package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kos-be-svc/internal/models"
	"kos-be-svc/internal/repository"
	"kos-be-svc/pkg/apperr"
)

func newUserService(db *gorm.DB) UserService {
	return NewUserService(repository.NewUserRepository(db), testLogger())
}

func TestUserServiceCreateForcesPenyewaRole(t *testing.T) {
	db := testDB(t)
	svc := newUserService(db)

	user, err := svc.Create(UserCreateInput{
		Nama:     "Siti Aminah",
		Email:    "siti@gmail.com",
		Password: "rahasia1",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RolePenyewa, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("rahasia1")))
}

func TestUserServiceCreateDuplicateEmail(t *testing.T) {
	db := testDB(t)
	svc := newUserService(db)
	createUser(t, db, "Siti Aminah", "siti@gmail.com", models.RolePenyewa)

	_, err := svc.Create(UserCreateInput{
		Nama:     "Siti Kedua",
		Email:    "siti@gmail.com",
		Password: "rahasia1",
	})
	require.Error(t, err)
	assert.Equal(t, "Email sudah terdaftar", err.Error())
}

func TestUserServiceListOnlyPenyewa(t *testing.T) {
	db := testDB(t)
	svc := newUserService(db)
	createUser(t, db, "Admin Kos", "admin@kos.com", models.RoleAdmin)
	createUser(t, db, "Siti Aminah", "siti@gmail.com", models.RolePenyewa)
	createUser(t, db, "Budi Santoso", "budi@gmail.com", models.RolePenyewa)

	users, err := svc.List()
	require.NoError(t, err)
	require.Len(t, users, 2)
	// Ordered by nama, admin excluded
	assert.Equal(t, "Budi Santoso", users[0].Nama)
	assert.Equal(t, "Siti Aminah", users[1].Nama)
}

func TestUserServiceGet(t *testing.T) {
	db := testDB(t)
	svc := newUserService(db)
	user := createUser(t, db, "Budi Santoso", "budi@gmail.com", models.RolePenyewa)
	kamar := createKamar(t, db, "A01", &user.ID)
	createPembayaran(t, db, kamar, user, 3, 2024, models.StatusLunas)

	got, err := svc.Get(user.ID)
	require.NoError(t, err)
	require.Len(t, got.Kamars, 1)
	require.Len(t, got.Pembayarans, 1)

	_, err = svc.Get(999)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestUserServiceUpdateRehashesPassword(t *testing.T) {
	db := testDB(t)
	svc := newUserService(db)
	user := createUser(t, db, "Budi Santoso", "budi@gmail.com", models.RolePenyewa)

	updated, err := svc.Update(user.ID, UserUpdateInput{
		Password: ptrString("gantibaru"),
	})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("gantibaru")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("rahasia1")))
}

func TestUserServiceUpdateEmailExcludesSelf(t *testing.T) {
	db := testDB(t)
	svc := newUserService(db)
	user := createUser(t, db, "Budi Santoso", "budi@gmail.com", models.RolePenyewa)
	createUser(t, db, "Siti Aminah", "siti@gmail.com", models.RolePenyewa)

	_, err := svc.Update(user.ID, UserUpdateInput{Email: ptrString("budi@gmail.com")})
	require.NoError(t, err)

	_, err = svc.Update(user.ID, UserUpdateInput{Email: ptrString("siti@gmail.com")})
	require.Error(t, err)
	assert.Equal(t, "Email sudah terdaftar", err.Error())
}

func TestUserServiceDeleteOccupyingKamar(t *testing.T) {
	db := testDB(t)
	svc := newUserService(db)
	user := createUser(t, db, "Budi Santoso", "budi@gmail.com", models.RolePenyewa)
	createKamar(t, db, "A01", &user.ID)

	err := svc.Delete(user.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	assert.Equal(t, "User tidak bisa dihapus karena masih menempati kamar", err.Error())
}

func TestUserServiceDelete(t *testing.T) {
	db := testDB(t)
	svc := newUserService(db)
	user := createUser(t, db, "Budi Santoso", "budi@gmail.com", models.RolePenyewa)

	require.NoError(t, svc.Delete(user.ID))

	err := svc.Delete(user.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
