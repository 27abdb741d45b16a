package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kos-be-svc/internal/models"
)

func TestTokenRepositoryFindByToken(t *testing.T) {
	db := testDB(t)
	repo := NewTokenRepository(db)
	user := seedUser(t, db, "Budi Santoso", "budi@gmail.com", models.RolePenyewa)

	token := &models.AccessToken{UserID: user.ID, Token: uuid.NewString()}
	require.NoError(t, repo.Create(token))

	found, err := repo.FindByToken(token.Token)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.UserID)
	// The owning user rides along for the auth middleware
	require.NotNil(t, found.User)
	assert.Equal(t, "budi@gmail.com", found.User.Email)

	unknown, err := repo.FindByToken("does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, unknown)
}

func TestTokenRepositoryTouch(t *testing.T) {
	db := testDB(t)
	repo := NewTokenRepository(db)
	user := seedUser(t, db, "Budi Santoso", "budi@gmail.com", models.RolePenyewa)

	token := &models.AccessToken{UserID: user.ID, Token: uuid.NewString()}
	require.NoError(t, repo.Create(token))
	assert.Nil(t, token.LastUsedAt)

	require.NoError(t, repo.Touch(token))

	found, err := repo.FindByToken(token.Token)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.NotNil(t, found.LastUsedAt)
}

func TestTokenRepositoryDeleteByUser(t *testing.T) {
	db := testDB(t)
	repo := NewTokenRepository(db)
	budi := seedUser(t, db, "Budi Santoso", "budi@gmail.com", models.RolePenyewa)
	siti := seedUser(t, db, "Siti Aminah", "siti@gmail.com", models.RolePenyewa)

	budiToken := &models.AccessToken{UserID: budi.ID, Token: uuid.NewString()}
	sitiToken := &models.AccessToken{UserID: siti.ID, Token: uuid.NewString()}
	require.NoError(t, repo.Create(budiToken))
	require.NoError(t, repo.Create(sitiToken))

	require.NoError(t, repo.DeleteByUser(budi.ID))

	gone, err := repo.FindByToken(budiToken.Token)
	require.NoError(t, err)
	assert.Nil(t, gone)

	// Other users' tokens are untouched
	kept, err := repo.FindByToken(sitiToken.Token)
	require.NoError(t, err)
	assert.NotNil(t, kept)
}
