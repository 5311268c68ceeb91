package postgres

import (
	"context"
	"errors"
	"testing"

	"Fritter/internal/core/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepo_GetByID(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	id := createTestUser(t, db, "user_by_id", []string{"someone"})
	repo := NewUserRepository(db)

	user, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "user_by_id", user.Username)
	assert.Equal(t, []string{"someone"}, user.Friends)

	_, err = repo.GetByID(context.Background(), -1)
	assert.True(t, errors.Is(err, users.ErrUserNotFound))
}

func TestUserRepo_GetByUsername(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	createTestUser(t, db, "user_by_name", nil)
	repo := NewUserRepository(db)

	user, err := repo.GetByUsername(context.Background(), "user_by_name")
	require.NoError(t, err)
	assert.Empty(t, user.Friends)

	_, err = repo.GetByUsername(context.Background(), "no_such_user")
	assert.True(t, errors.Is(err, users.ErrUserNotFound))
}

func TestUserRepo_GetByUsernames(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	aliceID := createTestUser(t, db, "batch_alice", nil)
	bobID := createTestUser(t, db, "batch_bob", nil)
	repo := NewUserRepository(db)

	// Missing usernames are silently absent, not errors.
	found, err := repo.GetByUsernames(context.Background(),
		[]string{"batch_alice", "batch_bob", "batch_ghost"})
	require.NoError(t, err)

	require.Len(t, found, 2)
	assert.Equal(t, aliceID, found["batch_alice"].ID)
	assert.Equal(t, bobID, found["batch_bob"].ID)
	assert.NotContains(t, found, "batch_ghost")
}

func TestUserRepo_GetByUsernamesEmpty(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	repo := NewUserRepository(db)

	found, err := repo.GetByUsernames(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, found)
}
