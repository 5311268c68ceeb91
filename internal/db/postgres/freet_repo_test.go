package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"Fritter/internal/core/freets"
	"Fritter/internal/core/users"
	"Fritter/internal/core/visibility"

	"github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB connects to the test database and runs migrations. Tests
// are skipped when TEST_DATABASE_URL is not set.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping postgres integration test")
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(db, "../migrations"), "Failed to run migrations")

	return db
}

// createTestUser inserts a user row and registers cleanup
func createTestUser(t *testing.T, db *sql.DB, username string, friends []string) int64 {
	t.Helper()

	if friends == nil {
		friends = []string{}
	}

	var id int64
	err := db.QueryRow(
		`INSERT INTO users (username, friends) VALUES ($1, $2) RETURNING id`,
		username, pq.Array(friends),
	).Scan(&id)
	require.NoError(t, err, "Failed to create test user")

	t.Cleanup(func() {
		_, _ = db.Exec("DELETE FROM freets WHERE author_id = $1", id)
		_, _ = db.Exec("DELETE FROM users WHERE id = $1", id)
	})
	return id
}

func TestFreetRepo_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	authorID := createTestUser(t, db, "repo_create_author", nil)
	repo := NewFreetRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	created, err := repo.Create(ctx, &freets.Freet{
		AuthorID:     authorID,
		Content:      "hello from the repo test",
		Visibility:   visibility.Public,
		Replies:      map[string]string{},
		DateCreated:  now,
		DateModified: now,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	require.NotNil(t, created.Author)
	assert.Equal(t, "repo_create_author", created.Author.Username)
	assert.Empty(t, created.Replies)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, visibility.Public, got.Visibility)
}

func TestFreetRepo_CreateUnknownAuthor(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	repo := NewFreetRepository(db)
	now := time.Now().UTC()

	_, err := repo.Create(context.Background(), &freets.Freet{
		AuthorID:     -1,
		Content:      "orphan",
		Visibility:   visibility.Public,
		DateCreated:  now,
		DateModified: now,
	})
	assert.True(t, errors.Is(err, users.ErrUserNotFound), "FK violation should map to ErrUserNotFound, got %v", err)
}

func TestFreetRepo_GetByIDMissing(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	repo := NewFreetRepository(db)

	_, err := repo.GetByID(context.Background(), -1)
	assert.True(t, errors.Is(err, freets.ErrFreetNotFound))
}

func TestFreetRepo_FindMatchingOrderAndFilter(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	authorID := createTestUser(t, db, "repo_find_author", nil)
	repo := NewFreetRepository(db)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Microsecond)
	mk := func(level visibility.Level, modified time.Time) int64 {
		created, err := repo.Create(ctx, &freets.Freet{
			AuthorID:     authorID,
			Content:      level.String(),
			Visibility:   level,
			DateCreated:  base.Add(-time.Hour),
			DateModified: modified,
		})
		require.NoError(t, err)
		return created.ID
	}

	oldPublic := mk(visibility.Public, base.Add(-2*time.Minute))
	newAnon := mk(visibility.Anonymous, base)
	mk(visibility.Private, base.Add(-time.Minute))
	mk(visibility.Draft, base)

	pred := visibility.FeedPredicate(visibility.Viewer{Anonymous: true})
	results, err := repo.FindMatching(ctx, pred, freets.OrderModifiedDesc)
	require.NoError(t, err)

	// Other tests may leave rows behind; assert on our own freets only.
	var got []int64
	for _, f := range results {
		if f.AuthorID == authorID {
			got = append(got, f.ID)
		}
	}
	assert.Equal(t, []int64{newAnon, oldPublic}, got, "anonymous feed should hold public+anonymous, newest modified first")
}

func TestFreetRepo_FindMatchingNaturalOrder(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	authorID := createTestUser(t, db, "repo_natural_author", nil)
	repo := NewFreetRepository(db)
	ctx := context.Background()

	base := time.Now().UTC()
	var want []int64
	for i := 0; i < 3; i++ {
		created, err := repo.Create(ctx, &freets.Freet{
			AuthorID:     authorID,
			Content:      fmt.Sprintf("freet %d", i),
			Visibility:   visibility.Public,
			DateCreated:  base.Add(-time.Hour),
			DateModified: base.Add(time.Duration(-i) * time.Minute), // reverse of insertion
		})
		require.NoError(t, err)
		want = append(want, created.ID)
	}

	pred := visibility.AuthorPredicate(visibility.Viewer{Anonymous: true}, authorID)
	results, err := repo.FindMatching(ctx, pred, freets.OrderNatural)
	require.NoError(t, err)

	var got []int64
	for _, f := range results {
		got = append(got, f.ID)
	}
	assert.Equal(t, want, got, "author listing keeps storage order regardless of dateModified")
}

func TestFreetRepo_UpdateReplies(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	authorID := createTestUser(t, db, "repo_reply_author", nil)
	repo := NewFreetRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	created, err := repo.Create(ctx, &freets.Freet{
		AuthorID:     authorID,
		Content:      "reply target",
		Visibility:   visibility.Public,
		DateCreated:  now,
		DateModified: now,
	})
	require.NoError(t, err)

	require.NoError(t, repo.UpdateReplies(ctx, created.ID, map[string]string{"bob": "nice freet"}))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"bob": "nice freet"}, got.Replies)
	assert.True(t, got.DateModified.Equal(created.DateModified),
		"UpdateReplies must not touch date_modified")

	err = repo.UpdateReplies(ctx, -1, map[string]string{})
	assert.True(t, errors.Is(err, freets.ErrFreetNotFound))
}

func TestFreetRepo_DeleteByID(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	authorID := createTestUser(t, db, "repo_delete_author", nil)
	repo := NewFreetRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	created, err := repo.Create(ctx, &freets.Freet{
		AuthorID:     authorID,
		Content:      "to be deleted",
		Visibility:   visibility.Public,
		DateCreated:  now,
		DateModified: now,
	})
	require.NoError(t, err)

	deleted, err := repo.DeleteByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "deleting a missing freet reports false")
}

func TestFreetRepo_DeleteByAuthor(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	authorID := createTestUser(t, db, "repo_bulk_delete_author", nil)
	repo := NewFreetRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	for i := 0; i < 2; i++ {
		_, err := repo.Create(ctx, &freets.Freet{
			AuthorID:     authorID,
			Content:      fmt.Sprintf("bulk %d", i),
			Visibility:   visibility.Public,
			DateCreated:  now,
			DateModified: now,
		})
		require.NoError(t, err)
	}

	require.NoError(t, repo.DeleteByAuthor(ctx, authorID))
	// Idempotent on an already-empty set.
	require.NoError(t, repo.DeleteByAuthor(ctx, authorID))

	pred := visibility.AuthorPredicate(visibility.Viewer{Anonymous: true}, authorID)
	results, err := repo.FindMatching(ctx, pred, freets.OrderNatural)
	require.NoError(t, err)
	assert.Empty(t, results)
}
