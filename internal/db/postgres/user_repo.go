package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"Fritter/internal/core/users"

	"github.com/lib/pq"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.UserRepository {
	return &postgresUserRepo{db: db}
}

// GetByID retrieves a user by their id
func (r *postgresUserRepo) GetByID(ctx context.Context, id int64) (*users.User, error) {
	user := &users.User{}
	query := `SELECT id, username, friends, created_at, updated_at FROM users WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&user.ID, &user.Username, pq.Array(&user.Friends), &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// GetByUsername retrieves a user by their username
func (r *postgresUserRepo) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	user := &users.User{}
	query := `SELECT id, username, friends, created_at, updated_at FROM users WHERE username = $1`

	err := r.db.QueryRowContext(ctx, query, username).
		Scan(&user.ID, &user.Username, pq.Array(&user.Friends), &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}

// GetByUsernames retrieves multiple users in one batch query. Usernames
// with no matching row are absent from the result map; that is not an
// error here, the caller decides how tolerant to be.
func (r *postgresUserRepo) GetByUsernames(ctx context.Context, usernames []string) (map[string]*users.User, error) {
	result := make(map[string]*users.User, len(usernames))
	if len(usernames) == 0 {
		return result, nil
	}

	query := `SELECT id, username, friends, created_at, updated_at FROM users WHERE username = ANY($1)`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(usernames))
	if err != nil {
		return nil, fmt.Errorf("failed to get users by usernames: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		user := &users.User{}
		if err := rows.Scan(&user.ID, &user.Username, pq.Array(&user.Friends), &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		result[user.Username] = user
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read user rows: %w", err)
	}

	return result, nil
}
