package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"Fritter/internal/core/freets"
	"Fritter/internal/core/users"
	"Fritter/internal/core/visibility"

	"github.com/lib/pq"
)

// freetColumns is the shared select list for freet reads. The author row
// is joined in so every read comes back populated in one query.
const freetColumns = `
	f.id, f.author_id, f.content, f.visibility, f.replies, f.date_created, f.date_modified,
	u.id, u.username, u.friends, u.created_at, u.updated_at`

type postgresFreetRepo struct {
	db *sql.DB
}

// NewFreetRepository creates a new PostgreSQL freet repository
func NewFreetRepository(db *sql.DB) freets.Repository {
	return &postgresFreetRepo{db: db}
}

// Create inserts a new freet and returns it with the author populated.
// A missing author surfaces the referential failure from the foreign key,
// not from a separate existence check.
func (r *postgresFreetRepo) Create(ctx context.Context, freet *freets.Freet) (*freets.Freet, error) {
	repliesJSON, err := json.Marshal(replies(freet.Replies))
	if err != nil {
		return nil, fmt.Errorf("failed to encode replies: %w", err)
	}

	query := `
		INSERT INTO freets (author_id, content, visibility, replies, date_created, date_modified)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err = r.db.QueryRowContext(ctx, query,
		freet.AuthorID, freet.Content, int(freet.Visibility), repliesJSON,
		freet.DateCreated, freet.DateModified,
	).Scan(&id)
	if err != nil {
		if strings.Contains(err.Error(), "violates foreign key constraint") {
			return nil, users.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to create freet: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID retrieves a freet by id with the author populated
func (r *postgresFreetRepo) GetByID(ctx context.Context, id int64) (*freets.Freet, error) {
	query := `
		SELECT ` + freetColumns + `
		FROM freets f
		JOIN users u ON u.id = f.author_id
		WHERE f.id = $1`

	freet, err := scanFreet(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, freets.ErrFreetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get freet by id: %w", err)
	}
	return freet, nil
}

// FindMatching returns every freet admitted by the predicate. The
// predicate arrives as an expression tree and is compiled here into a
// parameterized WHERE clause; ordering comes from a closed enum, so no
// caller-supplied SQL ever reaches the query.
func (r *postgresFreetRepo) FindMatching(ctx context.Context, pred visibility.Predicate, order freets.Order) ([]*freets.Freet, error) {
	var args []interface{}
	where, err := compilePredicate(pred, &args)
	if err != nil {
		return nil, fmt.Errorf("failed to compile predicate: %w", err)
	}

	orderBy := "f.id ASC"
	if order == freets.OrderModifiedDesc {
		// id DESC keeps ties between equal timestamps deterministic.
		orderBy = "f.date_modified DESC, f.id DESC"
	}

	query := `
		SELECT ` + freetColumns + `
		FROM freets f
		JOIN users u ON u.id = f.author_id
		WHERE ` + where + `
		ORDER BY ` + orderBy

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query freets: %w", err)
	}
	defer rows.Close()

	var results []*freets.Freet
	for rows.Next() {
		freet, err := scanFreet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan freet row: %w", err)
		}
		results = append(results, freet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read freet rows: %w", err)
	}

	return results, nil
}

// UpdateReplies rewrites the reply map. date_modified is deliberately not
// touched; replies do not count as content edits for feed ordering.
func (r *postgresFreetRepo) UpdateReplies(ctx context.Context, id int64, newReplies map[string]string) error {
	repliesJSON, err := json.Marshal(replies(newReplies))
	if err != nil {
		return fmt.Errorf("failed to encode replies: %w", err)
	}

	result, err := r.db.ExecContext(ctx, `UPDATE freets SET replies = $2 WHERE id = $1`, id, repliesJSON)
	if err != nil {
		return fmt.Errorf("failed to update replies: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return freets.ErrFreetNotFound
	}
	return nil
}

// DeleteByID removes a freet, reporting whether a row existed. Replies
// are embedded in the row, so nothing else needs cleanup.
func (r *postgresFreetRepo) DeleteByID(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM freets WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete freet: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check delete result: %w", err)
	}
	return affected > 0, nil
}

// DeleteByAuthor removes every freet by the given author
func (r *postgresFreetRepo) DeleteByAuthor(ctx context.Context, authorID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM freets WHERE author_id = $1`, authorID); err != nil {
		return fmt.Errorf("failed to delete freets by author: %w", err)
	}
	return nil
}

// replies normalizes a nil map to an empty one so the column always holds
// a JSON object.
func replies(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}

// rowScanner covers *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanFreet(row rowScanner) (*freets.Freet, error) {
	freet := &freets.Freet{}
	author := &users.User{}
	var vision int
	var repliesJSON []byte

	err := row.Scan(
		&freet.ID, &freet.AuthorID, &freet.Content, &vision, &repliesJSON,
		&freet.DateCreated, &freet.DateModified,
		&author.ID, &author.Username, pq.Array(&author.Friends),
		&author.CreatedAt, &author.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	freet.Visibility = visibility.Level(vision)
	if err := json.Unmarshal(repliesJSON, &freet.Replies); err != nil {
		return nil, fmt.Errorf("failed to decode replies for freet %d: %w", freet.ID, err)
	}
	freet.Author = author

	return freet, nil
}
