package freets

import (
	"context"

	"Fritter/internal/core/visibility"
)

// Repository defines the interface for freet data persistence. All reads
// return freets with the author record populated.
type Repository interface {
	// Create persists a new freet and returns it with storage-assigned
	// fields filled in. Returns users.ErrUserNotFound if the author id
	// does not reference an existing user (referential enforcement lives
	// in the store, not the service).
	Create(ctx context.Context, freet *Freet) (*Freet, error)

	// GetByID returns the freet with the given id, or ErrFreetNotFound.
	GetByID(ctx context.Context, id int64) (*Freet, error)

	// FindMatching returns every freet admitted by the predicate, in the
	// requested order.
	FindMatching(ctx context.Context, pred visibility.Predicate, order Order) ([]*Freet, error)

	// UpdateReplies rewrites a freet's reply map in place. It does not
	// touch date_modified.
	UpdateReplies(ctx context.Context, id int64, replies map[string]string) error

	// DeleteByID removes a freet, reporting whether a row existed.
	DeleteByID(ctx context.Context, id int64) (bool, error)

	// DeleteByAuthor removes every freet by the given author; a no-op
	// when there are none.
	DeleteByAuthor(ctx context.Context, authorID int64) error
}

// Service defines the interface for freet business logic
type Service interface {
	CreateFreet(ctx context.Context, req CreateFreetRequest) (*Freet, error)

	// GetFreet is a direct lookup by id with no visibility filtering
	// applied (drafts included). Returns (nil, nil) when absent.
	GetFreet(ctx context.Context, id int64) (*Freet, error)

	// ListAll returns the freets the viewer may see, most recently
	// modified first. viewerID nil means an anonymous viewer.
	ListAll(ctx context.Context, viewerID *int64) ([]*Freet, error)

	// ListByAuthor returns the named author's freets the viewer may see,
	// in storage order.
	ListByAuthor(ctx context.Context, username string, viewerID *int64) ([]*Freet, error)

	// AddReply records (or overwrites) the replier's reply on a freet.
	AddReply(ctx context.Context, freetID, replierID int64, content string) (*Freet, error)

	// DeleteFreet removes a freet, reporting whether one existed.
	DeleteFreet(ctx context.Context, id int64) (bool, error)

	// DeleteAllByAuthor removes every freet by the given author.
	DeleteAllByAuthor(ctx context.Context, authorID int64) error
}
