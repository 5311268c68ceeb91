package freets

import (
	"time"

	"Fritter/internal/core/users"
	"Fritter/internal/core/visibility"
)

// Freet is a single short text post.
//
// Replies are embedded in the freet and keyed by the replier's username as
// it was at reply time (a snapshot, not a live reference); one entry per
// username, later replies from the same user overwrite earlier ones.
type Freet struct {
	ID           int64             `json:"id" db:"id"`
	AuthorID     int64             `json:"authorId" db:"author_id"`
	Content      string            `json:"content" db:"content"`
	Visibility   visibility.Level  `json:"visibility" db:"visibility"`
	Replies      map[string]string `json:"replies" db:"replies"`
	DateCreated  time.Time         `json:"dateCreated" db:"date_created"`
	DateModified time.Time         `json:"dateModified" db:"date_modified"`

	// Author is the populated author record, attached for presentation.
	Author *users.User `json:"author,omitempty" db:"-"`
}

// CreateFreetRequest represents the input for creating a new freet
type CreateFreetRequest struct {
	AuthorID   int64            `json:"authorId"`
	Content    string           `json:"content"`
	Visibility visibility.Level `json:"visibility"`
}

// Order selects how a listing query is sorted.
type Order int

const (
	// OrderNatural returns freets in storage order (ascending id). Used by
	// the by-author listing, which carries no time-sort guarantee.
	OrderNatural Order = iota

	// OrderModifiedDesc returns the most recently modified freets first,
	// with descending id as the deterministic tiebreak. Used by the feed.
	OrderModifiedDesc
)
