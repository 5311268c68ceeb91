package users

import "context"

// UserRepository defines the interface for user data persistence
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)

	// GetByUsernames retrieves multiple users by username in a single
	// batch query. Returns a map of username → User; usernames with no
	// matching record are simply absent from the map (no error for
	// missing users). Returns error only on database failures.
	GetByUsernames(ctx context.Context, usernames []string) (map[string]*User, error)
}

// Service defines the interface for user business logic
type Service interface {
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)

	// ResolveFriendIDs resolves a viewer's friend usernames to user ids in
	// one batch call, silently dropping usernames that no longer resolve
	// (a stale friend reference must never break a feed). The viewer's
	// own id is always included in the result: a user sees their own
	// private freets by rule, not by accident.
	// Returns ErrUserNotFound if the viewer itself does not exist.
	ResolveFriendIDs(ctx context.Context, viewerID int64) ([]int64, error)
}

// FriendCache caches resolved friend-id sets between queries. Entries
// expire on their own; staleness up to the TTL is acceptable because the
// friend list itself is slow-moving. A nil FriendCache disables caching.
type FriendCache interface {
	Get(viewerID int64) ([]int64, bool)
	Set(viewerID int64, friendIDs []int64)
}
