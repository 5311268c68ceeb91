package users

import (
	"context"
	"fmt"
	"strings"
)

type userService struct {
	repo  UserRepository
	cache FriendCache
}

// NewUserService creates a new user service
// cache can be nil if not needed (e.g., in tests or minimal setups)
func NewUserService(repo UserRepository, cache FriendCache) Service {
	return &userService{
		repo:  repo,
		cache: cache,
	}
}

// GetByID retrieves a user by their id
func (s *userService) GetByID(ctx context.Context, id int64) (*User, error) {
	if id <= 0 {
		return nil, fmt.Errorf("user id must be positive")
	}
	return s.repo.GetByID(ctx, id)
}

// GetByUsername retrieves a user by their username
func (s *userService) GetByUsername(ctx context.Context, username string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	return s.repo.GetByUsername(ctx, username)
}

// ResolveFriendIDs resolves the viewer's friend usernames to user ids.
//
// The friend list is stored as usernames, so every feed query needs a
// username → id round trip. Resolution is batched into one store call
// rather than one lookup per friend; usernames that fail to resolve are
// dropped without error. The viewer's own id is appended unconditionally.
func (s *userService) ResolveFriendIDs(ctx context.Context, viewerID int64) ([]int64, error) {
	if s.cache != nil {
		if ids, ok := s.cache.Get(viewerID); ok {
			return ids, nil
		}
	}

	viewer, err := s.repo.GetByID(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(viewer.Friends)+1)
	if len(viewer.Friends) > 0 {
		found, err := s.repo.GetByUsernames(ctx, viewer.Friends)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve friends of user %d: %w", viewerID, err)
		}
		// Iterate the stored friend order, not the map, so the resolved
		// set is deterministic.
		for _, username := range viewer.Friends {
			if friend, ok := found[username]; ok {
				ids = append(ids, friend.ID)
			}
		}
	}
	ids = append(ids, viewerID)

	if s.cache != nil {
		s.cache.Set(viewerID, ids)
	}
	return ids, nil
}
