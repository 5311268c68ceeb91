package freets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"Fritter/internal/core/users"
	"Fritter/internal/core/visibility"
)

type freetService struct {
	repo        Repository
	userService users.Service
}

// NewFreetService creates a new freet service
func NewFreetService(repo Repository, userService users.Service) Service {
	return &freetService{
		repo:        repo,
		userService: userService,
	}
}

// CreateFreet creates a new freet with an empty reply map and both
// timestamps set to now. Visibility is not validated here; the store's own
// constraint rejects values outside the defined set at write time.
func (s *freetService) CreateFreet(ctx context.Context, req CreateFreetRequest) (*Freet, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	freet := &Freet{
		AuthorID:     req.AuthorID,
		Content:      req.Content,
		Visibility:   req.Visibility,
		Replies:      map[string]string{},
		DateCreated:  now,
		DateModified: now,
	}

	created, err := s.repo.Create(ctx, freet)
	if err != nil {
		if users.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create freet: %w", err)
	}
	return created, nil
}

// GetFreet looks a freet up by id. No visibility check is applied: a
// direct lookup is the one path that can return a draft. An absent freet
// is a normal (nil, nil) outcome, not an error.
func (s *freetService) GetFreet(ctx context.Context, id int64) (*Freet, error) {
	freet, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrFreetNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get freet %d: %w", id, err)
	}
	return freet, nil
}

// ListAll returns the feed for the given viewer, most recently modified
// first. An unknown viewer id fails with users.ErrUserNotFound; an absent
// viewer id is the anonymous feed.
func (s *freetService) ListAll(ctx context.Context, viewerID *int64) ([]*Freet, error) {
	viewer, err := s.resolveViewer(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	results, err := s.repo.FindMatching(ctx, visibility.FeedPredicate(viewer), OrderModifiedDesc)
	if err != nil {
		return nil, fmt.Errorf("failed to list freets: %w", err)
	}
	return results, nil
}

// ListByAuthor returns the named author's freets visible to the viewer,
// in storage order. Unlike ListAll there is no time sort; the by-author
// page and the feed deliberately order differently.
func (s *freetService) ListByAuthor(ctx context.Context, username string, viewerID *int64) ([]*Freet, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, NewValidationError("author", "author username is required")
	}

	author, err := s.userService.GetByUsername(ctx, username)
	if err != nil {
		if users.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to resolve author %q: %w", username, err)
	}

	viewer, err := s.resolveViewer(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	results, err := s.repo.FindMatching(ctx, visibility.AuthorPredicate(viewer, author.ID), OrderNatural)
	if err != nil {
		return nil, fmt.Errorf("failed to list freets by %q: %w", username, err)
	}
	return results, nil
}

// AddReply records the replier's reply on the freet, overwriting any
// earlier reply from the same username. The reply map is rewritten
// whole and date_modified is left alone: a reply is not a content edit,
// so it does not move the freet up the feed.
//
// Concurrent replies to the same freet race at the store; the last write
// to land wins. That lost-update window is an accepted property of this
// layer, not something it coordinates.
func (s *freetService) AddReply(ctx context.Context, freetID, replierID int64, content string) (*Freet, error) {
	if strings.TrimSpace(content) == "" {
		return nil, NewValidationError("content", "reply content is required")
	}

	freet, err := s.repo.GetByID(ctx, freetID)
	if err != nil {
		if errors.Is(err, ErrFreetNotFound) {
			return nil, ErrFreetNotFound
		}
		return nil, fmt.Errorf("failed to get freet %d: %w", freetID, err)
	}

	replier, err := s.userService.GetByID(ctx, replierID)
	if err != nil {
		if users.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to resolve replier %d: %w", replierID, err)
	}

	if freet.Replies == nil {
		freet.Replies = map[string]string{}
	}
	freet.Replies[replier.Username] = content

	if err := s.repo.UpdateReplies(ctx, freetID, freet.Replies); err != nil {
		return nil, fmt.Errorf("failed to save reply on freet %d: %w", freetID, err)
	}
	return freet, nil
}

// DeleteFreet removes a freet. Replies are embedded, so they go with the
// row; there is nothing to cascade. Deleting a freet that does not exist
// reports false rather than failing.
func (s *freetService) DeleteFreet(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete freet %d: %w", id, err)
	}
	return deleted, nil
}

// DeleteAllByAuthor removes every freet by the given author. Idempotent.
func (s *freetService) DeleteAllByAuthor(ctx context.Context, authorID int64) error {
	if err := s.repo.DeleteByAuthor(ctx, authorID); err != nil {
		return fmt.Errorf("failed to delete freets by author %d: %w", authorID, err)
	}
	return nil
}

// resolveViewer builds the visibility viewer context, resolving the
// viewer's friend set when an identity is present.
func (s *freetService) resolveViewer(ctx context.Context, viewerID *int64) (visibility.Viewer, error) {
	if viewerID == nil {
		return visibility.Viewer{Anonymous: true}, nil
	}

	friendIDs, err := s.userService.ResolveFriendIDs(ctx, *viewerID)
	if err != nil {
		if users.IsNotFound(err) {
			return visibility.Viewer{}, err
		}
		return visibility.Viewer{}, fmt.Errorf("failed to resolve viewer %d: %w", *viewerID, err)
	}

	return visibility.Viewer{
		SelfID:    *viewerID,
		FriendIDs: friendIDs,
	}, nil
}

func (s *freetService) validateCreateRequest(req CreateFreetRequest) error {
	if req.AuthorID <= 0 {
		return NewValidationError("authorId", "authorId must be set")
	}
	if strings.TrimSpace(req.Content) == "" {
		return NewValidationError("content", "content is required")
	}
	return nil
}
