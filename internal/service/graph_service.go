package service

import (
	"context"

	"showcase/internal/models"
	"showcase/internal/repository"
)

// FollowStatus reports the outcome of a follow or unfollow request.
type FollowStatus string

const (
	// StatusFollowed means a new edge was inserted.
	StatusFollowed FollowStatus = "followed"
	// StatusAlreadyFollowing means the edge already existed; nothing changed.
	StatusAlreadyFollowing FollowStatus = "already_following"
	// StatusUnfollowed means the edge was removed.
	StatusUnfollowed FollowStatus = "unfollowed"
	// StatusNotFollowing means there was no edge to remove; nothing changed.
	StatusNotFollowing FollowStatus = "not_following"
)

// GraphService owns the directed follow relation between profiles.
// Membership checks are served from the viewer's cached following set; every
// successful mutation re-fetches the viewer profile so the cached sets
// resynchronize (eventual, not immediate, consistency).
type GraphService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewGraphService returns a new GraphService.
func NewGraphService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *GraphService {
	return &GraphService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow inserts a follow edge from the viewer to the target. Following a
// user twice is a no-op reported as StatusAlreadyFollowing. On success the
// returned profile is the viewer's resynchronized snapshot.
func (s *GraphService) Follow(ctx context.Context, viewer *models.Profile, targetID uint) (*models.Profile, FollowStatus, error) {
	if viewer == nil {
		return nil, "", models.NewUnauthenticatedError("You must be logged in to follow users")
	}
	if viewer.ID == targetID {
		return nil, "", models.NewValidationError("You cannot follow yourself")
	}

	// Check-then-act against the cached following set: no store round trip
	// when the edge is already known.
	if viewer.IsFollowing(targetID) {
		return viewer, StatusAlreadyFollowing, nil
	}

	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return nil, "", err
	}

	if err := s.followRepo.Create(ctx, viewer.ID, targetID); err != nil {
		return nil, "", err
	}

	fresh, err := s.userRepo.GetByID(ctx, viewer.ID)
	if err != nil {
		return nil, "", err
	}
	return fresh, StatusFollowed, nil
}

// Unfollow removes the follow edge from the viewer to the target. A missing
// edge is a no-op reported as StatusNotFollowing.
func (s *GraphService) Unfollow(ctx context.Context, viewer *models.Profile, targetID uint) (*models.Profile, FollowStatus, error) {
	if viewer == nil {
		return nil, "", models.NewUnauthenticatedError("You must be logged in to unfollow users")
	}

	if !viewer.IsFollowing(targetID) {
		return viewer, StatusNotFollowing, nil
	}

	if err := s.followRepo.Delete(ctx, viewer.ID, targetID); err != nil {
		return nil, "", err
	}

	fresh, err := s.userRepo.GetByID(ctx, viewer.ID)
	if err != nil {
		return nil, "", err
	}
	return fresh, StatusUnfollowed, nil
}

// IsFollowing is a membership test against the viewer's cached following set.
// It never touches the backing store.
func (s *GraphService) IsFollowing(viewer *models.Profile, targetID uint) bool {
	if viewer == nil {
		return false
	}
	return viewer.IsFollowing(targetID)
}
