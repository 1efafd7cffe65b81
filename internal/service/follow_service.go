package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// FollowService drives follow-edge mutations. Counter maintenance happens in
// the repository transaction; this layer enforces the self-reference and
// target-existence rules and shapes the returned view.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewFollowService returns a new FollowService.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow creates a follow edge from the viewer to the named user and returns
// the target's updated view with IsFollowing set.
func (s *FollowService) Follow(ctx context.Context, viewerID uint, targetUsername string) (*models.User, error) {
	target, err := s.userRepo.GetByUsername(ctx, targetUsername)
	if err != nil {
		return nil, err
	}

	if target.ID == viewerID {
		return nil, models.NewSelfReferenceError("follow")
	}

	if err := s.followRepo.Follow(ctx, viewerID, target.ID); err != nil {
		return nil, err
	}

	// Re-read for the post-mutation counter values. The mutation invalidated
	// the target's aggregate key, so the id-keyed read repopulates the cache.
	target, err = s.userRepo.GetByID(ctx, target.ID)
	if err != nil {
		return nil, err
	}
	target.IsFollowing = true
	return target, nil
}

// Unfollow removes the follow edge from the viewer to the named user.
// A missing edge reports NOT_FOUND; counters never go below zero.
func (s *FollowService) Unfollow(ctx context.Context, viewerID uint, targetUsername string) (*models.User, error) {
	target, err := s.userRepo.GetByUsername(ctx, targetUsername)
	if err != nil {
		return nil, err
	}

	if target.ID == viewerID {
		return nil, models.NewSelfReferenceError("unfollow")
	}

	if err := s.followRepo.Unfollow(ctx, viewerID, target.ID); err != nil {
		return nil, err
	}

	target, err = s.userRepo.GetByID(ctx, target.ID)
	if err != nil {
		return nil, err
	}
	target.IsFollowing = false
	return target, nil
}

// IsFollowing reports whether a follows b. Pure existence query, no side effects.
func (s *FollowService) IsFollowing(ctx context.Context, a, b uint) (bool, error) {
	return s.followRepo.Exists(ctx, a, b)
}
