package repository

import (
	"context"

	"ripple/internal/cache"
	"ripple/internal/models"

	"gorm.io/gorm"
)

// FollowRepository manages follow edges and the follower/following counters
// denormalized onto the user aggregates. Edge mutation and counter adjustment
// always commit as a single transaction: either all effects are visible or none.
type FollowRepository interface {
	Follow(ctx context.Context, followerID, followingID uint) error
	Unfollow(ctx context.Context, followerID, followingID uint) error
	Exists(ctx context.Context, followerID, followingID uint) (bool, error)
	FollowingIDSet(ctx context.Context, followerID uint, candidateIDs []uint) (map[uint]struct{}, error)
	ListFollowers(ctx context.Context, userID uint) ([]models.Follow, error)
	ListFollowings(ctx context.Context, userID uint) ([]models.Follow, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository returns a new FollowRepository implementation.
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Follow(ctx context.Context, followerID, followingID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		edge := &models.Follow{FollowerID: followerID, FollowingID: followingID}
		if err := tx.Create(edge).Error; err != nil {
			return err
		}

		if err := incrementCounter(tx, &models.User{}, "followers_count", followingID); err != nil {
			return err
		}
		return incrementCounter(tx, &models.User{}, "followings_count", followerID)
	})
	err = translateWriteError(err, "Follow already exists")
	recordMutation("follow", err)
	if err != nil {
		return err
	}

	cache.InvalidateFollowEdge(ctx, followerID, followingID)
	return nil
}

func (r *followRepository) Unfollow(ctx context.Context, followerID, followingID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.
			Where("follower_id = ? AND following_id = ?", followerID, followingID).
			Delete(&models.Follow{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("Follow", followingID)
		}

		if err := decrementCounterFloor(tx, &models.User{}, "followers_count", followingID); err != nil {
			return err
		}
		return decrementCounterFloor(tx, &models.User{}, "followings_count", followerID)
	})
	err = translateWriteError(err, "Follow already exists")
	recordMutation("unfollow", err)
	if err != nil {
		return err
	}

	cache.InvalidateFollowEdge(ctx, followerID, followingID)
	return nil
}

func (r *followRepository) Exists(ctx context.Context, followerID, followingID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// FollowingIDSet returns the subset of candidateIDs the follower follows.
// The follower's full following-ID list is read cache-aside and the candidate
// filter applied in memory, so repeated list decorations for the same viewer
// skip the store entirely. Follow/Unfollow invalidate the cached list.
func (r *followRepository) FollowingIDSet(ctx context.Context, followerID uint, candidateIDs []uint) (map[uint]struct{}, error) {
	set := make(map[uint]struct{}, len(candidateIDs))
	if len(candidateIDs) == 0 {
		return set, nil
	}

	var ids []uint
	err := cache.Aside(ctx, cache.FollowingSetKey(followerID), &ids, cache.FollowingSetTTL, func() error {
		return r.db.WithContext(ctx).
			Model(&models.Follow{}).
			Where("follower_id = ?", followerID).
			Pluck("following_id", &ids).Error
	})
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	following := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		following[id] = struct{}{}
	}
	for _, id := range candidateIDs {
		if _, ok := following[id]; ok {
			set[id] = struct{}{}
		}
	}
	return set, nil
}

func (r *followRepository) ListFollowers(ctx context.Context, userID uint) ([]models.Follow, error) {
	var edges []models.Follow
	if err := r.db.WithContext(ctx).
		Preload("Follower").
		Where("following_id = ?", userID).
		Order("created_at DESC").
		Find(&edges).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return edges, nil
}

func (r *followRepository) ListFollowings(ctx context.Context, userID uint) ([]models.Follow, error) {
	var edges []models.Follow
	if err := r.db.WithContext(ctx).
		Preload("Following").
		Where("follower_id = ?", userID).
		Order("created_at DESC").
		Find(&edges).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return edges, nil
}
