package repository

import (
	"context"

	"ripple/internal/cache"
	"ripple/internal/models"

	"gorm.io/gorm"
)

// LikeRepository manages like edges and the likes_count cached on posts.
type LikeRepository interface {
	// Toggle flips the like state for (userID, postID) and returns the
	// resulting state. Existence check, edge mutation and counter adjustment
	// share one transaction; the unique index on (user_id, post_id) is the
	// backstop for races between the check and the insert.
	Toggle(ctx context.Context, userID, postID uint) (liked bool, err error)
	IsLiked(ctx context.Context, userID, postID uint) (bool, error)
	LikedPostIDSet(ctx context.Context, userID uint, postIDs []uint) (map[uint]struct{}, error)
	ListByPost(ctx context.Context, postID uint) ([]models.Like, error)
	ListByPostOwner(ctx context.Context, ownerID uint) ([]models.Like, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository returns a new LikeRepository implementation.
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Toggle(ctx context.Context, userID, postID uint) (bool, error) {
	var liked bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Removing first makes the toggle branch on actual edge existence
		// rather than a separate read that could go stale.
		res := tx.
			Where("user_id = ? AND post_id = ?", userID, postID).
			Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			liked = false
			return decrementCounterFloor(tx, &models.Post{}, "likes_count", postID)
		}

		edge := &models.Like{UserID: userID, PostID: postID}
		if err := tx.Create(edge).Error; err != nil {
			return err
		}
		liked = true
		return incrementCounter(tx, &models.Post{}, "likes_count", postID)
	})
	err = translateWriteError(err, "Like already exists")
	kind := "like"
	if err == nil && !liked {
		kind = "unlike"
	}
	recordMutation(kind, err)
	if err != nil {
		return false, err
	}

	cache.InvalidatePost(ctx, postID)
	return liked, nil
}

func (r *likeRepository) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// LikedPostIDSet returns the subset of postIDs liked by the user in a single query.
func (r *likeRepository) LikedPostIDSet(ctx context.Context, userID uint, postIDs []uint) (map[uint]struct{}, error) {
	set := make(map[uint]struct{}, len(postIDs))
	if len(postIDs) == 0 {
		return set, nil
	}

	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

// ListByPostOwner returns the likes on every live post owned by ownerID in
// one joined query. Likes on soft-deleted posts are excluded with the posts.
func (r *likeRepository) ListByPostOwner(ctx context.Context, ownerID uint) ([]models.Like, error) {
	var likes []models.Like
	if err := r.db.WithContext(ctx).
		Preload("User").
		Joins("JOIN posts ON posts.id = likes.post_id AND posts.deleted_at IS NULL").
		Where("posts.user_id = ?", ownerID).
		Order("likes.created_at DESC").
		Find(&likes).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return likes, nil
}

func (r *likeRepository) ListByPost(ctx context.Context, postID uint) ([]models.Like, error) {
	var likes []models.Like
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&likes).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return likes, nil
}
