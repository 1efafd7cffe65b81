package repository

import (
	"context"
	"errors"

	"ripple/internal/cache"
	"ripple/internal/models"

	"gorm.io/gorm"
)

// ReplyRepository defines persistence operations for replies. The create and
// delete operations are counter-coupled: the parent post's replies_count is
// adjusted inside the same transaction as the reply row mutation.
type ReplyRepository interface {
	CreateWithCount(ctx context.Context, reply *models.Reply) error
	GetByID(ctx context.Context, id uint) (*models.Reply, error)
	ListByPost(ctx context.Context, postID uint) ([]*models.Reply, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.Reply, error)
	Update(ctx context.Context, reply *models.Reply) error
	DeleteWithCount(ctx context.Context, id, postID uint) error
}

type replyRepository struct {
	db *gorm.DB
}

// NewReplyRepository returns a new ReplyRepository implementation.
func NewReplyRepository(db *gorm.DB) ReplyRepository {
	return &replyRepository{db: db}
}

// CreateWithCount inserts the reply and increments the post's replies_count atomically.
func (r *replyRepository) CreateWithCount(ctx context.Context, reply *models.Reply) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(reply).Error; err != nil {
			return err
		}
		return incrementCounter(tx, &models.Post{}, "replies_count", reply.PostID)
	})
	if err != nil {
		return translateWriteError(err, "Reply already exists")
	}

	cache.InvalidatePost(ctx, reply.PostID)
	return nil
}

func (r *replyRepository) GetByID(ctx context.Context, id uint) (*models.Reply, error) {
	var reply models.Reply
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&reply, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Reply", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &reply, nil
}

func (r *replyRepository) ListByPost(ctx context.Context, postID uint) ([]*models.Reply, error) {
	var replies []*models.Reply
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&replies).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return replies, nil
}

func (r *replyRepository) ListByUser(ctx context.Context, userID uint) ([]*models.Reply, error) {
	var replies []*models.Reply
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&replies).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return replies, nil
}

func (r *replyRepository) Update(ctx context.Context, reply *models.Reply) error {
	if err := r.db.WithContext(ctx).Save(reply).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// DeleteWithCount soft-deletes the reply and decrements the post's
// replies_count (floor zero) atomically. Deleting an already-deleted reply
// reports NOT_FOUND and leaves the counter untouched.
func (r *replyRepository) DeleteWithCount(ctx context.Context, id, postID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND post_id = ?", id, postID).Delete(&models.Reply{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("Reply", id)
		}
		return decrementCounterFloor(tx, &models.Post{}, "replies_count", postID)
	})
	if err != nil {
		return translateWriteError(err, "Reply already exists")
	}

	cache.InvalidatePost(ctx, postID)
	return nil
}
