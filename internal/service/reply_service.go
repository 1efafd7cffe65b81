package service

import (
	"context"

	"ripple/internal/authz"
	"ripple/internal/models"
	"ripple/internal/repository"
)

const maxReplyLen = 10000

// ReplyService provides reply business logic. The counter-coupled create and
// delete operations delegate to the repository's transactional methods.
type ReplyService struct {
	replyRepo repository.ReplyRepository
	postRepo  repository.PostRepository
	userRepo  repository.UserRepository
}

// CreateReplyInput carries a reply creation request.
type CreateReplyInput struct {
	UserID uint
	PostID uint
	Body   string
}

// UpdateReplyInput carries a reply body patch.
type UpdateReplyInput struct {
	UserID  uint
	PostID  uint
	ReplyID uint
	Body    string
}

// NewReplyService returns a new ReplyService.
func NewReplyService(replyRepo repository.ReplyRepository, postRepo repository.PostRepository, userRepo repository.UserRepository) *ReplyService {
	return &ReplyService{
		replyRepo: replyRepo,
		postRepo:  postRepo,
		userRepo:  userRepo,
	}
}

// ListByPost returns the post's replies. The post must exist and not be deleted.
func (s *ReplyService) ListByPost(ctx context.Context, postID uint) ([]*models.Reply, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.replyRepo.ListByPost(ctx, postID)
}

// ListByUser returns the named user's replies.
func (s *ReplyService) ListByUser(ctx context.Context, username string) ([]*models.Reply, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.replyRepo.ListByUser(ctx, user.ID)
}

// CreateReply inserts a reply and bumps the post's replies_count atomically.
func (s *ReplyService) CreateReply(ctx context.Context, in CreateReplyInput) (*models.Reply, error) {
	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}

	if in.Body == "" {
		return nil, models.NewValidationError("Body is required")
	}
	if len(in.Body) > maxReplyLen {
		return nil, models.NewValidationError("Reply too long (max 10000 characters)")
	}

	reply := &models.Reply{
		Body:   in.Body,
		UserID: in.UserID,
		PostID: in.PostID,
	}
	if err := s.replyRepo.CreateWithCount(ctx, reply); err != nil {
		return nil, err
	}

	return s.replyRepo.GetByID(ctx, reply.ID)
}

// UpdateReply replaces the reply body. Owner-only; counters are untouched.
func (s *ReplyService) UpdateReply(ctx context.Context, in UpdateReplyInput) (*models.Reply, error) {
	reply, err := s.replyRepo.GetByID(ctx, in.ReplyID)
	if err != nil {
		return nil, err
	}
	if reply.PostID != in.PostID {
		return nil, models.NewNotFoundError("Reply", in.ReplyID)
	}

	if err := authz.RequireOwner(in.UserID, reply.UserID, "update"); err != nil {
		return nil, err
	}
	if in.Body == "" {
		return nil, models.NewValidationError("Body is required")
	}

	reply.Body = in.Body
	if err := s.replyRepo.Update(ctx, reply); err != nil {
		return nil, err
	}
	return s.replyRepo.GetByID(ctx, reply.ID)
}

// DeleteReply soft-deletes the reply and decrements the post's replies_count
// atomically. Owner-only.
func (s *ReplyService) DeleteReply(ctx context.Context, postID, replyID, userID uint) error {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return err
	}

	reply, err := s.replyRepo.GetByID(ctx, replyID)
	if err != nil {
		return err
	}
	if reply.PostID != postID {
		return models.NewNotFoundError("Reply", replyID)
	}

	if err := authz.RequireOwner(userID, reply.UserID, "delete"); err != nil {
		return err
	}

	return s.replyRepo.DeleteWithCount(ctx, replyID, postID)
}
