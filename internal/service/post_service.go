package service

import (
	"context"

	"ripple/internal/authz"
	"ripple/internal/models"
	"ripple/internal/repository"
)

const maxPostLen = 10000

// PostService provides post CRUD and the like toggle.
type PostService struct {
	postRepo repository.PostRepository
	likeRepo repository.LikeRepository
	userRepo repository.UserRepository
}

// CreatePostInput carries a post creation request.
type CreatePostInput struct {
	UserID uint
	Body   string
}

// UpdatePostInput carries a post body patch.
type UpdatePostInput struct {
	UserID uint
	PostID uint
	Body   string
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, likeRepo repository.LikeRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		likeRepo: likeRepo,
		userRepo: userRepo,
	}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Body == "" {
		return nil, models.NewValidationError("Body is required")
	}
	if len(in.Body) > maxPostLen {
		return nil, models.NewValidationError("Post too long (max 10000 characters)")
	}

	post := &models.Post{
		Body:   in.Body,
		UserID: in.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID)
}

// GetPost returns a post annotated with whether the viewer liked it.
func (s *PostService) GetPost(ctx context.Context, postID, viewerID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if viewerID != 0 {
		liked, err := s.likeRepo.IsLiked(ctx, viewerID, postID)
		if err != nil {
			return nil, err
		}
		post.Liked = liked
	}
	return post, nil
}

// ListPosts returns recent posts annotated with the viewer's liked status.
func (s *PostService) ListPosts(ctx context.Context, viewerID uint, limit, offset int) ([]*models.Post, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	posts, err := s.postRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	if err := s.annotatePosts(ctx, viewerID, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// ListPostsByUser returns the named user's posts annotated for the viewer.
func (s *PostService) ListPostsByUser(ctx context.Context, username string, viewerID uint, limit, offset int) ([]*models.Post, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.ListByUser(ctx, user.ID, limit, offset)
	if err != nil {
		return nil, err
	}
	if err := s.annotatePosts(ctx, viewerID, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if err := authz.RequireOwner(in.UserID, post.UserID, "update"); err != nil {
		return nil, err
	}
	if in.Body == "" {
		return nil, models.NewValidationError("Body is required")
	}
	if len(in.Body) > maxPostLen {
		return nil, models.NewValidationError("Post too long (max 10000 characters)")
	}

	post.Body = in.Body
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost soft-deletes the post. Replies and like edges are left in place;
// the post simply stops being queryable.
func (s *PostService) DeletePost(ctx context.Context, postID, userID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if err := authz.RequireOwner(userID, post.UserID, "delete"); err != nil {
		return err
	}

	return s.postRepo.Delete(ctx, postID)
}

// ToggleLike flips the viewer's like on the post and returns the updated post
// view. A missing or soft-deleted post reports NOT_FOUND.
func (s *PostService) ToggleLike(ctx context.Context, postID, userID uint) (*models.Post, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	liked, err := s.likeRepo.Toggle(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	post.Liked = liked
	return post, nil
}

func (s *PostService) annotatePosts(ctx context.Context, viewerID uint, posts []*models.Post) error {
	if viewerID == 0 || len(posts) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}

	set, err := s.likeRepo.LikedPostIDSet(ctx, viewerID, ids)
	if err != nil {
		return err
	}
	for _, p := range posts {
		_, ok := set[p.ID]
		p.Liked = ok
	}
	return nil
}
