package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// EngagementService composes users, posts and relationship edges into the
// annotated listings the API serves: followers, followings and likers.
// Every returned user carries IsFollowing computed relative to the REQUESTING
// principal, not the listing's subject, via one batched edge query per listing.
type EngagementService struct {
	userRepo   repository.UserRepository
	postRepo   repository.PostRepository
	followRepo repository.FollowRepository
	likeRepo   repository.LikeRepository
}

// NewEngagementService returns a new EngagementService.
func NewEngagementService(
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	followRepo repository.FollowRepository,
	likeRepo repository.LikeRepository,
) *EngagementService {
	return &EngagementService{
		userRepo:   userRepo,
		postRepo:   postRepo,
		followRepo: followRepo,
		likeRepo:   likeRepo,
	}
}

// GetFollowers lists the users following the named user, each annotated with
// the viewer's follow status and the time the edge was created.
func (s *EngagementService) GetFollowers(ctx context.Context, username string, viewerID uint) ([]models.Follower, error) {
	subject, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	edges, err := s.followRepo.ListFollowers(ctx, subject.ID)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, len(edges))
	for i, edge := range edges {
		users[i] = edge.Follower
	}
	if err := annotateUsers(ctx, s.followRepo, viewerID, users); err != nil {
		return nil, err
	}

	followers := make([]models.Follower, len(edges))
	for i, edge := range edges {
		followers[i] = models.Follower{
			User:       users[i],
			FollowedAt: edge.CreatedAt,
		}
	}
	return followers, nil
}

// GetFollowings lists the users the named user follows, annotated for the viewer.
func (s *EngagementService) GetFollowings(ctx context.Context, username string, viewerID uint) ([]models.User, error) {
	subject, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	edges, err := s.followRepo.ListFollowings(ctx, subject.ID)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, len(edges))
	for i, edge := range edges {
		users[i] = edge.Following
	}
	if err := annotateUsers(ctx, s.followRepo, viewerID, users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetPostLikers lists the users who liked the post, annotated for the viewer.
func (s *EngagementService) GetPostLikers(ctx context.Context, postID, viewerID uint) ([]models.LikedUser, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	likes, err := s.likeRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return s.annotateLikes(ctx, viewerID, likes)
}

// GetUserLikers lists the users who liked any of the named user's posts,
// annotated for the viewer.
func (s *EngagementService) GetUserLikers(ctx context.Context, username string, viewerID uint) ([]models.LikedUser, error) {
	subject, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	likes, err := s.likeRepo.ListByPostOwner(ctx, subject.ID)
	if err != nil {
		return nil, err
	}
	return s.annotateLikes(ctx, viewerID, likes)
}

func (s *EngagementService) annotateLikes(ctx context.Context, viewerID uint, likes []models.Like) ([]models.LikedUser, error) {
	users := make([]models.User, len(likes))
	for i, like := range likes {
		users[i] = like.User
	}
	if err := annotateUsers(ctx, s.followRepo, viewerID, users); err != nil {
		return nil, err
	}

	likers := make([]models.LikedUser, len(likes))
	for i, like := range likes {
		likers[i] = models.LikedUser{
			User:        users[i],
			LikedPostID: like.PostID,
			LikedAt:     like.CreatedAt,
		}
	}
	return likers, nil
}
