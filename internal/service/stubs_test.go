package service

import (
	"context"

	"ripple/internal/models"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	listFn          func(context.Context, int, int) ([]models.User, error)
	searchFn        func(context.Context, string, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) Search(ctx context.Context, q string, limit, offset int) ([]models.User, error) {
	return s.searchFn(ctx, q, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByUsernameFn: func(context.Context, string) (*models.User, error) { return &models.User{}, nil },
		createFn:        func(context.Context, *models.User) error { return nil },
		updateFn:        func(context.Context, *models.User) error { return nil },
		listFn:          func(context.Context, int, int) ([]models.User, error) { return nil, nil },
		searchFn:        func(context.Context, string, int, int) ([]models.User, error) { return nil, nil },
	}
}

// followRepoStub is a stub for repository.FollowRepository.
type followRepoStub struct {
	followFn         func(context.Context, uint, uint) error
	unfollowFn       func(context.Context, uint, uint) error
	existsFn         func(context.Context, uint, uint) (bool, error)
	followingIDSetFn func(context.Context, uint, []uint) (map[uint]struct{}, error)
	listFollowersFn  func(context.Context, uint) ([]models.Follow, error)
	listFollowingsFn func(context.Context, uint) ([]models.Follow, error)
}

func (s *followRepoStub) Follow(ctx context.Context, followerID, followingID uint) error {
	return s.followFn(ctx, followerID, followingID)
}
func (s *followRepoStub) Unfollow(ctx context.Context, followerID, followingID uint) error {
	return s.unfollowFn(ctx, followerID, followingID)
}
func (s *followRepoStub) Exists(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.existsFn(ctx, followerID, followingID)
}
func (s *followRepoStub) FollowingIDSet(ctx context.Context, followerID uint, candidateIDs []uint) (map[uint]struct{}, error) {
	return s.followingIDSetFn(ctx, followerID, candidateIDs)
}
func (s *followRepoStub) ListFollowers(ctx context.Context, userID uint) ([]models.Follow, error) {
	return s.listFollowersFn(ctx, userID)
}
func (s *followRepoStub) ListFollowings(ctx context.Context, userID uint) ([]models.Follow, error) {
	return s.listFollowingsFn(ctx, userID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		followFn:   func(context.Context, uint, uint) error { return nil },
		unfollowFn: func(context.Context, uint, uint) error { return nil },
		existsFn:   func(context.Context, uint, uint) (bool, error) { return false, nil },
		followingIDSetFn: func(context.Context, uint, []uint) (map[uint]struct{}, error) {
			return map[uint]struct{}{}, nil
		},
		listFollowersFn:  func(context.Context, uint) ([]models.Follow, error) { return nil, nil },
		listFollowingsFn: func(context.Context, uint) ([]models.Follow, error) { return nil, nil },
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn     func(context.Context, *models.Post) error
	getByIDFn    func(context.Context, uint) (*models.Post, error)
	listFn       func(context.Context, int, int) ([]*models.Post, error)
	listByUserFn func(context.Context, uint, int, int) ([]*models.Post, error)
	updateFn     func(context.Context, *models.Post) error
	deleteFn     func(context.Context, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *postRepoStub) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	return s.listByUserFn(ctx, userID, limit, offset)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:     func(context.Context, *models.Post) error { return nil },
		getByIDFn:    func(context.Context, uint) (*models.Post, error) { return &models.Post{}, nil },
		listFn:       func(context.Context, int, int) ([]*models.Post, error) { return nil, nil },
		listByUserFn: func(context.Context, uint, int, int) ([]*models.Post, error) { return nil, nil },
		updateFn:     func(context.Context, *models.Post) error { return nil },
		deleteFn:     func(context.Context, uint) error { return nil },
	}
}

// likeRepoStub is a stub for repository.LikeRepository.
type likeRepoStub struct {
	toggleFn         func(context.Context, uint, uint) (bool, error)
	isLikedFn        func(context.Context, uint, uint) (bool, error)
	likedPostIDSetFn  func(context.Context, uint, []uint) (map[uint]struct{}, error)
	listByPostFn      func(context.Context, uint) ([]models.Like, error)
	listByPostOwnerFn func(context.Context, uint) ([]models.Like, error)
}

func (s *likeRepoStub) Toggle(ctx context.Context, userID, postID uint) (bool, error) {
	return s.toggleFn(ctx, userID, postID)
}
func (s *likeRepoStub) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, postID)
}
func (s *likeRepoStub) LikedPostIDSet(ctx context.Context, userID uint, postIDs []uint) (map[uint]struct{}, error) {
	return s.likedPostIDSetFn(ctx, userID, postIDs)
}
func (s *likeRepoStub) ListByPost(ctx context.Context, postID uint) ([]models.Like, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *likeRepoStub) ListByPostOwner(ctx context.Context, ownerID uint) ([]models.Like, error) {
	return s.listByPostOwnerFn(ctx, ownerID)
}

func noopLikeRepo() *likeRepoStub {
	return &likeRepoStub{
		toggleFn:  func(context.Context, uint, uint) (bool, error) { return false, nil },
		isLikedFn: func(context.Context, uint, uint) (bool, error) { return false, nil },
		likedPostIDSetFn: func(context.Context, uint, []uint) (map[uint]struct{}, error) {
			return map[uint]struct{}{}, nil
		},
		listByPostFn:      func(context.Context, uint) ([]models.Like, error) { return nil, nil },
		listByPostOwnerFn: func(context.Context, uint) ([]models.Like, error) { return nil, nil },
	}
}

// replyRepoStub is a stub for repository.ReplyRepository.
type replyRepoStub struct {
	createWithCountFn func(context.Context, *models.Reply) error
	getByIDFn         func(context.Context, uint) (*models.Reply, error)
	listByPostFn      func(context.Context, uint) ([]*models.Reply, error)
	listByUserFn      func(context.Context, uint) ([]*models.Reply, error)
	updateFn          func(context.Context, *models.Reply) error
	deleteWithCountFn func(context.Context, uint, uint) error
}

func (s *replyRepoStub) CreateWithCount(ctx context.Context, reply *models.Reply) error {
	return s.createWithCountFn(ctx, reply)
}
func (s *replyRepoStub) GetByID(ctx context.Context, id uint) (*models.Reply, error) {
	return s.getByIDFn(ctx, id)
}
func (s *replyRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Reply, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *replyRepoStub) ListByUser(ctx context.Context, userID uint) ([]*models.Reply, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *replyRepoStub) Update(ctx context.Context, reply *models.Reply) error {
	return s.updateFn(ctx, reply)
}
func (s *replyRepoStub) DeleteWithCount(ctx context.Context, id, postID uint) error {
	return s.deleteWithCountFn(ctx, id, postID)
}

func noopReplyRepo() *replyRepoStub {
	return &replyRepoStub{
		createWithCountFn: func(context.Context, *models.Reply) error { return nil },
		getByIDFn:         func(context.Context, uint) (*models.Reply, error) { return &models.Reply{}, nil },
		listByPostFn:      func(context.Context, uint) ([]*models.Reply, error) { return nil, nil },
		listByUserFn:      func(context.Context, uint) ([]*models.Reply, error) { return nil, nil },
		updateFn:          func(context.Context, *models.Reply) error { return nil },
		deleteWithCountFn: func(context.Context, uint, uint) error { return nil },
	}
}
