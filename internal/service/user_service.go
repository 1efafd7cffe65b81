// Package service implements the application's business logic on top of the
// repository layer.
package service

import (
	"context"

	"ripple/internal/authz"
	"ripple/internal/models"
	"ripple/internal/repository"
	"ripple/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// TokenIssuer mints an access token for an authenticated user.
type TokenIssuer func(userID uint) (string, error)

// UserService provides sign-up, authentication and profile business logic.
type UserService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	issueToken TokenIssuer
}

// UpdateProfileInput carries a profile patch request.
type UpdateProfileInput struct {
	ViewerID    uint
	Username    string
	Description *string
	Profile     *string
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, followRepo repository.FollowRepository, issueToken TokenIssuer) *UserService {
	return &UserService{
		userRepo:   userRepo,
		followRepo: followRepo,
		issueToken: issueToken,
	}
}

// SignUp registers a new user. Duplicate usernames fail with ALREADY_EXISTS.
func (s *UserService) SignUp(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, models.NewValidationError("Username and password are required")
	}
	if err := validation.ValidateUsername(username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username: username,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate verifies the credentials and returns an access token.
// A wrong password reports NOT_FOUND rather than leaking which part failed.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", models.NewNotFoundError("User", username)
	}

	return s.issueToken(user.ID)
}

// GetUser returns the user view annotated with whether the viewer follows them.
func (s *UserService) GetUser(ctx context.Context, username string, viewerID uint) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if viewerID != 0 && viewerID != user.ID {
		following, err := s.followRepo.Exists(ctx, viewerID, user.ID)
		if err != nil {
			return nil, err
		}
		user.IsFollowing = following
	}
	return user, nil
}

// SearchUsers lists users, filtered by a username substring when query is
// non-empty, each annotated with the viewer's follow status.
func (s *UserService) SearchUsers(ctx context.Context, query string, viewerID uint, limit, offset int) ([]models.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	var (
		users []models.User
		err   error
	)
	if query != "" {
		users, err = s.userRepo.Search(ctx, query, limit, offset)
	} else {
		users, err = s.userRepo.List(ctx, limit, offset)
	}
	if err != nil {
		return nil, err
	}

	if err := annotateUsers(ctx, s.followRepo, viewerID, users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateProfile patches the user's description/profile. Only the owner may
// mutate their profile; the username itself is immutable.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}

	if err := authz.RequireOwner(in.ViewerID, user.ID, "update"); err != nil {
		return nil, err
	}

	const maxDescriptionLen = 500
	if in.Description != nil {
		if len(*in.Description) > maxDescriptionLen {
			return nil, models.NewValidationError("Description too long (max 500 characters)")
		}
		user.Description = *in.Description
	}
	if in.Profile != nil {
		user.Profile = *in.Profile
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// annotateUsers sets IsFollowing on each user relative to the viewer using a
// single batched edge query.
func annotateUsers(ctx context.Context, followRepo repository.FollowRepository, viewerID uint, users []models.User) error {
	if viewerID == 0 || len(users) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(users))
	for i := range users {
		ids = append(ids, users[i].ID)
	}

	set, err := followRepo.FollowingIDSet(ctx, viewerID, ids)
	if err != nil {
		return err
	}
	for i := range users {
		_, ok := set[users[i].ID]
		users[i].IsFollowing = ok
	}
	return nil
}
