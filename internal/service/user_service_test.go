package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"ripple/internal/models"
)

func staticToken(uint) (string, error) { return "token", nil }

func TestUserService_SignUp_Validation(t *testing.T) {
	svc := NewUserService(noopUserRepo(), noopFollowRepo(), staticToken)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"empty username", "", "hunter2"},
		{"empty password", "alice", ""},
		{"username too long", strings.Repeat("a", 31), "hunter2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SignUp(context.Background(), tt.username, tt.password)
			require.Error(t, err)
			assert.True(t, models.HasCode(err, models.CodeValidation))
		})
	}
}

func TestUserService_SignUp_HashesPassword(t *testing.T) {
	var created *models.User
	userRepo := noopUserRepo()
	userRepo.createFn = func(_ context.Context, user *models.User) error {
		created = user
		return nil
	}

	svc := NewUserService(userRepo, noopFollowRepo(), staticToken)

	_, err := svc.SignUp(context.Background(), "alice", "hunter2")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEqual(t, "hunter2", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("hunter2")))
}

func TestUserService_SignUp_DuplicateUsername(t *testing.T) {
	userRepo := noopUserRepo()
	userRepo.createFn = func(context.Context, *models.User) error {
		return models.NewAlreadyExistsError("Username already taken")
	}

	svc := NewUserService(userRepo, noopFollowRepo(), staticToken)

	_, err := svc.SignUp(context.Background(), "alice", "hunter2")
	require.Error(t, err)
	assert.True(t, models.HasCode(err, models.CodeAlreadyExists))
}

func TestUserService_Authenticate(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo := noopUserRepo()
	userRepo.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
		return &models.User{ID: 1, Username: username, Password: string(hashed)}, nil
	}

	svc := NewUserService(userRepo, noopFollowRepo(), staticToken)

	token, err := svc.Authenticate(context.Background(), "alice", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "token", token)

	// A wrong password must not reveal whether the account exists.
	_, err = svc.Authenticate(context.Background(), "alice", "wrong")
	require.Error(t, err)
	assert.True(t, models.HasCode(err, models.CodeNotFound))
}

func TestUserService_GetUser_AnnotatesIsFollowing(t *testing.T) {
	userRepo := noopUserRepo()
	userRepo.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
		return &models.User{ID: 2, Username: username}, nil
	}

	followRepo := noopFollowRepo()
	followRepo.existsFn = func(_ context.Context, followerID, followingID uint) (bool, error) {
		return followerID == 9 && followingID == 2, nil
	}

	svc := NewUserService(userRepo, followRepo, staticToken)

	user, err := svc.GetUser(context.Background(), "bob", 9)
	require.NoError(t, err)
	assert.True(t, user.IsFollowing)

	// Anonymous viewers never see a follow annotation.
	user, err = svc.GetUser(context.Background(), "bob", 0)
	require.NoError(t, err)
	assert.False(t, user.IsFollowing)
}

func TestUserService_UpdateProfile_OwnerOnly(t *testing.T) {
	userRepo := noopUserRepo()
	userRepo.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
		return &models.User{ID: 2, Username: username}, nil
	}
	userRepo.updateFn = func(context.Context, *models.User) error {
		t.Fatal("repo.Update should not be reached for a non-owner")
		return nil
	}

	svc := NewUserService(userRepo, noopFollowRepo(), staticToken)

	desc := "new description"
	_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{
		ViewerID:    9,
		Username:    "bob",
		Description: &desc,
	})
	require.Error(t, err)
	assert.True(t, models.HasCode(err, models.CodeForbidden))
}

func TestUserService_UpdateProfile_PatchSemantics(t *testing.T) {
	userRepo := noopUserRepo()
	userRepo.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
		return &models.User{ID: 2, Username: username, Description: "old", Profile: "pic.png"}, nil
	}

	svc := NewUserService(userRepo, noopFollowRepo(), staticToken)

	desc := "new"
	user, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{
		ViewerID:    2,
		Username:    "bob",
		Description: &desc,
	})
	require.NoError(t, err)
	assert.Equal(t, "new", user.Description)
	assert.Equal(t, "pic.png", user.Profile, "omitted fields stay untouched")
}

func TestUserService_SearchUsers_AnnotatesBatch(t *testing.T) {
	userRepo := noopUserRepo()
	userRepo.searchFn = func(_ context.Context, _ string, _, _ int) ([]models.User, error) {
		return []models.User{{ID: 2, Username: "bob"}, {ID: 3, Username: "carol"}}, nil
	}

	followRepo := noopFollowRepo()
	followRepo.followingIDSetFn = func(_ context.Context, followerID uint, candidateIDs []uint) (map[uint]struct{}, error) {
		assert.Equal(t, uint(9), followerID)
		assert.ElementsMatch(t, []uint{2, 3}, candidateIDs)
		return map[uint]struct{}{3: {}}, nil
	}

	svc := NewUserService(userRepo, followRepo, staticToken)

	users, err := svc.SearchUsers(context.Background(), "o", 9, 10, 0)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.False(t, users[0].IsFollowing)
	assert.True(t, users[1].IsFollowing)
}
