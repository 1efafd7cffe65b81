package server

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	app := newTestApp(t)

	var out struct {
		Token string `json:"token"`
		User  struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	resp := doJSON(t, app, http.MethodPost, "/api/users", "", fiber.Map{
		"username": "alice",
		"password": "hunter2",
	}, &out)

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "alice", out.User.Username)
}

func TestSignup_DuplicateUsername(t *testing.T) {
	app := newTestApp(t)
	signupUser(t, app, "alice")

	resp := doJSON(t, app, http.MethodPost, "/api/users", "", fiber.Map{
		"username": "alice",
		"password": "hunter2",
	}, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestSignup_MissingFields(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/users", "", fiber.Map{
		"username": "alice",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAuthenticate(t *testing.T) {
	app := newTestApp(t)
	signupUser(t, app, "alice")

	var out struct {
		Token string `json:"token"`
	}
	resp := doJSON(t, app, http.MethodPost, "/api/users/authenticate", "", fiber.Map{
		"username": "alice",
		"password": "hunter2",
	}, &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, out.Token)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	app := newTestApp(t)
	signupUser(t, app, "alice")

	resp := doJSON(t, app, http.MethodPost, "/api/users/authenticate", "", fiber.Map{
		"username": "alice",
		"password": "wrong",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/posts", "", fiber.Map{
		"body": "hello",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
