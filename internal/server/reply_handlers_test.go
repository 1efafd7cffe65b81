package server

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type replyView struct {
	ID     uint   `json:"id"`
	Body   string `json:"body"`
	PostID uint   `json:"post_id"`
}

func TestReplyLifecycle(t *testing.T) {
	app := newTestApp(t)
	aliceToken := signupUser(t, app, "alice")
	bobToken := signupUser(t, app, "bob")

	createPost(t, app, aliceToken, "discuss")

	var reply replyView
	resp := doJSON(t, app, http.MethodPost, "/api/posts/1/replies", bobToken, fiber.Map{"body": "nice post"}, &reply)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, uint(1), reply.PostID)

	// The reply raised the post's reply counter.
	var post postView
	resp = doJSON(t, app, http.MethodGet, "/api/posts/1", "", nil, &post)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(1), post.RepliesCount)

	// Only the author may delete, and deletion restores the counter.
	resp = doJSON(t, app, http.MethodDelete, "/api/posts/1/replies/1", aliceToken, nil, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/posts/1/replies/1", bobToken, nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/posts/1", "", nil, &post)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(0), post.RepliesCount)
}

func TestCreateReply_MissingPost(t *testing.T) {
	app := newTestApp(t)
	bobToken := signupUser(t, app, "bob")

	resp := doJSON(t, app, http.MethodPost, "/api/posts/999/replies", bobToken, fiber.Map{"body": "into the void"}, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateReply(t *testing.T) {
	app := newTestApp(t)
	aliceToken := signupUser(t, app, "alice")
	bobToken := signupUser(t, app, "bob")

	createPost(t, app, aliceToken, "discuss")
	resp := doJSON(t, app, http.MethodPost, "/api/posts/1/replies", bobToken, fiber.Map{"body": "v1"}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var reply replyView
	resp = doJSON(t, app, http.MethodPatch, "/api/posts/1/replies/1", bobToken, fiber.Map{"body": "v2"}, &reply)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "v2", reply.Body)

	// Addressing the reply under the wrong post behaves as missing.
	createPost(t, app, aliceToken, "unrelated")
	resp = doJSON(t, app, http.MethodPatch, "/api/posts/2/replies/1", bobToken, fiber.Map{"body": "v3"}, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetReplies(t *testing.T) {
	app := newTestApp(t)
	aliceToken := signupUser(t, app, "alice")
	bobToken := signupUser(t, app, "bob")

	createPost(t, app, aliceToken, "discuss")
	resp := doJSON(t, app, http.MethodPost, "/api/posts/1/replies", bobToken, fiber.Map{"body": "first"}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = doJSON(t, app, http.MethodPost, "/api/posts/1/replies", aliceToken, fiber.Map{"body": "second"}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var replies []replyView
	resp = doJSON(t, app, http.MethodGet, "/api/posts/1/replies", "", nil, &replies)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, replies, 2)
}
