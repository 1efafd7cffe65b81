package server

import (
	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetUser handles GET /api/users/:username
func (s *Server) GetUser(c *fiber.Ctx) error {
	username := c.Params("username")

	user, err := s.userService.GetUser(c.UserContext(), username, s.optionalUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// SearchUsers handles GET /api/users?query=
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	p := parsePagination(c, 50)

	users, err := s.userService.SearchUsers(c.UserContext(), c.Query("query"), s.optionalUserID(c), p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// UpdateProfile handles PATCH /api/users/:username
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	var req struct {
		Description *string `json:"description"`
		Profile     *string `json:"profile"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.UserContext(), service.UpdateProfileInput{
		ViewerID:    viewerID(c),
		Username:    c.Params("username"),
		Description: req.Description,
		Profile:     req.Profile,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// FollowUser handles POST /api/users/:username/follows
func (s *Server) FollowUser(c *fiber.Ctx) error {
	target, err := s.followService.Follow(c.UserContext(), viewerID(c), c.Params("username"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(target)
}

// UnfollowUser handles DELETE /api/users/:username/follows
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	target, err := s.followService.Unfollow(c.UserContext(), viewerID(c), c.Params("username"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(target)
}

// GetFollowers handles GET /api/users/:username/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	followers, err := s.engagementService.GetFollowers(c.UserContext(), c.Params("username"), s.optionalUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(followers)
}

// GetFollowings handles GET /api/users/:username/followings
func (s *Server) GetFollowings(c *fiber.Ctx) error {
	followings, err := s.engagementService.GetFollowings(c.UserContext(), c.Params("username"), s.optionalUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(followings)
}

// GetUserPosts handles GET /api/users/:username/posts
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	p := parsePagination(c, 50)

	posts, err := s.postService.ListPostsByUser(c.UserContext(), c.Params("username"), s.optionalUserID(c), p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// GetUserReplies handles GET /api/users/:username/replies
func (s *Server) GetUserReplies(c *fiber.Ctx) error {
	replies, err := s.replyService.ListByUser(c.UserContext(), c.Params("username"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(replies)
}

// GetUserLikedUsers handles GET /api/users/:username/liked-users
func (s *Server) GetUserLikedUsers(c *fiber.Ctx) error {
	likers, err := s.engagementService.GetUserLikers(c.UserContext(), c.Params("username"), s.optionalUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(likers)
}
