package server

import (
	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Body string `json:"body"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		UserID: viewerID(c),
		Body:   req.Body,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPosts handles GET /api/posts
func (s *Server) GetPosts(c *fiber.Ctx) error {
	p := parsePagination(c, 50)

	posts, err := s.postService.ListPosts(c.UserContext(), s.optionalUserID(c), p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:postID
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postID")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.UserContext(), postID, s.optionalUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// UpdatePost handles PATCH /api/posts/:postID
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postID")
	if err != nil {
		return nil
	}

	var req struct {
		Body string `json:"body"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.UserContext(), service.UpdatePostInput{
		UserID: viewerID(c),
		PostID: postID,
		Body:   req.Body,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:postID
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postID")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.UserContext(), postID, viewerID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ToggleLike handles POST /api/posts/:postID/likes
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postID")
	if err != nil {
		return nil
	}

	post, err := s.postService.ToggleLike(c.UserContext(), postID, viewerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// GetPostLikedUsers handles GET /api/posts/:postID/liked-users
func (s *Server) GetPostLikedUsers(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postID")
	if err != nil {
		return nil
	}

	likers, err := s.engagementService.GetPostLikers(c.UserContext(), postID, s.optionalUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(likers)
}
