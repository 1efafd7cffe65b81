package server

import (
	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetReplies handles GET /api/posts/:postID/replies
func (s *Server) GetReplies(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postID")
	if err != nil {
		return nil
	}

	replies, err := s.replyService.ListByPost(c.UserContext(), postID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(replies)
}

// CreateReply handles POST /api/posts/:postID/replies
func (s *Server) CreateReply(c *fiber.Ctx) error {
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

	reply, err := s.replyService.CreateReply(c.UserContext(), service.CreateReplyInput{
		UserID: viewerID(c),
		PostID: postID,
		Body:   req.Body,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(reply)
}

// UpdateReply handles PATCH /api/posts/:postID/replies/:replyID
func (s *Server) UpdateReply(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postID")
	if err != nil {
		return nil
	}
	replyID, err := s.parseID(c, "replyID")
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

	reply, err := s.replyService.UpdateReply(c.UserContext(), service.UpdateReplyInput{
		UserID:  viewerID(c),
		PostID:  postID,
		ReplyID: replyID,
		Body:    req.Body,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reply)
}

// DeleteReply handles DELETE /api/posts/:postID/replies/:replyID
func (s *Server) DeleteReply(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postID")
	if err != nil {
		return nil
	}
	replyID, err := s.parseID(c, "replyID")
	if err != nil {
		return nil
	}

	if err := s.replyService.DeleteReply(c.UserContext(), postID, replyID, viewerID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
