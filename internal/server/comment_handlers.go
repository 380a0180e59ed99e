package server

import (
	"blogcms/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createCommentRequest struct {
	Content  string `json:"content"`
	PostID   uint   `json:"post_id"`
	ParentID *uint  `json:"parent_id"`
}

type updateCommentRequest struct {
	Content    *string `json:"content"`
	IsApproved *bool   `json:"is_approved"`
}

// CreateComment handles POST /comments?author_id=
// @Summary Create comment
// @Description Comment on a post, optionally replying to another comment on the same post.
// @Tags comments
// @Accept json
// @Produce json
// @Param author_id query int true "Author user ID"
// @Param request body object{content=string,post_id=int,parent_id=int} true "Comment"
// @Success 201 {object} models.Comment
// @Failure 400 {object} models.ErrorResponse
// @Router /comments [post]
func (s *Server) CreateComment(c *fiber.Ctx) error {
	authorID, err := parseQueryID(c, "author_id")
	if err != nil {
		return nil
	}
	var req createCommentRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	comment, err := s.commentService.CreateComment(c.UserContext(), authorID, service.CreateCommentInput{
		Content:  req.Content,
		PostID:   req.PostID,
		ParentID: req.ParentID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// ListComments handles GET /comments
// @Summary List comments
// @Tags comments
// @Produce json
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Maximum rows" default(100)
// @Success 200 {array} models.Comment
// @Router /comments [get]
func (s *Server) ListComments(c *fiber.Ctx) error {
	page := parsePagination(c)
	comments, err := s.commentService.ListComments(c.UserContext(), page.Skip, page.Limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(comments)
}

// ListCommentsByPost handles GET /comments/post/:post_id
// @Summary List comments on a post
// @Tags comments
// @Produce json
// @Param post_id path int true "Post ID"
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Maximum rows" default(100)
// @Success 200 {array} models.Comment
// @Router /comments/post/{post_id} [get]
func (s *Server) ListCommentsByPost(c *fiber.Ctx) error {
	postID, err := parseID(c, "post_id")
	if err != nil {
		return nil
	}
	page := parsePagination(c)
	comments, err := s.commentService.ListByPost(c.UserContext(), postID, page.Skip, page.Limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(comments)
}

// ListReplies handles GET /comments/:id/replies
// @Summary List replies
// @Tags comments
// @Produce json
// @Param id path int true "Parent comment ID"
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Maximum rows" default(100)
// @Success 200 {array} models.Comment
// @Failure 404 {object} models.ErrorResponse
// @Router /comments/{id}/replies [get]
func (s *Server) ListReplies(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePagination(c)
	replies, err := s.commentService.ListReplies(c.UserContext(), id, page.Skip, page.Limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(replies)
}

// GetComment handles GET /comments/:id
// @Summary Get comment
// @Tags comments
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} models.Comment
// @Failure 404 {object} models.ErrorResponse
// @Router /comments/{id} [get]
func (s *Server) GetComment(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	comment, err := s.commentService.GetComment(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(comment)
}

// UpdateComment handles PUT /comments/:id
// @Summary Update comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Comment ID"
// @Param request body object{content=string,is_approved=bool} true "Fields to change"
// @Success 200 {object} models.Comment
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /comments/{id} [put]
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	var req updateCommentRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	comment, err := s.commentService.UpdateComment(c.UserContext(), id, service.UpdateCommentInput{
		Content:    req.Content,
		IsApproved: req.IsApproved,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(comment)
}

// DeleteComment handles DELETE /comments/:id
// @Summary Delete comment
// @Description Delete a comment and its replies.
// @Tags comments
// @Param id path int true "Comment ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /comments/{id} [delete]
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	if _, err := s.commentService.DeleteComment(c.UserContext(), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
