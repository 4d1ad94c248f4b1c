package handlers

import (
	"net/http"

	"crudboard_backend/internal/middleware"
	"crudboard_backend/internal/services"
	"crudboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	*BaseHandler
	commentService services.CommentService
}

func NewCommentHandler(base *BaseHandler, commentService services.CommentService) *CommentHandler {
	return &CommentHandler{
		BaseHandler:    base,
		commentService: commentService,
	}
}

// CreateComment godoc
// @Summary      Add a comment to a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        postId   path      string                    true  "Post ID"
// @Param        request  body      dto.CreateCommentRequest  true  "Comment data"
// @Success      201      {object}  models.Comment
// @Failure      400      {object}  apperrors.ErrorResponse
// @Failure      401      {object}  map[string]string
// @Failure      404      {object}  apperrors.ErrorResponse
// @Router       /api/posts/{postId}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	comment, err := h.commentService.CreateComment(c.Param("id"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        postId     path      string  true  "Post ID"
// @Param        commentId  path      string  true  "Comment ID"
// @Success      200        {object}  map[string]string
// @Failure      403        {object}  apperrors.ErrorResponse
// @Failure      404        {object}  apperrors.ErrorResponse
// @Router       /api/posts/{postId}/comments/{commentId} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.commentService.DeleteComment(c.Param("id"), c.Param("commentId"), userID, middleware.GetRole(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}

// ListComments godoc
// @Summary      List comments for a post
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        postId  path      string  true  "Post ID"
// @Success      200     {array}   models.Comment
// @Failure      404     {object}  apperrors.ErrorResponse
// @Router       /api/posts/{postId}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	limit, offset := ParsePagination(c)

	comments, err := h.commentService.ListComments(c.Param("id"), limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}
