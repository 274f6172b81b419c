package comment

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/takimet-io/takimet/internal/errdef"
	"github.com/takimet-io/takimet/internal/handler"
	"github.com/takimet-io/takimet/pkg/model"
)

func NewHandler(commentService commentService) Handler {
	return Handler{commentService: commentService}
}

type Handler struct {
	commentService commentService
}

type commentService interface {
	Create(ctx context.Context, eventId, userId uint, content string) (*model.Comment, error)
	ListForEvent(ctx context.Context, eventId uint) ([]*model.Comment, error)
	Delete(ctx context.Context, id, userId uint) (bool, error)
}

type CreateRequest struct {
	EventID uint   `json:"eventId" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// Create comment
func (h Handler) Create(c *gin.Context) {
	// swagger:route POST /comments createComment
	//
	// Comment on an event
	//
	// responses:
	//   201: Comment
	//   400: Error
	//   401: Error
	//   415: Error
	var request CreateRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), request.EventID, user.ID, request.Content)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "comment": comment})
}

// ListForEvent comment
func (h Handler) ListForEvent(c *gin.Context) {
	// swagger:route GET /comments/{eventId} listCommentsForEvent
	//
	// Comments of an event
	//
	// Newest first.
	//
	// responses:
	//   200: Comments
	//   400: Error
	eventId, ok := handler.GetPathParameter(c, "eventId")
	if !ok {
		return
	}

	comments, err := h.commentService.ListForEvent(c.Request.Context(), eventId)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "comments": comments})
}

// Delete comment
func (h Handler) Delete(c *gin.Context) {
	// swagger:route DELETE /comments/{id} deleteComment
	//
	// Delete comment
	//
	// Only the author can delete a comment.
	//
	// responses:
	//   200: Success
	//   400: Error
	//   401: Error
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	deleted, err := h.commentService.Delete(c.Request.Context(), id, user.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !deleted {
		_ = c.Error(errdef.NewNotFound("no comment with id %d owned by you", id))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "comment deleted"})
}
