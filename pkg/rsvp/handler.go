package rsvp

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/takimet-io/takimet/internal/handler"
	"github.com/takimet-io/takimet/pkg/model"
)

func NewHandler(rsvpService rsvpService) Handler {
	return Handler{rsvpService: rsvpService}
}

type Handler struct {
	rsvpService rsvpService
}

type rsvpService interface {
	Create(ctx context.Context, userId, eventId uint, status model.RSVPStatus) (*model.RSVP, error)
	SetStatus(ctx context.Context, userId, eventId uint, status model.RSVPStatus) (*model.RSVP, error)
	Remove(ctx context.Context, userId, eventId uint) error
	ListForUser(ctx context.Context, userId uint) ([]*model.RSVP, error)
	ListForEvent(ctx context.Context, eventId uint) ([]*model.RSVP, error)
	ListAll(ctx context.Context, user *model.User) ([]*model.RSVP, error)
}

type CreateRequest struct {
	EventID uint             `json:"eventId" binding:"required"`
	Status  model.RSVPStatus `json:"status" binding:"omitempty,oneOf=attending interested not_attending"`
}

// Create rsvp
func (h Handler) Create(c *gin.Context) {
	// swagger:route POST /rsvps createRSVP
	//
	// RSVP to an event
	//
	// Records attendance intent, default attending. A live RSVP for the same
	// event is a conflict; an earlier not_attending row is reactivated.
	//
	// responses:
	//   201: RSVP
	//   400: Error
	//   401: Error
	//   404: Error
	//   409: Error
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

	status := request.Status
	if status == "" {
		status = model.RSVPAttending
	}

	rsvp, err := h.rsvpService.Create(c.Request.Context(), user.ID, request.EventID, status)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "rsvp": rsvp})
}

type SetStatusRequest struct {
	Status model.RSVPStatus `json:"status" binding:"required,oneOf=attending interested not_attending"`
}

// SetStatus rsvp
func (h Handler) SetStatus(c *gin.Context) {
	// swagger:route PUT /rsvps/event/{eventId} setRSVPStatus
	//
	// Update RSVP status
	//
	// Writes the status of the caller's RSVP for the event. Opting out writes
	// not_attending and keeps the row.
	//
	// responses:
	//   200: RSVP
	//   400: Error
	//   401: Error
	//   404: Error
	//   415: Error
	eventId, ok := handler.GetPathParameter(c, "eventId")
	if !ok {
		return
	}

	var request SetStatusRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	rsvp, err := h.rsvpService.SetStatus(c.Request.Context(), user.ID, eventId, request.Status)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "rsvp": rsvp})
}

// Remove rsvp
func (h Handler) Remove(c *gin.Context) {
	// swagger:route DELETE /rsvps/event/{eventId} removeRSVP
	//
	// Remove RSVP
	//
	// Hard-deletes the caller's RSVP row for the event.
	//
	// responses:
	//   200: Success
	//   400: Error
	//   401: Error
	//   404: Error
	eventId, ok := handler.GetPathParameter(c, "eventId")
	if !ok {
		return
	}

	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.rsvpService.Remove(c.Request.Context(), user.ID, eventId); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "RSVP removed"})
}

// Mine rsvp
func (h Handler) Mine(c *gin.Context) {
	// swagger:route GET /rsvps/mine myRSVPs
	//
	// RSVPs of the signed in user
	//
	// responses:
	//   200: RSVPs
	//   401: Error
	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	rsvps, err := h.rsvpService.ListForUser(c.Request.Context(), user.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "rsvps": rsvps})
}

// ListForEvent rsvp
func (h Handler) ListForEvent(c *gin.Context) {
	// swagger:route GET /rsvps/event/{eventId} listRSVPsForEvent
	//
	// RSVPs of an event
	//
	// responses:
	//   200: RSVPs
	//   400: Error
	eventId, ok := handler.GetPathParameter(c, "eventId")
	if !ok {
		return
	}

	rsvps, err := h.rsvpService.ListForEvent(c.Request.Context(), eventId)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "rsvps": rsvps})
}

// List rsvp
func (h Handler) List(c *gin.Context) {
	// swagger:route GET /rsvps listRSVPs
	//
	// List RSVPs
	//
	// Role scoped: users get their own rows, companies the rows of their
	// events, administrators everything.
	//
	// responses:
	//   200: RSVPs
	//   401: Error
	//   403: Error
	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	rsvps, err := h.rsvpService.ListAll(c.Request.Context(), user)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "rsvps": rsvps})
}
