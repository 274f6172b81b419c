package event

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/takimet-io/takimet/internal/errdef"
	"github.com/takimet-io/takimet/internal/handler"
	"github.com/takimet-io/takimet/internal/middleware"
	"github.com/takimet-io/takimet/pkg/model"
)

func NewHandler(eventService eventService) Handler {
	return Handler{eventService: eventService}
}

type Handler struct {
	eventService eventService
}

type eventService interface {
	Create(ctx context.Context, companyId uint, fields Fields, categoryNames []string, image *Upload) (*model.Event, error)
	Update(ctx context.Context, id, companyId uint, fields Fields, categoryNames []string, image *Upload) (*model.Event, error)
	Delete(ctx context.Context, id, companyId uint) error
	FindById(ctx context.Context, id uint) (*model.Event, error)
	List(ctx context.Context) ([]*model.Event, error)
	ListByCompany(ctx context.Context, companyId uint) ([]*model.Event, error)
	ListPopular(ctx context.Context, limit, minRSVPs int) ([]*model.Event, error)
}

// SaveEventRequest is shared by create and update. It binds both JSON bodies
// and multipart forms; images only arrive via multipart. Categories come in
// as a comma separated list of category names.
type SaveEventRequest struct {
	Title       string    `json:"title" form:"title" binding:"required"`
	Description string    `json:"description" form:"description" binding:"required"`
	Location    string    `json:"location" form:"location" binding:"required"`
	StartTime   time.Time `json:"startTime" form:"startTime" time_format:"2006-01-02T15:04:05Z07:00" binding:"required,saneYear"`
	EndTime     time.Time `json:"endTime" form:"endTime" time_format:"2006-01-02T15:04:05Z07:00" binding:"required,saneYear,gtfield=StartTime"`
	Capacity    *int      `json:"capacity" form:"capacity" binding:"omitempty,gt=0"`
	Categories  string    `json:"categories" form:"categories"`
}

func (r SaveEventRequest) fields() Fields {
	return Fields{
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Capacity:    r.Capacity,
	}
}

func (r SaveEventRequest) categoryNames() []string {
	var names []string
	for _, name := range strings.Split(r.Categories, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Create event
func (h Handler) Create(c *gin.Context) {
	// swagger:route POST /company-events createEvent
	//
	// Create event
	//
	// Publish a new event. Only verified companies can publish.
	//
	// responses:
	//   201: Event
	//   400: Error
	//   401: Error
	//   403: Error
	//   415: Error
	var request SaveEventRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	company, ok := middleware.GetCompanyFromContext(c)
	if !ok {
		_ = c.Error(errdef.NewForbidden("no company attached to this request"))
		return
	}

	image, closeImage, err := imageUpload(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	defer closeImage()

	event, err := h.eventService.Create(c.Request.Context(), company.ID, request.fields(), request.categoryNames(), image)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "event": event})
}

// Update event
func (h Handler) Update(c *gin.Context) {
	// swagger:route PUT /company-events/{id} updateEvent
	//
	// Update event
	//
	// Update an event owned by the calling company. Category associations are
	// replaced wholesale; the image is kept unless a new one is uploaded.
	//
	// responses:
	//   200: Event
	//   400: Error
	//   401: Error
	//   403: Error
	//   404: Error
	//   415: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	var request SaveEventRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	company, ok := middleware.GetCompanyFromContext(c)
	if !ok {
		_ = c.Error(errdef.NewForbidden("no company attached to this request"))
		return
	}

	image, closeImage, err := imageUpload(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	defer closeImage()

	event, err := h.eventService.Update(c.Request.Context(), id, company.ID, request.fields(), request.categoryNames(), image)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "event": event})
}

// Delete event
func (h Handler) Delete(c *gin.Context) {
	// swagger:route DELETE /company-events/{id} deleteEvent
	//
	// Delete event
	//
	// Delete an event owned by the calling company. Events with RSVPs or
	// comments can't be deleted.
	//
	// responses:
	//   200: Success
	//   400: Error
	//   401: Error
	//   403: Error
	//   404: Error
	//   409: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	company, ok := middleware.GetCompanyFromContext(c)
	if !ok {
		_ = c.Error(errdef.NewForbidden("no company attached to this request"))
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), id, company.ID); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "event deleted"})
}

// MyEvents event
func (h Handler) MyEvents(c *gin.Context) {
	// swagger:route GET /company-events/my-events myEvents
	//
	// Events of the calling company
	//
	// responses:
	//   200: Events
	//   401: Error
	//   403: Error
	company, ok := middleware.GetCompanyFromContext(c)
	if !ok {
		_ = c.Error(errdef.NewForbidden("no company attached to this request"))
		return
	}

	events, err := h.eventService.ListByCompany(c.Request.Context(), company.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "events": events})
}

// List events
func (h Handler) List(c *gin.Context) {
	// swagger:route GET /events listEvents
	//
	// List events
	//
	// responses:
	//   200: Events
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "events": events})
}

// ListPopular events
func (h Handler) ListPopular(c *gin.Context) {
	// swagger:route GET /events/popular listPopularEvents
	//
	// List popular events
	//
	// Top events ranked by RSVP count.
	//
	// responses:
	//   200: Events
	events, err := h.eventService.ListPopular(c.Request.Context(), 10, 1)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "events": events})
}

// FindById event
func (h Handler) FindById(c *gin.Context) {
	// swagger:route GET /events/{id} findEventById
	//
	// Find event
	//
	// responses:
	//   200: Event
	//   400: Error
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	event, err := h.eventService.FindById(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "event": event})
}

// imageUpload extracts the optional image file from a multipart request. The
// returned close function is safe to call even when no file was sent.
func imageUpload(c *gin.Context) (*Upload, func(), error) {
	noop := func() {}

	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		return nil, noop, nil
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, noop, nil
		}
		return nil, noop, errdef.NewBadRequest("failed to read image file: %v", err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, noop, errdef.NewBadRequest("failed to open image file: %v", err)
	}

	upload := &Upload{
		Body:        file,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
	}
	return upload, func() { _ = file.Close() }, nil
}
