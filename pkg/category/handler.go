package category

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/takimet-io/takimet/internal/errdef"
	"github.com/takimet-io/takimet/pkg/model"
)

func NewHandler(categoryService categoryService) Handler {
	return Handler{categoryService: categoryService}
}

type Handler struct {
	categoryService categoryService
}

type categoryService interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	ListEventsForCategories(ctx context.Context, categoryIds []uint) ([]*EventWithCategories, error)
	ListAllEventsWithCategories(ctx context.Context) ([]*EventWithCategories, error)
}

// ListCategories category
func (h Handler) ListCategories(c *gin.Context) {
	// swagger:route GET /event-categories/categories listCategories
	//
	// List categories
	//
	// responses:
	//   200: Categories
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "categories": categories})
}

// ListEvents category
func (h Handler) ListEvents(c *gin.Context) {
	// swagger:route GET /event-categories/events listEventsByCategories
	//
	// List events by categories
	//
	// Without the ids parameter every event is returned. With ids (comma
	// separated category ids) the union of events tagged with any of them is
	// returned. Events are ordered by start time and annotated with their
	// category names.
	//
	// responses:
	//   200: EventsWithCategories
	//   400: Error
	idsParameter := c.Query("ids")
	if idsParameter == "" {
		events, err := h.categoryService.ListAllEventsWithCategories(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "events": events})
		return
	}

	var ids []uint
	for _, part := range strings.Split(idsParameter, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			_ = c.Error(errdef.NewBadRequest("invalid category id %q", part))
			return
		}
		ids = append(ids, uint(id))
	}

	events, err := h.categoryService.ListEventsForCategories(c.Request.Context(), ids)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "events": events})
}
