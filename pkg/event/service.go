package event

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/takimet-io/takimet/internal/errdef"
	"github.com/takimet-io/takimet/internal/handler"
	"github.com/takimet-io/takimet/pkg/model"
)

func NewService(logger *slog.Logger, repository eventRepository, objectStore objectStore) *Service {
	return &Service{
		logger:      logger,
		repository:  repository,
		objectStore: objectStore,
	}
}

type Service struct {
	logger      *slog.Logger
	repository  eventRepository
	objectStore objectStore
}

type eventRepository interface {
	create(ctx context.Context, e *model.Event) error
	save(ctx context.Context, e *model.Event) error
	findById(ctx context.Context, id uint) (*model.Event, error)
	findAll(ctx context.Context) ([]*model.Event, error)
	findByCompany(ctx context.Context, companyId uint) ([]*model.Event, error)
	findPopular(ctx context.Context, limit, minRSVPs int) ([]*model.Event, error)
	replaceCategories(ctx context.Context, e *model.Event, categories []model.Category) error
	findCategoriesByNames(ctx context.Context, names []string) ([]model.Category, error)
	delete(ctx context.Context, id uint) error
}

type objectStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

// Upload carries an image received as part of a multipart request.
type Upload struct {
	Body        io.Reader
	Size        int64
	ContentType string
}

type Fields struct {
	Title       string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	Capacity    *int
}

func (s Service) Create(ctx context.Context, companyId uint, fields Fields, categoryNames []string, image *Upload) (*model.Event, error) {
	err := validateTimes(fields.StartTime, fields.EndTime)
	if err != nil {
		return nil, err
	}

	event := &model.Event{
		Title:       fields.Title,
		Slug:        slug.Make(fields.Title),
		Description: fields.Description,
		Location:    fields.Location,
		StartTime:   fields.StartTime,
		EndTime:     fields.EndTime,
		Capacity:    fields.Capacity,
		CompanyID:   companyId,
	}

	if image != nil {
		key := fmt.Sprintf("events/%s", uuid.NewString())
		err := s.objectStore.Put(ctx, key, image.Body, image.Size, image.ContentType)
		if err != nil {
			return nil, err
		}
		event.ImageKey = key
	}

	err = s.repository.create(ctx, event)
	if err != nil {
		return nil, err
	}

	s.linkCategories(ctx, event, categoryNames)

	created, err := s.repository.findById(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	s.decorate(created)
	return created, nil
}

func (s Service) Update(ctx context.Context, id, companyId uint, fields Fields, categoryNames []string, image *Upload) (*model.Event, error) {
	event, err := s.repository.findById(ctx, id)
	if err != nil {
		return nil, err
	}

	if event.CompanyID != companyId {
		return nil, errdef.NewForbidden("event %d doesn't belong to company %d", id, companyId)
	}

	err = validateTimes(fields.StartTime, fields.EndTime)
	if err != nil {
		return nil, err
	}

	event.Title = fields.Title
	event.Slug = slug.Make(fields.Title)
	event.Description = fields.Description
	event.Location = fields.Location
	event.StartTime = fields.StartTime
	event.EndTime = fields.EndTime
	event.Capacity = fields.Capacity

	previousKey := ""
	if image != nil {
		key := fmt.Sprintf("events/%s", uuid.NewString())
		err := s.objectStore.Put(ctx, key, image.Body, image.Size, image.ContentType)
		if err != nil {
			return nil, err
		}
		previousKey = event.ImageKey
		event.ImageKey = key
	}

	err = s.repository.save(ctx, event)
	if err != nil {
		return nil, err
	}

	err = s.replaceCategories(ctx, event, categoryNames)
	if err != nil {
		return nil, err
	}

	if previousKey != "" {
		if err := s.objectStore.Delete(ctx, previousKey); err != nil {
			s.logger.WarnContext(ctx, "Failed to delete previous event image", "key", previousKey, "error", err)
		}
	}

	updated, err := s.repository.findById(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	s.decorate(updated)
	return updated, nil
}

func (s Service) Delete(ctx context.Context, id, companyId uint) error {
	event, err := s.repository.findById(ctx, id)
	if err != nil {
		return err
	}

	if event.CompanyID != companyId {
		return errdef.NewForbidden("event %d doesn't belong to company %d", id, companyId)
	}

	err = s.repository.delete(ctx, id)
	if err != nil {
		return err
	}

	if event.ImageKey != "" {
		if err := s.objectStore.Delete(ctx, event.ImageKey); err != nil {
			s.logger.WarnContext(ctx, "Failed to delete event image", "key", event.ImageKey, "error", err)
		}
	}

	return nil
}

func (s Service) FindById(ctx context.Context, id uint) (*model.Event, error) {
	event, err := s.repository.findById(ctx, id)
	if err != nil {
		return nil, err
	}
	s.decorate(event)
	return event, nil
}

func (s Service) List(ctx context.Context) ([]*model.Event, error) {
	events, err := s.repository.findAll(ctx)
	if err != nil {
		return nil, err
	}
	s.decorateAll(events)
	return events, nil
}

func (s Service) ListByCompany(ctx context.Context, companyId uint) ([]*model.Event, error) {
	events, err := s.repository.findByCompany(ctx, companyId)
	if err != nil {
		return nil, err
	}
	s.decorateAll(events)
	return events, nil
}

func (s Service) ListPopular(ctx context.Context, limit, minRSVPs int) ([]*model.Event, error) {
	if limit < 1 {
		limit = 10
	}
	if minRSVPs < 1 {
		minRSVPs = 1
	}

	events, err := s.repository.findPopular(ctx, limit, minRSVPs)
	if err != nil {
		return nil, err
	}
	s.decorateAll(events)
	return events, nil
}

// linkCategories attaches the named categories to a freshly created event.
// Unknown names and association failures are logged and swallowed so a
// tagging hiccup never loses the event itself.
func (s Service) linkCategories(ctx context.Context, event *model.Event, names []string) {
	if len(names) == 0 {
		return
	}

	categories, err := s.repository.findCategoriesByNames(ctx, names)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to look up categories for event", "event", event.ID, "names", names, "error", err)
		return
	}
	if len(categories) < len(names) {
		s.logger.WarnContext(ctx, "Some categories don't exist and were skipped", "event", event.ID, "requested", names)
	}
	if len(categories) == 0 {
		return
	}

	err = s.repository.replaceCategories(ctx, event, categories)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to link categories to event", "event", event.ID, "error", err)
	}
}

// replaceCategories swaps the category associations wholesale on update. An
// empty name list clears them.
func (s Service) replaceCategories(ctx context.Context, event *model.Event, names []string) error {
	var categories []model.Category
	if len(names) > 0 {
		found, err := s.repository.findCategoriesByNames(ctx, names)
		if err != nil {
			return err
		}
		categories = found
	}
	return s.repository.replaceCategories(ctx, event, categories)
}

func validateTimes(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return errdef.NewBadRequest("start and end time are required")
	}
	if start.Year() < handler.MinEventYear || start.Year() > handler.MaxEventYear {
		return errdef.NewBadRequest("start time must fall between years %d and %d", handler.MinEventYear, handler.MaxEventYear)
	}
	if end.Year() < handler.MinEventYear || end.Year() > handler.MaxEventYear {
		return errdef.NewBadRequest("end time must fall between years %d and %d", handler.MinEventYear, handler.MaxEventYear)
	}
	if !end.After(start) {
		return errdef.NewBadRequest("end time must be after start time")
	}
	return nil
}

func (s Service) decorate(event *model.Event) {
	event.ImageURL = s.objectStore.PublicURL(event.ImageKey)
	if event.Company != nil {
		event.Company.LogoURL = s.objectStore.PublicURL(event.Company.LogoKey)
	}
}

func (s Service) decorateAll(events []*model.Event) {
	for _, event := range events {
		s.decorate(event)
	}
}
