package category

import (
	"context"
	"sort"
	"strings"

	"github.com/takimet-io/takimet/pkg/model"
)

func NewService(repository categoryRepository) *Service {
	return &Service{repository: repository}
}

type Service struct {
	repository categoryRepository
}

type categoryRepository interface {
	seed(ctx context.Context) error
	findAll(ctx context.Context) ([]model.Category, error)
	findAllEvents(ctx context.Context) ([]*model.Event, error)
	findEventsForCategories(ctx context.Context, categoryIds []uint) ([]*model.Event, error)
}

// EventWithCategories is the directory view of an event: the event plus its
// category names joined into a single comma separated string.
// swagger:model
type EventWithCategories struct {
	*model.Event
	CategoryNames string `json:"categoryNames"`
}

// Seed creates the fixed category taxonomy. Idempotent, runs at boot.
func (s Service) Seed(ctx context.Context) error {
	return s.repository.seed(ctx)
}

func (s Service) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.repository.findAll(ctx)
}

// ListEventsForCategories returns the union of events tagged with any of the
// given categories, ordered by start time.
func (s Service) ListEventsForCategories(ctx context.Context, categoryIds []uint) ([]*EventWithCategories, error) {
	if len(categoryIds) == 0 {
		return []*EventWithCategories{}, nil
	}

	events, err := s.repository.findEventsForCategories(ctx, categoryIds)
	if err != nil {
		return nil, err
	}
	return annotate(events), nil
}

func (s Service) ListAllEventsWithCategories(ctx context.Context) ([]*EventWithCategories, error) {
	events, err := s.repository.findAllEvents(ctx)
	if err != nil {
		return nil, err
	}
	return annotate(events), nil
}

func annotate(events []*model.Event) []*EventWithCategories {
	annotated := make([]*EventWithCategories, len(events))
	for i, event := range events {
		names := make([]string, len(event.Categories))
		for j, category := range event.Categories {
			names[j] = category.Name
		}
		sort.Strings(names)

		annotated[i] = &EventWithCategories{
			Event:         event,
			CategoryNames: strings.Join(names, ", "),
		}
	}
	return annotated
}
