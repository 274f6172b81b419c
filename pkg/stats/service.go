package stats

import (
	"context"
	"time"

	"github.com/takimet-io/takimet/pkg/model"
)

func NewService(repository statsRepository) *Service {
	return &Service{repository: repository}
}

type Service struct {
	repository statsRepository
}

type statsRepository interface {
	findAllEvents(ctx context.Context) ([]*model.Event, error)
	findAllRSVPs(ctx context.Context) ([]*model.RSVP, error)
}

// Dashboard fetches events and RSVPs fresh and aggregates them. Nothing is
// cached or persisted.
func (s Service) Dashboard(ctx context.Context) (Dashboard, error) {
	events, err := s.repository.findAllEvents(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	rsvps, err := s.repository.findAllRSVPs(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	return Aggregate(events, rsvps, time.Now()), nil
}
