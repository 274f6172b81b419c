package rsvp

import (
	"context"

	"github.com/takimet-io/takimet/internal/errdef"
	"github.com/takimet-io/takimet/pkg/model"
)

func NewService(repository rsvpRepository, eventService eventService, companyService companyService) *Service {
	return &Service{
		repository:     repository,
		eventService:   eventService,
		companyService: companyService,
	}
}

type Service struct {
	repository     rsvpRepository
	eventService   eventService
	companyService companyService
}

type rsvpRepository interface {
	create(ctx context.Context, rsvp *model.RSVP) error
	save(ctx context.Context, rsvp *model.RSVP) error
	findByUserAndEvent(ctx context.Context, userId, eventId uint) (*model.RSVP, error)
	findForUser(ctx context.Context, userId uint) ([]*model.RSVP, error)
	findForEvent(ctx context.Context, eventId uint) ([]*model.RSVP, error)
	findForCompany(ctx context.Context, companyId uint) ([]*model.RSVP, error)
	findAll(ctx context.Context) ([]*model.RSVP, error)
	delete(ctx context.Context, id uint) error
}

type eventService interface {
	FindById(ctx context.Context, id uint) (*model.Event, error)
}

type companyService interface {
	FindByUserID(ctx context.Context, userId uint) (*model.Company, error)
}

// Create records an attendance intent. At most one row exists per
// (user, event): a live RSVP blocks a second one, while a not_attending row
// is reactivated in place instead of inserting a duplicate.
func (s Service) Create(ctx context.Context, userId, eventId uint, status model.RSVPStatus) (*model.RSVP, error) {
	err := validateStatus(status)
	if err != nil {
		return nil, err
	}

	_, err = s.eventService.FindById(ctx, eventId)
	if err != nil {
		return nil, err
	}

	existing, err := s.repository.findByUserAndEvent(ctx, userId, eventId)
	if err != nil && !errdef.IsNotFound(err) {
		return nil, err
	}

	if existing != nil {
		if existing.Live() {
			return nil, errdef.NewConflict("user %d already has an RSVP for event %d", userId, eventId)
		}
		existing.Status = status
		err = s.repository.save(ctx, existing)
		if err != nil {
			return nil, err
		}
		return existing, nil
	}

	rsvp := &model.RSVP{
		UserID:  userId,
		EventID: eventId,
		Status:  status,
	}
	err = s.repository.create(ctx, rsvp)
	if err != nil {
		return nil, err
	}
	return rsvp, nil
}

// SetStatus writes the status of an existing RSVP. Opting out is a status
// write to not_attending, the row is kept so the ledger preserves history.
func (s Service) SetStatus(ctx context.Context, userId, eventId uint, status model.RSVPStatus) (*model.RSVP, error) {
	err := validateStatus(status)
	if err != nil {
		return nil, err
	}

	rsvp, err := s.repository.findByUserAndEvent(ctx, userId, eventId)
	if err != nil {
		return nil, err
	}

	rsvp.Status = status
	err = s.repository.save(ctx, rsvp)
	if err != nil {
		return nil, err
	}
	return rsvp, nil
}

// Remove hard-deletes the caller's RSVP for an event. Removal is keyed by
// the authenticated identity, so only the row's own user can reach it.
func (s Service) Remove(ctx context.Context, userId, eventId uint) error {
	rsvp, err := s.repository.findByUserAndEvent(ctx, userId, eventId)
	if err != nil {
		return err
	}

	return s.repository.delete(ctx, rsvp.ID)
}

func (s Service) ListForUser(ctx context.Context, userId uint) ([]*model.RSVP, error) {
	return s.repository.findForUser(ctx, userId)
}

func (s Service) ListForEvent(ctx context.Context, eventId uint) ([]*model.RSVP, error) {
	return s.repository.findForEvent(ctx, eventId)
}

// ListAll scopes the ledger by role: users see their own rows, companies see
// the rows of their events, administrators see everything.
func (s Service) ListAll(ctx context.Context, user *model.User) ([]*model.RSVP, error) {
	switch user.Role {
	case model.RoleAdministrator:
		return s.repository.findAll(ctx)
	case model.RoleCompany:
		company, err := s.companyService.FindByUserID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		return s.repository.findForCompany(ctx, company.ID)
	case model.RoleUser:
		return s.repository.findForUser(ctx, user.ID)
	default:
		return nil, errdef.NewForbidden("unknown role %q", user.Role)
	}
}

func validateStatus(status model.RSVPStatus) error {
	switch status {
	case model.RSVPAttending, model.RSVPInterested, model.RSVPNotAttending:
		return nil
	default:
		return errdef.NewBadRequest("unknown RSVP status %q", status)
	}
}
