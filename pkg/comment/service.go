package comment

import (
	"context"
	"strings"

	"github.com/takimet-io/takimet/internal/errdef"
	"github.com/takimet-io/takimet/pkg/model"
)

func NewService(repository commentRepository, eventService eventService) *Service {
	return &Service{
		repository:   repository,
		eventService: eventService,
	}
}

type Service struct {
	repository   commentRepository
	eventService eventService
}

type commentRepository interface {
	create(ctx context.Context, c *model.Comment) error
	findById(ctx context.Context, id uint) (*model.Comment, error)
	findForEvent(ctx context.Context, eventId uint) ([]*model.Comment, error)
	deleteOwned(ctx context.Context, id, userId uint) (bool, error)
}

type eventService interface {
	FindById(ctx context.Context, id uint) (*model.Event, error)
}

func (s Service) Create(ctx context.Context, eventId, userId uint, content string) (*model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errdef.NewBadRequest("comment content can't be blank")
	}

	_, err := s.eventService.FindById(ctx, eventId)
	if err != nil {
		if errdef.IsNotFound(err) {
			return nil, errdef.NewBadRequest("event %d doesn't exist", eventId)
		}
		return nil, err
	}

	comment := &model.Comment{
		EventID: eventId,
		UserID:  userId,
		Content: content,
	}
	err = s.repository.create(ctx, comment)
	if err != nil {
		return nil, err
	}

	// reload to join the author name for the response
	return s.repository.findById(ctx, comment.ID)
}

func (s Service) ListForEvent(ctx context.Context, eventId uint) ([]*model.Comment, error) {
	return s.repository.findForEvent(ctx, eventId)
}

// Delete removes a comment when the caller wrote it. It reports whether a
// row was removed; a false result doesn't reveal whether the comment was
// missing or owned by someone else.
func (s Service) Delete(ctx context.Context, id, userId uint) (bool, error) {
	return s.repository.deleteOwned(ctx, id, userId)
}
