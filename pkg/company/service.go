package company

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/takimet-io/takimet/internal/errdef"
	"github.com/takimet-io/takimet/pkg/model"
)

func NewService(logger *slog.Logger, repository companyRepository, objectStore objectStore, mailer mailer) *Service {
	return &Service{
		logger:      logger,
		repository:  repository,
		objectStore: objectStore,
		mailer:      mailer,
	}
}

type Service struct {
	logger      *slog.Logger
	repository  companyRepository
	objectStore objectStore
	mailer      mailer
}

type companyRepository interface {
	create(ctx context.Context, c *model.Company) error
	save(ctx context.Context, c *model.Company) error
	findById(ctx context.Context, id uint) (*model.Company, error)
	findByUserId(ctx context.Context, userId uint) (*model.Company, error)
	findByStatus(ctx context.Context, status model.VerificationStatus) ([]*model.Company, error)
	findAll(ctx context.Context) ([]*model.Company, error)
}

type objectStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

type mailer interface {
	Send(to, subject, body string) error
}

// Register creates a company profile in the moderation queue. Every company
// starts out pending and can't publish events until an administrator verifies
// it.
func (s Service) Register(ctx context.Context, userId uint, name, description, contactEmail, contactPhone string) (*model.Company, error) {
	company := &model.Company{
		UserID:             userId,
		Name:               name,
		Description:        description,
		ContactEmail:       contactEmail,
		ContactPhone:       contactPhone,
		VerificationStatus: model.VerificationPending,
	}

	err := s.repository.create(ctx, company)
	if err != nil {
		return nil, err
	}

	return company, nil
}

func (s Service) Update(ctx context.Context, id, userId uint, name, description, contactEmail, contactPhone string) (*model.Company, error) {
	company, err := s.repository.findById(ctx, id)
	if err != nil {
		return nil, err
	}

	if company.UserID != userId {
		return nil, errdef.NewForbidden("company %d doesn't belong to user %d", id, userId)
	}

	company.Name = name
	company.Description = description
	company.ContactEmail = contactEmail
	company.ContactPhone = contactPhone

	err = s.repository.save(ctx, company)
	if err != nil {
		return nil, err
	}

	s.decorate(company)
	return company, nil
}

// UploadLogo replaces the company logo. The previous object is removed from
// the store once the new key is persisted.
func (s Service) UploadLogo(ctx context.Context, id, userId uint, body io.Reader, size int64, contentType string) (*model.Company, error) {
	company, err := s.repository.findById(ctx, id)
	if err != nil {
		return nil, err
	}

	if company.UserID != userId {
		return nil, errdef.NewForbidden("company %d doesn't belong to user %d", id, userId)
	}

	key := fmt.Sprintf("companies/%d/logo-%s", company.ID, uuid.NewString())
	err = s.objectStore.Put(ctx, key, body, size, contentType)
	if err != nil {
		return nil, err
	}

	previousKey := company.LogoKey
	company.LogoKey = key
	err = s.repository.save(ctx, company)
	if err != nil {
		return nil, err
	}

	if previousKey != "" {
		if err := s.objectStore.Delete(ctx, previousKey); err != nil {
			s.logger.WarnContext(ctx, "Failed to delete previous logo", "key", previousKey, "error", err)
		}
	}

	s.decorate(company)
	return company, nil
}

func (s Service) Approve(ctx context.Context, id uint) (*model.Company, error) {
	return s.decide(ctx, id, model.VerificationVerified)
}

func (s Service) Reject(ctx context.Context, id uint) (*model.Company, error) {
	return s.decide(ctx, id, model.VerificationRejected)
}

func (s Service) decide(ctx context.Context, id uint, status model.VerificationStatus) (*model.Company, error) {
	company, err := s.repository.findById(ctx, id)
	if err != nil {
		return nil, err
	}

	if company.VerificationStatus != model.VerificationPending {
		return nil, errdef.NewBadRequest("company %d is not pending verification", id)
	}

	company.VerificationStatus = status
	err = s.repository.save(ctx, company)
	if err != nil {
		return nil, err
	}

	s.notifyOwner(ctx, company)

	s.decorate(company)
	return company, nil
}

// SetStatus is the administrator override. Unlike Approve/Reject it can move
// a company between any two states.
func (s Service) SetStatus(ctx context.Context, id uint, status model.VerificationStatus) (*model.Company, error) {
	switch status {
	case model.VerificationPending, model.VerificationVerified, model.VerificationRejected:
	default:
		return nil, errdef.NewBadRequest("unknown verification status %q", status)
	}

	company, err := s.repository.findById(ctx, id)
	if err != nil {
		return nil, err
	}

	company.VerificationStatus = status
	err = s.repository.save(ctx, company)
	if err != nil {
		return nil, err
	}

	s.decorate(company)
	return company, nil
}

// notifyOwner emails the verification decision. Mail failure is logged rather
// than surfaced since the status transition has already been persisted.
func (s Service) notifyOwner(ctx context.Context, company *model.Company) {
	if company.User == nil {
		return
	}

	subject := fmt.Sprintf("Your company %q has been %s", company.Name, company.VerificationStatus)
	body := fmt.Sprintf("Hi %s,\n\nthe review of your company %q is complete. Its status is now %q.\n", company.User.FirstName, company.Name, company.VerificationStatus)
	if company.VerificationStatus == model.VerificationVerified {
		body += "\nYou can now publish events.\n"
	}

	err := s.mailer.Send(company.User.Email, subject, body)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to send verification decision mail", "company", company.ID, "error", err)
	}
}

func (s Service) ListPending(ctx context.Context) ([]*model.Company, error) {
	companies, err := s.repository.findByStatus(ctx, model.VerificationPending)
	if err != nil {
		return nil, err
	}
	s.decorateAll(companies)
	return companies, nil
}

func (s Service) FindAll(ctx context.Context) ([]*model.Company, error) {
	companies, err := s.repository.findAll(ctx)
	if err != nil {
		return nil, err
	}
	s.decorateAll(companies)
	return companies, nil
}

func (s Service) FindById(ctx context.Context, id uint) (*model.Company, error) {
	company, err := s.repository.findById(ctx, id)
	if err != nil {
		return nil, err
	}
	s.decorate(company)
	return company, nil
}

func (s Service) FindByUserID(ctx context.Context, userId uint) (*model.Company, error) {
	company, err := s.repository.findByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	s.decorate(company)
	return company, nil
}

func (s Service) decorate(company *model.Company) {
	company.LogoURL = s.objectStore.PublicURL(company.LogoKey)
}

func (s Service) decorateAll(companies []*model.Company) {
	for _, company := range companies {
		s.decorate(company)
	}
}
