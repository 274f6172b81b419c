package event

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/takimet-io/takimet/internal/errdef"
	"github.com/takimet-io/takimet/pkg/model"
)

func TestService_Create(t *testing.T) {
	repository := &mockRepository{}
	repository.
		On("create", mock.Anything, mock.AnythingOfType("*model.Event")).
		Run(func(args mock.Arguments) {
			event := args.Get(1).(*model.Event)
			event.ID = 1
		}).
		Return(nil)
	repository.
		On("findCategoriesByNames", mock.Anything, []string{"Music", "Art & Culture"}).
		Return([]model.Category{{ID: 1, Name: "Music"}, {ID: 6, Name: "Art & Culture"}}, nil)
	repository.
		On("replaceCategories", mock.Anything, mock.AnythingOfType("*model.Event"), mock.AnythingOfType("[]model.Category")).
		Return(nil)
	created := &model.Event{ID: 1, Title: "Netët e Muzikës", Slug: "netet-e-muzikes"}
	repository.
		On("findById", mock.Anything, uint(1)).
		Return(created, nil)
	service := NewService(newTestLogger(), repository, &mockObjectStore{})

	event, err := service.Create(context.Background(), 7, Fields{
		Title:       "Netët e Muzikës",
		Description: "Three nights of live music",
		Location:    "Tirana",
		StartTime:   time.Date(2026, 10, 1, 20, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2026, 10, 1, 23, 0, 0, 0, time.UTC),
	}, []string{"Music", "Art & Culture"}, nil)

	require.NoError(t, err)
	assert.Equal(t, created, event)
	repository.AssertExpectations(t)
}

func TestService_Create_SlugFromTitle(t *testing.T) {
	repository := &mockRepository{}
	var persisted *model.Event
	repository.
		On("create", mock.Anything, mock.AnythingOfType("*model.Event")).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*model.Event)
			persisted.ID = 1
		}).
		Return(nil)
	repository.
		On("findById", mock.Anything, uint(1)).
		Return(&model.Event{ID: 1}, nil)
	service := NewService(newTestLogger(), repository, &mockObjectStore{})

	_, err := service.Create(context.Background(), 7, Fields{
		Title:       "Festa e Verës 2026!",
		Description: "Summer festival",
		Location:    "Durrës",
		StartTime:   time.Date(2026, 6, 21, 18, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2026, 6, 22, 2, 0, 0, 0, time.UTC),
	}, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "festa-e-veres-2026", persisted.Slug)
}

func TestService_Create_EndBeforeStart(t *testing.T) {
	service := NewService(newTestLogger(), &mockRepository{}, &mockObjectStore{})

	start := time.Date(2026, 10, 1, 20, 0, 0, 0, time.UTC)
	_, err := service.Create(context.Background(), 7, Fields{
		Title:       "Backwards",
		Description: "d",
		Location:    "l",
		StartTime:   start,
		EndTime:     start.Add(-time.Hour),
	}, nil, nil)

	require.Error(t, err)
	assert.True(t, errdef.IsBadRequest(err))
	assert.ErrorContains(t, err, "end time must be after start time")
}

func TestService_Create_EndEqualsStart(t *testing.T) {
	service := NewService(newTestLogger(), &mockRepository{}, &mockObjectStore{})

	start := time.Date(2026, 10, 1, 20, 0, 0, 0, time.UTC)
	_, err := service.Create(context.Background(), 7, Fields{
		Title:       "Zero length",
		Description: "d",
		Location:    "l",
		StartTime:   start,
		EndTime:     start,
	}, nil, nil)

	require.Error(t, err)
	assert.True(t, errdef.IsBadRequest(err))
}

func TestService_Create_YearOutOfRange(t *testing.T) {
	service := NewService(newTestLogger(), &mockRepository{}, &mockObjectStore{})

	_, err := service.Create(context.Background(), 7, Fields{
		Title:       "Typo year",
		Description: "d",
		Location:    "l",
		StartTime:   time.Date(20251, 10, 1, 20, 0, 0, 0, time.UTC),
		EndTime:     time.Date(20251, 10, 1, 22, 0, 0, 0, time.UTC),
	}, nil, nil)

	require.Error(t, err)
	assert.True(t, errdef.IsBadRequest(err))
}

func TestService_Create_CategoryLookupFailureDoesNotLoseTheEvent(t *testing.T) {
	repository := &mockRepository{}
	repository.
		On("create", mock.Anything, mock.AnythingOfType("*model.Event")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.Event).ID = 1
		}).
		Return(nil)
	repository.
		On("findCategoriesByNames", mock.Anything, []string{"Music"}).
		Return(nil, errors.New("connection reset"))
	repository.
		On("findById", mock.Anything, uint(1)).
		Return(&model.Event{ID: 1}, nil)
	service := NewService(newTestLogger(), repository, &mockObjectStore{})

	event, err := service.Create(context.Background(), 7, Fields{
		Title:       "Resilient",
		Description: "d",
		Location:    "l",
		StartTime:   time.Date(2026, 10, 1, 20, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2026, 10, 1, 22, 0, 0, 0, time.UTC),
	}, []string{"Music"}, nil)

	require.NoError(t, err)
	assert.Equal(t, uint(1), event.ID)
	repository.AssertNotCalled(t, "replaceCategories", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Update_NotOwner(t *testing.T) {
	repository := &mockRepository{}
	repository.
		On("findById", mock.Anything, uint(1)).
		Return(&model.Event{ID: 1, CompanyID: 3}, nil)
	service := NewService(newTestLogger(), repository, &mockObjectStore{})

	_, err := service.Update(context.Background(), 1, 7, Fields{
		Title:       "Hijacked",
		Description: "d",
		Location:    "l",
		StartTime:   time.Date(2026, 10, 1, 20, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2026, 10, 1, 22, 0, 0, 0, time.UTC),
	}, nil, nil)

	require.Error(t, err)
	assert.True(t, errdef.IsForbidden(err))
	repository.AssertNotCalled(t, "save", mock.Anything, mock.Anything)
}

func TestService_Delete_BlockedByDependents(t *testing.T) {
	repository := &mockRepository{}
	repository.
		On("findById", mock.Anything, uint(1)).
		Return(&model.Event{ID: 1, CompanyID: 7}, nil)
	repository.
		On("delete", mock.Anything, uint(1)).
		Return(errdef.NewConflict("event 1 still has RSVPs or comments"))
	service := NewService(newTestLogger(), repository, &mockObjectStore{})

	err := service.Delete(context.Background(), 1, 7)

	require.Error(t, err)
	assert.True(t, errdef.IsConflict(err))
}

func TestService_Delete_NotOwner(t *testing.T) {
	repository := &mockRepository{}
	repository.
		On("findById", mock.Anything, uint(1)).
		Return(&model.Event{ID: 1, CompanyID: 3}, nil)
	service := NewService(newTestLogger(), repository, &mockObjectStore{})

	err := service.Delete(context.Background(), 1, 7)

	require.Error(t, err)
	assert.True(t, errdef.IsForbidden(err))
	repository.AssertNotCalled(t, "delete", mock.Anything, mock.Anything)
}

func TestService_ListPopular_DefaultsInvalidArguments(t *testing.T) {
	repository := &mockRepository{}
	repository.
		On("findPopular", mock.Anything, 10, 1).
		Return([]*model.Event{}, nil)
	service := NewService(newTestLogger(), repository, &mockObjectStore{})

	_, err := service.ListPopular(context.Background(), 0, -5)

	require.NoError(t, err)
	repository.AssertExpectations(t)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) create(ctx context.Context, e *model.Event) error {
	return m.Called(ctx, e).Error(0)
}

func (m *mockRepository) save(ctx context.Context, e *model.Event) error {
	return m.Called(ctx, e).Error(0)
}

func (m *mockRepository) findById(ctx context.Context, id uint) (*model.Event, error) {
	called := m.Called(ctx, id)
	event, _ := called.Get(0).(*model.Event)
	return event, called.Error(1)
}

func (m *mockRepository) findAll(ctx context.Context) ([]*model.Event, error) {
	called := m.Called(ctx)
	events, _ := called.Get(0).([]*model.Event)
	return events, called.Error(1)
}

func (m *mockRepository) findByCompany(ctx context.Context, companyId uint) ([]*model.Event, error) {
	called := m.Called(ctx, companyId)
	events, _ := called.Get(0).([]*model.Event)
	return events, called.Error(1)
}

func (m *mockRepository) findPopular(ctx context.Context, limit, minRSVPs int) ([]*model.Event, error) {
	called := m.Called(ctx, limit, minRSVPs)
	events, _ := called.Get(0).([]*model.Event)
	return events, called.Error(1)
}

func (m *mockRepository) replaceCategories(ctx context.Context, e *model.Event, categories []model.Category) error {
	return m.Called(ctx, e, categories).Error(0)
}

func (m *mockRepository) findCategoriesByNames(ctx context.Context, names []string) ([]model.Category, error) {
	called := m.Called(ctx, names)
	categories, _ := called.Get(0).([]model.Category)
	return categories, called.Error(1)
}

func (m *mockRepository) delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockObjectStore struct {
	mock.Mock
}

func (m *mockObjectStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	return m.Called(ctx, key, body, size, contentType).Error(0)
}

func (m *mockObjectStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockObjectStore) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	return m.Called(key).String(0)
}
