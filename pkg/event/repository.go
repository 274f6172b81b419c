package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/takimet-io/takimet/internal/errdef"
	"github.com/takimet-io/takimet/pkg/model"
	"gorm.io/gorm"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(db *gorm.DB) *repository {
	return &repository{db}
}

type repository struct {
	db *gorm.DB
}

func (r repository) create(ctx context.Context, e *model.Event) error {
	return r.db.WithContext(ctx).Create(&e).Error
}

func (r repository) save(ctx context.Context, e *model.Event) error {
	return r.db.WithContext(ctx).Save(&e).Error
}

func (r repository) findById(ctx context.Context, id uint) (*model.Event, error) {
	var e *model.Event
	err := r.db.WithContext(ctx).
		Preload("Company").
		Preload("Categories").
		First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("failed to find event with id %d", id)
	}
	return e, err
}

func (r repository) findAll(ctx context.Context) ([]*model.Event, error) {
	var events []*model.Event
	err := r.db.WithContext(ctx).
		Preload("Company").
		Preload("Categories").
		Order("start_time").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find all events: %v", err)
	}
	return events, nil
}

func (r repository) findByCompany(ctx context.Context, companyId uint) ([]*model.Event, error) {
	var events []*model.Event
	err := r.db.WithContext(ctx).
		Preload("Company").
		Preload("Categories").
		Where("company_id = ?", companyId).
		Order("start_time").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find events of company %d: %v", companyId, err)
	}
	return events, nil
}

// findPopular ranks events by their RSVP count. Events below the threshold
// are dropped and ties resolve to the lowest event id so the ranking is
// stable across requests.
func (r repository) findPopular(ctx context.Context, limit, minRSVPs int) ([]*model.Event, error) {
	var events []*model.Event
	err := r.db.WithContext(ctx).
		Preload("Company").
		Preload("Categories").
		Joins("JOIN rsvps ON rsvps.event_id = events.id").
		Group("events.id").
		Having("count(rsvps.id) >= ?", minRSVPs).
		Order("count(rsvps.id) DESC, events.id").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find popular events: %v", err)
	}
	return events, nil
}

func (r repository) replaceCategories(ctx context.Context, e *model.Event, categories []model.Category) error {
	return r.db.WithContext(ctx).Model(e).Association("Categories").Replace(categories)
}

func (r repository) findCategoriesByNames(ctx context.Context, names []string) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).Where("name IN ?", names).Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find categories by name: %v", err)
	}
	return categories, nil
}

// delete removes an event. Category links cascade with the row; dependent
// RSVPs and comments block the delete via their foreign keys and the
// violation is surfaced as a conflict instead of cascading.
func (r repository) delete(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx).Delete(&model.Event{}, id)
	if errors.Is(db.Error, gorm.ErrForeignKeyViolated) {
		return errdef.NewConflict("event %d still has RSVPs or comments", id)
	}
	if db.Error != nil {
		return fmt.Errorf("failed to delete event with id %d: %v", id, db.Error)
	}
	if db.RowsAffected < 1 {
		return errdef.NewNotFound("failed to find event with id %d", id)
	}
	return nil
}
