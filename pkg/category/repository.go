package category

import (
	"context"
	"fmt"

	"github.com/takimet-io/takimet/pkg/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// defaultTaxonomy is the fixed set of categories events can be tagged with.
var defaultTaxonomy = []string{
	"Music",
	"Tech",
	"Business",
	"Sports",
	"Food & Drink",
	"Art & Culture",
	"Education",
	"Health",
}

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(db *gorm.DB) *repository {
	return &repository{db}
}

type repository struct {
	db *gorm.DB
}

// seed inserts the default taxonomy, skipping names that already exist so it
// is safe to run on every boot.
func (r repository) seed(ctx context.Context) error {
	categories := make([]model.Category, len(defaultTaxonomy))
	for i, name := range defaultTaxonomy {
		categories[i] = model.Category{Name: name}
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&categories).Error
	if err != nil {
		return fmt.Errorf("failed to seed categories: %v", err)
	}
	return nil
}

func (r repository) findAll(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).Order("id").Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find all categories: %v", err)
	}
	return categories, nil
}

func (r repository) findAllEvents(ctx context.Context) ([]*model.Event, error) {
	var events []*model.Event
	err := r.db.WithContext(ctx).
		Preload("Categories").
		Order("start_time").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find events with categories: %v", err)
	}
	return events, nil
}

// findEventsForCategories returns the union of events tagged with any of the
// given categories.
func (r repository) findEventsForCategories(ctx context.Context, categoryIds []uint) ([]*model.Event, error) {
	var events []*model.Event
	err := r.db.WithContext(ctx).
		Preload("Categories").
		Distinct("events.*").
		Joins("JOIN event_categories ON event_categories.event_id = events.id").
		Where("event_categories.category_id IN ?", categoryIds).
		Order("start_time").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find events for categories %v: %v", categoryIds, err)
	}
	return events, nil
}
