package stats

import (
	"context"
	"fmt"

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

func (r repository) findAllEvents(ctx context.Context) ([]*model.Event, error) {
	var events []*model.Event
	err := r.db.WithContext(ctx).Preload("Categories").Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find events for statistics: %v", err)
	}
	return events, nil
}

func (r repository) findAllRSVPs(ctx context.Context) ([]*model.RSVP, error) {
	var rsvps []*model.RSVP
	err := r.db.WithContext(ctx).Find(&rsvps).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find RSVPs for statistics: %v", err)
	}
	return rsvps, nil
}
