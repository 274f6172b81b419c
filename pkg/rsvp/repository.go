package rsvp

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

func (r repository) create(ctx context.Context, rsvp *model.RSVP) error {
	err := r.db.WithContext(ctx).Create(&rsvp).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errdef.NewConflict("user %d already has an RSVP for event %d", rsvp.UserID, rsvp.EventID)
	}
	return err
}

func (r repository) save(ctx context.Context, rsvp *model.RSVP) error {
	return r.db.WithContext(ctx).Save(&rsvp).Error
}

func (r repository) findByUserAndEvent(ctx context.Context, userId, eventId uint) (*model.RSVP, error) {
	var rsvp *model.RSVP
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND event_id = ?", userId, eventId).
		First(&rsvp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("user %d has no RSVP for event %d", userId, eventId)
	}
	return rsvp, err
}

func (r repository) findForUser(ctx context.Context, userId uint) ([]*model.RSVP, error) {
	var rsvps []*model.RSVP
	err := r.db.WithContext(ctx).
		Preload("Event").
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&rsvps).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find RSVPs of user %d: %v", userId, err)
	}
	return rsvps, nil
}

func (r repository) findForEvent(ctx context.Context, eventId uint) ([]*model.RSVP, error) {
	var rsvps []*model.RSVP
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("event_id = ?", eventId).
		Order("created_at DESC").
		Find(&rsvps).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find RSVPs of event %d: %v", eventId, err)
	}
	return rsvps, nil
}

func (r repository) findForCompany(ctx context.Context, companyId uint) ([]*model.RSVP, error) {
	var rsvps []*model.RSVP
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Event").
		Joins("JOIN events ON events.id = rsvps.event_id").
		Where("events.company_id = ?", companyId).
		Order("rsvps.created_at DESC").
		Find(&rsvps).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find RSVPs of company %d: %v", companyId, err)
	}
	return rsvps, nil
}

func (r repository) findAll(ctx context.Context) ([]*model.RSVP, error) {
	var rsvps []*model.RSVP
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Event").
		Order("created_at DESC").
		Find(&rsvps).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find all RSVPs: %v", err)
	}
	return rsvps, nil
}

func (r repository) delete(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx).Delete(&model.RSVP{}, id)
	if db.Error != nil {
		return fmt.Errorf("failed to delete RSVP with id %d: %v", id, db.Error)
	}
	if db.RowsAffected < 1 {
		return errdef.NewNotFound("failed to find RSVP with id %d", id)
	}
	return nil
}
