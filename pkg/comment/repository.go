package comment

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

func (r repository) create(ctx context.Context, c *model.Comment) error {
	err := r.db.WithContext(ctx).Create(&c).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return errdef.NewBadRequest("event %d doesn't exist", c.EventID)
	}
	return err
}

func (r repository) findById(ctx context.Context, id uint) (*model.Comment, error) {
	var c *model.Comment
	err := r.db.WithContext(ctx).Preload("User").First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("failed to find comment with id %d", id)
	}
	return c, err
}

func (r repository) findForEvent(ctx context.Context, eventId uint) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("event_id = ?", eventId).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find comments of event %d: %v", eventId, err)
	}
	return comments, nil
}

// deleteOwned removes a comment only when it belongs to the user. The caller
// can't tell a missing comment from someone else's, both report zero rows.
func (r repository) deleteOwned(ctx context.Context, id, userId uint) (bool, error) {
	db := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userId).
		Delete(&model.Comment{})
	if db.Error != nil {
		return false, fmt.Errorf("failed to delete comment with id %d: %v", id, db.Error)
	}
	return db.RowsAffected > 0, nil
}
