package company

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

func (r repository) create(ctx context.Context, c *model.Company) error {
	err := r.db.WithContext(ctx).Create(&c).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errdef.NewDuplicated("user %d already registered a company", c.UserID)
	}
	return err
}

func (r repository) save(ctx context.Context, c *model.Company) error {
	return r.db.WithContext(ctx).Save(&c).Error
}

func (r repository) findById(ctx context.Context, id uint) (*model.Company, error) {
	var c *model.Company
	err := r.db.WithContext(ctx).Preload("User").First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("failed to find company with id %d", id)
	}
	return c, err
}

func (r repository) findByUserId(ctx context.Context, userId uint) (*model.Company, error) {
	var c *model.Company
	err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("failed to find company for user %d", userId)
	}
	return c, err
}

func (r repository) findByStatus(ctx context.Context, status model.VerificationStatus) ([]*model.Company, error) {
	var companies []*model.Company
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("verification_status = ?", status).
		Order("created_at").
		Find(&companies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find companies with status %q: %v", status, err)
	}
	return companies, nil
}

func (r repository) findAll(ctx context.Context) ([]*model.Company, error) {
	var companies []*model.Company
	err := r.db.WithContext(ctx).Preload("User").Order("name").Find(&companies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find all companies: %v", err)
	}
	return companies, nil
}
