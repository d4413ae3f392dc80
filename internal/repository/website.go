package repository

import (
	"context"
	"errors"
	"guestpost-marketplace/internal/model"
	"time"

	"gorm.io/gorm"
)

type WebsiteRepository interface {
	Create(ctx context.Context, website *model.Website) error
	Get(ctx context.Context, websiteID string) (*model.Website, error)
	ListByStatus(ctx context.Context, status string) ([]*model.Website, error)
	UpdateStatus(ctx context.Context, websiteID, status string) error
}

type websiteRepoImpl struct {
	db *gorm.DB
}

func NewWebsiteRepository(db *gorm.DB) WebsiteRepository {
	return &websiteRepoImpl{
		db: db,
	}
}

func (r *websiteRepoImpl) Create(ctx context.Context, website *model.Website) error {
	return r.db.WithContext(ctx).Create(website).Error
}

func (r *websiteRepoImpl) Get(ctx context.Context, websiteID string) (*model.Website, error) {
	var website model.Website
	err := r.db.WithContext(ctx).
		Where("id = ?", websiteID).
		First(&website).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &website, nil
}

func (r *websiteRepoImpl) ListByStatus(ctx context.Context, status string) ([]*model.Website, error) {
	var websites []*model.Website
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("domain_rating DESC").
		Find(&websites).Error

	if err != nil {
		return nil, err
	}

	return websites, nil
}

func (r *websiteRepoImpl) UpdateStatus(ctx context.Context, websiteID, status string) error {
	result := r.db.WithContext(ctx).Model(&model.Website{}).
		Where("id = ?", websiteID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
