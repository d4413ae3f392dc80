package repository

import (
	"context"
	"errors"
	"guestpost-marketplace/internal/model"

	"gorm.io/gorm"
)

type OfferingRepository interface {
	Create(ctx context.Context, offering *model.Offering) error
	Get(ctx context.Context, offeringID string) (*model.Offering, error)
	ListActiveByWebsite(ctx context.Context, websiteID string) ([]*model.Offering, error)
}

type offeringRepoImpl struct {
	db *gorm.DB
}

func NewOfferingRepository(db *gorm.DB) OfferingRepository {
	return &offeringRepoImpl{
		db: db,
	}
}

func (r *offeringRepoImpl) Create(ctx context.Context, offering *model.Offering) error {
	return r.db.WithContext(ctx).Create(offering).Error
}

func (r *offeringRepoImpl) Get(ctx context.Context, offeringID string) (*model.Offering, error) {
	var offering model.Offering
	err := r.db.WithContext(ctx).
		Where("id = ?", offeringID).
		First(&offering).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &offering, nil
}

func (r *offeringRepoImpl) ListActiveByWebsite(ctx context.Context, websiteID string) ([]*model.Offering, error) {
	var offerings []*model.Offering
	err := r.db.WithContext(ctx).
		Where("website_id = ?", websiteID).
		Where("active = ?", true).
		Find(&offerings).Error

	if err != nil {
		return nil, err
	}

	return offerings, nil
}
