package repository

import (
	"context"
	"errors"
	"guestpost-marketplace/internal/model"

	"gorm.io/gorm"
)

type PublisherRepository interface {
	Create(ctx context.Context, publisher *model.Publisher) error
	Get(ctx context.Context, publisherID string) (*model.Publisher, error)
	GetByEmail(ctx context.Context, email string) (*model.Publisher, error)
}

type publisherRepoImpl struct {
	db *gorm.DB
}

func NewPublisherRepository(db *gorm.DB) PublisherRepository {
	return &publisherRepoImpl{
		db: db,
	}
}

func (r *publisherRepoImpl) Create(ctx context.Context, publisher *model.Publisher) error {
	return r.db.WithContext(ctx).Create(publisher).Error
}

func (r *publisherRepoImpl) Get(ctx context.Context, publisherID string) (*model.Publisher, error) {
	var publisher model.Publisher
	err := r.db.WithContext(ctx).
		Where("id = ?", publisherID).
		First(&publisher).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &publisher, nil
}

func (r *publisherRepoImpl) GetByEmail(ctx context.Context, email string) (*model.Publisher, error) {
	var publisher model.Publisher
	err := r.db.WithContext(ctx).
		Where("contact_email = ?", email).
		First(&publisher).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &publisher, nil
}
