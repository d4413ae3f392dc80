package repository

import (
	"context"
	"guestpost-marketplace/internal/model"
	"time"

	"gorm.io/gorm"
)

type VettedSiteRequestRepository interface {
	Create(ctx context.Context, request *model.VettedSiteRequest) error
	ListByStatus(ctx context.Context, status string) ([]*model.VettedSiteRequest, error)
	UpdateStatus(ctx context.Context, requestID, status, notes string) error
}

type vettedSiteRequestRepoImpl struct {
	db *gorm.DB
}

func NewVettedSiteRequestRepository(db *gorm.DB) VettedSiteRequestRepository {
	return &vettedSiteRequestRepoImpl{
		db: db,
	}
}

func (r *vettedSiteRequestRepoImpl) Create(ctx context.Context, request *model.VettedSiteRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *vettedSiteRequestRepoImpl) ListByStatus(ctx context.Context, status string) ([]*model.VettedSiteRequest, error) {
	var requests []*model.VettedSiteRequest
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&requests).Error

	if err != nil {
		return nil, err
	}

	return requests, nil
}

func (r *vettedSiteRequestRepoImpl) UpdateStatus(ctx context.Context, requestID, status, notes string) error {
	result := r.db.WithContext(ctx).Model(&model.VettedSiteRequest{}).
		Where("id = ?", requestID).
		Updates(map[string]interface{}{
			"status":     status,
			"notes":      notes,
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
