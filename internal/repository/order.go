package repository

import (
	"context"
	"errors"
	"guestpost-marketplace/internal/model"
	"time"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	// GetWithLineItems eager-loads the order's groups and their
	// submissions in one snapshot.
	GetWithLineItems(ctx context.Context, orderID string) (*model.Order, error)
	ListByAccount(ctx context.Context, accountID string) ([]*model.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
	SetPaymentIntent(ctx context.Context, orderID, paymentIntentID string, totalCents int64) error
	CreateGroup(ctx context.Context, group *model.OrderGroup) error
	GetGroup(ctx context.Context, groupID string) (*model.OrderGroup, error)
	CreateSubmission(ctx context.Context, submission *model.SiteSubmission) error
	GetSubmission(ctx context.Context, submissionID string) (*model.SiteSubmission, error)
	UpdateSubmissionStatus(ctx context.Context, submissionID, status string) error
	SetPublishedURL(ctx context.Context, submissionID, publishedURL string) error
	LinkWorkflow(ctx context.Context, submissionID, workflowID string) error
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

func (r *orderRepoImpl) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepoImpl) GetWithLineItems(ctx context.Context, orderID string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("Groups").
		Preload("Groups.Submissions").
		Where("id = ?", orderID).
		First(&order).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepoImpl) ListByAccount(ctx context.Context, accountID string) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&orders).Error

	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepoImpl) UpdateStatus(ctx context.Context, orderID, status string) error {
	result := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
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

func (r *orderRepoImpl) SetPaymentIntent(ctx context.Context, orderID, paymentIntentID string, totalCents int64) error {
	result := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"payment_intent_id": paymentIntentID,
			"total_cents":       totalCents,
			"updated_at":        time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *orderRepoImpl) CreateGroup(ctx context.Context, group *model.OrderGroup) error {
	return r.db.WithContext(ctx).Create(group).Error
}

func (r *orderRepoImpl) GetGroup(ctx context.Context, groupID string) (*model.OrderGroup, error) {
	var group model.OrderGroup
	err := r.db.WithContext(ctx).
		Where("id = ?", groupID).
		First(&group).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &group, nil
}

func (r *orderRepoImpl) CreateSubmission(ctx context.Context, submission *model.SiteSubmission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}

func (r *orderRepoImpl) GetSubmission(ctx context.Context, submissionID string) (*model.SiteSubmission, error) {
	var submission model.SiteSubmission
	err := r.db.WithContext(ctx).
		Where("id = ?", submissionID).
		First(&submission).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &submission, nil
}

func (r *orderRepoImpl) UpdateSubmissionStatus(ctx context.Context, submissionID, status string) error {
	result := r.db.WithContext(ctx).Model(&model.SiteSubmission{}).
		Where("id = ?", submissionID).
		Updates(map[string]interface{}{
			"submission_status": status,
			"updated_at":        time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *orderRepoImpl) LinkWorkflow(ctx context.Context, submissionID, workflowID string) error {
	result := r.db.WithContext(ctx).Model(&model.SiteSubmission{}).
		Where("id = ?", submissionID).
		Updates(map[string]interface{}{
			"workflow_id": workflowID,
			"updated_at":  time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *orderRepoImpl) SetPublishedURL(ctx context.Context, submissionID, publishedURL string) error {
	result := r.db.WithContext(ctx).Model(&model.SiteSubmission{}).
		Where("id = ?", submissionID).
		Updates(map[string]interface{}{
			"published_url": publishedURL,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
