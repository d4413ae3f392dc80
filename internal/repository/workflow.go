package repository

import (
	"context"
	"errors"
	"guestpost-marketplace/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WorkflowRepository is the read path into the production tracker's
// state. The refund calculation depends on this interface only, so it
// can run against fakes in tests.
type WorkflowRepository interface {
	Get(ctx context.Context, workflowID string) (*model.Workflow, error)
	Upsert(ctx context.Context, workflow *model.Workflow) error
}

type workflowRepoImpl struct {
	db *gorm.DB
}

func NewWorkflowRepository(db *gorm.DB) WorkflowRepository {
	return &workflowRepoImpl{
		db: db,
	}
}

func (r *workflowRepoImpl) Get(ctx context.Context, workflowID string) (*model.Workflow, error) {
	var workflow model.Workflow
	err := r.db.WithContext(ctx).
		Where("id = ?", workflowID).
		First(&workflow).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &workflow, nil
}

func (r *workflowRepoImpl) Upsert(ctx context.Context, workflow *model.Workflow) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.Assignments(map[string]interface{}{
			"status":            workflow.Status,
			"current_step_slug": workflow.CurrentStepSlug,
			"updated_at":        time.Now(),
		}),
	}).Create(workflow).Error
}
