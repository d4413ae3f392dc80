package service

import (
	"context"
	"fmt"
	"guestpost-marketplace/internal/model"
	"guestpost-marketplace/internal/repository"

	"github.com/google/uuid"
)

// WorkflowService is the ops-facing write path into workflow state. It
// stands in for the external production tracker; the refund path never
// writes through it.
type WorkflowService interface {
	UpsertWorkflow(ctx context.Context, submissionID, status, currentStepSlug string) (*model.Workflow, error)
}

type workflowServiceImpl struct {
	workflowRepo repository.WorkflowRepository
	orderRepo    repository.OrderRepository
}

func NewWorkflowService(
	workflowRepo repository.WorkflowRepository,
	orderRepo repository.OrderRepository,
) WorkflowService {
	return &workflowServiceImpl{
		workflowRepo: workflowRepo,
		orderRepo:    orderRepo,
	}
}

func (s *workflowServiceImpl) UpsertWorkflow(ctx context.Context, submissionID, status, currentStepSlug string) (*model.Workflow, error) {
	switch status {
	case model.WorkflowStatusNotStarted,
		model.WorkflowStatusInProgress,
		model.WorkflowStatusCompleted:
	default:
		return nil, fmt.Errorf("unknown workflow status %q", status)
	}

	submission, err := s.orderRepo.GetSubmission(ctx, submissionID)
	if err != nil {
		return nil, err
	}

	workflowID := uuid.NewString()
	if submission.WorkflowID != nil {
		workflowID = *submission.WorkflowID
	}

	workflow := &model.Workflow{
		ID:              workflowID,
		SubmissionID:    submission.ID,
		Status:          status,
		CurrentStepSlug: currentStepSlug,
	}
	if err := s.workflowRepo.Upsert(ctx, workflow); err != nil {
		return nil, fmt.Errorf("upsert workflow: %w", err)
	}

	if submission.WorkflowID == nil {
		if err := s.orderRepo.LinkWorkflow(ctx, submission.ID, workflow.ID); err != nil {
			return nil, err
		}
	}

	return workflow, nil
}
