package service

import (
	"guestpost-marketplace/internal/model"
	"testing"

	"github.com/shopspring/decimal"
)

func TestEarnedFraction(t *testing.T) {
	wfID := "wf-1"

	cases := []struct {
		name     string
		sub      model.SiteSubmission
		wf       *model.Workflow
		fraction decimal.Decimal
	}{
		{
			name:     "no workflow",
			sub:      model.SiteSubmission{SubmissionStatus: model.SubmissionStatusPending},
			fraction: decimal.Zero,
		},
		{
			name: "client rejected overrides everything",
			sub: model.SiteSubmission{
				SubmissionStatus: model.SubmissionStatusClientRejected,
				WorkflowID:       &wfID,
				PublishedURL:     "https://example.com/post",
			},
			wf:       &model.Workflow{ID: wfID, Status: model.WorkflowStatusCompleted},
			fraction: decimal.Zero,
		},
		{
			name: "completed and published",
			sub: model.SiteSubmission{
				SubmissionStatus: model.SubmissionStatusClientApproved,
				WorkflowID:       &wfID,
				PublishedURL:     "https://example.com/post",
			},
			wf:       &model.Workflow{ID: wfID, Status: model.WorkflowStatusCompleted},
			fraction: decimal.NewFromInt(1),
		},
		{
			name: "completed without published url",
			sub: model.SiteSubmission{
				SubmissionStatus: model.SubmissionStatusSubmitted,
				WorkflowID:       &wfID,
			},
			wf:       &model.Workflow{ID: wfID, Status: model.WorkflowStatusCompleted},
			fraction: decimal.NewFromFloat(0.90),
		},
		{
			name: "completed status beats stale step slug",
			sub: model.SiteSubmission{
				SubmissionStatus: model.SubmissionStatusSubmitted,
				WorkflowID:       &wfID,
			},
			wf: &model.Workflow{
				ID:              wfID,
				Status:          model.WorkflowStatusCompleted,
				CurrentStepSlug: model.StepContentAudit,
			},
			fraction: decimal.NewFromFloat(0.90),
		},
		{
			name: "final polish",
			sub:  model.SiteSubmission{SubmissionStatus: model.SubmissionStatusPending, WorkflowID: &wfID},
			wf: &model.Workflow{
				ID:              wfID,
				Status:          model.WorkflowStatusInProgress,
				CurrentStepSlug: model.StepFinalPolish,
			},
			fraction: decimal.NewFromFloat(0.80),
		},
		{
			name: "article draft",
			sub:  model.SiteSubmission{SubmissionStatus: model.SubmissionStatusPending, WorkflowID: &wfID},
			wf: &model.Workflow{
				ID:              wfID,
				Status:          model.WorkflowStatusInProgress,
				CurrentStepSlug: model.StepArticleDraft,
			},
			fraction: decimal.NewFromFloat(0.60),
		},
		{
			name: "content audit",
			sub:  model.SiteSubmission{SubmissionStatus: model.SubmissionStatusPending, WorkflowID: &wfID},
			wf: &model.Workflow{
				ID:              wfID,
				Status:          model.WorkflowStatusInProgress,
				CurrentStepSlug: model.StepContentAudit,
			},
			fraction: decimal.NewFromFloat(0.40),
		},
		{
			name: "in progress with unknown step",
			sub:  model.SiteSubmission{SubmissionStatus: model.SubmissionStatusPending, WorkflowID: &wfID},
			wf: &model.Workflow{
				ID:              wfID,
				Status:          model.WorkflowStatusInProgress,
				CurrentStepSlug: "briefing",
			},
			fraction: decimal.NewFromFloat(0.20),
		},
		{
			name:     "not started workflow",
			sub:      model.SiteSubmission{SubmissionStatus: model.SubmissionStatusPending, WorkflowID: &wfID},
			wf:       &model.Workflow{ID: wfID, Status: model.WorkflowStatusNotStarted},
			fraction: decimal.Zero,
		},
		{
			name:     "garbage workflow status",
			sub:      model.SiteSubmission{SubmissionStatus: model.SubmissionStatusPending, WorkflowID: &wfID},
			wf:       &model.Workflow{ID: wfID, Status: "???"},
			fraction: decimal.Zero,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := earnedFraction(&tc.sub, tc.wf)
			if !got.Equal(tc.fraction) {
				t.Errorf("fraction = %s, want %s", got, tc.fraction)
			}
			// Earned value must stay within [0, price] at any price.
			price := decimal.NewFromInt(12345)
			earned := price.Mul(got)
			if earned.IsNegative() || earned.GreaterThan(price) {
				t.Errorf("earned %s outside [0, %s]", earned, price)
			}
		})
	}
}
