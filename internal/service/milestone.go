package service

import (
	"guestpost-marketplace/internal/model"

	"github.com/shopspring/decimal"
)

var (
	fractionNone      = decimal.Zero
	fractionStarted   = decimal.NewFromFloat(0.20)
	fractionAudited   = decimal.NewFromFloat(0.40)
	fractionDrafted   = decimal.NewFromFloat(0.60)
	fractionPolished  = decimal.NewFromFloat(0.80)
	fractionDelivered = decimal.NewFromFloat(0.90)
	fractionPublished = decimal.NewFromInt(1)
)

// milestoneRule pairs a production-state predicate with the fraction of
// the submission's locked-in price earned at that stage. Rules are
// evaluated in order and the first match wins, so a completed workflow
// parked on a stale step slug still resolves to the completed branch.
type milestoneRule struct {
	matches  func(sub *model.SiteSubmission, wf *model.Workflow) bool
	fraction decimal.Decimal
}

var milestoneRules = []milestoneRule{
	{
		// A client rejection voids all credit, whatever the tracker says.
		matches: func(sub *model.SiteSubmission, wf *model.Workflow) bool {
			return sub.SubmissionStatus == model.SubmissionStatusClientRejected
		},
		fraction: fractionNone,
	},
	{
		matches: func(sub *model.SiteSubmission, wf *model.Workflow) bool {
			return wf == nil
		},
		fraction: fractionNone,
	},
	{
		matches: func(sub *model.SiteSubmission, wf *model.Workflow) bool {
			return wf.Status == model.WorkflowStatusCompleted && sub.PublishedURL != ""
		},
		fraction: fractionPublished,
	},
	{
		matches: func(sub *model.SiteSubmission, wf *model.Workflow) bool {
			return wf.Status == model.WorkflowStatusCompleted
		},
		fraction: fractionDelivered,
	},
	{
		matches: func(sub *model.SiteSubmission, wf *model.Workflow) bool {
			return wf.CurrentStepSlug == model.StepFinalPolish
		},
		fraction: fractionPolished,
	},
	{
		matches: func(sub *model.SiteSubmission, wf *model.Workflow) bool {
			return wf.CurrentStepSlug == model.StepArticleDraft
		},
		fraction: fractionDrafted,
	},
	{
		matches: func(sub *model.SiteSubmission, wf *model.Workflow) bool {
			return wf.CurrentStepSlug == model.StepContentAudit
		},
		fraction: fractionAudited,
	},
	{
		matches: func(sub *model.SiteSubmission, wf *model.Workflow) bool {
			return wf.Status == model.WorkflowStatusInProgress
		},
		fraction: fractionStarted,
	},
}

// earnedFraction resolves a submission's production state to the
// fraction of its price already earned. Unknown or missing state falls
// through to zero credit, so a refund estimate never errors on dirty
// tracker data.
func earnedFraction(sub *model.SiteSubmission, wf *model.Workflow) decimal.Decimal {
	for _, rule := range milestoneRules {
		if rule.matches(sub, wf) {
			return rule.fraction
		}
	}
	return fractionNone
}
