package service

import (
	"context"
	"errors"
	"fmt"
	"guestpost-marketplace/internal/model"
	"guestpost-marketplace/internal/repository"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// RefundService computes advisory refund suggestions. Results are
// recommendations for the operations team; nothing here moves money.
type RefundService interface {
	CalculateSuggestedRefund(ctx context.Context, orderID string) (*model.RefundCalculation, error)
	GetRefundPolicy(orderType string, daysOld int) model.RefundPolicy
	CalculateBulkOrderRefund(ctx context.Context, orderIDs []string) (*model.BulkRefundResult, error)
}

type refundServiceImpl struct {
	orderRepo    repository.OrderRepository
	workflowRepo repository.WorkflowRepository
	now          func() time.Time
}

func NewRefundService(
	orderRepo repository.OrderRepository,
	workflowRepo repository.WorkflowRepository,
) RefundService {
	return &refundServiceImpl{
		orderRepo:    orderRepo,
		workflowRepo: workflowRepo,
		now:          time.Now,
	}
}

// groupTotals accumulates one order group's line items.
type groupTotals struct {
	total          decimal.Decimal
	completed      decimal.Decimal
	refundable     decimal.Decimal
	completedCount int
	items          []model.RefundItemBreakdown
}

func (s *refundServiceImpl) aggregateGroup(ctx context.Context, group *model.OrderGroup) (groupTotals, error) {
	totals := groupTotals{
		total:      decimal.Zero,
		completed:  decimal.Zero,
		refundable: decimal.Zero,
	}

	for i := range group.Submissions {
		sub := &group.Submissions[i]

		var wf *model.Workflow
		if sub.WorkflowID != nil {
			loaded, err := s.workflowRepo.Get(ctx, *sub.WorkflowID)
			switch {
			case err == nil:
				wf = loaded
			case errors.Is(err, repository.ErrNotFound):
				// dangling workflow id earns nothing
			default:
				return groupTotals{}, fmt.Errorf("load workflow %s: %w", *sub.WorkflowID, err)
			}
		}

		price := decimal.NewFromInt(sub.RetailPriceCents)
		fraction := earnedFraction(sub, wf)
		earned := price.Mul(fraction)
		refundable := price.Sub(earned)
		done := fraction.Equal(fractionPublished)

		if done {
			totals.completedCount++
		}
		totals.total = totals.total.Add(price)
		totals.completed = totals.completed.Add(earned)
		totals.refundable = totals.refundable.Add(refundable)
		totals.items = append(totals.items, model.RefundItemBreakdown{
			SubmissionID:     sub.ID,
			Domain:           sub.Domain,
			SubmissionStatus: sub.SubmissionStatus,
			Completed:        done,
			RetailPriceCents: sub.RetailPriceCents,
			CompletionValue:  earned,
			RefundableValue:  refundable,
		})
	}

	return totals, nil
}

func (s *refundServiceImpl) CalculateSuggestedRefund(ctx context.Context, orderID string) (*model.RefundCalculation, error) {
	order, err := s.orderRepo.GetWithLineItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	completed := decimal.Zero
	refundable := decimal.Zero
	completedItems := 0
	totalItems := 0
	var items []model.RefundItemBreakdown

	for i := range order.Groups {
		sums, err := s.aggregateGroup(ctx, &order.Groups[i])
		if err != nil {
			return nil, err
		}
		total = total.Add(sums.total)
		completed = completed.Add(sums.completed)
		refundable = refundable.Add(sums.refundable)
		completedItems += sums.completedCount
		totalItems += len(sums.items)
		items = append(items, sums.items...)
	}

	percentage := 0
	if total.IsPositive() {
		percentage = int(completed.Div(total).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
	}

	ageDays := int(s.now().Sub(order.CreatedAt).Hours() / 24)
	multiplier, policyNote := decayMultiplier(ageDays)

	// Rounded once here, never per item, so rounding error cannot
	// compound across the breakdown.
	suggested := refundable.Mul(multiplier).Round(0).IntPart()

	var reason string
	switch {
	case percentage == 0:
		reason = "No work has been started on this order."
	case percentage == 100:
		reason = "Order is fully completed. No refund recommended unless there are quality issues."
	default:
		reason = fmt.Sprintf("%d of %d items completed (%d%% of order value delivered).",
			completedItems, totalItems, percentage)
	}

	return &model.RefundCalculation{
		OrderID:              order.ID,
		SuggestedAmountCents: suggested,
		TotalValue:           total,
		CompletedValue:       completed,
		RefundableValue:      refundable,
		CompletionPercentage: percentage,
		CompletedItems:       completedItems,
		TotalItems:           totalItems,
		OrderAgeDays:         ageDays,
		FeeMultiplier:        multiplier,
		PolicyNote:           policyNote,
		Reason:               reason,
		PolicyDetails:        RefundPolicyFor(order.Type, ageDays),
		Items:                items,
	}, nil
}

func (s *refundServiceImpl) GetRefundPolicy(orderType string, daysOld int) model.RefundPolicy {
	return RefundPolicyFor(orderType, daysOld)
}

func (s *refundServiceImpl) CalculateBulkOrderRefund(ctx context.Context, orderIDs []string) (*model.BulkRefundResult, error) {
	entries := make([]model.BulkRefundEntry, len(orderIDs))

	// Calculations are independent reads, so fan out and join fully
	// before the discount is applied.
	g, gctx := errgroup.WithContext(ctx)
	for i, orderID := range orderIDs {
		g.Go(func() error {
			calc, err := s.CalculateSuggestedRefund(gctx, orderID)
			if err != nil {
				return fmt.Errorf("order %s: %w", orderID, err)
			}
			entries[i] = model.BulkRefundEntry{
				OrderID:     orderID,
				Calculation: calc,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var totalSuggested int64
	for _, entry := range entries {
		totalSuggested += entry.Calculation.SuggestedAmountCents
	}

	var discount int64
	if len(orderIDs) >= bulkDiscountMinOrders {
		discount = decimal.NewFromInt(totalSuggested).Mul(bulkDiscountRate).Round(0).IntPart()
	}

	return &model.BulkRefundResult{
		Orders:              entries,
		TotalSuggestedCents: totalSuggested - discount,
		BulkDiscountCents:   discount,
	}, nil
}
