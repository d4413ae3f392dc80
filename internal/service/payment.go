package service

import (
	"context"
	"fmt"
	"guestpost-marketplace/internal/client"
	"guestpost-marketplace/internal/dto"
	"guestpost-marketplace/internal/model"
	"guestpost-marketplace/internal/repository"
)

type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, orderID string) (*dto.PaymentIntentResponse, error)
	ConfirmPayment(ctx context.Context, orderID string) error
	ExecuteRefund(ctx context.Context, orderID string, amountCents int64) (*dto.ExecuteRefundResponse, error)
}

type paymentServiceImpl struct {
	stripeClient client.StripeClient
	orderRepo    repository.OrderRepository
}

func NewPaymentService(
	stripeClient client.StripeClient,
	orderRepo repository.OrderRepository,
) PaymentService {
	return &paymentServiceImpl{
		stripeClient: stripeClient,
		orderRepo:    orderRepo,
	}
}

func (s *paymentServiceImpl) CreatePaymentIntent(ctx context.Context, orderID string) (*dto.PaymentIntentResponse, error) {
	order, err := s.orderRepo.GetWithLineItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != model.OrderStatusCreated && order.Status != model.OrderStatusConfigured {
		return nil, fmt.Errorf("order %s is not payable in status %s", orderID, order.Status)
	}

	var totalCents int64
	for _, group := range order.Groups {
		for _, sub := range group.Submissions {
			totalCents += sub.RetailPriceCents
		}
	}
	if totalCents == 0 {
		return nil, fmt.Errorf("order %s has no priced submissions", orderID)
	}

	intent, err := s.stripeClient.CreatePaymentIntent(ctx, totalCents, order.ID)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.SetPaymentIntent(ctx, order.ID, intent.ID, totalCents); err != nil {
		return nil, fmt.Errorf("store payment intent: %w", err)
	}
	if err := s.orderRepo.UpdateStatus(ctx, order.ID, model.OrderStatusConfigured); err != nil {
		return nil, err
	}

	return &dto.PaymentIntentResponse{
		OrderID:         order.ID,
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		AmountCents:     totalCents,
	}, nil
}

func (s *paymentServiceImpl) ConfirmPayment(ctx context.Context, orderID string) error {
	order, err := s.orderRepo.GetWithLineItems(ctx, orderID)
	if err != nil {
		return err
	}
	if order.PaymentIntentID == "" {
		return fmt.Errorf("order %s has no payment intent", orderID)
	}
	if order.Status != model.OrderStatusConfigured {
		return fmt.Errorf("order %s is not awaiting payment", orderID)
	}

	return s.orderRepo.UpdateStatus(ctx, order.ID, model.OrderStatusPaid)
}

// ExecuteRefund moves real money. The amount comes from the admin, not
// from the calculator: suggestions stay advisory and the approver takes
// responsibility for the figure.
func (s *paymentServiceImpl) ExecuteRefund(ctx context.Context, orderID string, amountCents int64) (*dto.ExecuteRefundResponse, error) {
	order, err := s.orderRepo.GetWithLineItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != model.OrderStatusPaid && order.Status != model.OrderStatusFulfilled {
		return nil, fmt.Errorf("order %s is not refundable in status %s", orderID, order.Status)
	}
	if order.PaymentIntentID == "" {
		return nil, fmt.Errorf("order %s has no payment intent", orderID)
	}
	if amountCents <= 0 || amountCents > order.TotalCents {
		return nil, fmt.Errorf("refund amount %d out of range for order total %d", amountCents, order.TotalCents)
	}

	refundID, err := s.stripeClient.CreateRefund(ctx, order.PaymentIntentID, amountCents)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdateStatus(ctx, order.ID, model.OrderStatusRefunded); err != nil {
		return nil, err
	}

	return &dto.ExecuteRefundResponse{
		OrderID:        order.ID,
		StripeRefundID: refundID,
		AmountCents:    amountCents,
	}, nil
}
