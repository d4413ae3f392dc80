package client

import (
	"context"
	"fmt"
	"guestpost-marketplace/internal/config"

	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/paymentintent"
	"github.com/stripe/stripe-go/v83/refund"
)

// --- INTERFACE ---

type StripeClient interface {
	// CreatePaymentIntent opens a payment intent for an order total and
	// returns the intent id plus the client secret the frontend confirms with
	CreatePaymentIntent(ctx context.Context, amountCents int64, orderID string) (*PaymentIntentResult, error)

	// CreateRefund refunds part or all of a captured payment intent
	CreateRefund(ctx context.Context, paymentIntentID string, amountCents int64) (string, error)
}

type PaymentIntentResult struct {
	ID           string
	ClientSecret string
}

// --- IMPLEMENTATION ---

type stripeClientImpl struct {
	currency string
}

func NewStripeClient(cfg *config.Stripe) StripeClient {
	stripe.Key = cfg.SecretKey

	return &stripeClientImpl{
		currency: cfg.Currency,
	}
}

func (c *stripeClientImpl) CreatePaymentIntent(ctx context.Context, amountCents int64, orderID string) (*PaymentIntentResult, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(c.currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("order_id", orderID)

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe create payment intent: %w", err)
	}

	return &PaymentIntentResult{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

func (c *stripeClientImpl) CreateRefund(ctx context.Context, paymentIntentID string, amountCents int64) (string, error) {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(paymentIntentID),
		Amount:        stripe.Int64(amountCents),
		Reason:        stripe.String("requested_by_customer"),
	}
	params.Context = ctx

	stripeRefund, err := refund.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe create refund: %w", err)
	}

	return stripeRefund.ID, nil
}
