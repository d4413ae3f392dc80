package model

import "github.com/shopspring/decimal"

// RefundItemBreakdown is the per-submission line of a refund calculation.
type RefundItemBreakdown struct {
	SubmissionID     string          `json:"submission_id"`
	Domain           string          `json:"domain"`
	SubmissionStatus string          `json:"submission_status"`
	Completed        bool            `json:"completed"`
	RetailPriceCents int64           `json:"retail_price_cents"`
	CompletionValue  decimal.Decimal `json:"completion_value"`
	RefundableValue  decimal.Decimal `json:"refundable_value"`
}

// RefundPolicy is the advisory policy descriptor shown next to a
// calculation. It is display-only and is never multiplied into the
// suggested amount.
type RefundPolicy struct {
	MaxRefundPercentage int      `json:"max_refund_percentage"`
	PolicyName          string   `json:"policy_name"`
	Terms               []string `json:"terms"`
}

// RefundCalculation is the suggested-refund result for one order.
// It is recomputed on every request and never persisted.
type RefundCalculation struct {
	OrderID              string                `json:"order_id"`
	SuggestedAmountCents int64                 `json:"suggested_amount_cents"`
	TotalValue           decimal.Decimal       `json:"total_value"`
	CompletedValue       decimal.Decimal       `json:"completed_value"`
	RefundableValue      decimal.Decimal       `json:"refundable_value"`
	CompletionPercentage int                   `json:"completion_percentage"`
	CompletedItems       int                   `json:"completed_items"`
	TotalItems           int                   `json:"total_items"`
	OrderAgeDays         int                   `json:"order_age_days"`
	FeeMultiplier        decimal.Decimal       `json:"fee_multiplier"`
	PolicyNote           string                `json:"policy_note"`
	Reason               string                `json:"reason"`
	PolicyDetails        RefundPolicy          `json:"policy_details"`
	Items                []RefundItemBreakdown `json:"items"`
}

// BulkRefundEntry pairs an order id with its calculation inside a
// bulk result.
type BulkRefundEntry struct {
	OrderID     string             `json:"order_id"`
	Calculation *RefundCalculation `json:"calculation"`
}

// BulkRefundResult is the outcome of running the calculation over a
// batch of orders, with the batch discount already taken off the total.
type BulkRefundResult struct {
	Orders              []BulkRefundEntry `json:"orders"`
	TotalSuggestedCents int64             `json:"total_suggested_cents"`
	BulkDiscountCents   int64             `json:"bulk_discount_cents"`
}
