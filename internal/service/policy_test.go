package service

import (
	"guestpost-marketplace/internal/model"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDecayMultiplier(t *testing.T) {
	cases := []struct {
		ageDays    int
		multiplier decimal.Decimal
		note       string
	}{
		{0, decimal.NewFromInt(1), "Standard refund policy applied."},
		{30, decimal.NewFromInt(1), "Standard refund policy applied."},
		{31, decimal.NewFromFloat(0.90), "Order is over 30 days old. 10% administrative fee applied."},
		{60, decimal.NewFromFloat(0.90), "Order is over 30 days old. 10% administrative fee applied."},
		{61, decimal.NewFromFloat(0.80), "Order is over 60 days old. 20% administrative fee applied."},
		{365, decimal.NewFromFloat(0.80), "Order is over 60 days old. 20% administrative fee applied."},
	}

	for _, tc := range cases {
		multiplier, note := decayMultiplier(tc.ageDays)
		if !multiplier.Equal(tc.multiplier) {
			t.Errorf("age %d: multiplier = %s, want %s", tc.ageDays, multiplier, tc.multiplier)
		}
		if note != tc.note {
			t.Errorf("age %d: note = %q, want %q", tc.ageDays, note, tc.note)
		}
	}
}

func TestRefundPolicyForGuestPost(t *testing.T) {
	cases := []struct {
		daysOld    int
		maxPercent int
		policyName string
	}{
		{0, 100, "Grace Period"},
		{7, 100, "Grace Period"},
		{8, 90, "Standard Refund"},
		{30, 90, "Standard Refund"},
		{31, 80, "Extended Timeline"},
		{60, 80, "Extended Timeline"},
		{61, 50, "Late Cancellation"},
	}

	for _, tc := range cases {
		policy := RefundPolicyFor(model.OrderTypeGuestPost, tc.daysOld)
		if policy.MaxRefundPercentage != tc.maxPercent {
			t.Errorf("day %d: max = %d, want %d", tc.daysOld, policy.MaxRefundPercentage, tc.maxPercent)
		}
		if policy.PolicyName != tc.policyName {
			t.Errorf("day %d: name = %q, want %q", tc.daysOld, policy.PolicyName, tc.policyName)
		}
		if len(policy.Terms) == 0 {
			t.Errorf("day %d: policy has no terms", tc.daysOld)
		}
	}
}

func TestRefundPolicyForOtherTypes(t *testing.T) {
	for _, daysOld := range []int{0, 45, 200} {
		policy := RefundPolicyFor(model.OrderTypeNicheEdit, daysOld)
		if policy.MaxRefundPercentage != 100 || policy.PolicyName != "Standard Policy" {
			t.Errorf("day %d: got %+v, want flat standard policy", daysOld, policy)
		}
	}
}
