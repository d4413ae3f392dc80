package service

import (
	"guestpost-marketplace/internal/model"

	"github.com/shopspring/decimal"
)

var (
	multiplierFull   = decimal.NewFromInt(1)
	multiplierOver30 = decimal.NewFromFloat(0.90)
	multiplierOver60 = decimal.NewFromFloat(0.80)
	bulkDiscountRate = decimal.NewFromFloat(0.05)
)

const bulkDiscountMinOrders = 5

// decayMultiplier returns the administrative-fee multiplier for an
// order of the given age in whole days, with the note shown to
// reviewers. Applied once to the order-level aggregate, not per item.
func decayMultiplier(ageDays int) (decimal.Decimal, string) {
	switch {
	case ageDays > 60:
		return multiplierOver60, "Order is over 60 days old. 20% administrative fee applied."
	case ageDays > 30:
		return multiplierOver30, "Order is over 30 days old. 10% administrative fee applied."
	default:
		return multiplierFull, "Standard refund policy applied."
	}
}

// RefundPolicyFor returns the advisory policy descriptor for an order
// type and age. Display-only: the numeric suggestion applies the decay
// multiplier alone, and the stricter caps here are intentionally not
// folded into it, so the two cannot silently double-discount. Whether
// the late-cancellation cap should also bound the suggested amount is
// an open product question; until it is answered the descriptor stays
// advisory.
func RefundPolicyFor(orderType string, daysOld int) model.RefundPolicy {
	if orderType != model.OrderTypeGuestPost {
		return model.RefundPolicy{
			MaxRefundPercentage: 100,
			PolicyName:          "Standard Policy",
			Terms: []string{
				"Full refund available for incomplete work.",
			},
		}
	}

	switch {
	case daysOld <= 7:
		return model.RefundPolicy{
			MaxRefundPercentage: 100,
			PolicyName:          "Grace Period",
			Terms: []string{
				"Full refund available within 7 days of purchase.",
				"No administrative fee.",
			},
		}
	case daysOld <= 30:
		return model.RefundPolicy{
			MaxRefundPercentage: 90,
			PolicyName:          "Standard Refund",
			Terms: []string{
				"Refund of uncompleted work within 30 days.",
				"Completed placements are non-refundable.",
			},
		}
	case daysOld <= 60:
		return model.RefundPolicy{
			MaxRefundPercentage: 80,
			PolicyName:          "Extended Timeline",
			Terms: []string{
				"Refund of uncompleted work within 60 days.",
				"Administrative fee applies.",
			},
		}
	default:
		return model.RefundPolicy{
			MaxRefundPercentage: 50,
			PolicyName:          "Late Cancellation",
			Terms: []string{
				"Orders older than 60 days require manual review.",
				"Executive approval required for any refund.",
			},
		}
	}
}
