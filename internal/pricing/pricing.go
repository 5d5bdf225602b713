// Package pricing is the single authoritative pricing engine. It maps an
// immutable snapshot of the service configuration and the selected items to
// the full set of monetary totals shown in the live summary and printed on
// the final proposal. Compute is pure and total: every output is a
// non-negative, finite number for any input.
package pricing

import (
	"math"

	"github.com/lendaria/calculadoria/internal/catalog"
	"github.com/lendaria/calculadoria/internal/money"
)

// InterestRatePerInstallment is the monthly credit-card interest applied
// beyond the first installment.
const InterestRatePerInstallment = 0.02

// Config is the pricing-relevant service configuration.
type Config struct {
	Service          catalog.Service
	BaseValue        float64
	Quantity         int
	Recurring        bool
	RecurringValue   float64
	PaymentMethod    catalog.PaymentMethod
	Installments     int
	CashDiscount     float64
	ContractDiscount float64
	ContractDuration catalog.ContractDuration
	Theme            catalog.ColorTheme
}

// Result is the derived pricing output. It is recomputed from scratch on
// every input change and never mutated.
type Result struct {
	BaseTotal        float64
	ItemsTotal       float64
	RecurringTotal   float64
	DiscountAmount   float64
	InstallmentValue float64
	ProjectTotal     float64
	TotalValue       float64
}

// Compute evaluates the pricing rules in their fixed order: base total,
// one-time items total, recurring total, discount, project total,
// installment value and the headline total value.
func Compute(cfg Config, items []catalog.IncludedItem) Result {
	var r Result
	r.BaseTotal = baseTotal(cfg)
	r.ItemsTotal = itemsTotal(items)
	r.RecurringTotal = recurringTotal(cfg, items)
	r.DiscountAmount = discountAmount(cfg, r.BaseTotal)
	r.ProjectTotal = projectTotal(cfg, r.BaseTotal, r.ItemsTotal, r.DiscountAmount)
	r.InstallmentValue = installmentValue(cfg, r.ProjectTotal)
	r.TotalValue = r.ProjectTotal + r.RecurringTotal
	return r
}

// baseTotal is unit base value times quantity. A non-displayable base value
// contributes nothing.
func baseTotal(cfg Config) float64 {
	if !money.Displayable(cfg.BaseValue) {
		return 0
	}
	return cfg.BaseValue * float64(effectiveQuantity(cfg))
}

// itemsTotal sums the one-time items. Free items ("bonus") contribute 0.
func itemsTotal(items []catalog.IncludedItem) float64 {
	var sum float64
	for _, item := range items {
		if !item.IsRecurring && money.Displayable(item.Price) {
			sum += item.Price
		}
	}
	return sum
}

// recurringTotal sums required and optional recurring items per unit, then
// scales by quantity. The recurring flag gates the whole amount.
func recurringTotal(cfg Config, items []catalog.IncludedItem) float64 {
	if !cfg.Recurring {
		return 0
	}

	var required, optional float64
	for _, item := range items {
		if !item.IsRecurring || !money.Displayable(item.Price) {
			continue
		}
		if item.Required {
			required += item.Price
		} else {
			optional += item.Price
		}
	}

	return (required + optional) * float64(effectiveQuantity(cfg))
}

// discountAmount applies the cash and contract discounts against the base
// total only. The cash discount requires an instant-settlement method.
func discountAmount(cfg Config, baseTotal float64) float64 {
	if !money.Displayable(baseTotal) {
		return 0
	}

	var discount float64
	if cfg.PaymentMethod.AllowsCashDiscount() && cfg.CashDiscount > 0 {
		discount += baseTotal * cfg.CashDiscount
	}
	if cfg.ContractDiscount > 0 {
		discount += baseTotal * cfg.ContractDiscount
	}

	return math.Max(0, discount)
}

// projectTotal is the one-time charge: base plus one-time items, with
// either installment interest or the discount applied. Interest and
// discount are mutually exclusive by payment path.
func projectTotal(cfg Config, baseTotal, itemsTotal, discount float64) float64 {
	if !money.Displayable(baseTotal) {
		return 0
	}

	total := baseTotal + itemsTotal
	if chargesInterest(cfg) {
		total *= 1 + interestRate(cfg)
	} else {
		total -= discount
	}

	return math.Max(0, total)
}

// installmentValue splits the interest-bearing project total across the
// installments. The project total already carries the interest, so it is
// divided as-is rather than re-applying the multiplier.
func installmentValue(cfg Config, projectTotal float64) float64 {
	if !chargesInterest(cfg) || !money.Displayable(projectTotal) {
		return 0
	}
	return math.Max(1, projectTotal/float64(cfg.Installments))
}

func chargesInterest(cfg Config) bool {
	return cfg.PaymentMethod == catalog.PaymentCreditCard && cfg.Installments > 1
}

func interestRate(cfg Config) float64 {
	return InterestRatePerInstallment * float64(cfg.Installments-1)
}

func effectiveQuantity(cfg Config) int {
	if cfg.Quantity < 1 {
		return 1
	}
	return cfg.Quantity
}
