// Package calc is the pure calculation engine: every derived amount on an
// invoice is recomputed from the line items and tax rate on each call.
// Values are plain float64 arithmetic with no rounding; rounding is a
// presentation concern. Negative quantities and prices are not clamped;
// upstream input coercion already maps unparsable entry to 0.
package calc

import "github.com/andy/billfold/internal/domain"

// Totals bundles the derived amounts for one invoice snapshot
type Totals struct {
	Subtotal  float64
	Tax       float64
	Total     float64
	AmountDue float64
}

// ItemTotal returns quantity * unit price for one line item
func ItemTotal(item domain.LineItem) float64 {
	return float64(item.Quantity) * item.UnitPrice
}

// Subtotal sums ItemTotal over the items in order; an empty slice sums to 0
func Subtotal(items []domain.LineItem) float64 {
	var sum float64
	for _, item := range items {
		sum += ItemTotal(item)
	}
	return sum
}

// Tax returns the tax amount for a subtotal at the given percentage rate
func Tax(subtotal, taxRatePercent float64) float64 {
	return subtotal * taxRatePercent / 100
}

// Total returns subtotal plus tax for the given items and rate
func Total(items []domain.LineItem, taxRatePercent float64) float64 {
	subtotal := Subtotal(items)
	return subtotal + Tax(subtotal, taxRatePercent)
}

// AmountDue returns the balance after an advance payment, floored at zero.
// An advance larger than the total never produces a negative due amount.
func AmountDue(total, advancePaid float64) float64 {
	due := total - advancePaid
	if due < 0 {
		return 0
	}
	return due
}

// Compute derives all totals from an invoice snapshot. AmountDue equals
// Total unless the advance payment flag is set.
func Compute(inv *domain.Invoice) Totals {
	subtotal := Subtotal(inv.Items)
	tax := Tax(subtotal, inv.TaxRate)
	total := subtotal + tax

	due := total
	if inv.IsAdvancePayment {
		due = AmountDue(total, inv.AdvancePaymentAmount)
	}

	return Totals{
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     total,
		AmountDue: due,
	}
}
