// Package money is the monetary calculation engine. All amounts are
// integer minor units ("cents"); every derived step rounds independently
// with round-half-away-from-zero.
package money

import (
	"github.com/shopspring/decimal"

	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/domain/entities"
)

var oneHundred = decimal.NewFromInt(100)

// Totals are the derived invoice amounts in minor units.
type Totals struct {
	SubtotalCents       int64
	DiscountAmountCents int64
	TaxAmountCents      int64
	TotalCents          int64
}

// ComputeLineAmount returns round(quantity * rateCents) in minor units.
// Quantity may be fractional (e.g. 1.5 hours). Quantity <= 0 is permitted;
// validation is a caller concern.
func ComputeLineAmount(quantity float64, rateCents int64) int64 {
	return decimal.NewFromFloat(quantity).
		Mul(decimal.NewFromInt(rateCents)).
		Round(0).
		IntPart()
}

// ComputeInvoiceTotals derives subtotal, discount, tax and total from the
// line items. Each step rounds to integer minor units before the next step
// consumes it; the piecewise order is load-bearing: recombining the steps
// as one fractional computation can differ by +/-1 minor unit on large
// inputs, which would silently change historical invoice totals.
//
//	subtotal = sum(item.AmountCents)
//	discount = round(subtotal * pct / 100)  |  fixed value verbatim
//	taxable  = subtotal - discount          (may go negative, see below)
//	tax      = round(taxable * taxRate / 100)
//	total    = taxable + tax
//
// A fixed discount is not clamped to the subtotal, so taxable and total
// can go negative when it exceeds the subtotal.
func ComputeInvoiceTotals(items []entities.LineItem, taxRate float64, discount *entities.Discount) Totals {
	var subtotal int64
	for _, item := range items {
		subtotal += item.AmountCents
	}

	var discountAmount int64
	if discount != nil {
		switch discount.Type {
		case entities.DiscountTypePercentage:
			discountAmount = decimal.NewFromInt(subtotal).
				Mul(decimal.NewFromFloat(discount.Value)).
				DivRound(oneHundred, 0).
				IntPart()
		case entities.DiscountTypeFixed:
			// Already minor units. Fractional input rounds like every
			// other derived step so the field stays an integer.
			discountAmount = decimal.NewFromFloat(discount.Value).Round(0).IntPart()
		}
	}

	taxable := subtotal - discountAmount

	taxAmount := decimal.NewFromInt(taxable).
		Mul(decimal.NewFromFloat(taxRate)).
		DivRound(oneHundred, 0).
		IntPart()

	return Totals{
		SubtotalCents:       subtotal,
		DiscountAmountCents: discountAmount,
		TaxAmountCents:      taxAmount,
		TotalCents:          taxable + taxAmount,
	}
}

// RecalculateInvoice recomputes every derived money field on the invoice
// in place: per-line amounts first, then the invoice totals.
func RecalculateInvoice(inv *entities.Invoice) {
	for i := range inv.Items {
		inv.Items[i].AmountCents = ComputeLineAmount(inv.Items[i].Quantity, inv.Items[i].RateCents)
	}
	totals := ComputeInvoiceTotals(inv.Items, inv.TaxRate, inv.Discount)
	inv.SubtotalCents = totals.SubtotalCents
	inv.DiscountAmountCents = totals.DiscountAmountCents
	inv.TaxAmountCents = totals.TaxAmountCents
	inv.TotalCents = totals.TotalCents
}
