package response

import (
	"testing"
	"time"

	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/domain/entities"
)

func TestFromInvoice(t *testing.T) {
	now := time.Now().UTC()
	inv := entities.Invoice{
		ID:            "inv-1",
		InvoiceNumber: "INV-001",
		Status:        entities.InvoiceStatusSent,
		To:            entities.Party{ClientID: "cli-1", Name: "Big Corp"},
		Items: []entities.LineItem{
			{ID: "li-1", Description: "Design work", Quantity: 2, RateCents: 15000, AmountCents: 30000},
		},
		CurrencyCode:        "USD",
		Discount:            &entities.Discount{Type: entities.DiscountTypePercentage, Value: 10},
		TaxRate:             10,
		SubtotalCents:       30000,
		DiscountAmountCents: 3000,
		TaxAmountCents:      2700,
		TotalCents:          29700,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	res := FromInvoice(inv)
	if res.ID != "inv-1" || res.Status != "sent" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.To.ClientID != "cli-1" || res.To.Name != "Big Corp" {
		t.Fatalf("unexpected to party: %+v", res.To)
	}
	if res.Subtotal != "$300.00" || res.DiscountAmount != "$30.00" || res.TaxAmount != "$27.00" || res.Total != "$297.00" {
		t.Fatalf("unexpected display strings: %+v", res)
	}
	if len(res.Items) != 1 || res.Items[0].Amount != "$300.00" {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	if res.Discount == nil || res.Discount.Type != "percentage" {
		t.Fatalf("unexpected discount: %+v", res.Discount)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromInvoice_UnknownCurrencyDegrades(t *testing.T) {
	res := FromInvoice(entities.Invoice{ID: "inv-1", CurrencyCode: "XXX", TotalCents: 100})
	if res.Total != "" {
		t.Fatalf("expected empty display string for unknown currency, got %q", res.Total)
	}
	if res.TotalCents != 100 {
		t.Fatalf("raw cents must survive, got %d", res.TotalCents)
	}
}
