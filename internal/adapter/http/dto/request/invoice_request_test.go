package request

import (
	"errors"
	"testing"
	"time"
)

func TestInvoiceRequest_ToInput(t *testing.T) {
	r := InvoiceRequest{
		InvoiceNumber: " INV-001 ",
		Date:          "2026-08-01",
		DueDate:       "2026-08-31T00:00:00Z",
		To:            PartyRequest{ClientID: " cli-1 ", Name: " Big Corp "},
		Items: []LineItemRequest{
			{ID: " li-1 ", Description: "Design work", Quantity: 2, RateCents: 15000},
		},
		CurrencyCode: " usd ",
		Discount:     &DiscountRequest{Type: "percentage", Value: 10},
		TaxRate:      21,
	}

	input, err := r.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if input.InvoiceNumber != "INV-001" {
		t.Fatalf("expected trimmed number, got %q", input.InvoiceNumber)
	}
	if !input.Date.Equal(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %v", input.Date)
	}
	if !input.DueDate.Equal(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected due date: %v", input.DueDate)
	}
	if input.CurrencyCode != "USD" {
		t.Fatalf("expected uppercased currency, got %q", input.CurrencyCode)
	}
	if input.ToClientID != "cli-1" || input.To.Name != "Big Corp" {
		t.Fatalf("unexpected to fields: %+v", input.To)
	}
	if len(input.Items) != 1 || input.Items[0].ID != "li-1" || input.Items[0].RateCents != 15000 {
		t.Fatalf("unexpected items: %+v", input.Items)
	}
	if input.Discount == nil || input.Discount.Value != 10 {
		t.Fatalf("unexpected discount: %+v", input.Discount)
	}
}

func TestInvoiceRequest_ToInput_BadDate(t *testing.T) {
	r := InvoiceRequest{
		InvoiceNumber: "INV-001",
		Date:          "08/01/2026",
		DueDate:       "2026-08-31",
		CurrencyCode:  "USD",
	}
	if _, err := r.ToInput(); !errors.Is(err, ErrInvalidInvoiceDate) {
		t.Fatalf("expected ErrInvalidInvoiceDate, got %v", err)
	}

	r.Date = "2026-08-01"
	r.DueDate = "soon"
	if _, err := r.ToInput(); !errors.Is(err, ErrInvalidInvoiceDate) {
		t.Fatalf("expected ErrInvalidInvoiceDate, got %v", err)
	}
}
