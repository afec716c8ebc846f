package response

import (
	"time"

	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/domain/entities"
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/domain/money"
)

type LineItemResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	RateCents   int64   `json:"rate_cents"`
	AmountCents int64   `json:"amount_cents"`
	Amount      string  `json:"amount"`
}

type PartyResponse struct {
	ClientID string `json:"client_id,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

type DiscountResponse struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

type InvoiceResponse struct {
	ID            string             `json:"id"`
	InvoiceNumber string             `json:"invoice_number"`
	Date          time.Time          `json:"date"`
	DueDate       time.Time          `json:"due_date"`
	Status        string             `json:"status"`
	From          PartyResponse      `json:"from"`
	To            PartyResponse      `json:"to"`
	Items         []LineItemResponse `json:"items"`
	CurrencyCode  string             `json:"currency_code"`
	Discount      *DiscountResponse  `json:"discount,omitempty"`
	TaxRate       float64            `json:"tax_rate"`

	SubtotalCents       int64 `json:"subtotal_cents"`
	DiscountAmountCents int64 `json:"discount_amount_cents"`
	TaxAmountCents      int64 `json:"tax_amount_cents"`
	TotalCents          int64 `json:"total_cents"`

	// Display strings rendered with the invoice currency, e.g. "$1,050.00".
	Subtotal       string `json:"subtotal"`
	DiscountAmount string `json:"discount_amount"`
	TaxAmount      string `json:"tax_amount"`
	Total          string `json:"total"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	items := make([]LineItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, LineItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			RateCents:   it.RateCents,
			AmountCents: it.AmountCents,
			Amount:      formatCents(it.AmountCents, inv.CurrencyCode),
		})
	}

	var discount *DiscountResponse
	if inv.Discount != nil {
		discount = &DiscountResponse{Type: string(inv.Discount.Type), Value: inv.Discount.Value}
	}

	return InvoiceResponse{
		ID:                  inv.ID,
		InvoiceNumber:       inv.InvoiceNumber,
		Date:                inv.Date,
		DueDate:             inv.DueDate,
		Status:              string(inv.Status),
		From:                fromParty(inv.From),
		To:                  fromParty(inv.To),
		Items:               items,
		CurrencyCode:        inv.CurrencyCode,
		Discount:            discount,
		TaxRate:             inv.TaxRate,
		SubtotalCents:       inv.SubtotalCents,
		DiscountAmountCents: inv.DiscountAmountCents,
		TaxAmountCents:      inv.TaxAmountCents,
		TotalCents:          inv.TotalCents,
		Subtotal:            formatCents(inv.SubtotalCents, inv.CurrencyCode),
		DiscountAmount:      formatCents(inv.DiscountAmountCents, inv.CurrencyCode),
		TaxAmount:           formatCents(inv.TaxAmountCents, inv.CurrencyCode),
		Total:               formatCents(inv.TotalCents, inv.CurrencyCode),
		CreatedAt:           inv.CreatedAt,
		UpdatedAt:           inv.UpdatedAt,
	}
}

func FromInvoices(invoices []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, FromInvoice(inv))
	}
	return out
}

func fromParty(p entities.Party) PartyResponse {
	return PartyResponse{
		ClientID: p.ClientID,
		Name:     p.Name,
		Email:    p.Email,
		Phone:    p.Phone,
		Address:  p.Address,
	}
}

// formatCents degrades to empty on unknown currency codes; invoices are
// validated on write so that only happens for hand-edited stored data.
func formatCents(cents int64, currencyCode string) string {
	s, err := money.FormatAmount(cents, currencyCode)
	if err != nil {
		return ""
	}
	return s
}
