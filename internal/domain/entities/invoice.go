package entities

import "time"

// InvoiceStatus represents the invoice lifecycle label.
//
// Domain notes:
//   - In practice the flow is draft -> sent -> paid.
//   - Overdue is an informational/manual label; nothing in the core
//     transitions an invoice to overdue automatically.

type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// DiscountType selects how Discount.Value is interpreted.

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// Discount is an optional invoice-level discount.
//
//   - percentage: Value is 0-100.
//   - fixed: Value is an amount already expressed in minor units; it is
//     applied verbatim and is NOT clamped to the subtotal.
type Discount struct {
	Type  DiscountType `json:"type"`
	Value float64      `json:"value"`
}

// LineItem is a single invoice line. AmountCents is derived: it always
// equals round(Quantity * RateCents) and is recomputed whenever quantity
// or rate changes, never hand-edited.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	RateCents   int64   `json:"rate_cents"`
	AmountCents int64   `json:"amount_cents"`
}

// Party is the from/to block printed on an invoice.
//
// ClientID is a weak reference: the contact fields are a denormalized copy
// taken when the invoice is created, so editing the client later does not
// retroactively change past invoices.
type Party struct {
	ClientID string `json:"client_id,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

// Invoice is the aggregate root synced between the local and remote stores.
//
// The four *Cents fields are derived by the money engine from
// Items/Discount/TaxRate and are never mutated independently.
type Invoice struct {
	ID            string        `json:"id"`
	InvoiceNumber string        `json:"invoice_number"`
	Date          time.Time     `json:"date"`
	DueDate       time.Time     `json:"due_date"`
	Status        InvoiceStatus `json:"status"`
	From          Party         `json:"from"`
	To            Party         `json:"to"`
	Items         []LineItem    `json:"items"`
	CurrencyCode  string        `json:"currency_code"`
	Discount      *Discount     `json:"discount,omitempty"`
	TaxRate       float64       `json:"tax_rate"`

	SubtotalCents       int64 `json:"subtotal_cents"`
	DiscountAmountCents int64 `json:"discount_amount_cents"`
	TaxAmountCents      int64 `json:"tax_amount_cents"`
	TotalCents          int64 `json:"total_cents"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
