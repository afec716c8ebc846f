package request

import (
	"errors"
	"strings"
	"time"

	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/domain/entities"
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/usecase"
)

var (
	ErrInvalidInvoiceDate = errors.New("invalid invoice date")
)

// invoiceDateLayouts are accepted in order. Clients usually send plain
// dates, integrations send RFC 3339 timestamps.
var invoiceDateLayouts = []string{time.RFC3339, "2006-01-02"}

type LineItemRequest struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity" binding:"required"`
	RateCents   int64   `json:"rate_cents"`
}

type PartyRequest struct {
	ClientID string `json:"client_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type DiscountRequest struct {
	Type  string  `json:"type" binding:"required"`
	Value float64 `json:"value"`
}

type InvoiceRequest struct {
	InvoiceNumber string            `json:"invoice_number" binding:"required"`
	Date          string            `json:"date" binding:"required"`
	DueDate       string            `json:"due_date" binding:"required"`
	From          PartyRequest      `json:"from"`
	To            PartyRequest      `json:"to"`
	Items         []LineItemRequest `json:"items"`
	CurrencyCode  string            `json:"currency_code" binding:"required"`
	Discount      *DiscountRequest  `json:"discount"`
	TaxRate       float64           `json:"tax_rate"`
}

func (r InvoiceRequest) ToInput() (usecase.InvoiceInput, error) {
	date, err := parseInvoiceDate(r.Date)
	if err != nil {
		return usecase.InvoiceInput{}, err
	}
	dueDate, err := parseInvoiceDate(r.DueDate)
	if err != nil {
		return usecase.InvoiceInput{}, err
	}

	items := make([]usecase.LineItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, usecase.LineItemInput{
			ID:          strings.TrimSpace(it.ID),
			Description: it.Description,
			Quantity:    it.Quantity,
			RateCents:   it.RateCents,
		})
	}

	var discount *entities.Discount
	if r.Discount != nil {
		discount = &entities.Discount{
			Type:  entities.DiscountType(r.Discount.Type),
			Value: r.Discount.Value,
		}
	}

	return usecase.InvoiceInput{
		InvoiceNumber: strings.TrimSpace(r.InvoiceNumber),
		Date:          date,
		DueDate:       dueDate,
		From:          r.From.toParty(),
		To:            r.To.toParty(),
		ToClientID:    strings.TrimSpace(r.To.ClientID),
		Items:         items,
		CurrencyCode:  strings.ToUpper(strings.TrimSpace(r.CurrencyCode)),
		Discount:      discount,
		TaxRate:       r.TaxRate,
	}, nil
}

func (p PartyRequest) toParty() entities.Party {
	return entities.Party{
		ClientID: strings.TrimSpace(p.ClientID),
		Name:     strings.TrimSpace(p.Name),
		Email:    strings.TrimSpace(p.Email),
		Phone:    strings.TrimSpace(p.Phone),
		Address:  strings.TrimSpace(p.Address),
	}
}

func parseInvoiceDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	for _, layout := range invoiceDateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidInvoiceDate
}
