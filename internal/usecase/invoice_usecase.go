package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/domain/entities"
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/domain/money"
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/usecase/interfaces"
)

var (
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrInvalidInvoiceID     = errors.New("invalid invoice id")
	ErrInvalidInvoiceNumber = errors.New("invalid invoice number")
	ErrInvalidInvoiceDates  = errors.New("due date must not precede invoice date")
	ErrInvalidTaxRate       = errors.New("tax rate must be between 0 and 100")
	ErrInvalidDiscount      = errors.New("invalid discount")
)

// LineItemInput carries caller-provided line fields. AmountCents is never
// accepted from the caller; the money engine derives it.
type LineItemInput struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	RateCents   int64   `json:"rate_cents"`
}

// InvoiceInput is the full set of draft fields. Updates replace them
// wholesale; there are no partial-patch semantics.
type InvoiceInput struct {
	InvoiceNumber string
	Date          time.Time
	DueDate       time.Time
	From          entities.Party
	To            entities.Party
	ToClientID    string
	Items         []LineItemInput
	CurrencyCode  string
	Discount      *entities.Discount
	TaxRate       float64
}

// IInvoiceUseCase exposes invoice operations.
//
// Every mutation writes the local store synchronously (the caller always
// observes the new state immediately) and then hands the change to the
// sync coordinator as a background push.

type IInvoiceUseCase interface {
	Create(ctx context.Context, input InvoiceInput) (entities.Invoice, error)
	Update(ctx context.Context, id string, input InvoiceInput) (entities.Invoice, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context) ([]entities.Invoice, error)
	MarkSent(ctx context.Context, id string) (entities.Invoice, error)
	MarkPaid(ctx context.Context, id string) (entities.Invoice, error)
	MarkOverdue(ctx context.Context, id string) (entities.Invoice, error)
}

type InvoiceUseCase struct {
	local interfaces.ILocalStore
	sync  interfaces.ISyncNotifier
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(local interfaces.ILocalStore, sync interfaces.ISyncNotifier) *InvoiceUseCase {
	return &InvoiceUseCase{local: local, sync: sync}
}

func (u *InvoiceUseCase) Create(ctx context.Context, input InvoiceInput) (entities.Invoice, error) {
	if err := validateInvoiceInput(input); err != nil {
		return entities.Invoice{}, err
	}

	to := input.To
	if clientID := strings.TrimSpace(input.ToClientID); clientID != "" {
		client, err := u.local.GetClient(clientID)
		if err != nil {
			return entities.Invoice{}, err
		}
		if client.ID == "" {
			return entities.Invoice{}, ErrClientNotFound
		}
		// Denormalized copy taken now; later client edits do not change
		// this invoice.
		to = entities.Party{
			ClientID: client.ID,
			Name:     client.Name,
			Email:    client.Email,
			Phone:    client.Phone,
			Address:  client.Address,
		}
		client.LastUsed = time.Now().UTC()
		client.UpdatedAt = client.LastUsed
		if err := u.local.PutClient(client); err != nil {
			return entities.Invoice{}, err
		}
		u.sync.PushUpsert(entities.EntityTypeClient, client.ID, client)
	}

	from := input.From
	if from.Name == "" {
		if company, err := u.local.GetCompanySettings(); err == nil {
			from = entities.Party{
				Name:    company.Name,
				Email:   company.Email,
				Phone:   company.Phone,
				Address: company.Address,
			}
		}
	}

	now := time.Now().UTC()
	inv := entities.Invoice{
		ID:            uuid.NewString(),
		InvoiceNumber: strings.TrimSpace(input.InvoiceNumber),
		Date:          input.Date,
		DueDate:       input.DueDate,
		Status:        entities.InvoiceStatusDraft,
		From:          from,
		To:            to,
		Items:         buildItems(input.Items),
		CurrencyCode:  input.CurrencyCode,
		Discount:      input.Discount,
		TaxRate:       input.TaxRate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	money.RecalculateInvoice(&inv)

	if err := u.local.PutInvoice(inv); err != nil {
		return entities.Invoice{}, err
	}
	u.sync.PushUpsert(entities.EntityTypeInvoice, inv.ID, inv)
	u.recordActivity(entities.ActivityActionCreated, inv.ID, fmt.Sprintf("Invoice %s created", inv.InvoiceNumber))
	return inv, nil
}

func (u *InvoiceUseCase) Update(ctx context.Context, id string, input InvoiceInput) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	if err := validateInvoiceInput(input); err != nil {
		return entities.Invoice{}, err
	}

	existing, err := u.local.GetInvoice(id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if existing.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}

	// Full replacement of the draft fields; identity, status and
	// creation time survive.
	existing.InvoiceNumber = strings.TrimSpace(input.InvoiceNumber)
	existing.Date = input.Date
	existing.DueDate = input.DueDate
	existing.From = input.From
	existing.To = input.To
	existing.Items = buildItems(input.Items)
	existing.CurrencyCode = input.CurrencyCode
	existing.Discount = input.Discount
	existing.TaxRate = input.TaxRate
	existing.UpdatedAt = time.Now().UTC()
	money.RecalculateInvoice(&existing)

	if err := u.local.PutInvoice(existing); err != nil {
		return entities.Invoice{}, err
	}
	u.sync.PushUpsert(entities.EntityTypeInvoice, existing.ID, existing)
	u.recordActivity(entities.ActivityActionUpdated, existing.ID, fmt.Sprintf("Invoice %s updated", existing.InvoiceNumber))
	return existing, nil
}

func (u *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInvoiceID
	}
	existing, err := u.local.GetInvoice(id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrInvoiceNotFound
	}
	if err := u.local.DeleteInvoice(id); err != nil {
		return err
	}
	u.sync.PushDelete(entities.EntityTypeInvoice, id)
	u.recordActivity(entities.ActivityActionDeleted, id, fmt.Sprintf("Invoice %s deleted", existing.InvoiceNumber))
	return nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	inv, err := u.local.GetInvoice(id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) List(ctx context.Context) ([]entities.Invoice, error) {
	return u.local.ListInvoices()
}

func (u *InvoiceUseCase) MarkSent(ctx context.Context, id string) (entities.Invoice, error) {
	return u.setStatus(id, entities.InvoiceStatusSent)
}

func (u *InvoiceUseCase) MarkPaid(ctx context.Context, id string) (entities.Invoice, error) {
	return u.setStatus(id, entities.InvoiceStatusPaid)
}

// MarkOverdue applies the overdue label. It is informational and manual;
// the core never transitions an invoice here on its own.
func (u *InvoiceUseCase) MarkOverdue(ctx context.Context, id string) (entities.Invoice, error) {
	return u.setStatus(id, entities.InvoiceStatusOverdue)
}

func (u *InvoiceUseCase) setStatus(id string, status entities.InvoiceStatus) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	inv, err := u.local.GetInvoice(id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	inv.Status = status
	inv.UpdatedAt = time.Now().UTC()
	if err := u.local.PutInvoice(inv); err != nil {
		return entities.Invoice{}, err
	}
	u.sync.PushUpsert(entities.EntityTypeInvoice, inv.ID, inv)
	u.recordActivity(entities.ActivityActionUpdated, inv.ID, fmt.Sprintf("Invoice %s marked %s", inv.InvoiceNumber, status))
	return inv, nil
}

func (u *InvoiceUseCase) recordActivity(action entities.ActivityAction, entityID, description string) {
	recordActivity(u.local, u.sync, action, entities.EntityTypeInvoice, entityID, description)
}

func buildItems(inputs []LineItemInput) []entities.LineItem {
	items := make([]entities.LineItem, 0, len(inputs))
	for _, in := range inputs {
		id := strings.TrimSpace(in.ID)
		if id == "" {
			id = uuid.NewString()
		}
		items = append(items, entities.LineItem{
			ID:          id,
			Description: in.Description,
			Quantity:    in.Quantity,
			RateCents:   in.RateCents,
		})
	}
	return items
}

func validateInvoiceInput(input InvoiceInput) error {
	if strings.TrimSpace(input.InvoiceNumber) == "" {
		return ErrInvalidInvoiceNumber
	}
	if input.DueDate.Before(input.Date) {
		return ErrInvalidInvoiceDates
	}
	if input.TaxRate < 0 || input.TaxRate > 100 {
		return ErrInvalidTaxRate
	}
	if d := input.Discount; d != nil {
		if d.Value < 0 {
			return ErrInvalidDiscount
		}
		switch d.Type {
		case entities.DiscountTypePercentage:
			if d.Value > 100 {
				return ErrInvalidDiscount
			}
		case entities.DiscountTypeFixed:
		default:
			return ErrInvalidDiscount
		}
	}
	if _, err := money.LookupCurrency(input.CurrencyCode); err != nil {
		return err
	}
	return nil
}
