package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/domain/entities"
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/domain/money"
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound           = errors.New("payment not found")
	ErrInvalidPaymentInvoiceID   = errors.New("invalid invoice_id")
	ErrInvalidGatewayPayload     = errors.New("invalid payment gateway payload")
	ErrInvoiceNotSent            = errors.New("invoice not sent")
	ErrPaymentGatewayUnavailable = errors.New("payment gateway not configured")
)

// IPaymentUseCase encapsulates "charge a sent invoice through the gateway
// and mark it paid".

type IPaymentUseCase interface {
	CreateForInvoice(ctx context.Context, invoiceID string, gatewayPayload json.RawMessage) (entities.Payment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	local    interfaces.ILocalStore
	invoices IInvoiceUseCase
	gateway  interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(local interfaces.ILocalStore, invoices IInvoiceUseCase, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{local: local, invoices: invoices, gateway: gateway}
}

// CreateForInvoice charges the invoice total through the gateway. The
// source of truth for the amount is the invoice's derived TotalCents, not
// the caller payload. On success the invoice is marked paid.
func (u *PaymentUseCase) CreateForInvoice(ctx context.Context, invoiceID string, gatewayPayload json.RawMessage) (entities.Payment, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.Payment{}, ErrInvalidPaymentInvoiceID
	}
	if u.gateway == nil {
		return entities.Payment{}, ErrPaymentGatewayUnavailable
	}
	if len(gatewayPayload) == 0 {
		gatewayPayload = json.RawMessage("{}")
	}
	if !json.Valid(gatewayPayload) {
		return entities.Payment{}, ErrInvalidGatewayPayload
	}

	inv, err := u.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.Payment{}, err
	}
	if inv.Status != entities.InvoiceStatusSent && inv.Status != entities.InvoiceStatusOverdue {
		return entities.Payment{}, ErrInvoiceNotSent
	}

	// Link the charge to the invoice for reconciliation and force the
	// amount from the derived total.
	var reqMap map[string]any
	if err := json.Unmarshal(gatewayPayload, &reqMap); err != nil {
		return entities.Payment{}, ErrInvalidGatewayPayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = inv.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Invoice %s", inv.InvoiceNumber)
	}
	info, err := money.LookupCurrency(inv.CurrencyCode)
	if err != nil {
		return entities.Payment{}, err
	}
	reqMap["transaction_amount"] = minorUnitsToMajor(inv.TotalCents, info.Decimals)
	if b, err := json.Marshal(reqMap); err == nil {
		gatewayPayload = b
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, gatewayPayload)
	if err != nil {
		return entities.Payment{}, err
	}

	status := entities.PaymentStatusApproved
	if providerStatus != "" && providerStatus != "approved" {
		status = entities.PaymentStatusDenied
	}

	var parsed map[string]interface{}
	_ = json.Unmarshal(providerResp, &parsed)

	p := entities.Payment{
		ID:                 providerPaymentID,
		InvoiceID:          inv.ID,
		AmountCents:        inv.TotalCents,
		Currency:           inv.CurrencyCode,
		Date:               time.Now().UTC(),
		Status:             status,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	if err := u.local.PutPayment(p); err != nil {
		return entities.Payment{}, err
	}

	if status == entities.PaymentStatusApproved {
		if _, err := u.invoices.MarkPaid(ctx, inv.ID); err != nil {
			return entities.Payment{}, err
		}
	}
	return p, nil
}

func (u *PaymentUseCase) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, ErrInvalidPaymentInvoiceID
	}
	return u.local.ListPaymentsByInvoiceID(invoiceID)
}

// minorUnitsToMajor converts cents to the major-unit float the gateway
// expects. Only used at the gateway boundary; everything internal stays in
// integer minor units.
func minorUnitsToMajor(cents int64, decimals int32) float64 {
	f, _ := decimal.New(cents, -decimals).Float64()
	return f
}
