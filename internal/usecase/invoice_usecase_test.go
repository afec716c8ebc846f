package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/domain/entities"
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/domain/money"
	mock_interfaces "github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validInvoiceInput() InvoiceInput {
	date := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	return InvoiceInput{
		InvoiceNumber: "INV-001",
		Date:          date,
		DueDate:       date.AddDate(0, 0, 30),
		From:          entities.Party{Name: "Acme Studio"},
		To:            entities.Party{Name: "Big Corp"},
		Items: []LineItemInput{
			{Description: "Design work", Quantity: 2, RateCents: 15000},
		},
		CurrencyCode: "USD",
		TaxRate:      10,
	}
}

func TestInvoiceUseCase_Create(t *testing.T) {
	t.Run("valid input derives totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		local := mock_interfaces.NewMockILocalStore(ctrl)
		notifier := mock_interfaces.NewMockISyncNotifier(ctrl)

		var stored entities.Invoice
		local.EXPECT().PutInvoice(gomock.Any()).DoAndReturn(func(inv entities.Invoice) error {
			stored = inv
			return nil
		})
		local.EXPECT().PutActivity(gomock.Any()).Return(nil)
		notifier.EXPECT().PushUpsert(entities.EntityTypeInvoice, gomock.Any(), gomock.Any())
		notifier.EXPECT().PushUpsert(entities.EntityTypeActivity, gomock.Any(), gomock.Any())

		uc := NewInvoiceUseCase(local, notifier)
		inv, err := uc.Create(context.Background(), validInvoiceInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.ID == "" {
			t.Fatalf("expected generated id")
		}
		if inv.Status != entities.InvoiceStatusDraft {
			t.Fatalf("expected draft, got %s", inv.Status)
		}
		// 2 x 150.00 = 300.00; +10% tax = 330.00
		if inv.SubtotalCents != 30000 || inv.TaxAmountCents != 3000 || inv.TotalCents != 33000 {
			t.Fatalf("unexpected totals: %d %d %d", inv.SubtotalCents, inv.TaxAmountCents, inv.TotalCents)
		}
		if stored.ID != inv.ID {
			t.Fatalf("stored invoice does not match returned one")
		}
	})

	t.Run("to_client_id denormalizes the client and touches last_used", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		local := mock_interfaces.NewMockILocalStore(ctrl)
		notifier := mock_interfaces.NewMockISyncNotifier(ctrl)

		client := entities.Client{ID: "cli-1", Name: "Big Corp", Email: "ap@bigcorp.test"}
		local.EXPECT().GetClient("cli-1").Return(client, nil)
		local.EXPECT().PutClient(gomock.Any()).DoAndReturn(func(c entities.Client) error {
			if c.LastUsed.IsZero() {
				t.Fatalf("expected last_used to be set")
			}
			return nil
		})
		local.EXPECT().PutInvoice(gomock.Any()).Return(nil)
		local.EXPECT().PutActivity(gomock.Any()).Return(nil)
		notifier.EXPECT().PushUpsert(entities.EntityTypeClient, "cli-1", gomock.Any())
		notifier.EXPECT().PushUpsert(entities.EntityTypeInvoice, gomock.Any(), gomock.Any())
		notifier.EXPECT().PushUpsert(entities.EntityTypeActivity, gomock.Any(), gomock.Any())

		input := validInvoiceInput()
		input.ToClientID = "cli-1"
		input.To = entities.Party{}

		uc := NewInvoiceUseCase(local, notifier)
		inv, err := uc.Create(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.To.ClientID != "cli-1" || inv.To.Name != "Big Corp" || inv.To.Email != "ap@bigcorp.test" {
			t.Fatalf("expected denormalized client party, got %+v", inv.To)
		}
	})

	t.Run("unknown client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		local := mock_interfaces.NewMockILocalStore(ctrl)
		notifier := mock_interfaces.NewMockISyncNotifier(ctrl)

		local.EXPECT().GetClient("missing").Return(entities.Client{}, nil)

		input := validInvoiceInput()
		input.ToClientID = "missing"

		uc := NewInvoiceUseCase(local, notifier)
		if _, err := uc.Create(context.Background(), input); !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("empty from falls back to company settings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		local := mock_interfaces.NewMockILocalStore(ctrl)
		notifier := mock_interfaces.NewMockISyncNotifier(ctrl)

		local.EXPECT().GetCompanySettings().Return(entities.CompanySettings{Name: "Acme Studio", Email: "billing@acme.test"}, nil)
		local.EXPECT().PutInvoice(gomock.Any()).Return(nil)
		local.EXPECT().PutActivity(gomock.Any()).Return(nil)
		notifier.EXPECT().PushUpsert(gomock.Any(), gomock.Any(), gomock.Any()).Times(2)

		input := validInvoiceInput()
		input.From = entities.Party{}

		uc := NewInvoiceUseCase(local, notifier)
		inv, err := uc.Create(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.From.Name != "Acme Studio" || inv.From.Email != "billing@acme.test" {
			t.Fatalf("expected company party, got %+v", inv.From)
		}
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name    string
			mutate  func(*InvoiceInput)
			wantErr error
		}{
			{"blank number", func(in *InvoiceInput) { in.InvoiceNumber = "  " }, ErrInvalidInvoiceNumber},
			{"due before date", func(in *InvoiceInput) { in.DueDate = in.Date.AddDate(0, 0, -1) }, ErrInvalidInvoiceDates},
			{"tax rate over 100", func(in *InvoiceInput) { in.TaxRate = 101 }, ErrInvalidTaxRate},
			{"negative tax rate", func(in *InvoiceInput) { in.TaxRate = -1 }, ErrInvalidTaxRate},
			{"percentage discount over 100", func(in *InvoiceInput) {
				in.Discount = &entities.Discount{Type: entities.DiscountTypePercentage, Value: 150}
			}, ErrInvalidDiscount},
			{"negative discount", func(in *InvoiceInput) {
				in.Discount = &entities.Discount{Type: entities.DiscountTypeFixed, Value: -5}
			}, ErrInvalidDiscount},
			{"unknown discount type", func(in *InvoiceInput) {
				in.Discount = &entities.Discount{Type: "coupon", Value: 5}
			}, ErrInvalidDiscount},
			{"unknown currency", func(in *InvoiceInput) { in.CurrencyCode = "XXX" }, money.ErrInvalidCurrency},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				uc := NewInvoiceUseCase(nil, nil)
				input := validInvoiceInput()
				tc.mutate(&input)
				if _, err := uc.Create(context.Background(), input); !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
			})
		}
	})
}

func TestInvoiceUseCase_Update(t *testing.T) {
	t.Run("replaces draft fields and recomputes totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		local := mock_interfaces.NewMockILocalStore(ctrl)
		notifier := mock_interfaces.NewMockISyncNotifier(ctrl)

		created := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
		local.EXPECT().GetInvoice("inv-1").Return(entities.Invoice{
			ID:        "inv-1",
			Status:    entities.InvoiceStatusSent,
			CreatedAt: created,
		}, nil)
		local.EXPECT().PutInvoice(gomock.Any()).Return(nil)
		local.EXPECT().PutActivity(gomock.Any()).Return(nil)
		notifier.EXPECT().PushUpsert(gomock.Any(), gomock.Any(), gomock.Any()).Times(2)

		uc := NewInvoiceUseCase(local, notifier)
		inv, err := uc.Update(context.Background(), "inv-1", validInvoiceInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.Status != entities.InvoiceStatusSent {
			t.Fatalf("status must survive an update, got %s", inv.Status)
		}
		if !inv.CreatedAt.Equal(created) {
			t.Fatalf("created_at must survive an update")
		}
		if inv.TotalCents != 33000 {
			t.Fatalf("expected recomputed total 33000, got %d", inv.TotalCents)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		local := mock_interfaces.NewMockILocalStore(ctrl)

		local.EXPECT().GetInvoice("nope").Return(entities.Invoice{}, nil)

		uc := NewInvoiceUseCase(local, nil)
		if _, err := uc.Update(context.Background(), "nope", validInvoiceInput()); !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})
}

func TestInvoiceUseCase_Delete(t *testing.T) {
	t.Run("pushes a delete mutation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		local := mock_interfaces.NewMockILocalStore(ctrl)
		notifier := mock_interfaces.NewMockISyncNotifier(ctrl)

		local.EXPECT().GetInvoice("inv-1").Return(entities.Invoice{ID: "inv-1", InvoiceNumber: "INV-001"}, nil)
		local.EXPECT().DeleteInvoice("inv-1").Return(nil)
		local.EXPECT().PutActivity(gomock.Any()).Return(nil)
		notifier.EXPECT().PushDelete(entities.EntityTypeInvoice, "inv-1")
		notifier.EXPECT().PushUpsert(entities.EntityTypeActivity, gomock.Any(), gomock.Any())

		uc := NewInvoiceUseCase(local, notifier)
		if err := uc.Delete(context.Background(), "inv-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		local := mock_interfaces.NewMockILocalStore(ctrl)

		local.EXPECT().GetInvoice("nope").Return(entities.Invoice{}, nil)

		uc := NewInvoiceUseCase(local, nil)
		if err := uc.Delete(context.Background(), "nope"); !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})
}

func TestInvoiceUseCase_StatusTransitions(t *testing.T) {
	transitions := []struct {
		name string
		call func(IInvoiceUseCase, context.Context) (entities.Invoice, error)
		want entities.InvoiceStatus
	}{
		{"mark sent", func(uc IInvoiceUseCase, ctx context.Context) (entities.Invoice, error) {
			return uc.MarkSent(ctx, "inv-1")
		}, entities.InvoiceStatusSent},
		{"mark paid", func(uc IInvoiceUseCase, ctx context.Context) (entities.Invoice, error) {
			return uc.MarkPaid(ctx, "inv-1")
		}, entities.InvoiceStatusPaid},
		{"mark overdue", func(uc IInvoiceUseCase, ctx context.Context) (entities.Invoice, error) {
			return uc.MarkOverdue(ctx, "inv-1")
		}, entities.InvoiceStatusOverdue},
	}
	for _, tc := range transitions {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			local := mock_interfaces.NewMockILocalStore(ctrl)
			notifier := mock_interfaces.NewMockISyncNotifier(ctrl)

			local.EXPECT().GetInvoice("inv-1").Return(entities.Invoice{ID: "inv-1", InvoiceNumber: "INV-001"}, nil)
			local.EXPECT().PutInvoice(gomock.Any()).DoAndReturn(func(inv entities.Invoice) error {
				if inv.Status != tc.want {
					t.Fatalf("expected %s, got %s", tc.want, inv.Status)
				}
				return nil
			})
			local.EXPECT().PutActivity(gomock.Any()).Return(nil)
			notifier.EXPECT().PushUpsert(entities.EntityTypeInvoice, "inv-1", gomock.Any())
			notifier.EXPECT().PushUpsert(entities.EntityTypeActivity, gomock.Any(), gomock.Any())

			uc := NewInvoiceUseCase(local, notifier)
			inv, err := tc.call(uc, context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if inv.Status != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, inv.Status)
			}
		})
	}
}
