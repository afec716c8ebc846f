package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/adapter/http/handlers/mocks"
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/domain/entities"
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/domain/money"
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const validInvoiceBody = `{
	"invoice_number": "INV-001",
	"date": "2026-08-01",
	"due_date": "2026-08-31",
	"to": {"name": "Big Corp"},
	"items": [{"description": "Design work", "quantity": 2, "rate_cents": 15000}],
	"currency_code": "usd",
	"tax_rate": 10
}`

func TestInvoiceHandler_CreateInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices", h.CreateInvoice)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unparseable date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices", h.CreateInvoice)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(`{"invoice_number":"INV-001","date":"not a date","due_date":"2026-08-31","currency_code":"USD"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase returns mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices", h.CreateInvoice)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, usecase.ErrClientNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(validInvoiceBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices", h.CreateInvoice)

		now := time.Now().UTC()
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, input usecase.InvoiceInput) (entities.Invoice, error) {
				if input.CurrencyCode != "USD" {
					t.Fatalf("expected uppercased currency, got %q", input.CurrencyCode)
				}
				return entities.Invoice{
					ID:             "inv-1",
					InvoiceNumber:  input.InvoiceNumber,
					Status:         entities.InvoiceStatusDraft,
					CurrencyCode:   "USD",
					SubtotalCents:  30000,
					TaxAmountCents: 3000,
					TotalCents:     33000,
					CreatedAt:      now,
					UpdatedAt:      now,
				}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(validInvoiceBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "inv-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if body["total"] != "$330.00" {
			t.Fatalf("expected formatted total, got %v", body["total"])
		}
	})
}

func TestInvoiceHandler_GetInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/v1/invoices/:id", h.GetInvoice)

		uc.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/nope", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/v1/invoices/:id", h.GetInvoice)

		uc.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", CurrencyCode: "USD"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/inv-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_DeleteInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInvoiceUseCase(ctrl)
	h := NewInvoiceHandler(uc)

	r := gin.New()
	r.DELETE("/v1/invoices/:id", h.DeleteInvoice)

	uc.EXPECT().Delete(gomock.Any(), "inv-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/invoices/inv-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestInvoiceHandler_StatusPatches(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		route  string
		attach func(*gin.Engine, *InvoiceHandler)
		expect func(*mocks.MockIInvoiceUseCase)
	}{
		{"send", "/v1/invoices/inv-1/send", func(r *gin.Engine, h *InvoiceHandler) {
			r.PATCH("/v1/invoices/:id/send", h.MarkInvoiceSent)
		}, func(uc *mocks.MockIInvoiceUseCase) {
			uc.EXPECT().MarkSent(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusSent, CurrencyCode: "USD"}, nil)
		}},
		{"pay", "/v1/invoices/inv-1/pay", func(r *gin.Engine, h *InvoiceHandler) {
			r.PATCH("/v1/invoices/:id/pay", h.MarkInvoicePaid)
		}, func(uc *mocks.MockIInvoiceUseCase) {
			uc.EXPECT().MarkPaid(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusPaid, CurrencyCode: "USD"}, nil)
		}},
		{"overdue", "/v1/invoices/inv-1/overdue", func(r *gin.Engine, h *InvoiceHandler) {
			r.PATCH("/v1/invoices/:id/overdue", h.MarkInvoiceOverdue)
		}, func(uc *mocks.MockIInvoiceUseCase) {
			uc.EXPECT().MarkOverdue(gomock.Any(), "inv-1").Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusOverdue, CurrencyCode: "USD"}, nil)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIInvoiceUseCase(ctrl)
			h := NewInvoiceHandler(uc)

			r := gin.New()
			tc.attach(r, h)
			tc.expect(uc)

			req := httptest.NewRequest(http.MethodPatch, tc.route, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
		})
	}
}

func TestMapInvoiceError(t *testing.T) {
	if got := mapInvoiceError(usecase.ErrInvalidInvoiceNumber); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapInvoiceError(usecase.ErrInvalidInvoiceDates); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapInvoiceError(money.ErrInvalidCurrency); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapInvoiceError(usecase.ErrClientNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapInvoiceError(usecase.ErrInvoiceNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapInvoiceError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
