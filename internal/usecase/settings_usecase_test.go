package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/domain/entities"
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/domain/money"
	mock_interfaces "github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSettingsUseCase_UpdateCompany(t *testing.T) {
	t.Run("valid settings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		local := mock_interfaces.NewMockILocalStore(ctrl)
		notifier := mock_interfaces.NewMockISyncNotifier(ctrl)

		local.EXPECT().PutCompanySettings(gomock.Any()).Return(nil)
		local.EXPECT().PutActivity(gomock.Any()).Return(nil)
		notifier.EXPECT().PushUpsert(entities.EntityTypeCompanySettings, "", gomock.Any())
		notifier.EXPECT().PushUpsert(entities.EntityTypeActivity, gomock.Any(), gomock.Any())

		uc := NewSettingsUseCase(local, notifier)
		s, err := uc.UpdateCompany(context.Background(), entities.CompanySettings{
			Name:            "  Acme Studio  ",
			DefaultCurrency: "EUR",
			DefaultTaxRate:  21,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Name != "Acme Studio" {
			t.Fatalf("expected trimmed name, got %q", s.Name)
		}
		if s.UpdatedAt.IsZero() {
			t.Fatalf("expected updated_at to be set")
		}
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name    string
			in      entities.CompanySettings
			wantErr error
		}{
			{"blank name", entities.CompanySettings{Name: "  "}, ErrInvalidCompanyName},
			{"unknown currency", entities.CompanySettings{Name: "Acme", DefaultCurrency: "XXX"}, money.ErrInvalidCurrency},
			{"tax rate over 100", entities.CompanySettings{Name: "Acme", DefaultTaxRate: 120}, ErrInvalidTaxRate},
			{"negative tax rate", entities.CompanySettings{Name: "Acme", DefaultTaxRate: -1}, ErrInvalidTaxRate},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				uc := NewSettingsUseCase(nil, nil)
				if _, err := uc.UpdateCompany(context.Background(), tc.in); !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
			})
		}
	})

	t.Run("empty default currency is allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		local := mock_interfaces.NewMockILocalStore(ctrl)
		notifier := mock_interfaces.NewMockISyncNotifier(ctrl)

		local.EXPECT().PutCompanySettings(gomock.Any()).Return(nil)
		local.EXPECT().PutActivity(gomock.Any()).Return(nil)
		notifier.EXPECT().PushUpsert(gomock.Any(), gomock.Any(), gomock.Any()).Times(2)

		uc := NewSettingsUseCase(local, notifier)
		if _, err := uc.UpdateCompany(context.Background(), entities.CompanySettings{Name: "Acme"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSettingsUseCase_UpdateApp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	local := mock_interfaces.NewMockILocalStore(ctrl)
	notifier := mock_interfaces.NewMockISyncNotifier(ctrl)

	local.EXPECT().PutAppSettings(gomock.Any()).Return(nil)
	notifier.EXPECT().PushUpsert(entities.EntityTypeAppSettings, "", gomock.Any())

	uc := NewSettingsUseCase(local, notifier)
	s, err := uc.UpdateApp(context.Background(), entities.AppSettings{Theme: "dark", DateFormat: "DD/MM/YYYY"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Theme != "dark" || s.UpdatedAt.IsZero() {
		t.Fatalf("unexpected settings: %+v", s)
	}
}

func TestSettingsUseCase_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	local := mock_interfaces.NewMockILocalStore(ctrl)

	local.EXPECT().GetCompanySettings().Return(entities.CompanySettings{Name: "Acme"}, nil)
	local.EXPECT().GetAppSettings().Return(entities.AppSettings{Theme: "light"}, nil)

	uc := NewSettingsUseCase(local, nil)
	company, err := uc.GetCompany(context.Background())
	if err != nil || company.Name != "Acme" {
		t.Fatalf("unexpected company settings: %+v, %v", company, err)
	}
	app, err := uc.GetApp(context.Background())
	if err != nil || app.Theme != "light" {
		t.Fatalf("unexpected app settings: %+v, %v", app, err)
	}
}
