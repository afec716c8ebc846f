package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/domain/entities"
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/domain/money"
	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/usecase/interfaces"
)

var ErrInvalidCompanyName = errors.New("invalid company name")

// ISettingsUseCase reads and replaces the company and app settings
// singletons.

type ISettingsUseCase interface {
	GetCompany(ctx context.Context) (entities.CompanySettings, error)
	UpdateCompany(ctx context.Context, s entities.CompanySettings) (entities.CompanySettings, error)
	GetApp(ctx context.Context) (entities.AppSettings, error)
	UpdateApp(ctx context.Context, s entities.AppSettings) (entities.AppSettings, error)
}

type SettingsUseCase struct {
	local interfaces.ILocalStore
	sync  interfaces.ISyncNotifier
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(local interfaces.ILocalStore, sync interfaces.ISyncNotifier) *SettingsUseCase {
	return &SettingsUseCase{local: local, sync: sync}
}

func (u *SettingsUseCase) GetCompany(ctx context.Context) (entities.CompanySettings, error) {
	return u.local.GetCompanySettings()
}

func (u *SettingsUseCase) UpdateCompany(ctx context.Context, s entities.CompanySettings) (entities.CompanySettings, error) {
	if strings.TrimSpace(s.Name) == "" {
		return entities.CompanySettings{}, ErrInvalidCompanyName
	}
	if s.DefaultCurrency != "" {
		if _, err := money.LookupCurrency(s.DefaultCurrency); err != nil {
			return entities.CompanySettings{}, err
		}
	}
	if s.DefaultTaxRate < 0 || s.DefaultTaxRate > 100 {
		return entities.CompanySettings{}, ErrInvalidTaxRate
	}

	s.Name = strings.TrimSpace(s.Name)
	s.UpdatedAt = time.Now().UTC()
	if err := u.local.PutCompanySettings(s); err != nil {
		return entities.CompanySettings{}, err
	}
	u.sync.PushUpsert(entities.EntityTypeCompanySettings, "", s)
	recordActivity(u.local, u.sync, entities.ActivityActionUpdated, entities.EntityTypeCompanySettings, "", "Company settings updated")
	return s, nil
}

func (u *SettingsUseCase) GetApp(ctx context.Context) (entities.AppSettings, error) {
	return u.local.GetAppSettings()
}

func (u *SettingsUseCase) UpdateApp(ctx context.Context, s entities.AppSettings) (entities.AppSettings, error) {
	s.UpdatedAt = time.Now().UTC()
	if err := u.local.PutAppSettings(s); err != nil {
		return entities.AppSettings{}, err
	}
	u.sync.PushUpsert(entities.EntityTypeAppSettings, "", s)
	return s, nil
}
