package response

import (
	"time"

	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/domain/entities"
)

type CompanySettingsResponse struct {
	Name            string    `json:"name"`
	Email           string    `json:"email,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Address         string    `json:"address,omitempty"`
	DefaultCurrency string    `json:"default_currency,omitempty"`
	DefaultTaxRate  float64   `json:"default_tax_rate"`
	Configured      bool      `json:"configured"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromCompanySettings(s entities.CompanySettings) CompanySettingsResponse {
	return CompanySettingsResponse{
		Name:            s.Name,
		Email:           s.Email,
		Phone:           s.Phone,
		Address:         s.Address,
		DefaultCurrency: s.DefaultCurrency,
		DefaultTaxRate:  s.DefaultTaxRate,
		Configured:      s.Name != "",
		UpdatedAt:       s.UpdatedAt,
	}
}

type AppSettingsResponse struct {
	Theme      string    `json:"theme,omitempty"`
	Language   string    `json:"language,omitempty"`
	DateFormat string    `json:"date_format,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromAppSettings(s entities.AppSettings) AppSettingsResponse {
	return AppSettingsResponse{
		Theme:      s.Theme,
		Language:   s.Language,
		DateFormat: s.DateFormat,
		UpdatedAt:  s.UpdatedAt,
	}
}
