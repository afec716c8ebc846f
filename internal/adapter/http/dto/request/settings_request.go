package request

import (
	"strings"

	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/domain/entities"
)

type CompanySettingsRequest struct {
	Name            string  `json:"name" binding:"required"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Address         string  `json:"address"`
	DefaultCurrency string  `json:"default_currency"`
	DefaultTaxRate  float64 `json:"default_tax_rate"`
}

func (r CompanySettingsRequest) ToEntity() entities.CompanySettings {
	return entities.CompanySettings{
		Name:            strings.TrimSpace(r.Name),
		Email:           strings.TrimSpace(r.Email),
		Phone:           strings.TrimSpace(r.Phone),
		Address:         strings.TrimSpace(r.Address),
		DefaultCurrency: strings.ToUpper(strings.TrimSpace(r.DefaultCurrency)),
		DefaultTaxRate:  r.DefaultTaxRate,
	}
}

type AppSettingsRequest struct {
	Theme      string `json:"theme"`
	Language   string `json:"language"`
	DateFormat string `json:"date_format"`
}

func (r AppSettingsRequest) ToEntity() entities.AppSettings {
	return entities.AppSettings{
		Theme:      strings.TrimSpace(r.Theme),
		Language:   strings.TrimSpace(r.Language),
		DateFormat: strings.TrimSpace(r.DateFormat),
	}
}
