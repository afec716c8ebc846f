package entities

import "time"

// CompanySettings is the "from" side used as a template for new invoices.
//
// A zero Name means the company was never configured; the sync decision on
// login treats that as "no local settings data".
type CompanySettings struct {
	Name            string    `json:"name"`
	Email           string    `json:"email,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Address         string    `json:"address,omitempty"`
	DefaultCurrency string    `json:"default_currency,omitempty"`
	DefaultTaxRate  float64   `json:"default_tax_rate"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// AppSettings are per-user presentation preferences. They are synced like
// any other record but never inspected by the core.
type AppSettings struct {
	Theme      string    `json:"theme,omitempty"`
	Language   string    `json:"language,omitempty"`
	DateFormat string    `json:"date_format,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}
