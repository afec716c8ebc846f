package entities

import "time"

// Client is a billable party used as a template for Invoice.To.
//
// InvoiceCount is informational only; the core does not enforce or
// increment it beyond what the caller stores.
type Client struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	LastUsed     time.Time `json:"last_used"`
	InvoiceCount int       `json:"invoice_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
