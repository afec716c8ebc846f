package response

import (
	"time"

	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/domain/entities"
)

type ClientResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	Address      string     `json:"address,omitempty"`
	LastUsed     *time.Time `json:"last_used,omitempty"`
	InvoiceCount int        `json:"invoice_count"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func FromClient(c entities.Client) ClientResponse {
	resp := ClientResponse{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		Address:      c.Address,
		InvoiceCount: c.InvoiceCount,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
	if !c.LastUsed.IsZero() {
		lastUsed := c.LastUsed
		resp.LastUsed = &lastUsed
	}
	return resp
}

func FromClients(clients []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, FromClient(c))
	}
	return out
}
