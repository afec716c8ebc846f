package money

import (
	"errors"
	"testing"
)

func TestLookupCurrency(t *testing.T) {
	t.Run("known code", func(t *testing.T) {
		info, err := LookupCurrency("USD")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if info.Symbol != "$" || info.Decimals != 2 || info.Position != SymbolBefore {
			t.Fatalf("unexpected info: %+v", info)
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := LookupCurrency("XXX")
		if !errors.Is(err, ErrInvalidCurrency) {
			t.Fatalf("expected ErrInvalidCurrency, got %v", err)
		}
	})
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		name     string
		cents    int64
		currency string
		want     string
	}{
		{"usd two decimals", 1050, "USD", "$10.50"},
		{"usd grouping", 123456789, "USD", "$1,234,567.89"},
		{"jpy zero decimals", 1050, "JPY", "¥1,050"},
		{"jpy small", 500, "JPY", "¥500"},
		{"eur", 99, "EUR", "€0.99"},
		{"brl multi char symbol", 150000, "BRL", "R$1,500.00"},
		{"sek suffix", 1050, "SEK", "10.50 kr"},
		{"chf suffix", 123456, "CHF", "1,234.56 CHF"},
		{"negative sign before symbol", -1050, "USD", "-$10.50"},
		{"negative suffix", -1050, "SEK", "-10.50 kr"},
		{"zero", 0, "USD", "$0.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FormatAmount(tc.cents, tc.currency)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}

	t.Run("unknown currency", func(t *testing.T) {
		_, err := FormatAmount(1050, "XXX")
		if !errors.Is(err, ErrInvalidCurrency) {
			t.Fatalf("expected ErrInvalidCurrency, got %v", err)
		}
	})
}
