package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidCurrency = errors.New("invalid currency code")

// SymbolPosition says whether the currency symbol is printed before or
// after the amount.

type SymbolPosition string

const (
	SymbolBefore SymbolPosition = "before"
	SymbolAfter  SymbolPosition = "after"
)

// CurrencyInfo is static metadata for one supported currency. The table is
// closed: it is configuration data fixed at build time, and unknown codes
// fail rather than fall back.
type CurrencyInfo struct {
	Symbol   string
	Decimals int32
	Position SymbolPosition
}

var currencyTable = map[string]CurrencyInfo{
	"USD": {Symbol: "$", Decimals: 2, Position: SymbolBefore},
	"EUR": {Symbol: "€", Decimals: 2, Position: SymbolBefore},
	"GBP": {Symbol: "£", Decimals: 2, Position: SymbolBefore},
	"JPY": {Symbol: "¥", Decimals: 0, Position: SymbolBefore},
	"BRL": {Symbol: "R$", Decimals: 2, Position: SymbolBefore},
	"CAD": {Symbol: "CA$", Decimals: 2, Position: SymbolBefore},
	"AUD": {Symbol: "A$", Decimals: 2, Position: SymbolBefore},
	"INR": {Symbol: "₹", Decimals: 2, Position: SymbolBefore},
	"CHF": {Symbol: "CHF", Decimals: 2, Position: SymbolAfter},
	"SEK": {Symbol: "kr", Decimals: 2, Position: SymbolAfter},
}

// LookupCurrency returns the metadata for a supported currency code.
func LookupCurrency(code string) (CurrencyInfo, error) {
	info, ok := currencyTable[code]
	if !ok {
		return CurrencyInfo{}, fmt.Errorf("%w: %q", ErrInvalidCurrency, code)
	}
	return info, nil
}

// FormatAmount renders minor units as a human string for the given
// currency: scaled by the currency's decimal places, grouped in thousands,
// with the symbol in its configured position.
//
//	FormatAmount(1050, "USD") == "$10.50"
//	FormatAmount(1050, "JPY") == "¥1,050"
func FormatAmount(cents int64, currencyCode string) (string, error) {
	info, err := LookupCurrency(currencyCode)
	if err != nil {
		return "", err
	}

	negative := cents < 0
	if negative {
		cents = -cents
	}

	fixed := decimal.New(cents, -info.Decimals).StringFixed(info.Decimals)
	intPart, fracPart, hasFrac := strings.Cut(fixed, ".")

	number := groupThousands(intPart)
	if hasFrac {
		number += "." + fracPart
	}

	var out string
	if info.Position == SymbolAfter {
		out = number + " " + info.Symbol
	} else {
		out = info.Symbol + number
	}
	if negative {
		out = "-" + out
	}
	return out, nil
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
