package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a raw amount field into a decimal. It tolerates
// the formatting quirks of the supported bank exports: comma decimal
// separators, surrounding whitespace and stray quote characters.
// It returns false when the field does not hold a number.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, `"`, "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	if cleaned == "" {
		return decimal.Zero, false
	}

	dec, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return dec, true
}
