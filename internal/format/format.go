// Package format holds presentation-only helpers. Nothing here mutates or
// rounds the numeric values used by calculation.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/andy/billfold/internal/domain"
)

// Currency formats an amount with the currency's symbol, thousands
// separators, and conventional fraction digits (e.g. "$1,234.50",
// "¥1,200"). Unknown codes fall back to US Dollar rules.
func Currency(amount float64, code string) string {
	cur := domain.CurrencyByCode(code)

	negative := amount < 0
	if negative {
		amount = -amount
	}

	s := fmt.Sprintf("%.*f", cur.Decimals, amount)

	// An amount that rounds to zero at this precision carries no sign
	if negative && strings.Trim(s, "0.") == "" {
		negative = false
	}

	// Split at decimal point
	intPart := s
	decPart := ""
	if cur.Decimals > 0 {
		dotPos := len(s) - cur.Decimals - 1
		intPart = s[:dotPos]
		decPart = s[dotPos:]
	}

	// Add commas to integer part
	grouped := make([]byte, 0, len(intPart)+len(intPart)/3)
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, byte(c))
	}

	prefix := cur.Symbol
	if negative {
		prefix = "-" + cur.Symbol
	}
	return prefix + string(grouped) + decPart
}

// Date renders an ISO calendar date ("2006-01-02") in long form, e.g.
// "January 2, 2006". Empty or unparsable input yields an empty string,
// never an error.
func Date(isoDate string) string {
	if isoDate == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return ""
	}
	return t.Format("January 2, 2006")
}
