package importer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ToCents converts decimal currency text to integer cents: parse exactly,
// scale by 100, truncate toward zero. No float ever touches the value, so
// two-decimal inputs convert without rounding artifacts.
//
// Cell cleanup accepts the usual spreadsheet noise before parsing:
// currency symbols, thousands separators, and accounting-style parentheses
// for negatives.
func ToCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	// Accounting format "(123.45)" means negative
	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "€", "") // Euro
	s = strings.ReplaceAll(s, "£", "") // Pound
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if neg {
		s = "-" + s
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return d.Mul(hundred).IntPart(), nil
}
