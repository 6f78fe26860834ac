package utils

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var currencySymbols = map[string]string{
	"PKR": "Rs ",
	"INR": "₹",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// FormatCurrency renders an amount with its currency symbol and digit
// grouping. PKR and INR use Indian grouping (1,00,000); the rest use western
// grouping (100,000). Unknown currency codes fall back to the bare amount.
func FormatCurrency(amount decimal.Decimal, currency string) string {
	symbol := currencySymbols[currency]
	negative := amount.IsNegative()
	abs := amount.Abs()

	intPart := abs.Truncate(0).String()
	frac := ""
	if s := abs.String(); strings.Contains(s, ".") {
		frac = s[strings.Index(s, "."):]
	}

	var grouped string
	if currency == "PKR" || currency == "INR" {
		grouped = groupIndian(intPart)
	} else {
		grouped = groupThousands(intPart)
	}

	out := symbol + grouped + frac
	if negative {
		out = "-" + out
	}
	return out
}

// groupThousands inserts a comma every three digits from the right.
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	rem := n % 3
	if rem > 0 {
		b.WriteString(digits[:rem])
	}
	for i := rem; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// groupIndian groups the last three digits, then every two: 1234567 -> 12,34,567.
func groupIndian(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	head := digits[:n-3]
	tail := digits[n-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}

// FormatDate renders a stored "2006-01-02" date for display, e.g. "01 Jan 2024".
// Unparseable input is returned unchanged.
func FormatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("02 Jan 2006")
}
