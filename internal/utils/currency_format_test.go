package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		currency string
		want     string
	}{
		{"USD western grouping", decimal.NewFromInt(1234567), "USD", "$1,234,567"},
		{"USD with fraction", decimal.NewFromFloat(1234.5), "USD", "$1,234.5"},
		{"INR indian grouping", decimal.NewFromInt(1234567), "INR", "₹12,34,567"},
		{"PKR indian grouping", decimal.NewFromInt(100000), "PKR", "Rs 1,00,000"},
		{"small amount ungrouped", decimal.NewFromInt(999), "EUR", "€999"},
		{"negative amount", decimal.NewFromInt(-4500), "GBP", "-£4,500"},
		{"unknown currency falls back to bare amount", decimal.NewFromInt(42), "XYZ", "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.amount, tt.currency))
		})
	}
}

func TestGroupIndian(t *testing.T) {
	assert.Equal(t, "1,00,00,000", groupIndian("10000000"))
	assert.Equal(t, "12,34,567", groupIndian("1234567"))
	assert.Equal(t, "1,234", groupIndian("1234"))
	assert.Equal(t, "123", groupIndian("123"))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "15 Mar 2024", FormatDate("2024-03-15"))
	assert.Equal(t, "not-a-date", FormatDate("not-a-date"))
}
