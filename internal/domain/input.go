package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses user input into a non-negative amount.
// Both "12.50" and "12,50" are accepted.
func ParseAmount(value string) (decimal.Decimal, error) {
	s := strings.ReplaceAll(strings.TrimSpace(value), ",", ".")
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: amount is required", ErrValidation)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount %q is not a number", ErrValidation, value)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: amount %q is negative", ErrValidation, value)
	}
	return d, nil
}

// ParseCategory maps the I/E shorthand onto the reserved labels.
// Anything else is kept as a free-form label.
func ParseCategory(value string) (Category, error) {
	s := strings.TrimSpace(value)
	switch strings.ToUpper(s) {
	case "":
		return "", fmt.Errorf("%w: category is required", ErrValidation)
	case "I":
		return CategoryIncome, nil
	case "E":
		return CategoryExpense, nil
	}
	return Category(s), nil
}

// ParseDescription normalizes CRLF and lone CR line breaks to LF.
func ParseDescription(value string) string {
	return strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(value)
}
