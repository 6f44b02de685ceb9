package model

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrProductExists   = errors.New("product id already exists")
	ErrProductNotFound = errors.New("product not found")
	ErrMalformedRecord = errors.New("malformed catalog record")
)

type Product struct {
	ID    string          `db:"id"`
	Name  string          `db:"name"`
	Price decimal.Decimal `db:"price" validate:"gte=0"`
	Stock int             `db:"stock" validate:"gte=0"`
}

// FormatPrice renders a unit price with at least one fractional digit, so a
// whole price reads "50.0" rather than "50".
func FormatPrice(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return d.StringFixed(1)
	}
	return d.String()
}

// FormatMoney renders an amount with exactly two fractional digits.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}
