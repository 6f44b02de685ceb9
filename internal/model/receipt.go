package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is one purchase inside a checkout session.
type CartLine struct {
	Name     string
	Quantity int
	Price    decimal.Decimal
	Cost     decimal.Decimal
}

func NewCartLine(p Product, quantity int) CartLine {
	return CartLine{
		Name:     p.Name,
		Quantity: quantity,
		Price:    p.Price,
		Cost:     p.Price.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

type Receipt struct {
	FileName  string
	Path      string
	Lines     []CartLine
	Total     decimal.Decimal
	CreatedAt time.Time
}
