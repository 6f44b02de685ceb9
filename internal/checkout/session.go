package checkout

import (
	"errors"
	"slices"
	"strconv"
	"strings"

	"github.com/fekuna/omnipos-grocery/internal/model"
	"github.com/fekuna/omnipos-grocery/pkg/validator"
	"github.com/shopspring/decimal"
)

// Terminator ends item selection when entered instead of a product id.
const Terminator = "done"

var (
	ErrInvalidSelection = errors.New("invalid ID or insufficient stock")
	ErrSessionClosed    = errors.New("checkout session already finished")
)

// Session is one checkout: a private copy of the catalog, the cart and its
// running total. It is not safe for concurrent use.
type Session struct {
	ID string

	products []model.Product
	lines    []model.CartLine
	total    decimal.Decimal
	finished bool
}

func NewSession(id string, products []model.Product) *Session {
	return &Session{
		ID:       id,
		products: slices.Clone(products),
		total:    decimal.Zero,
	}
}

func IsTerminator(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), Terminator)
}

// ParseQuantity converts operator text into a positive quantity.
func ParseQuantity(input string) (int, error) {
	qty, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, validator.Invalid("quantity", "must be a whole number")
	}
	if qty <= 0 {
		return 0, validator.Invalid("quantity", "must be greater than 0")
	}
	return qty, nil
}

// Select buys quantity units of the first product with the given id that has
// enough stock. On failure nothing changes.
func (s *Session) Select(id string, quantity int) (model.CartLine, error) {
	if s.finished {
		return model.CartLine{}, ErrSessionClosed
	}
	if quantity <= 0 {
		return model.CartLine{}, validator.Invalid("quantity", "must be greater than 0")
	}

	for i := range s.products {
		p := &s.products[i]
		if p.ID != id || p.Stock < quantity {
			continue
		}

		line := model.NewCartLine(*p, quantity)
		p.Stock -= quantity
		s.lines = append(s.lines, line)
		s.total = s.total.Add(line.Cost)
		return line, nil
	}
	return model.CartLine{}, ErrInvalidSelection
}

// Catalog returns the session's products with purchases already deducted.
func (s *Session) Catalog() []model.Product {
	return slices.Clone(s.products)
}

func (s *Session) Lines() []model.CartLine {
	return slices.Clone(s.lines)
}

func (s *Session) Total() decimal.Decimal {
	return s.total
}

func (s *Session) Finished() bool {
	return s.finished
}

// Close moves the session to the finished state and hands back the catalog to
// persist.
func (s *Session) Close() ([]model.Product, error) {
	if s.finished {
		return nil, ErrSessionClosed
	}
	s.finished = true
	return slices.Clone(s.products), nil
}
