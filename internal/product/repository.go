package product

import (
	"context"

	"github.com/fekuna/omnipos-grocery/internal/model"
)

// Repository persists the whole catalog at once. Save always replaces what
// was stored before; there is no partial update.
type Repository interface {
	Load(ctx context.Context) ([]model.Product, error)
	Save(ctx context.Context, products []model.Product) error
}
