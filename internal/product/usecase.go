package product

import (
	"context"
	"iter"

	"github.com/fekuna/omnipos-grocery/internal/model"
	"github.com/fekuna/omnipos-grocery/internal/product/dto"
)

type UseCase interface {
	AddProduct(ctx context.Context, input *dto.ProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ViewProducts(ctx context.Context) (iter.Seq[string], error)
	UpdateProduct(ctx context.Context, input *dto.ProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	SearchProducts(ctx context.Context, query string) ([]model.Product, error)
}
