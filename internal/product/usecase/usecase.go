package usecase

import (
	"context"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/fekuna/omnipos-grocery/internal/model"
	"github.com/fekuna/omnipos-grocery/internal/product"
	"github.com/fekuna/omnipos-grocery/internal/product/dto"
	"github.com/fekuna/omnipos-grocery/pkg/logger"
	"github.com/fekuna/omnipos-grocery/pkg/validator"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const rowFormat = "%-10s %-20s %-10s %-10s"

type productUseCase struct {
	repo   product.Repository
	logger logger.ZapLogger
}

func NewProductUseCase(repo product.Repository, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		logger: log,
	}
}

// ProductHeader is the column header matching the rows of ViewProducts.
func ProductHeader() string {
	return fmt.Sprintf(rowFormat, "ID", "Name", "Price", "Stock")
}

// FormatProduct renders a product as one row of the catalog table.
func FormatProduct(p model.Product) string {
	return fmt.Sprintf(rowFormat, p.ID, p.Name, model.FormatPrice(p.Price), strconv.Itoa(p.Stock))
}

func (uc *productUseCase) AddProduct(ctx context.Context, input *dto.ProductInput) (*model.Product, error) {
	products, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	if findIndex(products, input.ID) >= 0 {
		return nil, model.ErrProductExists
	}

	p, err := parseProduct(input)
	if err != nil {
		return nil, err
	}

	products = append(products, *p)
	if err := uc.repo.Save(ctx, products); err != nil {
		return nil, err
	}

	uc.logger.Info("product added",
		zap.String("product_id", p.ID),
		zap.String("price", p.Price.String()),
		zap.Int("stock", p.Stock),
	)
	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	products, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	i := findIndex(products, id)
	if i < 0 {
		return nil, model.ErrProductNotFound
	}
	return &products[i], nil
}

// ViewProducts loads the catalog once and returns its formatted rows. The
// sequence can be ranged over more than once.
func (uc *productUseCase) ViewProducts(ctx context.Context) (iter.Seq[string], error) {
	products, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	return func(yield func(string) bool) {
		for _, p := range products {
			if !yield(FormatProduct(p)) {
				return
			}
		}
	}, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.ProductInput) (*model.Product, error) {
	products, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	i := findIndex(products, input.ID)
	if i < 0 {
		return nil, model.ErrProductNotFound
	}

	p, err := parseProduct(input)
	if err != nil {
		return nil, err
	}

	products[i] = *p
	if err := uc.repo.Save(ctx, products); err != nil {
		return nil, err
	}

	uc.logger.Info("product updated", zap.String("product_id", p.ID))
	return p, nil
}

// DeleteProduct removes every product with the given id and saves the result
// whether or not anything matched.
func (uc *productUseCase) DeleteProduct(ctx context.Context, id string) error {
	products, err := uc.repo.Load(ctx)
	if err != nil {
		return err
	}

	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}

	if err := uc.repo.Save(ctx, kept); err != nil {
		return err
	}

	uc.logger.Info("product delete applied",
		zap.String("product_id", id),
		zap.Int("removed", len(products)-len(kept)),
	)
	return nil
}

func (uc *productUseCase) SearchProducts(ctx context.Context, query string) ([]model.Product, error) {
	products, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	found := []model.Product{}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			found = append(found, p)
		}
	}
	return found, nil
}

func findIndex(products []model.Product, id string) int {
	for i, p := range products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func parseProduct(input *dto.ProductInput) (*model.Product, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(input.Price))
	if err != nil {
		return nil, validator.Invalid("price", "must be a decimal number")
	}
	stock, err := strconv.Atoi(strings.TrimSpace(input.Stock))
	if err != nil {
		return nil, validator.Invalid("stock", "must be a whole number")
	}

	p := &model.Product{
		ID:    input.ID,
		Name:  input.Name,
		Price: price,
		Stock: stock,
	}
	if err := validator.Validate(p); err != nil {
		return nil, err
	}
	return p, nil
}
