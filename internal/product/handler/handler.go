package handler

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-grocery/internal/console"
	"github.com/fekuna/omnipos-grocery/internal/model"
	"github.com/fekuna/omnipos-grocery/internal/product"
	"github.com/fekuna/omnipos-grocery/internal/product/dto"
	"github.com/fekuna/omnipos-grocery/internal/product/usecase"
	"github.com/fekuna/omnipos-grocery/pkg/logger"
	"go.uber.org/zap"
)

// ProductHandler runs the catalog menu entries over a console. Outcomes the
// operator should simply be told about are printed here; anything else is
// returned to the shell.
type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ProductHandler) Add(ctx context.Context, c *console.Console) error {
	id, err := c.Prompt("Enter product ID: ")
	if err != nil {
		return err
	}

	// Reject a taken id before asking for the rest of the fields.
	_, err = h.uc.GetProduct(ctx, id)
	switch {
	case err == nil:
		c.Println("Product ID already exists!")
		return nil
	case !errors.Is(err, model.ErrProductNotFound):
		return err
	}

	input := &dto.ProductInput{ID: id}
	if input.Name, err = c.Prompt("Enter product name: "); err != nil {
		return err
	}
	if input.Price, err = c.Prompt("Enter price: "); err != nil {
		return err
	}
	if input.Stock, err = c.Prompt("Enter stock quantity: "); err != nil {
		return err
	}

	if _, err := h.uc.AddProduct(ctx, input); err != nil {
		if errors.Is(err, model.ErrProductExists) {
			c.Println("Product ID already exists!")
			return nil
		}
		return err
	}
	c.Println("Product added successfully.")
	return nil
}

func (h *ProductHandler) View(ctx context.Context, c *console.Console) error {
	rows, err := h.uc.ViewProducts(ctx)
	if err != nil {
		return err
	}

	c.Println("\nAvailable Products:")
	c.Println(usecase.ProductHeader())
	for row := range rows {
		c.Println(row)
	}
	return nil
}

func (h *ProductHandler) Update(ctx context.Context, c *console.Console) error {
	id, err := c.Prompt("Enter product ID to update: ")
	if err != nil {
		return err
	}

	if _, err := h.uc.GetProduct(ctx, id); err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			c.Println("Product not found.")
			return nil
		}
		return err
	}

	input := &dto.ProductInput{ID: id}
	if input.Name, err = c.Prompt("Enter new name: "); err != nil {
		return err
	}
	if input.Price, err = c.Prompt("Enter new price: "); err != nil {
		return err
	}
	if input.Stock, err = c.Prompt("Enter new stock: "); err != nil {
		return err
	}

	if _, err := h.uc.UpdateProduct(ctx, input); err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			c.Println("Product not found.")
			return nil
		}
		return err
	}
	c.Println("Product updated.")
	return nil
}

func (h *ProductHandler) Delete(ctx context.Context, c *console.Console) error {
	id, err := c.Prompt("Enter product ID to delete: ")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteProduct(ctx, id); err != nil {
		return err
	}
	c.Println("Product deleted if it existed.")
	return nil
}

func (h *ProductHandler) Search(ctx context.Context, c *console.Console) error {
	query, err := c.Prompt("Enter product name to search: ")
	if err != nil {
		return err
	}

	found, err := h.uc.SearchProducts(ctx, query)
	if err != nil {
		return err
	}
	h.logger.Debug("search", zap.String("query", query), zap.Int("hits", len(found)))

	if len(found) == 0 {
		c.Println("No product found.")
		return nil
	}
	c.Println("\nSearch Results:")
	c.Println(usecase.ProductHeader())
	for _, p := range found {
		c.Println(usecase.FormatProduct(p))
	}
	return nil
}
