package shell

import (
	"context"
	"errors"
	"io"
	"strings"

	checkoutH "github.com/fekuna/omnipos-grocery/internal/checkout/handler"
	"github.com/fekuna/omnipos-grocery/internal/console"
	"github.com/fekuna/omnipos-grocery/internal/model"
	productH "github.com/fekuna/omnipos-grocery/internal/product/handler"
	"github.com/fekuna/omnipos-grocery/pkg/logger"
	"github.com/fekuna/omnipos-grocery/pkg/validator"
	"go.uber.org/zap"
)

const menu = `
--- Grocery Store Management ---
1. Add Product
2. View Products
3. Update Product
4. Delete Product
5. Search Product
6. Create Bill
7. Exit`

type action func(ctx context.Context, c *console.Console) error

// Shell is the interactive menu loop.
type Shell struct {
	console *console.Console
	actions map[string]action
	logger  logger.ZapLogger
}

func New(c *console.Console, products *productH.ProductHandler, checkout *checkoutH.CheckoutHandler, log logger.ZapLogger) *Shell {
	return &Shell{
		console: c,
		actions: map[string]action{
			"1": products.Add,
			"2": products.View,
			"3": products.Update,
			"4": products.Delete,
			"5": products.Search,
			"6": checkout.CreateBill,
		},
		logger: log,
	}
}

// Run shows the menu until the operator exits or input ends. Both cases
// return nil; only context cancellation is reported as an error.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.console.Println(menu)
		choice, err := s.console.Prompt("Enter choice: ")
		if err != nil {
			return s.endOfInput(err)
		}
		choice = strings.TrimSpace(choice)

		if choice == "7" {
			s.console.Println("Goodbye!")
			return nil
		}

		act, ok := s.actions[choice]
		if !ok {
			s.console.Println("Invalid choice.")
			continue
		}

		if err := act(ctx, s.console); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			s.report(choice, err)
		}
	}
}

func (s *Shell) endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	s.logger.Error("failed to read operator input", zap.Error(err))
	return err
}

func (s *Shell) report(choice string, err error) {
	var ve *validator.ValidationError
	switch {
	case errors.As(err, &ve):
		s.console.Printf("Invalid input: %v\n", ve)
	case errors.Is(err, model.ErrMalformedRecord):
		s.logger.Error("catalog is malformed", zap.String("choice", choice), zap.Error(err))
		s.console.Printf("Catalog data is malformed: %v\n", err)
	case errors.Is(err, context.Canceled):
		s.console.Println("Operation cancelled.")
	default:
		s.logger.Error("operation failed", zap.String("choice", choice), zap.Error(err))
		s.console.Printf("Operation failed: %v\n", err)
	}
}
