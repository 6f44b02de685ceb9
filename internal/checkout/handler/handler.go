package handler

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-grocery/internal/checkout"
	"github.com/fekuna/omnipos-grocery/internal/console"
	"github.com/fekuna/omnipos-grocery/internal/product/usecase"
	"github.com/fekuna/omnipos-grocery/pkg/logger"
	"github.com/fekuna/omnipos-grocery/pkg/validator"
	"go.uber.org/zap"
)

type CheckoutHandler struct {
	uc     checkout.UseCase
	logger logger.ZapLogger
}

func NewCheckoutHandler(uc checkout.UseCase, log logger.ZapLogger) *CheckoutHandler {
	return &CheckoutHandler{
		uc:     uc,
		logger: log,
	}
}

// CreateBill runs one checkout session until the operator enters the
// terminator. If input runs out first the session is dropped unsaved and
// io.EOF is returned.
func (h *CheckoutHandler) CreateBill(ctx context.Context, c *console.Console) error {
	s, err := h.uc.StartSession(ctx)
	if err != nil {
		return err
	}
	log := h.logger.With(zap.String("session_id", s.ID))

	for {
		c.Println("\nAvailable Products:")
		c.Println(usecase.ProductHeader())
		for _, p := range s.Catalog() {
			c.Println(usecase.FormatProduct(p))
		}

		id, err := c.Prompt("Enter product ID to buy (or 'done' to finish): ")
		if err != nil {
			return err
		}
		if checkout.IsTerminator(id) {
			break
		}

		raw, err := c.Prompt("Enter quantity: ")
		if err != nil {
			return err
		}
		qty, err := checkout.ParseQuantity(raw)
		if err != nil {
			var ve *validator.ValidationError
			if errors.As(err, &ve) {
				c.Printf("Invalid quantity: %v\n", ve)
				continue
			}
			return err
		}

		line, err := s.Select(id, qty)
		if err != nil {
			if errors.Is(err, checkout.ErrInvalidSelection) {
				log.Debug("selection rejected", zap.String("product_id", id), zap.Int("quantity", qty))
				c.Println("Invalid ID or insufficient stock.")
				continue
			}
			return err
		}
		log.Debug("item added to cart",
			zap.String("product_id", id),
			zap.Int("quantity", qty),
			zap.String("cost", line.Cost.String()),
		)
	}

	r, err := h.uc.Finish(ctx, s)
	if err != nil {
		if errors.Is(err, checkout.ErrReceiptNotWritten) {
			c.Printf("Stock updated, but the bill could not be written: %v\n", err)
			return nil
		}
		return err
	}
	if r == nil {
		c.Println("No items in cart.")
		return nil
	}
	c.Printf("Bill generated: %s\n", r.FileName)
	return nil
}
