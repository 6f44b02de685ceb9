package usecase

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-grocery/internal/checkout"
	"github.com/fekuna/omnipos-grocery/internal/model"
	"github.com/fekuna/omnipos-grocery/internal/product"
	"github.com/fekuna/omnipos-grocery/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type checkoutUseCase struct {
	repo     product.Repository
	receipts checkout.ReceiptWriter
	logger   logger.ZapLogger
}

func NewCheckoutUseCase(repo product.Repository, receipts checkout.ReceiptWriter, log logger.ZapLogger) checkout.UseCase {
	return &checkoutUseCase{
		repo:     repo,
		receipts: receipts,
		logger:   log,
	}
}

func (uc *checkoutUseCase) StartSession(ctx context.Context) (*checkout.Session, error) {
	products, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	s := checkout.NewSession(uuid.New().String(), products)
	uc.logger.Debug("checkout session started",
		zap.String("session_id", s.ID),
		zap.Int("catalog_size", len(products)),
	)
	return s, nil
}

func (uc *checkoutUseCase) Finish(ctx context.Context, s *checkout.Session) (*model.Receipt, error) {
	products, err := s.Close()
	if err != nil {
		return nil, err
	}

	log := uc.logger.With(zap.String("session_id", s.ID))

	if err := uc.repo.Save(ctx, products); err != nil {
		log.Error("failed to save catalog after checkout", zap.Error(err))
		return nil, err
	}

	lines := s.Lines()
	if len(lines) == 0 {
		log.Info("checkout finished with empty cart")
		return nil, nil
	}

	r, err := uc.receipts.Write(ctx, lines, s.Total())
	if err != nil {
		log.Error("failed to write receipt after saving catalog", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", checkout.ErrReceiptNotWritten, err)
	}

	log.Info("checkout finished",
		zap.String("receipt", r.FileName),
		zap.Int("lines", len(lines)),
		zap.String("total", model.FormatMoney(r.Total)),
	)
	return r, nil
}
