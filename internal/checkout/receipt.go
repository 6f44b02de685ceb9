package checkout

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-grocery/internal/model"
	"github.com/shopspring/decimal"
)

// ErrReceiptNotWritten is returned by Finish when the catalog was saved but
// the receipt could not be written. The sale stands.
var ErrReceiptNotWritten = errors.New("catalog saved, receipt not written")

type ReceiptWriter interface {
	Write(ctx context.Context, lines []model.CartLine, total decimal.Decimal) (*model.Receipt, error)
}
