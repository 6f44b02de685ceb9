package receipt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fekuna/omnipos-grocery/internal/model"
	"github.com/shopspring/decimal"
)

const fileNameLayout = "20060102_150405"

// FileWriter writes each receipt as a text file named after the time it was
// issued. A second receipt within the same second fails instead of
// overwriting the first.
type FileWriter struct {
	Dir      string
	Currency string
	Now      func() time.Time
}

func NewFileWriter(dir, currency string) *FileWriter {
	return &FileWriter{Dir: dir, Currency: currency, Now: time.Now}
}

func FileName(t time.Time) string {
	return "bill_" + t.Format(fileNameLayout) + ".txt"
}

// Render produces the receipt body.
func Render(lines []model.CartLine, total decimal.Decimal, currency string) string {
	var b strings.Builder
	b.WriteString("====== Grocery Store Bill ======\n")
	for _, l := range lines {
		fmt.Fprintf(&b, "%s x%d @ %s = %s%s\n",
			l.Name, l.Quantity, model.FormatPrice(l.Price), currency, model.FormatMoney(l.Cost))
	}
	fmt.Fprintf(&b, "\nTotal Amount: %s%s\n", currency, model.FormatMoney(total))
	b.WriteString("Thank you for shopping!\n")
	return b.String()
}

func (w *FileWriter) Write(ctx context.Context, lines []model.CartLine, total decimal.Decimal) (*model.Receipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create receipt dir: %w", err)
	}

	now := w.Now()
	name := FileName(now)
	path := filepath.Join(w.Dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create receipt %s: %w", name, err)
	}
	if _, err := f.WriteString(Render(lines, total, w.Currency)); err != nil {
		f.Close()
		return nil, fmt.Errorf("write receipt %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close receipt %s: %w", name, err)
	}

	return &model.Receipt{
		FileName:  name,
		Path:      path,
		Lines:     lines,
		Total:     total,
		CreatedAt: now,
	}, nil
}
