package receipt

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fekuna/omnipos-grocery/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var issuedAt = time.Date(2026, 3, 7, 9, 5, 2, 0, time.Local)

func lines() []model.CartLine {
	rice := model.Product{ID: "P1", Name: "Rice", Price: decimal.RequireFromString("50.0"), Stock: 10}
	dal := model.Product{ID: "P2", Name: "Dal", Price: decimal.RequireFromString("12.25"), Stock: 10}
	return []model.CartLine{model.NewCartLine(rice, 3), model.NewCartLine(dal, 2)}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "bill_20260307_090502.txt", FileName(issuedAt))
}

func TestRender(t *testing.T) {
	want := "====== Grocery Store Bill ======\n" +
		"Rice x3 @ 50.0 = ₹150.00\n" +
		"Dal x2 @ 12.25 = ₹24.50\n" +
		"\n" +
		"Total Amount: ₹174.50\n" +
		"Thank you for shopping!\n"

	assert.Equal(t, want, Render(lines(), decimal.RequireFromString("174.5"), "₹"))
}

func TestFileWriter_Write(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "bills")
	w := NewFileWriter(dir, "$")
	w.Now = func() time.Time { return issuedAt }

	r, err := w.Write(context.Background(), lines(), decimal.RequireFromString("174.5"))

	require.NoError(t, err)
	assert.Equal(t, "bill_20260307_090502.txt", r.FileName)
	assert.Equal(t, filepath.Join(dir, r.FileName), r.Path)
	assert.Equal(t, issuedAt, r.CreatedAt)

	data, err := os.ReadFile(r.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Rice x3 @ 50.0 = $150.00\n")
	assert.Contains(t, string(data), "Total Amount: $174.50\n")
}

func TestFileWriter_SameSecondDoesNotOverwrite(t *testing.T) {
	dir := t.TempDir()
	w := NewFileWriter(dir, "₹")
	w.Now = func() time.Time { return issuedAt }

	first, err := w.Write(context.Background(), lines()[:1], decimal.NewFromInt(150))
	require.NoError(t, err)

	_, err = w.Write(context.Background(), lines()[1:], decimal.RequireFromString("24.5"))
	require.ErrorIs(t, err, os.ErrExist)

	data, err := os.ReadFile(first.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Rice x3")
}
