package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fekuna/omnipos-grocery/internal/model"
	"github.com/shopspring/decimal"
)

var csvHeader = []string{"id", "name", "price", "stock"}

// CSVRepository keeps the catalog in a single CSV file with a header row.
type CSVRepository struct {
	Path string
}

func NewCSVRepository(path string) *CSVRepository {
	return &CSVRepository{Path: path}
}

func (r *CSVRepository) Load(ctx context.Context) ([]model.Product, error) {
	f, err := os.Open(r.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Product{}, nil
		}
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []model.Product{}, nil
		}
		return nil, fmt.Errorf("%w: header: %v", model.ErrMalformedRecord, err)
	}

	cols, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	products := []model.Product{}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrMalformedRecord, err)
		}

		line, _ := reader.FieldPos(0)
		p, err := parseRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", model.ErrMalformedRecord, line, err)
		}
		products = append(products, p)
	}

	return products, nil
}

// Save writes the catalog to a temporary file next to Path and renames it
// over the previous table.
func (r *CSVRepository) Save(ctx context.Context, products []model.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(r.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create catalog dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(r.Path)+"-*")
	if err != nil {
		return fmt.Errorf("create temp catalog: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(csvHeader); err != nil {
		tmp.Close()
		return fmt.Errorf("write catalog header: %w", err)
	}
	for _, p := range products {
		row := []string{p.ID, p.Name, model.FormatPrice(p.Price), strconv.Itoa(p.Stock)}
		if err := w.Write(row); err != nil {
			tmp.Close()
			return fmt.Errorf("write product %s: %w", p.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush catalog: %w", err)
	}
	if err := tmp.Chmod(r.fileMode()); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp catalog: %w", err)
	}

	if err := os.Rename(tmp.Name(), r.Path); err != nil {
		return fmt.Errorf("replace catalog: %w", err)
	}
	return nil
}

type columns struct {
	id, name, price, stock int
}

func columnIndex(header []string) (columns, error) {
	idx := map[string]int{}
	for i, h := range header {
		idx[h] = i
	}

	var cols columns
	for _, c := range []struct {
		name string
		dst  *int
	}{
		{"id", &cols.id},
		{"name", &cols.name},
		{"price", &cols.price},
		{"stock", &cols.stock},
	} {
		i, ok := idx[c.name]
		if !ok {
			return columns{}, fmt.Errorf("%w: missing column %q", model.ErrMalformedRecord, c.name)
		}
		*c.dst = i
	}
	return cols, nil
}

func parseRow(row []string, cols columns) (model.Product, error) {
	price, err := decimal.NewFromString(row[cols.price])
	if err != nil {
		return model.Product{}, fmt.Errorf("price %q: %v", row[cols.price], err)
	}
	stock, err := strconv.Atoi(row[cols.stock])
	if err != nil {
		return model.Product{}, fmt.Errorf("stock %q: %v", row[cols.stock], err)
	}

	return model.Product{
		ID:    row[cols.id],
		Name:  row[cols.name],
		Price: price,
		Stock: stock,
	}, nil
}

// fileMode keeps the permissions of an existing table; a new one gets 0644.
func (r *CSVRepository) fileMode() os.FileMode {
	if fi, err := os.Stat(r.Path); err == nil {
		return fi.Mode().Perm()
	}
	return 0o644
}
