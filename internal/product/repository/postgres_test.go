package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fekuna/omnipos-grocery/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*PGRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPGRepository(sqlx.NewDb(db, "postgres")), mock
}

const insertProduct = `INSERT INTO products (position, id, name, price, stock) VALUES ($1, $2, $3, $4, $5)`

func TestPGRepository_Load(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "name", "price", "stock"}).
		AddRow("P1", "Rice", "50.0", int64(10)).
		AddRow("P2", "Dal", "89.50", int64(4))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, price, stock FROM products ORDER BY position`)).
		WillReturnRows(rows)

	products, err := repo.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "P1", products[0].ID)
	assert.True(t, products[0].Price.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, 4, products[1].Stock)
	assert.True(t, products[1].Price.Equal(decimal.RequireFromString("89.5")))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepository_LoadEmpty(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, price, stock FROM products ORDER BY position`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "stock"}))

	products, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestPGRepository_SaveReplacesAll(t *testing.T) {
	repo, mock := newMockRepo(t)
	products := []model.Product{
		{ID: "P1", Name: "Rice", Price: decimal.RequireFromString("50.0"), Stock: 7},
		{ID: "P2", Name: "Dal", Price: decimal.RequireFromString("89.5"), Stock: 4},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM products`)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectPrepare(regexp.QuoteMeta(insertProduct))
	mock.ExpectExec(regexp.QuoteMeta(insertProduct)).
		WithArgs(0, "P1", "Rice", sqlmock.AnyArg(), 7).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(insertProduct)).
		WithArgs(1, "P2", "Dal", sqlmock.AnyArg(), 4).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Save(context.Background(), products))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepository_SaveRollsBackOnInsertFailure(t *testing.T) {
	repo, mock := newMockRepo(t)
	products := []model.Product{
		{ID: "P1", Name: "Rice", Price: decimal.RequireFromString("50.0"), Stock: 7},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM products`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectPrepare(regexp.QuoteMeta(insertProduct))
	mock.ExpectExec(regexp.QuoteMeta(insertProduct)).
		WithArgs(0, "P1", "Rice", sqlmock.AnyArg(), 7).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.Save(context.Background(), products)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert product P1")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS products`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, Migrate(context.Background(), repo.DB))
	require.NoError(t, mock.ExpectationsWereMet())
}
