package product

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productCols = []string{"product_id", "product_name", "description", "price", "image_url", "seller_id", "created_at"}

func TestPGRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC()
	mock.ExpectQuery("INSERT INTO products").
		WithArgs("Tomatoes", "", "4.5", "", int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"product_id", "created_at"}).AddRow(int64(11), now))

	p := &Product{Name: "Tomatoes", Price: "4.5", SellerID: 2}
	require.NoError(t, NewPGRepo(mock).Create(context.Background(), p))
	assert.Equal(t, int64(11), p.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepo_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC()
	mock.ExpectQuery("FROM products").
		WillReturnRows(pgxmock.NewRows(productCols).
			AddRow(int64(1), "Tomatoes", "1kg", "4.50", "t.jpg", int64(2), now).
			AddRow(int64(2), "Eggs", "", "3.00", "", int64(2), now))

	out, err := NewPGRepo(mock).List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Eggs", out[1].Name)
	assert.Equal(t, "4.50", out[0].Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepo_List_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("FROM products").WillReturnRows(pgxmock.NewRows(productCols))

	out, err := NewPGRepo(mock).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestPGRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("FROM products WHERE product_id").
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	_, err = NewPGRepo(mock).GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
