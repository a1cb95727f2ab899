package favourite

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPGRepo(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO favourites").
		WithArgs(int64(1), int64(4)).
		WillReturnRows(pgxmock.NewRows([]string{"favourite_id"}).AddRow(int64(5)))
	mock.ExpectQuery("FROM favourites f").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"favourite_id", "product_id", "product_name", "price", "image_url"}).
			AddRow(int64(5), int64(4), "Eggs", "3.00", "eggs.jpg"))
	mock.ExpectExec("DELETE FROM favourites").
		WithArgs(int64(1), int64(4)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	repo := NewPGRepo(mock)
	f := &Favourite{UserID: 1, ProductID: 4}
	require.NoError(t, repo.Add(context.Background(), f))
	assert.Equal(t, int64(5), f.ID)

	lines, err := repo.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "eggs.jpg", lines[0].ImageURL)

	n, err := repo.Remove(context.Background(), 1, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
