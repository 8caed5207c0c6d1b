package cms

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/loganlanou/reviewhub/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreFailures_AreGeneric(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	svc := New(storage.FromDB(mockDB))
	connErr := errors.New("connection refused")

	mock.ExpectQuery("SELECT .* FROM products").WillReturnError(connErr)
	_, err = svc.ListProducts(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, connErr)
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrInvalidRequest))

	mock.ExpectQuery("UPDATE products SET").WillReturnError(errors.New("UNIQUE constraint failed: products.slug"))
	slug := "taken"
	_, err = svc.UpdateProduct(context.Background(), productPatch("p1", &slug))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrInvalidRequest))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreFailures_ImportRollsBack(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	svc := New(storage.FromDB(mockDB))

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM products").WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	_, err = svc.ImportProducts(context.Background(), fakeProducts(2))
	require.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
