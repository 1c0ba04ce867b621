package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oficina/internal/domain/entities"
)

func TestCustomerGormRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewCustomerGormRepository(db)

	ana, err := repo.Create(context.Background(), entities.Customer{
		Name:         "ANA SOUZA",
		Phone:        "11 99999-0000",
		RegisteredAt: "2026-01-01",
	})
	require.NoError(t, err)
	require.NotZero(t, ana.ID)

	t.Run("get by id", func(t *testing.T) {
		got, err := repo.GetByID(context.Background(), ana.ID)
		require.NoError(t, err)
		assert.Equal(t, "ANA SOUZA", got.Name)
	})

	t.Run("missing id yields the zero value", func(t *testing.T) {
		got, err := repo.GetByID(context.Background(), 999)
		require.NoError(t, err)
		assert.Zero(t, got.ID)
	})

	t.Run("update keeps the registration date", func(t *testing.T) {
		got, err := repo.Update(context.Background(), entities.Customer{
			ID:    ana.ID,
			Name:  "ANA SOUZA LIMA",
			Phone: "11 99999-0000",
		})
		require.NoError(t, err)
		assert.Equal(t, "ANA SOUZA LIMA", got.Name)
		assert.Equal(t, "2026-01-01", got.RegisteredAt)
	})

	t.Run("update of a missing row yields the zero value", func(t *testing.T) {
		got, err := repo.Update(context.Background(), entities.Customer{ID: 999, Name: "X"})
		require.NoError(t, err)
		assert.Zero(t, got.ID)
	})

	t.Run("search matches name or phone case-insensitively", func(t *testing.T) {
		byName, err := repo.Search(context.Background(), "ana", 20)
		require.NoError(t, err)
		require.Len(t, byName, 1)

		byPhone, err := repo.Search(context.Background(), "99999", 20)
		require.NoError(t, err)
		require.Len(t, byPhone, 1)
	})

	t.Run("first by phone and name", func(t *testing.T) {
		got, err := repo.FirstByPhone(context.Background(), "11 99999-0000")
		require.NoError(t, err)
		assert.Equal(t, ana.ID, got.ID)

		got, err = repo.FirstByName(context.Background(), "ana souza lima")
		require.NoError(t, err)
		assert.Equal(t, ana.ID, got.ID)

		got, err = repo.FirstByName(context.Background(), "nobody")
		require.NoError(t, err)
		assert.Zero(t, got.ID)
	})
}
