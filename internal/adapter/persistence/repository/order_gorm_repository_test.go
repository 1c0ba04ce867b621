package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"oficina/internal/domain/entities"
	"oficina/internal/infrastructure/database"
	"oficina/internal/usecase/interfaces"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, name string) entities.Customer {
	t.Helper()
	c, err := NewCustomerGormRepository(db).Create(context.Background(), entities.Customer{
		Name:         name,
		RegisteredAt: "2026-01-01",
	})
	require.NoError(t, err)
	return c
}

func TestOrderGormRepository_CreateWithItems(t *testing.T) {
	t.Run("persists header and items together", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewOrderGormRepository(db)
		customer := seedCustomer(t, db, "ANA")

		order := entities.ServiceOrder{
			Code:       "2026001",
			CustomerID: customer.ID,
			Device:     "TV",
			Status:     entities.OrderStatusAberto,
			EntryDate:  "2026-03-10",
		}
		items := []entities.LineItem{
			{Description: "TROCA DE TELA", UnitValue: 100},
			{Description: "CABO", UnitValue: 30},
		}
		require.NoError(t, repo.CreateWithItems(context.Background(), order, items))

		got, err := repo.GetByCode(context.Background(), "2026001")
		require.NoError(t, err)
		assert.Equal(t, "TV", got.Device)
		require.NotNil(t, got.Customer)
		assert.Equal(t, "ANA", got.Customer.Name)
		require.Len(t, got.Items, 2)
		assert.Equal(t, "TROCA DE TELA", got.Items[0].Description)
	})

	t.Run("duplicate code is translated", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewOrderGormRepository(db)
		customer := seedCustomer(t, db, "ANA")

		order := entities.ServiceOrder{Code: "2026001", CustomerID: customer.ID, EntryDate: "2026-03-10"}
		require.NoError(t, repo.CreateWithItems(context.Background(), order, nil))

		err := repo.CreateWithItems(context.Background(), order, nil)
		assert.ErrorIs(t, err, interfaces.ErrDuplicateCode)
	})

	t.Run("unknown customer is rejected", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewOrderGormRepository(db)

		order := entities.ServiceOrder{Code: "2026001", CustomerID: 999, EntryDate: "2026-03-10"}
		err := repo.CreateWithItems(context.Background(), order, nil)
		assert.Error(t, err)
	})
}

func TestOrderGormRepository_MaxCodeForYearPrefix(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderGormRepository(db)
	customer := seedCustomer(t, db, "ANA")

	for _, code := range []string{"2026002", "2026999", "20261000", "2025050"} {
		require.NoError(t, repo.CreateWithItems(context.Background(), entities.ServiceOrder{
			Code:       code,
			CustomerID: customer.ID,
			EntryDate:  "2026-03-10",
		}, nil))
	}

	t.Run("sequence is compared numerically", func(t *testing.T) {
		got, err := repo.MaxCodeForYearPrefix(context.Background(), "2026")
		require.NoError(t, err)
		assert.Equal(t, "20261000", got)
	})

	t.Run("other years do not leak in", func(t *testing.T) {
		got, err := repo.MaxCodeForYearPrefix(context.Background(), "2025")
		require.NoError(t, err)
		assert.Equal(t, "2025050", got)
	})

	t.Run("empty year", func(t *testing.T) {
		got, err := repo.MaxCodeForYearPrefix(context.Background(), "2024")
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})
}

func TestOrderGormRepository_Updates(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderGormRepository(db)
	customer := seedCustomer(t, db, "ANA")

	require.NoError(t, repo.CreateWithItems(context.Background(), entities.ServiceOrder{
		Code:       "2026001",
		CustomerID: customer.ID,
		Status:     entities.OrderStatusAberto,
		EntryDate:  "2026-03-10",
	}, nil))

	t.Run("status and exit date", func(t *testing.T) {
		got, err := repo.UpdateStatus(context.Background(), "2026001", entities.OrderStatusEntregue, "2026-03-15")
		require.NoError(t, err)
		assert.Equal(t, entities.OrderStatusEntregue, got.Status)
		assert.Equal(t, "2026-03-15", got.ExitDate)
	})

	t.Run("work update", func(t *testing.T) {
		got, err := repo.UpdateWork(context.Background(), "2026001", interfaces.WorkUpdate{
			WorkPerformed: "TROCA DA FONTE",
			Subtotal:      200,
			Discount:      50,
			FinalAmount:   150,
			PaymentMethod: "Pix",
		})
		require.NoError(t, err)
		assert.Equal(t, 150.0, got.FinalAmount)
		assert.Equal(t, "TROCA DA FONTE", got.WorkPerformed)
	})

	t.Run("missing order yields the zero value", func(t *testing.T) {
		got, err := repo.UpdateStatus(context.Background(), "2026999", entities.OrderStatusPronto, "")
		require.NoError(t, err)
		assert.Equal(t, "", got.Code)
	})
}

func TestOrderGormRepository_Items(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderGormRepository(db)
	customer := seedCustomer(t, db, "ANA")

	require.NoError(t, repo.CreateWithItems(context.Background(), entities.ServiceOrder{
		Code:       "2026001",
		CustomerID: customer.ID,
		EntryDate:  "2026-03-10",
	}, nil))

	item, err := repo.AddItem(context.Background(), entities.LineItem{
		OrderCode:   "2026001",
		Description: "CABO",
		UnitValue:   30,
	})
	require.NoError(t, err)
	require.NotZero(t, item.ID)

	sum, err := repo.SumItems(context.Background(), "2026001")
	require.NoError(t, err)
	assert.Equal(t, 30.0, sum)

	require.NoError(t, repo.RemoveItem(context.Background(), item.ID))

	sum, err = repo.SumItems(context.Background(), "2026001")
	require.NoError(t, err)
	assert.Equal(t, 0.0, sum)

	gone, err := repo.ItemByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Zero(t, gone.ID)
}

func TestOrderGormRepository_Queries(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderGormRepository(db)
	ana := seedCustomer(t, db, "ANA")
	bia := seedCustomer(t, db, "BIA")

	seed := []entities.ServiceOrder{
		{Code: "2026001", CustomerID: ana.ID, Status: entities.OrderStatusAberto, EntryDate: "2026-03-10", FinalAmount: 90},
		{Code: "2026002", CustomerID: bia.ID, Status: entities.OrderStatusPronto, EntryDate: "2026-03-20", FinalAmount: 50},
		{Code: "2026003", CustomerID: ana.ID, Status: entities.OrderStatusEntregue, EntryDate: "2026-04-01", FinalAmount: 70},
	}
	for _, o := range seed {
		require.NoError(t, repo.CreateWithItems(context.Background(), o, nil))
	}

	t.Run("list newest first", func(t *testing.T) {
		got, err := repo.List(context.Background(), "")
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "2026003", got[0].Code)
	})

	t.Run("list filtered by status", func(t *testing.T) {
		got, err := repo.List(context.Background(), entities.OrderStatusPronto)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "2026002", got[0].Code)
	})

	t.Run("search by customer name", func(t *testing.T) {
		got, err := repo.Search(context.Background(), "ana", 50)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "2026003", got[0].Code)
	})

	t.Run("search by code fragment", func(t *testing.T) {
		got, err := repo.Search(context.Background(), "2026002", 50)
		require.NoError(t, err)
		require.Len(t, got, 1)
	})

	t.Run("month grouping", func(t *testing.T) {
		got, err := repo.ListByEntryMonth(context.Background(), "2026-03")
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("entered since", func(t *testing.T) {
		got, err := repo.ListEnteredSince(context.Background(), "2026-03-15")
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("open counts exclude delivered", func(t *testing.T) {
		rows, err := repo.CountOpenByStatus(context.Background())
		require.NoError(t, err)

		counts := map[entities.OrderStatus]int64{}
		for _, row := range rows {
			counts[row.Status] = row.Count
		}
		assert.Equal(t, int64(1), counts[entities.OrderStatusAberto])
		assert.Equal(t, int64(1), counts[entities.OrderStatusPronto])
		assert.NotContains(t, counts, entities.OrderStatusEntregue)
	})
}
