package usecase

import (
	"context"
	"errors"
	"testing"

	"oficina/internal/domain/entities"
	"oficina/internal/usecase/interfaces"
	mock_interfaces "oficina/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestFinanceUseCase_MonthlySummary(t *testing.T) {
	t.Run("explicit month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewFinanceUseCase(repo)

		repo.EXPECT().ListByEntryMonth(gomock.Any(), "2026-03").Return([]entities.ServiceOrder{
			{Code: "2026001", Subtotal: 100, Discount: 10, FinalAmount: 90, PaymentMethod: "Pix"},
			{Code: "2026002", Subtotal: 200, Discount: 0, FinalAmount: 200, PaymentMethod: "Dinheiro"},
			{Code: "2026003", Subtotal: 50, Discount: 0, FinalAmount: 50, PaymentMethod: "Pix"},
			{Code: "2026004", Subtotal: 30, Discount: 0, FinalAmount: 30},
		}, nil)

		s, err := uc.MonthlySummary(context.Background(), 2026, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Month != "2026-03" {
			t.Fatalf("unexpected month %s", s.Month)
		}
		if s.Gross != 380 || s.Discounts != 10 || s.Final != 370 || s.OrderCount != 4 {
			t.Fatalf("unexpected totals: %+v", s)
		}
		// The unpaid order is excluded; Dinheiro (200) outranks Pix (140).
		if len(s.ByPaymentMethod) != 2 {
			t.Fatalf("unexpected rollup: %+v", s.ByPaymentMethod)
		}
		if s.ByPaymentMethod[0].PaymentMethod != "Dinheiro" || s.ByPaymentMethod[0].Total != 200 {
			t.Fatalf("unexpected first row: %+v", s.ByPaymentMethod[0])
		}
		if s.ByPaymentMethod[1].PaymentMethod != "Pix" || s.ByPaymentMethod[1].OrderCount != 2 || s.ByPaymentMethod[1].Total != 140 {
			t.Fatalf("unexpected second row: %+v", s.ByPaymentMethod[1])
		}
	})

	t.Run("empty month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewFinanceUseCase(repo)

		repo.EXPECT().ListByEntryMonth(gomock.Any(), "2025-12").Return([]entities.ServiceOrder{}, nil)

		s, err := uc.MonthlySummary(context.Background(), 2025, 12)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.OrderCount != 0 || s.Final != 0 || len(s.ByPaymentMethod) != 0 {
			t.Fatalf("unexpected summary: %+v", s)
		}
	})

	t.Run("repo failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewFinanceUseCase(repo)

		repo.EXPECT().ListByEntryMonth(gomock.Any(), "2026-03").Return(nil, errors.New("db"))

		_, err := uc.MonthlySummary(context.Background(), 2026, 3)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestFinanceUseCase_TrailingMonths(t *testing.T) {
	t.Run("groups by month ascending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewFinanceUseCase(repo)

		repo.EXPECT().ListEnteredSince(gomock.Any(), gomock.Any()).Return([]entities.ServiceOrder{
			{Code: "2026010", EntryDate: "2026-02-15", FinalAmount: 80},
			{Code: "2026001", EntryDate: "2026-01-10", FinalAmount: 100},
			{Code: "2026002", EntryDate: "2026-01-20", FinalAmount: 40},
			{Code: "2025090", EntryDate: "bogus", FinalAmount: 999},
		}, nil)

		history, err := uc.TrailingMonths(context.Background(), 12)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(history) != 2 {
			t.Fatalf("unexpected history: %+v", history)
		}
		if history[0].Month != "2026-01" || history[0].Total != 140 || history[0].OrderCount != 2 {
			t.Fatalf("unexpected first month: %+v", history[0])
		}
		if history[1].Month != "2026-02" || history[1].Total != 80 {
			t.Fatalf("unexpected second month: %+v", history[1])
		}
	})

	t.Run("non-positive window", func(t *testing.T) {
		uc := NewFinanceUseCase(nil)
		history, err := uc.TrailingMonths(context.Background(), 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(history) != 0 {
			t.Fatalf("expected empty history, got %+v", history)
		}
	})
}

func TestFinanceUseCase_Counts(t *testing.T) {
	rows := []interfaces.StatusCount{
		{Status: entities.OrderStatusAberto, Count: 3},
		{Status: entities.OrderStatusAguardandoPeca, Count: 2},
		{Status: entities.OrderStatusPronto, Count: 4},
	}

	t.Run("status counts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewFinanceUseCase(repo)

		repo.EXPECT().CountOpenByStatus(gomock.Any()).Return(rows, nil)

		counts, err := uc.StatusCounts(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if counts[entities.OrderStatusAberto] != 3 || counts[entities.OrderStatusPronto] != 4 {
			t.Fatalf("unexpected counts: %+v", counts)
		}
	})

	t.Run("pending sums open and waiting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewFinanceUseCase(repo)

		repo.EXPECT().CountOpenByStatus(gomock.Any()).Return(rows, nil)

		pending, err := uc.PendingCount(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pending != 5 {
			t.Fatalf("expected 5, got %d", pending)
		}
	})

	t.Run("ready for pickup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewFinanceUseCase(repo)

		repo.EXPECT().CountOpenByStatus(gomock.Any()).Return(rows, nil)

		ready, err := uc.ReadyCount(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ready != 4 {
			t.Fatalf("expected 4, got %d", ready)
		}
	})
}
