package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"oficina/internal/domain/entities"
	mock_interfaces "oficina/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCustomerUseCase_Create(t *testing.T) {
	t.Run("blank name", func(t *testing.T) {
		uc := NewCustomerUseCase(nil)
		_, err := uc.Create(context.Background(), "   ", "", "", "")
		if !errors.Is(err, ErrInvalidCustomerName) {
			t.Fatalf("expected ErrInvalidCustomerName, got %v", err)
		}
	})

	t.Run("trims fields and stamps the registration date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Customer{})).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.Name != "ANA SOUZA" || c.Phone != "11 99999-0000" || c.Address != "RUA A, 10" {
					t.Fatalf("unexpected customer: %+v", c)
				}
				if c.RegisteredAt != time.Now().Format(entities.DateLayout) {
					t.Fatalf("unexpected registration date %s", c.RegisteredAt)
				}
				c.ID = 1
				return c, nil
			},
		)

		c, err := uc.Create(context.Background(), " ANA SOUZA ", " RUA A, 10 ", " 11 99999-0000 ", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != 1 {
			t.Fatalf("unexpected customer: %+v", c)
		}
	})
}

func TestCustomerUseCase_GetByID(t *testing.T) {
	t.Run("zero id", func(t *testing.T) {
		uc := NewCustomerUseCase(nil)
		_, err := uc.GetByID(context.Background(), 0)
		if !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), uint(9)).Return(entities.Customer{}, nil)

		_, err := uc.GetByID(context.Background(), 9)
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), uint(9)).Return(entities.Customer{ID: 9, Name: "ANA"}, nil)

		c, err := uc.GetByID(context.Background(), 9)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Name != "ANA" {
			t.Fatalf("unexpected customer: %+v", c)
		}
	})
}

func TestCustomerUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Customer{}, nil)

		_, err := uc.Update(context.Background(), 3, "ANA", "", "", "")
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().
			Update(gomock.Any(), entities.Customer{ID: 3, Name: "ANA", Phone: "123"}).
			Return(entities.Customer{ID: 3, Name: "ANA", Phone: "123"}, nil)

		c, err := uc.Update(context.Background(), 3, " ANA ", "", " 123 ", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Phone != "123" {
			t.Fatalf("unexpected customer: %+v", c)
		}
	})
}

func TestCustomerUseCase_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockICustomerRepository(ctrl)
	uc := NewCustomerUseCase(repo)

	repo.EXPECT().Search(gomock.Any(), "ana", customerSearchLimit).
		Return([]entities.Customer{{ID: 1, Name: "ANA"}}, nil)

	got, err := uc.Search(context.Background(), "  ana  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "ANA" {
		t.Fatalf("unexpected result: %+v", got)
	}
}
