package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"oficina/internal/domain/entities"
	"oficina/internal/usecase/interfaces"
)

var (
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrInvalidCustomerName = errors.New("invalid customer name")
	ErrInvalidCustomerID   = errors.New("invalid customer id")
)

// customerSearchLimit bounds the intake-form payload.
const customerSearchLimit = 20

// ICustomerUseCase exposes the customer directory operations.
//
//   - Create/Update trim every field and require a non-empty name.
//   - Search matches a case-insensitive substring against name OR phone,
//     ordered by name, capped at customerSearchLimit results.
type ICustomerUseCase interface {
	Create(ctx context.Context, name, address, phone, document string) (entities.Customer, error)
	GetByID(ctx context.Context, id uint) (entities.Customer, error)
	Update(ctx context.Context, id uint, name, address, phone, document string) (entities.Customer, error)
	Search(ctx context.Context, query string) ([]entities.Customer, error)
	ListAll(ctx context.Context) ([]entities.Customer, error)
}

type CustomerUseCase struct {
	repo interfaces.ICustomerRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

func (u *CustomerUseCase) Create(ctx context.Context, name, address, phone, document string) (entities.Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Customer{}, ErrInvalidCustomerName
	}

	c := entities.Customer{
		Name:         name,
		Address:      strings.TrimSpace(address),
		Phone:        strings.TrimSpace(phone),
		Document:     strings.TrimSpace(document),
		RegisteredAt: time.Now().Format(entities.DateLayout),
	}
	return u.repo.Create(ctx, c)
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id uint) (entities.Customer, error) {
	if id == 0 {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == 0 {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) Update(ctx context.Context, id uint, name, address, phone, document string) (entities.Customer, error) {
	if id == 0 {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Customer{}, ErrInvalidCustomerName
	}

	updated, err := u.repo.Update(ctx, entities.Customer{
		ID:       id,
		Name:     name,
		Address:  strings.TrimSpace(address),
		Phone:    strings.TrimSpace(phone),
		Document: strings.TrimSpace(document),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if updated.ID == 0 {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return updated, nil
}

func (u *CustomerUseCase) Search(ctx context.Context, query string) ([]entities.Customer, error) {
	return u.repo.Search(ctx, strings.TrimSpace(query), customerSearchLimit)
}

func (u *CustomerUseCase) ListAll(ctx context.Context) ([]entities.Customer, error) {
	return u.repo.ListAll(ctx)
}
