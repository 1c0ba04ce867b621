package interfaces

import (
	"context"

	"oficina/internal/domain/entities"
)

// ICustomerRepository abstracts SQLite persistence for Customer.
//
// Not-found convention: lookups return a zero-value Customer (ID == 0) with a
// nil error; the use case decides whether that is an error.
//
// The directory must be able to:
//   - create a customer and return its store-assigned id
//   - fetch/update a customer by id
//   - search by name or phone substring for the intake form
//   - resolve exact phone/name matches for the import dedupe policy
type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id uint) (entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Search(ctx context.Context, query string, limit int) ([]entities.Customer, error)
	ListAll(ctx context.Context) ([]entities.Customer, error)
	FirstByPhone(ctx context.Context, phone string) (entities.Customer, error)
	FirstByName(ctx context.Context, name string) (entities.Customer, error)
}
