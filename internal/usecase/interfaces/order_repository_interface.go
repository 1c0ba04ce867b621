package interfaces

import (
	"context"
	"errors"

	"oficina/internal/domain/entities"
)

// ErrDuplicateCode reports a primary-key collision on the order code. The
// repository translates the driver-specific uniqueness violation so the
// create-order retry loop stays storage-agnostic.
var ErrDuplicateCode = errors.New("duplicate order code")

// WorkUpdate carries the editable closing fields of a service order.
// FinalAmount is derived by the use case before the update reaches the store.
type WorkUpdate struct {
	WorkPerformed string
	Subtotal      float64
	Discount      float64
	FinalAmount   float64
	PaymentMethod string
	Notes         string
}

// StatusCount is one row of the open-orders dashboard grouping.
type StatusCount struct {
	Status entities.OrderStatus
	Count  int64
}

// IOrderRepository abstracts SQLite persistence for ServiceOrder and its
// line items.
//
// Not-found convention: lookups and conditional updates return a zero-value
// entity with a nil error when no row matches, mirroring ICustomerRepository.
//
// CreateWithItems persists the order header and all items in one transaction;
// a crash can no longer leave a header without its intake items.
type IOrderRepository interface {
	MaxCodeForYearPrefix(ctx context.Context, prefix string) (string, error)
	CreateWithItems(ctx context.Context, o entities.ServiceOrder, items []entities.LineItem) error
	GetByCode(ctx context.Context, code string) (entities.ServiceOrder, error)
	List(ctx context.Context, status entities.OrderStatus) ([]entities.ServiceOrder, error)
	Search(ctx context.Context, query string, limit int) ([]entities.ServiceOrder, error)
	UpdateStatus(ctx context.Context, code string, status entities.OrderStatus, exitDate string) (entities.ServiceOrder, error)
	UpdateWork(ctx context.Context, code string, w WorkUpdate) (entities.ServiceOrder, error)
	UpdateTotals(ctx context.Context, code string, subtotal, finalAmount float64) error

	AddItem(ctx context.Context, item entities.LineItem) (entities.LineItem, error)
	ItemByID(ctx context.Context, id uint) (entities.LineItem, error)
	RemoveItem(ctx context.Context, id uint) error
	SumItems(ctx context.Context, code string) (float64, error)

	ListByEntryMonth(ctx context.Context, monthPrefix string) ([]entities.ServiceOrder, error)
	ListEnteredSince(ctx context.Context, minEntryDate string) ([]entities.ServiceOrder, error)
	CountOpenByStatus(ctx context.Context) ([]StatusCount, error)
}
