package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"oficina/internal/domain/entities"
	"oficina/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound    = errors.New("service order not found")
	ErrInvalidDevice    = errors.New("invalid device name")
	ErrInvalidStatus    = errors.New("invalid order status")
	ErrInvalidLineItem  = errors.New("invalid line item")
	ErrLineItemNotFound = errors.New("line item not found")
	ErrCodeExhausted    = errors.New("could not allocate a free order code")
)

const (
	// createAttempts bounds the regenerate-and-retry loop on code collisions.
	createAttempts = 3
	// orderSearchLimit bounds the order search payload.
	orderSearchLimit = 50
	// codeSequenceDigits is the minimum width of the RA sequence. Sequences
	// above 999 grow extra digits; there is no cap.
	codeSequenceDigits = 3
	codeYearDigits     = 4
)

// NewLineItem is a line item as supplied by the intake form, before the store
// assigns it an id.
type NewLineItem struct {
	Description string
	UnitValue   float64
}

// CreateOrderInput carries everything the intake form collects for a new OS.
// Subtotal and the final amount are computed here, never supplied.
type CreateOrderInput struct {
	CustomerID    uint
	Device        string
	Brand         string
	Model         string
	SerialNumber  string
	ReportedFault string
	Discount      float64
	PaymentMethod string
	Notes         string
	Items         []NewLineItem
}

// WorkInput carries the editable closing fields of an order. The final amount
// is recomputed from Subtotal and Discount on every call; callers cannot set
// it directly.
type WorkInput struct {
	WorkPerformed string
	Subtotal      float64
	Discount      float64
	PaymentMethod string
	Notes         string
}

// IOrderUseCase exposes the service-order lifecycle:
//
//   - NextCode implements the yearly sequential numbering authority.
//   - Create allocates a code and persists header + items atomically,
//     retrying on code collisions.
//   - UpdateStatus permits every transition; Entregue stamps the exit date,
//     anything else blanks it.
//   - UpdateWork/AddLineItem/RemoveLineItem keep FinalAmount derived as
//     max(subtotal-discount, 0) on every mutation path.
//   - Receipt builds the read-only view handed to the receipt printer.
type IOrderUseCase interface {
	NextCode(ctx context.Context) string
	Create(ctx context.Context, in CreateOrderInput) (entities.ServiceOrder, error)
	GetByCode(ctx context.Context, code string) (entities.ServiceOrder, error)
	List(ctx context.Context, statusFilter string) ([]entities.ServiceOrder, error)
	Search(ctx context.Context, query string) ([]entities.ServiceOrder, error)
	UpdateStatus(ctx context.Context, code, status string) (entities.ServiceOrder, error)
	UpdateWork(ctx context.Context, code string, in WorkInput) (entities.ServiceOrder, error)
	AddLineItem(ctx context.Context, code, description string, unitValue float64) (entities.LineItem, error)
	RemoveLineItem(ctx context.Context, id uint) error
	Receipt(ctx context.Context, code string, company entities.CompanyInfo) (entities.Receipt, error)
}

type OrderUseCase struct {
	repo      interfaces.IOrderRepository
	customers interfaces.ICustomerRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, customers interfaces.ICustomerRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo, customers: customers}
}

// NextCode returns the next free RA for the current year: the year followed by
// the zero-padded successor of the highest existing sequence, or sequence 1
// when the year has no orders yet.
//
// The returned code is only a proposal. Two near-simultaneous callers can
// receive the same code; Create resolves that with its retry loop. When the
// lookup itself fails the method falls back to the year's first sequence,
// which is the documented legacy behavior.
func (u *OrderUseCase) NextCode(ctx context.Context) string {
	prefix := strconv.Itoa(time.Now().Year())

	last, err := u.repo.MaxCodeForYearPrefix(ctx, prefix)
	if err != nil {
		log.WithError(err).Warn("order code lookup failed, falling back to first sequence")
		return formatCode(prefix, 1)
	}

	seq := 1
	if len(last) > codeYearDigits {
		if n, convErr := strconv.Atoi(last[codeYearDigits:]); convErr == nil {
			seq = n + 1
		}
	}
	return formatCode(prefix, seq)
}

func formatCode(yearPrefix string, seq int) string {
	return fmt.Sprintf("%s%0*d", yearPrefix, codeSequenceDigits, seq)
}

func (u *OrderUseCase) Create(ctx context.Context, in CreateOrderInput) (entities.ServiceOrder, error) {
	if in.CustomerID == 0 {
		return entities.ServiceOrder{}, ErrInvalidCustomerID
	}
	device := strings.TrimSpace(in.Device)
	if device == "" {
		return entities.ServiceOrder{}, ErrInvalidDevice
	}

	customer, err := u.customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if customer.ID == 0 {
		return entities.ServiceOrder{}, ErrCustomerNotFound
	}

	items := make([]entities.LineItem, 0, len(in.Items))
	for _, it := range in.Items {
		desc := strings.TrimSpace(it.Description)
		if desc == "" {
			return entities.ServiceOrder{}, ErrInvalidLineItem
		}
		items = append(items, entities.LineItem{Description: desc, UnitValue: it.UnitValue})
	}

	subtotal := lo.SumBy(items, func(it entities.LineItem) float64 { return it.UnitValue })
	order := entities.ServiceOrder{
		CustomerID:    in.CustomerID,
		Device:        device,
		Brand:         strings.TrimSpace(in.Brand),
		Model:         strings.TrimSpace(in.Model),
		SerialNumber:  strings.TrimSpace(in.SerialNumber),
		ReportedFault: strings.TrimSpace(in.ReportedFault),
		Notes:         strings.TrimSpace(in.Notes),
		Status:        entities.OrderStatusAberto,
		Subtotal:      subtotal,
		Discount:      in.Discount,
		FinalAmount:   entities.ComputeFinalAmount(subtotal, in.Discount),
		PaymentMethod: strings.TrimSpace(in.PaymentMethod),
		EntryDate:     time.Now().Format(entities.DateLayout),
	}

	for attempt := 1; attempt <= createAttempts; attempt++ {
		order.Code = u.NextCode(ctx)
		err = u.repo.CreateWithItems(ctx, order, items)
		if err == nil {
			return order, nil
		}
		if !errors.Is(err, interfaces.ErrDuplicateCode) {
			return entities.ServiceOrder{}, err
		}
		log.WithField("code", order.Code).Warnf("order code taken, retrying (%d/%d)", attempt, createAttempts)
	}
	return entities.ServiceOrder{}, fmt.Errorf("%w: %v", ErrCodeExhausted, err)
}

func (u *OrderUseCase) GetByCode(ctx context.Context, code string) (entities.ServiceOrder, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}

	o, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.Code == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return o, nil
}

// List returns orders newest first. statusFilter may be empty (all orders) or
// any spelling NormalizeStatus accepts.
func (u *OrderUseCase) List(ctx context.Context, statusFilter string) ([]entities.ServiceOrder, error) {
	if strings.TrimSpace(statusFilter) == "" {
		return u.repo.List(ctx, "")
	}
	status, ok := entities.NormalizeStatus(statusFilter)
	if !ok {
		return nil, ErrInvalidStatus
	}
	return u.repo.List(ctx, status)
}

// Search matches the query against the order code or the customer name,
// newest first, capped at orderSearchLimit rows.
func (u *OrderUseCase) Search(ctx context.Context, query string) ([]entities.ServiceOrder, error) {
	return u.repo.Search(ctx, strings.TrimSpace(query), orderSearchLimit)
}

func (u *OrderUseCase) UpdateStatus(ctx context.Context, code, status string) (entities.ServiceOrder, error) {
	normalized, ok := entities.NormalizeStatus(status)
	if !ok {
		return entities.ServiceOrder{}, ErrInvalidStatus
	}

	exitDate := ""
	if normalized == entities.OrderStatusEntregue {
		exitDate = time.Now().Format(entities.DateLayout)
	}

	updated, err := u.repo.UpdateStatus(ctx, strings.TrimSpace(code), normalized, exitDate)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if updated.Code == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return updated, nil
}

func (u *OrderUseCase) UpdateWork(ctx context.Context, code string, in WorkInput) (entities.ServiceOrder, error) {
	w := interfaces.WorkUpdate{
		WorkPerformed: strings.TrimSpace(in.WorkPerformed),
		Subtotal:      in.Subtotal,
		Discount:      in.Discount,
		FinalAmount:   entities.ComputeFinalAmount(in.Subtotal, in.Discount),
		PaymentMethod: strings.TrimSpace(in.PaymentMethod),
		Notes:         strings.TrimSpace(in.Notes),
	}

	updated, err := u.repo.UpdateWork(ctx, strings.TrimSpace(code), w)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if updated.Code == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return updated, nil
}

func (u *OrderUseCase) AddLineItem(ctx context.Context, code, description string, unitValue float64) (entities.LineItem, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return entities.LineItem{}, ErrInvalidLineItem
	}

	order, err := u.GetByCode(ctx, code)
	if err != nil {
		return entities.LineItem{}, err
	}

	item, err := u.repo.AddItem(ctx, entities.LineItem{
		OrderCode:   order.Code,
		Description: description,
		UnitValue:   unitValue,
	})
	if err != nil {
		return entities.LineItem{}, err
	}

	if err := u.recomputeTotals(ctx, order.Code, order.Discount); err != nil {
		return entities.LineItem{}, err
	}
	return item, nil
}

func (u *OrderUseCase) RemoveLineItem(ctx context.Context, id uint) error {
	item, err := u.repo.ItemByID(ctx, id)
	if err != nil {
		return err
	}
	if item.ID == 0 {
		return ErrLineItemNotFound
	}

	order, err := u.GetByCode(ctx, item.OrderCode)
	if err != nil {
		return err
	}

	if err := u.repo.RemoveItem(ctx, id); err != nil {
		return err
	}
	return u.recomputeTotals(ctx, order.Code, order.Discount)
}

// recomputeTotals re-derives the order subtotal from the live item sum and
// the final amount from the stored discount.
func (u *OrderUseCase) recomputeTotals(ctx context.Context, code string, discount float64) error {
	subtotal, err := u.repo.SumItems(ctx, code)
	if err != nil {
		return err
	}
	return u.repo.UpdateTotals(ctx, code, subtotal, entities.ComputeFinalAmount(subtotal, discount))
}

// Receipt resolves the two-up receipt view for a delivered or in-progress
// order. The company record arrives by value from configuration; nothing here
// mutates shared state.
func (u *OrderUseCase) Receipt(ctx context.Context, code string, company entities.CompanyInfo) (entities.Receipt, error) {
	order, err := u.GetByCode(ctx, code)
	if err != nil {
		return entities.Receipt{}, err
	}
	return entities.Receipt{Company: company, Order: order}, nil
}
