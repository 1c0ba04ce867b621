package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"

	"oficina/internal/domain/entities"
	"oficina/internal/usecase/interfaces"
)

// PaymentMethodTotal is one row of the per-payment-method rollup.
type PaymentMethodTotal struct {
	PaymentMethod string  `json:"payment_method"`
	OrderCount    int     `json:"order_count"`
	Total         float64 `json:"total"`
}

// MonthlySummary aggregates the orders whose entry date falls in one month.
type MonthlySummary struct {
	Month           string               `json:"month"`
	Gross           float64              `json:"gross"`
	Discounts       float64              `json:"discounts"`
	Final           float64              `json:"final"`
	OrderCount      int                  `json:"order_count"`
	ByPaymentMethod []PaymentMethodTotal `json:"by_payment_method"`
}

// MonthRevenue is one month of the trailing revenue history.
type MonthRevenue struct {
	Month      string  `json:"month"`
	Total      float64 `json:"total"`
	OrderCount int     `json:"order_count"`
}

// IFinanceUseCase exposes the read-only financial rollups. The queries take
// no locks and tolerate slightly stale reads; they are safe to run while the
// lifecycle manager writes.
type IFinanceUseCase interface {
	MonthlySummary(ctx context.Context, year, month int) (MonthlySummary, error)
	TrailingMonths(ctx context.Context, n int) ([]MonthRevenue, error)
	StatusCounts(ctx context.Context) (map[entities.OrderStatus]int64, error)
	PendingCount(ctx context.Context) (int64, error)
	ReadyCount(ctx context.Context) (int64, error)
}

type FinanceUseCase struct {
	repo interfaces.IOrderRepository
}

var _ IFinanceUseCase = (*FinanceUseCase)(nil)

func NewFinanceUseCase(repo interfaces.IOrderRepository) *FinanceUseCase {
	return &FinanceUseCase{repo: repo}
}

// MonthlySummary sums the orders entered in the given month. Membership is an
// exact match on the YYYY-MM prefix of the entry date, so "2026-03-31" counts
// toward March and "2026-04-01" does not. Zero year or month defaults to the
// current one.
//
// The per-method rollup covers orders with a non-empty payment method only
// and is ordered by summed final amount, largest first.
func (u *FinanceUseCase) MonthlySummary(ctx context.Context, year, month int) (MonthlySummary, error) {
	now := time.Now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	prefix := fmt.Sprintf("%04d-%02d", year, month)

	orders, err := u.repo.ListByEntryMonth(ctx, prefix)
	if err != nil {
		return MonthlySummary{}, err
	}

	summary := MonthlySummary{
		Month:      prefix,
		Gross:      lo.SumBy(orders, func(o entities.ServiceOrder) float64 { return o.Subtotal }),
		Discounts:  lo.SumBy(orders, func(o entities.ServiceOrder) float64 { return o.Discount }),
		Final:      lo.SumBy(orders, func(o entities.ServiceOrder) float64 { return o.FinalAmount }),
		OrderCount: len(orders),
	}

	paid := lo.Filter(orders, func(o entities.ServiceOrder, _ int) bool { return o.PaymentMethod != "" })
	for method, group := range lo.GroupBy(paid, func(o entities.ServiceOrder) string { return o.PaymentMethod }) {
		summary.ByPaymentMethod = append(summary.ByPaymentMethod, PaymentMethodTotal{
			PaymentMethod: method,
			OrderCount:    len(group),
			Total:         lo.SumBy(group, func(o entities.ServiceOrder) float64 { return o.FinalAmount }),
		})
	}
	sort.Slice(summary.ByPaymentMethod, func(i, j int) bool {
		a, b := summary.ByPaymentMethod[i], summary.ByPaymentMethod[j]
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		return a.PaymentMethod < b.PaymentMethod
	})

	return summary, nil
}

// TrailingMonths groups the revenue of the orders entered within the last n
// months, ascending chronologically. Months without orders are absent rather
// than zero-filled.
func (u *FinanceUseCase) TrailingMonths(ctx context.Context, n int) ([]MonthRevenue, error) {
	if n <= 0 {
		return []MonthRevenue{}, nil
	}
	minDate := time.Now().AddDate(0, -n, 0).Format(entities.DateLayout)

	orders, err := u.repo.ListEnteredSince(ctx, minDate)
	if err != nil {
		return nil, err
	}

	byMonth := map[string]*MonthRevenue{}
	for _, o := range orders {
		month := o.EntryMonth()
		if month == "" {
			continue
		}
		rev, ok := byMonth[month]
		if !ok {
			rev = &MonthRevenue{Month: month}
			byMonth[month] = rev
		}
		rev.Total += o.FinalAmount
		rev.OrderCount++
	}

	months := lo.Keys(byMonth)
	sort.Strings(months)

	history := make([]MonthRevenue, 0, len(months))
	for _, m := range months {
		history = append(history, *byMonth[m])
	}
	return history, nil
}

// StatusCounts reports how many undelivered orders sit in each status, for
// the dashboard cards.
func (u *FinanceUseCase) StatusCounts(ctx context.Context) (map[entities.OrderStatus]int64, error) {
	rows, err := u.repo.CountOpenByStatus(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[entities.OrderStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// PendingCount counts orders still waiting on the bench: Aberto plus
// Aguardando Peça.
func (u *FinanceUseCase) PendingCount(ctx context.Context) (int64, error) {
	counts, err := u.StatusCounts(ctx)
	if err != nil {
		return 0, err
	}
	return counts[entities.OrderStatusAberto] + counts[entities.OrderStatusAguardandoPeca], nil
}

// ReadyCount counts orders repaired and waiting for pickup.
func (u *FinanceUseCase) ReadyCount(ctx context.Context) (int64, error) {
	counts, err := u.StatusCounts(ctx)
	if err != nil {
		return 0, err
	}
	return counts[entities.OrderStatusPronto], nil
}
