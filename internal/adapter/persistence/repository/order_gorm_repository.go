package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"oficina/internal/domain/entities"
	"oficina/internal/usecase/interfaces"
)

// OrderGormRepository persists ServiceOrder entities and their line items in
// the local SQLite file.
//
// Write model:
//   - CreateWithItems runs in a single transaction so the order header can
//     never outlive a crash without its intake items.
//   - Conditional updates return a zero-value order when no row matched,
//     mirroring the Customer repository's not-found convention.
type OrderGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IOrderRepository = (*OrderGormRepository)(nil)

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// MaxCodeForYearPrefix returns the code with the highest sequence among
// codes starting with the year prefix, or "" when the year has none. The
// sequence is compared numerically; lexicographic order would misplace
// sequences once they grow past three digits.
func (r *OrderGormRepository) MaxCodeForYearPrefix(ctx context.Context, prefix string) (string, error) {
	var o entities.ServiceOrder
	err := r.db.WithContext(ctx).
		Select("code").
		Where("code LIKE ?", prefix+"%").
		Order("CAST(substr(code, 5) AS INTEGER) DESC").
		First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return o.Code, nil
}

func (r *OrderGormRepository) CreateWithItems(ctx context.Context, o entities.ServiceOrder, items []entities.LineItem) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Customer", "Items").Create(&o).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderCode = o.Code
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return translateDuplicate(err)
}

// GetByCode returns the fully resolved order view: header, owning customer
// and line items in insertion order.
func (r *OrderGormRepository) GetByCode(ctx context.Context, code string) (entities.ServiceOrder, error) {
	var o entities.ServiceOrder
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("line_items.id") }).
		First(&o, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.ServiceOrder{}, nil
	}
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) List(ctx context.Context, status entities.OrderStatus) ([]entities.ServiceOrder, error) {
	q := r.db.WithContext(ctx).Preload("Customer").Order("entry_date DESC, code DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var out []entities.ServiceOrder
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *OrderGormRepository) Search(ctx context.Context, query string, limit int) ([]entities.ServiceOrder, error) {
	like := likePattern(query)
	var out []entities.ServiceOrder
	err := r.db.WithContext(ctx).
		Joins("JOIN customers ON customers.id = service_orders.customer_id").
		Where("service_orders.code LIKE ? OR lower(customers.name) LIKE lower(?)", like, like).
		Preload("Customer").
		Order("entry_date DESC, code DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *OrderGormRepository) UpdateStatus(ctx context.Context, code string, status entities.OrderStatus, exitDate string) (entities.ServiceOrder, error) {
	return r.updateByCode(ctx, code, map[string]any{
		"status":    status,
		"exit_date": exitDate,
	})
}

func (r *OrderGormRepository) UpdateWork(ctx context.Context, code string, w interfaces.WorkUpdate) (entities.ServiceOrder, error) {
	return r.updateByCode(ctx, code, map[string]any{
		"work_performed": w.WorkPerformed,
		"subtotal":       w.Subtotal,
		"discount":       w.Discount,
		"final_amount":   w.FinalAmount,
		"payment_method": w.PaymentMethod,
		"notes":          w.Notes,
	})
}

func (r *OrderGormRepository) UpdateTotals(ctx context.Context, code string, subtotal, finalAmount float64) error {
	return r.db.WithContext(ctx).
		Model(&entities.ServiceOrder{}).
		Where("code = ?", code).
		Updates(map[string]any{"subtotal": subtotal, "final_amount": finalAmount}).Error
}

func (r *OrderGormRepository) updateByCode(ctx context.Context, code string, fields map[string]any) (entities.ServiceOrder, error) {
	tx := r.db.WithContext(ctx).Model(&entities.ServiceOrder{}).Where("code = ?", code).Updates(fields)
	if tx.Error != nil {
		return entities.ServiceOrder{}, tx.Error
	}
	if tx.RowsAffected == 0 {
		return entities.ServiceOrder{}, nil
	}

	var o entities.ServiceOrder
	if err := r.db.WithContext(ctx).First(&o, "code = ?", code).Error; err != nil {
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) AddItem(ctx context.Context, item entities.LineItem) (entities.LineItem, error) {
	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		return entities.LineItem{}, err
	}
	return item, nil
}

func (r *OrderGormRepository) ItemByID(ctx context.Context, id uint) (entities.LineItem, error) {
	var item entities.LineItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.LineItem{}, nil
	}
	if err != nil {
		return entities.LineItem{}, err
	}
	return item, nil
}

func (r *OrderGormRepository) RemoveItem(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entities.LineItem{}, id).Error
}

func (r *OrderGormRepository) SumItems(ctx context.Context, code string) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&entities.LineItem{}).
		Where("order_code = ?", code).
		Select("COALESCE(SUM(unit_value), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *OrderGormRepository) ListByEntryMonth(ctx context.Context, monthPrefix string) ([]entities.ServiceOrder, error) {
	var out []entities.ServiceOrder
	err := r.db.WithContext(ctx).
		Where("entry_date LIKE ?", monthPrefix+"%").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *OrderGormRepository) ListEnteredSince(ctx context.Context, minEntryDate string) ([]entities.ServiceOrder, error) {
	var out []entities.ServiceOrder
	err := r.db.WithContext(ctx).
		Where("entry_date >= ?", minEntryDate).
		Order("entry_date").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *OrderGormRepository) CountOpenByStatus(ctx context.Context) ([]interfaces.StatusCount, error) {
	var rows []interfaces.StatusCount
	err := r.db.WithContext(ctx).
		Model(&entities.ServiceOrder{}).
		Select("status, COUNT(*) AS count").
		Where("status != ?", entities.OrderStatusEntregue).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
