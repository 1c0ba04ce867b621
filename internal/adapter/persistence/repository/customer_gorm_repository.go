package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"oficina/internal/domain/entities"
	"oficina/internal/usecase/interfaces"
)

// CustomerGormRepository persists Customer entities in the local SQLite file
// through GORM. Lookups follow the repository not-found convention: a missing
// row yields a zero-value Customer and a nil error.
type CustomerGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ICustomerRepository = (*CustomerGormRepository)(nil)

func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

func (r *CustomerGormRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerGormRepository) GetByID(ctx context.Context, id uint) (entities.Customer, error) {
	var c entities.Customer
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Customer{}, nil
	}
	if err != nil {
		return entities.Customer{}, err
	}
	return c, nil
}

// Update overwrites the mutable contact fields. RegisteredAt is deliberately
// excluded; it is immutable after creation.
func (r *CustomerGormRepository) Update(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	tx := r.db.WithContext(ctx).Model(&entities.Customer{}).Where("id = ?", c.ID).Updates(map[string]any{
		"name":     c.Name,
		"address":  c.Address,
		"phone":    c.Phone,
		"document": c.Document,
	})
	if tx.Error != nil {
		return entities.Customer{}, tx.Error
	}
	if tx.RowsAffected == 0 {
		return entities.Customer{}, nil
	}
	return r.GetByID(ctx, c.ID)
}

func (r *CustomerGormRepository) Search(ctx context.Context, query string, limit int) ([]entities.Customer, error) {
	like := likePattern(query)
	var out []entities.Customer
	err := r.db.WithContext(ctx).
		Where("lower(name) LIKE lower(?) OR lower(phone) LIKE lower(?)", like, like).
		Order("name").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CustomerGormRepository) ListAll(ctx context.Context) ([]entities.Customer, error) {
	var out []entities.Customer
	if err := r.db.WithContext(ctx).Order("name").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CustomerGormRepository) FirstByPhone(ctx context.Context, phone string) (entities.Customer, error) {
	return r.firstWhere(ctx, "phone = ?", phone)
}

func (r *CustomerGormRepository) FirstByName(ctx context.Context, name string) (entities.Customer, error) {
	return r.firstWhere(ctx, "lower(name) = lower(?)", name)
}

func (r *CustomerGormRepository) firstWhere(ctx context.Context, cond string, arg any) (entities.Customer, error) {
	var c entities.Customer
	err := r.db.WithContext(ctx).Where(cond, arg).Order("id").First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Customer{}, nil
	}
	if err != nil {
		return entities.Customer{}, err
	}
	return c, nil
}
