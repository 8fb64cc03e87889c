// Package adapters provides the gorm-backed repository for the orders
// feature. Orders span two tables, so every operation here is a sequence of
// statements executed on a single pooled connection.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront_backend/internal/domain/repository"
	"storefront_backend/internal/feature/orders/domain/entity"
	"storefront_backend/internal/feature/orders/usecase"
)

type orderPostgres struct {
	db *gorm.DB
}

var _ usecase.OrderRepository = (*orderPostgres)(nil)

// NewOrderPostgres creates the order repository on the injected gorm handle.
func NewOrderPostgres(db *gorm.DB) *orderPostgres {
	return &orderPostgres{db: db}
}

// GetAll fetches every order row, then one line-item query per order.
// The outer order is whatever the database returns.
func (r *orderPostgres) GetAll(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		if err := conn.Find(&orders).Error; err != nil {
			return err
		}
		for i := range orders {
			if err := conn.Where("order_id = ?", orders[i].ID).Find(&orders[i].Products).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// GetDetail composes the order row with its line items. A missing order row
// is ErrNotFound; the line-item query never runs against a missing order.
func (r *orderPostgres) GetDetail(ctx context.Context, id int64) (entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		if err := conn.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrNotFound
			}
			return err
		}
		return conn.Where("order_id = ?", id).Find(&order.Products).Error
	})
	if err != nil {
		return entity.Order{}, err
	}
	return order, nil
}

// Create inserts the order row, then one line-item row per product,
// sequentially on the same connection. There is no enclosing transaction:
// a failure partway through the loop aborts the remaining inserts and
// leaves the rows already written in place.
func (r *orderPostgres) Create(ctx context.Context, in usecase.OrderInput) (entity.Order, error) {
	order := entity.Order{UserID: in.UserID, Status: in.Status}
	err := r.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		if err := conn.Omit(clause.Associations).Create(&order).Error; err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		order.Products = make([]entity.OrderProduct, 0, len(in.Products))
		for _, li := range in.Products {
			op := entity.OrderProduct{OrderID: order.ID, ProductID: li.ProductID, Quantity: li.Quantity}
			if err := conn.Omit(clause.Associations).Create(&op).Error; err != nil {
				return fmt.Errorf("insert line item for product %d: %w", li.ProductID, err)
			}
			order.Products = append(order.Products, op)
		}
		return nil
	})
	if err != nil {
		return entity.Order{}, err
	}
	return order, nil
}

// Update overwrites the status, then replaces the whole line-item set:
// delete every row for the order, reinsert the input set. A missing order
// short-circuits with ErrNotFound before any line-item statement runs.
// Like Create, the sequence is not transactional.
func (r *orderPostgres) Update(ctx context.Context, id int64, in usecase.OrderInput) (entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		res := conn.Model(&entity.Order{}).Where("id = ?", id).Update("status", in.Status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repository.ErrNotFound
		}

		if err := conn.Where("order_id = ?", id).Delete(&entity.OrderProduct{}).Error; err != nil {
			return fmt.Errorf("clear line items: %w", err)
		}

		items := make([]entity.OrderProduct, 0, len(in.Products))
		for _, li := range in.Products {
			op := entity.OrderProduct{OrderID: id, ProductID: li.ProductID, Quantity: li.Quantity}
			if err := conn.Omit(clause.Associations).Create(&op).Error; err != nil {
				return fmt.Errorf("insert line item for product %d: %w", li.ProductID, err)
			}
			items = append(items, op)
		}

		if err := conn.First(&order, id).Error; err != nil {
			return err
		}
		order.Products = items
		return nil
	})
	if err != nil {
		return entity.Order{}, err
	}
	return order, nil
}

// Delete removes the line items first, then the order row, and returns the
// previous order row without reattaching its products.
func (r *orderPostgres) Delete(ctx context.Context, id int64) (entity.Order, error) {
	var prev entity.Order
	err := r.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		if err := conn.First(&prev, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrNotFound
			}
			return err
		}
		if err := conn.Where("order_id = ?", id).Delete(&entity.OrderProduct{}).Error; err != nil {
			return err
		}
		return conn.Delete(&entity.Order{}, id).Error
	})
	if err != nil {
		return entity.Order{}, err
	}
	return prev, nil
}
