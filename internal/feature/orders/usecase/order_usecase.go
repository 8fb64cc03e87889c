// Package usecase implements the business logic for the orders feature.
package usecase

import (
	"context"

	"storefront_backend/internal/domain/repository"
	"storefront_backend/internal/feature/orders/domain/entity"
)

// LineItem is one (product_id, quantity) pair of an order input. No check is
// made here that the product exists; the database foreign key is the only
// guard.
type LineItem struct {
	ProductID int64
	Quantity  int
}

// OrderInput carries the composite write input. Create and update take the
// same shape; update replaces the whole line-item set.
type OrderInput struct {
	UserID   int64
	Status   bool
	Products []LineItem
}

// OrderRepository is the uniform CRUD contract instantiated with the
// composite order inputs.
type OrderRepository = repository.Crud[entity.Order, OrderInput, OrderInput]

type orderUsecase struct {
	orders OrderRepository
}

// NewOrderUsecase wires the order repository.
func NewOrderUsecase(orders OrderRepository) *orderUsecase {
	return &orderUsecase{orders: orders}
}

func (u *orderUsecase) GetAll(ctx context.Context) ([]entity.Order, error) {
	return u.orders.GetAll(ctx)
}

func (u *orderUsecase) GetDetail(ctx context.Context, id int64) (entity.Order, error) {
	return u.orders.GetDetail(ctx, id)
}

func (u *orderUsecase) Create(ctx context.Context, in OrderInput) (entity.Order, error) {
	return u.orders.Create(ctx, in)
}

func (u *orderUsecase) Update(ctx context.Context, id int64, in OrderInput) (entity.Order, error) {
	return u.orders.Update(ctx, id, in)
}

func (u *orderUsecase) Delete(ctx context.Context, id int64) (entity.Order, error) {
	return u.orders.Delete(ctx, id)
}
