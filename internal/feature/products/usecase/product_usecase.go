// Package usecase implements the business logic for the products feature.
package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"storefront_backend/internal/domain/repository"
	"storefront_backend/internal/feature/products/domain/entity"
)

// ProductInput carries the writable product columns; create and update take
// the same full set.
type ProductInput struct {
	Name  string
	Price decimal.Decimal
}

// ProductRepository is the uniform CRUD contract instantiated for products.
type ProductRepository = repository.Crud[entity.Product, ProductInput, ProductInput]

type productUsecase struct {
	products ProductRepository
}

// NewProductUsecase wires the product repository.
func NewProductUsecase(products ProductRepository) *productUsecase {
	return &productUsecase{products: products}
}

func (u *productUsecase) GetAll(ctx context.Context) ([]entity.Product, error) {
	return u.products.GetAll(ctx)
}

func (u *productUsecase) GetDetail(ctx context.Context, id int64) (entity.Product, error) {
	return u.products.GetDetail(ctx, id)
}

func (u *productUsecase) Create(ctx context.Context, in ProductInput) (entity.Product, error) {
	return u.products.Create(ctx, in)
}

func (u *productUsecase) Update(ctx context.Context, id int64, in ProductInput) (entity.Product, error) {
	return u.products.Update(ctx, id, in)
}

func (u *productUsecase) Delete(ctx context.Context, id int64) (entity.Product, error) {
	return u.products.Delete(ctx, id)
}
