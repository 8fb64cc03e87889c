// Package adapters provides the gorm-backed repository for the products
// feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"storefront_backend/internal/domain/repository"
	"storefront_backend/internal/feature/products/domain/entity"
	"storefront_backend/internal/feature/products/usecase"
)

type productPostgres struct {
	db *gorm.DB
}

var _ usecase.ProductRepository = (*productPostgres)(nil)

// NewProductPostgres creates the product repository on the injected gorm
// handle.
func NewProductPostgres(db *gorm.DB) *productPostgres {
	return &productPostgres{db: db}
}

func (r *productPostgres) GetAll(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productPostgres) GetDetail(ctx context.Context, id int64) (entity.Product, error) {
	var p entity.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.Product{}, repository.ErrNotFound
		}
		return entity.Product{}, err
	}
	return p, nil
}

func (r *productPostgres) Create(ctx context.Context, in usecase.ProductInput) (entity.Product, error) {
	p := entity.Product{Name: in.Name, Price: in.Price}
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return entity.Product{}, err
	}
	return p, nil
}

func (r *productPostgres) Update(ctx context.Context, id int64, in usecase.ProductInput) (entity.Product, error) {
	res := r.db.WithContext(ctx).Model(&entity.Product{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":  in.Name,
			"price": in.Price,
		})
	if res.Error != nil {
		return entity.Product{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entity.Product{}, repository.ErrNotFound
	}
	return r.GetDetail(ctx, id)
}

// Delete removes the product without checking whether any order still
// references it; a database foreign key violation propagates as-is.
func (r *productPostgres) Delete(ctx context.Context, id int64) (entity.Product, error) {
	prev, err := r.GetDetail(ctx, id)
	if err != nil {
		return entity.Product{}, err
	}
	if err := r.db.WithContext(ctx).Delete(&entity.Product{}, id).Error; err != nil {
		return entity.Product{}, err
	}
	return prev, nil
}
