// Package dto defines the request bodies for the products endpoints.
package dto

import "github.com/shopspring/decimal"

// CreateProductReq is the body for POST /products/create.
type CreateProductReq struct {
	Name  string          `json:"name" binding:"required"`
	Price decimal.Decimal `json:"price" binding:"required"`
}

// UpdateProductReq is the body for PUT /products; a full-column overwrite.
type UpdateProductReq struct {
	ID    int64           `json:"id" binding:"required"`
	Name  string          `json:"name" binding:"required"`
	Price decimal.Decimal `json:"price" binding:"required"`
}
