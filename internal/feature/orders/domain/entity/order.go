// Package entity defines the composed order records.
package entity

import (
	productentity "storefront_backend/internal/feature/products/domain/entity"
	userentity "storefront_backend/internal/feature/users/domain/entity"
)

// Order is the parent row. Products is populated by the repository from the
// order_products join table; it is never written through gorm associations.
type Order struct {
	ID     int64 `gorm:"primaryKey" json:"id"`
	UserID int64 `gorm:"not null" json:"user_id"`
	Status bool  `gorm:"not null" json:"status"`

	User     userentity.User `gorm:"foreignKey:UserID" json:"-"`
	Products []OrderProduct  `gorm:"foreignKey:OrderID" json:"products"`
}

// OrderProduct is one line item: a (product_id, quantity) pair keyed by
// order_id. Only product_id and quantity appear on the wire, matching the
// original responses.
type OrderProduct struct {
	ID        int64 `gorm:"primaryKey" json:"-"`
	OrderID   int64 `gorm:"not null" json:"-"`
	ProductID int64 `gorm:"not null" json:"product_id"`
	Quantity  int   `gorm:"not null" json:"quantity"`

	Product productentity.Product `gorm:"foreignKey:ProductID" json:"-"`
}
