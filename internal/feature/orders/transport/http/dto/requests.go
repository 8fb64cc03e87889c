// Package dto defines the request bodies for the orders endpoints.
package dto

// OrderProductReq is one line item of an order request.
type OrderProductReq struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CreateOrderReq is the body for POST /orders/create. Status is a pointer so
// that an explicit false still counts as present.
type CreateOrderReq struct {
	UserID   int64             `json:"user_id" binding:"required"`
	Status   *bool             `json:"status" binding:"required"`
	Products []OrderProductReq `json:"products" binding:"required"`
}

// UpdateOrderReq is the body for PUT /orders. user_id is required by the
// route contract but the update itself only touches status and line items.
type UpdateOrderReq struct {
	OrderID  int64             `json:"order_id" binding:"required"`
	UserID   int64             `json:"user_id" binding:"required"`
	Status   *bool             `json:"status" binding:"required"`
	Products []OrderProductReq `json:"products" binding:"required"`
}
