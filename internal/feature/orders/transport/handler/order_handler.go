// Package handler exposes the orders feature over HTTP.
package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"storefront_backend/internal/api"
	"storefront_backend/internal/feature/orders/domain/entity"
	"storefront_backend/internal/feature/orders/transport/http/dto"
	"storefront_backend/internal/feature/orders/usecase"
)

// OrderUsecase is the consumer-side contract the handler depends on.
type OrderUsecase interface {
	GetAll(ctx context.Context) ([]entity.Order, error)
	GetDetail(ctx context.Context, id int64) (entity.Order, error)
	Create(ctx context.Context, in usecase.OrderInput) (entity.Order, error)
	Update(ctx context.Context, id int64, in usecase.OrderInput) (entity.Order, error)
	Delete(ctx context.Context, id int64) (entity.Order, error)
}

// OrderHandler handles the /orders routes.
type OrderHandler struct {
	orders OrderUsecase
	log    zerolog.Logger
	errs   api.ErrorWriter
}

func NewOrderHandler(orders OrderUsecase, log zerolog.Logger, errs api.ErrorWriter) *OrderHandler {
	return &OrderHandler{orders: orders, log: log, errs: errs}
}

func (h *OrderHandler) Index(c *gin.Context) {
	orders, err := h.orders.GetAll(c.Request.Context())
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Show(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id"})
		return
	}

	order, err := h.orders.GetDetail(c.Request.Context(), id)
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BindError(c, err)
		return
	}

	order, err := h.orders.Create(c.Request.Context(), orderInput(req.UserID, *req.Status, req.Products))
	if err != nil {
		h.log.Warn().Err(err).Int64("user_id", req.UserID).Msg("order create failed")
		h.errs.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Update(c *gin.Context) {
	var req dto.UpdateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BindError(c, err)
		return
	}

	order, err := h.orders.Update(c.Request.Context(), req.OrderID, orderInput(req.UserID, *req.Status, req.Products))
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id"})
		return
	}

	if _, err := h.orders.Delete(c.Request.Context(), id); err != nil {
		h.errs.Write(c, err)
		return
	}
	c.String(http.StatusOK, fmt.Sprintf("Delete id : %d successfully", id))
}

func orderInput(userID int64, status bool, products []dto.OrderProductReq) usecase.OrderInput {
	items := make([]usecase.LineItem, 0, len(products))
	for _, p := range products {
		items = append(items, usecase.LineItem{ProductID: p.ProductID, Quantity: p.Quantity})
	}
	return usecase.OrderInput{UserID: userID, Status: status, Products: items}
}
