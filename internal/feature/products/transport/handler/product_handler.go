// Package handler exposes the products feature over HTTP.
package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"storefront_backend/internal/api"
	"storefront_backend/internal/feature/products/domain/entity"
	"storefront_backend/internal/feature/products/transport/http/dto"
	"storefront_backend/internal/feature/products/usecase"
)

// ProductUsecase is the consumer-side contract the handler depends on.
type ProductUsecase interface {
	GetAll(ctx context.Context) ([]entity.Product, error)
	GetDetail(ctx context.Context, id int64) (entity.Product, error)
	Create(ctx context.Context, in usecase.ProductInput) (entity.Product, error)
	Update(ctx context.Context, id int64, in usecase.ProductInput) (entity.Product, error)
	Delete(ctx context.Context, id int64) (entity.Product, error)
}

// ProductHandler handles the /products routes.
type ProductHandler struct {
	products ProductUsecase
	log      zerolog.Logger
	errs     api.ErrorWriter
}

func NewProductHandler(products ProductUsecase, log zerolog.Logger, errs api.ErrorWriter) *ProductHandler {
	return &ProductHandler{products: products, log: log, errs: errs}
}

func (h *ProductHandler) Index(c *gin.Context) {
	products, err := h.products.GetAll(c.Request.Context())
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Show(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id"})
		return
	}

	product, err := h.products.GetDetail(c.Request.Context(), id)
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BindError(c, err)
		return
	}

	product, err := h.products.Create(c.Request.Context(), usecase.ProductInput{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	var req dto.UpdateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BindError(c, err)
		return
	}

	product, err := h.products.Update(c.Request.Context(), req.ID, usecase.ProductInput{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id"})
		return
	}

	if _, err := h.products.Delete(c.Request.Context(), id); err != nil {
		h.errs.Write(c, err)
		return
	}
	c.String(http.StatusOK, fmt.Sprintf("Delete id %d successfully", id))
}
