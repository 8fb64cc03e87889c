package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"storefront_backend/internal/api"
	"storefront_backend/internal/feature/products/domain/entity"
	"storefront_backend/internal/feature/products/usecase"
	"storefront_backend/internal/platform/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	api.RegisterTagNames()
	logger.Init(logger.Options{Output: io.Discard})
	os.Exit(m.Run())
}

type mockProductUsecase struct {
	GetAllFunc    func(ctx context.Context) ([]entity.Product, error)
	GetDetailFunc func(ctx context.Context, id int64) (entity.Product, error)
	CreateFunc    func(ctx context.Context, in usecase.ProductInput) (entity.Product, error)
	UpdateFunc    func(ctx context.Context, id int64, in usecase.ProductInput) (entity.Product, error)
	DeleteFunc    func(ctx context.Context, id int64) (entity.Product, error)
}

func (m *mockProductUsecase) GetAll(ctx context.Context) ([]entity.Product, error) {
	return m.GetAllFunc(ctx)
}

func (m *mockProductUsecase) GetDetail(ctx context.Context, id int64) (entity.Product, error) {
	return m.GetDetailFunc(ctx, id)
}

func (m *mockProductUsecase) Create(ctx context.Context, in usecase.ProductInput) (entity.Product, error) {
	return m.CreateFunc(ctx, in)
}

func (m *mockProductUsecase) Update(ctx context.Context, id int64, in usecase.ProductInput) (entity.Product, error) {
	return m.UpdateFunc(ctx, id, in)
}

func (m *mockProductUsecase) Delete(ctx context.Context, id int64) (entity.Product, error) {
	return m.DeleteFunc(ctx, id)
}

func productRouter(uc ProductUsecase) *gin.Engine {
	h := NewProductHandler(uc, logger.Get(), api.ErrorWriter{})
	r := gin.New()
	r.GET("/products", h.Index)
	r.GET("/products/:id", h.Show)
	r.POST("/products/create", h.Create)
	r.PUT("/products", h.Update)
	r.DELETE("/products/:id", h.Delete)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProductHandler_Index(t *testing.T) {
	uc := &mockProductUsecase{
		GetAllFunc: func(ctx context.Context) ([]entity.Product, error) {
			return []entity.Product{{ID: 1, Name: "Keyboard", Price: decimal.RequireFromString("59.99")}}, nil
		},
	}
	r := productRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Keyboard"`)
	assert.Contains(t, w.Body.String(), `"price":"59.99"`)
}

func TestProductHandler_Create(t *testing.T) {
	uc := &mockProductUsecase{
		CreateFunc: func(ctx context.Context, in usecase.ProductInput) (entity.Product, error) {
			assert.Equal(t, "Keyboard", in.Name)
			assert.True(t, in.Price.Equal(decimal.RequireFromString("59.99")))
			return entity.Product{ID: 1, Name: in.Name, Price: in.Price}, nil
		},
	}
	r := productRouter(uc)

	w := doJSON(r, http.MethodPost, "/products/create", `{"name":"Keyboard","price":"59.99"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":1`)
}

func TestProductHandler_CreateMissingFields(t *testing.T) {
	r := productRouter(&mockProductUsecase{})

	w := doJSON(r, http.MethodPost, "/products/create", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Field name, price is required", w.Body.String())
}

func TestProductHandler_Update(t *testing.T) {
	uc := &mockProductUsecase{
		UpdateFunc: func(ctx context.Context, id int64, in usecase.ProductInput) (entity.Product, error) {
			assert.Equal(t, int64(3), id)
			return entity.Product{ID: 3, Name: in.Name, Price: in.Price}, nil
		},
	}
	r := productRouter(uc)

	w := doJSON(r, http.MethodPut, "/products", `{"id":3,"name":"Mouse","price":"19.99"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Mouse"`)
}

func TestProductHandler_ShowInvalidID(t *testing.T) {
	r := productRouter(&mockProductUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/products/abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid id"}`, w.Body.String())
}

func TestProductHandler_Delete(t *testing.T) {
	uc := &mockProductUsecase{
		DeleteFunc: func(ctx context.Context, id int64) (entity.Product, error) {
			return entity.Product{ID: id}, nil
		},
	}
	r := productRouter(uc)

	req := httptest.NewRequest(http.MethodDelete, "/products/42", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Delete id 42 successfully", w.Body.String())
}
