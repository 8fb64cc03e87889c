package router

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"storefront_backend/internal/api"
	orderadapters "storefront_backend/internal/feature/orders/adapters"
	orderentity "storefront_backend/internal/feature/orders/domain/entity"
	orderhandler "storefront_backend/internal/feature/orders/transport/handler"
	orderusecase "storefront_backend/internal/feature/orders/usecase"
	productadapters "storefront_backend/internal/feature/products/adapters"
	productentity "storefront_backend/internal/feature/products/domain/entity"
	producthandler "storefront_backend/internal/feature/products/transport/handler"
	productusecase "storefront_backend/internal/feature/products/usecase"
	useradapters "storefront_backend/internal/feature/users/adapters"
	userentity "storefront_backend/internal/feature/users/domain/entity"
	userhandler "storefront_backend/internal/feature/users/transport/handler"
	userusecase "storefront_backend/internal/feature/users/usecase"
	jwtmw "storefront_backend/internal/platform/jwt"
	"storefront_backend/internal/platform/logger"
	"storefront_backend/internal/platform/password"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init(logger.Options{Output: io.Discard})
	os.Exit(m.Run())
}

// newTestServer assembles the whole stack on an in-memory database, the same
// wiring main performs against Postgres.
func newTestServer(t *testing.T) (*gin.Engine, *jwtmw.Issuer) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(
		&userentity.User{},
		&productentity.Product{},
		&orderentity.Order{},
		&orderentity.OrderProduct{},
	))

	log := logger.Get()
	hasher := password.NewHasher("test-pepper", 4)
	issuer := jwtmw.NewIssuer("test-secret")
	errs := api.ErrorWriter{}

	userH := userhandler.NewUserHandler(
		userusecase.NewUserUsecase(useradapters.NewUserPostgres(gdb), hasher, issuer), log, errs)
	productH := producthandler.NewProductHandler(
		productusecase.NewProductUsecase(productadapters.NewProductPostgres(gdb)), log, errs)
	orderH := orderhandler.NewOrderHandler(
		orderusecase.NewOrderUsecase(orderadapters.NewOrderPostgres(gdb)), log, errs)

	return NewRouter(userH, productH, orderH, issuer, log), issuer
}

func doJSON(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signup(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/users/create",
		`{"firstname":"Ada","lastname":"Lovelace","username":"`+username+`","password":"pw123"}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp api.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealthz(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(r, http.MethodGet, "/healthz", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestSignupIssuesUsableToken(t *testing.T) {
	r, issuer := newTestServer(t)

	token := signup(t, r, "ada")

	user, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "ada", user.Username)
	assert.Equal(t, "Ada", user.Firstname)
	assert.Equal(t, "Lovelace", user.Lastname)
	assert.NotZero(t, user.ID)
}

func TestAuthFlow(t *testing.T) {
	r, _ := newTestServer(t)
	signup(t, r, "ada")

	w := doJSON(r, http.MethodPost, "/users/auth", `{"username":"ada","password":"pw123"}`, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, "/users/auth", `{"username":"ada","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "username or password is incorrect, plz check again", w.Body.String())
}

func TestPublicProductReads(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(r, http.MethodGet, "/products", "", "")

	assert.Equal(t, http.StatusOK, w.Code, "the catalog is browsable without a token")
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	r, _ := newTestServer(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/users"},
		{http.MethodGet, "/orders"},
		{http.MethodPost, "/products/create"},
		{http.MethodDelete, "/orders/1"},
	} {
		w := doJSON(r, route.method, route.path, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, route.path)

		var body api.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, api.MessageAccessDenied, body.Error)
	}
}

func TestProductLifecycle(t *testing.T) {
	r, _ := newTestServer(t)
	token := signup(t, r, "ada")

	w := doJSON(r, http.MethodPost, "/products/create", `{"name":"Keyboard","price":"59.99"}`, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created productentity.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.ID)

	w = doJSON(r, http.MethodGet, "/products", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Keyboard"`)

	w = doJSON(r, http.MethodDelete, "/products/1", "", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Delete id 1 successfully", w.Body.String())
}

func TestOrderLifecycle(t *testing.T) {
	r, issuer := newTestServer(t)
	token := signup(t, r, "ada")

	user, err := issuer.Verify(token)
	require.NoError(t, err)

	w := doJSON(r, http.MethodPost, "/products/create", `{"name":"Keyboard","price":"59.99"}`, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var product productentity.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))

	w = doJSON(r, http.MethodPost, "/orders/create",
		`{"user_id":1,"status":true,"products":[{"product_id":1,"quantity":2}]}`, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var order orderentity.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, user.ID, order.UserID)
	require.Len(t, order.Products, 1)
	assert.Equal(t, product.ID, order.Products[0].ProductID)
	assert.Equal(t, 2, order.Products[0].Quantity)

	w = doJSON(r, http.MethodGet, "/orders/1", "", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"quantity":2`)

	w = doJSON(r, http.MethodDelete, "/orders/1", "", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Delete id : 1 successfully", w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	r, _ := newTestServer(t)

	// Hit a route first so the counters have something to show.
	doJSON(r, http.MethodGet, "/healthz", "", "")

	w := doJSON(r, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "storefront_http_requests_total")
}
