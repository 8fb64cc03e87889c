// Package router wires the HTTP route table.
package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"storefront_backend/internal/api"
	orderhandler "storefront_backend/internal/feature/orders/transport/handler"
	producthandler "storefront_backend/internal/feature/products/transport/handler"
	userhandler "storefront_backend/internal/feature/users/transport/handler"
	jwtmw "storefront_backend/internal/platform/jwt"
	"storefront_backend/internal/platform/metrics"
)

// NewRouter builds the gin engine with the full storefront route table.
// Protected routes require a bearer token; /users/create, /users/auth,
// GET /products and GET /products/:id are public.
func NewRouter(users *userhandler.UserHandler, products *producthandler.ProductHandler,
	orders *orderhandler.OrderHandler, verifier jwtmw.Verifier, log zerolog.Logger) *gin.Engine {

	api.RegisterTagNames()

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log), metrics.Middleware())

	auth := jwtmw.AuthRequired(verifier)

	r.GET("/healthz", health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/users/create", users.Create)
	r.POST("/users/auth", users.Authenticate)
	r.GET("/users", auth, users.Index)
	r.GET("/users/:id", auth, users.Show)
	r.PUT("/users", auth, users.Update)
	r.DELETE("/users/:id", auth, users.Delete)

	r.GET("/products", products.Index)
	r.POST("/products/create", auth, products.Create)
	r.GET("/products/:id", products.Show)
	r.PUT("/products", auth, products.Update)
	r.DELETE("/products/:id", auth, products.Delete)

	r.GET("/orders", auth, orders.Index)
	r.POST("/orders/create", auth, orders.Create)
	r.GET("/orders/:id", auth, orders.Show)
	r.PUT("/orders", auth, orders.Update)
	r.DELETE("/orders/:id", auth, orders.Delete)

	return r
}

func health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}

func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}
