// Package http wires the gin engine: middleware chain, page routes and the
// internal checkout API.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nathanbrn/igniteShop/internal/http/handlers"
	"github.com/nathanbrn/igniteShop/internal/http/middleware"
)

// NewRouter builds the gin engine. homeProductID is the product the bare
// root redirects to (the first prerendered id); empty disables the redirect.
func NewRouter(logger *slog.Logger, pages handlers.PageSource, checkout handlers.SessionCreator, homeProductID string) *gin.Engine {
	r := gin.New()
	// ErrorHandler must sit outside Recovery: a panic unwinds past the
	// handler into Recovery, which records the error; ErrorHandler then
	// renders it after its own c.Next() returns.
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.ErrorHandler(logger),
		middleware.Recovery(logger),
	)

	products := handlers.NewProductDetailHandler(pages)
	r.GET("/products/:id", products.Show)

	if homeProductID != "" {
		home := "/products/" + homeProductID
		r.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, home)
		})
	}

	co := handlers.NewCheckoutHandler(checkout)
	r.POST("/api/checkout", co.Create)

	r.GET("/healthz", handlers.Health)

	return r
}
