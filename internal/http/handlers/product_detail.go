package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nathanbrn/igniteShop/internal/http/middleware"
	"github.com/nathanbrn/igniteShop/internal/modules/products"
	"github.com/nathanbrn/igniteShop/internal/shared/apperr"
)

// PageSource serves the static snapshot for a product id, generating it on
// first request.
type PageSource interface {
	Get(ctx context.Context, id string) ([]byte, error)
}

// ProductDetailHandler serves the statically rendered product page.
type ProductDetailHandler struct {
	pages PageSource
}

func NewProductDetailHandler(pages PageSource) *ProductDetailHandler {
	return &ProductDetailHandler{pages: pages}
}

// Show returns the product detail page. Known ids come straight from the
// snapshot cache; unknown ids block here while the page is generated.
func (h *ProductDetailHandler) Show(c *gin.Context) {
	id := c.Param("id")

	body, err := h.pages.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, products.ErrNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Produto não encontrado."))
			return
		}
		middleware.Fail(c, apperr.UpstreamErr("Não foi possível carregar o produto.", err))
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", body)
}
