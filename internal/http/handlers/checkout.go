package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nathanbrn/igniteShop/internal/http/middleware"
	"github.com/nathanbrn/igniteShop/internal/http/validation"
	"github.com/nathanbrn/igniteShop/internal/shared/apperr"
)

// SessionCreator opens a hosted checkout for a price and returns its URL.
type SessionCreator interface {
	CreateSession(ctx context.Context, priceID string) (string, error)
}

// CheckoutHandler is the internal endpoint behind the page's buy button.
type CheckoutHandler struct {
	checkout SessionCreator
}

func NewCheckoutHandler(svc SessionCreator) *CheckoutHandler {
	return &CheckoutHandler{checkout: svc}
}

type checkoutInput struct {
	PriceID string `json:"priceId" binding:"required,max=255"`
}

// Create opens a checkout session and hands the one-time URL back to the
// page script, which redirects the browser. Stateless: a failed attempt
// leaves nothing behind and the client simply retries.
func (h *CheckoutHandler) Create(c *gin.Context) {
	var in checkoutInput
	if err := c.ShouldBindJSON(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		middleware.Fail(c, apperr.InvalidErr("Dados do checkout inválidos.", errs))
		return
	}

	url, err := h.checkout.CreateSession(c.Request.Context(), in.PriceID)
	if err != nil {
		middleware.Fail(c, apperr.UpstreamErr("Não foi possível iniciar o checkout.", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"checkoutUrl": url})
}
