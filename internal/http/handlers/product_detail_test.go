package handlers_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/nathanbrn/igniteShop/internal/http"
	"github.com/nathanbrn/igniteShop/internal/http/handlers"
	"github.com/nathanbrn/igniteShop/internal/modules/products"
)

type fakePages struct {
	pages map[string][]byte
	err   error
}

func (f *fakePages) Get(ctx context.Context, id string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, ok := f.pages[id]
	if !ok {
		return nil, fmt.Errorf("product %s: %w", id, products.ErrNotFound)
	}
	return body, nil
}

type fakeCheckout struct {
	url string
	err error
}

func (f *fakeCheckout) CreateSession(ctx context.Context, priceID string) (string, error) {
	return f.url, f.err
}

func newTestRouter(pages handlers.PageSource, co *fakeCheckout) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return apphttp.NewRouter(logger, pages, co, "prod_1")
}

func TestShowServesSnapshot(t *testing.T) {
	snapshot := []byte(`<html><h1>Camiseta X</h1><span>R$ 79,90</span></html>`)
	pages := &fakePages{pages: map[string][]byte{"prod_1": snapshot}}
	r := newTestRouter(pages, &fakeCheckout{})

	req := httptest.NewRequest(http.MethodGet, "/products/prod_1", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Equal(t, string(snapshot), rr.Body.String())
}

func TestShowUnknownProduct(t *testing.T) {
	pages := &fakePages{pages: map[string][]byte{}}
	r := newTestRouter(pages, &fakeCheckout{})

	req := httptest.NewRequest(http.MethodGet, "/products/prod_missing", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), "Produto não encontrado.")
}

func TestShowUpstreamFailure(t *testing.T) {
	pages := &fakePages{err: fmt.Errorf("catalog timeout")}
	r := newTestRouter(pages, &fakeCheckout{})

	req := httptest.NewRequest(http.MethodGet, "/products/prod_1", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

type panickingPages struct{}

func (panickingPages) Get(ctx context.Context, id string) ([]byte, error) {
	panic("snapshot map corrupted")
}

func TestPanicInHandlerRendersErrorPage(t *testing.T) {
	r := newTestRouter(panickingPages{}, &fakeCheckout{})

	req := httptest.NewRequest(http.MethodGet, "/products/prod_1", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), "Houve um erro inesperado.")
}

func TestPanicInAPIHandlerRendersJSONError(t *testing.T) {
	r := newTestRouter(panickingPages{}, &fakeCheckout{})

	req := httptest.NewRequest(http.MethodGet, "/products/prod_1", nil)
	req.Header.Set("Accept", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), `"error"`)
	assert.Contains(t, rr.Body.String(), `"request_id"`)
}

func TestRootRedirectsToHomeProduct(t *testing.T) {
	pages := &fakePages{pages: map[string][]byte{"prod_1": []byte("<html></html>")}}
	r := newTestRouter(pages, &fakeCheckout{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/products/prod_1", rr.Header().Get("Location"))
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(&fakePages{}, &fakeCheckout{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
