package static

import (
	"bytes"
	"context"
	"fmt"

	"github.com/nathanbrn/igniteShop/internal/modules/products"
	"github.com/nathanbrn/igniteShop/pkg/view"
	"github.com/nathanbrn/igniteShop/templates"
)

// ProductPageRenderer builds the product detail page: load from the catalog,
// map to the view model, execute the template into a snapshot.
type ProductPageRenderer struct {
	products  *products.Service
	storeName string
}

func NewProductPageRenderer(svc *products.Service, storeName string) *ProductPageRenderer {
	return &ProductPageRenderer{products: svc, storeName: storeName}
}

func (r *ProductPageRenderer) Render(ctx context.Context, id string) ([]byte, error) {
	pv, err := r.products.Detail(ctx, id)
	if err != nil {
		return nil, err
	}

	data := view.ProductPage{
		Title:   view.PageTitle(pv.Name, r.storeName),
		Product: pv,
	}

	var buf bytes.Buffer
	if err := templates.Product.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render product %s: %w", id, err)
	}
	return buf.Bytes(), nil
}
