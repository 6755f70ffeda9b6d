package products

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathanbrn/igniteShop/internal/catalog"
)

type fakeCatalog struct {
	product catalog.Product
	err     error
}

func (f *fakeCatalog) RetrieveProduct(ctx context.Context, id string) (catalog.Product, error) {
	return f.product, f.err
}

func validProduct() catalog.Product {
	return catalog.Product{
		ID:          "prod_1",
		Name:        "Camiseta Beyond the Limits",
		Description: "Camiseta confortável",
		Images:      []string{"https://files.example.com/1.png", "https://files.example.com/2.png"},
		DefaultPrice: catalog.Price{
			ID:         "price_1",
			UnitAmount: 7990,
			Currency:   "brl",
		},
	}
}

func TestDetailMapsCatalogProduct(t *testing.T) {
	svc := NewService(&fakeCatalog{product: validProduct()})

	pv, err := svc.Detail(context.Background(), "prod_1")
	require.NoError(t, err)

	assert.Equal(t, "prod_1", pv.ID)
	assert.Equal(t, "Camiseta Beyond the Limits", pv.Name)
	assert.Equal(t, "https://files.example.com/1.png", pv.ImageURL, "first image is the primary one")
	assert.Equal(t, "R$ 79,90", pv.Price)
	assert.Equal(t, "Camiseta confortável", pv.Description)
	assert.Equal(t, "price_1", pv.DefaultPriceID)
}

func TestDetailEmptyDescriptionIsSupported(t *testing.T) {
	p := validProduct()
	p.Description = ""
	svc := NewService(&fakeCatalog{product: p})

	pv, err := svc.Detail(context.Background(), "prod_1")
	require.NoError(t, err)
	assert.Empty(t, pv.Description)
}

func TestDetailNoImages(t *testing.T) {
	p := validProduct()
	p.Images = nil
	svc := NewService(&fakeCatalog{product: p})

	_, err := svc.Detail(context.Background(), "prod_1")
	assert.ErrorIs(t, err, ErrNoImage)
}

func TestDetailNoExpandedPrice(t *testing.T) {
	p := validProduct()
	p.DefaultPrice = catalog.Price{}
	svc := NewService(&fakeCatalog{product: p})

	_, err := svc.Detail(context.Background(), "prod_1")
	assert.ErrorIs(t, err, ErrNoDefaultPrice)
}

func TestDetailNotFound(t *testing.T) {
	svc := NewService(&fakeCatalog{err: catalog.ErrNotFound})

	_, err := svc.Detail(context.Background(), "prod_missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
