// Package products loads product records from the catalog provider and maps
// them into render-ready view models.
package products

import (
	"context"
	"errors"
	"fmt"

	"github.com/nathanbrn/igniteShop/internal/catalog"
	"github.com/nathanbrn/igniteShop/pkg/view"
)

// Catalog is the slice of the provider client the loader needs.
type Catalog interface {
	RetrieveProduct(ctx context.Context, id string) (catalog.Product, error)
}

type Service struct {
	catalog Catalog
}

func NewService(c Catalog) *Service {
	return &Service{catalog: c}
}

// Detail retrieves one product with its default price expanded and maps it
// to a ProductView. The mapping is total: records the catalog should never
// produce (no image, no expanded price) come back as errors instead of
// broken pages.
func (s *Service) Detail(ctx context.Context, id string) (view.ProductView, error) {
	p, err := s.catalog.RetrieveProduct(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return view.ProductView{}, fmt.Errorf("product %s: %w", id, ErrNotFound)
		}
		return view.ProductView{}, err
	}

	if len(p.Images) == 0 {
		return view.ProductView{}, fmt.Errorf("product %s: %w", p.ID, ErrNoImage)
	}
	if p.DefaultPrice.ID == "" {
		return view.ProductView{}, fmt.Errorf("product %s: %w", p.ID, ErrNoDefaultPrice)
	}

	return view.ProductView{
		ID:             p.ID,
		Name:           p.Name,
		ImageURL:       p.Images[0],
		Price:          view.MoneyBRL(p.DefaultPrice.UnitAmount),
		Description:    p.Description,
		DefaultPriceID: p.DefaultPrice.ID,
	}, nil
}
