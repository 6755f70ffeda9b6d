package view

// ProductView is the render-ready product record built once per page
// generation from the catalog response. Immutable after construction.
type ProductView struct {
	ID          string
	Name        string
	ImageURL    string
	Price       string // pre-formatted, e.g. "R$ 79,90"
	Description string // may be empty
	// DefaultPriceID is only used to open a checkout session, never displayed.
	DefaultPriceID string
}

// ProductPage is the view model passed to the product page template.
type ProductPage struct {
	Title   string
	Product ProductView
}

// PageTitle returns the document title for a product page.
func PageTitle(productName, storeName string) string {
	return productName + " | " + storeName
}
