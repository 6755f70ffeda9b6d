package products

import "errors"

var (
	ErrNotFound       = errors.New("product not found")
	ErrNoImage        = errors.New("product has no images")
	ErrNoDefaultPrice = errors.New("product has no expanded default price")
)
