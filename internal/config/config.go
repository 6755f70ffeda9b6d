// Package config provides runtime configuration for the storefront service.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds every knob the service reads from the environment.
type Config struct {
	HTTPAddr        string        `envconfig:"HTTP_ADDR" default:":8080"`
	BaseURL         string        `envconfig:"BASE_URL" default:"http://localhost:8080"`
	StoreName       string        `envconfig:"STORE_NAME" default:"Ignite Shop"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`

	// Catalog provider credentials and endpoint.
	CatalogAPIKey  string `envconfig:"CATALOG_API_KEY" required:"true"`
	CatalogBaseURL string `envconfig:"CATALOG_BASE_URL" default:"https://api.stripe.com"`

	// Product ids rendered at startup; everything else renders on first
	// request (blocking fallback).
	PrerenderProductIDs []string `envconfig:"PRERENDER_PRODUCT_IDS" default:"prod_Nd2Q5sbZwyT7u9"`

	// How long a generated page is served unchanged before a background
	// regeneration is allowed.
	RevalidateInterval time.Duration `envconfig:"REVALIDATE_INTERVAL" default:"1h"`
}

// Load collects configuration from environment with defaults.
func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	return c, nil
}

// CheckoutSuccessURL is where the provider sends the buyer after payment.
func (c Config) CheckoutSuccessURL() string {
	return c.BaseURL + "/success?session_id={CHECKOUT_SESSION_ID}"
}

// CheckoutCancelURL is where the provider sends the buyer on abandon.
func (c Config) CheckoutCancelURL() string {
	return c.BaseURL + "/"
}
