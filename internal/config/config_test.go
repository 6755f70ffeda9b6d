package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CATALOG_API_KEY", "sk_test_123")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.Equal(t, "Ignite Shop", c.StoreName)
	assert.Equal(t, "https://api.stripe.com", c.CatalogBaseURL)
	assert.Equal(t, time.Hour, c.RevalidateInterval)
	assert.Equal(t, []string{"prod_Nd2Q5sbZwyT7u9"}, c.PrerenderProductIDs)
}

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("CATALOG_API_KEY", "") // register restore, then truly unset
	require.NoError(t, os.Unsetenv("CATALOG_API_KEY"))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CATALOG_API_KEY", "sk_test_123")
	t.Setenv("BASE_URL", "https://shop.example/")
	t.Setenv("PRERENDER_PRODUCT_IDS", "prod_a,prod_b")
	t.Setenv("REVALIDATE_INTERVAL", "30m")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"prod_a", "prod_b"}, c.PrerenderProductIDs)
	assert.Equal(t, 30*time.Minute, c.RevalidateInterval)
	assert.Equal(t, "https://shop.example/success?session_id={CHECKOUT_SESSION_ID}", c.CheckoutSuccessURL())
	assert.Equal(t, "https://shop.example/", c.CheckoutCancelURL())
}
