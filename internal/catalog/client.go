// Package catalog is the HTTP client for the payments provider's
// product catalog and hosted checkout API.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Price is the expanded default_price sub-resource of a product.
type Price struct {
	ID         string `json:"id"`
	UnitAmount int64  `json:"unit_amount"` // minor units (centavos)
	Currency   string `json:"currency"`
}

// Product is the provider's product record with its default price expanded.
type Product struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Images       []string `json:"images"`
	DefaultPrice Price    `json:"default_price"`
}

// CheckoutSession is a provider-hosted purchase flow. URL is consumed once
// for a browser redirect and never retained.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type CreateSessionRequest struct {
	PriceID        string
	Quantity       int
	SuccessURL     string
	CancelURL      string
	IdempotencyKey string
}

type Client struct {
	baseURL string
	apiKey  string
	hc      *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		hc:      &http.Client{Timeout: 30 * time.Second},
	}
}

// RetrieveProduct fetches one product by id with its default price expanded
// in the same call.
func (c *Client) RetrieveProduct(ctx context.Context, id string) (Product, error) {
	u := fmt.Sprintf("%s/v1/products/%s?expand[]=default_price", c.baseURL, url.PathEscape(id))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Product{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	res, err := c.hc.Do(req)
	if err != nil {
		return Product{}, fmt.Errorf("catalog: retrieve product %s: %w", id, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return Product{}, fmt.Errorf("catalog: product %s: %w", id, ErrNotFound)
	}
	if res.StatusCode >= 400 {
		return Product{}, apiErrorFrom(res)
	}

	var p Product
	if err := json.NewDecoder(res.Body).Decode(&p); err != nil {
		return Product{}, fmt.Errorf("catalog: decode product %s: %w", id, err)
	}
	return p, nil
}

// CreateCheckoutSession opens a hosted checkout for a single price.
// One attempt per call; the idempotency key dedupes provider-side retries.
func (c *Client) CreateCheckoutSession(ctx context.Context, in CreateSessionRequest) (CheckoutSession, error) {
	qty := in.Quantity
	if qty <= 0 {
		qty = 1
	}

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("line_items[0][price]", in.PriceID)
	form.Set("line_items[0][quantity]", fmt.Sprintf("%d", qty))
	form.Set("success_url", in.SuccessURL)
	form.Set("cancel_url", in.CancelURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return CheckoutSession{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if in.IdempotencyKey != "" {
		req.Header.Set("Idempotency-Key", in.IdempotencyKey)
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return CheckoutSession{}, fmt.Errorf("catalog: create checkout session: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return CheckoutSession{}, apiErrorFrom(res)
	}

	var s CheckoutSession
	if err := json.NewDecoder(res.Body).Decode(&s); err != nil {
		return CheckoutSession{}, fmt.Errorf("catalog: decode checkout session: %w", err)
	}
	if s.URL == "" {
		return CheckoutSession{}, fmt.Errorf("catalog: checkout session %s has no url", s.ID)
	}
	return s, nil
}

func apiErrorFrom(res *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(res.Body, 4096))

	var envelope struct {
		Error struct {
			Type    string `json:"type"`
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	_ = json.Unmarshal(body, &envelope)

	return &APIError{
		Status:  res.StatusCode,
		Type:    envelope.Error.Type,
		Code:    envelope.Error.Code,
		Message: envelope.Error.Message,
	}
}
