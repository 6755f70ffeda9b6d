// Package checkout opens hosted checkout sessions at the payments provider.
package checkout

import (
	"context"

	"github.com/google/uuid"

	"github.com/nathanbrn/igniteShop/internal/catalog"
)

// Sessions is the slice of the provider client the service needs.
type Sessions interface {
	CreateCheckoutSession(ctx context.Context, in catalog.CreateSessionRequest) (catalog.CheckoutSession, error)
}

type Service struct {
	sessions   Sessions
	successURL string
	cancelURL  string
}

func NewService(s Sessions, successURL, cancelURL string) *Service {
	return &Service{sessions: s, successURL: successURL, cancelURL: cancelURL}
}

// CreateSession opens a single-item hosted checkout for the given price and
// returns its one-time URL. Single attempt per call, no retry; a fresh
// idempotency key is minted per attempt so the provider never replays a
// failed create.
func (s *Service) CreateSession(ctx context.Context, priceID string) (string, error) {
	if priceID == "" {
		return "", ErrPriceRequired
	}

	sess, err := s.sessions.CreateCheckoutSession(ctx, catalog.CreateSessionRequest{
		PriceID:        priceID,
		Quantity:       1,
		SuccessURL:     s.successURL,
		CancelURL:      s.cancelURL,
		IdempotencyKey: uuid.NewString(),
	})
	if err != nil {
		return "", err
	}
	return sess.URL, nil
}
