// Package static generates and caches the storefront's statically rendered
// pages. Pages are rendered once, served as immutable byte snapshots, and
// regenerated in the background at most once per revalidation window.
package static

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Renderer produces the full HTML snapshot for one product id.
type Renderer interface {
	Render(ctx context.Context, id string) ([]byte, error)
}

type page struct {
	body        []byte
	generatedAt time.Time
}

// Cache holds one snapshot per product id.
//
// Lookup semantics mirror incremental static regeneration:
//   - unknown id: the request blocks while the page is generated; concurrent
//     first requests are collapsed into a single render.
//   - fresh snapshot (younger than the revalidation window): served unchanged.
//   - stale snapshot: served as-is while a background regeneration runs; the
//     next request after it completes sees the new content. If regeneration
//     fails the stale snapshot stays in place.
type Cache struct {
	renderer   Renderer
	revalidate time.Duration
	logger     *slog.Logger
	now        func() time.Time

	mu    sync.RWMutex
	pages map[string]page

	group singleflight.Group
}

func NewCache(r Renderer, revalidate time.Duration, logger *slog.Logger) *Cache {
	return &Cache{
		renderer:   r,
		revalidate: revalidate,
		logger:     logger,
		now:        time.Now,
		pages:      make(map[string]page),
	}
}

// Prerender generates snapshots for the enumerated ids. Any failure aborts:
// a product declared in the prerender set that cannot be loaded is a build
// failure, not a runtime one.
func (c *Cache) Prerender(ctx context.Context, ids []string) error {
	for _, id := range ids {
		if _, err := c.generate(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the snapshot for id, generating it first if needed.
func (c *Cache) Get(ctx context.Context, id string) ([]byte, error) {
	c.mu.RLock()
	p, ok := c.pages[id]
	c.mu.RUnlock()

	if !ok {
		// fallback: blocking — hold the request until the page exists.
		return c.generate(ctx, id)
	}

	if c.now().Sub(p.generatedAt) >= c.revalidate {
		c.refresh(id)
	}
	return p.body, nil
}

// generate renders id and stores the snapshot, collapsing concurrent calls
// for the same id into one render.
func (c *Cache) generate(ctx context.Context, id string) ([]byte, error) {
	v, err, _ := c.group.Do(id, func() (any, error) {
		body, err := c.renderer.Render(ctx, id)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.pages[id] = page{body: body, generatedAt: c.now()}
		c.mu.Unlock()
		return body, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// refresh regenerates id in the background. The caller keeps serving the
// stale snapshot; a failed refresh leaves it untouched and is retried on
// the next request past the window.
func (c *Cache) refresh(id string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if _, err := c.generate(ctx, id); err != nil {
			c.logger.LogAttrs(ctx, slog.LevelWarn, "page_revalidate_failed",
				slog.String("product_id", id),
				slog.Any("err", err),
			)
			return
		}
		c.logger.LogAttrs(ctx, slog.LevelInfo, "page_revalidated",
			slog.String("product_id", id),
		)
	}()
}
