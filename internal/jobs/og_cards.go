package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/loganlanou/reviewhub/internal/cms"
	"github.com/loganlanou/reviewhub/internal/ogimage"
)

const (
	// MaxConcurrentCards limits how many share cards render at once
	MaxConcurrentCards = 4
)

// CardWarmer pre-renders share cards for every active product and drops
// cached cards that no longer match a product.
type CardWarmer struct {
	svc   *cms.Service
	cache *ogimage.Cache
}

func NewCardWarmer(svc *cms.Service, cache *ogimage.Cache) *CardWarmer {
	return &CardWarmer{svc: svc, cache: cache}
}

// Start runs one warm pass in a background goroutine
func (w *CardWarmer) Start(ctx context.Context) {
	go func() {
		if _, err := w.Run(ctx); err != nil {
			slog.Error("share card warm-up failed", "error", err)
		}
	}()
}

// Result summarizes one warm pass.
type Result struct {
	Products  int
	Generated int
	Errors    int
	Pruned    int
}

// Run renders missing cards then prunes stale ones. Pruning is skipped if
// any card failed so a partial pass never deletes usable files.
func (w *CardWarmer) Run(ctx context.Context) (Result, error) {
	startTime := time.Now()
	slog.Info("starting share card warm-up")

	site, err := w.svc.GetSite(ctx)
	if err != nil {
		return Result{}, err
	}
	products, err := w.svc.ListActiveProducts(ctx)
	if err != nil {
		return Result{}, err
	}

	res := Result{Products: len(products)}
	keep := make(map[string]bool, len(products))

	sem := semaphore.NewWeighted(MaxConcurrentCards)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, p := range products {
		card := ogimage.ProductCard(site, p)
		keep[ogimage.FileName(p.Slug, card)] = true
		if w.cache.Has(p.Slug, card) {
			continue
		}

		if err := sem.Acquire(ctx, 1); err != nil {
			slog.Debug("context cancelled while waiting for semaphore", "error", err)
			break
		}
		wg.Add(1)
		go func(slug string, card ogimage.Card) {
			defer wg.Done()
			defer sem.Release(1)

			_, err := w.cache.Get(slug, card)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				slog.Debug("failed to render share card", "error", err, "slug", slug)
				res.Errors++
				return
			}
			res.Generated++
		}(p.Slug, card)
	}
	wg.Wait()

	if ctx.Err() == nil && res.Errors == 0 {
		pruned, err := w.cache.Prune(keep)
		if err != nil {
			slog.Warn("failed to prune share cards", "error", err)
		}
		res.Pruned = pruned
	}

	slog.Info("share card warm-up completed",
		"total_products", res.Products,
		"generated", res.Generated,
		"errors", res.Errors,
		"pruned", res.Pruned,
		"duration", time.Since(startTime),
	)
	return res, ctx.Err()
}
