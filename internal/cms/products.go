package cms

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/loganlanou/reviewhub/internal/content"
	"github.com/loganlanou/reviewhub/internal/utils"
	"github.com/loganlanou/reviewhub/storage/db"
)

// RankUpdate is one entry of a drag-sort reorder.
type RankUpdate struct {
	ID   string `json:"id"`
	Rank int64  `json:"rank"`
}

func productList(rows []db.Product) []content.Product {
	out := make([]content.Product, len(rows))
	for i, row := range rows {
		out[i] = content.ProductFromRow(row)
	}
	return out
}

// ListProducts returns every product ordered by rank.
func (s *Service) ListProducts(ctx context.Context) ([]content.Product, error) {
	rows, err := s.store.Queries.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return productList(rows), nil
}

// ListActiveProducts returns the publicly visible products ordered by rank.
func (s *Service) ListActiveProducts(ctx context.Context) ([]content.Product, error) {
	rows, err := s.store.Queries.ListActiveProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active products: %w", err)
	}
	return productList(rows), nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (content.Product, error) {
	if id == "" {
		return content.Product{}, invalid("product id required")
	}
	row, err := s.store.Queries.GetProduct(ctx, id)
	if err != nil {
		return content.Product{}, storeErr("get product", "product "+id, err)
	}
	return content.ProductFromRow(row), nil
}

func (s *Service) GetProductBySlug(ctx context.Context, slug string) (content.Product, error) {
	if slug == "" {
		return content.Product{}, invalid("product slug required")
	}
	// Stored slugs are always normalized, so anything else cannot match.
	if !utils.ValidSlug(slug) {
		return content.Product{}, ErrNotFound
	}
	row, err := s.store.Queries.GetProductBySlug(ctx, slug)
	if err != nil {
		return content.Product{}, storeErr("get product", "product "+slug, err)
	}
	return content.ProductFromRow(row), nil
}

// CreateProduct inserts p with a server-assigned id and timestamps. An empty
// slug is derived from the name and a non-positive rank goes to the end of
// the list.
func (s *Service) CreateProduct(ctx context.Context, p content.Product) (content.Product, error) {
	created, err := s.insertProduct(ctx, s.store.Queries, p)
	if err != nil {
		return content.Product{}, err
	}
	slog.Info("product created", "id", created.ID, "slug", created.Slug, "rank", created.Rank)
	return created, nil
}

// ImportProducts appends all products in one transaction. Either every row
// is inserted or none is.
func (s *Service) ImportProducts(ctx context.Context, products []content.Product) ([]content.Product, error) {
	if len(products) == 0 {
		return nil, invalid("no products to import")
	}

	created := make([]content.Product, 0, len(products))
	err := s.store.InTx(ctx, func(q *db.Queries) error {
		for i, p := range products {
			out, err := s.insertProduct(ctx, q, p)
			if err != nil {
				return fmt.Errorf("row %d: %w", i+1, err)
			}
			created = append(created, out)
		}
		return nil
	})
	if err != nil {
		slog.Warn("product import rejected", "batch", ImportBatch(ctx), "count", len(products), "error", err)
		return nil, err
	}
	slog.Info("products imported", "batch", ImportBatch(ctx), "count", len(created))
	return created, nil
}

func (s *Service) insertProduct(ctx context.Context, q *db.Queries, p content.Product) (content.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return content.Product{}, invalid("product name required")
	}

	candidate := p.Slug
	if strings.TrimSpace(candidate) == "" {
		candidate = p.Name
	}
	slug, err := utils.AvailableSlug(ctx, q, candidate)
	if err != nil {
		return content.Product{}, err
	}
	p.Slug = slug

	if p.Rank <= 0 {
		maxRank, err := q.GetMaxProductRank(ctx)
		if err != nil {
			return content.Product{}, fmt.Errorf("get max rank: %w", err)
		}
		p.Rank = maxRank + 1
	}

	row, err := q.CreateProduct(ctx, content.NewProductRow(uuid.New().String(), p))
	if err != nil {
		return content.Product{}, fmt.Errorf("create product: %w", err)
	}
	return content.ProductFromRow(row), nil
}

// UpdateProduct applies only the fields present in patch and returns the
// stored document.
func (s *Service) UpdateProduct(ctx context.Context, patch content.ProductPatch) (content.Product, error) {
	if patch.ID == "" {
		return content.Product{}, invalid("product id required")
	}
	if patch.Slug != nil {
		slug := utils.Slugify(*patch.Slug)
		if slug == "" {
			return content.Product{}, invalid("slug must contain letters or digits")
		}
		patch.Slug = &slug
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return content.Product{}, invalid("product name required")
	}

	row, err := s.store.Queries.UpdateProduct(ctx, patch.Params(patch.ID))
	if err != nil {
		return content.Product{}, storeErr("update product", "product "+patch.ID, err)
	}
	slog.Info("product updated", "id", row.ID)
	return content.ProductFromRow(row), nil
}

// DeleteProduct removes the product and returns what was deleted.
func (s *Service) DeleteProduct(ctx context.Context, id string) (content.Product, error) {
	if id == "" {
		return content.Product{}, invalid("product id required")
	}
	row, err := s.store.Queries.DeleteProduct(ctx, id)
	if err != nil {
		return content.Product{}, storeErr("delete product", "product "+id, err)
	}
	slog.Info("product deleted", "id", id, "slug", row.Slug)
	return content.ProductFromRow(row), nil
}

// ReorderProducts sets every rank in one transaction and returns the
// resulting list.
func (s *Service) ReorderProducts(ctx context.Context, updates []RankUpdate) ([]content.Product, error) {
	if len(updates) == 0 {
		return nil, invalid("reorder requires at least one product")
	}
	for _, u := range updates {
		if u.ID == "" {
			return nil, invalid("product id required")
		}
	}

	err := s.store.InTx(ctx, func(q *db.Queries) error {
		for _, u := range updates {
			n, err := q.UpdateProductRank(ctx, db.UpdateProductRankParams{Rank: u.Rank, ID: u.ID})
			if err != nil {
				return fmt.Errorf("update rank: %w", err)
			}
			if n == 0 {
				return fmt.Errorf("%w: product %s", ErrNotFound, u.ID)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slog.Info("products reordered", "count", len(updates))
	return s.ListProducts(ctx)
}

// ProductCounts returns the total and active product counts.
func (s *Service) ProductCounts(ctx context.Context) (total, active int64, err error) {
	if total, err = s.store.Queries.CountProducts(ctx); err != nil {
		return 0, 0, fmt.Errorf("count products: %w", err)
	}
	if active, err = s.store.Queries.CountActiveProducts(ctx); err != nil {
		return 0, 0, fmt.Errorf("count active products: %w", err)
	}
	return total, active, nil
}
