package cms

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/loganlanou/reviewhub/internal/content"
	"github.com/loganlanou/reviewhub/storage"
	"github.com/stretchr/testify/require"
)

func setupTestService(t *testing.T) *Service {
	t.Helper()

	store, cleanup, err := storage.NewTestStorage()
	require.NoError(t, err)
	t.Cleanup(cleanup)

	return New(store)
}

// fakeProduct builds a product document with random but well-formed values.
func fakeProduct(rank int64) content.Product {
	original := gofakeit.Price(500, 2000)
	return content.Product{
		Rank:        rank,
		Name:        gofakeit.ProductName(),
		Badge:       gofakeit.ProductCategory(),
		Tagline:     gofakeit.ProductDescription(),
		Price:       content.Price{Original: original, Current: original - 100, Currency: "USD"},
		Rating:      9.1,
		Images:      content.Images{Main: gofakeit.URL()},
		Specs:       []content.Spec{{Label: "Material", Value: gofakeit.ProductMaterial()}},
		BestFor:     []string{gofakeit.Sentence(4)},
		BriefReview: gofakeit.Sentence(10),
		Pros:        []string{gofakeit.Word()},
		Cons:        []string{gofakeit.Word()},
		IsActive:    true,
	}
}

func createProduct(t *testing.T, svc *Service, p content.Product) content.Product {
	t.Helper()
	created, err := svc.CreateProduct(context.Background(), p)
	require.NoError(t, err)
	return created
}

func fakeProducts(n int) []content.Product {
	out := make([]content.Product, n)
	for i := range out {
		out[i] = fakeProduct(0)
	}
	return out
}

func productPatch(id string, slug *string) content.ProductPatch {
	return content.ProductPatch{ID: id, Slug: slug}
}
