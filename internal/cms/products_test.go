package cms

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/loganlanou/reviewhub/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProducts_SortedByRank(t *testing.T) {
	svc := setupTestService(t)
	for _, rank := range []int64{3, 1, 2} {
		createProduct(t, svc, fakeProduct(rank))
	}

	products, err := svc.ListProducts(context.Background())
	require.NoError(t, err)

	require.Len(t, products, 3)
	for i, p := range products {
		assert.Equal(t, int64(i+1), p.Rank)
	}
}

func TestCreateProduct_ServerAssignedFields(t *testing.T) {
	svc := setupTestService(t)
	createProduct(t, svc, fakeProduct(4))

	p := fakeProduct(0)
	p.ID = "client-chosen"
	p.Name = "WinkBed Plus"
	created := createProduct(t, svc, p)

	assert.NotEqual(t, "client-chosen", created.ID)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "winkbed-plus", created.Slug)
	assert.Equal(t, int64(5), created.Rank, "rank defaults to the end of the list")
	assert.False(t, created.CreatedAt.IsZero())

	dup := createProduct(t, svc, p)
	assert.NotEqual(t, created.Slug, dup.Slug, "slug collisions get a suffix")
}

func TestGetProductBySlug(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()
	p := fakeProduct(1)
	p.Name = "WinkBed"
	created := createProduct(t, svc, p)

	got, err := svc.GetProductBySlug(ctx, "winkbed")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	tests := []struct {
		slug string
		want error
	}{
		{"", ErrInvalidRequest},
		{"WinkBed", ErrNotFound},
		{"winkbed--plus", ErrNotFound},
		{"../etc/passwd", ErrNotFound},
		{"helix", ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			_, err := svc.GetProductBySlug(ctx, tt.slug)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestCreateProduct_RequiresName(t *testing.T) {
	svc := setupTestService(t)

	_, err := svc.CreateProduct(context.Background(), content.Product{Name: "  "})

	assert.True(t, errors.Is(err, ErrInvalidRequest))
}

func TestUpdateProduct_PartialChangesOnlyPresentFields(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()
	before := createProduct(t, svc, fakeProduct(1))

	rank := int64(7)
	updated, err := svc.UpdateProduct(ctx, content.ProductPatch{ID: before.ID, Rank: &rank})
	require.NoError(t, err)
	assert.Equal(t, int64(7), updated.Rank)

	after, err := svc.GetProduct(ctx, before.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(7), after.Rank)
	if diff := cmp.Diff(before, after, cmpopts.IgnoreFields(content.Product{}, "Rank", "UpdatedAt")); diff != "" {
		t.Errorf("fields other than rank changed (-before +after):\n%s", diff)
	}
}

func TestUpdateProduct_Errors(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()
	name := "Renamed"

	_, err := svc.UpdateProduct(ctx, content.ProductPatch{Name: &name})
	assert.True(t, errors.Is(err, ErrInvalidRequest), "missing id is an invalid request")

	_, err = svc.UpdateProduct(ctx, content.ProductPatch{ID: "missing", Name: &name})
	assert.True(t, errors.Is(err, ErrNotFound), "unknown id is not found")

	p := createProduct(t, svc, fakeProduct(1))
	bad := "!!!"
	_, err = svc.UpdateProduct(ctx, content.ProductPatch{ID: p.ID, Slug: &bad})
	assert.True(t, errors.Is(err, ErrInvalidRequest))
}

func TestDeleteProduct_ReturnsDeletedDocument(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()
	p := createProduct(t, svc, fakeProduct(1))

	deleted, err := svc.DeleteProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, deleted.ID)
	assert.Equal(t, p.Name, deleted.Name)

	_, err = svc.GetProduct(ctx, p.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = svc.DeleteProduct(ctx, p.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = svc.DeleteProduct(ctx, "")
	assert.True(t, errors.Is(err, ErrInvalidRequest))
}

func TestReorderProducts(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()
	a := createProduct(t, svc, fakeProduct(1))
	b := createProduct(t, svc, fakeProduct(2))

	list, err := svc.ReorderProducts(ctx, []RankUpdate{{ID: a.ID, Rank: 2}, {ID: b.ID, Rank: 1}})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, b.ID, list[0].ID)
	assert.Equal(t, a.ID, list[1].ID)

	_, err = svc.ReorderProducts(ctx, []RankUpdate{{ID: a.ID, Rank: 9}, {ID: "missing", Rank: 1}})
	assert.True(t, errors.Is(err, ErrNotFound))

	got, err := svc.GetProduct(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Rank, "failed reorder is rolled back")
}

func TestImportProducts_AllOrNothing(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()
	createProduct(t, svc, fakeProduct(1))

	_, err := svc.ImportProducts(ctx, []content.Product{fakeProduct(2), {Name: ""}})
	assert.True(t, errors.Is(err, ErrInvalidRequest))

	list, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1, "nothing from the failed batch is kept")

	created, err := svc.ImportProducts(ctx, []content.Product{fakeProduct(0), fakeProduct(0), fakeProduct(0)})
	require.NoError(t, err)
	assert.Len(t, created, 3)
	assert.Equal(t, int64(2), created[0].Rank)
	assert.Equal(t, int64(4), created[2].Rank)

	list, err = svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 4)
}

func TestProductCounts(t *testing.T) {
	svc := setupTestService(t)
	createProduct(t, svc, fakeProduct(1))
	hidden := fakeProduct(2)
	hidden.IsActive = false
	createProduct(t, svc, hidden)

	total, active, err := svc.ProductCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, int64(1), active)

	visible, err := svc.ListActiveProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, visible, 1)
}
