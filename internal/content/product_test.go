package content

import (
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/loganlanou/reviewhub/storage/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProduct() Product {
	return Product{
		ID:      "p1",
		Rank:    1,
		Slug:    "winkbed",
		Badge:   "Most Comfortable",
		Name:    "WinkBed",
		Tagline: "Luxury hybrid mattress",
		Price:   Price{Original: 1799, Current: 1299, Currency: "USD"},
		Rating:  9.4,
		Images:  Images{Main: "https://example.com/img.jpg", Gallery: []string{"https://example.com/2.jpg"}},
		Specs:   []Spec{{Label: "Firmness", Value: "6/10"}, {Label: "Height", Value: "13.5in"}},
		BestFor: []string{"Back pain", "Couples"},
		NotBestFor: []string{
			"Stomach sleepers",
		},
		BriefReview: "Great for back pain",
		FullReview:  "Long form review",
		Materials:   []Material{{Layer: "Euro top", Description: "Gel foam"}, {Layer: "Coils", Description: "Pocketed"}},
		Scores:      []Score{{Label: "Support", Score: 4.5}, {Label: "Cooling", Score: 4, Description: "Sleeps cool"}},
		Pros:        []string{"Supportive"},
		Cons:        []string{"Heavy"},
		FAQs:        []FAQ{{Question: "Trial?", Answer: "120 nights"}},

		AffiliateLink: "https://affiliate.link",
		CTAText:       "Shop Now →",
		IsActive:      true,
	}
}

// rowFromInsert mirrors what the database returns for an insert.
func rowFromInsert(p db.CreateProductParams, ts time.Time) db.Product {
	return db.Product{
		ID: p.ID, Rank: p.Rank, Slug: p.Slug, Badge: p.Badge, Name: p.Name,
		Tagline: p.Tagline, Price: p.Price, Rating: p.Rating, Images: p.Images,
		Specs: p.Specs, BestFor: p.BestFor, NotBestFor: p.NotBestFor,
		BriefReview: p.BriefReview, FullReview: p.FullReview, Materials: p.Materials,
		Scores: p.Scores, Pros: p.Pros, Cons: p.Cons, Faqs: p.Faqs,
		AffiliateLink: p.AffiliateLink, CtaText: p.CtaText, IsActive: p.IsActive,
		CreatedAt: ts, UpdatedAt: ts,
	}
}

func TestProductRoundTrip(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	want := sampleProduct()
	want.CreatedAt = ts
	want.UpdatedAt = ts

	got := ProductFromRow(rowFromInsert(NewProductRow(want.ID, want), ts))

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestProductFromRow_NullColumns(t *testing.T) {
	p := ProductFromRow(db.Product{ID: "p1", Slug: "x", Name: "X"})

	assert.Equal(t, "", p.Badge)
	assert.Equal(t, 0.0, p.Rating)
	assert.NotNil(t, p.Specs)
	assert.NotNil(t, p.Images.Gallery)
	assert.NotNil(t, p.BestFor)
	assert.NotNil(t, p.FAQs)

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"specs":[]`)
	assert.NotContains(t, string(data), "null")
}

func TestProductFromRow_MalformedColumn(t *testing.T) {
	p := ProductFromRow(db.Product{
		ID:    "p1",
		Slug:  "x",
		Name:  "X",
		Specs: sql.NullString{String: `{"not":"a list"}`, Valid: true},
		Pros:  sql.NullString{String: `["kept"]`, Valid: true},
	})

	assert.Empty(t, p.Specs)
	assert.Equal(t, []string{"kept"}, p.Pros)
}

func TestProductPatch_OnlyPresentFields(t *testing.T) {
	var patch ProductPatch
	require.NoError(t, json.Unmarshal([]byte(`{"id":"p1","rank":7,"createdAt":"2020-01-01"}`), &patch))

	params := patch.Params(patch.ID)

	assert.Equal(t, "p1", params.ID)
	assert.Equal(t, sql.NullInt64{Int64: 7, Valid: true}, params.Rank)
	assert.False(t, params.Name.Valid)
	assert.False(t, params.Slug.Valid)
	assert.False(t, params.Price.Valid)
	assert.False(t, params.Specs.Valid)
	assert.False(t, params.Rating.Valid)
	assert.False(t, params.IsActive.Valid)
}

func TestProductPatch_NestedFields(t *testing.T) {
	var patch ProductPatch
	body := `{"price":{"original":10,"current":8},"bestFor":["A","B"],"isActive":false,"rating":0}`
	require.NoError(t, json.Unmarshal([]byte(body), &patch))

	params := patch.Params("p1")

	assert.JSONEq(t, `{"original":10,"current":8}`, params.Price.String)
	assert.JSONEq(t, `["A","B"]`, params.BestFor.String)
	assert.Equal(t, sql.NullBool{Bool: false, Valid: true}, params.IsActive)
	assert.Equal(t, sql.NullFloat64{Float64: 0, Valid: true}, params.Rating)
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"one", "two"}, SplitLines("one\n\n  \r\ntwo\n"))
	assert.Equal(t, []string{}, SplitLines(""))
	assert.Equal(t, "one\ntwo", JoinLines([]string{"one", "two"}))
}
