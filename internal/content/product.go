package content

import (
	"database/sql"
	"time"

	"github.com/loganlanou/reviewhub/storage/db"
)

type Price struct {
	Original float64 `json:"original"`
	Current  float64 `json:"current"`
	Currency string  `json:"currency,omitempty"`
}

type Images struct {
	Main    string   `json:"main"`
	Gallery []string `json:"gallery"`
}

type Spec struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Material is one layer of a product's construction, listed top to bottom.
type Material struct {
	Layer       string `json:"layer"`
	Description string `json:"description"`
}

// Score is a 0-5 sub-rating shown as a bar on the detail page.
type Score struct {
	Label       string  `json:"label"`
	Score       float64 `json:"score"`
	Description string  `json:"description,omitempty"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Product is the full nested document for one reviewed item.
type Product struct {
	ID            string     `json:"id"`
	Rank          int64      `json:"rank"`
	Slug          string     `json:"slug"`
	Badge         string     `json:"badge"`
	Name          string     `json:"name"`
	Tagline       string     `json:"tagline"`
	Price         Price      `json:"price"`
	Rating        float64    `json:"rating"`
	Images        Images     `json:"images"`
	Specs         []Spec     `json:"specs"`
	BestFor       []string   `json:"bestFor"`
	NotBestFor    []string   `json:"notBestFor"`
	BriefReview   string     `json:"briefReview"`
	FullReview    string     `json:"fullReview"`
	Materials     []Material `json:"materials"`
	Scores        []Score    `json:"scores"`
	Pros          []string   `json:"pros"`
	Cons          []string   `json:"cons"`
	FAQs          []FAQ      `json:"faqs"`
	AffiliateLink string     `json:"affiliateLink"`
	CTAText       string     `json:"ctaText"`
	IsActive      bool       `json:"isActive"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// Normalize replaces nil lists with empty ones.
func (p Product) Normalize() Product {
	p.Images.Gallery = orEmpty(p.Images.Gallery)
	p.Specs = orEmpty(p.Specs)
	p.BestFor = orEmpty(p.BestFor)
	p.NotBestFor = orEmpty(p.NotBestFor)
	p.Materials = orEmpty(p.Materials)
	p.Scores = orEmpty(p.Scores)
	p.Pros = orEmpty(p.Pros)
	p.Cons = orEmpty(p.Cons)
	p.FAQs = orEmpty(p.FAQs)
	return p
}

// ProductFromRow maps a storage row to a document. It is total: every
// documented field gets a value even when the row holds NULLs.
func ProductFromRow(row db.Product) Product {
	p := Product{
		ID:            row.ID,
		Rank:          row.Rank,
		Slug:          row.Slug,
		Badge:         row.Badge.String,
		Name:          row.Name,
		Tagline:       row.Tagline.String,
		Rating:        row.Rating.Float64,
		BriefReview:   row.BriefReview.String,
		FullReview:    row.FullReview.String,
		AffiliateLink: row.AffiliateLink.String,
		CTAText:       row.CtaText.String,
		IsActive:      row.IsActive,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}

	decodeColumn("price", row.Price, &p.Price)
	decodeColumn("images", row.Images, &p.Images)
	decodeColumn("specs", row.Specs, &p.Specs)
	decodeColumn("best_for", row.BestFor, &p.BestFor)
	decodeColumn("not_best_for", row.NotBestFor, &p.NotBestFor)
	decodeColumn("materials", row.Materials, &p.Materials)
	decodeColumn("scores", row.Scores, &p.Scores)
	decodeColumn("pros", row.Pros, &p.Pros)
	decodeColumn("cons", row.Cons, &p.Cons)
	decodeColumn("faqs", row.Faqs, &p.FAQs)

	return p.Normalize()
}

// NewProductRow builds the insert row for a complete document.
func NewProductRow(id string, p Product) db.CreateProductParams {
	p = p.Normalize()
	return db.CreateProductParams{
		ID:            id,
		Rank:          p.Rank,
		Slug:          p.Slug,
		Badge:         nullString(p.Badge),
		Name:          p.Name,
		Tagline:       nullString(p.Tagline),
		Price:         encodeColumn(p.Price),
		Rating:        sql.NullFloat64{Float64: p.Rating, Valid: true},
		Images:        encodeColumn(p.Images),
		Specs:         encodeColumn(p.Specs),
		BestFor:       encodeColumn(p.BestFor),
		NotBestFor:    encodeColumn(p.NotBestFor),
		BriefReview:   nullString(p.BriefReview),
		FullReview:    nullString(p.FullReview),
		Materials:     encodeColumn(p.Materials),
		Scores:        encodeColumn(p.Scores),
		Pros:          encodeColumn(p.Pros),
		Cons:          encodeColumn(p.Cons),
		Faqs:          encodeColumn(p.FAQs),
		AffiliateLink: nullString(p.AffiliateLink),
		CtaText:       nullString(p.CTAText),
		IsActive:      p.IsActive,
	}
}

// ProductPatch is a partial product document. A nil field was absent from
// the request and must leave the stored value alone. Timestamps are not
// patchable and are dropped on decode.
type ProductPatch struct {
	ID            string      `json:"id"`
	Rank          *int64      `json:"rank"`
	Slug          *string     `json:"slug"`
	Badge         *string     `json:"badge"`
	Name          *string     `json:"name"`
	Tagline       *string     `json:"tagline"`
	Price         *Price      `json:"price"`
	Rating        *float64    `json:"rating"`
	Images        *Images     `json:"images"`
	Specs         *[]Spec     `json:"specs"`
	BestFor       *[]string   `json:"bestFor"`
	NotBestFor    *[]string   `json:"notBestFor"`
	BriefReview   *string     `json:"briefReview"`
	FullReview    *string     `json:"fullReview"`
	Materials     *[]Material `json:"materials"`
	Scores        *[]Score    `json:"scores"`
	Pros          *[]string   `json:"pros"`
	Cons          *[]string   `json:"cons"`
	FAQs          *[]FAQ      `json:"faqs"`
	AffiliateLink *string     `json:"affiliateLink"`
	CTAText       *string     `json:"ctaText"`
	IsActive      *bool       `json:"isActive"`
}

// Params maps the patch to update parameters, emitting only present fields.
func (p ProductPatch) Params(id string) db.UpdateProductParams {
	params := db.UpdateProductParams{
		ID:            id,
		Slug:          optString(p.Slug),
		Badge:         optString(p.Badge),
		Name:          optString(p.Name),
		Tagline:       optString(p.Tagline),
		Price:         optColumn(p.Price),
		Images:        optColumn(p.Images),
		Specs:         optColumn(p.Specs),
		BestFor:       optColumn(p.BestFor),
		NotBestFor:    optColumn(p.NotBestFor),
		BriefReview:   optString(p.BriefReview),
		FullReview:    optString(p.FullReview),
		Materials:     optColumn(p.Materials),
		Scores:        optColumn(p.Scores),
		Pros:          optColumn(p.Pros),
		Cons:          optColumn(p.Cons),
		Faqs:          optColumn(p.FAQs),
		AffiliateLink: optString(p.AffiliateLink),
		CtaText:       optString(p.CTAText),
	}
	if p.Rank != nil {
		params.Rank = sql.NullInt64{Int64: *p.Rank, Valid: true}
	}
	if p.Rating != nil {
		params.Rating = sql.NullFloat64{Float64: *p.Rating, Valid: true}
	}
	if p.IsActive != nil {
		params.IsActive = sql.NullBool{Bool: *p.IsActive, Valid: true}
	}
	return params
}
