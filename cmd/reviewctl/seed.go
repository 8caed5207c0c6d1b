package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/loganlanou/reviewhub/internal/cms"
	"github.com/loganlanou/reviewhub/internal/content"
	"github.com/loganlanou/reviewhub/internal/importer"
	"gopkg.in/yaml.v3"
)

// seedDoc is the YAML seed format. List entries use the same field names
// as the CSV templates.
type seedDoc struct {
	Site struct {
		Name    string `yaml:"name"`
		Tagline string `yaml:"tagline"`
	} `yaml:"site"`
	Products     []importer.Record `yaml:"products"`
	Testimonials []importer.Record `yaml:"testimonials"`
	FAQ          []importer.Record `yaml:"faq"`
	Comparison   []importer.Record `yaml:"comparison"`
}

func readSeed(r io.Reader) (seedDoc, error) {
	var doc seedDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return seedDoc{}, fmt.Errorf("decode seed: %w", err)
	}
	return doc, nil
}

// applySeed writes every non-empty part of doc and describes what changed.
func applySeed(ctx context.Context, svc *cms.Service, doc seedDoc) (string, error) {
	var done []string

	if doc.Site.Name != "" || doc.Site.Tagline != "" {
		site, err := svc.GetSite(ctx)
		if err != nil {
			return "", fmt.Errorf("seed site: %w", err)
		}
		patch := content.SiteConfigPatch{ID: site.ID}
		if doc.Site.Name != "" {
			patch.Name = &doc.Site.Name
		}
		if doc.Site.Tagline != "" {
			patch.Tagline = &doc.Site.Tagline
		}
		if _, err := svc.UpdateSite(ctx, patch); err != nil {
			return "", fmt.Errorf("seed site: %w", err)
		}
		done = append(done, "site")
	}

	parts := []struct {
		kind    importer.Kind
		records []importer.Record
	}{
		{importer.KindProducts, doc.Products},
		{importer.KindTestimonials, doc.Testimonials},
		{importer.KindFAQ, doc.FAQ},
		{importer.KindComparison, doc.Comparison},
	}
	for _, part := range parts {
		if len(part.records) == 0 {
			continue
		}
		n, err := applyRecords(ctx, svc, part.kind, part.records)
		if err != nil {
			return "", fmt.Errorf("seed %s: %w", part.kind, err)
		}
		done = append(done, fmt.Sprintf("%d %s", n, part.kind))
	}

	if len(done) == 0 {
		return "seed file had nothing to apply", nil
	}
	return "seeded " + strings.Join(done, ", "), nil
}

// fakeProducts builds n plausible products for local development.
func fakeProducts(n int) []content.Product {
	out := make([]content.Product, n)
	for i := range out {
		original := gofakeit.Price(300, 2500)
		out[i] = content.Product{
			Name:        gofakeit.ProductName(),
			Badge:       gofakeit.RandomString([]string{"Best Overall", "Best Value", "Best for Back Pain", "Most Comfortable"}),
			Tagline:     gofakeit.ProductDescription(),
			Price:       content.Price{Original: original, Current: original * 0.8, Currency: "USD"},
			Rating:      float64(gofakeit.IntRange(70, 99)) / 10,
			Images:      content.Images{Main: gofakeit.URL()},
			BestFor:     []string{gofakeit.Sentence(4), gofakeit.Sentence(4)},
			NotBestFor:  []string{gofakeit.Sentence(4)},
			BriefReview: gofakeit.Paragraph(1, 3, 12, " "),
			Pros:        []string{gofakeit.Sentence(3), gofakeit.Sentence(3)},
			Cons:        []string{gofakeit.Sentence(3)},
			CTAText:     "Check Price",
			IsActive:    true,
		}
	}
	return out
}
