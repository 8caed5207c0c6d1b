package importer

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/loganlanou/reviewhub/internal/content"
	"github.com/loganlanou/reviewhub/internal/utils"
)

// ProductFromRecord maps a flat product record onto a product document.
// Imported products are active. An empty slug is left for the content
// service to derive from the name.
func ProductFromRecord(r Record) content.Product {
	p := content.Product{
		Rank:          int64(math.Round(number(r["rank"]))),
		Name:          strings.TrimSpace(r.String("name")),
		Slug:          utils.Slugify(r.String("slug")),
		Badge:         r.String("badge"),
		Tagline:       r.String("tagline"),
		Price:         content.Price{Original: number(r["originalPrice"]), Current: number(r["currentPrice"])},
		Rating:        number(r["rating"]),
		Images:        content.Images{Main: r.String("imageUrl")},
		BriefReview:   r.String("briefReview"),
		AffiliateLink: r.String("affiliateLink"),
		CTAText:       r.String("ctaText"),
		IsActive:      true,
	}
	return p.Normalize()
}

func ProductsFromRecords(records []Record) []content.Product {
	out := make([]content.Product, len(records))
	for i, r := range records {
		out[i] = ProductFromRecord(r)
	}
	return out
}

// ModuleFor names the module whose list a kind replaces.
func ModuleFor(kind Kind) (content.ModuleID, error) {
	switch kind {
	case KindTestimonials:
		return content.ModuleTestimonials, nil
	case KindFAQ:
		return content.ModuleFAQ, nil
	case KindComparison:
		return content.ModuleComparison, nil
	default:
		return "", fmt.Errorf("%w: %s does not map to a module", ErrUnknownKind, kind)
	}
}

// ModuleItems shapes records into the JSON item list of the module that
// kind maps to.
func ModuleItems(kind Kind, records []Record) (json.RawMessage, error) {
	var items any
	switch kind {
	case KindTestimonials:
		list := make([]content.Testimonial, len(records))
		for i, r := range records {
			list[i] = content.Testimonial{
				Name:    r.String("name"),
				Avatar:  r.String("avatar"),
				Product: r.String("product"),
				Rating:  clampRating(number(r["rating"])),
				Text:    r.String("text"),
			}
		}
		items = list
	case KindFAQ:
		list := make([]content.FAQ, len(records))
		for i, r := range records {
			list[i] = content.FAQ{Question: r.String("question"), Answer: r.String("answer")}
		}
		items = list
	case KindComparison:
		list := make([]content.ComparisonRow, len(records))
		for i, r := range records {
			list[i] = content.ComparisonRow{Type: r.String("type"), Product: r.String("product"), Benefit: r.String("benefit")}
		}
		items = list
	default:
		return nil, fmt.Errorf("%w: %s does not map to a module", ErrUnknownKind, kind)
	}
	return json.Marshal(items)
}

// clampRating keeps testimonial ratings on the 1-5 star scale. A missing
// rating counts as five stars.
func clampRating(v float64) int {
	n := int(math.Round(v))
	switch {
	case n <= 0:
		return 5
	case n > 5:
		return 5
	default:
		return n
	}
}

// number reads a numeric field leniently: JSON numbers are used as is and
// strings may carry a currency sign or thousands separators.
func number(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, _ := n.Float64()
		return f
	case string:
		s := strings.TrimSpace(n)
		s = strings.TrimLeft(s, "$€£¥NT")
		s = strings.ReplaceAll(s, ",", "")
		s = strings.ReplaceAll(s, "_", "")
		s = strings.ReplaceAll(s, " ", "")
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
