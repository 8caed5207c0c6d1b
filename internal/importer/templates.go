package importer

import "strings"

// Template is the header row and an illustrative data row for a kind.
type Template struct {
	Headers []string
	Example []string
}

var templates = map[Kind]Template{
	KindProducts: {
		Headers: []string{"rank", "name", "slug", "badge", "tagline", "originalPrice", "currentPrice", "rating", "imageUrl", "briefReview", "affiliateLink", "ctaText"},
		Example: []string{"1", "WinkBed", "winkbed", "Most Comfortable", "Luxury hybrid mattress", "1799", "1299", "9.4", "https://example.com/img.jpg", "Great for back pain...", "https://affiliate.link", "Shop Now →"},
	},
	KindTestimonials: {
		Headers: []string{"name", "avatar", "product", "rating", "text"},
		Example: []string{"John D.", "👨", "WinkBed", "5", "Best mattress I ever bought! My back pain is gone."},
	},
	KindFAQ: {
		Headers: []string{"question", "answer"},
		Example: []string{"What is the best mattress for back pain?", "Our top pick for back pain is WinkBed, thanks to its zoned lumbar support."},
	},
	KindComparison: {
		Headers: []string{"type", "product", "benefit"},
		Example: []string{"😴 Side Sleeper", "Helix Midnight", "✓ Pressure relief for shoulders and hips"},
	},
}

func TemplateFor(kind Kind) (Template, error) {
	t, ok := templates[kind]
	if !ok {
		return Template{}, ErrUnknownKind
	}
	return t, nil
}

// TemplateCSV renders the template with the same naive joiner the parser
// splits on, so a cell containing a comma splits on re-import.
func TemplateCSV(kind Kind) (string, error) {
	t, err := TemplateFor(kind)
	if err != nil {
		return "", err
	}
	lines := []string{strings.Join(t.Headers, ","), strings.Join(t.Example, ",")}
	return strings.Join(lines, "\n"), nil
}

// TemplateFileName is the download name for a kind's template.
func TemplateFileName(kind Kind) string {
	return string(kind) + "-template.csv"
}
