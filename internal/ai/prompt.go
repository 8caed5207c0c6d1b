package ai

import (
	"fmt"

	"github.com/loganlanou/reviewhub/internal/importer"
)

var languageDirectives = map[string]string{
	"en":    "Respond in English.",
	"zh-TW": "Respond in Traditional Chinese (繁體中文).",
	"ja":    "Respond in Japanese (日本語).",
}

// LanguageDirective returns the instruction for a language code. Unknown
// codes fall back to English.
func LanguageDirective(lang string) string {
	if d, ok := languageDirectives[lang]; ok {
		return d
	}
	return languageDirectives["en"]
}

func SystemPrompt(lang string) string {
	return "You are a helpful assistant that generates content for affiliate marketing websites. " +
		LanguageDirective(lang) +
		" Always return valid JSON array only, no markdown, no explanation."
}

// UserPrompt builds the kind-specific request listing every field the
// matching import template expects.
func UserPrompt(kind importer.Kind, count int, topic string) (string, error) {
	switch kind {
	case importer.KindProducts:
		return fmt.Sprintf(`Generate %[1]d product reviews for "%[2]s" products. For each product, provide:
- rank (number 1-%[1]d)
- name (product name)
- slug (url-friendly name)
- badge (e.g., "Best Overall", "Best Value", "Most Comfortable")
- tagline (short description)
- originalPrice (number)
- currentPrice (number, should be less than originalPrice)
- rating (number 1-10, with one decimal)
- imageUrl (use placeholder: https://picsum.photos/400/300?random=X where X is the rank)
- briefReview (2-3 sentences)
- affiliateLink (use placeholder: https://example.com/product-X)
- ctaText (call to action text like "Shop Now →")

Return as JSON array.`, count, topic), nil

	case importer.KindTestimonials:
		return fmt.Sprintf(`Generate %d customer testimonials for "%s" products. For each testimonial:
- name (customer name with initial, e.g., "John D.")
- avatar (single emoji representing the person)
- product (product name they bought)
- rating (number 1-5)
- text (2-3 sentences review)

Return as JSON array.`, count, topic), nil

	case importer.KindFAQ:
		return fmt.Sprintf(`Generate %d frequently asked questions about "%s". For each FAQ:
- question (common question customers ask)
- answer (helpful, detailed answer)

Return as JSON array.`, count, topic), nil

	case importer.KindComparison:
		return fmt.Sprintf(`Generate %d comparison rows for "%s" products. For each row:
- type (customer type with emoji, e.g., "😴 Side Sleeper", "💪 Athletes")
- product (recommended product name)
- benefit (benefit with checkmark, e.g., "✓ Better pressure relief")

Return as JSON array.`, count, topic), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
}
