package utils

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/loganlanou/reviewhub/storage/db"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Slugify lowercases value and keeps only URL-safe characters, joining words
// with single hyphens. Example: "Helix Midnight Luxe!" -> "helix-midnight-luxe".
func Slugify(value string) string {
	slug := strings.ToLower(strings.TrimSpace(value))
	slug = strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			return r
		}
		if r == ' ' || r == '-' || r == '_' || r == '.' || r == '/' {
			return '-'
		}
		return -1
	}, slug)

	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return strings.Trim(slug, "-")
}

// WithSuffix appends a short random suffix, used when a slug is taken or
// the name has no URL-safe characters at all.
func WithSuffix(slug string) string {
	suffix := uuid.New().String()[:8]
	if slug == "" {
		return "product-" + suffix
	}
	return fmt.Sprintf("%s-%s", slug, suffix)
}

// ValidSlug reports whether slug is already in normalized form.
func ValidSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}

// AvailableSlug normalizes candidate and makes it unique against the
// products table.
func AvailableSlug(ctx context.Context, queries *db.Queries, candidate string) (string, error) {
	slug := Slugify(candidate)
	if slug == "" {
		return WithSuffix(""), nil
	}

	_, err := queries.GetProductBySlug(ctx, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return slug, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to check slug: %w", err)
	}
	return WithSuffix(slug), nil
}
