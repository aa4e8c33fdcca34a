package document

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonWordPattern    = regexp.MustCompile(`[^a-z0-9\s-]+`)
	whitespacePattern = regexp.MustCompile(`[\s-]+`)
	diacriticsFolder  = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Slugify derives a URL-safe slug from a title: diacritics folded, lower
// cased, non-word characters stripped, whitespace collapsed to hyphens.
func Slugify(title string) string {
	folded, _, err := transform.String(diacriticsFolder, title)
	if err != nil {
		folded = title
	}
	s := strings.ToLower(strings.TrimSpace(folded))
	s = nonWordPattern.ReplaceAllString(s, "")
	s = whitespacePattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// SlugChecker answers whether a slug is already taken, excluding the document
// being edited (excludeID of 0 excludes nothing).
type SlugChecker interface {
	ExistsBySlug(ctx context.Context, slug string, excludeID uint) (bool, error)
}

// UniqueSlug resolves a free slug by sequential probing: base, base-1,
// base-2, ... It is idempotent when called with a slug that is already free.
func UniqueSlug(ctx context.Context, checker SlugChecker, title string, excludeID uint) (string, error) {
	base := Slugify(title)
	if base == "" {
		base = "document"
	}

	candidate := base
	for i := 1; ; i++ {
		taken, err := checker.ExistsBySlug(ctx, candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("failed to check slug availability: %w", err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
