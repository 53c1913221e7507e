package domain

import (
	"regexp"
	"strings"
)

var (
	slugInvalid   = regexp.MustCompile(`[^a-z0-9 -]`)
	slugSeparator = regexp.MustCompile(`[ -]+`)
)

// DeriveSlug turns a title into its URL-safe slug: lowercase, punctuation
// stripped, runs of spaces and hyphens collapsed to a single hyphen. The
// derivation is idempotent, so write paths call it only when the incoming
// title differs from the stored one.
func DeriveSlug(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugSeparator.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
