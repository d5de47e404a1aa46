package utils

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var dangerousPatterns = regexp.MustCompile(`(?i)<script|javascript:|onerror=|onclick=`)

// Sanitizer strips markup and known script vectors from free-text user input.
type Sanitizer struct {
	policy *bluemonday.Policy
}

func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Sanitize drops all HTML, removes script vectors and trims surrounding whitespace.
// The result is plain text, so entities escaped by the policy are decoded before
// the pattern pass.
func (s *Sanitizer) Sanitize(text string) string {
	if text == "" {
		return ""
	}
	text = html.UnescapeString(s.policy.Sanitize(text))
	text = dangerousPatterns.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
