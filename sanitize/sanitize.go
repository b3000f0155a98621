// Package sanitize validates and repairs platform-unsafe inputs: tags,
// credentials, source URLs, and content fragments the target platforms
// reject.
package sanitize

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	tagCharPattern   = regexp.MustCompile(`[^A-Za-z0-9]`)
	devtoURLPattern  = regexp.MustCompile(`^https?://dev\.to/[^/]+/[^/]+-([a-z0-9]+)/?$`)
	liquidTagPattern = regexp.MustCompile(`\{%.*?%\}`)
	imagePattern     = regexp.MustCompile(`!\[.*?\]\((.*?)\)`)
)

// Placeholder strings written by `config init`; publishing with one of these
// would only produce a confusing remote auth failure.
var placeholders = map[string]struct{}{
	"your_dev_to_api_key_here":      {},
	"your_medium_access_token_here": {},
	"your_medium_username_here":     {},
	"changeme":                      {},
}

// Tags strips characters outside [A-Za-z0-9] from each tag, drops tags that
// become empty, and caps the sequence at max, truncating from the end.
// Truncation and dropped tags are reported as warnings, never as failures;
// insertion order is preserved.
func Tags(tags []string, max int) ([]string, []string) {
	var warnings []string

	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		stripped := tagCharPattern.ReplaceAllString(tag, "")
		if stripped == "" {
			warnings = append(warnings, fmt.Sprintf("dropping tag %q: no alphanumeric characters left", tag))
			continue
		}
		if stripped != tag {
			warnings = append(warnings, fmt.Sprintf("tag %q sanitized to %q", tag, stripped))
		}
		cleaned = append(cleaned, stripped)
	}

	if len(cleaned) > max {
		warnings = append(warnings, fmt.Sprintf(
			"platform allows at most %d tags; keeping %s and dropping %s",
			max,
			strings.Join(cleaned[:max], ", "),
			strings.Join(cleaned[max:], ", ")))
		cleaned = cleaned[:max]
	}

	return cleaned, warnings
}

// Credential rejects empty values and known placeholder strings left over
// from the config template.
func Credential(name, value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return &PlaceholderCredentialError{Name: name, Value: value}
	}
	if _, ok := placeholders[strings.ToLower(trimmed)]; ok {
		return &PlaceholderCredentialError{Name: name, Value: trimmed}
	}
	return nil
}

// ParseDevtoURL extracts the platform article identifier from a dev.to
// article URL of the form https://dev.to/<user>/<slug>-<id>. It never
// performs a network fetch to resolve ambiguity.
func ParseDevtoURL(raw string) (string, error) {
	m := devtoURLPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return "", &InvalidSourceURLError{URL: raw}
	}
	return m[1], nil
}

// StripLiquidTags removes dev.to liquid embeds ({% ... %}) which Medium
// renders as literal text.
func StripLiquidTags(content string) string {
	return liquidTagPattern.ReplaceAllString(content, "")
}

// ValidateImageURLs checks that every markdown image in the content points
// at an absolute http(s) URL; platforms cannot resolve local paths.
func ValidateImageURLs(content string) error {
	for _, m := range imagePattern.FindAllStringSubmatch(content, -1) {
		url := m[1]
		if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
			return fmt.Errorf("image URL %q must be absolute", url)
		}
	}
	return nil
}
