// Package markdown turns a raw markdown document with optional YAML
// frontmatter into the canonical article representation.
package markdown

import (
	"bytes"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/siy/cross-poster/types"
)

// metaEnvelope is the staged, mutable decode target for the frontmatter
// block. It never escapes this package; Parse finalizes it into an
// immutable types.Article once every field is known.
type metaEnvelope struct {
	Title        string   `yaml:"title"`
	Tags         []string `yaml:"tags"`
	CanonicalURL string   `yaml:"canonical_url"`
	Published    *bool    `yaml:"published"`
	CoverImage   string   `yaml:"cover_image"`
	Description  string   `yaml:"description"`
}

// Parse splits the document into metadata and body and resolves the article
// title. The metadata block is a leading YAML section delimited by "---" at
// the very start of the document; a document without one is valid as long as
// the title can be taken from the first top-level heading.
//
// Unknown metadata keys are ignored. A scalar value containing an unquoted
// colon is ambiguous with key/value separation and surfaces as a
// *MetadataSyntaxError.
func Parse(raw []byte) (types.Article, error) {
	var meta metaEnvelope

	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil {
		return types.Article{}, &MetadataSyntaxError{Err: err}
	}

	title, err := resolveTitle(meta.Title, string(body))
	if err != nil {
		return types.Article{}, err
	}

	published := true
	if meta.Published != nil {
		published = *meta.Published
	}

	return types.Article{
		Title:        title,
		Body:         string(body),
		Tags:         append([]string(nil), meta.Tags...),
		CanonicalURL: meta.CanonicalURL,
		Published:    published,
		CoverImage:   meta.CoverImage,
		Description:  meta.Description,
	}, nil
}

// resolveTitle picks the article title from metadata and/or the first H1 in
// the body. When both exist they must agree (case/whitespace-insensitive);
// a mismatch is reported rather than silently resolved so an article is
// never published under the wrong title.
func resolveTitle(metaTitle, body string) (string, error) {
	metaTitle = strings.TrimSpace(metaTitle)
	heading := FirstHeading(body)

	switch {
	case metaTitle != "" && heading != "":
		if !TitlesEqual(metaTitle, heading) {
			return "", &TitleConsistencyError{Meta: metaTitle, Heading: heading}
		}
		return metaTitle, nil
	case metaTitle != "":
		return metaTitle, nil
	case heading != "":
		return heading, nil
	default:
		return "", ErrMissingTitle
	}
}

// FirstHeading returns the text of the first top-level heading in the body,
// or "" if there is none. Fenced code blocks are skipped so a "# comment"
// inside a shell snippet is not mistaken for a heading.
func FirstHeading(body string) string {
	inFence := false
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		if text, ok := strings.CutPrefix(trimmed, "# "); ok {
			if text = strings.TrimSpace(text); text != "" {
				return text
			}
		}
	}
	return ""
}

// TitlesEqual compares two titles ignoring case and interior whitespace runs.
func TitlesEqual(a, b string) bool {
	return strings.EqualFold(collapseSpace(a), collapseSpace(b))
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
