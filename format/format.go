// Package format converts canonical article content into each platform's
// expected wire format, enforcing size limits and title placement rules.
package format

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/siy/cross-poster/cleaner"
	"github.com/siy/cross-poster/markdown"
	"github.com/siy/cross-poster/sanitize"
	"github.com/siy/cross-poster/types"
)

// ContentFormat selects the wire representation of the article body.
type ContentFormat string

const (
	Markdown ContentFormat = "markdown"
	HTML     ContentFormat = "html"
)

// ParseContentFormat resolves user input to a ContentFormat.
func ParseContentFormat(s string) (ContentFormat, error) {
	switch strings.ToLower(s) {
	case "markdown", "md":
		return Markdown, nil
	case "html":
		return HTML, nil
	default:
		return "", fmt.Errorf("unknown content format %q: valid options are markdown, html", s)
	}
}

// MediumMaxContentBytes is Medium's content size ceiling.
const MediumMaxContentBytes = 1 << 20

// Options controls how an article is formatted for a platform.
type Options struct {
	ContentFormat ContentFormat
	CleanAI       bool
	// SizeLimit caps the formatted content in bytes; zero means unlimited.
	SizeLimit int64
}

// Result is the formatted content ready for dispatch. Dry-run previews and
// live publishes both go through Format, so the two are identical up to the
// point of dispatch.
type Result struct {
	Content       string
	ContentFormat ContentFormat
}

// htmlRenderer deliberately omits html.WithUnsafe(): raw HTML embedded in
// the source markdown is neutralized instead of emitted verbatim, because
// the source document is untrusted relative to the rendering step.
var htmlRenderer = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Footnote,
		extension.DefinitionList,
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
)

// Format produces the wire content for one platform. It is pure aside from
// the size-limit check and never performs I/O.
func Format(a types.Article, target types.Platform, opts Options) (Result, error) {
	body := a.Body

	if opts.CleanAI {
		body = cleaner.Clean(body)
	}

	if target == types.PlatformMedium {
		// Medium renders liquid embeds as literal text, and its content model
		// does not surface the title separately from the body.
		body = sanitize.StripLiquidTags(body)
		body = EnsureTitleHeading(a.Title, body)
	}

	content := body
	contentFormat := opts.ContentFormat
	if contentFormat == "" {
		contentFormat = Markdown
	}

	if contentFormat == HTML {
		var buf bytes.Buffer
		if err := htmlRenderer.Convert([]byte(body), &buf); err != nil {
			return Result{}, fmt.Errorf("render markdown to HTML: %w", err)
		}
		content = buf.String()
	}

	if opts.SizeLimit > 0 && int64(len(content)) > opts.SizeLimit {
		return Result{}, &ContentTooLargeError{Size: int64(len(content)), Limit: opts.SizeLimit}
	}

	return Result{Content: content, ContentFormat: contentFormat}, nil
}

// EnsureTitleHeading prepends the title as an H1 unless the body already
// begins with an H1 whose text matches the title. This guarantees every
// Medium post's visible content includes its own title without ever
// doubling it.
func EnsureTitleHeading(title, body string) string {
	trimmed := strings.TrimSpace(body)
	if text, ok := strings.CutPrefix(trimmed, "# "); ok {
		firstLine, _, _ := strings.Cut(text, "\n")
		if markdown.TitlesEqual(firstLine, title) {
			return body
		}
	}
	return fmt.Sprintf("# %s\n\n%s", title, body)
}
