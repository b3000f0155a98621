package format

import (
	"errors"
	"strings"
	"testing"

	"github.com/siy/cross-poster/types"
)

func article(title, body string) types.Article {
	return types.Article{Title: title, Body: body, Published: true}
}

func TestFormatMarkdownPassthrough(t *testing.T) {
	a := article("Intro", "plain **markdown** body")

	got, err := Format(a, types.PlatformDevto, Options{ContentFormat: Markdown})
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if got.Content != "plain **markdown** body" {
		t.Errorf("Content = %q; dev.to markdown must pass through untouched", got.Content)
	}
}

func TestFormatHTML(t *testing.T) {
	a := article("T", "# Hello\n\nThis is **bold** and *italic*.")

	got, err := Format(a, types.PlatformDevto, Options{ContentFormat: HTML})
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if !strings.Contains(got.Content, "<strong>bold</strong>") {
		t.Errorf("Content = %q; want rendered <strong>", got.Content)
	}
	if !strings.Contains(got.Content, "<em>italic</em>") {
		t.Errorf("Content = %q; want rendered <em>", got.Content)
	}
}

func TestFormatHTMLNeverEmitsRawScript(t *testing.T) {
	a := article("T", "before\n\n<script>alert(1)</script>\n\nafter")

	got, err := Format(a, types.PlatformDevto, Options{ContentFormat: HTML})
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if strings.Contains(got.Content, "<script>") {
		t.Errorf("Content = %q; raw HTML must never be emitted verbatim", got.Content)
	}
}

func TestFormatInlineHTMLNeutralized(t *testing.T) {
	a := article("T", "text with <img src=x onerror=alert(1)> inline")

	got, err := Format(a, types.PlatformDevto, Options{ContentFormat: HTML})
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if strings.Contains(got.Content, "<img src=x") {
		t.Errorf("Content = %q; inline HTML must never be emitted verbatim", got.Content)
	}
}

func TestFormatMediumTitleInjection(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		wantPrefix string
	}{
		{"injected when missing", "This is the content.", "# Intro\n\n"},
		{"not doubled when matching", "# Intro\n\nThis is the content.", "# Intro\n\nThis is the content."},
		{"match ignores case", "# intro\n\ntext", "# intro\n\ntext"},
		{"injected over different heading", "# Other Title\n\ntext", "# Intro\n\n"},
		{"injected over h2", "## Introduction\n\ntext", "# Intro\n\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Format(article("Intro", c.body), types.PlatformMedium, Options{ContentFormat: Markdown})
			if err != nil {
				t.Fatalf("Format error: %v", err)
			}
			if !strings.HasPrefix(got.Content, c.wantPrefix) {
				t.Errorf("Content = %q; want prefix %q", got.Content, c.wantPrefix)
			}
		})
	}
}

func TestFormatMediumStripsLiquidTags(t *testing.T) {
	a := article("T", "# T\n\nbefore {% tweet 123 %} after")

	got, err := Format(a, types.PlatformMedium, Options{ContentFormat: Markdown})
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if strings.Contains(got.Content, "{%") {
		t.Errorf("Content = %q; liquid tags must be removed for Medium", got.Content)
	}

	// dev.to renders liquid tags natively; they must survive there.
	got, err = Format(a, types.PlatformDevto, Options{ContentFormat: Markdown})
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if !strings.Contains(got.Content, "{% tweet 123 %}") {
		t.Errorf("Content = %q; liquid tags must be kept for dev.to", got.Content)
	}
}

func TestFormatSizeLimit(t *testing.T) {
	body := strings.Repeat("a", MediumMaxContentBytes+1)
	a := article("T", body)

	_, err := Format(a, types.PlatformDevto, Options{ContentFormat: Markdown, SizeLimit: MediumMaxContentBytes})

	var tooLarge *ContentTooLargeError
	if !errors.As(err, &tooLarge) {
		t.Fatalf("Format error = %v; want *ContentTooLargeError", err)
	}
	if tooLarge.Size != MediumMaxContentBytes+1 {
		t.Errorf("Size = %d; want %d", tooLarge.Size, MediumMaxContentBytes+1)
	}
	if tooLarge.Limit != MediumMaxContentBytes {
		t.Errorf("Limit = %d; want %d", tooLarge.Limit, MediumMaxContentBytes)
	}
}

func TestFormatCleanAIOptIn(t *testing.T) {
	a := article("T", "smart “quotes” here")

	got, err := Format(a, types.PlatformDevto, Options{ContentFormat: Markdown})
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if got.Content != "smart “quotes” here" {
		t.Errorf("Content = %q; cleaning must never run implicitly", got.Content)
	}

	got, err = Format(a, types.PlatformDevto, Options{ContentFormat: Markdown, CleanAI: true})
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if got.Content != "smart \"quotes\" here" {
		t.Errorf("Content = %q; want cleaned quotes", got.Content)
	}
}

func TestEnsureTitleHeading(t *testing.T) {
	got := EnsureTitleHeading("My Article", "This is the content.")
	if got != "# My Article\n\nThis is the content." {
		t.Errorf("EnsureTitleHeading = %q", got)
	}

	content := "# My Article\n\nThis is the content."
	if got := EnsureTitleHeading("My Article", content); got != content {
		t.Errorf("EnsureTitleHeading = %q; want unchanged", got)
	}
}

func TestParseContentFormat(t *testing.T) {
	cases := []struct {
		in      string
		want    ContentFormat
		wantErr bool
	}{
		{"markdown", Markdown, false},
		{"md", Markdown, false},
		{"html", HTML, false},
		{"HTML", HTML, false},
		{"invalid", "", true},
	}

	for _, c := range cases {
		got, err := ParseContentFormat(c.in)
		if c.wantErr != (err != nil) {
			t.Errorf("ParseContentFormat(%q) error = %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseContentFormat(%q) = %q; want %q", c.in, got, c.want)
		}
	}
}
