package platform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/siy/cross-poster/format"
	"github.com/siy/cross-poster/types"
)

func mediumTestClient(t *testing.T, handler http.Handler) (*MediumClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	creds := types.MediumCredentials{AccessToken: "test-token", Username: "tester"}
	return NewMediumClient(creds, server.URL, server.URL+"/feed"), server
}

func mediumAPIHandler(t *testing.T, meCalls *int, gotReq *mediumPublishRequest) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/me", func(w http.ResponseWriter, r *http.Request) {
		*meCalls++
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q", got)
		}
		w.Write([]byte(`{"data": {"id": "user-1", "username": "tester"}}`))
	})
	mux.HandleFunc("/users/user-1/posts", func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(gotReq); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data": {"url": "https://medium.com/@tester/post-abc"}}`))
	})
	return mux
}

func TestMediumPublish(t *testing.T) {
	var meCalls int
	var gotReq mediumPublishRequest
	client, _ := mediumTestClient(t, mediumAPIHandler(t, &meCalls, &gotReq))

	a := types.Article{
		Title:        "Intro",
		Body:         "This is the content.",
		Tags:         []string{"go", "writing"},
		CanonicalURL: "https://example.com/intro",
		Published:    true,
	}

	url, err := client.Publish(context.Background(), a, format.Options{ContentFormat: format.Markdown})
	if err != nil {
		t.Fatalf("Publish error: %v", err)
	}
	if url != "https://medium.com/@tester/post-abc" {
		t.Errorf("url = %q", url)
	}

	if gotReq.PublishStatus != "public" {
		t.Errorf("publishStatus = %q; want public", gotReq.PublishStatus)
	}
	if gotReq.ContentFormat != "markdown" {
		t.Errorf("contentFormat = %q", gotReq.ContentFormat)
	}
	if gotReq.CanonicalURL != "https://example.com/intro" {
		t.Errorf("canonicalUrl = %q", gotReq.CanonicalURL)
	}
	if !strings.HasPrefix(gotReq.Content, "# Intro\n\n") {
		t.Errorf("content = %q; want the title injected as a leading H1", gotReq.Content)
	}
}

func TestMediumPublishDraft(t *testing.T) {
	var meCalls int
	var gotReq mediumPublishRequest
	client, _ := mediumTestClient(t, mediumAPIHandler(t, &meCalls, &gotReq))

	a := types.Article{Title: "T", Body: "b", Published: false}

	if _, err := client.Publish(context.Background(), a, format.Options{}); err != nil {
		t.Fatalf("Publish error: %v", err)
	}
	if gotReq.PublishStatus != "draft" {
		t.Errorf("publishStatus = %q; want draft", gotReq.PublishStatus)
	}
}

func TestMediumIdentityCachedPerClient(t *testing.T) {
	var meCalls int
	var gotReq mediumPublishRequest
	client, _ := mediumTestClient(t, mediumAPIHandler(t, &meCalls, &gotReq))

	a := types.Article{Title: "T", Body: "b", Published: true}

	for i := 0; i < 3; i++ {
		if _, err := client.Publish(context.Background(), a, format.Options{}); err != nil {
			t.Fatalf("Publish #%d error: %v", i+1, err)
		}
	}
	if meCalls != 1 {
		t.Errorf("identity lookups = %d; want exactly 1 per client instance", meCalls)
	}
}

func TestMediumPublishAuthFailure(t *testing.T) {
	client, _ := mediumTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"errors": [{"message": "Token was invalid"}]}`))
	}))

	a := types.Article{Title: "T", Body: "b", Published: true}

	_, err := client.Publish(context.Background(), a, format.Options{})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Publish error = %v; want *APIError", err)
	}
	if apiErr.Status != http.StatusUnauthorized || apiErr.Platform != "Medium" {
		t.Errorf("apiErr = %+v", apiErr)
	}
}

func TestMediumFetchUnsupported(t *testing.T) {
	client, _ := mediumTestClient(t, http.NewServeMux())

	_, err := client.Fetch(context.Background(), "any-id")

	var capErr *CapabilityError
	if !errors.As(err, &capErr) {
		t.Fatalf("Fetch error = %v; want *CapabilityError", err)
	}
	if capErr.Operation != "fetch" {
		t.Errorf("Operation = %q", capErr.Operation)
	}
}

func TestMediumList(t *testing.T) {
	var items strings.Builder
	for i := 1; i <= 12; i++ {
		fmt.Fprintf(&items, `
		<item>
			<title>Post %d</title>
			<link>https://medium.com/@tester/post-%d</link>
			<guid>https://medium.com/p/%d</guid>
			<category>go</category>
			<pubDate>Mon, 02 Jan 2006 15:04:05 GMT</pubDate>
			<description><![CDATA[<p>Summary of <b>post %d</b> with markup.</p>]]></description>
		</item>`, i, i, i, i)
	}
	rss := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>Stories by tester</title>%s</channel></rss>`, items.String())

	mux := http.NewServeMux()
	mux.HandleFunc("/feed", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rss))
	})
	client, _ := mediumTestClient(t, mux)

	summaries, err := client.List(context.Background(), ListFilter{})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}

	if len(summaries) != 10 {
		t.Fatalf("len(summaries) = %d; the RSS listing is bounded at 10", len(summaries))
	}
	first := summaries[0]
	if first.Title != "Post 1" || first.URL != "https://medium.com/@tester/post-1" {
		t.Errorf("first = %+v", first)
	}
	if len(first.Tags) != 1 || first.Tags[0] != "go" {
		t.Errorf("tags = %v", first.Tags)
	}
	if first.PublishedAt == nil {
		t.Error("PublishedAt = nil; want parsed pubDate")
	}
	if strings.Contains(first.Excerpt, "<") {
		t.Errorf("excerpt = %q; want plain text, not HTML", first.Excerpt)
	}
	if !strings.Contains(first.Excerpt, "Summary of post 1") {
		t.Errorf("excerpt = %q", first.Excerpt)
	}
}

func TestHTMLExcerptTruncates(t *testing.T) {
	long := "<p>" + strings.Repeat("word ", 100) + "</p>"
	got := htmlExcerpt(long)
	if len(got) > excerptMaxLength+len("...") {
		t.Errorf("len(excerpt) = %d; want at most %d", len(got), excerptMaxLength+3)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("excerpt = %q; want ellipsis suffix", got)
	}
}
