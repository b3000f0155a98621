package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	"github.com/siy/cross-poster/format"
	"github.com/siy/cross-poster/sanitize"
	"github.com/siy/cross-poster/types"
)

const (
	mediumBaseURL    = "https://api.medium.com/v1"
	mediumFeedURL    = "https://medium.com/feed/@%s"
	mediumListMax    = 10
	excerptMaxLength = 200
)

// MediumClient talks to the Medium REST API for publishing and to the
// unauthenticated public RSS feed for listing. Medium exposes no
// authenticated listing API usable here, so listings are best-effort and
// bounded (at most the 10 most recent entries, HTML-only summaries).
type MediumClient struct {
	baseURL    string
	feedURL    string
	username   string
	httpClient *http.Client

	// Identity from /v1/me, resolved before the first publish and cached
	// for the lifetime of the client instance only.
	userID string
}

// NewMediumClient creates a Medium adapter. Empty baseURL/feedURL select the
// production endpoints; tests point them at a local server.
func NewMediumClient(creds types.MediumCredentials, baseURL, feedURL string) *MediumClient {
	if baseURL == "" {
		baseURL = mediumBaseURL
	}
	if feedURL == "" {
		feedURL = fmt.Sprintf(mediumFeedURL, creds.Username)
	}

	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: creds.AccessToken})
	httpClient := oauth2.NewClient(context.Background(), src)
	httpClient.Timeout = 30 * time.Second

	return &MediumClient{
		baseURL:    baseURL,
		feedURL:    feedURL,
		username:   creds.Username,
		httpClient: httpClient,
	}
}

func (c *MediumClient) Name() string { return types.PlatformMedium.String() }

type mediumPublishRequest struct {
	Title         string   `json:"title"`
	ContentFormat string   `json:"contentFormat"`
	Content       string   `json:"content"`
	CanonicalURL  string   `json:"canonicalUrl,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	PublishStatus string   `json:"publishStatus"`
}

// me resolves the acting user's identity. Publishing is a two-step protocol:
// the posts endpoint is keyed by user id, which only the /me lookup provides.
func (c *MediumClient) me(ctx context.Context) (string, error) {
	if c.userID != "" {
		return c.userID, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/me", nil)
	if err != nil {
		return "", fmt.Errorf("create Medium identity request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send Medium identity request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &APIError{Platform: c.Name(), Status: resp.StatusCode, Message: errorBody(resp)}
	}

	var identity struct {
		Data struct {
			ID       string `json:"id"`
			Username string `json:"username"`
		} `json:"data"`
	}
	if err := decodeJSON(c.Name(), resp, &identity); err != nil {
		return "", err
	}

	c.userID = identity.Data.ID
	if c.username == "" {
		c.username = identity.Data.Username
	}
	return c.userID, nil
}

// Publish formats the article and creates it as a Medium post, returning its
// URL. Draft vs public follows Article.Published.
func (c *MediumClient) Publish(ctx context.Context, a types.Article, opts format.Options) (string, error) {
	userID, err := c.me(ctx)
	if err != nil {
		return "", err
	}

	if opts.SizeLimit == 0 {
		opts.SizeLimit = format.MediumMaxContentBytes
	}

	formatted, err := format.Format(a, types.PlatformMedium, opts)
	if err != nil {
		return "", err
	}

	tags, warnings := sanitize.Tags(a.Tags, types.PlatformMedium.MaxTags())
	for _, w := range warnings {
		log.Warn().Str("platform", c.Name()).Msg(w)
	}

	status := "public"
	if !a.Published {
		status = "draft"
	}

	payload := mediumPublishRequest{
		Title:         a.Title,
		ContentFormat: string(formatted.ContentFormat),
		Content:       formatted.Content,
		CanonicalURL:  a.CanonicalURL,
		Tags:          tags,
		PublishStatus: status,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal Medium request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/users/%s/posts", c.baseURL, userID), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create Medium publish request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send Medium publish request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &APIError{
			Platform: c.Name(),
			Status:   resp.StatusCode,
			Message: fmt.Sprintf("%s; title=%q tags=%d content=%dB format=%s",
				errorBody(resp), a.Title, len(tags), len(formatted.Content), formatted.ContentFormat),
		}
	}

	var created struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	if err := decodeJSON(c.Name(), resp, &created); err != nil {
		return "", err
	}

	log.Info().Str("platform", c.Name()).Str("url", created.Data.URL).Msg("article published")
	return created.Data.URL, nil
}

// List parses the user's public RSS feed. State filtering and pagination are
// not available there; the feed yields at most the 10 most recent public
// entries with HTML-only summaries. This is a documented capability gap of
// the platform, not a bug.
func (c *MediumClient) List(ctx context.Context, f ListFilter) ([]types.ArticleSummary, error) {
	if c.username == "" {
		// The feed URL is keyed by username; resolve it via /me when the
		// config does not carry one.
		if _, err := c.me(ctx); err != nil {
			return nil, err
		}
		c.feedURL = fmt.Sprintf(mediumFeedURL, c.username)
	}

	feed, err := gofeed.NewParser().ParseURLWithContext(c.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse Medium RSS feed: %w", err)
	}

	count := len(feed.Items)
	if count > mediumListMax {
		count = mediumListMax
	}

	summaries := make([]types.ArticleSummary, 0, count)
	for _, item := range feed.Items[:count] {
		var publishedAt *time.Time
		if item.PublishedParsed != nil {
			publishedAt = item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			publishedAt = item.UpdatedParsed
		}

		summary := item.Description
		if summary == "" {
			summary = item.Content
		}

		summaries = append(summaries, types.ArticleSummary{
			ID:          item.GUID,
			Title:       item.Title,
			URL:         item.Link,
			PublishedAt: publishedAt,
			Tags:        append([]string(nil), item.Categories...),
			Excerpt:     htmlExcerpt(summary),
		})
	}
	return summaries, nil
}

// Fetch is not supported: Medium provides no article read API.
func (c *MediumClient) Fetch(ctx context.Context, id string) (types.Article, error) {
	return types.Article{}, &CapabilityError{Platform: c.Name(), Operation: "fetch"}
}

// htmlExcerpt reduces an HTML feed summary to a short plain-text excerpt.
func htmlExcerpt(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	text := strings.Join(strings.Fields(doc.Text()), " ")
	if len(text) > excerptMaxLength {
		cut := strings.LastIndex(text[:excerptMaxLength], " ")
		if cut <= 0 {
			cut = excerptMaxLength
		}
		text = text[:cut] + "..."
	}
	return text
}
