package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/siy/cross-poster/format"
	"github.com/siy/cross-poster/sanitize"
	"github.com/siy/cross-poster/types"
)

// The Accept header pins the Forem API version and the User-Agent identifies
// the tool; dev.to rejects requests without both. They are constants of the
// adapter, not configuration.
const (
	devtoBaseURL   = "https://dev.to/api"
	devtoAccept    = "application/vnd.forem.api-v1+json"
	devtoUserAgent = "cross-poster (https://github.com/siy/cross-poster)"
)

// DevtoClient talks to the dev.to (Forem) REST API.
type DevtoClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewDevtoClient creates a dev.to adapter. An empty baseURL selects the
// production API; tests point it at a local server.
func NewDevtoClient(creds types.DevtoCredentials, baseURL string) *DevtoClient {
	if baseURL == "" {
		baseURL = devtoBaseURL
	}
	return &DevtoClient{
		baseURL:    baseURL,
		apiKey:     creds.APIKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *DevtoClient) Name() string { return types.PlatformDevto.String() }

type devtoArticlePayload struct {
	Title        string   `json:"title"`
	BodyMarkdown string   `json:"body_markdown"`
	Published    bool     `json:"published"`
	Tags         []string `json:"tags,omitempty"`
	CanonicalURL string   `json:"canonical_url,omitempty"`
	MainImage    string   `json:"main_image,omitempty"`
	Description  string   `json:"description,omitempty"`
}

type devtoPublishRequest struct {
	Article devtoArticlePayload `json:"article"`
}

type devtoArticleResponse struct {
	ID           json.Number `json:"id"`
	Title        string      `json:"title"`
	URL          string      `json:"url"`
	BodyMarkdown string      `json:"body_markdown"`
	TagList      []string    `json:"tag_list"`
	CanonicalURL string      `json:"canonical_url"`
	CoverImage   string      `json:"cover_image"`
	Description  string      `json:"description"`
	Published    bool        `json:"published"`
	PublishedAt  *time.Time  `json:"published_at"`
}

// Publish formats the article and creates it on dev.to, returning the URL of
// the created (or draft) post.
func (c *DevtoClient) Publish(ctx context.Context, a types.Article, opts format.Options) (string, error) {
	// dev.to takes markdown only, whatever the requested format for other
	// targets.
	opts.ContentFormat = format.Markdown

	formatted, err := format.Format(a, types.PlatformDevto, opts)
	if err != nil {
		return "", err
	}

	tags, warnings := sanitize.Tags(a.Tags, types.PlatformDevto.MaxTags())
	for _, w := range warnings {
		log.Warn().Str("platform", c.Name()).Msg(w)
	}

	payload := devtoPublishRequest{Article: devtoArticlePayload{
		Title:        a.Title,
		BodyMarkdown: formatted.Content,
		Published:    a.Published,
		Tags:         tags,
		CanonicalURL: a.CanonicalURL,
		MainImage:    a.CoverImage,
		Description:  a.Description,
	}}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal dev.to request: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/articles", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send dev.to publish request: %w", err)
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
		URL string `json:"url"`
	}
	if err := decodeJSON(c.Name(), resp, &created); err != nil {
		return "", err
	}

	log.Info().Str("platform", c.Name()).Str("url", created.URL).Msg("article published")
	return created.URL, nil
}

// List retrieves a page of the account's articles. dev.to exposes a distinct
// endpoint per requested state.
func (c *DevtoClient) List(ctx context.Context, f ListFilter) ([]types.ArticleSummary, error) {
	path := "/articles/me"
	switch f.State {
	case StateUnpublished:
		path = "/articles/me/unpublished"
	case StateAll:
		path = "/articles/me/all"
	}

	query := url.Values{}
	if f.Page > 0 {
		query.Set("page", strconv.Itoa(f.Page))
	}
	if f.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(f.PerPage))
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send dev.to list request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Platform: c.Name(), Status: resp.StatusCode, Message: errorBody(resp)}
	}

	var items []devtoArticleResponse
	if err := decodeJSON(c.Name(), resp, &items); err != nil {
		return nil, err
	}

	summaries := make([]types.ArticleSummary, 0, len(items))
	for _, item := range items {
		summaries = append(summaries, types.ArticleSummary{
			ID:          item.ID.String(),
			Title:       item.Title,
			URL:         item.URL,
			PublishedAt: item.PublishedAt,
			Tags:        item.TagList,
			Excerpt:     item.Description,
		})
	}
	return summaries, nil
}

// Fetch retrieves the full content of one article by its dev.to identifier.
func (c *DevtoClient) Fetch(ctx context.Context, id string) (types.Article, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/articles/"+url.PathEscape(id), nil)
	if err != nil {
		return types.Article{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return types.Article{}, fmt.Errorf("send dev.to fetch request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.Article{}, &APIError{Platform: c.Name(), Status: resp.StatusCode, Message: errorBody(resp)}
	}

	var item devtoArticleResponse
	if err := decodeJSON(c.Name(), resp, &item); err != nil {
		return types.Article{}, err
	}

	return types.Article{
		Title:        item.Title,
		Body:         item.BodyMarkdown,
		Tags:         item.TagList,
		CanonicalURL: item.CanonicalURL,
		Published:    item.Published,
		CoverImage:   item.CoverImage,
		Description:  item.Description,
	}, nil
}

func (c *DevtoClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create dev.to request: %w", err)
	}
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("Accept", devtoAccept)
	req.Header.Set("User-Agent", devtoUserAgent)
	return req, nil
}
