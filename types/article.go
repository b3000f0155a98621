package types

import "time"

// Article is the canonical in-memory representation of one post. It is
// constructed once per invocation by the frontmatter parser (or a platform
// fetch) and read by every downstream stage; transformations produce new
// values rather than mutating the original.
type Article struct {
	Title        string   `json:"title"`
	Body         string   `json:"body"`
	Tags         []string `json:"tags,omitempty"`
	CanonicalURL string   `json:"canonical_url,omitempty"`
	Published    bool     `json:"published"`
	CoverImage   string   `json:"cover_image,omitempty"`
	Description  string   `json:"description,omitempty"`
}

// ArticleSummary is a lightweight listing record built from platform list
// responses. It never round-trips back into an Article.
type ArticleSummary struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Excerpt     string     `json:"excerpt,omitempty"`
}

// WithTags returns a copy of the article with the tag list replaced.
func (a Article) WithTags(tags []string) Article {
	a.Tags = append([]string(nil), tags...)
	return a
}

// WithCanonicalURL returns a copy of the article with the canonical URL set.
func (a Article) WithCanonicalURL(url string) Article {
	a.CanonicalURL = url
	return a
}

// WithBody returns a copy of the article with the body replaced.
func (a Article) WithBody(body string) Article {
	a.Body = body
	return a
}

// DevtoCredentials holds the dev.to API key.
type DevtoCredentials struct {
	APIKey string `yaml:"api_key"`
}

// MediumCredentials holds the Medium integration token and the username used
// for the public RSS listing fallback.
type MediumCredentials struct {
	AccessToken string `yaml:"access_token"`
	Username    string `yaml:"username"`
}
