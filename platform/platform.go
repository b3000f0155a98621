// Package platform implements the uniform publish/list/fetch contract for
// each supported destination.
package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/siy/cross-poster/format"
	"github.com/siy/cross-poster/types"
)

// ListState filters which articles a listing returns.
type ListState string

const (
	StatePublished   ListState = "published"
	StateUnpublished ListState = "unpublished"
	StateAll         ListState = "all"
)

// ParseListState resolves user input to a ListState.
func ParseListState(s string) (ListState, error) {
	switch state := ListState(strings.ToLower(s)); state {
	case StatePublished, StateUnpublished, StateAll:
		return state, nil
	default:
		return "", fmt.Errorf("unknown state %q: valid options are published, unpublished, all", s)
	}
}

// ListFilter bounds a listing request. Page and PerPage are only honoured by
// platforms that paginate.
type ListFilter struct {
	State   ListState
	Page    int
	PerPage int
}

// Publisher is the contract every platform adapter implements. A platform
// may not support Fetch; calling it then returns a *CapabilityError
// immediately, never a silent no-op.
type Publisher interface {
	Name() string
	Publish(ctx context.Context, a types.Article, opts format.Options) (string, error)
	List(ctx context.Context, f ListFilter) ([]types.ArticleSummary, error)
	Fetch(ctx context.Context, id string) (types.Article, error)
}

// New constructs the adapter for a platform target from its credentials.
func New(target types.Platform, devto types.DevtoCredentials, medium types.MediumCredentials) (Publisher, error) {
	switch target {
	case types.PlatformDevto:
		return NewDevtoClient(devto, ""), nil
	case types.PlatformMedium:
		return NewMediumClient(medium, "", ""), nil
	default:
		return nil, fmt.Errorf("unknown platform %q", target)
	}
}

// decodeJSON decodes a response body, wrapping failures with the platform
// name for diagnostics.
func decodeJSON(platform string, resp *http.Response, v any) error {
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s response: %w", platform, err)
	}
	return nil
}

// errorBody reads a bounded amount of a failed response for inclusion in an
// APIError message.
func errorBody(resp *http.Response) string {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	text := strings.TrimSpace(string(body))
	if text == "" {
		return "(no response body)"
	}
	return text
}
