package sanitize

import "fmt"

// PlaceholderCredentialError reports a credential that is empty or still the
// literal template text from `config init`.
type PlaceholderCredentialError struct {
	Name  string
	Value string
}

func (e *PlaceholderCredentialError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s is not set; run 'cross-poster config init' and fill in your credentials", e.Name)
	}
	return fmt.Sprintf("%s still contains the template placeholder %q; replace it with a real credential", e.Name, e.Value)
}

// InvalidSourceURLError reports a source URL that is not a dev.to article
// URL of the expected shape.
type InvalidSourceURLError struct {
	URL string
}

func (e *InvalidSourceURLError) Error() string {
	return fmt.Sprintf("invalid source URL %q: expected https://dev.to/<user>/<slug>-<id>", e.URL)
}
