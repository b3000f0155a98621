package markdown

import (
	"errors"
	"fmt"
)

// ErrMissingTitle is returned when neither the frontmatter nor the body's
// first top-level heading provides a title.
var ErrMissingTitle = errors.New(
	"missing title: add a 'title' field to the frontmatter or start the content with an H1 heading")

// MetadataSyntaxError wraps a failure to decode the frontmatter block, most
// commonly an unquoted colon inside a scalar value.
type MetadataSyntaxError struct {
	Err error
}

func (e *MetadataSyntaxError) Error() string {
	return fmt.Sprintf("invalid frontmatter: %v (values containing ':' must be quoted)", e.Err)
}

func (e *MetadataSyntaxError) Unwrap() error { return e.Err }

// TitleConsistencyError reports a frontmatter title that disagrees with the
// body's first top-level heading.
type TitleConsistencyError struct {
	Meta    string
	Heading string
}

func (e *TitleConsistencyError) Error() string {
	return fmt.Sprintf(
		"title mismatch: frontmatter says %q but content starts with %q; update one of them",
		e.Meta, e.Heading)
}
