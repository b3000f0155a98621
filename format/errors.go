package format

import "fmt"

// ContentTooLargeError reports formatted content over the platform's size
// ceiling. The content is never truncated; truncation would corrupt the
// article.
type ContentTooLargeError struct {
	Size  int64
	Limit int64
}

func (e *ContentTooLargeError) Error() string {
	return fmt.Sprintf("formatted content is %d bytes, over the %d byte platform limit; shorten the article", e.Size, e.Limit)
}
