// Package poster runs the publishing pipeline across one or more platform
// targets and collects every outcome.
package poster

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/siy/cross-poster/format"
	"github.com/siy/cross-poster/platform"
	"github.com/siy/cross-poster/sanitize"
	"github.com/siy/cross-poster/types"
)

// TargetResult is the outcome of one platform target: a URL on success, an
// error on failure, or formatted content in dry-run mode.
type TargetResult struct {
	Platform types.Platform
	URL      string
	Content  string
	Warnings []string
	Err      error
}

// Post publishes the article to every target. Each platform call runs in its
// own goroutine and every outcome is collected: a failure on one target never
// prevents or masks the others, because partial cross-posting is a valid
// real-world outcome the caller must see in full.
func Post(ctx context.Context, publishers []platform.Publisher, targets []types.Platform, a types.Article, opts format.Options) ([]TargetResult, error) {
	if err := sanitize.ValidateImageURLs(a.Body); err != nil {
		return nil, err
	}

	results := make([]TargetResult, len(targets))

	var wg sync.WaitGroup
	for i := range targets {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			log.Info().Str("platform", targets[i].String()).Str("title", a.Title).Msg("publishing")
			url, err := publishers[i].Publish(ctx, a, opts)
			results[i] = TargetResult{Platform: targets[i], URL: url, Err: err}
		}(i)
	}
	wg.Wait()

	return results, nil
}

// Preview produces the exact content each target would receive, with the
// sanitizer's advisory warnings, and makes no network call. Dry-run and live
// publishing share the same formatting path, so the two are identical up to
// the point of dispatch.
func Preview(targets []types.Platform, a types.Article, opts format.Options) ([]TargetResult, error) {
	if err := sanitize.ValidateImageURLs(a.Body); err != nil {
		return nil, err
	}

	results := make([]TargetResult, 0, len(targets))
	for _, target := range targets {
		targetOpts := opts
		if target == types.PlatformDevto {
			targetOpts.ContentFormat = format.Markdown
		}
		if target == types.PlatformMedium && targetOpts.SizeLimit == 0 {
			targetOpts.SizeLimit = format.MediumMaxContentBytes
		}

		formatted, err := format.Format(a, target, targetOpts)
		if err != nil {
			results = append(results, TargetResult{Platform: target, Err: err})
			continue
		}

		_, warnings := sanitize.Tags(a.Tags, target.MaxTags())
		results = append(results, TargetResult{
			Platform: target,
			Content:  formatted.Content,
			Warnings: warnings,
		})
	}
	return results, nil
}
