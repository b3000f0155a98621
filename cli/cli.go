// Package cli parses subcommands, drives the publishing pipeline, and
// renders results. It is the only layer that maps errors to process exit
// codes.
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/siy/cross-poster/config"
	"github.com/siy/cross-poster/format"
	"github.com/siy/cross-poster/markdown"
	"github.com/siy/cross-poster/platform"
	"github.com/siy/cross-poster/poster"
	"github.com/siy/cross-poster/sanitize"
	"github.com/siy/cross-poster/tui"
	"github.com/siy/cross-poster/types"
)

const usage = `Usage: cross-poster <command> [options]

Commands:
  post <file|dev.to URL>   Publish an article to one or more platforms
  preview <file>           Show the formatted content without publishing
  list                     List articles from a platform
  fetch <id>               Fetch a single article by ID (dev.to only)
  config <init|show|path>  Manage credentials

Run 'cross-poster <command> -h' for command options.`

// Run executes the command line and returns the process exit code.
func Run(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, usage)
		return 2
	}

	var err error
	switch args[0] {
	case "post":
		err = runPost(args[1:])
	case "preview":
		err = runPreview(args[1:])
	case "list":
		err = runList(args[1:])
	case "fetch":
		err = runFetch(args[1:])
	case "config":
		err = runConfig(args[1:])
	case "-h", "--help", "help":
		fmt.Println(usage)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s\n", args[0], usage)
		return 2
	}

	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintln(os.Stderr, renderError(err))
		return 1
	}
	return 0
}

func runPost(args []string) error {
	fs := flag.NewFlagSet("post", flag.ContinueOnError)
	to := fs.String("to", "", "comma-separated target platforms: devto,medium")
	cleanAI := fs.Bool("clean-ai", false, "strip AI-generated typographic artifacts from the content")
	tagsFlag := fs.String("tags", "", "override frontmatter tags (comma-separated)")
	canonical := fs.String("canonical", "", "set the canonical URL")
	dryRun := fs.Bool("dry-run", false, "show what would be posted without posting")
	formatFlag := fs.String("format", "markdown", "content format for Medium: markdown or html")
	if err := fs.Parse(args); err != nil {
		return err
	}

	source := fs.Arg(0)
	if source == "" {
		return fmt.Errorf("post: missing source file or dev.to URL")
	}
	if *to == "" {
		return fmt.Errorf("post: --to is required (devto, medium, or both)")
	}

	targets, err := parseTargets(*to)
	if err != nil {
		return err
	}
	contentFormat, err := format.ParseContentFormat(*formatFlag)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()
	article, err := loadArticle(ctx, source, cfg)
	if err != nil {
		return err
	}

	if *tagsFlag != "" {
		article = article.WithTags(splitList(*tagsFlag))
	}
	if *canonical != "" {
		article = article.WithCanonicalURL(*canonical)
	}

	opts := format.Options{ContentFormat: contentFormat, CleanAI: *cleanAI}

	if *dryRun {
		results, err := poster.Preview(targets, article, opts)
		if err != nil {
			return err
		}
		renderPreview(article, results)
		return nil
	}

	publishers, err := buildPublishers(targets, cfg)
	if err != nil {
		return err
	}

	results, err := poster.Post(ctx, publishers, targets, article, opts)
	if err != nil {
		return err
	}
	return renderPostResults(results)
}

func runPreview(args []string) error {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	to := fs.String("to", "devto,medium", "comma-separated platforms to preview for")
	cleanAI := fs.Bool("clean-ai", false, "strip AI-generated typographic artifacts from the content")
	formatFlag := fs.String("format", "markdown", "content format for Medium: markdown or html")
	if err := fs.Parse(args); err != nil {
		return err
	}

	source := fs.Arg(0)
	if source == "" {
		return fmt.Errorf("preview: missing source file")
	}

	targets, err := parseTargets(*to)
	if err != nil {
		return err
	}
	contentFormat, err := format.ParseContentFormat(*formatFlag)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(source)
	if err != nil {
		return fmt.Errorf("read %s: %w", source, err)
	}
	article, err := markdown.Parse(raw)
	if err != nil {
		return err
	}

	results, err := poster.Preview(targets, article, format.Options{ContentFormat: contentFormat, CleanAI: *cleanAI})
	if err != nil {
		return err
	}
	renderPreview(article, results)
	return nil
}

func runList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	from := fs.String("from", "", "platform to list from: devto or medium")
	page := fs.Int("page", 1, "page number (dev.to only)")
	perPage := fs.Int("per-page", 30, "articles per page (dev.to only)")
	state := fs.String("state", "published", "article state filter (dev.to only): published, unpublished, all")
	interactive := fs.Bool("interactive", false, "browse the listing interactively")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *from == "" {
		return fmt.Errorf("list: --from is required (devto or medium)")
	}
	target, err := types.ParsePlatform(*from)
	if err != nil {
		return err
	}
	listState, err := platform.ParseListState(*state)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	pub, err := buildPublisher(target, cfg)
	if err != nil {
		return err
	}

	summaries, err := pub.List(context.Background(), platform.ListFilter{
		State:   listState,
		Page:    *page,
		PerPage: *perPage,
	})
	if err != nil {
		return err
	}

	if target == types.PlatformMedium {
		log.Warn().Msg("Medium listings come from the public RSS feed: at most 10 recent articles, summaries are HTML-derived")
	}

	if *interactive {
		return tui.Browse(target.String(), summaries)
	}
	renderSummaries(target, summaries)
	return nil
}

func runFetch(args []string) error {
	fs := flag.NewFlagSet("fetch", flag.ContinueOnError)
	from := fs.String("from", "", "platform to fetch from (only devto is supported)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id := fs.Arg(0)
	if id == "" {
		return fmt.Errorf("fetch: missing article ID")
	}
	if *from == "" {
		return fmt.Errorf("fetch: --from is required")
	}
	target, err := types.ParsePlatform(*from)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	pub, err := buildPublisher(target, cfg)
	if err != nil {
		return err
	}

	article, err := pub.Fetch(context.Background(), id)
	if err != nil {
		return err
	}
	renderArticle(article)
	return nil
}

func runConfig(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("config: missing action (init, show, path)")
	}

	switch args[0] {
	case "init":
		path, err := config.Init()
		if err != nil {
			return err
		}
		renderConfigInit(path)
		return nil
	case "show":
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		renderConfig(cfg.Masked())
		return nil
	case "path":
		path, err := config.Path()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	default:
		return fmt.Errorf("config: unknown action %q (valid: init, show, path)", args[0])
	}
}

// loadArticle reads the source document from disk, or imports it through the
// dev.to API when the source is a dev.to article URL.
func loadArticle(ctx context.Context, source string, cfg config.Config) (types.Article, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		id, err := sanitize.ParseDevtoURL(source)
		if err != nil {
			return types.Article{}, err
		}
		if err := sanitize.Credential("dev.to api_key", cfg.Devto.APIKey); err != nil {
			return types.Article{}, err
		}
		log.Info().Str("id", id).Msg("importing article from dev.to")
		return platform.NewDevtoClient(cfg.Devto, "").Fetch(ctx, id)
	}

	raw, err := os.ReadFile(source)
	if err != nil {
		return types.Article{}, fmt.Errorf("read %s: %w", source, err)
	}
	return markdown.Parse(raw)
}

// buildPublishers validates credentials and constructs one adapter per
// target, so placeholder credentials fail before any network call.
func buildPublishers(targets []types.Platform, cfg config.Config) ([]platform.Publisher, error) {
	publishers := make([]platform.Publisher, 0, len(targets))
	for _, target := range targets {
		pub, err := buildPublisher(target, cfg)
		if err != nil {
			return nil, err
		}
		publishers = append(publishers, pub)
	}
	return publishers, nil
}

func buildPublisher(target types.Platform, cfg config.Config) (platform.Publisher, error) {
	switch target {
	case types.PlatformDevto:
		if err := sanitize.Credential("dev.to api_key", cfg.Devto.APIKey); err != nil {
			return nil, err
		}
	case types.PlatformMedium:
		if err := sanitize.Credential("Medium access_token", cfg.Medium.AccessToken); err != nil {
			return nil, err
		}
	}
	return platform.New(target, cfg.Devto, cfg.Medium)
}

func parseTargets(list string) ([]types.Platform, error) {
	names := splitList(list)
	if len(names) == 0 {
		return nil, fmt.Errorf("no target platforms given")
	}

	targets := make([]types.Platform, 0, len(names))
	seen := map[types.Platform]struct{}{}
	for _, name := range names {
		target, err := types.ParsePlatform(name)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[target]; dup {
			continue
		}
		seen[target] = struct{}{}
		targets = append(targets, target)
	}
	return targets, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
