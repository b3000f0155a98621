package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/siy/cross-poster/config"
	"github.com/siy/cross-poster/poster"
	"github.com/siy/cross-poster/types"
)

const (
	colorSuccess = "#04B575"
	colorError   = "#FF5F56"
	colorWarning = "#FFBD2E"
	colorAccent  = "#7D56F4"
	colorMuted   = "#626262"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorAccent))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorSuccess))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorError))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorWarning))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMuted))

	contentBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorAccent)).
			Padding(0, 1)
)

func renderError(err error) string {
	return errorStyle.Render("error: " + err.Error())
}

// renderPostResults prints one line per target and returns an error when any
// target failed, so partial success still reports the successes.
func renderPostResults(results []poster.TargetResult) error {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Printf("%s %s\n", errorStyle.Render("✗ "+r.Platform.String()+":"), r.Err)
			continue
		}
		fmt.Printf("%s %s\n", successStyle.Render("✓ "+r.Platform.String()+":"), r.URL)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d platform(s) failed", failed, len(results))
	}
	return nil
}

func renderPreview(a types.Article, results []poster.TargetResult) {
	fmt.Println(titleStyle.Render(a.Title))
	if len(a.Tags) > 0 {
		fmt.Println(mutedStyle.Render("tags: " + strings.Join(a.Tags, ", ")))
	}
	if a.CanonicalURL != "" {
		fmt.Println(mutedStyle.Render("canonical: " + a.CanonicalURL))
	}
	fmt.Println()

	for _, r := range results {
		header := fmt.Sprintf("%s (%d bytes)", r.Platform, len(r.Content))
		fmt.Println(titleStyle.Render("--- " + header + " ---"))

		if r.Err != nil {
			fmt.Println(renderError(r.Err))
			continue
		}
		for _, w := range r.Warnings {
			fmt.Println(warningStyle.Render("warning: " + w))
		}
		fmt.Println(contentBoxStyle.Render(r.Content))
		fmt.Println()
	}
}

func renderSummaries(target types.Platform, summaries []types.ArticleSummary) {
	if len(summaries) == 0 {
		fmt.Println(mutedStyle.Render("no articles found on " + target.String()))
		return
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("%d article(s) on %s", len(summaries), target)))
	for _, s := range summaries {
		published := "draft"
		if s.PublishedAt != nil {
			published = s.PublishedAt.Format("2006-01-02")
		}
		fmt.Printf("%s  %s\n", mutedStyle.Render(published), s.Title)
		fmt.Printf("    %s\n", mutedStyle.Render(s.URL))
		if len(s.Tags) > 0 {
			fmt.Printf("    %s\n", mutedStyle.Render(strings.Join(s.Tags, ", ")))
		}
	}
}

func renderArticle(a types.Article) {
	fmt.Println(titleStyle.Render(a.Title))
	if len(a.Tags) > 0 {
		fmt.Println(mutedStyle.Render("tags: " + strings.Join(a.Tags, ", ")))
	}
	if a.CanonicalURL != "" {
		fmt.Println(mutedStyle.Render("canonical: " + a.CanonicalURL))
	}
	fmt.Println()
	fmt.Println(a.Body)
}

func renderConfig(cfg config.Config) {
	fmt.Println(titleStyle.Render("Current configuration"))
	fmt.Println("  dev.to:")
	fmt.Printf("    api_key: %s\n", cfg.Devto.APIKey)
	fmt.Println("  medium:")
	fmt.Printf("    access_token: %s\n", cfg.Medium.AccessToken)
	fmt.Printf("    username: %s\n", cfg.Medium.Username)
}

func renderConfigInit(path string) {
	fmt.Println(successStyle.Render("config file ready at " + path))
	fmt.Println(warningStyle.Render("credentials are stored in plain text; the file is only readable by your user"))
	fmt.Println(mutedStyle.Render("fill in your dev.to API key and Medium integration token before posting"))
}
