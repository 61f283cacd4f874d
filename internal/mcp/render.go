package mcp

import (
	"fmt"
	"strings"

	"hsdocs/internal/helpscout"
)

// The rendering layer turns upstream payloads into the single markdown text
// block each tool returns. Fields the API omitted arrive as zero values and
// are replaced with neutral placeholders here; empty result sets render as
// plain sentences because they are normal outcomes, not failures.

func renderSearchResults(query string, page *helpscout.SearchPage) string {
	if len(page.Items) == 0 {
		return fmt.Sprintf("No published articles found matching \"%s\".", query)
	}

	lines := []string{
		fmt.Sprintf("Found %d article(s) matching \"%s\" (page %d of %d):\n",
			page.Count, query, page.Page, page.Pages),
	}
	for _, article := range page.Items {
		lines = append(lines, "### "+orDefault(article.Name, "Untitled"))
		lines = append(lines, fmt.Sprintf("- **ID:** `%s`", article.ID))
		lines = append(lines, "- **URL:** "+orDefault(article.URL, "N/A"))
		if preview := strings.TrimSpace(article.Preview); preview != "" {
			lines = append(lines, "- **Preview:** "+preview)
		}
		lines = append(lines, "")
	}

	if page.HasMorePages() {
		lines = append(lines, fmt.Sprintf("_Call search_articles again with page=%d for more results._", page.Page+1))
	}

	return strings.Join(lines, "\n")
}

func renderArticle(articleID string, article *helpscout.Article) string {
	if article == nil {
		return fmt.Sprintf("Article `%s` not found.", articleID)
	}

	body := article.Text
	if strings.TrimSpace(body) == "" {
		body = "_No content available._"
	}

	lines := []string{
		"# " + orDefault(article.Name, "Untitled"),
		"",
		"**Status:** " + orDefault(article.Status, "unknown"),
		"**Public URL:** " + orDefault(article.PublicURL, "N/A"),
		"**Last updated:** " + orDefault(article.UpdatedAt, "N/A"),
		fmt.Sprintf("**Views:** %d", article.ViewCount),
		"",
		"---",
		"",
		body,
	}
	return strings.Join(lines, "\n")
}

func renderCollections(page *helpscout.CollectionPage) string {
	if len(page.Items) == 0 {
		return "No collections found."
	}

	lines := []string{
		fmt.Sprintf("Found %d collection(s) (page %d of %d):\n",
			page.Count, page.Page, page.Pages),
	}
	for _, col := range page.Items {
		lines = append(lines, "### "+orDefault(col.Name, "Untitled"))
		lines = append(lines, fmt.Sprintf("- **ID:** `%s`", col.ID))
		lines = append(lines, fmt.Sprintf("- **Published articles:** %d", col.PublishedArticleCount))
		if desc := strings.TrimSpace(col.Description); desc != "" {
			lines = append(lines, "- **Description:** "+desc)
		}
		lines = append(lines, "- **URL:** "+orDefault(col.PublicURL, "N/A"))
		lines = append(lines, "")
	}

	// No next-page hint here, unlike the other list-shaped tools. The
	// upstream behavior has always been asymmetric and callers rely on the
	// header's page counters instead.
	return strings.Join(lines, "\n")
}

func renderCollectionArticles(collectionID string, page *helpscout.ArticleRefPage) string {
	if len(page.Items) == 0 {
		return fmt.Sprintf("No published articles found in collection `%s`.", collectionID)
	}

	lines := []string{
		fmt.Sprintf("Found %d article(s) in collection `%s` (page %d of %d):\n",
			page.Count, collectionID, page.Page, page.Pages),
	}
	for _, article := range page.Items {
		lines = append(lines, fmt.Sprintf("- **%s**", orDefault(article.Name, "Untitled")))
		lines = append(lines, fmt.Sprintf("  ID: `%s`  |  URL: %s", article.ID, orDefault(article.PublicURL, "N/A")))
	}

	if page.HasMorePages() {
		lines = append(lines, fmt.Sprintf("\n_Call list_articles again with page=%d for more results._", page.Page+1))
	}

	return strings.Join(lines, "\n")
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
