package mcp

import (
	"strings"
	"testing"

	"hsdocs/internal/helpscout"
)

func TestRenderSearchResults_Empty(t *testing.T) {
	page := &helpscout.SearchPage{PageInfo: helpscout.PageInfo{Page: 1, Pages: 1}}

	got := renderSearchResults("xyz-no-match", page)

	want := `No published articles found matching "xyz-no-match".`
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestRenderSearchResults_BlocksAndHint(t *testing.T) {
	page := &helpscout.SearchPage{
		Items: []helpscout.SearchResult{
			{ID: "a1", Name: "Reset your password", URL: "https://docs.example.com/a1", Preview: "How to reset"},
			{ID: "a2", Name: "", URL: "", Preview: "   "},
		},
		PageInfo: helpscout.PageInfo{Count: 12, Page: 1, Pages: 3},
	}

	got := renderSearchResults("password", page)

	for _, want := range []string{
		`Found 12 article(s) matching "password" (page 1 of 3):`,
		"### Reset your password",
		"- **ID:** `a1`",
		"- **URL:** https://docs.example.com/a1",
		"- **Preview:** How to reset",
		"### Untitled",
		"- **URL:** N/A",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, got)
		}
	}

	// Whitespace-only preview must be omitted entirely
	if strings.Contains(got, "- **Preview:** \n") || strings.Count(got, "**Preview:**") != 1 {
		t.Errorf("Blank preview should be omitted, got:\n%s", got)
	}

	if !strings.HasSuffix(got, "_Call search_articles again with page=2 for more results._") {
		t.Errorf("Expected next-page hint at end of output, got:\n%s", got)
	}
}

func TestRenderSearchResults_NoHintOnLastPage(t *testing.T) {
	page := &helpscout.SearchPage{
		Items:    []helpscout.SearchResult{{ID: "a1", Name: "Only hit"}},
		PageInfo: helpscout.PageInfo{Count: 1, Page: 3, Pages: 3},
	}

	got := renderSearchResults("q", page)

	if strings.Contains(got, "for more results") {
		t.Errorf("No hint expected on the last page, got:\n%s", got)
	}
}

func TestRenderArticle_NotFound(t *testing.T) {
	got := renderArticle("missing-id", nil)

	want := "Article `missing-id` not found."
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestRenderArticle_Full(t *testing.T) {
	article := &helpscout.Article{
		ID:        "a1",
		Name:      "Getting Started",
		Status:    "published",
		PublicURL: "https://docs.example.com/a1",
		UpdatedAt: "2026-01-02T10:00:00Z",
		ViewCount: 42,
		Text:      "Welcome to the docs.",
	}

	got := renderArticle("a1", article)

	for _, want := range []string{
		"# Getting Started",
		"**Status:** published",
		"**Public URL:** https://docs.example.com/a1",
		"**Last updated:** 2026-01-02T10:00:00Z",
		"**Views:** 42",
		"---",
		"Welcome to the docs.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, got)
		}
	}
}

func TestRenderArticle_EmptyBodyPlaceholder(t *testing.T) {
	article := &helpscout.Article{Name: "Stub article", Status: "published"}

	got := renderArticle("a1", article)

	if !strings.Contains(got, "_No content available._") {
		t.Errorf("Expected empty-body placeholder, got:\n%s", got)
	}
}

func TestRenderArticle_MissingFieldsDefault(t *testing.T) {
	got := renderArticle("a1", &helpscout.Article{})

	for _, want := range []string{
		"# Untitled",
		"**Status:** unknown",
		"**Public URL:** N/A",
		"**Last updated:** N/A",
		"**Views:** 0",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, got)
		}
	}
}

func TestRenderCollections_Empty(t *testing.T) {
	page := &helpscout.CollectionPage{PageInfo: helpscout.PageInfo{Page: 1, Pages: 1}}

	got := renderCollections(page)

	if got != "No collections found." {
		t.Errorf("Expected empty-list sentence, got %q", got)
	}
}

func TestRenderCollections_BlocksAndNoHint(t *testing.T) {
	page := &helpscout.CollectionPage{
		Items: []helpscout.Collection{
			{ID: "c1", Name: "FAQs", Description: "Common questions", PublicURL: "https://docs.example.com/c1", PublishedArticleCount: 7},
			{ID: "c2", Name: "Guides", Description: "  "},
		},
		PageInfo: helpscout.PageInfo{Count: 9, Page: 1, Pages: 4},
	}

	got := renderCollections(page)

	for _, want := range []string{
		"Found 9 collection(s) (page 1 of 4):",
		"### FAQs",
		"- **ID:** `c1`",
		"- **Published articles:** 7",
		"- **Description:** Common questions",
		"- **URL:** https://docs.example.com/c1",
		"### Guides",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, got)
		}
	}

	// Blank description must be omitted
	if strings.Count(got, "**Description:**") != 1 {
		t.Errorf("Blank description should be omitted, got:\n%s", got)
	}

	// list_collections never appends a next-page hint, even mid-pagination
	if strings.Contains(got, "for more results") {
		t.Errorf("list_collections must not append a pagination hint, got:\n%s", got)
	}
}

func TestRenderCollectionArticles_Empty(t *testing.T) {
	page := &helpscout.ArticleRefPage{PageInfo: helpscout.PageInfo{Page: 1, Pages: 1}}

	got := renderCollectionArticles("col-1", page)

	want := "No published articles found in collection `col-1`."
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestRenderCollectionArticles_BlocksAndHint(t *testing.T) {
	page := &helpscout.ArticleRefPage{
		Items: []helpscout.ArticleRef{
			{ID: "a1", Name: "Alpha", PublicURL: "https://docs.example.com/a1"},
			{ID: "a2", Name: "Beta"},
		},
		PageInfo: helpscout.PageInfo{Count: 80, Page: 2, Pages: 4},
	}

	got := renderCollectionArticles("col-1", page)

	for _, want := range []string{
		"Found 80 article(s) in collection `col-1` (page 2 of 4):",
		"- **Alpha**",
		"  ID: `a1`  |  URL: https://docs.example.com/a1",
		"- **Beta**",
		"  ID: `a2`  |  URL: N/A",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, got)
		}
	}

	if !strings.HasSuffix(got, "_Call list_articles again with page=3 for more results._") {
		t.Errorf("Expected next-page hint at end of output, got:\n%s", got)
	}
}

func TestRenderCollectionArticles_NoHintOnLastPage(t *testing.T) {
	page := &helpscout.ArticleRefPage{
		Items:    []helpscout.ArticleRef{{ID: "a1", Name: "Alpha"}},
		PageInfo: helpscout.PageInfo{Count: 1, Page: 4, Pages: 4},
	}

	got := renderCollectionArticles("col-1", page)

	if strings.Contains(got, "for more results") {
		t.Errorf("No hint expected on the last page, got:\n%s", got)
	}
}
