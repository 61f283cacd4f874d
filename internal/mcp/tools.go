package mcp

import (
	"context"
	"strings"

	"hsdocs/internal/helpscout"

	"github.com/mark3labs/mcp-go/mcp"
)

// registerTools declares the four knowledge-base tools. Descriptions are
// written for the calling model: they say what comes back and which tool to
// chain next.
func (s *Server) registerTools() {
	searchTool := mcp.NewTool("search_articles",
		mcp.WithDescription("Search published help articles by keyword or phrase. "+
			"Returns a formatted list of matching articles with ID, title, preview, and URL. "+
			"Use get_article(article_id) to retrieve the full content of any result."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("The search term"),
		),
		mcp.WithString("collection_id",
			mcp.Description("Optionally restrict the search to one collection"),
		),
		mcp.WithNumber("page",
			mcp.Description("Page number for paginated results (default 1)"),
			mcp.Min(1),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Results per page, max 100 (default 20)"),
			mcp.Min(1),
		),
	)
	s.mcpServer.AddTool(searchTool, s.handleSearchArticles)

	getTool := mcp.NewTool("get_article",
		mcp.WithDescription("Retrieve the full content of a specific help article: "+
			"title, metadata, and full body text. "+
			"Obtain article IDs from search_articles or list_articles."),
		mcp.WithString("article_id",
			mcp.Required(),
			mcp.Description("The HelpScout article ID"),
		),
	)
	s.mcpServer.AddTool(getTool, s.handleGetArticle)

	collectionsTool := mcp.NewTool("list_collections",
		mcp.WithDescription("List all public HelpScout documentation collections "+
			"(top-level sections of the knowledge base) with name, ID, description, "+
			"and published article count. "+
			"Use list_articles(collection_id) to browse articles within a collection."),
		mcp.WithNumber("page",
			mcp.Description("Page number (default 1)"),
			mcp.Min(1),
		),
	)
	s.mcpServer.AddTool(collectionsTool, s.handleListCollections)

	listTool := mcp.NewTool("list_articles",
		mcp.WithDescription("List all published articles within a specific HelpScout collection: "+
			"article names, IDs, and URLs. Use get_article(article_id) to read full content."),
		mcp.WithString("collection_id",
			mcp.Required(),
			mcp.Description("The collection ID (from list_collections)"),
		),
		mcp.WithNumber("page",
			mcp.Description("Page number (default 1)"),
			mcp.Min(1),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Results per page, max 100 (default 50)"),
			mcp.Min(1),
		),
	)
	s.mcpServer.AddTool(listTool, s.handleListArticles)
}

// handleSearchArticles handles the search_articles tool invocation
func (s *Server) handleSearchArticles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil || strings.TrimSpace(query) == "" {
		return mcp.NewToolResultError("query parameter is required and must be a non-empty string"), nil
	}

	result, err := s.client.SearchArticles(ctx, helpscout.SearchParams{
		Query:        query,
		CollectionID: request.GetString("collection_id", ""),
		Page:         request.GetInt("page", 1),
		PageSize:     request.GetInt("page_size", helpscout.DefaultSearchPageSize),
	})
	if err != nil {
		s.logger.Error("search_articles failed", "query", query, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.logger.Debug("search_articles completed", "query", query, "count", result.Count)
	return mcp.NewToolResultText(renderSearchResults(query, result)), nil
}

// handleGetArticle handles the get_article tool invocation
func (s *Server) handleGetArticle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	articleID, err := request.RequireString("article_id")
	if err != nil || strings.TrimSpace(articleID) == "" {
		return mcp.NewToolResultError("article_id parameter is required and must be a non-empty string"), nil
	}

	article, err := s.client.GetArticle(ctx, articleID)
	if err != nil {
		s.logger.Error("get_article failed", "article_id", articleID, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	// A nil article means the upstream had no payload for this ID; that is
	// rendered as a "not found" sentence, not surfaced as an error.
	s.logger.Debug("get_article completed", "article_id", articleID, "found", article != nil)
	return mcp.NewToolResultText(renderArticle(articleID, article)), nil
}

// handleListCollections handles the list_collections tool invocation
func (s *Server) handleListCollections(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page := request.GetInt("page", 1)

	result, err := s.client.ListCollections(ctx, page)
	if err != nil {
		s.logger.Error("list_collections failed", "page", page, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.logger.Debug("list_collections completed", "count", result.Count)
	return mcp.NewToolResultText(renderCollections(result)), nil
}

// handleListArticles handles the list_articles tool invocation
func (s *Server) handleListArticles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	collectionID, err := request.RequireString("collection_id")
	if err != nil || strings.TrimSpace(collectionID) == "" {
		return mcp.NewToolResultError("collection_id parameter is required and must be a non-empty string"), nil
	}

	result, err := s.client.ListArticles(ctx, collectionID,
		request.GetInt("page", 1),
		request.GetInt("page_size", helpscout.DefaultListPageSize),
	)
	if err != nil {
		s.logger.Error("list_articles failed", "collection_id", collectionID, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.logger.Debug("list_articles completed", "collection_id", collectionID, "count", result.Count)
	return mcp.NewToolResultText(renderCollectionArticles(collectionID, result)), nil
}
