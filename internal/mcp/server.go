package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"hsdocs/internal/config"
	"hsdocs/internal/helpscout"
	"hsdocs/internal/logging"

	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "HelpScout Docs"
	serverVersion = "1.0.0"
)

const serverInstructions = "This server gives you access to the organisation's HelpScout " +
	"knowledge base. Use search_articles to find relevant articles, " +
	"get_article to read the full content of a specific article, " +
	"list_collections to browse top-level sections, and list_articles " +
	"to enumerate articles within a collection."

// Server wires the HelpScout Docs client into an MCP server instance.
type Server struct {
	cfg        *config.Config
	logger     *logging.AppLogger
	client     *helpscout.Client
	mcpServer  *server.MCPServer
	httpServer *server.StreamableHTTPServer
}

// NewServer creates the MCP server with all four tools registered. The
// configuration is taken as a required dependency; the credential inside it
// was resolved once at startup and is read-only from here on.
func NewServer(cfg *config.Config, logger *logging.AppLogger) *Server {
	s := &Server{
		cfg:    cfg,
		logger: logger,
		client: helpscout.NewClient(cfg.BaseURL, cfg.APIKey, logger),
	}

	s.mcpServer = server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions),
	)
	s.registerTools()

	return s
}

// Start runs the configured transport. The stdio transport blocks until the
// client closes the stream; the HTTP transport blocks until the context is
// cancelled or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	if s.cfg.APIKey == "" {
		// Start anyway so the operator sees the remediation text in tool
		// results, but make the misconfiguration obvious in the log.
		s.logger.Warn("No HelpScout API key configured; every tool call will fail", "hint", config.APIKeyHelp)
	}

	if s.cfg.Transport == config.TransportStdio {
		s.logger.Info("Starting MCP server", "transport", config.TransportStdio)
		if err := server.ServeStdio(s.mcpServer); err != nil {
			return fmt.Errorf("MCP server failed: %w", err)
		}
		return nil
	}

	addr := s.cfg.Addr()
	s.logger.Info("Starting MCP server", "transport", s.cfg.Transport, "addr", addr, "path", "/mcp")

	s.httpServer = server.NewStreamableHTTPServer(s.mcpServer,
		server.WithEndpointPath("/mcp"),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.Start(addr)
	}()

	select {
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("MCP server failed: %w", err)
		}
		return nil
	}
}

// Shutdown gracefully stops the HTTP transport. It is a no-op for stdio,
// which ends when the peer closes the stream.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	s.logger.Info("Shutting down MCP server")
	return s.httpServer.Shutdown(ctx)
}
