// Package mcp exposes the HelpScout Docs knowledge base as Model Context
// Protocol (MCP) tools using the mcp-go library.
//
// The server registers four read-only tools — search_articles, get_article,
// list_collections and list_articles — each of which performs a single
// authenticated call against the Docs API and returns one formatted text
// block. All knowledge-base access is read-only; the server never writes to
// the upstream.
//
// # Implementation
//
// The package uses the mcp-go library (github.com/mark3labs/mcp-go) for
// protocol handling. Two transports are supported: stdio, where the server
// reads JSON-RPC requests from stdin and writes responses to stdout until
// EOF, and streamable HTTP on a configurable host/port under the /mcp path.
// Which one runs is decided by the configuration; the tool handlers are
// transport-agnostic.
//
// Tool invocations are independent and stateless: the only cross-call state
// is the immutable API credential captured at startup, so any number of
// invocations may be in flight concurrently.
//
// # Usage
//
//	hsdocs serve                       # streamable HTTP (default)
//	MCP_TRANSPORT=stdio hsdocs serve   # stdio, e.g. for the MCP Inspector
//
// # References
//
//   - MCP Specification: https://modelcontextprotocol.io/specification
//   - mcp-go Library: https://github.com/mark3labs/mcp-go
//   - HelpScout Docs API: https://developer.helpscout.com/docs-api/
package mcp
