// Package mcp exposes the CineScout discovery operations as MCP tools over
// stdio, so LLM clients can search and inspect movies.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/cinescout/cinescout/internal/core"
)

// Server wraps an MCP SDK server with CineScout tool handlers.
type Server struct {
	server   *mcpsdk.Server
	provider core.MetadataProvider
	logger   *slog.Logger
}

// NewServer creates an MCP server with all CineScout tools registered.
func NewServer(provider core.MetadataProvider, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    "cinescout",
			Version: "0.1.0",
		},
		&mcpsdk.ServerOptions{Logger: logger},
	)

	srv := &Server{server: s, provider: provider, logger: logger}
	srv.registerTools()
	return srv
}

// ServeStdio runs the MCP server over stdin/stdout.
func (s *Server) ServeStdio(ctx context.Context) error {
	return s.server.Run(ctx, &mcpsdk.StdioTransport{})
}

// MCPServer returns the underlying MCP SDK server (for testing).
func (s *Server) MCPServer() *mcpsdk.Server {
	return s.server
}

func (s *Server) registerTools() {
	s.server.AddTool(searchMoviesTool(), s.handleSearchMovies)
	s.server.AddTool(trendingMoviesTool(), s.handleTrendingMovies)
	s.server.AddTool(movieDetailsTool(), s.handleMovieDetails)
}

// Tool definitions.

func searchMoviesTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "search_movies",
		Description: "Search for movies by title. Returns the first page of matches with TMDb IDs, titles, release dates, and ratings.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "The movie title to search for",
				},
			},
			"required": []any{"query"},
		},
	}
}

func trendingMoviesTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "trending_movies",
		Description: "Get this week's trending movies (at most ten).",
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		},
	}
}

func movieDetailsTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "movie_details",
		Description: "Get detailed information about a movie by its TMDb ID. Returns runtime, genres, overview, rating, and cast.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"tmdb_id": map[string]any{
					"type":        "integer",
					"description": "The TMDb ID of the movie",
				},
			},
			"required": []any{"tmdb_id"},
		},
	}
}

// Tool handlers. Each parses arguments, calls the provider, and returns
// JSON text content.

func (s *Server) handleSearchMovies(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	query, err := extractStringFromArgs(req.Params.Arguments, "query")
	if err != nil {
		return toolError(err.Error()), nil
	}

	movies, err := s.provider.SearchMovies(ctx, query)
	if err != nil {
		return toolError(fmt.Sprintf("movie search failed: %v", err)), nil
	}
	return toolJSON(movies)
}

func (s *Server) handleTrendingMovies(ctx context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	movies, err := s.provider.TrendingWeek(ctx)
	if err != nil {
		return toolError(fmt.Sprintf("trending fetch failed: %v", err)), nil
	}
	return toolJSON(movies)
}

func (s *Server) handleMovieDetails(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	id, err := extractIntFromArgs(req.Params.Arguments, "tmdb_id")
	if err != nil {
		return toolError(err.Error()), nil
	}

	details, err := s.provider.MovieDetails(ctx, id)
	if err != nil {
		return toolError(fmt.Sprintf("movie details failed: %v", err)), nil
	}
	return toolJSON(details)
}

// Helper functions.

// toolJSON marshals v to JSON and returns it as text content.
func toolJSON(v any) (*mcpsdk.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return toolError(fmt.Sprintf("marshal result: %v", err)), nil
	}
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(data)}},
	}, nil
}

// toolError returns a tool result indicating an error.
func toolError(msg string) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: msg}},
		IsError: true,
	}
}

// extractIntFromArgs extracts an integer argument from raw JSON arguments.
func extractIntFromArgs(raw json.RawMessage, key string) (int, error) {
	var args map[string]any
	if err := json.Unmarshal(raw, &args); err != nil {
		return 0, fmt.Errorf("invalid arguments: %w", err)
	}

	val, ok := args[key]
	if !ok {
		return 0, fmt.Errorf("%s is required", key)
	}

	switch v := val.(type) {
	case float64:
		return int(v), nil
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("%s must be a number: %w", key, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%s must be a number, got %T", key, val)
	}
}

// extractStringFromArgs extracts a string argument from raw JSON arguments.
func extractStringFromArgs(raw json.RawMessage, key string) (string, error) {
	var args map[string]any
	if err := json.Unmarshal(raw, &args); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}

	val, ok := args[key]
	if !ok {
		return "", fmt.Errorf("%s is required", key)
	}

	s, ok := val.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("%s must be a non-empty string", key)
	}
	return s, nil
}
