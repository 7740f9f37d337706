package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/filmotheque/filmotheque/internal/catalog"
)

// Server wraps an MCP SDK server with catalogue tool handlers.
type Server struct {
	server *mcpsdk.Server
	client *catalog.Client
	logger *slog.Logger
}

// NewServer creates an MCP server with all catalogue tools registered.
func NewServer(client *catalog.Client, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    "filmotheque",
			Version: "0.1.0",
		},
		&mcpsdk.ServerOptions{Logger: logger},
	)

	srv := &Server{server: s, client: client, logger: logger}
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
	s.server.AddTool(listGenresTool(), s.handleListGenres)
	s.server.AddTool(browseTitlesTool(), s.handleBrowseTitles)
	s.server.AddTool(getTitleTool(), s.handleGetTitle)
	s.server.AddTool(bestTitleTool(), s.handleBestTitle)
}

// Tool definitions.

func listGenresTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "list_genres",
		Description: "List every genre known to the movie catalogue, in the backend's order.",
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		},
	}
}

func browseTitlesTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "browse_titles",
		Description: "List movies from the catalogue, best-rated first. Optionally filter by genre and limit the count.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"count": map[string]any{
					"type":        "integer",
					"description": "Maximum number of movies to return (default 6)",
				},
				"genre": map[string]any{
					"type":        "string",
					"description": "Optional genre name to filter by",
				},
			},
		},
	}
}

func getTitleTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "get_title",
		Description: "Get the full record of one movie by its catalogue ID: synopsis, genres, directors, actors, rating, and box office.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id": map[string]any{
					"type":        "integer",
					"description": "The catalogue ID of the movie",
				},
			},
			"required": []any{"id"},
		},
	}
}

func bestTitleTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "best_title",
		Description: "Get the full record of the single highest-rated movie in the catalogue.",
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		},
	}
}

// Tool handlers — each parses arguments, calls the catalogue, returns JSON text content.

func (s *Server) handleListGenres(ctx context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	names := s.client.GenreNames(ctx)
	if len(names) == 0 {
		return toolError("the catalogue returned no genres"), nil
	}
	return toolJSON(names)
}

func (s *Server) handleBrowseTitles(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	var args struct {
		Count int    `json:"count"`
		Genre string `json:"genre"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	if args.Count <= 0 {
		args.Count = 6
	}

	q := catalog.TopRated()
	if args.Genre != "" {
		q = catalog.ByGenre(args.Genre)
	}

	movies, err := s.client.Movies(ctx, args.Count, q)
	if err != nil {
		return toolError(fmt.Sprintf("browse titles failed: %v", err)), nil
	}
	return toolJSON(movies)
}

func (s *Server) handleGetTitle(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	id, err := extractIntFromArgs(req.Params.Arguments, "id")
	if err != nil {
		return toolError(err.Error()), nil
	}

	detail, err := s.client.Title(ctx, id)
	if err != nil {
		return toolError(fmt.Sprintf("get title failed: %v", err)), nil
	}
	return toolJSON(detail)
}

func (s *Server) handleBestTitle(ctx context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	detail, err := s.client.BestMovie(ctx)
	if err != nil {
		return toolError(fmt.Sprintf("best title failed: %v", err)), nil
	}
	return toolJSON(detail)
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
