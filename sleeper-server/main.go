package main

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"sleeper-mcp/internal/sleeper"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	serverName    = "sleeper-mcp"
	serverVersion = "1.0.0"
)

type UserArgs struct {
	Username string `json:"username" jsonschema:"Sleeper username (required)"`
}

type UserLeaguesArgs struct {
	Username string `json:"username" jsonschema:"Sleeper username (required)"`
	Season   string `json:"season" jsonschema:"NFL season, e.g. 2025 (default: current season)"`
}

type UserLineupArgs struct {
	Username string `json:"username" jsonschema:"Sleeper username (required)"`
	LeagueID string `json:"league_id" jsonschema:"Sleeper league id (required)"`
}

type NoArgs struct{}

type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func main() {
	// .env is optional; flags and real env vars win.
	_ = godotenv.Load()

	defaultAddr := ":8080"
	if p := strings.TrimSpace(os.Getenv("PORT")); p != "" {
		defaultAddr = ":" + p
	}

	var (
		addr        = flag.String("addr", defaultAddr, "HTTP listen address")
		mcpPath     = flag.String("path", "/mcp", "HTTP path for MCP endpoint")
		baseURL     = flag.String("base-url", sleeper.DefaultBaseURL, "Sleeper API base URL")
		timeout     = flag.Duration("timeout", 10*time.Second, "upstream HTTP timeout")
		requireAuth = flag.Bool("require-auth", false, "require API key auth via SLEEPER_MCP_API_KEY")
		authHeader  = flag.String("auth-header", "X-API-Key", "HTTP header to read API key from")
	)
	flag.Parse()

	api := sleeper.NewClient(sleeper.Config{
		BaseURL:    *baseURL,
		HTTPClient: &http.Client{Timeout: *timeout},
	})

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    serverName,
			Version: serverVersion,
		},
		nil,
	)

	registry := make([]toolInfo, 0, 8)

	addTool(server, &registry, &mcp.Tool{
		Name:        "get_nfl_state",
		Description: "Current NFL season state including current week",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args NoArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildNFLState(ctx, api)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolResult(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "get_user_info",
		Description: "Look up a Sleeper user by username",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args UserArgs) (*mcp.CallToolResult, any, error) {
		if args.Username == "" {
			return toolError(fmt.Errorf("username is required")), nil, nil
		}
		out, err := buildUserInfo(ctx, api, args.Username)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolResult(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "get_user_leagues",
		Description: "All leagues for a user in a season (default: current season)",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args UserLeaguesArgs) (*mcp.CallToolResult, any, error) {
		if args.Username == "" {
			return toolError(fmt.Errorf("username is required")), nil, nil
		}
		out, err := buildUserLeagues(ctx, api, args.Username, args.Season)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolResult(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "get_user_lineup",
		Description: "A user's current-week lineup in one league, with resolved player names and opponent",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args UserLineupArgs) (*mcp.CallToolResult, any, error) {
		if args.Username == "" {
			return toolError(fmt.Errorf("username is required")), nil, nil
		}
		if args.LeagueID == "" {
			return toolError(fmt.Errorf("league_id is required")), nil, nil
		}
		out, err := buildUserLineup(ctx, api, args.Username, args.LeagueID)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolResult(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "get_user_weekly_lineup",
		Description: "A user's current-week lineup across all their leagues",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args UserArgs) (*mcp.CallToolResult, any, error) {
		if args.Username == "" {
			return toolError(fmt.Errorf("username is required")), nil, nil
		}
		out, err := buildWeeklyLineup(ctx, api, args.Username)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolResult(out)
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "get_server_info",
		Description: "Server name, version, environment, and Go version",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args NoArgs) (*mcp.CallToolResult, any, error) {
		return toolResult(buildServerInfo())
	})

	addTool(server, &registry, &mcp.Tool{
		Name:        "health_check",
		Description: "Health check for monitoring server status",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args NoArgs) (*mcp.CallToolResult, any, error) {
		return toolResult(buildHealth())
	})

	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})

	apiKey := strings.TrimSpace(os.Getenv("SLEEPER_MCP_API_KEY"))
	if *requireAuth && apiKey == "" {
		log.Fatal("SLEEPER_MCP_API_KEY is required (set env var or run with --require-auth=false)")
	}

	withAuth := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" {
				next(w, r)
				return
			}
			key := strings.TrimSpace(r.Header.Get(*authHeader))
			if key == "" {
				if authz := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
					key = strings.TrimSpace(authz[7:])
				}
			}
			if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}
			next(w, r)
		}
	}

	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	http.Handle("/metrics", promhttp.Handler())

	http.HandleFunc("/tools", withAuth(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		b, _ := json.MarshalIndent(map[string]any{"tools": registry}, "", "  ")
		w.Write(b)
	}))

	http.HandleFunc(*mcpPath, withAuth(func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, r)
	}))

	log.Info("MCP HTTP server listening", "addr", *addr, "path", *mcpPath, "tools", len(registry))
	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Fatal(err)
	}
}

func addTool[T any](server *mcp.Server, registry *[]toolInfo, tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error)) {
	*registry = append(*registry, toolInfo{Name: tool.Name, Description: tool.Description})
	mcp.AddTool(server, tool, handler)
}

// toolResult marshals v as indented JSON into a text content result.
func toolResult(v any) (*mcp.CallToolResult, any, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError(err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(b)},
		},
	}, nil, nil
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}
