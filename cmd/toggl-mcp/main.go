// toggl-mcp is an MCP stdio server exposing Toggl Track time tracking as
// tools and prompts. All tool output is preformatted text; the JSON-RPC
// stream owns stdout, so diagnostics go to stderr.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"

	"github.com/vontell/toggl-track-mcp/internal/config"
	"github.com/vontell/toggl-track-mcp/internal/logging"
	"github.com/vontell/toggl-track-mcp/internal/tracker"
)

const version = "1.0.0"

func main() {
	log.SetOutput(os.Stderr)
	log.SetPrefix("[toggl-mcp] ")

	// Load .env file - try executable's parent dir (repo root), then exe dir, then cwd
	envPaths := []string{".env"}
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		envPaths = append([]string{
			filepath.Join(filepath.Dir(exeDir), ".env"), // parent of bin/ = repo root
			filepath.Join(exeDir, ".env"),
		}, envPaths...)
	}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	logging.Debug("main", "config: workspace=%d entries_window=%d search_window=%d",
		cfg.DefaultWorkspaceID, cfg.EntriesWindowDays, cfg.SearchWindowDays)

	svc := tracker.New(cfg)

	s := server.NewMCPServer(
		"toggl-track-mcp",
		version,
		server.WithToolCapabilities(true),
		server.WithPromptCapabilities(true),
	)

	registerTools(s, svc)
	registerPrompts(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
