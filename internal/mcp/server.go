package mcp

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		"pr-agent",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Register tools with their proper schemas using mcp-go builder pattern
	toolDefinitions := map[string]mcp.Tool{
		"analyze_file_changes": mcp.NewTool("analyze_file_changes",
			mcp.WithDescription("Summarize pending changes in the local git repository relative to a base branch: changed files with status codes, insertion/deletion counts, and an optionally truncated diff."),
			mcp.WithString("base_branch",
				mcp.Description("Base branch to compare against (default: main)"),
			),
			mcp.WithBoolean("include_diff",
				mcp.Description("Include the full diff content, truncated to max_diff_lines (default: true)"),
			),
			mcp.WithNumber("max_diff_lines",
				mcp.Description("Maximum number of diff lines to return before truncation (default: 500)"),
			),
			mcp.WithBoolean("cwd_from_root",
				mcp.Description("Resolve the working directory from the caller's workspace roots instead of the process working directory (default: true)"),
			),
			mcp.WithString("pathspec",
				mcp.Description("Optional path or pattern restricting the comparison scope (e.g. 'src/' or '*.go')"),
			),
		),
		"get_pr_templates": mcp.NewTool("get_pr_templates",
			mcp.WithDescription("List available PR description templates with their full content."),
		),
		"suggest_template": mcp.NewTool("suggest_template",
			mcp.WithDescription("Resolve an analyzed change category to the most appropriate PR description template. Classifying the change is the caller's responsibility; this tool only maps category to template."),
			mcp.WithString("changes_summary",
				mcp.Required(),
				mcp.Description("The caller's analysis of what the changes do"),
			),
			mcp.WithString("change_type",
				mcp.Required(),
				mcp.Description("Identified change category: bug, feature, docs, refactor, test, chore, or other. Unrecognized values resolve to the generic template."),
			),
		),
	}

	for name, adapter := range cfg.ToolAdapters {
		tool := toolDefinitions[name]
		mcpServer.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return adapter.ToolAdapter(ctx, req)
		})
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: httpServer,
	}
}

// ServeStdio blocks serving the MCP protocol over stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.MCP)
}
