package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/DarkGenius/pr-agent/internal/analyzer"
	"github.com/DarkGenius/pr-agent/internal/config"
	"github.com/DarkGenius/pr-agent/internal/gitcli"
	"github.com/DarkGenius/pr-agent/internal/logging"
	"github.com/DarkGenius/pr-agent/internal/mcp/tools"
	"github.com/DarkGenius/pr-agent/internal/roots"
	"github.com/DarkGenius/pr-agent/internal/templates"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
}

func DefaultConfig() Config {
	baseLogger := logging.New(logging.ForLevel(config.LogLevel()))

	runner := gitcli.NewRunner(config.GitTimeout())
	changeAnalyzer := analyzer.New(runner, baseLogger.WithName("analyzer"))
	catalog := templates.NewCatalog(config.TemplatesDir())

	var rootResolver roots.Resolver
	if workspaceRoots := config.WorkspaceRoots(); len(workspaceRoots) > 0 {
		rootResolver = roots.Static(workspaceRoots)
	}

	return Config{
		ToolAdapters: map[string]ToolAdapter{
			"analyze_file_changes": &tools.AnalyzeFileChangesHandler{
				Service: changeAnalyzer,
				Roots:   rootResolver,
				Defaults: tools.AnalyzeDefaults{
					BaseBranch:   config.BaseBranch(),
					MaxDiffLines: config.MaxDiffLines(),
				},
			},
			"get_pr_templates": &tools.GetPRTemplatesHandler{Service: catalog},
			"suggest_template": &tools.SuggestTemplateHandler{Service: catalog},
		},
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath("/mcp/jsonrpc"),
			server.WithStateLess(true),
		},
	}
}
