package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/DarkGenius/pr-agent/internal/analyzer"
	"github.com/DarkGenius/pr-agent/internal/mcp/tools/types"
	"github.com/DarkGenius/pr-agent/internal/roots"
)

type AnalyzeService interface {
	Verify(ctx context.Context, dir string) error
	Collect(ctx context.Context, dir, baseBranch, pathspec string) ([]analyzer.ChangeRecord, analyzer.ChangeSummary, error)
	Diff(ctx context.Context, dir, baseBranch, pathspec string, maxLines int) (string, bool, error)
}

// AnalyzeDefaults carries the configured fallbacks for omitted arguments.
type AnalyzeDefaults struct {
	BaseBranch   string
	MaxDiffLines int
}

type AnalyzeFileChangesHandler struct {
	Service  AnalyzeService
	Roots    roots.Resolver
	Defaults AnalyzeDefaults
}

func (h *AnalyzeFileChangesHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	baseBranch := stringArg(args, "base_branch", h.Defaults.BaseBranch)
	includeDiff := boolArg(args, "include_diff", true)
	maxDiffLines := intArg(args, "max_diff_lines", h.Defaults.MaxDiffLines)
	cwdFromRoot := boolArg(args, "cwd_from_root", true)
	pathspec := stringArg(args, "pathspec", "")

	var resolver roots.Resolver
	if cwdFromRoot {
		resolver = h.Roots
	}
	dir := roots.Workdir(ctx, resolver)

	if err := h.Service.Verify(ctx, dir); err != nil {
		return gitErrorDocument(err), nil
	}

	changed, summary, err := h.Service.Collect(ctx, dir, baseBranch, pathspec)
	if err != nil {
		return gitErrorDocument(err), nil
	}
	if changed == nil {
		changed = []analyzer.ChangeRecord{}
	}

	result := types.AnalyzeResult{
		BaseBranch:   baseBranch,
		ChangedFiles: changed,
		Summary:      summary,
	}

	if includeDiff {
		diff, truncated, err := h.Service.Diff(ctx, dir, baseBranch, pathspec, maxDiffLines)
		if err != nil {
			return gitErrorDocument(err), nil
		}
		result.Diff = &diff
		result.Truncated = &truncated
	}

	return resultDocument(result), nil
}
