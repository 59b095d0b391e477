package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/DarkGenius/pr-agent/internal/templates"
)

type SuggestTemplateHandler struct {
	Service CatalogService
}

func (h *SuggestTemplateHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	changesSummary := stringArg(args, "changes_summary", "")
	changeType := stringArg(args, "change_type", "")

	descriptors, err := h.Service.List()
	if err != nil {
		return catalogErrorDocument(), nil
	}
	return resultDocument(templates.Match(descriptors, changesSummary, changeType)), nil
}
