package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/DarkGenius/pr-agent/internal/mcp/tools/types"
	"github.com/DarkGenius/pr-agent/internal/templates"
)

type CatalogService interface {
	List() ([]templates.Descriptor, error)
}

type GetPRTemplatesHandler struct {
	Service CatalogService
}

func (h *GetPRTemplatesHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	descriptors, err := h.Service.List()
	if err != nil {
		return catalogErrorDocument(), nil
	}
	return resultDocument(types.TemplateList{Templates: descriptors}), nil
}

func catalogErrorDocument() *mcp.CallToolResult {
	return resultDocument(types.ToolError{
		Error: "templates_missing",
		Hint:  "Template directory is missing or empty; check the templates_dir setting.",
	})
}
