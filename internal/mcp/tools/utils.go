package tools

import (
	"encoding/json"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/DarkGenius/pr-agent/internal/gitcli"
	"github.com/DarkGenius/pr-agent/internal/mcp/tools/types"
)

func mustMarshal(v interface{}) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

// resultDocument wraps any payload, success or failure, as a text result so
// every call answers with one parseable JSON document.
func resultDocument(v interface{}) *mcp.CallToolResult {
	return mcp.NewToolResultText(string(mustMarshal(v)))
}

// gitErrorDocument converts a git-layer failure into the error envelope the
// operation contract promises.
func gitErrorDocument(err error) *mcp.CallToolResult {
	if errors.Is(err, gitcli.ErrGitNotFound) {
		return resultDocument(types.ToolError{
			Error: "git_not_found",
			Hint:  "Git is not installed or not in PATH.",
		})
	}
	var cmdErr *gitcli.CommandError
	if errors.As(err, &cmdErr) {
		return resultDocument(types.ToolError{
			Error:  "git_failed",
			Cmd:    cmdErr.Cmd,
			Stderr: cmdErr.Stderr,
		})
	}
	return resultDocument(types.ToolError{Error: "git_failed", Stderr: err.Error()})
}

func stringArg(args map[string]any, key, fallback string) string {
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func boolArg(args map[string]any, key string, fallback bool) bool {
	if v, ok := args[key].(bool); ok {
		return v
	}
	return fallback
}

func intArg(args map[string]any, key string, fallback int) int {
	if v, ok := args[key].(float64); ok && int(v) > 0 {
		return int(v)
	}
	return fallback
}
