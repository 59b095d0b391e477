package types

import (
	"github.com/DarkGenius/pr-agent/internal/analyzer"
	"github.com/DarkGenius/pr-agent/internal/templates"
)

// AnalyzeResult is the analyze_file_changes response document. Diff and
// Truncated are present only when the caller asked for the diff body.
type AnalyzeResult struct {
	BaseBranch   string                  `json:"base_branch"`
	ChangedFiles []analyzer.ChangeRecord `json:"changed_files"`
	Summary      analyzer.ChangeSummary  `json:"summary"`
	Diff         *string                 `json:"diff,omitempty"`
	Truncated    *bool                   `json:"truncated,omitempty"`
}

// TemplateList is the get_pr_templates response document.
type TemplateList struct {
	Templates []templates.Descriptor `json:"templates"`
}

// ToolError is the structured failure document shared by all tools. Tools
// always answer with a parseable document; failures never cross the protocol
// boundary as faults.
type ToolError struct {
	Error  string   `json:"error"`
	Cmd    []string `json:"cmd,omitempty"`
	Stderr string   `json:"stderr,omitempty"`
	Hint   string   `json:"hint,omitempty"`
}
