package templates

import (
	"fmt"
	"strings"
)

// DefaultTemplate is the generic template used when a change type has no
// dedicated mapping. Unrecognized change types are never an error.
const DefaultTemplate = "feature.md"

// typeToTemplate is the fixed, deterministic change-category mapping. Common
// aliases resolve alongside the canonical categories.
var typeToTemplate = map[string]string{
	"bug":           "bug.md",
	"fix":           "bug.md",
	"feature":       "feature.md",
	"enhancement":   "feature.md",
	"docs":          "docs.md",
	"documentation": "docs.md",
	"refactor":      "refactor.md",
	"cleanup":       "refactor.md",
	"test":          "test.md",
	"chore":         "chore.md",
	"performance":   "performance.md",
	"security":      "security.md",
}

// Suggestion is the matcher's result: the chosen template, its full content,
// and a rationale restating the caller's own analysis. Classification is the
// caller's job; the matcher only resolves category to template.
type Suggestion struct {
	Template  string `json:"template"`
	Content   string `json:"content"`
	Rationale string `json:"rationale"`
}

// Match resolves changeType against the catalog. A changeType outside the
// mapping, or a mapped file missing from the catalog, resolves to the default
// template. Identical inputs always yield the identical suggestion.
func Match(catalog []Descriptor, changesSummary, changeType string) Suggestion {
	name, ok := typeToTemplate[strings.ToLower(strings.TrimSpace(changeType))]
	if !ok {
		name = DefaultTemplate
	}
	chosen := find(catalog, name)
	if chosen == nil {
		chosen = find(catalog, DefaultTemplate)
	}
	if chosen == nil {
		// Catalog loaded but carries neither the mapped nor the default
		// template; fall back to the first entry to stay deterministic.
		chosen = &catalog[0]
	}
	return Suggestion{
		Template: chosen.Name,
		Content:  chosen.Content,
		Rationale: fmt.Sprintf("Change type %q maps to the %s template. Based on the analysis: %s",
			changeType, chosen.Name, changesSummary),
	}
}

func find(catalog []Descriptor, name string) *Descriptor {
	for i := range catalog {
		if catalog[i].Name == name {
			return &catalog[i]
		}
	}
	return nil
}
