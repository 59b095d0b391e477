package tools

import (
	"context"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/DarkGenius/pr-agent/internal/templates"
)

type fakeCatalogService struct {
	descriptors []templates.Descriptor
	err         error
}

func (f *fakeCatalogService) List() ([]templates.Descriptor, error) {
	return f.descriptors, f.err
}

func TestGetPRTemplates(t *testing.T) {
	svc := &fakeCatalogService{descriptors: []templates.Descriptor{
		{Name: "bug.md", Content: "# Bug Fix\n"},
		{Name: "feature.md", Content: "# New Feature\n"},
	}}
	res, err := (&GetPRTemplatesHandler{Service: svc}).ToolAdapter(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := resultText(t, res)
	if got := gjson.Get(doc, "templates.#").Int(); got != 2 {
		t.Fatalf("expected 2 templates, got %d", got)
	}
	if got := gjson.Get(doc, "templates.0.content").String(); got != "# Bug Fix\n" {
		t.Fatalf("content round-trip failed: %q", got)
	}
}

func TestGetPRTemplatesMissingCatalog(t *testing.T) {
	svc := &fakeCatalogService{err: templates.ErrCatalogMissing}
	res, err := (&GetPRTemplatesHandler{Service: svc}).ToolAdapter(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("failures must stay inside the document: %v", err)
	}
	doc := resultText(t, res)
	if got := gjson.Get(doc, "error").String(); got != "templates_missing" {
		t.Fatalf("expected templates_missing, got %s", doc)
	}
	if gjson.Get(doc, "hint").String() == "" {
		t.Fatalf("expected a hint in %s", doc)
	}
}

func TestSuggestTemplate(t *testing.T) {
	svc := &fakeCatalogService{descriptors: []templates.Descriptor{
		{Name: "bug.md", Content: "# Bug Fix\n"},
		{Name: "feature.md", Content: "# New Feature\n"},
	}}
	res, err := (&SuggestTemplateHandler{Service: svc}).ToolAdapter(context.Background(), callRequest(map[string]any{
		"changes_summary": "fixes a crash on empty input",
		"change_type":     "bug",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := resultText(t, res)
	if got := gjson.Get(doc, "template").String(); got != "bug.md" {
		t.Fatalf("expected bug.md, got %q", got)
	}
	if got := gjson.Get(doc, "content").String(); got != "# Bug Fix\n" {
		t.Fatalf("unexpected content %q", got)
	}
	rationale := gjson.Get(doc, "rationale").String()
	if rationale == "" || !gjson.Get(doc, "rationale").Exists() {
		t.Fatalf("expected rationale in %s", doc)
	}
}

func TestSuggestTemplateUnknownType(t *testing.T) {
	svc := &fakeCatalogService{descriptors: []templates.Descriptor{
		{Name: "bug.md", Content: "# Bug Fix\n"},
		{Name: "feature.md", Content: "# New Feature\n"},
	}}
	res, err := (&SuggestTemplateHandler{Service: svc}).ToolAdapter(context.Background(), callRequest(map[string]any{
		"changes_summary": "misc work",
		"change_type":     "unknown-kind",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := resultText(t, res)
	if got := gjson.Get(doc, "template").String(); got != templates.DefaultTemplate {
		t.Fatalf("unknown type must resolve to default template, got %q", got)
	}
	if gjson.Get(doc, "error").Exists() {
		t.Fatalf("unknown type must never be an error: %s", doc)
	}
}

func TestSuggestTemplateMissingCatalog(t *testing.T) {
	svc := &fakeCatalogService{err: templates.ErrCatalogMissing}
	res, err := (&SuggestTemplateHandler{Service: svc}).ToolAdapter(context.Background(), callRequest(map[string]any{
		"changes_summary": "misc work",
		"change_type":     "bug",
	}))
	if err != nil {
		t.Fatalf("failures must stay inside the document: %v", err)
	}
	doc := resultText(t, res)
	if got := gjson.Get(doc, "error").String(); got != "templates_missing" {
		t.Fatalf("expected templates_missing, got %s", doc)
	}
}
