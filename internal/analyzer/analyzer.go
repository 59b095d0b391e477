// Package analyzer collects pending changes in a working tree relative to a
// base branch and produces a size-bounded textual diff. All comparisons use
// the merge-base-relative three-dot range base...HEAD: changes reachable from
// HEAD but not from the common ancestor with the base branch.
package analyzer

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/DarkGenius/pr-agent/internal/gitcli"
	"github.com/DarkGenius/pr-agent/internal/logging"
)

// ChangeRecord is one changed file. Status is git's single-letter code
// (A/M/D/R/C/...); for rename and copy entries the path is the destination.
type ChangeRecord struct {
	Path   string `json:"path"`
	Status string `json:"status"`
}

// ChangeSummary aggregates the shortstat counters. Each field defaults to 0
// when its clause is absent from the shortstat line.
type ChangeSummary struct {
	Files      int `json:"files"`
	Insertions int `json:"insertions"`
	Deletions  int `json:"deletions"`
}

type Analyzer struct {
	runner gitcli.Runner
	log    logging.Logger
}

func New(runner gitcli.Runner, log logging.Logger) *Analyzer {
	return &Analyzer{runner: runner, log: log}
}

// Verify checks that git is installed and dir is inside a working tree.
func (a *Analyzer) Verify(ctx context.Context, dir string) error {
	if err := a.runner.EnsureInstalled(ctx); err != nil {
		return err
	}
	return a.runner.EnsureWorkTree(ctx, dir)
}

// Collect lists changed files with status codes and parses the condensed
// statistics line for the base...HEAD range, optionally scoped to pathspec.
func (a *Analyzer) Collect(ctx context.Context, dir, baseBranch, pathspec string) ([]ChangeRecord, ChangeSummary, error) {
	rangeSpec := rangeFor(baseBranch)

	nameStatus, err := a.runner.Git(ctx, dir, scoped([]string{"diff", "--name-status", rangeSpec}, pathspec)...)
	if err != nil {
		return nil, ChangeSummary{}, err
	}
	changed := parseNameStatus(nameStatus)

	shortStat, err := a.runner.Git(ctx, dir, scoped([]string{"diff", "--shortstat", rangeSpec}, pathspec)...)
	if err != nil {
		return nil, ChangeSummary{}, err
	}
	summary := parseShortStat(shortStat)

	a.log.Debug("collected changes", "base", baseBranch, "files", len(changed))
	return changed, summary, nil
}

// Diff fetches the full textual diff for the range and bounds it to maxLines.
// When the raw diff strictly exceeds the cap, the first maxLines lines are
// kept and a single marker line is appended; truncated reports whether the
// cap was applied.
func (a *Analyzer) Diff(ctx context.Context, dir, baseBranch, pathspec string, maxLines int) (string, bool, error) {
	out, err := a.runner.Git(ctx, dir, scoped([]string{"diff", rangeFor(baseBranch)}, pathspec)...)
	if err != nil {
		return "", false, err
	}
	text, truncated := boundDiff(out, maxLines)
	return text, truncated, nil
}

func rangeFor(baseBranch string) string {
	return baseBranch + "...HEAD"
}

// scoped appends the pathspec behind a "--" separator so it can never be
// mistaken for a ref.
func scoped(args []string, pathspec string) []string {
	if pathspec == "" {
		return args
	}
	return append(args, "--", pathspec)
}

// parseNameStatus parses `git diff --name-status` output. Fields are
// tab-separated; rename/copy lines carry extra path columns and the last one
// is the destination. Output order is preserved.
func parseNameStatus(out string) []ChangeRecord {
	var records []ChangeRecord
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		records = append(records, ChangeRecord{
			Path:   fields[len(fields)-1],
			Status: fields[0],
		})
	}
	return records
}

// Tolerant three-clause grammar for the shortstat line. Each clause is
// independently optional and singular/plural-insensitive.
var (
	reFilesChanged = regexp.MustCompile(`(\d+)\s+files?\s+changed`)
	reInsertions   = regexp.MustCompile(`(\d+)\s+insertions?\(\+\)`)
	reDeletions    = regexp.MustCompile(`(\d+)\s+deletions?\(-\)`)
)

func parseShortStat(line string) ChangeSummary {
	var s ChangeSummary
	s.Files = extractCount(reFilesChanged, line)
	s.Insertions = extractCount(reInsertions, line)
	s.Deletions = extractCount(reDeletions, line)
	return s
}

func extractCount(re *regexp.Regexp, line string) int {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

func boundDiff(raw string, maxLines int) (string, bool) {
	lines := strings.Split(raw, "\n")
	// Split yields a trailing empty element for newline-terminated output;
	// it is not a diff line.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	if len(lines) <= maxLines {
		return strings.Join(lines, "\n"), false
	}
	lines = lines[:maxLines]
	lines = append(lines, fmt.Sprintf("--- Diff truncated at %d lines ---", maxLines))
	return strings.Join(lines, "\n"), true
}
