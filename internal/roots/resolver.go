// Package roots resolves the working directory git commands run in. The
// calling host may advertise candidate workspace roots for the session; when
// it does not, or the lookup fails, the process working directory is used.
package roots

import (
	"context"
	"net/url"
	"os"
	"strings"
)

// Resolver is the host-provided root discovery capability. It may return zero
// candidates; it may also fail. Neither condition is an error for callers.
type Resolver interface {
	Roots(ctx context.Context) ([]string, error)
}

// Static is a fixed candidate list, typically sourced from configuration.
type Static []string

func (s Static) Roots(ctx context.Context) ([]string, error) {
	return []string(s), nil
}

// Func adapts a plain function into a Resolver.
type Func func(ctx context.Context) ([]string, error)

func (f Func) Roots(ctx context.Context) ([]string, error) {
	return f(ctx)
}

// Workdir picks the directory to operate in: the first candidate from the
// resolver when one is available, otherwise the process working directory.
// Resolver absence, failure, and emptiness all take the same silent fallback.
func Workdir(ctx context.Context, r Resolver) string {
	if r != nil {
		if candidates, err := r.Roots(ctx); err == nil && len(candidates) > 0 {
			return normalize(candidates[0])
		}
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}

// normalize converts file:// URIs, the form MCP roots arrive in, to plain
// filesystem paths. Anything else passes through untouched.
func normalize(root string) string {
	if !strings.HasPrefix(root, "file://") {
		return root
	}
	u, err := url.Parse(root)
	if err != nil || u.Path == "" {
		return root
	}
	return u.Path
}
