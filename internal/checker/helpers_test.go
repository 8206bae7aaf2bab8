package checker

import (
	"context"
	"testing"

	"github.com/mernst/require-javadoc/internal/config"
	"github.com/mernst/require-javadoc/internal/domain"
	"github.com/mernst/require-javadoc/internal/logger"
	"github.com/mernst/require-javadoc/internal/syntax"
)

// parseJava parses source that must be valid Java.
func parseJava(t *testing.T, src string) *syntax.Node {
	t.Helper()
	tree, err := syntax.Parse(context.Background(), []byte(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if pos := tree.FirstError(); pos != nil {
		t.Fatalf("Test source has a syntax error at %d:%d:\n%s", pos.Line, pos.Column, src)
	}
	return tree.Root()
}

func findKind(n *syntax.Node, kind string) *syntax.Node {
	if n.Kind() == kind {
		return n
	}
	for _, c := range n.Children() {
		if found := findKind(c, kind); found != nil {
			return found
		}
	}
	return nil
}

// methodNamed returns the classified declaration of the named method.
func methodNamed(t *testing.T, root *syntax.Node, name string) *Declaration {
	t.Helper()
	var found *Declaration
	var search func(n *syntax.Node)
	search = func(n *syntax.Node) {
		if found != nil {
			return
		}
		if n.Kind() == "method_declaration" {
			if d := Classify(n); d != nil && d.Name == name {
				found = d
				return
			}
		}
		for _, c := range n.Children() {
			search(c)
		}
	}
	search(root)
	if found == nil {
		t.Fatalf("No method named %s in test source", name)
	}
	return found
}

func newTestFilters(t *testing.T, opts *config.Options) *Filters {
	t.Helper()
	if opts == nil {
		opts = config.DefaultOptions()
	}
	filters, err := NewFilters(opts, &logger.NoopLogger{})
	if err != nil {
		t.Fatalf("NewFilters failed: %v", err)
	}
	return filters
}

// runWalker checks one source file held in memory and returns its findings.
func runWalker(t *testing.T, src, path string, opts *config.Options) []domain.Finding {
	t.Helper()
	root := parseJava(t, src)
	return NewWalker(newTestFilters(t, opts), &logger.NoopLogger{}, path).Walk(root)
}

func findingNames(findings []domain.Finding) []string {
	names := make([]string, len(findings))
	for i, f := range findings {
		names[i] = f.Name
	}
	return names
}

func sameNames(got []string, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
