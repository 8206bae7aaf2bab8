package checker

import (
	"context"
	"fmt"
	"os"

	"github.com/go-enry/go-enry/v2"

	"github.com/mernst/require-javadoc/internal/domain"
	"github.com/mernst/require-javadoc/internal/logger"
	"github.com/mernst/require-javadoc/internal/syntax"
)

// Checker runs the documentation check over a list of files.
type Checker struct {
	filters *Filters
	log     logger.Logger
}

// New returns a checker using the given compiled filters.
func New(filters *Filters, log logger.Logger) *Checker {
	return &Checker{filters: filters, log: log}
}

// Result is everything one run produced, in report order.
type Result struct {
	Findings []domain.Finding     `json:"findings" yaml:"findings"`
	Failures []domain.FileFailure `json:"failures,omitempty" yaml:"failures,omitempty"`
}

// CheckFiles checks every file in order. Files that cannot be read or
// parsed become deferred failures; the remaining files are still checked.
func (c *Checker) CheckFiles(ctx context.Context, paths []string) *Result {
	res := &Result{}
	for _, path := range paths {
		c.log.Logf("Checking %s\n", path)
		findings, failure := c.CheckFile(ctx, path)
		res.Findings = append(res.Findings, findings...)
		if failure != nil {
			res.Failures = append(res.Failures, *failure)
		}
	}
	return res
}

// CheckFile checks one file. A generated file yields neither findings nor
// a failure unless generated files are included.
func (c *Checker) CheckFile(ctx context.Context, path string) ([]domain.Finding, *domain.FileFailure) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.FileFailure{File: path, Op: domain.OpReading, Reason: err.Error()}
	}
	if !c.filters.Opts.IncludeGenerated && enry.IsGenerated(path, src) {
		c.log.Logf("skipping generated file %s\n", path)
		return nil, nil
	}
	tree, err := syntax.Parse(ctx, src)
	if err != nil {
		return nil, &domain.FileFailure{File: path, Op: domain.OpParsing, Reason: err.Error()}
	}
	if pos := tree.FirstError(); pos != nil {
		return nil, &domain.FileFailure{
			File:   path,
			Op:     domain.OpParsing,
			Reason: fmt.Sprintf("syntax error at line %d, column %d", pos.Line, pos.Column),
		}
	}
	return NewWalker(c.filters, c.log, path).Walk(tree.Root()), nil
}
