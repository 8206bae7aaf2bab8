package checker

import (
	"fmt"
	"regexp"

	"github.com/mernst/require-javadoc/internal/config"
	"github.com/mernst/require-javadoc/internal/logger"
)

// Filters decides which paths get checked at all and which declarations
// need no documentation. Both patterns match unanchored: they may match
// anywhere in the path or name.
type Filters struct {
	Opts        *config.Options
	exclude     *regexp.Regexp
	dontRequire *regexp.Regexp
	log         logger.Logger
}

// NewFilters compiles the configured patterns. A pattern that does not
// compile is a user error.
func NewFilters(opts *config.Options, log logger.Logger) (*Filters, error) {
	f := &Filters{Opts: opts, log: log}
	var err error
	if opts.Exclude != "" {
		f.exclude, err = regexp.Compile(opts.Exclude)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", opts.Exclude, err)
		}
	}
	if opts.DontRequire != "" {
		f.dontRequire, err = regexp.Compile(opts.DontRequire)
		if err != nil {
			return nil, fmt.Errorf("invalid dont_require pattern %q: %w", opts.DontRequire, err)
		}
	}
	return f, nil
}

// ExcludePath reports whether a file or directory path is excluded from
// checking entirely.
func (f *Filters) ExcludePath(path string) bool {
	result := f.exclude != nil && f.exclude.MatchString(path)
	f.log.Logf("exclude(%s) => %t\n", path, result)
	return result
}

// SkipName reports whether a declaration name (or dotted package name)
// needs no documentation.
func (f *Filters) SkipName(name string) bool {
	result := f.dontRequire != nil && f.dontRequire.MatchString(name)
	f.log.Logf("dontRequire(%s) => %t\n", name, result)
	return result
}
