package domain

import "fmt"

// Finding is one missing-documentation diagnostic. File and position are
// empty for whole-file diagnostics such as a missing package-info.java,
// where Name carries the complete subject ("no file <path>").
type Finding struct {
	File   string `json:"file,omitempty" yaml:"file,omitempty"`
	Line   int    `json:"line,omitempty" yaml:"line,omitempty"`
	Column int    `json:"column,omitempty" yaml:"column,omitempty"`
	Name   string `json:"name" yaml:"name"`
}

// String renders the finding the way compilers render diagnostics, so
// editors can jump to it. Whole-file findings have no position to offer
// and render as the bare message.
func (f Finding) String() string {
	if f.File == "" {
		return fmt.Sprintf("missing documentation for %s", f.Name)
	}
	return fmt.Sprintf("%s:%d:%d: missing documentation for %s", f.File, f.Line, f.Column, f.Name)
}

// Failure operations.
const (
	OpReading = "reading"
	OpParsing = "parsing"
)

// FileFailure is a file that could not be checked at all. Failures are
// reported after all findings and force a nonzero exit.
type FileFailure struct {
	File   string `json:"file" yaml:"file"`
	Op     string `json:"op" yaml:"op"`
	Reason string `json:"reason" yaml:"reason"`
}

func (f FileFailure) String() string {
	return fmt.Sprintf("Problem while %s %s: %s", f.Op, f.File, f.Reason)
}
