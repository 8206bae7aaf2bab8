package report

import (
	"path/filepath"
	"testing"

	"github.com/mernst/require-javadoc/internal/checker"
	"github.com/mernst/require-javadoc/internal/domain"
)

func TestRelativize(t *testing.T) {
	dir := string(filepath.Separator) + filepath.Join("work", "project")

	res := &checker.Result{
		Findings: []domain.Finding{
			{File: filepath.Join(dir, "src", "A.java"), Line: 1, Column: 1, Name: "A"},
			{File: filepath.Join("already", "relative", "B.java"), Line: 2, Column: 1, Name: "B"},
			{Name: "no file " + filepath.Join(dir, "src", "package-info.java")},
		},
		Failures: []domain.FileFailure{
			{File: filepath.Join(dir, "Bad.java"), Op: domain.OpParsing, Reason: "x"},
		},
	}

	Relativize(res, dir)

	if got := res.Findings[0].File; got != filepath.Join("src", "A.java") {
		t.Errorf("Expected the absolute path rewritten, got %s", got)
	}
	if got := res.Findings[1].File; got != filepath.Join("already", "relative", "B.java") {
		t.Errorf("Expected the relative path untouched, got %s", got)
	}
	if got := res.Findings[2].Name; got != "no file "+filepath.Join(dir, "src", "package-info.java") {
		t.Errorf("Expected the whole-file name untouched, got %s", got)
	}
	if got := res.Failures[0].File; got != filepath.Join(dir, "Bad.java") {
		t.Errorf("Expected failure paths untouched, got %s", got)
	}
}
