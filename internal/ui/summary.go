package ui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mernst/require-javadoc/internal/checker"
)

// RenderSummary returns a short human-oriented summary of a completed run.
// It is printed after the diagnostic lines, and only on interactive
// terminals, so piped output stays exactly the machine-readable contract.
func RenderSummary(res *checker.Result, fileCount int, elapsed time.Duration) string {
	var b strings.Builder
	b.WriteString("\n")
	fmt.Fprintf(&b, "📋 Checked %d Java file(s) in %s\n", fileCount, elapsed.Round(time.Millisecond))

	if len(res.Findings) == 0 && len(res.Failures) == 0 {
		b.WriteString("✅ No missing documentation found.\n")
		return b.String()
	}

	if len(res.Findings) > 0 {
		fmt.Fprintf(&b, "⚠️  Missing documentation: %d\n", len(res.Findings))
	}
	if len(res.Failures) > 0 {
		fmt.Fprintf(&b, "✗ Files that could not be checked: %d\n", len(res.Failures))
	}

	// Files with the most findings, worst first, ties by name.
	counts := make(map[string]int)
	for _, f := range res.Findings {
		if f.File != "" {
			counts[f.File]++
		}
	}
	if len(counts) > 1 {
		type fileSummary struct {
			name     string
			findings int
		}
		var summaries []fileSummary
		for name, n := range counts {
			summaries = append(summaries, fileSummary{name: name, findings: n})
		}
		sort.Slice(summaries, func(i, j int) bool {
			if summaries[i].findings == summaries[j].findings {
				return summaries[i].name < summaries[j].name
			}
			return summaries[i].findings > summaries[j].findings
		})
		if len(summaries) > 5 {
			summaries = summaries[:5]
		}
		b.WriteString("📂 Most undocumented:\n")
		for _, s := range summaries {
			fmt.Fprintf(&b, "  • %s: %d\n", s.name, s.findings)
		}
	}
	return b.String()
}
