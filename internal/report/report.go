package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mernst/require-javadoc/internal/checker"
)

// Relativize rewrites absolute finding paths relative to dir so diagnostics
// stay short in CI logs. Paths that are already relative, and failure
// messages, are left alone.
func Relativize(res *checker.Result, dir string) {
	for i, f := range res.Findings {
		if f.File == "" || !filepath.IsAbs(f.File) {
			continue
		}
		if rel, err := filepath.Rel(dir, f.File); err == nil {
			res.Findings[i].File = rel
		}
	}
}

// Render writes the result to stdout in the requested format. Findings come
// first, failures after, so the diagnostic stream stays stable for tools
// that diff it.
func Render(res *checker.Result, format string) error {
	switch format {
	case "json":
		return renderJSON(res)
	case "yaml":
		return renderYAML(res)
	default:
		return renderText(res)
	}
}

func renderText(res *checker.Result) error {
	for _, f := range res.Findings {
		fmt.Println(f.String())
	}
	for _, fail := range res.Failures {
		fmt.Println(fail.String())
	}
	return nil
}

func renderJSON(res *checker.Result) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(res)
}

func renderYAML(res *checker.Result) error {
	out, err := yaml.Marshal(res)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}
