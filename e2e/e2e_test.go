package e2e

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
)

const widgetSource = `package com.example;

/** A widget. */
public class Widget {
    /** Count. */
    private int count;

    public int getCount() { return count; }
}
`

const documentedSource = `package com.example;

/** A gadget. */
public class Gadget {
    /** Turns. */
    public void turn() {}
}
`

// TestCheckReportsMissingDocumentation runs the full pipeline against a
// small project and checks the diagnostic contract line by line.
func TestCheckReportsMissingDocumentation(t *testing.T) {
	t.Parallel()

	_, binaryPath := buildCLIBinary(t)
	projectDir := writeProject(t, map[string]string{
		filepath.Join("src", "com", "example", "Widget.java"): widgetSource,
		filepath.Join("src", "com", "example", "Gadget.java"): documentedSource,
	})

	out, exitCode := runCLI(t, binaryPath, projectDir, "src")
	if exitCode != 1 {
		t.Fatalf("Expected exit code 1, got %d\n%s", exitCode, out)
	}

	wantLine := filepath.Join("src", "com", "example", "Widget.java") +
		":8:5: missing documentation for getCount"
	if strings.TrimSpace(out) != wantLine {
		t.Errorf("Expected output %q, got %q", wantLine, out)
	}
}

func TestCheckCleanProjectExitsZero(t *testing.T) {
	t.Parallel()

	_, binaryPath := buildCLIBinary(t)
	projectDir := writeProject(t, map[string]string{
		filepath.Join("src", "Gadget.java"): documentedSource,
	})

	out, exitCode := runCLI(t, binaryPath, projectDir, "src")
	if exitCode != 0 {
		t.Fatalf("Expected exit code 0, got %d\n%s", exitCode, out)
	}
	if out != "" {
		t.Errorf("Expected no output for a clean project, got %q", out)
	}
}

func TestCheckFlagsChangeTheOutcome(t *testing.T) {
	t.Parallel()

	_, binaryPath := buildCLIBinary(t)
	projectDir := writeProject(t, map[string]string{
		filepath.Join("src", "Widget.java"): widgetSource,
	})

	testCases := []struct {
		description string
		args        []string
		exitCode    int
	}{
		{"defaults report the getter", []string{"src"}, 1},
		{"trivial getters can be waived", []string{"src", "--dont_require_trivial_properties"}, 0},
		{"methods can be waived entirely", []string{"src", "--dont_require_method"}, 0},
		{"name filter waives getCount", []string{"src", "--dont_require", "^getCount$"}, 0},
		{"exclude skips the whole file", []string{"src", "--exclude", "Widget"}, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			out, exitCode := runCLI(t, binaryPath, projectDir, tc.args...)
			if exitCode != tc.exitCode {
				t.Errorf("Expected exit code %d, got %d\n%s", tc.exitCode, exitCode, out)
			}
		})
	}
}

func TestCheckBrokenFile(t *testing.T) {
	t.Parallel()

	_, binaryPath := buildCLIBinary(t)
	projectDir := writeProject(t, map[string]string{
		filepath.Join("src", "Broken.java"): "public class Broken {\n",
		filepath.Join("src", "Gadget.java"): documentedSource,
	})

	out, exitCode := runCLI(t, binaryPath, projectDir, "src")
	if exitCode != 2 {
		t.Fatalf("Expected exit code 2, got %d\n%s", exitCode, out)
	}
	wantPrefix := "Problem while parsing " + filepath.Join("src", "Broken.java") + ": syntax error at line"
	if !strings.HasPrefix(strings.TrimSpace(out), wantPrefix) {
		t.Errorf("Expected output starting with %q, got %q", wantPrefix, out)
	}
}

func TestCheckMissingPathArgument(t *testing.T) {
	t.Parallel()

	_, binaryPath := buildCLIBinary(t)
	projectDir := t.TempDir()

	out, exitCode := runCLI(t, binaryPath, projectDir, "NoSuch.java")
	if exitCode != 2 {
		t.Fatalf("Expected exit code 2, got %d\n%s", exitCode, out)
	}
	if strings.TrimSpace(out) != "File not found: NoSuch.java" {
		t.Errorf("Unexpected output: %q", out)
	}
}

func TestCheckRequirePackageInfo(t *testing.T) {
	t.Parallel()

	_, binaryPath := buildCLIBinary(t)
	projectDir := writeProject(t, map[string]string{
		filepath.Join("src", "Gadget.java"): documentedSource,
	})

	out, exitCode := runCLI(t, binaryPath, projectDir, "src", "--require_package_info")
	if exitCode != 1 {
		t.Fatalf("Expected exit code 1, got %d\n%s", exitCode, out)
	}
	want := "missing documentation for no file " + filepath.Join("src", "package-info.java")
	if strings.TrimSpace(out) != want {
		t.Errorf("Expected output %q, got %q", want, out)
	}
}

func TestCheckRelativePaths(t *testing.T) {
	t.Parallel()

	_, binaryPath := buildCLIBinary(t)
	projectDir := writeProject(t, map[string]string{
		filepath.Join("src", "Widget.java"): widgetSource,
	})

	// Without arguments the checker walks the absolute working directory;
	// --relative maps the diagnostics back to it.
	out, exitCode := runCLI(t, binaryPath, projectDir, "--relative")
	if exitCode != 1 {
		t.Fatalf("Expected exit code 1, got %d\n%s", exitCode, out)
	}
	want := filepath.Join("src", "Widget.java") + ":8:5: missing documentation for getCount"
	if strings.TrimSpace(out) != want {
		t.Errorf("Expected output %q, got %q", want, out)
	}
}

func TestCheckJSONOutput(t *testing.T) {
	t.Parallel()

	_, binaryPath := buildCLIBinary(t)
	projectDir := writeProject(t, map[string]string{
		filepath.Join("src", "Widget.java"): widgetSource,
	})

	out, exitCode := runCLI(t, binaryPath, projectDir, "src", "--output", "json")
	if exitCode != 1 {
		t.Fatalf("Expected exit code 1, got %d\n%s", exitCode, out)
	}

	var res struct {
		Findings []struct {
			File   string `json:"file"`
			Line   int    `json:"line"`
			Column int    `json:"column"`
			Name   string `json:"name"`
		} `json:"findings"`
	}
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("Expected valid JSON, got %v\n%s", err, out)
	}
	if len(res.Findings) != 1 {
		t.Fatalf("Expected one finding, got %d", len(res.Findings))
	}
	f := res.Findings[0]
	if f.Name != "getCount" || f.Line != 8 || f.Column != 5 {
		t.Errorf("Unexpected finding: %+v", f)
	}
	if f.File != filepath.Join("src", "Widget.java") {
		t.Errorf("Unexpected finding file: %s", f.File)
	}
}

func TestConfigFileSetsDefaults(t *testing.T) {
	t.Parallel()

	_, binaryPath := buildCLIBinary(t)
	projectDir := writeProject(t, map[string]string{
		filepath.Join("src", "Widget.java"): widgetSource,
		".require-javadoc.yaml":             "dont_require: \"^getCount$\"\n",
	})

	out, exitCode := runCLI(t, binaryPath, projectDir, "src")
	if exitCode != 0 {
		t.Fatalf("Expected the config file to waive the finding, got exit %d\n%s", exitCode, out)
	}

	// A flag on the command line beats the file.
	out, exitCode = runCLI(t, binaryPath, projectDir, "src", "--dont_require", "^nothing$")
	if exitCode != 1 {
		t.Fatalf("Expected the flag to override the file, got exit %d\n%s", exitCode, out)
	}
}

func TestListFiles(t *testing.T) {
	t.Parallel()

	_, binaryPath := buildCLIBinary(t)
	projectDir := writeProject(t, map[string]string{
		filepath.Join("src", "Widget.java"): widgetSource,
		filepath.Join("src", "notes.md"):    "notes\n",
	})

	out, exitCode := runCLI(t, binaryPath, projectDir, "list", "files", "src")
	if exitCode != 0 {
		t.Fatalf("Expected exit code 0, got %d\n%s", exitCode, out)
	}
	if strings.TrimSpace(out) != filepath.Join("src", "Widget.java") {
		t.Errorf("Unexpected listing: %q", out)
	}
}
