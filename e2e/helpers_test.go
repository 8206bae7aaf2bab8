package e2e

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

// buildCLIBinary builds the CLI into a temp dir and returns (repoRoot, binaryPath).
func buildCLIBinary(t *testing.T) (string, string) {
	t.Helper()
	repoRoot := findRepoRoot(t)
	tmpDir := t.TempDir()
	binaryName := "require-javadoc"
	if runtime.GOOS == "windows" {
		binaryName += ".exe"
	}
	binaryPath := filepath.Join(tmpDir, binaryName)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	t.Logf("Building CLI binary: %s", binaryPath)
	cmd := exec.CommandContext(ctx, "go", "build", "-o", binaryPath, ".")
	cmd.Dir = repoRoot
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("build failed: %v\n%s", err, string(out))
	}
	t.Logf("CLI build completed")
	return repoRoot, binaryPath
}

// runCLI executes the built binary in dir and returns its stdout and exit
// code. Stdout is a pipe, so the binary takes its non-interactive path and
// emits exactly the diagnostic contract.
func runCLI(t *testing.T, binary, dir string, args ...string) (string, int) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		var ee *exec.ExitError
		if !errors.As(err, &ee) {
			t.Fatalf("failed to run %s: %v", binary, err)
		}
		exitCode = ee.ExitCode()
	}
	if stderr.Len() > 0 {
		t.Logf("stderr:\n%s", stderr.String())
	}
	return stdout.String(), exitCode
}

// writeProject creates the given files under a temp project directory.
func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	projectDir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(projectDir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create directory for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to create file %s: %v", name, err)
		}
	}
	return projectDir
}
