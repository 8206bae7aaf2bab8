package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/mernst/require-javadoc/internal/checker"
	"github.com/mernst/require-javadoc/internal/logger"
)

// UserInputError is a fatal problem with the path arguments. Its message
// prints verbatim and the run aborts with exit code 2 before any file is
// checked.
type UserInputError struct {
	Msg string
}

func (e *UserInputError) Error() string { return e.Msg }

// Discoverer collects the Java files to check.
type Discoverer struct {
	filters *checker.Filters
	log     logger.Logger
}

// New returns a discoverer honoring the given filters.
func New(filters *checker.Filters, log logger.Logger) *Discoverer {
	return &Discoverer{filters: filters, log: log}
}

// Discover resolves path arguments into the ordered list of files to
// check, plus the package-info.java files that ought to exist but do not.
// No arguments means the working directory. Directory arguments are walked
// recursively for *.java files; explicit file arguments are taken as
// given, whatever their extension.
func (d *Discoverer) Discover(args []string) (files []string, missingPackageInfo []string, err error) {
	if len(args) == 0 {
		wd, err := os.Getwd()
		if err != nil {
			return nil, nil, err
		}
		args = []string{wd}
	}

	for _, arg := range args {
		if d.filters.ExcludePath(arg) {
			continue
		}
		info, err := os.Stat(arg)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, nil, &UserInputError{Msg: fmt.Sprintf("File not found: %s", arg)}
			}
			return nil, nil, &UserInputError{Msg: fmt.Sprintf("Problem while reading %s: %s", arg, err)}
		}
		if info.IsDir() {
			if err := d.walkDir(arg, &files); err != nil {
				return nil, nil, err
			}
		} else {
			files = append(files, arg)
		}
	}

	sort.Strings(files)

	if d.filters.Opts.RequirePackageInfo {
		missingPackageInfo = missingPackageInfoFiles(files)
	}
	return files, missingPackageInfo, nil
}

func (d *Discoverer) walkDir(root string, files *[]string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return &UserInputError{Msg: fmt.Sprintf("Problem visiting %s: %s", path, err)}
		}
		if info.IsDir() {
			if d.skipDir(path) {
				return filepath.SkipDir
			}
			return nil
		}
		if !info.Mode().IsRegular() || !strings.HasSuffix(path, ".java") {
			return nil
		}
		if d.filters.ExcludePath(path) {
			return nil
		}
		if !d.filters.Opts.IncludeVendored && enry.IsVendor(path) {
			d.log.Logf("skipping vendored file %s\n", path)
			return nil
		}
		*files = append(*files, path)
		return nil
	})
}

// skipDir prunes directories that are never worth descending into.
func (d *Discoverer) skipDir(path string) bool {
	if filepath.Base(path) == ".git" {
		return true
	}
	if d.filters.ExcludePath(path) {
		return true
	}
	// The vendor patterns are directory oriented; they need the trailing
	// separator to match a bare directory path.
	if !d.filters.Opts.IncludeVendored && enry.IsVendor(path+string(filepath.Separator)) {
		d.log.Logf("skipping vendored directory %s\n", path)
		return true
	}
	return false
}

// missingPackageInfoFiles returns, in first-seen order over the sorted
// file list, every package-info.java that should accompany a checked file
// but is not itself among the checked files.
func missingPackageInfoFiles(files []string) []string {
	have := make(map[string]bool, len(files))
	for _, f := range files {
		have[f] = true
	}
	var missing []string
	seen := make(map[string]bool)
	for _, f := range files {
		packageInfo := filepath.Join(filepath.Dir(f), "package-info.java")
		if !have[packageInfo] && !seen[packageInfo] {
			seen[packageInfo] = true
			missing = append(missing, packageInfo)
		}
	}
	return missing
}
