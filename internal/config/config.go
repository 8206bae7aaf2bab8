package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory when no
// explicit path is given.
const FileName = ".require-javadoc.yaml"

// Options holds every knob of the checker. The zero value requires
// documentation everywhere, checks every discovered file, and prints
// paths exactly as discovered.
type Options struct {
	// Regex of file and directory paths to skip entirely.
	Exclude string `yaml:"exclude"`

	// Regex of declaration names (and package names) that need no
	// documentation.
	DontRequire string `yaml:"dont_require"`

	// Skip declarations with private access.
	DontRequirePrivate bool `yaml:"dont_require_private"`

	// Skip constructors that take no parameters.
	DontRequireNoargConstructor bool `yaml:"dont_require_noarg_constructor"`

	// Skip trivial getters and setters.
	DontRequireTrivialProperties bool `yaml:"dont_require_trivial_properties"`

	// Per-kind toggles.
	DontRequireType   bool `yaml:"dont_require_type"`
	DontRequireField  bool `yaml:"dont_require_field"`
	DontRequireMethod bool `yaml:"dont_require_method"`

	// Also require a package-info.java in every directory that contains a
	// checked file.
	RequirePackageInfo bool `yaml:"require_package_info"`

	// Print absolute diagnostic paths relative to the working directory.
	Relative bool `yaml:"relative"`

	// Trace every decision to standard output.
	Verbose bool `yaml:"verbose"`

	// Re-include files the discovery step skips by default.
	IncludeVendored  bool `yaml:"include_vendored"`
	IncludeGenerated bool `yaml:"include_generated"`
}

// DefaultOptions returns the options used when no config file and no flags
// are given.
func DefaultOptions() *Options {
	return &Options{}
}

// Load reads options from a YAML file. An empty path triggers discovery in
// the working directory and then the home directory; a missing file is not
// an error and yields the defaults.
func Load(path string) (*Options, error) {
	opts := DefaultOptions()

	if path == "" {
		path = findConfigFile()
	}
	if path == "" {
		return opts, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return opts, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return opts, nil
}

// Save writes options to a YAML file.
func Save(opts *Options, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(opts)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Path returns the config file path to use for writing: the explicit path
// when given, else the discovered file, else FileName in the working
// directory.
func Path(explicitPath string) string {
	if explicitPath != "" {
		return explicitPath
	}
	if found := findConfigFile(); found != "" {
		return found
	}
	return FileName
}

// findConfigFile looks for config files in common locations.
func findConfigFile() string {
	candidates := []string{
		FileName,
		".require-javadoc.yml",
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		for _, candidate := range candidates {
			home := filepath.Join(homeDir, candidate)
			if _, err := os.Stat(home); err == nil {
				return home
			}
		}
	}

	return ""
}
