package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mernst/require-javadoc/internal/checker"
	"github.com/mernst/require-javadoc/internal/config"
	"github.com/mernst/require-javadoc/internal/discovery"
	"github.com/mernst/require-javadoc/internal/domain"
	"github.com/mernst/require-javadoc/internal/logger"
	"github.com/mernst/require-javadoc/internal/report"
	"github.com/mernst/require-javadoc/internal/ui"
)

// Sentinel errors that carry the exit status out of cobra.
var (
	errFindings = errors.New("missing documentation found")
	errFailures = errors.New("some files could not be checked")
)

// rootCmd represents the base command; running it checks the given paths
var rootCmd = &cobra.Command{
	Use:   "require-javadoc [flags] [path...]",
	Short: "Report Java declarations that have no documentation comment",
	Long: `require-javadoc checks that every Java declaration (class, interface,
enum, record, annotation, constructor, method, field, enum constant,
annotation member) carries a documentation comment, and reports the ones
that do not, one per line:

  <path>:<line>:<column>: missing documentation for <name>

Unlike the javadoc tool itself it checks only for presence, never
content, so it runs on partial or uncompilable sources too.

Example usage:
  require-javadoc                        # Check the current directory
  require-javadoc src/main/java          # Check a directory tree
  require-javadoc Foo.java Bar.java      # Check specific files
  require-javadoc --dont_require_private # Skip private declarations
  require-javadoc --output json          # Output results as JSON`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runCheck,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       Version,
}

// Execute runs the root command and maps its outcome to the process exit
// code: 0 when all declarations are documented, 1 when documentation is
// missing, 2 when something prevented checking.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	switch {
	case errors.Is(err, errFindings):
		return 1
	case errors.Is(err, errFailures):
		return 2
	}
	var userErr *discovery.UserInputError
	if errors.As(err, &userErr) {
		fmt.Println(userErr.Msg)
		return 2
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	return 2
}

func init() {
	// Global flags; the names keep the underscore spelling so existing
	// build scripts keep working unchanged.
	flags := rootCmd.PersistentFlags()
	flags.String("exclude", "", "don't check files or directories whose pathname matches this regex")
	flags.String("dont_require", "", "don't check declarations whose name matches this regex")
	flags.Bool("dont_require_private", false, "don't check private declarations")
	flags.Bool("dont_require_noarg_constructor", false, "don't check constructors that take no arguments")
	flags.Bool("dont_require_trivial_properties", false, "don't check trivial getters and setters")
	flags.Bool("dont_require_type", false, "don't check types: classes, interfaces, enums, records, annotations")
	flags.Bool("dont_require_field", false, "don't check fields and enum constants")
	flags.Bool("dont_require_method", false, "don't check methods, constructors, and annotation members")
	flags.Bool("require_package_info", false, "require an accompanying package-info.java file for every package")
	flags.Bool("relative", false, "report relative rather than absolute pathnames")
	flags.Bool("include_vendored", false, "also check vendored and third-party directories")
	flags.Bool("include_generated", false, "also check generated files")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.StringP("output", "o", "text", "output format (text, json, yaml)")
	flags.String("config", "", "path to config file")
}

// buildOptions loads the config file, then lets every flag given on the
// command line override the file value.
func buildOptions(cmd *cobra.Command) (*config.Options, error) {
	flags := cmd.Flags()

	configPath, _ := flags.GetString("config")
	opts, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if flags.Changed("exclude") {
		opts.Exclude, _ = flags.GetString("exclude")
	}
	if flags.Changed("dont_require") {
		opts.DontRequire, _ = flags.GetString("dont_require")
	}
	if flags.Changed("dont_require_private") {
		opts.DontRequirePrivate, _ = flags.GetBool("dont_require_private")
	}
	if flags.Changed("dont_require_noarg_constructor") {
		opts.DontRequireNoargConstructor, _ = flags.GetBool("dont_require_noarg_constructor")
	}
	if flags.Changed("dont_require_trivial_properties") {
		opts.DontRequireTrivialProperties, _ = flags.GetBool("dont_require_trivial_properties")
	}
	if flags.Changed("dont_require_type") {
		opts.DontRequireType, _ = flags.GetBool("dont_require_type")
	}
	if flags.Changed("dont_require_field") {
		opts.DontRequireField, _ = flags.GetBool("dont_require_field")
	}
	if flags.Changed("dont_require_method") {
		opts.DontRequireMethod, _ = flags.GetBool("dont_require_method")
	}
	if flags.Changed("require_package_info") {
		opts.RequirePackageInfo, _ = flags.GetBool("require_package_info")
	}
	if flags.Changed("relative") {
		opts.Relative, _ = flags.GetBool("relative")
	}
	if flags.Changed("include_vendored") {
		opts.IncludeVendored, _ = flags.GetBool("include_vendored")
	}
	if flags.Changed("include_generated") {
		opts.IncludeGenerated, _ = flags.GetBool("include_generated")
	}
	if flags.Changed("verbose") {
		opts.Verbose, _ = flags.GetBool("verbose")
	}
	return opts, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}
	outputFormat, _ := cmd.Flags().GetString("output")

	var log logger.Logger = &logger.NoopLogger{}
	if opts.Verbose {
		log = &logger.StdoutLogger{}
	}

	filters, err := checker.NewFilters(opts, log)
	if err != nil {
		return err
	}

	files, missingPackageInfo, err := discovery.New(filters, log).Discover(args)
	if err != nil {
		return err
	}

	chk := checker.New(filters, log)

	var res *checker.Result
	check := func() error {
		res = chk.CheckFiles(cmd.Context(), files)
		return nil
	}

	start := time.Now()
	interactive := logger.IsInteractive() && !opts.Verbose && outputFormat == "text"
	if interactive {
		if err := ui.RunSpinner(cmd.Context(), "Checking Java documentation...", check); err != nil {
			return err
		}
	} else {
		if err := check(); err != nil {
			return err
		}
	}

	// Whole-file findings come before per-declaration findings.
	if len(missingPackageInfo) > 0 {
		findings := make([]domain.Finding, 0, len(missingPackageInfo)+len(res.Findings))
		for _, f := range missingPackageInfo {
			findings = append(findings, domain.Finding{Name: "no file " + f})
		}
		res.Findings = append(findings, res.Findings...)
	}

	if opts.Relative {
		if wd, err := os.Getwd(); err == nil {
			report.Relativize(res, wd)
		}
	}

	if err := report.Render(res, outputFormat); err != nil {
		return err
	}
	if interactive {
		fmt.Print(ui.RenderSummary(res, len(files), time.Since(start)))
	}

	if len(res.Failures) > 0 {
		return errFailures
	}
	if len(res.Findings) > 0 {
		return errFindings
	}
	return nil
}
