package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mernst/require-javadoc/internal/checker"
	"github.com/mernst/require-javadoc/internal/discovery"
	"github.com/mernst/require-javadoc/internal/logger"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List what a check run would cover",
	Long: `List displays what a check run would cover without checking anything.

Available subcommands:
  files       List the Java files a check of the given paths would visit`,
}

var listFilesCmd = &cobra.Command{
	Use:   "files [path...]",
	Short: "List the Java files a check would visit",
	Long: `List every Java file that a check of the given paths (or the current
directory) would visit, after the exclude and vendoring filters have been
applied. Useful for debugging an --exclude pattern.`,
	Args: cobra.ArbitraryArgs,
	RunE: runListFiles,
}

func runListFiles(cmd *cobra.Command, args []string) error {
	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}

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

	for _, f := range files {
		fmt.Println(f)
	}
	for _, f := range missingPackageInfo {
		fmt.Printf("missing: %s\n", f)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.AddCommand(listFilesCmd)
}
