package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mernst/require-javadoc/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
	Long: `Config manages the ` + config.FileName + ` file that holds defaults for
the checking flags, so a project does not have to repeat them on every run.

Available subcommands:
  init        Write a starter config file with the defaults
  show        Show the effective options after file and flags merge`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		path = config.Path(path)
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s", path)
		}
		if err := config.Save(config.DefaultOptions(), path); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective options",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := buildOptions(cmd)
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(opts)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
