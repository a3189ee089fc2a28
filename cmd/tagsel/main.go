package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// Flags shared by the root and catalog commands.
var (
	catalogPath string
	configPath  string
	formatName  string
	matchName   string
	logPath     string
	title       string
)

var rootCmd = &cobra.Command{
	Use:   "tagsel",
	Short: "Pick tags from a catalog in the terminal",
	Long: `tagsel opens a tag-style multi-select over a catalog of options.
Type to filter, Enter to add, ctrl+a then Enter to add every match,
Backspace on an empty input to remove the last tag, ctrl+s to submit.

The submitted tags are written to stdout. Cancelling prints nothing.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSelect,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tagsel %s\n", version)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&catalogPath, "catalog", "", "catalog file (.json, .yaml, .html or one option per line)")
	flags.StringVar(&configPath, "config", "", "config file (default ~/.config/tagsel/config.json)")

	rootCmd.Flags().StringVarP(&formatName, "format", "f", "", "output format: text, json or html")
	rootCmd.Flags().StringVarP(&matchName, "match", "m", "", "match mode: substring or fuzzy")
	rootCmd.Flags().StringVar(&logPath, "log", "", "write debug logs to this file")
	rootCmd.Flags().StringVar(&title, "title", "", "title shown above the field")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(catalogCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
