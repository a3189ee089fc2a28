package main

import (
	"fmt"

	"github.com/nikbrunner/tagsel/internal/catalog"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the resolved catalog, one option per line",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		cat, err := catalog.LoadOrDefault(s.config.Catalog)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, option := range cat.Options() {
			fmt.Fprintln(out, option)
		}
		return nil
	},
}
