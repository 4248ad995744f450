package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/HendryAvila/scout/internal/config"
	"github.com/HendryAvila/scout/internal/corpus"
	"github.com/HendryAvila/scout/internal/validate"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the context corpus",
	Long: `Check the context corpus for broken cross-references.

Runs six independent checks: constitution document references,
constitution agent references, document cross-references, document
source references, orphaned documents, and freshness markers.

Exit codes:
  0 - no error-severity issues (warnings alone do not fail the run)
  1 - at least one error-severity issue found`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, _ := cmd.Flags().GetString("root")
		noColor, _ := cmd.Flags().GetBool("no-color")

		if noColor {
			color.NoColor = true
		}

		if root == "" {
			var err error
			root, err = config.FindRoot()
			if err != nil {
				return fmt.Errorf("discovering project root: %w", err)
			}
		}

		cfg, err := config.Load(root)
		if err != nil {
			return err
		}

		c, loadErrs, err := corpus.Load(root, cfg)
		if err != nil {
			return err
		}

		report := validate.Run(c)
		validate.RenderLoadErrors(os.Stdout, loadErrs)
		report.Render(os.Stdout)

		os.Exit(report.ExitCode())
		return nil
	},
}

func init() {
	checkCmd.Flags().String("root", "", "Project root (default: discovered from cwd)")
	checkCmd.Flags().Bool("no-color", false, "Disable colored output")
	rootCmd.AddCommand(checkCmd)
}
