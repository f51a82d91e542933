package main

import (
	"github.com/spf13/cobra"

	"funcov/cmd/funcov/ui"
	"funcov/internal/report"
	"funcov/internal/session"
)

// diffCmd compares two coverage files and classifies movement.
var diffCmd = &cobra.Command{
	Use:   "diff <baseline> <current>",
	Short: "Compare two coverage runs",
	Long: `Compares a current coverage file against a baseline and reports
per-covergroup regressions and improvements along with the overall movement.`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func runDiff(cmd *cobra.Command, args []string) error {
	baseline := session.New(logger)
	if err := baseline.Load(args[0]); err != nil {
		return err
	}
	current := session.New(logger)
	if err := current.Load(args[1]); err != nil {
		return err
	}

	result := report.Compare(baseline.Data(), current.Data())
	cmd.Println(ui.RenderDiff(result, colorEnabled()))
	return nil
}
