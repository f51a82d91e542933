package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"funcov/cmd/funcov/ui"
	"funcov/internal/report"
	"funcov/internal/session"
)

var reportFormat string

// reportCmd renders a coverage report from a coverage file.
var reportCmd = &cobra.Command{
	Use:   "report [file]",
	Short: "Generate a coverage report",
	Long: `Loads a coverage file and prints per-covergroup and overall coverage.

When the file argument is omitted, the configured default coverage file is
used. The JSON format is stable and intended for CI consumption.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "", "output format: text or json")
}

func runReport(cmd *cobra.Command, args []string) error {
	path := cfg.Storage.File
	if len(args) > 0 {
		path = args[0]
	}

	sess := session.New(logger)
	if err := sess.Load(path); err != nil {
		return err
	}
	r := report.Generate(sess.Data())

	format := reportFormat
	if format == "" {
		format = cfg.Report.Format
	}
	switch format {
	case "json":
		out, err := report.RenderJSON(r)
		if err != nil {
			return err
		}
		cmd.Println(out)
	case "text":
		cmd.Println(ui.RenderReport(r, colorEnabled()))
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
	return nil
}
