package main

import (
	"github.com/spf13/cobra"

	"funcov/internal/store"
)

var mergeOutput string

// mergeCmd folds several coverage files into one cumulative snapshot.
var mergeCmd = &cobra.Command{
	Use:   "merge <file>...",
	Short: "Merge coverage files cumulatively",
	Long: `Merges two or more coverage files into a single snapshot. Hit counts
are summed bin by bin and run counts add up; the first file's version wins.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "", "output file (required)")
	_ = mergeCmd.MarkFlagRequired("output")
}

func runMerge(cmd *cobra.Command, args []string) error {
	st := store.NewStore(logger)

	var merged *store.Snapshot
	for _, path := range args {
		snap, err := st.Load(path)
		if err != nil {
			return err
		}
		if merged == nil {
			merged = snap
		} else {
			merged = store.Merge(merged, snap)
		}
	}

	if err := st.Save(merged, mergeOutput); err != nil {
		return err
	}
	cmd.Printf("Merged %d files into %s (%d runs)\n", len(args), mergeOutput, merged.TotalRuns)
	return nil
}
