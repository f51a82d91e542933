package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"funcov/internal/model"
	"funcov/internal/store"
)

// executeCommand runs the root command with args and captures its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// writeCoverage writes a coverage file with one covergroup, one coverpoint
// and the given bin name -> hits mapping.
func writeCoverage(t *testing.T, path string, key string, hits map[string]int) {
	t.Helper()
	snap := store.NewSnapshot()
	snap.TotalRuns = 1
	bins := make(map[string]*store.BinData, len(hits))
	for name, h := range hits {
		v := model.IntValue(0)
		bins[name] = &store.BinData{
			Name:    name,
			BinType: string(model.BinDiscrete),
			Value:   &v,
			Hits:    h,
		}
	}
	snap.Covergroups[key] = &store.CovergroupData{
		Name:      key,
		CreatedAt: store.Now(),
		Coverpoints: map[string]*store.CoverpointData{
			"cp": {
				Name:        "cp",
				Bins:        store.BinContainer{Bins: bins},
				OutOfBounds: string(model.OutOfBoundsIgnore),
			},
		},
	}
	require.NoError(t, store.NewStore(zap.NewNop()).Save(snap, path))
}

func TestReportCommandMissingFile(t *testing.T) {
	_, err := executeCommand(t, "report", filepath.Join(t.TempDir(), "absent.json"), "--no-color")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestReportCommandText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coverage.json")
	writeCoverage(t, path, "cli.cg", map[string]int{"hit": 3, "missed": 0})

	out, err := executeCommand(t, "report", path, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Coverage Report")
	assert.Contains(t, out, "Covergroup: cli.cg")
	assert.Contains(t, out, "Overall Coverage: 50.00% (1/2 bins)")
	assert.Contains(t, out, "- missed")
}

func TestReportCommandJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coverage.json")
	writeCoverage(t, path, "cli.cg", map[string]int{"hit": 1})

	out, err := executeCommand(t, "report", path, "--format", "json", "--no-color")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, float64(100), doc["overall_coverage"])
	assert.Equal(t, float64(1), doc["total_bins"])
	reportFormat = "" // reset shared flag state
}

func TestReportCommandUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coverage.json")
	writeCoverage(t, path, "cli.cg", map[string]int{"hit": 1})

	_, err := executeCommand(t, "report", path, "--format", "xml", "--no-color")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown report format")
	reportFormat = ""
}

func TestDiffCommand(t *testing.T) {
	dir := t.TempDir()
	baseline := filepath.Join(dir, "baseline.json")
	current := filepath.Join(dir, "current.json")
	writeCoverage(t, baseline, "cg", map[string]int{"a": 1, "b": 1})
	writeCoverage(t, current, "cg", map[string]int{"a": 1, "b": 0})

	out, err := executeCommand(t, "diff", baseline, current, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Coverage Comparison")
	assert.Contains(t, out, "Baseline: 100.00%")
	assert.Contains(t, out, "Current:  50.00%")
	assert.Contains(t, out, "Diff:     -50.00%")
	assert.Contains(t, out, "Regressions:")
	assert.Contains(t, out, "- cg: 100.00% -> 50.00% (-50.00%)")
}

func TestDiffCommandMissingBaseline(t *testing.T) {
	dir := t.TempDir()
	current := filepath.Join(dir, "current.json")
	writeCoverage(t, current, "cg", map[string]int{"a": 1})

	_, err := executeCommand(t, "diff", filepath.Join(dir, "absent.json"), current, "--no-color")
	require.Error(t, err)
}

func TestMergeCommand(t *testing.T) {
	dir := t.TempDir()
	fileA := filepath.Join(dir, "a.json")
	fileB := filepath.Join(dir, "b.json")
	output := filepath.Join(dir, "merged.json")
	writeCoverage(t, fileA, "cg", map[string]int{"bin": 2})
	writeCoverage(t, fileB, "cg", map[string]int{"bin": 3})

	out, err := executeCommand(t, "merge", fileA, fileB, "-o", output, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Merged 2 files")

	merged, err := store.NewStore(zap.NewNop()).Load(output)
	require.NoError(t, err)
	assert.Equal(t, 2, merged.TotalRuns)
	assert.Equal(t, 5, merged.Covergroups["cg"].Coverpoints["cp"].Bins.Bins["bin"].Hits)

	_ = os.Remove(output)
}

func TestUnknownSubcommand(t *testing.T) {
	_, err := executeCommand(t, "frobnicate")
	require.Error(t, err)
}
