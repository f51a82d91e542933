// Package report computes coverage percentages from snapshots and renders
// them for humans and machines.
package report

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"funcov/internal/store"
)

// BinReport is one bin's hit count in the machine report.
type BinReport struct {
	Name string `json:"name"`
	Hits int    `json:"hits"`
}

// CoverpointReport lists a coverpoint's bins in the machine report.
type CoverpointReport struct {
	Name string      `json:"name"`
	Bins []BinReport `json:"bins"`
}

// CovergroupReport is the per-covergroup section of a report.
type CovergroupReport struct {
	Name        string             `json:"name"`
	Coverage    float64            `json:"coverage"`
	TotalBins   int                `json:"total_bins"`
	HitBins     int                `json:"hit_bins"`
	Coverpoints []CoverpointReport `json:"coverpoints"`
}

// Report is a complete coverage report over one snapshot.
type Report struct {
	Version         string             `json:"version"`
	OverallCoverage float64            `json:"overall_coverage"`
	TotalBins       int                `json:"total_bins"`
	HitBins         int                `json:"hit_bins"`
	Covergroups     []CovergroupReport `json:"covergroups"`
	MissedBins      []string           `json:"missed_bins"`
	GeneratedAt     store.Timestamp    `json:"generated_at"`
}

// covergroupCoverage walks one covergroup's bins. A bin counts as hit when
// its count is positive; magnitude does not matter. Coverage is 0.0 for a
// covergroup with no bins.
func covergroupCoverage(cg *store.CovergroupData) (coverage float64, total, hit int, missed []string) {
	if cg == nil {
		return 0, 0, 0, nil
	}
	for _, cpName := range sortedKeys(cg.Coverpoints) {
		cp := cg.Coverpoints[cpName]
		for _, binName := range sortedKeys(cp.Bins.Bins) {
			total++
			if cp.Bins.Bins[binName].Hits > 0 {
				hit++
			} else {
				missed = append(missed, binName)
			}
		}
	}
	if total > 0 {
		coverage = float64(hit) / float64(total) * 100
	}
	return coverage, total, hit, missed
}

// Generate computes the full report for a snapshot. Covergroups, coverpoints
// and bins are emitted in sorted order so output is deterministic.
func Generate(snap *store.Snapshot) *Report {
	r := &Report{
		Version:     snap.Version,
		Covergroups: make([]CovergroupReport, 0, len(snap.Covergroups)),
		MissedBins:  []string{},
		GeneratedAt: store.Now(),
	}
	if r.Version == "" {
		r.Version = store.Version
	}

	for _, cgName := range sortedKeys(snap.Covergroups) {
		cg := snap.Covergroups[cgName]
		coverage, total, hit, missed := covergroupCoverage(cg)

		coverpoints := make([]CoverpointReport, 0, len(cg.Coverpoints))
		for _, cpName := range sortedKeys(cg.Coverpoints) {
			cp := cg.Coverpoints[cpName]
			bins := make([]BinReport, 0, len(cp.Bins.Bins))
			for _, binName := range sortedKeys(cp.Bins.Bins) {
				bins = append(bins, BinReport{Name: binName, Hits: cp.Bins.Bins[binName].Hits})
			}
			coverpoints = append(coverpoints, CoverpointReport{Name: cpName, Bins: bins})
		}

		r.Covergroups = append(r.Covergroups, CovergroupReport{
			Name:        cgName,
			Coverage:    round2(coverage),
			TotalBins:   total,
			HitBins:     hit,
			Coverpoints: coverpoints,
		})
		r.TotalBins += total
		r.HitBins += hit
		r.MissedBins = append(r.MissedBins, missed...)
	}

	// Overall is the ratio over the whole bin population, not an average of
	// per-covergroup percentages.
	if r.TotalBins > 0 {
		r.OverallCoverage = round2(float64(r.HitBins) / float64(r.TotalBins) * 100)
	}
	return r
}

// RenderText renders the human-readable report.
func RenderText(r *Report) string {
	rule := strings.Repeat("=", 80)
	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString("Coverage Report\n")
	b.WriteString(rule + "\n")

	for _, cg := range r.Covergroups {
		fmt.Fprintf(&b, "\nCovergroup: %s\n", cg.Name)
		fmt.Fprintf(&b, "  Coverage: %.2f%% (%d/%d bins)\n", cg.Coverage, cg.HitBins, cg.TotalBins)
	}

	b.WriteString("\n" + rule + "\n")
	fmt.Fprintf(&b, "Overall Coverage: %.2f%% (%d/%d bins)\n", r.OverallCoverage, r.HitBins, r.TotalBins)
	b.WriteString(rule)

	if len(r.MissedBins) > 0 {
		fmt.Fprintf(&b, "\n\nMissed Bins (%d):\n", len(r.MissedBins))
		for _, name := range r.MissedBins {
			fmt.Fprintf(&b, "  - %s\n", name)
		}
		return strings.TrimRight(b.String(), "\n")
	}
	return b.String()
}

// RenderJSON renders the machine-readable report.
func RenderJSON(r *Report) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding report: %w", err)
	}
	return string(data), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
