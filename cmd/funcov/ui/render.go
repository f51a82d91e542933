package ui

import (
	"fmt"
	"strings"

	"funcov/internal/report"
)

// RenderReport renders a coverage report for the terminal. With color off it
// falls back to the canonical plain rendering so output stays grep-friendly
// in pipelines.
func RenderReport(r *report.Report, color bool) string {
	if !color {
		return report.RenderText(r)
	}

	rule := RuleStyle.Render(strings.Repeat("=", 80))
	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString(TitleStyle.Render("Coverage Report") + "\n")
	b.WriteString(rule + "\n")

	for _, cg := range r.Covergroups {
		b.WriteString("\n" + CovergroupStyle.Render("Covergroup: "+cg.Name) + "\n")
		line := fmt.Sprintf("  Coverage: %.2f%% (%d/%d bins)", cg.Coverage, cg.HitBins, cg.TotalBins)
		if cg.TotalBins > 0 && cg.HitBins == cg.TotalBins {
			line = HitStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + rule + "\n")
	b.WriteString(TitleStyle.Render(
		fmt.Sprintf("Overall Coverage: %.2f%% (%d/%d bins)", r.OverallCoverage, r.HitBins, r.TotalBins)) + "\n")
	b.WriteString(rule)

	if len(r.MissedBins) > 0 {
		b.WriteString("\n\n" + MissedStyle.Render(fmt.Sprintf("Missed Bins (%d):", len(r.MissedBins))) + "\n")
		for _, name := range r.MissedBins {
			b.WriteString(MissedStyle.Render("  - "+name) + "\n")
		}
		return strings.TrimRight(b.String(), "\n")
	}
	return b.String()
}

// RenderDiff renders a baseline/current comparison for the terminal.
func RenderDiff(d *report.DiffResult, color bool) string {
	style := func(s string, st interface{ Render(...string) string }) string {
		if !color {
			return s
		}
		return st.Render(s)
	}

	var b strings.Builder
	b.WriteString(style("Coverage Comparison", TitleStyle) + "\n")
	b.WriteString(style(strings.Repeat("=", 40), RuleStyle) + "\n")
	fmt.Fprintf(&b, "Baseline: %.2f%%\n", d.BaselineOverall)
	fmt.Fprintf(&b, "Current:  %.2f%%\n", d.CurrentOverall)
	fmt.Fprintf(&b, "Diff:     %+.2f%%\n", d.Difference)

	if len(d.Regressions) > 0 {
		b.WriteString("\nRegressions:\n")
		for _, r := range d.Regressions {
			line := fmt.Sprintf("  - %s: %.2f%% -> %.2f%% (%+.2f%%)", r.Covergroup, r.Baseline, r.Current, r.Difference)
			b.WriteString(style(line, RegressionStyle) + "\n")
		}
	}

	if len(d.Improvements) > 0 {
		b.WriteString("\nImprovements:\n")
		for _, i := range d.Improvements {
			line := fmt.Sprintf("  + %s: %.2f%% -> %.2f%% (%+.2f%%)", i.Covergroup, i.Baseline, i.Current, i.Difference)
			b.WriteString(style(line, ImprovementStyle) + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
