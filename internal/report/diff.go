package report

import "funcov/internal/store"

// DiffEntry is one covergroup whose coverage moved between two snapshots.
// Percentages are rounded to two decimals.
type DiffEntry struct {
	Covergroup string  `json:"covergroup"`
	Baseline   float64 `json:"baseline"`
	Current    float64 `json:"current"`
	Difference float64 `json:"difference"`
}

// DiffResult classifies coverage movement from a baseline snapshot to a
// current one. The overall figures are computed over each side's full bin
// population, independently of the per-covergroup classification.
type DiffResult struct {
	BaselineOverall float64     `json:"baseline_overall"`
	CurrentOverall  float64     `json:"current_overall"`
	Difference      float64     `json:"difference"`
	Regressions     []DiffEntry `json:"regressions"`
	Improvements    []DiffEntry `json:"improvements"`
}

// Compare diffs two snapshots. Every covergroup present on either side is
// considered; a covergroup absent from one side counts as zero bins there,
// which is 0% coverage. A negative move is a regression, a positive one an
// improvement, and an unchanged covergroup produces no entry.
func Compare(baseline, current *store.Snapshot) *DiffResult {
	result := &DiffResult{
		Regressions:  []DiffEntry{},
		Improvements: []DiffEntry{},
	}

	result.BaselineOverall = round2(overallCoverage(baseline))
	result.CurrentOverall = round2(overallCoverage(current))
	result.Difference = round2(result.CurrentOverall - result.BaselineOverall)

	keySet := make(map[string]struct{})
	for k := range baseline.Covergroups {
		keySet[k] = struct{}{}
	}
	for k := range current.Covergroups {
		keySet[k] = struct{}{}
	}

	for _, key := range sortedKeys(keySet) {
		baseCov, _, _, _ := covergroupCoverage(baseline.Covergroups[key])
		currCov, _, _, _ := covergroupCoverage(current.Covergroups[key])
		diff := currCov - baseCov
		if diff == 0 {
			continue
		}
		entry := DiffEntry{
			Covergroup: key,
			Baseline:   round2(baseCov),
			Current:    round2(currCov),
			Difference: round2(diff),
		}
		if diff < 0 {
			result.Regressions = append(result.Regressions, entry)
		} else {
			result.Improvements = append(result.Improvements, entry)
		}
	}
	return result
}

func overallCoverage(snap *store.Snapshot) float64 {
	total, hit := 0, 0
	for _, cg := range snap.Covergroups {
		_, cgTotal, cgHit, _ := covergroupCoverage(cg)
		total += cgTotal
		hit += cgHit
	}
	if total == 0 {
		return 0
	}
	return float64(hit) / float64(total) * 100
}
