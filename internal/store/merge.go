package store

// Merge combines two snapshots cumulatively. It is a three-level deep merge:
// union at the covergroup and coverpoint levels, additive at the bin leaf
// (hit counts are summed, never overwritten). The existing side's version
// wins, run counts are summed, and the merged snapshot is re-stamped.
//
// Neither input is mutated; the result shares no containers with them.
// Absent containers at any level are treated as empty.
func Merge(existing, incoming *Snapshot) *Snapshot {
	merged := NewSnapshot()
	merged.Version = existing.Version
	merged.TotalRuns = existing.TotalRuns + incoming.TotalRuns
	merged.LastUpdated = Now()

	for key, cg := range existing.Covergroups {
		merged.Covergroups[key] = cloneCovergroup(cg)
	}
	for key, cg := range incoming.Covergroups {
		current, ok := merged.Covergroups[key]
		if !ok {
			merged.Covergroups[key] = cloneCovergroup(cg)
			continue
		}
		mergeCovergroup(current, cg)
	}
	return merged
}

func mergeCovergroup(dst, src *CovergroupData) {
	if dst.Coverpoints == nil {
		dst.Coverpoints = make(map[string]*CoverpointData, len(src.Coverpoints))
	}
	for cpName, cp := range src.Coverpoints {
		current, ok := dst.Coverpoints[cpName]
		if !ok {
			dst.Coverpoints[cpName] = cloneCoverpoint(cp)
			continue
		}
		mergeCoverpoint(current, cp)
	}
}

func mergeCoverpoint(dst, src *CoverpointData) {
	if dst.Bins.Bins == nil {
		dst.Bins.Bins = make(map[string]*BinData, len(src.Bins.Bins))
	}
	for binName, bin := range src.Bins.Bins {
		current, ok := dst.Bins.Bins[binName]
		if !ok {
			dst.Bins.Bins[binName] = cloneBin(bin)
			continue
		}
		current.Hits += bin.Hits
		if bin.LastHit != nil && (current.LastHit == nil || bin.LastHit.After(current.LastHit.Time)) {
			lh := *bin.LastHit
			current.LastHit = &lh
		}
	}
}

func cloneCovergroup(cg *CovergroupData) *CovergroupData {
	out := &CovergroupData{
		Name:      cg.Name,
		Module:    cg.Module,
		CreatedAt: cg.CreatedAt,
	}
	if cg.Coverpoints != nil {
		out.Coverpoints = make(map[string]*CoverpointData, len(cg.Coverpoints))
		for name, cp := range cg.Coverpoints {
			out.Coverpoints[name] = cloneCoverpoint(cp)
		}
	}
	return out
}

func cloneCoverpoint(cp *CoverpointData) *CoverpointData {
	out := &CoverpointData{
		Name:        cp.Name,
		OutOfBounds: cp.OutOfBounds,
	}
	if cp.Bins.Bins != nil {
		out.Bins.Bins = make(map[string]*BinData, len(cp.Bins.Bins))
		for name, b := range cp.Bins.Bins {
			out.Bins.Bins[name] = cloneBin(b)
		}
	}
	return out
}

func cloneBin(b *BinData) *BinData {
	out := *b
	if b.LastHit != nil {
		lh := *b.LastHit
		out.LastHit = &lh
	}
	return &out
}
