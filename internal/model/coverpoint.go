package model

// OutOfBoundsMode is the policy for samples that match no bin.
type OutOfBoundsMode string

const (
	OutOfBoundsIgnore OutOfBoundsMode = "ignore" // drop silently
	OutOfBoundsWarn   OutOfBoundsMode = "warn"   // log and drop
	OutOfBoundsErrorMode OutOfBoundsMode = "error" // fail the sample
)

// Coverpoint is one measured dimension: an ordered list of bins plus the
// out-of-bounds policy. Bin order is semantically significant; resolution is
// first-match in declaration order.
type Coverpoint struct {
	Name        string
	Bins        []*Bin
	OutOfBounds OutOfBoundsMode
}

// FindMatchingBin scans bins in declaration order and returns the first bin
// any applicable predicate accepts. Each candidate is tried discrete, then
// range, then transition (only when prev is present and v is an integer)
// before advancing, so list order decides precedence, not bin kind.
// Returns nil when nothing matches.
func (cp *Coverpoint) FindMatchingBin(v Value, prev *int64) *Bin {
	iv, isInt := v.Int()
	for _, b := range cp.Bins {
		if b.MatchDiscrete(v) {
			return b
		}
		if isInt && b.MatchRange(iv) {
			return b
		}
		if prev != nil && isInt && b.MatchTransition(*prev, iv) {
			return b
		}
	}
	return nil
}
