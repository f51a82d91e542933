// Package model implements the functional coverage domain model:
// bins, coverpoints and covergroups in the SystemVerilog tradition.
package model

import (
	"fmt"
	"strings"
	"time"
)

// BinKind is the kind of condition a bin matches.
type BinKind string

const (
	BinDiscrete   BinKind = "discrete"   // exact value match
	BinRange      BinKind = "range"      // value within [min, max]
	BinTransition BinKind = "transition" // previous -> current pair
)

// Bin is a single matchable condition within a coverpoint. Only the fields
// relevant to Kind are consulted; the rest may be populated but are ignored
// by both matching and validation. Hits and LastHit are the mutable state.
type Bin struct {
	Name      string
	Kind      BinKind
	Value     *Value // discrete
	RangeMin  *int64 // range, inclusive
	RangeMax  *int64 // range, inclusive
	FromValue *int64 // transition
	ToValue   *int64 // transition
	Hits      int
	LastHit   *time.Time
}

// MatchDiscrete reports whether v exactly matches this discrete bin.
// Always false for other kinds.
func (b *Bin) MatchDiscrete(v Value) bool {
	if b.Kind != BinDiscrete || b.Value == nil {
		return false
	}
	return b.Value.Equal(v)
}

// MatchRange reports whether v falls within [RangeMin, RangeMax].
// Always false for other kinds.
func (b *Bin) MatchRange(v int64) bool {
	if b.Kind != BinRange || b.RangeMin == nil || b.RangeMax == nil {
		return false
	}
	return *b.RangeMin <= v && v <= *b.RangeMax
}

// MatchTransition reports whether prev -> curr matches this transition bin.
// Direction-sensitive; always false for other kinds.
func (b *Bin) MatchTransition(prev, curr int64) bool {
	if b.Kind != BinTransition || b.FromValue == nil || b.ToValue == nil {
		return false
	}
	return *b.FromValue == prev && *b.ToValue == curr
}

// Hit records a hit. It has no guard: the coverpoint/covergroup layer only
// calls it on an actual match.
func (b *Bin) Hit() {
	b.Hits++
	now := time.Now()
	b.LastHit = &now
}

// Validate checks the bin definition. It is a precondition check callers opt
// into; construction does not run it.
func (b *Bin) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return fmt.Errorf("bin name must be non-empty")
	}
	switch b.Kind {
	case BinDiscrete:
		if b.Value == nil {
			return fmt.Errorf("bin %q: discrete bin requires a value", b.Name)
		}
	case BinRange:
		if b.RangeMin == nil || b.RangeMax == nil {
			return fmt.Errorf("bin %q: range bin requires range_min and range_max", b.Name)
		}
		if *b.RangeMin > *b.RangeMax {
			return fmt.Errorf("bin %q: range_min must be <= range_max", b.Name)
		}
	case BinTransition:
		if b.FromValue == nil || b.ToValue == nil {
			return fmt.Errorf("bin %q: transition bin requires from_value and to_value", b.Name)
		}
		if *b.FromValue == *b.ToValue {
			return fmt.Errorf("bin %q: transition bin requires from_value != to_value", b.Name)
		}
	default:
		return fmt.Errorf("bin %q: unknown bin kind %q", b.Name, b.Kind)
	}
	return nil
}

// Int64 returns a pointer to v, for declaring bin bounds inline.
func Int64(v int64) *int64 { return &v }

// DiscreteBin declares a discrete bin matching exactly v.
func DiscreteBin(name string, v Value) *Bin {
	return &Bin{Name: name, Kind: BinDiscrete, Value: &v}
}

// RangeBin declares a range bin matching [min, max] inclusive.
func RangeBin(name string, min, max int64) *Bin {
	return &Bin{Name: name, Kind: BinRange, RangeMin: &min, RangeMax: &max}
}

// TransitionBin declares a transition bin matching from -> to.
func TransitionBin(name string, from, to int64) *Bin {
	return &Bin{Name: name, Kind: BinTransition, FromValue: &from, ToValue: &to}
}
