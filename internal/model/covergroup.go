package model

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// OutOfBoundsError is returned by Sample under the error policy. It carries
// the offending value and coverpoint so callers can report it.
type OutOfBoundsError struct {
	Value      Value
	Coverpoint string
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("value %s is out of bounds for coverpoint %q", e.Value, e.Coverpoint)
}

// Covergroup is a named collection of coverpoints, optionally namespaced by
// module. It owns the per-coverpoint previous-value state that transition
// bins depend on; that state lives for the lifetime of the covergroup.
type Covergroup struct {
	Name        string
	Module      string
	CreatedAt   time.Time
	Coverpoints []*Coverpoint

	prevValues map[string]int64
	logger     *zap.Logger
}

// NewCovergroup creates an unregistered covergroup. A nil logger is replaced
// with a no-op logger.
func NewCovergroup(name, module string, logger *zap.Logger) *Covergroup {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Covergroup{
		Name:       name,
		Module:     module,
		CreatedAt:  time.Now(),
		prevValues: make(map[string]int64),
		logger:     logger,
	}
}

// Key is the namespaced registry key: "{module}.{name}", or the bare name
// when module is empty.
func (cg *Covergroup) Key() string {
	if cg.Module != "" {
		return cg.Module + "." + cg.Name
	}
	return cg.Name
}

// AddCoverpoint appends a coverpoint. Duplicate names are rejected: the
// first-match lookup in Sample would make a duplicate unreachable anyway.
func (cg *Covergroup) AddCoverpoint(name string, bins []*Bin, mode OutOfBoundsMode) (*Coverpoint, error) {
	if cg.FindCoverpoint(name) != nil {
		return nil, fmt.Errorf("coverpoint %q already defined in covergroup %q", name, cg.Name)
	}
	cp := &Coverpoint{Name: name, Bins: bins, OutOfBounds: mode}
	cg.Coverpoints = append(cg.Coverpoints, cp)
	return cp, nil
}

// FindCoverpoint returns the first coverpoint with the given name, or nil.
func (cg *Covergroup) FindCoverpoint(name string) *Coverpoint {
	for _, cp := range cg.Coverpoints {
		if cp.Name == name {
			return cp
		}
	}
	return nil
}

// Sample resolves a value against the named coverpoint and records the hit.
//
// An unknown coverpoint is not an error: it is logged and treated as no
// match. On a match the bin's counter is bumped and, for integer samples
// only, the coverpoint's previous value is updated for transition tracking.
// On no match the coverpoint's out-of-bounds policy applies; only the error
// policy makes Sample fail.
func (cg *Covergroup) Sample(coverpointName string, v Value) (*Bin, error) {
	cp := cg.FindCoverpoint(coverpointName)
	if cp == nil {
		cg.logger.Warn("coverpoint not found",
			zap.String("coverpoint", coverpointName),
			zap.String("covergroup", cg.Name))
		return nil, nil
	}

	var prev *int64
	if p, ok := cg.prevValues[coverpointName]; ok {
		prev = &p
	}

	if bin := cp.FindMatchingBin(v, prev); bin != nil {
		bin.Hit()
		if iv, ok := v.Int(); ok {
			cg.prevValues[coverpointName] = iv
		}
		return bin, nil
	}

	switch cp.OutOfBounds {
	case OutOfBoundsErrorMode:
		return nil, &OutOfBoundsError{Value: v, Coverpoint: coverpointName}
	case OutOfBoundsWarn:
		cg.logger.Warn("sampled value out of bounds",
			zap.Stringer("value", v),
			zap.String("coverpoint", coverpointName),
			zap.String("covergroup", cg.Name))
	}
	return nil, nil
}
