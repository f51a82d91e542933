// Package store persists coverage snapshots as JSON and implements the
// cumulative merge across runs.
package store

import (
	"encoding/json"
	"time"

	"funcov/internal/model"
)

// Version is the persisted format version.
const Version = "1.0"

// Timestamp is a lenient ISO-8601 time. It marshals as RFC 3339 and accepts
// timezone-less timestamps on the way in; an unparsable timestamp decodes to
// the zero value instead of failing the whole document, and callers
// substitute the current time for zero values.
type Timestamp struct {
	time.Time
}

// Now returns the current time as a Timestamp.
func Now() Timestamp { return Timestamp{time.Now()} }

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(time.RFC3339Nano))
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	t.Time = time.Time{}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil // null or a non-string: leave zero
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return nil
}

// Snapshot is the persisted aggregate: everything observed across one or
// more runs. It is the unit of persistence, merge and reporting.
type Snapshot struct {
	Version     string                     `json:"version"`
	TotalRuns   int                        `json:"total_runs"`
	LastUpdated Timestamp                  `json:"last_updated"`
	Covergroups map[string]*CovergroupData `json:"covergroups"`
}

// NewSnapshot returns an empty snapshot with defaults applied.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Version:     Version,
		LastUpdated: Now(),
		Covergroups: make(map[string]*CovergroupData),
	}
}

// Empty reports whether the snapshot holds no covergroup data.
func (s *Snapshot) Empty() bool { return len(s.Covergroups) == 0 }

// CovergroupData is the serialized form of a covergroup.
type CovergroupData struct {
	Name        string                     `json:"name"`
	Module      string                     `json:"module"`
	CreatedAt   Timestamp                  `json:"created_at"`
	Coverpoints map[string]*CoverpointData `json:"coverpoints"`
}

// CoverpointData is the serialized form of a coverpoint.
type CoverpointData struct {
	Name        string       `json:"name"`
	Bins        BinContainer `json:"bins"`
	OutOfBounds string       `json:"out_of_bounds"`
}

// BinContainer wraps the bin map. The indirection is part of the wire
// format and must be preserved for compatibility.
type BinContainer struct {
	Bins map[string]*BinData `json:"bins"`
}

// BinData is the serialized form of a bin. Fields irrelevant to the bin's
// type are null.
type BinData struct {
	Name      string       `json:"name"`
	BinType   string       `json:"bin_type"`
	Value     *model.Value `json:"value"`
	RangeMin  *int64       `json:"range_min"`
	RangeMax  *int64       `json:"range_max"`
	FromValue *int64       `json:"from_value"`
	ToValue   *int64       `json:"to_value"`
	Hits      int          `json:"hits"`
	LastHit   *Timestamp   `json:"last_hit"`
}

// FromCovergroup serializes a live covergroup into its persisted form.
func FromCovergroup(cg *model.Covergroup) *CovergroupData {
	data := &CovergroupData{
		Name:        cg.Name,
		Module:      cg.Module,
		CreatedAt:   Timestamp{cg.CreatedAt},
		Coverpoints: make(map[string]*CoverpointData, len(cg.Coverpoints)),
	}
	for _, cp := range cg.Coverpoints {
		cpData := &CoverpointData{
			Name:        cp.Name,
			Bins:        BinContainer{Bins: make(map[string]*BinData, len(cp.Bins))},
			OutOfBounds: string(cp.OutOfBounds),
		}
		for _, b := range cp.Bins {
			bd := &BinData{
				Name:      b.Name,
				BinType:   string(b.Kind),
				Value:     b.Value,
				RangeMin:  b.RangeMin,
				RangeMax:  b.RangeMax,
				FromValue: b.FromValue,
				ToValue:   b.ToValue,
				Hits:      b.Hits,
			}
			if b.LastHit != nil {
				bd.LastHit = &Timestamp{*b.LastHit}
			}
			cpData.Bins.Bins[b.Name] = bd
		}
		data.Coverpoints[cp.Name] = cpData
	}
	return data
}
