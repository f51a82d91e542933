package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinMatchDiscrete(t *testing.T) {
	t.Run("exact integer value", func(t *testing.T) {
		b := DiscreteBin("bin_5", IntValue(5))
		assert.True(t, b.MatchDiscrete(IntValue(5)))
		assert.False(t, b.MatchDiscrete(IntValue(6)))
	})

	t.Run("string value", func(t *testing.T) {
		b := DiscreteBin("bin_str", StringValue("hello"))
		assert.True(t, b.MatchDiscrete(StringValue("hello")))
		assert.False(t, b.MatchDiscrete(StringValue("world")))
	})

	t.Run("boolean value", func(t *testing.T) {
		b := DiscreteBin("bin_bool", BoolValue(true))
		assert.True(t, b.MatchDiscrete(BoolValue(true)))
		assert.False(t, b.MatchDiscrete(BoolValue(false)))
	})

	t.Run("kind mismatch between value and sample", func(t *testing.T) {
		b := DiscreteBin("bin_1", IntValue(1))
		assert.False(t, b.MatchDiscrete(StringValue("1")))
		assert.False(t, b.MatchDiscrete(BoolValue(true)))
	})

	t.Run("wrong bin kind never matches", func(t *testing.T) {
		b := RangeBin("range_bin", 0, 10)
		assert.False(t, b.MatchDiscrete(IntValue(5)))
	})

	t.Run("missing value never matches", func(t *testing.T) {
		b := &Bin{Name: "broken", Kind: BinDiscrete}
		assert.False(t, b.MatchDiscrete(IntValue(0)))
	})
}

func TestBinMatchRange(t *testing.T) {
	b := RangeBin("range_bin", 10, 20)

	t.Run("within bounds", func(t *testing.T) {
		assert.True(t, b.MatchRange(15))
	})

	t.Run("boundaries are inclusive", func(t *testing.T) {
		assert.True(t, b.MatchRange(10))
		assert.True(t, b.MatchRange(20))
	})

	t.Run("outside bounds", func(t *testing.T) {
		assert.False(t, b.MatchRange(9))
		assert.False(t, b.MatchRange(21))
	})

	t.Run("wrong bin kind never matches", func(t *testing.T) {
		d := DiscreteBin("bin_15", IntValue(15))
		assert.False(t, d.MatchRange(15))
	})

	t.Run("missing bounds never match", func(t *testing.T) {
		broken := &Bin{Name: "broken", Kind: BinRange, RangeMin: Int64(0)}
		assert.False(t, broken.MatchRange(0))
	})
}

func TestBinMatchTransition(t *testing.T) {
	b := TransitionBin("idle_to_active", 0, 1)

	t.Run("exact transition", func(t *testing.T) {
		assert.True(t, b.MatchTransition(0, 1))
	})

	t.Run("reverse does not match", func(t *testing.T) {
		assert.False(t, b.MatchTransition(1, 0))
	})

	t.Run("partial match does not count", func(t *testing.T) {
		assert.False(t, b.MatchTransition(0, 2))
		assert.False(t, b.MatchTransition(2, 1))
	})

	t.Run("wrong bin kind never matches", func(t *testing.T) {
		d := DiscreteBin("bin_0", IntValue(0))
		assert.False(t, d.MatchTransition(0, 1))
	})
}

func TestBinHit(t *testing.T) {
	b := DiscreteBin("bin_0", IntValue(0))
	require.Equal(t, 0, b.Hits)
	require.Nil(t, b.LastHit)

	before := time.Now()
	b.Hit()
	b.Hit()
	b.Hit()

	assert.Equal(t, 3, b.Hits)
	require.NotNil(t, b.LastHit)
	assert.False(t, b.LastHit.Before(before))
}

func TestBinValidate(t *testing.T) {
	cases := []struct {
		name    string
		bin     *Bin
		wantErr string
	}{
		{"discrete ok", DiscreteBin("b", IntValue(1)), ""},
		{"discrete missing value", &Bin{Name: "b", Kind: BinDiscrete}, "requires a value"},
		{"range ok", RangeBin("b", 0, 10), ""},
		{"range missing bounds", &Bin{Name: "b", Kind: BinRange, RangeMin: Int64(0)}, "requires range_min and range_max"},
		{"range inverted bounds", RangeBin("b", 10, 0), "range_min must be <= range_max"},
		{"transition ok", TransitionBin("b", 0, 1), ""},
		{"transition missing values", &Bin{Name: "b", Kind: BinTransition, FromValue: Int64(0)}, "requires from_value and to_value"},
		{"transition same values", TransitionBin("b", 3, 3), "from_value != to_value"},
		{"empty name", DiscreteBin("", IntValue(1)), "name must be non-empty"},
		{"whitespace name", DiscreteBin("   ", IntValue(1)), "name must be non-empty"},
		{"unknown kind", &Bin{Name: "b", Kind: BinKind("bogus")}, "unknown bin kind"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.bin.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}

// Fields irrelevant to the kind may be populated but are ignored.
func TestBinIrrelevantFieldsIgnored(t *testing.T) {
	b := DiscreteBin("bin_1", IntValue(1))
	b.RangeMin = Int64(0)
	b.RangeMax = Int64(100)
	b.FromValue = Int64(5)
	b.ToValue = Int64(5)

	assert.NoError(t, b.Validate())
	assert.True(t, b.MatchDiscrete(IntValue(1)))
	assert.False(t, b.MatchRange(50))
	assert.False(t, b.MatchTransition(5, 5))
}
