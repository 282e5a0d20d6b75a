package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcomes(t *testing.T) {
	all := Outcomes()
	require.Len(t, all, 38)

	seen := make(map[Outcome]bool)
	for _, o := range all {
		assert.False(t, seen[o], "duplicate pocket %s", o)
		seen[o] = true
		assert.True(t, o.Valid())
	}
	assert.True(t, seen[OutcomeZero])
	assert.True(t, seen[OutcomeDoubleZero])

	// the caller gets a copy
	all[0] = "99"
	assert.Equal(t, Outcome("1"), Outcomes()[0])
}

func TestOutcomeColor(t *testing.T) {
	var red, black int
	for _, o := range Outcomes() {
		switch o.Color() {
		case ColorRed:
			red++
		case ColorBlack:
			black++
		}
	}
	assert.Equal(t, 18, red)
	assert.Equal(t, 18, black)

	tests := []struct {
		outcome Outcome
		want    Color
	}{
		{"0", ColorGreen},
		{"00", ColorGreen},
		{"1", ColorRed},
		{"2", ColorBlack},
		{"10", ColorBlack},
		{"11", ColorBlack},
		{"12", ColorRed},
		{"19", ColorRed},
		{"29", ColorBlack},
		{"36", ColorRed},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.outcome.Color(), "pocket %s", tt.outcome)
	}
}

func TestOutcomeParity(t *testing.T) {
	assert.Equal(t, ParityNone, Outcome("0").Parity())
	assert.Equal(t, ParityNone, Outcome("00").Parity())
	assert.Equal(t, ParityOdd, Outcome("1").Parity())
	assert.Equal(t, ParityEven, Outcome("2").Parity())
	assert.Equal(t, ParityOdd, Outcome("35").Parity())
	assert.Equal(t, ParityEven, Outcome("36").Parity())
}

func TestParseOutcome(t *testing.T) {
	for _, s := range []string{"0", "00", "1", "17", "36"} {
		o, ok := ParseOutcome(s)
		assert.True(t, ok, s)
		assert.Equal(t, Outcome(s), o)
	}
	for _, s := range []string{"", "37", "-1", "07", "000", "1 TO 18", "abc"} {
		_, ok := ParseOutcome(s)
		assert.False(t, ok, s)
	}
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		label string
		want  WagerTarget
	}{
		{"17", NumberTarget("17")},
		{"0", NumberTarget("0")},
		{"00", NumberTarget("00")},
		{"RED", ColorTarget(ColorRed)},
		{"red", ColorTarget(ColorRed)},
		{" Black ", ColorTarget(ColorBlack)},
		{"ODD", ParityTarget(ParityOdd)},
		{"even", ParityTarget(ParityEven)},
	}
	for _, tt := range tests {
		got, err := ParseTarget(tt.label)
		require.NoError(t, err, tt.label)
		assert.Equal(t, tt.want, got, tt.label)
		assert.True(t, got.Valid(), tt.label)
	}

	for _, label := range []string{"", "37", "GREEN", "1 TO 18", "19 TO 36", "1 TO 12", "REDD"} {
		_, err := ParseTarget(label)
		assert.ErrorIs(t, err, ErrUnrecognizedTarget, label)
	}
}

func TestWagerTargetString(t *testing.T) {
	assert.Equal(t, "17", NumberTarget("17").String())
	assert.Equal(t, "00", NumberTarget("00").String())
	assert.Equal(t, "RED", ColorTarget(ColorRed).String())
	assert.Equal(t, "EVEN", ParityTarget(ParityEven).String())

	// String round-trips through ParseTarget
	for _, o := range Outcomes() {
		got, err := ParseTarget(NumberTarget(o).String())
		require.NoError(t, err)
		assert.Equal(t, NumberTarget(o), got)
	}
}

func TestWagerTargetValid(t *testing.T) {
	assert.False(t, WagerTarget{}.Valid())
	assert.False(t, ColorTarget(ColorGreen).Valid())
	assert.False(t, NumberTarget("37").Valid())
	assert.False(t, ParityTarget(ParityNone).Valid())
}
