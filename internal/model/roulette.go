package model

import (
	"strconv"
	"strings"
)

// Outcome a pocket on the wheel: "0", "00" or "1".."36"
type Outcome string

type Color string

const (
	ColorGreen Color = "green"
	ColorRed   Color = "red"
	ColorBlack Color = "black"
)

type Parity string

const (
	ParityNone Parity = ""
	ParityOdd  Parity = "odd"
	ParityEven Parity = "even"
)

const (
	OutcomeZero       Outcome = "0"
	OutcomeDoubleZero Outcome = "00"
)

var redPockets = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true,
	12: true, 14: true, 16: true, 18: true, 19: true,
	21: true, 23: true, 25: true, 27: true, 30: true,
	32: true, 34: true, 36: true,
}

// wheel order used for draws: 1..36 then 0 and 00
var outcomes = func() []Outcome {
	res := make([]Outcome, 0, 38)
	for i := 1; i <= 36; i++ {
		res = append(res, Outcome(strconv.Itoa(i)))
	}
	return append(res, OutcomeZero, OutcomeDoubleZero)
}()

var outcomeSet = func() map[Outcome]struct{} {
	set := make(map[Outcome]struct{}, len(outcomes))
	for _, o := range outcomes {
		set[o] = struct{}{}
	}
	return set
}()

// Outcomes returns all 38 pockets. The slice is a copy.
func Outcomes() []Outcome {
	res := make([]Outcome, len(outcomes))
	copy(res, outcomes)
	return res
}

// ParseOutcome accepts only the canonical pocket labels ("7", not "07")
func ParseOutcome(s string) (Outcome, bool) {
	o := Outcome(s)
	_, ok := outcomeSet[o]
	return o, ok
}

func (o Outcome) Valid() bool {
	_, ok := outcomeSet[o]
	return ok
}

// number returns 0 for both green pockets
func (o Outcome) number() int {
	if o == OutcomeZero || o == OutcomeDoubleZero {
		return 0
	}
	n, err := strconv.Atoi(string(o))
	if err != nil {
		return 0
	}
	return n
}

func (o Outcome) Color() Color {
	n := o.number()
	switch {
	case n == 0:
		return ColorGreen
	case redPockets[n]:
		return ColorRed
	default:
		return ColorBlack
	}
}

// Parity is ParityNone for "0" and "00"
func (o Outcome) Parity() Parity {
	n := o.number()
	switch {
	case n == 0:
		return ParityNone
	case n%2 == 0:
		return ParityEven
	default:
		return ParityOdd
	}
}

type TargetKind int

const (
	TargetNumber TargetKind = iota + 1
	TargetColor
	TargetParity
)

func (k TargetKind) String() string {
	switch k {
	case TargetNumber:
		return "number"
	case TargetColor:
		return "color"
	case TargetParity:
		return "parity"
	default:
		return "unknown"
	}
}

// WagerTarget is a tagged variant: exactly one of Number, Color or Parity
// is meaningful, selected by Kind.
type WagerTarget struct {
	Kind   TargetKind
	Number Outcome
	Color  Color
	Parity Parity
}

func NumberTarget(o Outcome) WagerTarget {
	return WagerTarget{Kind: TargetNumber, Number: o}
}

func ColorTarget(c Color) WagerTarget {
	return WagerTarget{Kind: TargetColor, Color: c}
}

func ParityTarget(p Parity) WagerTarget {
	return WagerTarget{Kind: TargetParity, Parity: p}
}

// Valid reports whether the target can ever win. Green is not a colour bet,
// the green pockets are bet on by number.
func (t WagerTarget) Valid() bool {
	switch t.Kind {
	case TargetNumber:
		return t.Number.Valid()
	case TargetColor:
		return t.Color == ColorRed || t.Color == ColorBlack
	case TargetParity:
		return t.Parity == ParityOdd || t.Parity == ParityEven
	default:
		return false
	}
}

// String renders the target the way the betting board labels it
func (t WagerTarget) String() string {
	switch t.Kind {
	case TargetNumber:
		return string(t.Number)
	case TargetColor:
		return strings.ToUpper(string(t.Color))
	case TargetParity:
		return strings.ToUpper(string(t.Parity))
	default:
		return ""
	}
}

// ParseTarget maps a board label to a target. Labels are case-insensitive
// and surrounding whitespace is ignored.
func ParseTarget(label string) (WagerTarget, error) {
	l := strings.ToUpper(strings.TrimSpace(label))
	switch l {
	case "RED":
		return ColorTarget(ColorRed), nil
	case "BLACK":
		return ColorTarget(ColorBlack), nil
	case "ODD":
		return ParityTarget(ParityOdd), nil
	case "EVEN":
		return ParityTarget(ParityEven), nil
	}
	if o, ok := ParseOutcome(l); ok {
		return NumberTarget(o), nil
	}
	return WagerTarget{}, ErrUnrecognizedTarget
}

// Wager a stake committed against a target. Amount is already debited.
type Wager struct {
	Target WagerTarget
	Amount int
}

// SettledWager a wager after a spin; Payout is 0 for a losing wager
type SettledWager struct {
	Wager
	Payout int
}

type TableState struct {
	Balance    int
	Stake      int
	Wagers     []Wager
	LastResult *SpinResult
}

type StakeResult struct {
	OK      bool
	Message string
	Stake   int
}

type BetResult struct {
	OK      bool
	Message string
	Wager   Wager
	Balance int
}

// SpinResult Outcome is nil when nothing was bet
type SpinResult struct {
	Outcome       *Outcome
	Color         Color
	Parity        Parity
	Wagers        []SettledWager
	TotalStaked   int
	TotalWinnings int
	DidWin        bool
	Balance       int
	Message       string
}
