package shape

import "math"

// Turn is an angle expressed as a fraction of a full revolution: 0 is 0°, 0.5
// is 180° and 1 is 360°. Angles that aren't turns are plain float64 radians.
//
// Turns aren't reduced modulo a full revolution; functions that do so say so.
type Turn float64

const (
	FullTurn    Turn = 1
	HalfTurn    Turn = 0.5
	QuarterTurn Turn = 0.25
)

// Rad returns the angle in radians.
func (t Turn) Rad() float64 {
	return float64(t) * 2 * math.Pi
}

// TurnFromRad converts an angle in radians to a Turn.
func TurnFromRad(th float64) Turn {
	return Turn(th / (2 * math.Pi))
}

// repeatTurn returns n copies of t.
func repeatTurn(t Turn, n int) []Turn {
	out := make([]Turn, max(n, 0))
	for i := range out {
		out[i] = t
	}
	return out
}
