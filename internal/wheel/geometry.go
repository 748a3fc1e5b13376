// Package wheel implements the spin-and-resolve engine behind MiniWheel:
// segment geometry, the pointer resolver, easing, and the Spinner state
// machine that drives a spin through an injected frame scheduler. The
// package has no UI dependencies; rendering layers consume rotation values
// and results through callbacks.
package wheel

// FullTurn is the number of degrees in one revolution.
const FullTurn = 360.0

// Segment is one equal slice of the wheel. Angles are in degrees in the
// wheel's own (unrotated) frame; Start is inclusive and End exclusive.
type Segment struct {
	Index  int
	Label  string
	Start  float64
	End    float64
	Center float64
}

// SegmentWidth returns the angular width of each of n segments, or 0 when
// there is nothing to divide.
func SegmentWidth(n int) float64 {
	if n <= 0 {
		return 0
	}
	return FullTurn / float64(n)
}

// SegmentStart returns the start angle of segment i out of n.
func SegmentStart(i, n int) float64 {
	return float64(i) * SegmentWidth(n)
}

// SegmentCenter returns the bisector angle of segment i out of n.
func SegmentCenter(i, n int) float64 {
	w := SegmentWidth(n)
	return float64(i)*w + w/2
}

// Segments lays labels out clockwise-in-list-order over [0, 360).
func Segments(labels []string) []Segment {
	n := len(labels)
	if n == 0 {
		return nil
	}
	w := SegmentWidth(n)
	out := make([]Segment, n)
	for i, l := range labels {
		start := float64(i) * w
		out[i] = Segment{
			Index:  i,
			Label:  l,
			Start:  start,
			End:    start + w,
			Center: start + w/2,
		}
	}
	return out
}
