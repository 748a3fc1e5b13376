package wheel

import "time"

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// EaseOutCubic maps linear progress t in [0, 1] to a decelerating curve:
// fast at the start, settling smoothly at 1.
func EaseOutCubic(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	u := 1 - t
	return 1 - u*u*u
}

// Progress returns elapsed/total clamped to [0, 1].
func Progress(elapsedMs, totalMs float64) float64 {
	if totalMs <= 0 {
		return 1
	}
	p := elapsedMs / totalMs
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
