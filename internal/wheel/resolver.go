package wheel

import (
	"fmt"
	"math"
)

// PointerAngle is where the fixed pointer sits, in the wheel's frame: the
// top of the circle when segment 0 starts at 0° on the right.
const PointerAngle = 90.0

// boundaryEpsilon absorbs floating error accumulated by the animation so a
// rotation that should land exactly on a boundary is not read as the
// previous segment.
const boundaryEpsilon = 1e-9

// NormalizeAngle maps any angle into [0, 360).
func NormalizeAngle(deg float64) float64 {
	a := math.Mod(math.Mod(deg, FullTurn)+FullTurn, FullTurn)
	if a >= FullTurn {
		a = 0
	}
	return a
}

// PointerOffset returns which wheel-frame angle is under the pointer after
// the wheel has been rotated by rotation degrees.
func PointerOffset(rotation, pointer float64) float64 {
	return NormalizeAngle(pointer - rotation)
}

// ResolveIndex maps a final rotation to the index of the segment under the
// pointer. Boundaries belong to the segment that starts there.
//
// width and n must be positive; callers gate spins on at least two options,
// so a violation is a programming error and panics.
func ResolveIndex(rotation, pointer, width float64, n int) int {
	if width <= 0 || n <= 0 {
		panic(fmt.Sprintf("wheel: ResolveIndex called with width=%v n=%d", width, n))
	}
	q := PointerOffset(rotation, pointer) / width
	if r := math.Round(q); math.Abs(q-r) < boundaryEpsilon {
		q = r
	}
	idx := int(math.Floor(q)) % n
	if idx < 0 {
		idx += n
	}
	return idx
}

// CrossedBoundaries counts how many segment boundaries passed under the
// pointer while the wheel rotated from one angle to another.
func CrossedBoundaries(from, to, pointer, width float64) int {
	if width <= 0 {
		return 0
	}
	a := math.Floor((from - pointer) / width)
	b := math.Floor((to - pointer) / width)
	d := int(b - a)
	if d < 0 {
		d = -d
	}
	return d
}
