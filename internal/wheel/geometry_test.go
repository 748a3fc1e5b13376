package wheel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentWidth(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want float64
	}{
		{name: "empty", n: 0, want: 0},
		{name: "negative", n: -3, want: 0},
		{name: "one", n: 1, want: 360},
		{name: "two", n: 2, want: 180},
		{name: "eight", n: 8, want: 45},
		{name: "seven", n: 7, want: 360.0 / 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SegmentWidth(tt.n)
			if got != tt.want {
				t.Fatalf("SegmentWidth(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestSegmentsPartitionFullTurn(t *testing.T) {
	for n := 1; n <= 64; n++ {
		labels := make([]string, n)
		segs := Segments(labels)
		require.Len(t, segs, n)

		sum := 0.0
		w := SegmentWidth(n)
		for i, s := range segs {
			width := s.End - s.Start
			assert.InDelta(t, w, width, 1e-9, "n=%d segment %d width", n, i)
			assert.InDelta(t, s.Start+w/2, s.Center, 1e-9)
			if i > 0 {
				assert.InDelta(t, segs[i-1].End, s.Start, 1e-9, "segments must be contiguous")
			}
			sum += width
		}
		assert.InDelta(t, 360.0, sum, 1e-9, "n=%d widths must sum to a full turn", n)
		assert.Equal(t, 0.0, segs[0].Start)
		assert.InDelta(t, 360.0, segs[n-1].End, 1e-9)
	}
}

func TestSegmentCenter(t *testing.T) {
	assert.Equal(t, 22.5, SegmentCenter(0, 8))
	assert.Equal(t, 337.5, SegmentCenter(7, 8))
	assert.Equal(t, 90.0, SegmentCenter(0, 2))
	assert.Equal(t, 180.0, SegmentStart(1, 2))
	assert.True(t, math.Abs(SegmentCenter(2, 3)-300) < 1e-9)
}

func TestSegmentsKeepsLabelsInOrder(t *testing.T) {
	segs := Segments([]string{"A", "B", "C"})
	require.Len(t, segs, 3)
	for i, want := range []string{"A", "B", "C"} {
		assert.Equal(t, want, segs[i].Label)
		assert.Equal(t, i, segs[i].Index)
	}
	assert.Nil(t, Segments(nil))
}
