package sound

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain reads s to the end and returns the left channel.
func drain(t *testing.T, s beep.Streamer) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			out = append(out, smp[0])
		}
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never drained")
	return nil
}

func peak(samples []float64) float64 {
	m := 0.0
	for _, v := range samples {
		m = math.Max(m, math.Abs(v))
	}
	return m
}

func TestClickLengthAndLevel(t *testing.T) {
	samples := drain(t, NewClick(sampleRate))
	assert.Equal(t, sampleRate.N(clickDuration), len(samples))
	assert.Greater(t, peak(samples), 0.05)
	assert.LessOrEqual(t, peak(samples), 1.0)
}

func TestClickIsDeterministic(t *testing.T) {
	a := drain(t, NewClick(sampleRate))
	b := drain(t, NewClick(sampleRate))
	assert.Equal(t, a, b)
}

func TestChimeCoversBothNotes(t *testing.T) {
	samples := drain(t, NewChime(sampleRate))
	want := sampleRate.N(chimeNoteGap) + sampleRate.N(chimeNoteDuration)
	assert.Equal(t, want, len(samples))
	assert.LessOrEqual(t, peak(samples), 1.0)

	// the tail belongs to the second note only and has decayed
	tail := samples[len(samples)-sampleRate.N(10*time.Millisecond):]
	assert.Less(t, peak(tail), peak(samples))
}

func TestPluckStartsSilent(t *testing.T) {
	p := newPluck(sampleRate, 1000, 1, 0, 0, time.Second)
	buf := make([][2]float64, 1)
	_, ok := p.Stream(buf)
	require.True(t, ok)
	assert.InDelta(t, 0.0, buf[0][0], 1e-9)
}

func TestWithVolume(t *testing.T) {
	full := drain(t, withVolume(NewClick(sampleRate), 1))
	half := drain(t, withVolume(NewClick(sampleRate), 0.5))
	mute := drain(t, withVolume(NewClick(sampleRate), 0))

	assert.InDelta(t, peak(full)/2, peak(half), 1e-9)
	assert.InDelta(t, 0.0, peak(mute), 1e-12)
}

func TestPlayerWithoutSpeaker(t *testing.T) {
	p := NewPlayer(nil)
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("player panicked without a speaker: %v", r)
		}
	}()
	p.Click()
	p.Chime()
	p.Release()
	p.Click()
}

func TestPlayerVolumeAndMute(t *testing.T) {
	p := NewPlayer(nil)
	assert.Equal(t, 70, p.Volume())

	p.SetVolume(130)
	assert.Equal(t, 100, p.Volume())
	p.SetVolume(-4)
	assert.Equal(t, 0, p.Volume())

	assert.False(t, p.Muted())
	assert.True(t, p.ToggleMute())
	assert.True(t, p.Muted())
	p.SetMuted(false)
	assert.False(t, p.Muted())
}

func TestClickRateLimit(t *testing.T) {
	p := NewPlayer(nil)
	now := time.Unix(100, 0)
	p.now = func() time.Time { return now }

	p.Click()
	first := p.lastClick
	assert.Equal(t, now, first)

	now = now.Add(minClickGap / 2)
	p.Click()
	assert.Equal(t, first, p.lastClick, "click inside the gap is dropped")

	now = now.Add(minClickGap)
	p.Click()
	assert.Equal(t, now, p.lastClick)
}
