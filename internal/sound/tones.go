package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const (
	clickDuration = 14 * time.Millisecond
	clickFreq     = 2400.0

	chimeNoteDuration = 650 * time.Millisecond
	chimeNoteGap      = 110 * time.Millisecond
	chimeLowFreq      = 1318.51 // E6
	chimeHighFreq     = 1975.53 // B6
)

// pluck is a sine partial with an exponential decay, optionally mixed with
// a little noise for a wooden tick. It stays silent for delay samples
// before sounding.
type pluck struct {
	rate  beep.SampleRate
	freq  float64
	amp   float64
	decay float64 // per second
	noise float64
	seed  uint32
	delay int
	pos   int
	total int
}

func newPluck(rate beep.SampleRate, freq, amp, decay, noise float64, d time.Duration) *pluck {
	return &pluck{
		rate:  rate,
		freq:  freq,
		amp:   amp,
		decay: decay,
		noise: noise,
		seed:  0x2545f491,
		total: rate.N(d),
	}
}

func (p *pluck) after(d time.Duration) *pluck {
	p.delay = p.rate.N(d)
	p.total += p.delay
	return p
}

func (p *pluck) Stream(samples [][2]float64) (n int, ok bool) {
	if p.pos >= p.total {
		return 0, false
	}
	for i := range samples {
		if p.pos >= p.total {
			return i, true
		}
		if p.pos < p.delay {
			samples[i] = [2]float64{}
			p.pos++
			continue
		}
		k := p.pos - p.delay
		t := float64(k) / float64(p.rate)
		env := math.Exp(-t * p.decay)
		// short linear attack avoids a pop at the start
		if a := float64(k) / float64(p.rate.N(2*time.Millisecond)+1); a < 1 {
			env *= a
		}

		v := math.Sin(2 * math.Pi * p.freq * t)
		if p.noise > 0 {
			p.seed = p.seed*1664525 + 1013904223
			v = v*(1-p.noise) + p.noise*(float64(p.seed)/math.MaxUint32*2-1)
		}
		v *= p.amp * env

		samples[i][0] = v
		samples[i][1] = v
		p.pos++
	}
	return len(samples), true
}

func (p *pluck) Err() error { return nil }

// chord sums several plucks and ends when the longest one does.
type chord struct {
	notes []*pluck
	buf   [][2]float64
}

func (c *chord) Stream(samples [][2]float64) (n int, ok bool) {
	if len(c.buf) < len(samples) {
		c.buf = make([][2]float64, len(samples))
	}
	clear(samples)
	for _, p := range c.notes {
		pn, pok := p.Stream(c.buf[:len(samples)])
		if !pok {
			continue
		}
		for i := 0; i < pn; i++ {
			samples[i][0] += c.buf[i][0]
			samples[i][1] += c.buf[i][1]
		}
		ok = true
		n = max(n, pn)
	}
	return n, ok
}

func (c *chord) Err() error { return nil }

// NewClick returns the tick played when a segment boundary passes the
// pointer.
func NewClick(rate beep.SampleRate) beep.Streamer {
	return newPluck(rate, clickFreq, 0.35, 260, 0.35, clickDuration)
}

// NewChime returns the two-note chime played when a spin settles.
func NewChime(rate beep.SampleRate) beep.Streamer {
	return &chord{notes: []*pluck{
		newPluck(rate, chimeLowFreq, 0.25, 5, 0, chimeNoteDuration),
		newPluck(rate, chimeHighFreq, 0.25, 4, 0, chimeNoteDuration).after(chimeNoteGap),
	}}
}

// withVolume scales s by vol in 0..1; zero is silent since log2(0) is -Inf.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
