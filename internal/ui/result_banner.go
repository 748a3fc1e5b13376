package ui

import (
	"context"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
)

// ResultBanner shows the result message under the wheel. Text that does
// not fit its container scrolls as a marquee. SetText is safe to call from
// any goroutine.
type ResultBanner struct {
	lbl    *widget.Label
	parent fyne.CanvasObject // container used to measure visible width
	bind   binding.String

	mu       sync.Mutex
	cancel   context.CancelFunc
	lastText string

	speed   time.Duration
	padding string
}

// NewResultBanner creates a banner drawing into lbl and measuring overflow
// against parent.
func NewResultBanner(lbl *widget.Label, parent fyne.CanvasObject) *ResultBanner {
	b := binding.NewString()
	lbl.Bind(b)
	return &ResultBanner{
		lbl:     lbl,
		parent:  parent,
		bind:    b,
		speed:   140 * time.Millisecond,
		padding: "    ",
	}
}

// Follow mirrors a string binding into the banner.
func (r *ResultBanner) Follow(src binding.String) {
	src.AddListener(binding.NewDataListener(func() {
		s, err := src.Get()
		if err != nil {
			return
		}
		r.SetText(s)
	}))
}

// Text returns the last text set, before any scrolling.
func (r *ResultBanner) Text() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastText
}

// Close stops any scrolling goroutine.
func (r *ResultBanner) Close() {
	r.mu.Lock()
	r.stopLocked()
	r.mu.Unlock()
}

func (r *ResultBanner) stopLocked() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

// SetText shows text and starts a marquee if it overflows.
func (r *ResultBanner) SetText(text string) {
	r.mu.Lock()
	if text == r.lastText && r.cancel != nil {
		r.mu.Unlock()
		return
	}
	r.stopLocked()
	r.lastText = text
	r.mu.Unlock()

	_ = r.bind.Set(text)

	needed := measureLabelTextWidth(r.lbl, text)
	if r.parent == nil || !bannerNeedsScroll(needed, r.parent.Size().Width) {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	r.mu.Lock()
	r.cancel = cancel
	r.mu.Unlock()

	go r.scroll(ctx, text, needed)
}

func (r *ResultBanner) scroll(ctx context.Context, orig string, needed float32) {
	work := []rune(r.padding + orig + r.padding)
	offset := 0
	t := time.NewTicker(r.speed)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.mu.Lock()
			current := r.lastText
			r.mu.Unlock()
			if current != orig || !bannerNeedsScroll(needed, r.parent.Size().Width) {
				_ = r.bind.Set(current)
				return
			}
			offset = (offset + 1) % len(work)
			_ = r.bind.Set(marqueeFrame(work, offset))
		}
	}
}

// marqueeFrame rotates work left by offset runes.
func marqueeFrame(work []rune, offset int) string {
	if len(work) == 0 {
		return ""
	}
	offset %= len(work)
	if offset == 0 {
		return string(work)
	}
	return string(work[offset:]) + string(work[:offset])
}

// measureLabelTextWidth estimates the width lbl would need for text.
func measureLabelTextWidth(lbl *widget.Label, text string) float32 {
	if lbl == nil {
		return 0
	}
	tmp := widget.NewLabel(text)
	tmp.Alignment = lbl.Alignment
	tmp.TextStyle = lbl.TextStyle
	tmp.Importance = lbl.Importance
	tmp.Wrapping = fyne.TextWrapOff
	tmp.Refresh()
	return tmp.MinSize().Width
}
