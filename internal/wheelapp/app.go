// Package wheelapp wires the wheel session, widgets, sound and configuration
// together to present the MiniWheel window.
package wheelapp

import (
	"image/color"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/edward-ap/miniwheel/internal/config"
	"github.com/edward-ap/miniwheel/internal/platform/win/windowpos"
	"github.com/edward-ap/miniwheel/internal/sound"
	"github.com/edward-ap/miniwheel/internal/ui"
	"github.com/edward-ap/miniwheel/internal/wheel"
)

const (
	editorWidth  = 260
	wheelMinSide = 320
)

// App owns the fyne application, the main window, the wheel session and its
// widgets. User input goes to the Session; widgets follow the Binding.
type App struct {
	fa     fyne.App
	w      fyne.Window
	config *config.Config
	log    *slog.Logger

	frames  *ui.FrameTicker
	session *wheel.Session
	bind    *Binding
	sound   *sound.Player

	// widgets
	wheelView *ui.WheelView
	spinBtn   *widget.Button
	editorBtn *widget.Button
	volBtn    *widget.Button
	volSlider *ui.VolumeSlider
	ind       *ui.SpinIndicator
	banner    *ui.ResultBanner
	editor    *editor

	shortcutCatcher *shortcutCatcher

	root      fyne.CanvasObject
	editorBox *fyne.Container
	saveTimer *time.Timer
}

// NewApp builds the window for one run. Flags override the saved sound
// preference and the seed labels for this run only.
func NewApp(flags config.Flags, log *slog.Logger) *App {
	if log == nil {
		log = slog.Default()
	}
	cfg, err := config.Load()
	if err != nil {
		log.Warn("config load error", "error", err)
		cfg = &config.Config{
			WindowW: config.DefaultWidth,
			WindowH: config.DefaultHeight,
			Volume:  config.DefaultVolume,
		}
	}

	fa := app.NewWithID(config.AppID)
	ui.UseWheelTheme()
	if AppIcon != nil {
		fa.SetIcon(AppIcon)
	}
	w := fa.NewWindow("MiniWheel")
	w.SetMaster()
	if AppIcon != nil {
		w.SetIcon(AppIcon)
	}
	w.Resize(fyne.NewSize(float32(cfg.WindowW), float32(cfg.WindowH)))

	var rng wheel.Source
	if flags.HasSeed {
		rng = wheel.NewSource(flags.Seed)
		log.Info("using fixed seed", "seed", flags.Seed)
	} else {
		rng = wheel.NewTimeSource()
	}
	frames := ui.NewFrameTicker(ui.DefaultFrameInterval)
	sp := wheel.NewSpinner(wheel.DefaultConfig(), wheel.SystemClock{}, frames, rng)
	sp.SetLogger(log)

	labels := wheel.DefaultLabels
	if len(flags.Options) >= wheel.MinOptions {
		labels = flags.Options
	}
	session := wheel.NewSession(labels, sp)
	session.SetEditorCollapsed(cfg.EditorCollapsed)

	a := &App{
		fa:      fa,
		w:       w,
		config:  cfg,
		log:     log,
		frames:  frames,
		session: session,
		bind:    NewBinding(session),
		sound:   sound.NewPlayer(log),
	}

	a.buildUI()
	a.wireSession()
	a.restoreWindowPlacement()

	muted := cfg.Muted || flags.Mute
	a.updateVolumeIcon(muted)
	// the speaker may take a moment to open; the wheel works without it
	go func() {
		if err := a.sound.Init(cfg.Volume, muted); err != nil {
			log.Warn("sound disabled", "error", err)
		}
	}()

	w.SetCloseIntercept(func() {
		sz := w.Canvas().Size()
		cfg.WindowW = int(sz.Width)
		cfg.WindowH = int(sz.Height)
		cfg.EditorCollapsed = session.EditorCollapsed()
		a.captureWindowPlacement()
		if a.saveTimer != nil {
			a.saveTimer.Stop()
		}
		if err := cfg.Save(); err != nil {
			log.Warn("config save error", "error", err)
		}
		a.banner.Close()
		a.ind.SetActive(false)
		session.Close()
		frames.Close()
		a.sound.Release()
		w.Close()
		fa.Quit()
	})

	w.Canvas().SetOnTypedKey(a.handleShortcutKey)
	return a
}

// Run shows the window and enters the fyne event loop.
func (a *App) Run() {
	a.w.ShowAndRun()
}

// wireSession connects session events to sound and the bound widgets.
func (a *App) wireSession() {
	a.session.SetOnResult(func(label string) {
		a.log.Info("spin settled", "result", label)
		a.sound.Chime()
	})
	a.bind.SetOnBoundary(func(int) { a.sound.Click() })
	a.bind.SetOnSync(func() { ui.CallOnMain(a.editor.refresh) })

	a.wheelView.BindRotation(a.bind.Rotation)
	a.wheelView.BindLabels(a.bind.Labels)
	a.banner.Follow(a.bind.Message)

	onString(a.bind.SpinLabel, func(s string) { a.spinBtn.SetText(s) })
	onBool(a.bind.CanSpin, func(ok bool) { setEnabled(a.spinBtn, ok) })
	onBool(a.bind.Spinning, func(on bool) { a.ind.SetActive(on) })
	onBool(a.bind.EditorCollapsed, a.showEditor)
}

// onString calls fn on the UI thread with each new value of b.
func onString(b binding.String, fn func(string)) {
	b.AddListener(binding.NewDataListener(func() {
		v, err := b.Get()
		if err != nil {
			return
		}
		ui.CallOnMain(func() { fn(v) })
	}))
}

// onBool calls fn on the UI thread with each new value of b.
func onBool(b binding.Bool, fn func(bool)) {
	b.AddListener(binding.NewDataListener(func() {
		v, err := b.Get()
		if err != nil {
			return
		}
		ui.CallOnMain(func() { fn(v) })
	}))
}

func (a *App) buildUI() {
	if a.shortcutCatcher == nil {
		a.shortcutCatcher = newShortcutCatcher(a.handleShortcutKey)
	}

	a.wheelView = ui.NewWheelView(a.session.DisplayLabels(), wheelMinSide)

	// --- SPIN -----------------------------------------------------------

	a.spinBtn = widget.NewButtonWithIcon(SpinText, theme.MediaReplayIcon(), a.spin)
	a.spinBtn.Importance = widget.HighImportance
	a.ind = ui.NewSpinIndicator(12)

	// --- RESULT ---------------------------------------------------------

	resultLbl := widget.NewLabel("")
	resultLbl.Alignment = fyne.TextAlignCenter
	resultLbl.TextStyle = fyne.TextStyle{Bold: true}
	resultLbl.Truncation = fyne.TextTruncateClip
	resultWrap := container.NewStack(resultLbl)
	a.banner = ui.NewResultBanner(resultLbl, resultWrap)

	bannerBg := canvas.NewRectangle(color.NRGBA{0xe5, 0x39, 0x35, 0x24})
	bannerBg.CornerRadius = 6
	banner := container.NewStack(bannerBg, container.NewPadded(resultWrap))

	// --- SOUND + EDITOR TOGGLE -----------------------------------------

	a.volBtn = widget.NewButtonWithIcon("", theme.VolumeUpIcon(), a.toggleMute)
	a.volBtn.Importance = widget.LowImportance

	a.volSlider = ui.NewVolumeSlider(float64(a.config.Volume))
	a.volSlider.OnChanged = func(v float64) {
		vv := int(v + 0.5)
		a.sound.SetVolume(vv)
		a.config.Volume = vv
		if a.saveTimer != nil {
			a.saveTimer.Stop()
		}
		a.saveTimer = time.AfterFunc(400*time.Millisecond, func() { _ = a.config.Save() })
	}

	a.editorBtn = widget.NewButtonWithIcon("", theme.ListIcon(), a.toggleEditor)
	a.editorBtn.Importance = widget.LowImportance

	controls := container.NewHBox(
		a.ind.CanvasObject(),
		a.spinBtn,
		layout.NewSpacer(),
		a.volBtn,
		container.NewCenter(a.volSlider),
		widget.NewSeparator(),
		a.editorBtn,
	)

	wheelPane := container.NewBorder(
		nil,
		container.NewVBox(banner, controls),
		nil, nil,
		a.wheelView,
	)

	// --- EDITOR ---------------------------------------------------------

	a.editor = newEditor(a.session)
	editorMin := canvas.NewRectangle(color.NRGBA{0, 0, 0, 0})
	editorMin.SetMinSize(fyne.NewSize(editorWidth, 1))
	a.editorBox = container.NewStack(editorMin, container.NewPadded(a.editor.CanvasObject()))
	if a.session.EditorCollapsed() {
		a.editorBox.Hide()
	}

	body := container.NewBorder(nil, nil, nil,
		container.NewHBox(widget.NewSeparator(), a.editorBox),
		container.NewPadded(wheelPane),
	)

	a.shortcutCatcher.Resize(fyne.NewSize(1, 1))
	a.shortcutCatcher.Move(fyne.NewPos(-5, -5))
	a.root = container.NewStack(body, container.NewWithoutLayout(a.shortcutCatcher))
	a.w.SetContent(a.root)
	a.ensureShortcutFocus()
}

// spin starts a spin from the button or the keyboard.
func (a *App) spin() {
	if !a.session.TriggerSpin() {
		a.log.Debug("spin refused", "spinning", a.session.IsSpinning(), "canSpin", a.session.CanSpin())
	}
	a.ensureShortcutFocus()
}

// respin abandons the running spin and starts another.
func (a *App) respin() {
	if !a.session.Respin() {
		a.log.Debug("respin refused", "canSpin", a.session.CanSpin())
	}
}

func (a *App) toggleEditor() {
	a.session.ToggleEditor()
	a.ensureShortcutFocus()
}

func (a *App) showEditor(collapsed bool) {
	if collapsed {
		a.editorBox.Hide()
	} else {
		a.editorBox.Show()
	}
	a.root.Refresh()
}

func (a *App) toggleMute() {
	muted := a.sound.ToggleMute()
	a.config.Muted = muted
	a.updateVolumeIcon(muted)
	_ = a.config.Save()
}

func (a *App) updateVolumeIcon(muted bool) {
	if muted {
		a.volBtn.SetIcon(theme.VolumeMuteIcon())
		a.volSlider.Disable()
	} else {
		a.volBtn.SetIcon(theme.VolumeUpIcon())
		a.volSlider.Enable()
	}
}

func (a *App) restoreWindowPlacement() {
	windowpos.Restore(a.w, windowpos.Placement{
		X:     a.config.WindowX,
		Y:     a.config.WindowY,
		Valid: a.config.WindowPosValid,
	})
}

func (a *App) captureWindowPlacement() {
	if p := windowpos.Capture(a.w); p.Valid {
		a.config.WindowX, a.config.WindowY = p.X, p.Y
		a.config.WindowPosValid = true
	}
}

// handleShortcutKey centralizes keyboard shortcuts regardless of which widget
// currently owns focus.
func (a *App) handleShortcutKey(ke *fyne.KeyEvent) {
	if ke == nil {
		return
	}
	switch ke.Name {
	case fyne.KeySpace, fyne.KeyReturn, fyne.KeyEnter:
		a.spin()
	case fyne.KeyR:
		a.respin()
	case fyne.KeyE:
		a.toggleEditor()
	case fyne.KeyM:
		a.toggleMute()
	}
}

// ensureShortcutFocus parks focus on the invisible key catcher so shortcuts
// work after clicking a button.
func (a *App) ensureShortcutFocus() {
	if a == nil || a.w == nil || a.shortcutCatcher == nil {
		return
	}
	ui.CallOnMain(func() {
		if a.w != nil && a.shortcutCatcher != nil {
			a.w.Canvas().Focus(a.shortcutCatcher)
		}
	})
}

type shortcutCatcher struct {
	widget.BaseWidget
	onKey func(*fyne.KeyEvent)
}

func newShortcutCatcher(handler func(*fyne.KeyEvent)) *shortcutCatcher {
	c := &shortcutCatcher{onKey: handler}
	c.ExtendBaseWidget(c)
	return c
}

func (s *shortcutCatcher) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(color.NRGBA{0, 0, 0, 0})
	rect.SetMinSize(fyne.NewSize(1, 1))
	return widget.NewSimpleRenderer(rect)
}

func (s *shortcutCatcher) MinSize() fyne.Size {
	return fyne.NewSize(1, 1)
}

func (s *shortcutCatcher) Resize(size fyne.Size) {
	s.BaseWidget.Resize(fyne.NewSize(1, 1))
}

func (s *shortcutCatcher) FocusGained() {}

func (s *shortcutCatcher) FocusLost() {}

func (s *shortcutCatcher) TypedKey(ev *fyne.KeyEvent) {
	if s.onKey != nil {
		s.onKey(ev)
	}
}

func (s *shortcutCatcher) TypedRune(r rune) {}
