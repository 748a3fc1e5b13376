package wheelapp

import (
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/edward-ap/miniwheel/internal/wheel"
)

// editor is the option list panel: one entry and remove button per option
// plus an add button. Rows are rebuilt only when options are added or
// removed so typing keeps focus.
type editor struct {
	session *wheel.Session

	rows    *fyne.Container
	addBtn  *widget.Button
	root    fyne.CanvasObject
	ids     []uuid.UUID
	entries []*widget.Entry
	removes []*widget.Button
}

func newEditor(s *wheel.Session) *editor {
	e := &editor{
		session: s,
		rows:    container.NewVBox(),
	}
	e.addBtn = widget.NewButtonWithIcon("Add option", theme.ContentAddIcon(), func() {
		e.session.AddOption()
	})
	title := widget.NewLabelWithStyle("Options", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	e.root = container.NewBorder(
		title,
		e.addBtn,
		nil, nil,
		container.NewVScroll(e.rows),
	)
	e.refresh()
	return e
}

// CanvasObject returns the panel.
func (e *editor) CanvasObject() fyne.CanvasObject { return e.root }

// refresh brings the rows in line with the session. Must run on the UI
// thread.
func (e *editor) refresh() {
	opts := e.session.Options()
	ids := make([]uuid.UUID, len(opts))
	for i, o := range opts {
		ids[i] = o.ID
	}
	if !slices.Equal(ids, e.ids) {
		e.rebuild(opts)
		e.ids = ids
	}

	locked := e.session.IsSpinning()
	canRemove := len(opts) > wheel.MinOptions
	for i, en := range e.entries {
		setEnabled(en, !locked)
		setEnabled(e.removes[i], !locked && canRemove)
	}
	setEnabled(e.addBtn, !locked)
}

func (e *editor) rebuild(opts []wheel.Option) {
	e.rows.RemoveAll()
	e.entries = e.entries[:0]
	e.removes = e.removes[:0]
	for i, o := range opts {
		idx := i
		en := widget.NewEntry()
		en.SetPlaceHolder(wheel.PlaceholderLabel(i))
		en.SetText(o.Label)
		en.OnChanged = func(s string) { e.session.SetOptionLabel(idx, s) }

		rm := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
			e.session.RemoveOption(idx)
		})
		rm.Importance = widget.LowImportance

		e.entries = append(e.entries, en)
		e.removes = append(e.removes, rm)
		e.rows.Add(container.NewBorder(nil, nil, nil, rm, en))
	}
	e.rows.Refresh()
}

type disableable interface {
	Enable()
	Disable()
	Disabled() bool
}

func setEnabled(w disableable, on bool) {
	if on == !w.Disabled() {
		return
	}
	if on {
		w.Enable()
	} else {
		w.Disable()
	}
}
