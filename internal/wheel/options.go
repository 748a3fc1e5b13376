package wheel

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// MinOptions is the smallest option count that can be spun or kept after
// a removal.
const MinOptions = 2

// DefaultLabels is the seed set used when nothing else is supplied.
var DefaultLabels = []string{"Sushi", "Yakiniku", "Ramen", "Curry", "Pasta", "Pizza", "Gyoza", "Salad"}

// Option is one editable entry on the wheel.
type Option struct {
	ID    uuid.UUID
	Label string
}

// DisplayLabel returns the label to draw for the option at position i,
// substituting "Item N" for blank text. The stored label is untouched.
func (o Option) DisplayLabel(i int) string {
	if l := strings.TrimSpace(o.Label); l != "" {
		return l
	}
	return PlaceholderLabel(i)
}

// PlaceholderLabel names an unlabeled option by its 1-based position.
func PlaceholderLabel(i int) string {
	return fmt.Sprintf("Item %d", i+1)
}

// OptionList is an ordered list of options with stable identifiers.
type OptionList struct {
	items []Option
}

// NewOptionList seeds a list from labels, assigning fresh IDs.
func NewOptionList(labels []string) *OptionList {
	l := &OptionList{items: make([]Option, 0, len(labels))}
	for _, s := range labels {
		l.items = append(l.items, Option{ID: uuid.New(), Label: s})
	}
	return l
}

// Len returns the number of options.
func (l *OptionList) Len() int { return len(l.items) }

// At returns the option at index i.
func (l *OptionList) At(i int) (Option, bool) {
	if i < 0 || i >= len(l.items) {
		return Option{}, false
	}
	return l.items[i], true
}

// Items returns a copy of the options in order.
func (l *OptionList) Items() []Option {
	out := make([]Option, len(l.items))
	copy(out, l.items)
	return out
}

// DisplayLabels returns the drawable labels in order.
func (l *OptionList) DisplayLabels() []string {
	out := make([]string, len(l.items))
	for i, o := range l.items {
		out[i] = o.DisplayLabel(i)
	}
	return out
}

// Add appends an empty-labeled option and returns it.
func (l *OptionList) Add() Option {
	o := Option{ID: uuid.New()}
	l.items = append(l.items, o)
	return o
}

// RemoveAt deletes the option at index i. It refuses, returning false, when
// the index is out of range or the list would drop below MinOptions.
func (l *OptionList) RemoveAt(i int) bool {
	if i < 0 || i >= len(l.items) || len(l.items) <= MinOptions {
		return false
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return true
}

// SetLabel replaces the text of the option at index i.
func (l *OptionList) SetLabel(i int, text string) bool {
	if i < 0 || i >= len(l.items) {
		return false
	}
	l.items[i].Label = text
	return true
}

// IndexOf finds an option by ID.
func (l *OptionList) IndexOf(id uuid.UUID) int {
	for i, o := range l.items {
		if o.ID == id {
			return i
		}
	}
	return -1
}
