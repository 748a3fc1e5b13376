package wheel

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionListIDsAreUniqueAndStable(t *testing.T) {
	l := NewOptionList(DefaultLabels)
	seen := map[uuid.UUID]bool{}
	for _, o := range l.Items() {
		require.NotEqual(t, uuid.Nil, o.ID)
		require.False(t, seen[o.ID], "duplicate id %s", o.ID)
		seen[o.ID] = true
	}

	id := l.Items()[3].ID
	require.True(t, l.SetLabel(3, "Udon"))
	assert.Equal(t, id, l.Items()[3].ID)
	assert.Equal(t, 3, l.IndexOf(id))

	require.True(t, l.RemoveAt(0))
	assert.Equal(t, 2, l.IndexOf(id))
	assert.Equal(t, -1, l.IndexOf(uuid.New()))
}

func TestOptionListAdd(t *testing.T) {
	l := NewOptionList([]string{"a", "b"})
	o := l.Add()
	assert.Equal(t, "", o.Label)
	assert.Equal(t, 3, l.Len())
	got, ok := l.At(2)
	require.True(t, ok)
	assert.Equal(t, o.ID, got.ID)
	assert.Equal(t, []string{"a", "b", "Item 3"}, l.DisplayLabels())
}

func TestOptionListRemoveAt(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		index  int
		ok     bool
		want   []string
	}{
		{name: "first of three", labels: []string{"a", "b", "c"}, index: 0, ok: true, want: []string{"b", "c"}},
		{name: "last of three", labels: []string{"a", "b", "c"}, index: 2, ok: true, want: []string{"a", "b"}},
		{name: "refuse at two", labels: []string{"a", "b"}, index: 0, ok: false, want: []string{"a", "b"}},
		{name: "out of range", labels: []string{"a", "b", "c"}, index: 3, ok: false, want: []string{"a", "b", "c"}},
		{name: "negative", labels: []string{"a", "b", "c"}, index: -1, ok: false, want: []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewOptionList(tt.labels)
			if got := l.RemoveAt(tt.index); got != tt.ok {
				t.Fatalf("RemoveAt(%d) = %v, want %v", tt.index, got, tt.ok)
			}
			assert.Equal(t, tt.want, l.DisplayLabels())
		})
	}
}

func TestDisplayLabelPlaceholder(t *testing.T) {
	tests := []struct {
		label string
		index int
		want  string
	}{
		{label: "Ramen", index: 0, want: "Ramen"},
		{label: "  Ramen  ", index: 0, want: "Ramen"},
		{label: "", index: 0, want: "Item 1"},
		{label: " \t ", index: 6, want: "Item 7"},
	}
	for _, tt := range tests {
		got := Option{Label: tt.label}.DisplayLabel(tt.index)
		if got != tt.want {
			t.Fatalf("DisplayLabel(%q, %d) = %q, want %q", tt.label, tt.index, got, tt.want)
		}
	}
}

func TestOptionListOutOfRange(t *testing.T) {
	l := NewOptionList([]string{"a", "b"})
	assert.False(t, l.SetLabel(5, "x"))
	_, ok := l.At(-1)
	assert.False(t, ok)
}
