package tagselect

import (
	"math/rand"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/tagsel/internal/tui/layout"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestSelection_AddRemovePop(t *testing.T) {
	s := NewSelection("a", "b", "a")
	assert.DeepEqual(t, s.Values(), []string{"a", "b"})

	assert.Assert(t, !s.Add("b"))
	assert.Assert(t, s.Add("c"))
	assert.Assert(t, s.Remove("b"))
	assert.Assert(t, !s.Remove("b"))
	assert.DeepEqual(t, s.Values(), []string{"a", "c"})

	last, ok := s.Pop()
	assert.Assert(t, ok)
	assert.Equal(t, last, "c")
	assert.Equal(t, s.Len(), 1)

	s.Pop()
	_, ok = s.Pop()
	assert.Assert(t, !ok)
	assert.Assert(t, is.Len(s.Values(), 0))
}

func TestSelection_CopiesDoNotAlias(t *testing.T) {
	a := NewSelection("x", "y")
	b := a
	b.Pop()
	b.Add("z")

	assert.DeepEqual(t, a.Values(), []string{"x", "y"})
	assert.DeepEqual(t, b.Values(), []string{"x", "z"})
}

// checkInvariants verifies the state relations that must hold after any
// sequence of events.
func checkInvariants(t *testing.T, m Model, options []string, step int) {
	t.Helper()

	selected := m.Selected()
	seen := map[string]bool{}
	for _, tag := range selected {
		assert.Assert(t, !seen[tag], "step %d: duplicate tag %q", step, tag)
		seen[tag] = true
	}

	query := strings.ToLower(m.Value())
	var want []string
	for _, o := range options {
		if strings.Contains(strings.ToLower(o), query) && !seen[o] {
			want = append(want, o)
		}
	}
	filtered := m.Filtered()
	assert.DeepEqual(t, filtered, append([]string{}, want...))

	assert.Assert(t, m.Highlighted() >= -1 && m.Highlighted() < len(filtered),
		"step %d: highlight %d out of range for %d options", step, m.Highlighted(), len(filtered))

	rows := m.rowCount(len(filtered))
	maxVisible := m.layout.Dropdown.MaxVisible
	assert.Equal(t, m.ScrollOffset(), layout.ClampOffset(m.ScrollOffset(), maxVisible, rows),
		"step %d: scroll offset out of range", step)
	if m.Highlighted() >= 0 {
		assert.Assert(t, m.Highlighted() >= m.ScrollOffset() && m.Highlighted() < m.ScrollOffset()+maxVisible,
			"step %d: highlight not visible", step)
	}
}

func TestInvariants_RandomEvents(t *testing.T) {
	options := []string{
		"Area Chart", "Bar Chart", "Bubble Chart", "Line Chart", "Pie Chart",
		"Radar Chart", "Scatter Plot", "Heatmap",
	}
	keys := []tea.KeyType{
		tea.KeyEnter, tea.KeyBackspace, tea.KeyUp, tea.KeyDown, tea.KeyCtrlA, tea.KeyEsc,
	}
	letters := []rune("abcehlprt ")

	rng := rand.New(rand.NewSource(7))
	m := newFocused(options...)

	for step := 0; step < 2000; step++ {
		switch n := rng.Intn(10); {
		case n < 4:
			m = typeText(m, string(letters[rng.Intn(len(letters))]))
		case n < 8:
			m, _ = press(m, keys[rng.Intn(len(keys))])
		default:
			m, _ = click(m, rng.Intn(50), rng.Intn(14))
		}
		if !m.Focused() {
			m.Focus()
		}
		checkInvariants(t, m, options, step)
	}
}
