package tagselect

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// command is one entry of the key dispatch table.
type command struct {
	name    string
	binding key.Binding
	when    func(m Model) bool // nil = always
	run     func(m *Model) tea.Cmd
}

// newCommands builds the dispatch table. Entries are tried in order and the
// first one whose binding matches and whose guard holds handles the key.
// A matched key is never forwarded to the text input.
func newCommands(keys KeyMap) []command {
	return []command{
		{
			name:    "toggle-select-all",
			binding: keys.SelectAll,
			run: func(m *Model) tea.Cmd {
				m.selectAll = !m.selectAll
				return nil
			},
		},
		{
			name:    "confirm-select-all",
			binding: keys.Confirm,
			when:    func(m Model) bool { return m.selectAll },
			run:     (*Model).commitAll,
		},
		{
			name:    "remove-last",
			binding: keys.RemoveLast,
			when: func(m Model) bool {
				return m.input.Value() == "" && m.selected.Len() > 0
			},
			run: (*Model).removeLast,
		},
		{
			name:    "confirm-highlighted",
			binding: keys.Confirm,
			when:    func(m Model) bool { return m.highlighted >= 0 },
			run: func(m *Model) tea.Cmd {
				return m.commit(m.filtered()[m.highlighted].Option)
			},
		},
		{
			name:    "confirm-freeform",
			binding: keys.Confirm,
			when: func(m Model) bool {
				return strings.TrimSpace(m.input.Value()) != ""
			},
			run: func(m *Model) tea.Cmd {
				return m.commit(strings.TrimSpace(m.input.Value()))
			},
		},
		{
			// Enter with nothing to commit is swallowed
			name:    "confirm-nothing",
			binding: keys.Confirm,
			run:     func(*Model) tea.Cmd { return nil },
		},
		{
			name:    "highlight-next",
			binding: keys.Down,
			run: func(m *Model) tea.Cmd {
				m.move(1)
				return nil
			},
		},
		{
			name:    "highlight-prev",
			binding: keys.Up,
			run: func(m *Model) tea.Cmd {
				m.move(-1)
				return nil
			},
		},
		{
			name:    "dismiss",
			binding: keys.Dismiss,
			run: func(m *Model) tea.Cmd {
				m.Blur()
				return nil
			},
		},
	}
}

// dispatch returns the command that handles msg, if any.
func (m Model) dispatch(msg tea.KeyMsg) (command, bool) {
	for _, c := range m.commands {
		if !key.Matches(msg, c.binding) {
			continue
		}
		if c.when == nil || c.when(m) {
			return c, true
		}
	}
	return command{}, false
}

// handleKey runs the matching command, or forwards the key to the text
// input and applies the typing post-conditions when the text changed.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if c, ok := m.dispatch(msg); ok {
		cmd := c.run(&m)
		m.normalize()
		return m, cmd
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.inputChanged()
	}
	return m, cmd
}
