// Package tagselect implements a tag-style multi-select input.
//
// The user types to filter a fixed option list, picks options with the
// keyboard or mouse, adds freeform tags, and removes tags again. Filtered
// options are always derived from (options, input, selection) and never
// stored.
package tagselect

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/tagsel/internal/catalog"
	"github.com/nikbrunner/tagsel/internal/match"
	"github.com/nikbrunner/tagsel/internal/tui/layout"
)

// SelectionChangedMsg is sent after a commit or removal changes the selection.
type SelectionChangedMsg struct {
	Tags []string
}

// Model is the bubbletea model for the tag selector.
type Model struct {
	options  []string
	catalog  catalog.Catalog
	matcher  match.Matcher
	keys     KeyMap
	styles   Styles
	layout   layout.LayoutConfig
	commands []command

	input    textinput.Model
	selected Selection

	highlighted int  // index into filtered options, -1 = none
	open        bool // dropdown visible
	selectAll   bool // select-all mode toggled by ctrl+a
	offset      int  // first visible dropdown row
}

// Params holds parameters for creating a new Model.
type Params struct {
	Options []string
	Matcher match.Matcher        // optional, substring matching if nil
	Keys    *KeyMap              // optional, uses default if nil
	Styles  *Styles              // optional, uses default if nil
	Layout  *layout.LayoutConfig // optional, uses default if nil
}

// New creates a new tag selector over params.Options.
// The selector starts blurred with the dropdown closed.
func New(params Params) Model {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	cfg := layout.DefaultConfig()
	if params.Layout != nil {
		cfg = *params.Layout
	}

	matcher := params.Matcher
	if matcher == nil {
		matcher = match.Substring{}
	}

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = cfg.Input.Placeholder
	input.CharLimit = cfg.Input.CharLimit
	input.TextStyle = styles.Input
	input.PlaceholderStyle = styles.Placeholder

	cat := catalog.New(params.Options)

	return Model{
		options:     cat.Options(),
		catalog:     cat,
		matcher:     matcher,
		keys:        keys,
		styles:      styles,
		layout:      cfg,
		commands:    newCommands(keys),
		input:       input,
		highlighted: -1,
	}
}

// Init implements tea.Model. It enables mouse reporting, which the
// outside-click handling depends on; call Teardown before quitting.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnableMouseCellMotion, textinput.Blink)
}

// Teardown releases the mouse subscription acquired by Init.
func (m Model) Teardown() tea.Cmd {
	return tea.DisableMouse
}

// Update implements the bubbletea update loop for the selector.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.input.Focused() {
			return m, nil
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Focus focuses the input and opens the dropdown.
func (m *Model) Focus() tea.Cmd {
	m.open = true
	return m.input.Focus()
}

// Blur closes the dropdown, leaves select-all mode and blurs the input.
// Typed text and the selection are kept.
func (m *Model) Blur() {
	m.open = false
	m.selectAll = false
	m.input.Blur()
}

// SetWidth sets the outer width of the field and dropdown boxes.
func (m *Model) SetWidth(width int) {
	m.layout.Field.Width = width
}

// Width returns the outer width of the field and dropdown boxes.
func (m Model) Width() int {
	return m.layout.Field.Width
}

// Focused reports whether the input has focus.
func (m Model) Focused() bool {
	return m.input.Focused()
}

// Selected returns the selected tags in insertion order.
func (m Model) Selected() []string {
	return m.selected.Values()
}

// Value returns the typed text.
func (m Model) Value() string {
	return m.input.Value()
}

// Highlighted returns the highlighted index into Filtered, or -1.
func (m Model) Highlighted() int {
	return m.highlighted
}

// DropdownOpen reports whether the dropdown is visible.
func (m Model) DropdownOpen() bool {
	return m.open
}

// SelectAllActive reports whether select-all mode is on.
func (m Model) SelectAllActive() bool {
	return m.selectAll
}

// ScrollOffset returns the first visible dropdown row.
func (m Model) ScrollOffset() int {
	return m.offset
}

// Filtered returns the options matching the typed text that are not
// selected, in option-list order.
func (m Model) Filtered() []string {
	return match.Options(m.filtered())
}

func (m Model) filtered() []match.Result {
	return match.Filter(m.matcher, m.options, m.input.Value(), m.selected.Contains)
}

// Freeform returns the trimmed typed text when it can be offered as a new
// tag: non-empty, not an option, and not already selected.
func (m Model) Freeform() (string, bool) {
	value := strings.TrimSpace(m.input.Value())
	if value == "" || m.catalog.Contains(value) || m.selected.Contains(value) {
		return "", false
	}
	return value, true
}

// rowCount returns the number of dropdown rows: filtered options plus the
// freeform suggestion row when shown.
func (m Model) rowCount(filtered int) int {
	if _, ok := m.Freeform(); ok {
		return filtered + 1
	}
	return filtered
}

// commit adds value to the selection and resets the input.
func (m *Model) commit(value string) tea.Cmd {
	added := m.selected.Add(value)
	m.resetAfterCommit()
	if added {
		return m.selectionChanged()
	}
	return nil
}

// commitAll adds every filtered option in order.
func (m *Model) commitAll() tea.Cmd {
	added := false
	for _, r := range m.filtered() {
		if m.selected.Add(r.Option) {
			added = true
		}
	}
	m.resetAfterCommit()
	if added {
		return m.selectionChanged()
	}
	return nil
}

func (m *Model) resetAfterCommit() {
	m.input.Reset()
	m.highlighted = -1
	m.open = false
	m.selectAll = false
	m.offset = 0
}

// remove deletes tag from the selection regardless of position. The
// removed tag re-enters the filtered options, so the highlight is cleared.
func (m *Model) remove(tag string) tea.Cmd {
	if !m.selected.Remove(tag) {
		return nil
	}
	m.highlighted = -1
	m.normalize()
	return m.selectionChanged()
}

// removeLast pops the most recently added tag.
func (m *Model) removeLast() tea.Cmd {
	if _, ok := m.selected.Pop(); !ok {
		return nil
	}
	m.highlighted = -1
	m.normalize()
	return m.selectionChanged()
}

// inputChanged applies the post-conditions of typing.
func (m *Model) inputChanged() {
	m.highlighted = -1
	m.open = true
	m.selectAll = false
	m.offset = 0
}

// move shifts the highlight by delta with circular wraparound.
// With no filtered options the highlight stays at -1.
func (m *Model) move(delta int) {
	n := len(m.filtered())
	if n == 0 {
		m.highlighted = -1
		return
	}

	switch {
	case delta > 0 && m.highlighted < n-1:
		m.highlighted++
	case delta > 0:
		m.highlighted = 0
	case m.highlighted > 0:
		m.highlighted--
	default:
		m.highlighted = n - 1
	}

	m.open = true
	m.offset = layout.ScrollIntoView(m.offset, m.highlighted, m.layout.Dropdown.MaxVisible, m.rowCount(n))
}

// scroll moves the dropdown window without changing the highlight.
func (m *Model) scroll(delta int) {
	rows := m.rowCount(len(m.filtered()))
	m.offset = layout.ClampOffset(m.offset+delta, m.layout.Dropdown.MaxVisible, rows)
}

// normalize restores the highlight and scroll invariants after the
// filtered options changed.
func (m *Model) normalize() {
	n := len(m.filtered())
	if m.highlighted >= n || m.highlighted < -1 {
		m.highlighted = -1
	}
	m.offset = layout.ScrollIntoView(m.offset, m.highlighted, m.layout.Dropdown.MaxVisible, m.rowCount(n))
}

func (m Model) selectionChanged() tea.Cmd {
	tags := m.selected.Values()
	return func() tea.Msg {
		return SelectionChangedMsg{Tags: tags}
	}
}
