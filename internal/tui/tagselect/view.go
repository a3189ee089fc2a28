package tagselect

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/tagsel/internal/match"
	"github.com/nikbrunner/tagsel/internal/tui/layout"
)

// Matched spans are bold+underlined with explicit off codes, so the row
// background set by the surrounding style survives.
const (
	matchOn  = "\x1b[1;4m"
	matchOff = "\x1b[22;24m"
)

// View renders the tag field and, when open, the dropdown.
func (m Model) View() string {
	g := m.geometry()

	parts := []string{m.renderField(g.field)}
	if g.dropdown != nil {
		parts = append(parts, m.renderDropdown(*g.dropdown))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Height returns the number of rows View currently occupies.
func (m Model) Height() int {
	return m.geometry().height()
}

func (m Model) boxWidth() int {
	return m.layout.Field.Width - 2*m.layout.Field.BorderWidth
}

func (m Model) renderField(g fieldGeometry) string {
	contentWidth := m.layout.Field.ContentWidth()
	rows := make([]strings.Builder, g.rows)
	cols := make([]int, g.rows)

	pad := func(row, x int) {
		if x > cols[row] {
			rows[row].WriteString(strings.Repeat(" ", x-cols[row]))
			cols[row] = x
		}
	}

	for _, c := range g.chips {
		pad(c.row, c.x)
		rows[c.row].WriteString(m.styles.Chip.Render(" " + c.label + " "))
		rows[c.row].WriteString(m.styles.ChipRemove.Render("✕"))
		rows[c.row].WriteString(m.styles.Chip.Render(" "))
		cols[c.row] += c.width
	}

	input := m.input
	input.Width = g.inputWidth - 1 // leave a cell for the cursor
	if input.Width < 1 {
		input.Width = 1
	}
	pad(g.inputRow, g.inputX)
	rows[g.inputRow].WriteString(layout.TruncateANSIAware(input.View(), g.inputWidth, m.layout.Text))

	lines := make([]string, g.rows)
	for i := range rows {
		lines[i] = layout.PadRight(rows[i].String(), contentWidth)
	}

	style := m.styles.Field
	if m.input.Focused() {
		style = m.styles.FieldFocused
	}
	return style.Width(m.boxWidth()).Render(strings.Join(lines, "\n"))
}

func (m Model) renderDropdown(d dropdownGeometry) string {
	contentWidth := m.layout.Field.ContentWidth()
	filtered := m.filtered()
	freeform, hasFreeform := m.Freeform()

	var lines []string
	if d.total == 0 {
		lines = append(lines, m.styles.Empty.Render(layout.PadRight("no matches", contentWidth)))
	}

	for i := d.start; i < d.end; i++ {
		if i < len(filtered) {
			selected := m.selectAll || i == m.highlighted
			lines = append(lines, m.renderOption(filtered[i], selected, contentWidth))
			continue
		}
		if hasFreeform {
			lines = append(lines, m.renderFreeform(freeform, contentWidth))
		}
	}

	if d.status {
		lines = append(lines, m.styles.Status.Render(layout.PadRight(m.statusLine(d, len(filtered)), contentWidth)))
	}

	return m.styles.Dropdown.Width(m.boxWidth()).Render(strings.Join(lines, "\n"))
}

func (m Model) renderOption(r match.Result, selected bool, width int) string {
	prefix := "  "
	style := m.styles.Row
	if selected {
		prefix = "▸ "
		style = m.styles.RowSelected
	}

	text := highlightMatches(r.Option, r.MatchedIndexes)
	text = layout.TruncateANSIAware(text, width-layout.VisibleLength(prefix), m.layout.Text)
	return style.Render(layout.PadRight(prefix+text, width))
}

func (m Model) renderFreeform(value string, width int) string {
	suffix := " (new value)"
	text, _ := layout.TruncateText(value, width-2-layout.VisibleLength(suffix), m.layout.Text)
	line := "  " + text + m.styles.NewValue.Render(suffix)
	return m.styles.Row.Render(layout.PadRight(line, width))
}

func (m Model) statusLine(d dropdownGeometry, filtered int) string {
	var parts []string
	if m.selectAll {
		parts = append(parts, fmt.Sprintf("enter adds all %d", filtered))
	}
	if d.total > d.end-d.start {
		parts = append(parts, fmt.Sprintf("%d-%d of %d", d.start+1, d.end, d.total))
	}
	return strings.Join(parts, " · ")
}

// highlightMatches wraps matched runes of s in bold+underline codes.
// Consecutive matched runes share one span.
func highlightMatches(s string, indexes []int) string {
	if len(indexes) == 0 {
		return s
	}

	matched := make(map[int]bool, len(indexes))
	for _, idx := range indexes {
		matched[idx] = true
	}

	var b strings.Builder
	inSpan := false
	for i, r := range s {
		if matched[i] != inSpan {
			if inSpan {
				b.WriteString(matchOff)
			} else {
				b.WriteString(matchOn)
			}
			inSpan = !inSpan
		}
		b.WriteRune(r)
	}
	if inSpan {
		b.WriteString(matchOff)
	}
	return b.String()
}
