package tagselect

import "github.com/nikbrunner/tagsel/internal/tui/layout"

// chipPadding is the blank cell on each side of a chip label, plus the
// ✕ affordance and its trailing blank: " label ✕ ".
const chipPadding = 4

// chipGeometry places one chip inside the field content area.
type chipGeometry struct {
	tag     string
	label   string // tag truncated to fit the field
	row     int
	x       int
	width   int
	removeX int // column of the ✕ affordance
}

// fieldGeometry is the flow layout of chips and input in the tag field.
// Columns and rows are relative to the field content area.
type fieldGeometry struct {
	chips      []chipGeometry
	inputRow   int
	inputX     int
	inputWidth int
	rows       int
}

// dropdownGeometry describes the visible window of the dropdown.
type dropdownGeometry struct {
	top        int // screen row of the dropdown's top border
	start, end int // visible rows[start:end]
	total      int
	status     bool // an indicator line follows the rows
	height     int  // including borders
}

// geometry is the full widget layout in widget-local screen coordinates.
// The same geometry drives rendering and mouse hit-testing.
type geometry struct {
	field       fieldGeometry
	fieldHeight int // including borders
	dropdown    *dropdownGeometry
	width       int
}

func (m Model) layoutField() fieldGeometry {
	cfg := m.layout.Field
	contentWidth := cfg.ContentWidth()

	var g fieldGeometry
	x, row := 0, 0
	for _, tag := range m.selected.tags {
		label, _ := layout.TruncateText(tag, contentWidth-chipPadding, m.layout.Text)
		width := layout.VisibleLength(label) + chipPadding

		if x > 0 && x+width > contentWidth {
			row++
			x = 0
		}

		g.chips = append(g.chips, chipGeometry{
			tag:     tag,
			label:   label,
			row:     row,
			x:       x,
			width:   width,
			removeX: x + width - 2,
		})
		x += width + cfg.ChipGap
	}

	inputWidth := contentWidth - x
	if x > 0 && inputWidth < cfg.MinInputWidth {
		row++
		x = 0
		inputWidth = contentWidth
	}

	g.inputRow = row
	g.inputX = x
	g.inputWidth = inputWidth
	g.rows = row + 1
	return g
}

func (m Model) geometry() geometry {
	field := m.layoutField()
	g := geometry{
		field:       field,
		fieldHeight: field.rows + 2,
		width:       m.layout.Field.Width,
	}

	if !m.open {
		return g
	}

	filtered := len(m.filtered())
	total := m.rowCount(filtered)
	maxVisible := m.layout.Dropdown.MaxVisible
	start, end := layout.VisibleRange(m.offset, maxVisible, total)

	d := &dropdownGeometry{
		top:    g.fieldHeight,
		start:  start,
		end:    end,
		total:  total,
		status: total > maxVisible || m.selectAll,
	}

	lines := end - start
	if total == 0 {
		lines = 1 // "no matches"
	}
	if d.status {
		lines++
	}
	d.height = lines + 2
	g.dropdown = d
	return g
}

// height returns the total widget height in rows.
func (g geometry) height() int {
	if g.dropdown == nil {
		return g.fieldHeight
	}
	return g.fieldHeight + g.dropdown.height
}

// hitKind classifies what a mouse position points at.
type hitKind int

const (
	hitOutside hitKind = iota
	hitField
	hitChipRemove
	hitRow
	hitDropdown // inside the dropdown box but not on a row
)

type hit struct {
	kind hitKind
	tag  string // hitChipRemove
	row  int    // hitRow: index into dropdown rows
}

// hitTest maps a widget-local position onto the layout.
func (g geometry) hitTest(x, y int, contentOffset int) hit {
	if x < 0 || x >= g.width || y < 0 || y >= g.height() {
		return hit{kind: hitOutside}
	}

	if y < g.fieldHeight {
		row := y - 1
		col := x - contentOffset
		for _, c := range g.field.chips {
			if c.row == row && col >= c.removeX && col < c.x+c.width {
				return hit{kind: hitChipRemove, tag: c.tag}
			}
		}
		return hit{kind: hitField}
	}

	d := g.dropdown
	line := y - d.top - 1
	if x > 0 && x < g.width-1 && line >= 0 && line < d.end-d.start {
		return hit{kind: hitRow, row: d.start + line}
	}
	return hit{kind: hitDropdown}
}
