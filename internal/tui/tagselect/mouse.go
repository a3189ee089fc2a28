package tagselect

import tea "github.com/charmbracelet/bubbletea"

// handleMouse applies a mouse event given in widget-local coordinates.
// Only left presses and wheel events are handled.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	g := m.geometry()
	h := g.hitTest(msg.X, msg.Y, m.layout.Field.ContentOffset())

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if h.kind == hitRow || h.kind == hitDropdown {
			step := m.layout.Dropdown.WheelStep
			if msg.Button == tea.MouseButtonWheelUp {
				step = -step
			}
			m.scroll(step)
		}
		return m, nil

	case tea.MouseButtonLeft:
	default:
		return m, nil
	}

	switch h.kind {
	case hitOutside:
		m.Blur()
		return m, nil

	case hitChipRemove:
		return m, m.remove(h.tag)

	case hitField:
		return m, m.Focus()

	case hitRow:
		filtered := m.filtered()
		if h.row < len(filtered) {
			return m, m.commit(filtered[h.row].Option)
		}
		if value, ok := m.Freeform(); ok {
			return m, m.commit(value)
		}
	}

	return m, nil
}
