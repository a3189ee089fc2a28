package tagselect

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the tag selector.
type Styles struct {
	Field        lipgloss.Style // Tag field box while blurred
	FieldFocused lipgloss.Style // Tag field box while focused
	Chip         lipgloss.Style // Selected tag chip body
	ChipRemove   lipgloss.Style // ✕ affordance inside a chip
	Input        lipgloss.Style // Typed text
	Placeholder  lipgloss.Style
	Dropdown     lipgloss.Style // Dropdown box
	Row          lipgloss.Style
	RowSelected  lipgloss.Style // Highlighted row, or every row in select-all mode
	NewValue     lipgloss.Style // "(new value)" suffix of the freeform row
	Status       lipgloss.Style // Scroll and select-all indicator line
	Empty        lipgloss.Style
}

// DefaultStyles returns the default style configuration.
// Grayscale with a single desaturated teal accent.
func DefaultStyles() Styles {
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"} // main text
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}  // secondary text
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}  // desaturated teal
	border := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#505050"}  // inactive borders
	ink := lipgloss.Color("#1A1A1A")                                      // text on accent

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	return Styles{
		Field:        box.BorderForeground(border),
		FieldFocused: box.BorderForeground(accent),

		Chip: lipgloss.NewStyle().
			Background(accent).
			Foreground(ink),

		ChipRemove: lipgloss.NewStyle().
			Background(accent).
			Foreground(ink).
			Bold(true),

		Input: lipgloss.NewStyle().
			Foreground(primary),

		Placeholder: lipgloss.NewStyle().
			Foreground(subtle),

		Dropdown: box.BorderForeground(border),

		Row: lipgloss.NewStyle().
			Foreground(primary),

		RowSelected: lipgloss.NewStyle().
			Background(accent).
			Foreground(ink),

		NewValue: lipgloss.NewStyle().
			Foreground(subtle).
			Italic(true),

		Status: lipgloss.NewStyle().
			Foreground(subtle),

		Empty: lipgloss.NewStyle().
			Foreground(subtle),
	}
}
