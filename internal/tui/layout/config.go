package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Field    FieldConfig
	Dropdown DropdownConfig
	Input    InputConfig
	Text     TextConfig
}

// FieldConfig holds tag field (chips + input) configuration.
type FieldConfig struct {
	// Width is the outer width of the tag field box including borders.
	// The dropdown box uses the same width.
	Width int

	// MinWidth is the smallest field width, used when the terminal is narrow.
	MinWidth int

	// BorderWidth is the width of one vertical border column.
	BorderWidth int

	// HorizontalPadding is the padding between border and content on each side.
	HorizontalPadding int

	// ChipGap is the number of blank columns between adjacent chips.
	ChipGap int

	// MinInputWidth is the narrowest input that may share a row with chips.
	// When less room remains, the input wraps onto its own row.
	MinInputWidth int
}

// DropdownConfig holds dropdown list configuration.
type DropdownConfig struct {
	// MaxVisible is the number of rows shown before the list scrolls.
	MaxVisible int

	// WheelStep is how many rows a single mouse wheel notch scrolls.
	WheelStep int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	CharLimit   int
	Placeholder string
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// ContentWidth returns the usable width inside the field and dropdown boxes.
func (f FieldConfig) ContentWidth() int {
	w := f.Width - 2*f.BorderWidth - 2*f.HorizontalPadding
	if w < 1 {
		return 1
	}
	return w
}

// ContentOffset returns the column of the first content cell inside a box.
func (f FieldConfig) ContentOffset() int {
	return f.BorderWidth + f.HorizontalPadding
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Field: FieldConfig{
			Width:             44,
			MinWidth:          20,
			BorderWidth:       1,
			HorizontalPadding: 1,
			ChipGap:           1,
			MinInputWidth:     10,
		},
		Dropdown: DropdownConfig{
			MaxVisible: 5, // matches a max-h-40 list of p-2 rows
			WheelStep:  1,
		},
		Input: InputConfig{
			CharLimit:   100,
			Placeholder: "Try me...",
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
