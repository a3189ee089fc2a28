package layout

// ClampWidth fits a preferred component width into the terminal.
// Leaves a margin of 4 columns and never goes below minWidth unless the
// terminal itself is narrower.
func ClampWidth(terminalWidth, preferred, minWidth int) int {
	width := preferred

	if width > terminalWidth-4 {
		width = terminalWidth - 4
	}
	if width < minWidth {
		width = minWidth
	}
	if width > terminalWidth {
		width = terminalWidth
	}
	if width < 1 {
		return 1
	}

	return width
}

// VisibleRange returns the start and end indices of a scroll window.
// Returns (start, end) where rows[start:end] should be displayed.
func VisibleRange(offset, maxVisible, totalRows int) (start, end int) {
	if maxVisible <= 0 || totalRows <= 0 {
		return 0, 0
	}
	if totalRows <= maxVisible {
		return 0, totalRows
	}

	start = ClampOffset(offset, maxVisible, totalRows)
	end = start + maxVisible
	if end > totalRows {
		end = totalRows
	}

	return start, end
}

// ClampOffset keeps a scroll offset within [0, totalRows-maxVisible].
func ClampOffset(offset, maxVisible, totalRows int) int {
	maxOffset := totalRows - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// ScrollIntoView returns the offset that makes row idx visible while moving
// the window as little as possible. A negative idx leaves the offset alone.
func ScrollIntoView(offset, idx, maxVisible, totalRows int) int {
	if idx < 0 || maxVisible <= 0 {
		return ClampOffset(offset, maxVisible, totalRows)
	}

	if idx < offset {
		offset = idx
	} else if idx >= offset+maxVisible {
		offset = idx - maxVisible + 1
	}

	return ClampOffset(offset, maxVisible, totalRows)
}
