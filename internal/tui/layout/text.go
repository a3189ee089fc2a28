package layout

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// ansiRegex matches ANSI escape sequences.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// VisibleLength returns the number of terminal cells a string occupies,
// ignoring ANSI codes.
func VisibleLength(s string) int {
	return runewidth.StringWidth(StripANSI(s))
}

// PadRight pads s with spaces up to width visible cells.
func PadRight(s string, width int) string {
	if n := VisibleLength(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// TruncateText truncates text to maxWidth cells with ellipsis.
// Returns the truncated text and whether truncation occurred.
func TruncateText(text string, maxWidth int, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", true
	}

	if runewidth.StringWidth(text) <= maxWidth {
		return text, false
	}

	// Not enough room for any text + ellipsis
	if maxWidth <= runewidth.StringWidth(cfg.Ellipsis) {
		return runewidth.Truncate(cfg.Ellipsis, maxWidth, ""), true
	}

	return runewidth.Truncate(text, maxWidth, cfg.Ellipsis), true
}

// TruncateANSIAware truncates styled text, preserving ANSI codes.
// Needed for option rows where matched spans are already styled.
// A reset code is appended when truncating to prevent style bleed.
func TruncateANSIAware(styledText string, maxWidth int, cfg TextConfig) string {
	if maxWidth <= 0 {
		return ""
	}

	if VisibleLength(styledText) <= maxWidth {
		return styledText
	}

	target := maxWidth - runewidth.StringWidth(cfg.Ellipsis)
	if target < 0 {
		target = 0
	}

	var result []byte
	var visible int
	input := []byte(styledText)

	i := 0
	for i < len(input) {
		if input[i] == '\x1b' && i+1 < len(input) && input[i+1] == '[' {
			j := i + 2
			for j < len(input) && input[j] != 'm' {
				j++
			}
			if j < len(input) {
				result = append(result, input[i:j+1]...)
				i = j + 1
				continue
			}
		}

		r, size := utf8.DecodeRune(input[i:])
		w := runewidth.RuneWidth(r)
		if visible+w > target {
			break
		}
		if r != utf8.RuneError {
			result = append(result, input[i:i+size]...)
			visible += w
		}
		i += size
	}

	result = append(result, cfg.Ellipsis...)
	result = append(result, "\x1b[0m"...)

	return string(result)
}
