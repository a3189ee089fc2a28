package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles of the App frame. The selector itself is
// styled by tagselect.Styles.
type Styles struct {
	App      lipgloss.Style
	Title    lipgloss.Style
	Message  lipgloss.Style
	Error    lipgloss.Style
	HintKey  lipgloss.Style // Key portion of hints (e.g., "Enter", "ctrl+s")
	HintDesc lipgloss.Style // Description portion of hints (e.g., "submit")
}

// DefaultStyles returns the default style configuration.
// Industrial design: grayscale with single desaturated teal accent.
func DefaultStyles() Styles {
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"} // main text
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}  // secondary text
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}  // desaturated teal
	alert := lipgloss.AdaptiveColor{Light: "#8A4A4A", Dark: "#A06060"}   // errors

	return Styles{
		App: lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Message: lipgloss.NewStyle().
			Foreground(primary),

		Error: lipgloss.NewStyle().
			Foreground(alert),

		HintKey: lipgloss.NewStyle().
			Foreground(subtle),

		HintDesc: lipgloss.NewStyle().
			Foreground(subtle),
	}
}
