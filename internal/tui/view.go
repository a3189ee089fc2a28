package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderView composes title, selector and help bar.
func (a App) renderView() string {
	if a.submitted || a.cancelled {
		return ""
	}

	var sections []string
	if a.title != "" {
		sections = append(sections, a.styles.Title.Render(a.title), "")
	}
	sections = append(sections, a.selector.View(), a.renderHelpBar())

	return a.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (a App) renderHelpBar() string {
	var lines []string

	// Line 1: Empty spacer OR message (message replaces the gap)
	if a.messageText != "" {
		lines = append(lines, a.renderMessageLine())
	} else {
		lines = append(lines, "")
	}

	// Line 2: Contextual keyboard hints
	if hints := a.renderHints(a.getContextualHints()); hints != "" {
		lines = append(lines, hints)
	}

	return strings.Join(lines, "\n")
}

// renderMessageLine renders the styled message with prefix icon based on type.
func (a App) renderMessageLine() string {
	switch a.messageType {
	case MessageError:
		return a.styles.Error.Render("✗ " + a.messageText)
	case MessageSuccess:
		return a.styles.Message.Render("✓ " + a.messageText)
	default: // MessageInfo
		return a.styles.Message.Render(a.messageText)
	}
}

func pluralTags(n int) string {
	if n == 1 {
		return "1 tag"
	}
	return fmt.Sprintf("%d tags", n)
}
