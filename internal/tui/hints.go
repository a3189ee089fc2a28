package tui

import "strings"

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "ctrl+s", "Enter")
	Desc string // Short description (e.g., "submit", "add")
}

// renderHint renders a single hint as "key:desc" with styling.
func (a App) renderHint(h Hint) string {
	return a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
}

// renderHints renders hints in horizontal format for the bottom bar:
// "Enter:add ctrl+a:all ctrl+s:submit"
func (a App) renderHints(hints HintSet) string {
	allHints := hints.All()
	if len(allHints) == 0 {
		return ""
	}

	parts := make([]string, len(allHints))
	for i, h := range allHints {
		parts[i] = a.renderHint(h)
	}
	return strings.Join(parts, " ")
}

// HintSet is an ordered collection of hints by group.
type HintSet struct {
	Nav    []Hint // Navigation hints (up/down, Esc)
	Edit   []Hint // Edit hints (Enter, ctrl+a, Backspace)
	System []Hint // System hints (submit, cancel, copy)
}

// All returns all hints flattened in display order: Nav + Edit + System.
func (h HintSet) All() []Hint {
	result := make([]Hint, 0, len(h.Nav)+len(h.Edit)+len(h.System))
	result = append(result, h.Nav...)
	result = append(result, h.Edit...)
	result = append(result, h.System...)
	return result
}

// getContextualHints returns the hints for the current focus state.
func (a App) getContextualHints() HintSet {
	if a.selector.Focused() {
		return a.getEditHints()
	}
	return a.getBlurredHints()
}

func (a App) getEditHints() HintSet {
	hints := HintSet{
		Nav: []Hint{
			{Key: "↑/↓", Desc: "move"},
			{Key: "Esc", Desc: "done"},
		},
		Edit: []Hint{
			{Key: "Enter", Desc: "add"},
			{Key: "ctrl+a", Desc: "all"},
		},
		System: []Hint{
			{Key: a.keys.Submit.Help().Key, Desc: a.keys.Submit.Help().Desc},
			{Key: a.keys.Cancel.Help().Key, Desc: a.keys.Cancel.Help().Desc},
		},
	}

	if a.selector.SelectAllActive() {
		hints.Edit = []Hint{
			{Key: "Enter", Desc: "add all"},
			{Key: "ctrl+a", Desc: "undo"},
		}
	}
	if a.selector.Value() == "" && len(a.selector.Selected()) > 0 {
		hints.Edit = append(hints.Edit, Hint{Key: "Backspace", Desc: "remove"})
	}

	return hints
}

func (a App) getBlurredHints() HintSet {
	hints := HintSet{
		Nav: []Hint{
			{Key: a.keys.FocusEdit.Help().Key, Desc: a.keys.FocusEdit.Help().Desc},
		},
		System: []Hint{
			{Key: a.keys.Confirm.Help().Key, Desc: a.keys.Confirm.Help().Desc},
			{Key: a.keys.Quit.Help().Key, Desc: a.keys.Quit.Help().Desc},
		},
	}

	if len(a.selector.Selected()) > 0 {
		hints.System = append(hints.System, Hint{Key: a.keys.Yank.Help().Key, Desc: a.keys.Yank.Help().Desc})
	}

	return hints
}
