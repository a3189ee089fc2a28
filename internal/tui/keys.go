package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the App-level key bindings. Keys not bound here are
// handled by the tag selector.
type KeyMap struct {
	Submit    key.Binding // always active
	Cancel    key.Binding // always active
	Yank      key.Binding // always active
	Confirm   key.Binding // only while the selector is blurred
	Quit      key.Binding // only while the selector is blurred
	FocusEdit key.Binding // only while the selector is blurred
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "submit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "cancel"),
		),
		Yank: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "submit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "cancel"),
		),
		FocusEdit: key.NewBinding(
			key.WithKeys("tab", "i"),
			key.WithHelp("i", "edit"),
		),
	}
}
