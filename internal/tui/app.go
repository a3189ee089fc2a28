package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/tagsel/internal/output"
	"github.com/nikbrunner/tagsel/internal/tui/layout"
	"github.com/nikbrunner/tagsel/internal/tui/tagselect"
	"github.com/rs/zerolog"
)

// MessageType determines the styling of the message line.
type MessageType int

const (
	MessageInfo MessageType = iota
	MessageSuccess
	MessageError
)

// titleLines is the title plus the blank line below it.
const titleLines = 2

// App is the main bubbletea model hosting the tag selector.
type App struct {
	selector  tagselect.Model
	keys      KeyMap
	styles    Styles
	logger    zerolog.Logger
	clipboard func(string) error

	title          string
	preferredWidth int
	minWidth       int

	messageText string
	messageType MessageType

	submitted bool
	cancelled bool

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Selector  tagselect.Params
	Title     string
	Keys      *KeyMap            // optional, uses default if nil
	Styles    *Styles            // optional, uses default if nil
	Logger    *zerolog.Logger    // optional, logging disabled if nil
	Clipboard func(string) error // optional, system clipboard if nil
}

// NewApp creates a new App with the given parameters.
// The selector starts focused.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	logger := zerolog.Nop()
	if params.Logger != nil {
		logger = *params.Logger
	}

	writeClipboard := params.Clipboard
	if writeClipboard == nil {
		writeClipboard = clipboard.WriteAll
	}

	cfg := layout.DefaultConfig()
	if params.Selector.Layout != nil {
		cfg = *params.Selector.Layout
	}

	app := App{
		selector:       tagselect.New(params.Selector),
		keys:           keys,
		styles:         styles,
		logger:         logger,
		clipboard:      writeClipboard,
		title:          params.Title,
		preferredWidth: cfg.Field.Width,
		minWidth:       cfg.Field.MinWidth,
		width:          80,
		height:         24,
	}

	app.selector.Focus()
	return app
}

// Selector returns the hosted tag selector.
func (a App) Selector() tagselect.Model {
	return a.selector
}

// Selected returns the selected tags.
func (a App) Selected() []string {
	return a.selector.Selected()
}

// Submitted reports whether the user submitted the selection.
func (a App) Submitted() bool {
	return a.submitted
}

// Cancelled reports whether the user cancelled.
func (a App) Cancelled() bool {
	return a.cancelled
}

// Message returns the current message line text.
func (a App) Message() string {
	return a.messageText
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.selector.Init()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.submitted || a.cancelled {
		return a, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.selector.SetWidth(layout.ClampWidth(msg.Width, a.preferredWidth, a.minWidth))
		return a, nil

	case tagselect.SelectionChangedMsg:
		a.logger.Debug().Strs("tags", msg.Tags).Msg("selection changed")
		a.clearMessage()
		return a, nil

	case tea.MouseMsg:
		msg.X -= a.styles.App.GetPaddingLeft()
		msg.Y -= a.styles.App.GetPaddingTop() + a.titleHeight()
		var cmd tea.Cmd
		a.selector, cmd = a.selector.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	var cmd tea.Cmd
	a.selector, cmd = a.selector.Update(msg)
	return a, cmd
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Cancel):
		return a.cancel()

	case key.Matches(msg, a.keys.Submit):
		return a.submit()

	case key.Matches(msg, a.keys.Yank):
		a.yank()
		return a, nil
	}

	if !a.selector.Focused() {
		switch {
		case key.Matches(msg, a.keys.Confirm):
			return a.submit()

		case key.Matches(msg, a.keys.Quit):
			return a.cancel()

		case key.Matches(msg, a.keys.FocusEdit):
			a.clearMessage()
			return a, a.selector.Focus()
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.selector, cmd = a.selector.Update(msg)
	return a, cmd
}

func (a App) submit() (tea.Model, tea.Cmd) {
	a.submitted = true
	a.logger.Info().Strs("tags", a.selector.Selected()).Msg("submitted")
	return a, a.quit()
}

func (a App) cancel() (tea.Model, tea.Cmd) {
	a.cancelled = true
	a.logger.Info().Msg("cancelled")
	return a, a.quit()
}

// quit releases the selector's mouse subscription before quitting.
func (a App) quit() tea.Cmd {
	return tea.Sequence(a.selector.Teardown(), tea.Quit)
}

func (a *App) yank() {
	tags := a.selector.Selected()
	if len(tags) == 0 {
		a.setMessage(MessageInfo, "Nothing to copy")
		return
	}

	if err := a.clipboard(output.Clipboard(tags)); err != nil {
		a.logger.Error().Err(err).Msg("clipboard write failed")
		a.setMessage(MessageError, "Copy failed: "+err.Error())
		return
	}
	a.setMessage(MessageSuccess, "Copied "+pluralTags(len(tags)))
}

func (a *App) setMessage(t MessageType, text string) {
	a.messageType = t
	a.messageText = text
}

func (a *App) clearMessage() {
	a.messageText = ""
	a.messageType = MessageInfo
}

func (a App) titleHeight() int {
	if a.title == "" {
		return 0
	}
	return titleLines
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}
