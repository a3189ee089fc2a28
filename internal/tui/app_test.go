package tui_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/tagsel/internal/tui"
	"github.com/nikbrunner/tagsel/internal/tui/layout"
	"github.com/nikbrunner/tagsel/internal/tui/tagselect"
	"github.com/rs/zerolog"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

var charts = []string{"Bar Chart", "Line Chart", "Pie Chart"}

func newTestApp(params tui.AppParams) tui.App {
	if params.Selector.Options == nil {
		params.Selector.Options = charts
	}
	if params.Title == "" {
		params.Title = "Chart type"
	}
	return tui.NewApp(params)
}

func update(t *testing.T, app tui.App, msg tea.Msg) (tui.App, tea.Cmd) {
	t.Helper()
	updated, cmd := app.Update(msg)
	result, ok := updated.(tui.App)
	assert.Assert(t, ok, "Update must return tui.App")
	return result, cmd
}

func keyPress(t *testing.T, app tui.App, k tea.KeyType) tui.App {
	t.Helper()
	app, _ = update(t, app, tea.KeyMsg{Type: k})
	return app
}

func typeRunes(t *testing.T, app tui.App, s string) tui.App {
	t.Helper()
	for _, r := range s {
		app, _ = update(t, app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return app
}

// addTag commits the first option matching query.
func addTag(t *testing.T, app tui.App, query string) tui.App {
	t.Helper()
	app = typeRunes(t, app, query)
	app = keyPress(t, app, tea.KeyDown)
	return keyPress(t, app, tea.KeyEnter)
}

func TestApp_StartsFocused(t *testing.T) {
	app := newTestApp(tui.AppParams{})

	assert.Assert(t, app.Selector().Focused())
	assert.Assert(t, app.Selector().DropdownOpen())
	assert.Assert(t, app.Init() != nil)
}

func TestApp_SubmitWithCtrlS(t *testing.T) {
	app := newTestApp(tui.AppParams{})
	app = addTag(t, app, "Line")

	app, cmd := update(t, app, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Assert(t, app.Submitted())
	assert.Assert(t, !app.Cancelled())
	assert.Assert(t, cmd != nil, "expected teardown and quit")
	assert.DeepEqual(t, app.Selected(), []string{"Line Chart"})
	assert.Equal(t, app.View(), "")
}

func TestApp_CancelWithCtrlC(t *testing.T) {
	app := newTestApp(tui.AppParams{})

	app, cmd := update(t, app, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.Assert(t, app.Cancelled())
	assert.Assert(t, !app.Submitted())
	assert.Assert(t, cmd != nil)
}

func TestApp_IgnoresInputAfterExit(t *testing.T) {
	app := newTestApp(tui.AppParams{})
	app = keyPress(t, app, tea.KeyCtrlC)

	app, cmd := update(t, app, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Assert(t, !app.Submitted())
	assert.Assert(t, cmd == nil)
}

func TestApp_QTypesWhileFocused(t *testing.T) {
	app := newTestApp(tui.AppParams{})
	app = typeRunes(t, app, "q")

	assert.Assert(t, !app.Cancelled())
	assert.Equal(t, app.Selector().Value(), "q")
}

func TestApp_BlurredKeys(t *testing.T) {
	tests := []struct {
		name      string
		msg       tea.KeyMsg
		submitted bool
		cancelled bool
		focused   bool
	}{
		{"enter submits", tea.KeyMsg{Type: tea.KeyEnter}, true, false, false},
		{"q cancels", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, false, true, false},
		{"esc cancels", tea.KeyMsg{Type: tea.KeyEsc}, false, true, false},
		{"i focuses", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'i'}}, false, false, true},
		{"tab focuses", tea.KeyMsg{Type: tea.KeyTab}, false, false, true},
		{"other ignored", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(tui.AppParams{})
			app = keyPress(t, app, tea.KeyEsc)
			assert.Assert(t, !app.Selector().Focused())

			app, _ = update(t, app, tt.msg)
			assert.Equal(t, app.Submitted(), tt.submitted)
			assert.Equal(t, app.Cancelled(), tt.cancelled)
			assert.Equal(t, app.Selector().Focused(), tt.focused)
			assert.Equal(t, app.Selector().Value(), "")
		})
	}
}

func TestApp_YankCopiesSelection(t *testing.T) {
	var copied string
	app := newTestApp(tui.AppParams{
		Clipboard: func(s string) error {
			copied = s
			return nil
		},
	})
	app = addTag(t, app, "Bar")
	app = addTag(t, app, "Pie")

	app = keyPress(t, app, tea.KeyCtrlY)
	assert.Equal(t, copied, "Bar Chart, Pie Chart")
	assert.Equal(t, app.Message(), "Copied 2 tags")
	assert.Assert(t, is.Contains(layout.StripANSI(app.View()), "✓ Copied 2 tags"))
}

func TestApp_YankNothing(t *testing.T) {
	called := false
	app := newTestApp(tui.AppParams{
		Clipboard: func(string) error {
			called = true
			return nil
		},
	})

	app = keyPress(t, app, tea.KeyCtrlY)
	assert.Assert(t, !called)
	assert.Equal(t, app.Message(), "Nothing to copy")
}

func TestApp_YankFailure(t *testing.T) {
	app := newTestApp(tui.AppParams{
		Clipboard: func(string) error { return errors.New("no clipboard utility") },
	})
	app = addTag(t, app, "Bar")

	app = keyPress(t, app, tea.KeyCtrlY)
	assert.Equal(t, app.Message(), "Copy failed: no clipboard utility")
}

func TestApp_SelectionChangeClearsMessage(t *testing.T) {
	app := newTestApp(tui.AppParams{})
	app = keyPress(t, app, tea.KeyCtrlY)
	assert.Assert(t, app.Message() != "")

	app, _ = update(t, app, tagselect.SelectionChangedMsg{Tags: []string{"Foo"}})
	assert.Equal(t, app.Message(), "")
}

func TestApp_MouseTranslatesCoordinates(t *testing.T) {
	app := newTestApp(tui.AppParams{})

	// padding top 1 + title and blank line, padding left 2; then the field
	// box (3 rows) and the dropdown top border put "Line Chart" at row 8
	app, cmd := update(t, app, tea.MouseMsg{X: 8, Y: 8, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.DeepEqual(t, app.Selected(), []string{"Line Chart"})
	assert.Assert(t, cmd != nil)

	// " Line Chart ✕ " spans content columns 0-13 with ✕ at 12; content
	// starts 2 columns into the box
	app, _ = update(t, app, tea.MouseMsg{X: 2 + 2 + 11, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Assert(t, is.DeepEqual(app.Selected(), []string{"Line Chart"}), "the blank after the label is not the ✕")

	app, _ = update(t, app, tea.MouseMsg{X: 2 + 2 + 12, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Assert(t, is.Len(app.Selected(), 0))
}

func TestApp_MouseOutsideBlurs(t *testing.T) {
	app := newTestApp(tui.AppParams{})

	app, _ = update(t, app, tea.MouseMsg{X: 5, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Assert(t, !app.Selector().Focused())
	assert.Assert(t, is.Contains(layout.StripANSI(app.View()), "Enter:submit"))
}

func TestApp_WindowSizeClampsWidth(t *testing.T) {
	app := newTestApp(tui.AppParams{})

	app, _ = update(t, app, tea.WindowSizeMsg{Width: 30, Height: 20})
	assert.Equal(t, app.Selector().Width(), 26)

	app, _ = update(t, app, tea.WindowSizeMsg{Width: 200, Height: 20})
	assert.Equal(t, app.Selector().Width(), 44)

	app, _ = update(t, app, tea.WindowSizeMsg{Width: 10, Height: 20})
	assert.Equal(t, app.Selector().Width(), 10)
}

func TestApp_ViewShowsTitleAndHints(t *testing.T) {
	app := newTestApp(tui.AppParams{})
	view := layout.StripANSI(app.View())

	assert.Assert(t, is.Contains(view, "Chart type"))
	assert.Assert(t, is.Contains(view, "Bar Chart"))
	assert.Assert(t, is.Contains(view, "Enter:add"))
	assert.Assert(t, is.Contains(view, "ctrl+s:submit"))

	app = keyPress(t, app, tea.KeyCtrlA)
	assert.Assert(t, is.Contains(layout.StripANSI(app.View()), "Enter:add all"))
}

func TestApp_LogsOutcome(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	app := newTestApp(tui.AppParams{Logger: &logger})
	app = addTag(t, app, "Pie")

	app, _ = update(t, app, tagselect.SelectionChangedMsg{Tags: app.Selected()})
	keyPress(t, app, tea.KeyCtrlS)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, len(lines), 2)
	assert.Assert(t, is.Contains(lines[0], `"message":"selection changed"`))
	assert.Assert(t, is.Contains(lines[1], `"tags":["Pie Chart"]`))
	assert.Assert(t, is.Contains(lines[1], `"message":"submitted"`))
}
