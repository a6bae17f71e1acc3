package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/siglens/metrics-explorer/pkg/queryset"
)

type editMode int

const (
	editQuery editMode = iota
	editAlias
	editFormula
)

const statusDuration = 3 * time.Second

// StatusMsg shows a message in the status bar for a few seconds
type StatusMsg string

type clearStatusMsg struct{}

// App is the interactive query builder. It only keeps focus and input
// state; every query change goes through the manager.
type App struct {
	manager *queryset.Manager
	log     zerolog.Logger

	row     int // index of the focused row in manager.Names()
	field   queryset.Field
	mode    editMode
	formula int // id of the formula being edited
	cursor  int // highlighted suggestion

	input    textinput.Model
	graphs   viewport.Model
	confirm  *ConfirmationModel
	showHelp bool

	width     int
	height    int
	statusMsg string

	copyText func(string) error
}

// Option configures an App
type Option func(*App)

// WithLogger sets the logger for failed operations
func WithLogger(log zerolog.Logger) Option {
	return func(a *App) {
		a.log = log
	}
}

// WithClipboard replaces the system clipboard, mainly for tests
func WithClipboard(copyText func(string) error) Option {
	return func(a *App) {
		a.copyText = copyText
	}
}

// NewApp creates the explorer for m. An empty query set gets its first row
// so there is always something to edit.
func NewApp(m *queryset.Manager, opts ...Option) *App {
	input := textinput.New()
	input.Prompt = ""
	input.Focus()

	a := &App{
		manager:  m,
		log:      zerolog.Nop(),
		field:    queryset.FieldMetric,
		input:    input,
		graphs:   viewport.New(80, 10),
		confirm:  NewConfirmation(),
		copyText: clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(a)
	}

	if m.Len() == 0 {
		m.AddRow()
	}
	a.syncInput()
	return a
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.graphs.Width = max(msg.Width-2, 20)
		a.graphs.Height = max(msg.Height/3, 5)
		return a, nil

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, tea.Tick(statusDuration, func(time.Time) tea.Msg {
			return clearStatusMsg{}
		})

	case clearStatusMsg:
		a.statusMsg = ""
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	if a.confirm.Active() {
		return a.confirm.Update(msg)
	}
	if a.mode != editQuery {
		return a.handleEditKey(msg)
	}

	switch msg.String() {
	case "ctrl+n":
		return a.addRow()
	case "ctrl+w":
		return a.removeRow()
	case "tab":
		a.moveField(1)
		return nil
	case "shift+tab":
		a.moveField(-1)
		return nil
	case "pgdown", "ctrl+down":
		a.moveRow(1)
		return nil
	case "pgup", "ctrl+up":
		a.moveRow(-1)
		return nil
	case "up":
		a.moveCursor(-1)
		return nil
	case "down":
		a.moveCursor(1)
		return nil
	case "enter":
		return a.choose()
	case "ctrl+o":
		return a.togglePanel()
	case "esc":
		a.showHelp = false
		return a.closePanel()
	case "ctrl+a":
		return a.startAlias()
	case "ctrl+f":
		return a.startFormula()
	case "ctrl+y":
		return a.copyRow()
	case "?":
		if a.input.Value() == "" {
			a.showHelp = !a.showHelp
			return nil
		}
	case "backspace":
		if a.input.Value() == "" && a.field.MultiValued() {
			return a.removeLastChip()
		}
	}

	return a.updateInput(msg)
}

func (a *App) handleEditKey(msg tea.KeyMsg) tea.Cmd {
	name := a.currentRow()

	switch msg.String() {
	case "enter":
		value := strings.TrimSpace(a.input.Value())
		var err error
		switch a.mode {
		case editAlias:
			if value == "" {
				err = a.manager.CloseAlias(name)
			} else {
				err = a.manager.SetAlias(name, value)
			}
		case editFormula:
			if value == "" {
				a.manager.RemoveFormula(a.formula)
			} else {
				err = a.manager.SetFormula(a.formula, value)
			}
		}
		a.endEdit()
		return a.report(err)

	case "esc":
		switch a.mode {
		case editAlias:
			if row, ok := a.manager.Row(name); ok && row.Alias == "" {
				a.manager.CloseAlias(name)
			}
		case editFormula:
			if a.formulaText(a.formula) == "" {
				a.manager.RemoveFormula(a.formula)
			}
		}
		a.endEdit()
		return nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return cmd
}

// updateInput forwards a key to the text input and records the typed text
// as the search term of the focused field
func (a *App) updateInput(msg tea.KeyMsg) tea.Cmd {
	before := a.input.Value()

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)

	if value := a.input.Value(); value != before {
		if err := a.manager.SetInput(a.currentRow(), a.field, value); err != nil {
			return tea.Batch(cmd, a.report(err))
		}
		a.cursor = 0
	}
	return cmd
}

func (a *App) currentRow() string {
	names := a.manager.Names()
	if len(names) == 0 {
		return ""
	}
	a.row = min(max(a.row, 0), len(names)-1)
	return names[a.row]
}

// syncInput loads the focused widget into the text input
func (a *App) syncInput() {
	w, err := a.manager.Widget(a.currentRow(), a.field)
	if err != nil {
		return
	}
	a.input.SetValue(w.Input)
	a.input.Placeholder = w.Placeholder()
	a.input.CursorEnd()
}

func (a *App) moveField(delta int) {
	a.manager.Close(a.currentRow(), a.field)
	count := len(queryset.Fields())
	a.field = queryset.Field((int(a.field) + delta + count) % count)
	a.cursor = 0
	a.syncInput()
}

func (a *App) moveRow(delta int) {
	a.manager.Close(a.currentRow(), a.field)
	a.row += delta
	a.cursor = 0
	a.syncInput()
}

func (a *App) suggestions() []string {
	sugg, err := a.manager.Suggestions(a.currentRow(), a.field)
	if err != nil {
		return nil
	}
	return sugg
}

func (a *App) moveCursor(delta int) {
	sugg := a.suggestions()
	if len(sugg) == 0 {
		if delta > 0 {
			a.togglePanel()
		}
		return
	}
	a.cursor = min(max(a.cursor+delta, 0), len(sugg)-1)
}

// choose selects the highlighted suggestion. Without suggestions it toggles
// the panel like a click on the input would.
func (a *App) choose() tea.Cmd {
	sugg := a.suggestions()
	if len(sugg) == 0 {
		return a.togglePanel()
	}

	value := sugg[min(a.cursor, len(sugg)-1)]
	if err := a.manager.Select(a.currentRow(), a.field, value); err != nil {
		return a.report(err)
	}
	a.cursor = 0
	a.syncInput()
	return nil
}

func (a *App) togglePanel() tea.Cmd {
	_, err := a.manager.Activate(a.currentRow(), a.field)
	a.cursor = 0
	return a.report(err)
}

func (a *App) closePanel() tea.Cmd {
	a.cursor = 0
	return a.report(a.manager.Close(a.currentRow(), a.field))
}

func (a *App) removeLastChip() tea.Cmd {
	name := a.currentRow()
	row, ok := a.manager.Row(name)
	if !ok {
		return nil
	}

	chips := row.Scope
	if a.field == queryset.FieldGroupBy {
		chips = row.GroupBy
	}
	if len(chips) == 0 {
		return nil
	}
	return a.report(a.manager.Deselect(name, a.field, chips[len(chips)-1]))
}

func (a *App) addRow() tea.Cmd {
	a.manager.Close(a.currentRow(), a.field)
	row := a.manager.AddRow()
	a.row = a.manager.Len() - 1
	a.field = queryset.FieldMetric
	a.cursor = 0
	a.syncInput()
	return status("query %s added", row.Name)
}

func (a *App) removeRow() tea.Cmd {
	if !a.manager.CloseIconVisible() {
		return status("the last query cannot be removed")
	}

	name := a.currentRow()
	row, ok := a.manager.Row(name)
	if !ok {
		return nil
	}
	if !row.HasSelections() {
		return a.deleteRow(name)
	}

	a.confirm.Show(fmt.Sprintf("Remove query %s?", name), true, func() tea.Cmd {
		return a.deleteRow(name)
	}, nil)
	return nil
}

func (a *App) deleteRow(name string) tea.Cmd {
	if !a.manager.RemoveRow(name) {
		return nil
	}
	a.cursor = 0
	a.syncInput()
	return status("query %s removed", name)
}

func (a *App) startAlias() tea.Cmd {
	name := a.currentRow()
	if err := a.manager.OpenAlias(name); err != nil {
		return a.report(err)
	}
	row, _ := a.manager.Row(name)

	a.manager.Close(name, a.field)
	a.mode = editAlias
	a.input.SetValue(row.Alias)
	a.input.Placeholder = "alias"
	a.input.CursorEnd()
	return nil
}

func (a *App) startFormula() tea.Cmd {
	f, err := a.manager.AddFormula()
	if err != nil {
		return a.report(err)
	}

	a.manager.Close(a.currentRow(), a.field)
	a.mode = editFormula
	a.formula = f.ID
	a.input.SetValue("")
	a.input.Placeholder = "formula, e.g. a+b"
	return nil
}

func (a *App) endEdit() {
	a.mode = editQuery
	a.formula = 0
	a.syncInput()
}

func (a *App) formulaText(id int) string {
	for _, f := range a.manager.Formulas() {
		if f.ID == id {
			return f.Expression
		}
	}
	return ""
}

func (a *App) copyRow() tea.Cmd {
	name := a.currentRow()
	row, ok := a.manager.Row(name)
	if !ok {
		return nil
	}

	expr := row.Expression()
	if expr == "" {
		return status("query %s has no metric", name)
	}
	if err := a.copyText(expr); err != nil {
		return a.report(fmt.Errorf("clipboard unavailable: %w", err))
	}
	return status("%s → clipboard", name)
}

// report logs err and shows it in the status bar. A nil error is a no-op.
func (a *App) report(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	a.log.Error().Err(err).Str("row", a.currentRow()).Str("field", a.field.String()).Msg("operation failed")
	return status("Error: %v", err)
}

func status(format string, args ...any) tea.Cmd {
	msg := StatusMsg(fmt.Sprintf(format, args...))
	return func() tea.Msg {
		return msg
	}
}
