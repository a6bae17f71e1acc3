package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/siglens/metrics-explorer/pkg/models"
	"github.com/siglens/metrics-explorer/pkg/queryset"
)

const maxSuggestions = 8

const helpText = `ctrl+n add query • ctrl+w remove query • tab/shift+tab next/previous field • pgup/pgdown previous/next query • type to search • up/down move in suggestions • enter choose suggestion or open the list • ctrl+o open/close the list • esc close • backspace on an empty tag field removes the last tag • ctrl+a alias • ctrl+f add formula • ctrl+y copy query • ? help • ctrl+c quit`

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	v := a.manager.Snapshot()

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Metrics Explorer"))
	b.WriteString("\n\n")

	for i, rv := range v.Rows {
		b.WriteString(a.renderRow(i, rv, v.CloseIconVisible))
		b.WriteString("\n")
		if i == a.row && a.mode == editQuery {
			b.WriteString(a.renderSuggestions())
		}
	}

	if len(v.Formulas) > 0 {
		b.WriteString("\n")
		b.WriteString(renderFormulas(v.Formulas, a.mode == editFormula, a.formula, a.input.View()))
	}

	if a.mode == editAlias {
		b.WriteString("\n")
		b.WriteString(LabelStyle.Render(fmt.Sprintf("alias for %s: ", a.currentRow())))
		b.WriteString(a.input.View())
		b.WriteString("\n")
	}

	if v.VisualizationsEnabled && len(v.Slots) > 0 {
		a.graphs.SetContent(renderGraphs(v, a.graphs.Width))
		b.WriteString("\n")
		b.WriteString(a.graphs.View())
		b.WriteString("\n")
	}

	if a.showHelp {
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render(wordwrap.String(helpText, max(a.width-2, 20))))
		b.WriteString("\n")
	}

	content := b.String()
	if a.confirm.Active() {
		content = lipgloss.JoinVertical(lipgloss.Left, content, a.confirm.View(a.width))
	}
	if a.statusMsg != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, StatusStyle.Render(a.statusMsg))
	}
	return content
}

// renderRow draws one query: name, metric, "from" scope chips, aggregation,
// "by" group chips, alias and the remove marker
func (a *App) renderRow(i int, rv queryset.RowView, closeVisible bool) string {
	parts := []string{RowNameStyle.Render(rv.Row.Name)}

	for _, f := range queryset.Fields() {
		switch f {
		case queryset.FieldScope:
			parts = append(parts, LabelStyle.Render("from"))
		case queryset.FieldGroupBy:
			parts = append(parts, LabelStyle.Render("by"))
		}
		focused := i == a.row && f == a.field && a.mode == editQuery
		parts = append(parts, a.renderField(rv, f, focused))
	}

	switch {
	case rv.AliasOpen && rv.Row.Alias != "":
		parts = append(parts, LabelStyle.Render("as"), NormalStyle.Render(rv.Row.Alias))
	case !rv.AliasOpen:
		parts = append(parts, LabelStyle.Render("as..."))
	}

	if closeVisible {
		parts = append(parts, CloseStyle.Render("×"))
	}
	return strings.Join(parts, " ")
}

func (a *App) renderField(rv queryset.RowView, f queryset.Field, focused bool) string {
	var chips []string
	switch f {
	case queryset.FieldScope:
		chips = rv.Row.Scope
	case queryset.FieldGroupBy:
		chips = rv.Row.GroupBy
	}

	var parts []string
	for _, chip := range chips {
		parts = append(parts, renderChip(chip))
	}

	w := rv.Widget(f)
	switch {
	case focused:
		parts = append(parts, CursorStyle.Render("▸")+a.input.View())
	case w.Input != "":
		parts = append(parts, NormalStyle.Render(w.Input))
	case w.Placeholder() != "":
		parts = append(parts, PlaceholderStyle.Render(w.Placeholder()))
	}
	return strings.Join(parts, " ")
}

func (a *App) renderSuggestions() string {
	w, err := a.manager.Widget(a.currentRow(), a.field)
	if err != nil || !w.Open {
		return ""
	}

	sugg := a.suggestions()
	if len(sugg) == 0 {
		return "    " + PlaceholderStyle.Render("no matches") + "\n"
	}

	start := 0
	if a.cursor >= maxSuggestions {
		start = a.cursor - maxSuggestions + 1
	}
	end := min(start+maxSuggestions, len(sugg))

	var b strings.Builder
	for i := start; i < end; i++ {
		if i == a.cursor {
			b.WriteString("  " + CursorStyle.Render("▶ ") + SelectedStyle.Render(sugg[i]))
		} else {
			b.WriteString("    " + NormalStyle.Render(sugg[i]))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderFormulas(formulas []models.FormulaRow, editing bool, editID int, input string) string {
	var b strings.Builder
	b.WriteString(LabelStyle.Render("Formulas"))
	b.WriteString("\n")
	for _, f := range formulas {
		label := RowNameStyle.Render(fmt.Sprintf("f%d", f.ID))
		switch {
		case editing && f.ID == editID:
			b.WriteString(label + " " + CursorStyle.Render("▸") + input)
		case f.Expression == "":
			b.WriteString(label + " " + PlaceholderStyle.Render("empty"))
		default:
			b.WriteString(label + " " + NormalStyle.Render(f.Expression))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderGraphs lays out one box per visualization slot. A lone slot spans
// the full width, otherwise boxes are placed two per line.
func renderGraphs(v queryset.View, width int) string {
	var lines []string
	var pending []string

	for _, slot := range v.Slots {
		caption := PlaceholderStyle.Render("(no metric selected)")
		if rv, ok := v.Row(slot.Query); ok && rv.Row.Expression() != "" {
			caption = NormalStyle.Render(rv.Row.Expression())
		}

		boxWidth := width/2 - 2
		if slot.FullWidth {
			boxWidth = width - 2
		}
		box := InactiveBorderStyle.Width(max(boxWidth, 10)).Render(slot.Query + "\n" + caption)

		pending = append(pending, box)
		if len(pending) == 2 {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, pending...))
			pending = nil
		}
	}
	if len(pending) > 0 {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, pending...))
	}
	return strings.Join(lines, "\n")
}
