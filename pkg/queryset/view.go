package queryset

import "github.com/siglens/metrics-explorer/pkg/models"

// RowView is an immutable copy of one row and its widget presentation
type RowView struct {
	Row       models.QueryRow `json:"row" yaml:"row"`
	Widgets   []Widget        `json:"widgets" yaml:"widgets"`
	AliasOpen bool            `json:"alias_open" yaml:"alias_open"`
}

// Widget returns the presentation state of field f
func (v RowView) Widget(f Field) Widget {
	if !f.valid() || int(f) >= len(v.Widgets) {
		return Widget{Field: f}
	}
	return v.Widgets[f]
}

// View is an immutable snapshot of a whole query set. Renderers work from
// a View only, so rendering the same View twice yields the same output.
type View struct {
	Rows                  []RowView                  `json:"rows" yaml:"rows"`
	Formulas              []models.FormulaRow        `json:"formulas" yaml:"formulas"`
	Slots                 []models.VisualizationSlot `json:"slots" yaml:"slots"`
	CloseIconVisible      bool                       `json:"close_icon_visible" yaml:"close_icon_visible"`
	VisualizationsEnabled bool                       `json:"visualizations_enabled" yaml:"visualizations_enabled"`
	FormulasEnabled       bool                       `json:"formulas_enabled" yaml:"formulas_enabled"`
}

// Row returns the view of the row named name
func (v View) Row(name string) (RowView, bool) {
	for _, r := range v.Rows {
		if r.Row.Name == name {
			return r, true
		}
	}
	return RowView{}, false
}
