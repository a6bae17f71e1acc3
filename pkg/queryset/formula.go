package queryset

import (
	"fmt"

	"github.com/siglens/metrics-explorer/pkg/models"
)

// AddFormula appends an empty formula row
func (m *Manager) AddFormula() (models.FormulaRow, error) {
	if !m.formulasOn {
		return models.FormulaRow{}, models.ErrFormulasDisabled
	}

	m.formulaSeq++
	f := models.FormulaRow{ID: m.formulaSeq}
	m.formulas = append(m.formulas, f)

	m.log.Debug().Int("formula", f.ID).Msg("formula row added")
	return f, nil
}

// SetFormula replaces the text of formula id. Row names in expr are not
// checked.
func (m *Manager) SetFormula(id int, expr string) error {
	for i := range m.formulas {
		if m.formulas[i].ID == id {
			m.formulas[i].Expression = expr
			return nil
		}
	}
	return fmt.Errorf("%w: %d", models.ErrUnknownFormula, id)
}

// RemoveFormula deletes formula id. Query rows are unaffected.
func (m *Manager) RemoveFormula(id int) bool {
	for i := range m.formulas {
		if m.formulas[i].ID == id {
			m.formulas = append(m.formulas[:i], m.formulas[i+1:]...)
			m.log.Debug().Int("formula", id).Msg("formula row removed")
			return true
		}
	}
	return false
}

// Formulas returns the formula rows in creation order
func (m *Manager) Formulas() []models.FormulaRow {
	return append([]models.FormulaRow{}, m.formulas...)
}
