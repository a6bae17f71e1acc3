package queryset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siglens/metrics-explorer/pkg/models"
)

func TestFormulas(t *testing.T) {
	m := newSingleRow(t)

	f1, err := m.AddFormula()
	require.NoError(t, err)
	f2, err := m.AddFormula()
	require.NoError(t, err)
	assert.NotEqual(t, f1.ID, f2.ID)

	require.NoError(t, m.SetFormula(f1.ID, "2*a"))
	require.NoError(t, m.SetFormula(f2.ID, "a+zz"), "formulas are not validated")

	assert.Equal(t, []models.FormulaRow{
		{ID: f1.ID, Expression: "2*a"},
		{ID: f2.ID, Expression: "a+zz"},
	}, m.Formulas())

	assert.True(t, m.RemoveFormula(f1.ID))
	assert.False(t, m.RemoveFormula(f1.ID))
	assert.Len(t, m.Formulas(), 1)

	assert.Equal(t, 1, m.Len(), "query rows are unaffected")
	assert.ErrorIs(t, m.SetFormula(99, "x"), models.ErrUnknownFormula)
}

func TestWithoutFormulas(t *testing.T) {
	m := New(nil, WithoutFormulas())

	_, err := m.AddFormula()
	assert.ErrorIs(t, err, models.ErrFormulasDisabled)
	assert.False(t, m.Snapshot().FormulasEnabled)
}

func TestAlias(t *testing.T) {
	m := newSingleRow(t)
	assert.False(t, m.AliasOpen("a"))

	require.NoError(t, m.OpenAlias("a"))
	assert.True(t, m.AliasOpen("a"))

	require.NoError(t, m.SetAlias("a", "  idle cpu "))
	row, _ := m.Row("a")
	assert.Equal(t, "idle cpu", row.Alias)

	require.NoError(t, m.CloseAlias("a"))
	assert.False(t, m.AliasOpen("a"))
	row, _ = m.Row("a")
	assert.Empty(t, row.Alias)

	assert.ErrorIs(t, m.OpenAlias("b"), models.ErrUnknownRow)
	assert.False(t, m.AliasOpen("b"))
}

func TestSnapshotIsIndependent(t *testing.T) {
	m := newSingleRow(t)
	require.NoError(t, m.SelectScope("a", "cpu"))

	view := m.Snapshot()
	require.NoError(t, m.SelectScope("a", "disk space"))

	rv, ok := view.Row("a")
	require.True(t, ok)
	assert.Equal(t, []string{"cpu"}, rv.Row.Scope)
	assert.Equal(t, 1, rv.Widget(FieldScope).Chips)

	_, ok = view.Row("b")
	assert.False(t, ok)
	assert.Equal(t, Widget{Field: Field(8)}, rv.Widget(Field(8)))
}
