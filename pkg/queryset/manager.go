// Package queryset keeps the ordered set of query rows being built in the
// metrics explorer, together with their candidate pools, widget state,
// visualization slots and formula rows.
package queryset

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/siglens/metrics-explorer/pkg/catalog"
	"github.com/siglens/metrics-explorer/pkg/models"
)

// Manager owns the query rows of one explorer session. Rows are named by a
// counter that only ever grows, so names are not reused after removal.
//
// A Manager is not safe for concurrent use; it is driven from a single
// event loop.
type Manager struct {
	catalog *catalog.Catalog
	order   []string
	rows    map[string]*rowState
	counter int

	formulas   []models.FormulaRow
	formulaSeq int

	visualizations bool
	formulasOn     bool

	log zerolog.Logger
}

// Option configures a Manager
type Option func(*Manager)

// WithLogger sets the logger selections and lifecycle events are written to
func WithLogger(log zerolog.Logger) Option {
	return func(m *Manager) {
		m.log = log
	}
}

// WithoutVisualizations disables visualization slots
func WithoutVisualizations() Option {
	return func(m *Manager) {
		m.visualizations = false
	}
}

// WithoutFormulas disables formula rows
func WithoutFormulas() Option {
	return func(m *Manager) {
		m.formulasOn = false
	}
}

// New creates an empty query set drawing candidates from cat. A nil
// catalog uses catalog.Default().
func New(cat *catalog.Catalog, opts ...Option) *Manager {
	if cat == nil {
		cat = catalog.Default()
	}

	m := &Manager{
		catalog:        cat.Clone(),
		rows:           make(map[string]*rowState),
		visualizations: true,
		formulasOn:     true,
		log:            zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddRow appends a row. The new row continues from the most recently added
// live row, or starts empty when there is none.
func (m *Manager) AddRow() models.QueryRow {
	name := models.RowName(m.counter)
	m.counter++

	var prev *models.QueryRow
	if len(m.order) > 0 {
		prev = &m.rows[m.order[len(m.order)-1]].record
	}

	record := DeriveRow(prev, name)
	m.rows[name] = newRowState(record, m.catalog)
	m.order = append(m.order, name)

	m.log.Debug().
		Str("row", name).
		Str("metric", record.Metric).
		Strs("scope", record.Scope).
		Strs("group_by", record.GroupBy).
		Str("aggregation", string(record.Aggregation)).
		Int("rows", len(m.order)).
		Msg("query row added")

	return record.Clone()
}

// RemoveRow deletes the row named name along with its visualization slot.
// Unknown names are ignored and reported as false.
func (m *Manager) RemoveRow(name string) bool {
	if _, ok := m.rows[name]; !ok {
		return false
	}

	delete(m.rows, name)
	if i := indexOf(m.order, name); i >= 0 {
		m.order = append(m.order[:i], m.order[i+1:]...)
	}

	m.log.Debug().Str("row", name).Int("rows", len(m.order)).Msg("query row removed")
	return true
}

// Len returns the number of live rows
func (m *Manager) Len() int {
	return len(m.order)
}

// Names returns the live row names in creation order
func (m *Manager) Names() []string {
	return append([]string{}, m.order...)
}

// Row returns a copy of the record for name
func (m *Manager) Row(name string) (models.QueryRow, bool) {
	rs, ok := m.rows[name]
	if !ok {
		return models.QueryRow{}, false
	}
	return rs.record.Clone(), true
}

// Rows returns copies of all live records in creation order
func (m *Manager) Rows() []models.QueryRow {
	rows := make([]models.QueryRow, 0, len(m.order))
	for _, name := range m.order {
		rows = append(rows, m.rows[name].record.Clone())
	}
	return rows
}

// CloseIconVisible reports whether rows can be removed. The last row
// cannot, so the affordance is only shown with more than one row.
func (m *Manager) CloseIconVisible() bool {
	return len(m.order) > 1
}

// Slots returns one visualization slot per live row. A lone slot spans
// the full width.
func (m *Manager) Slots() []models.VisualizationSlot {
	if !m.visualizations {
		return []models.VisualizationSlot{}
	}

	fullWidth := len(m.order) == 1
	slots := make([]models.VisualizationSlot, 0, len(m.order))
	for _, name := range m.order {
		slots = append(slots, models.VisualizationSlot{Query: name, FullWidth: fullWidth})
	}
	return slots
}

// Catalog returns a copy of the candidate lists in use
func (m *Manager) Catalog() *catalog.Catalog {
	return m.catalog.Clone()
}

// Snapshot captures the whole query set for rendering
func (m *Manager) Snapshot() View {
	v := View{
		Rows:                  make([]RowView, 0, len(m.order)),
		Formulas:              m.Formulas(),
		Slots:                 m.Slots(),
		CloseIconVisible:      m.CloseIconVisible(),
		VisualizationsEnabled: m.visualizations,
		FormulasEnabled:       m.formulasOn,
	}
	for _, name := range m.order {
		v.Rows = append(v.Rows, m.rows[name].view())
	}
	return v
}

func (m *Manager) row(name string) (*rowState, error) {
	rs, ok := m.rows[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownRow, name)
	}
	return rs, nil
}

func (m *Manager) field(name string, f Field) (*rowState, error) {
	if !f.valid() {
		return nil, fmt.Errorf("%w: %d", models.ErrUnknownField, int(f))
	}
	return m.row(name)
}
