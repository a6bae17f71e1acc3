package queryset

import (
	"fmt"

	"github.com/siglens/metrics-explorer/pkg/candidates"
	"github.com/siglens/metrics-explorer/pkg/models"
)

// Select applies a suggestion chosen in field f of row name.
//
// Metric and aggregation are overwritten and the input keeps the chosen
// text. Scope and group-by values are appended as chips, taken out of the
// row's candidate pool and the typed text is cleared. A value that is not
// an available candidate is rejected with models.ErrNotCandidate, which is
// also what makes choosing the same chip twice impossible.
func (m *Manager) Select(name string, f Field, value string) error {
	rs, err := m.field(name, f)
	if err != nil {
		return err
	}

	switch f {
	case FieldMetric:
		if !m.catalog.HasMetric(value) {
			return fmt.Errorf("%w: metric %q", models.ErrNotCandidate, value)
		}
		rs.record.Metric = value
		rs.widgets[f] = widgetState{input: value}

	case FieldAggregation:
		agg, err := models.ParseAggregation(value)
		if err != nil {
			return err
		}
		if !containsAggregation(m.catalog.AggregationOptions(), agg) {
			return fmt.Errorf("%w: aggregation %q", models.ErrNotCandidate, value)
		}
		rs.record.Aggregation = agg
		rs.widgets[f] = widgetState{input: string(agg)}

	default:
		if !rs.pool(f).Take(value) {
			return fmt.Errorf("%w: %s %q", models.ErrNotCandidate, f, value)
		}
		list := rs.list(f)
		*list = append(*list, value)
		rs.widgets[f] = widgetState{}
	}

	m.log.Debug().
		Str("row", name).
		Str("field", f.String()).
		Str("value", value).
		Msg("selected")
	return nil
}

// Deselect removes the chip value from field f of row name and returns it
// to the candidate pool so it can be chosen again
func (m *Manager) Deselect(name string, f Field, value string) error {
	rs, err := m.field(name, f)
	if err != nil {
		return err
	}
	if !f.MultiValued() {
		return fmt.Errorf("%w: %s has no chips", models.ErrUnknownField, f)
	}

	list := rs.list(f)
	i := indexOf(*list, value)
	if i < 0 {
		return fmt.Errorf("%w: %s %q is not selected", models.ErrNotCandidate, f, value)
	}
	*list = append((*list)[:i], (*list)[i+1:]...)
	rs.pool(f).Release(value)

	m.log.Debug().
		Str("row", name).
		Str("field", f.String()).
		Str("value", value).
		Msg("deselected")
	return nil
}

// SelectMetric sets the metric of row name
func (m *Manager) SelectMetric(name, metric string) error {
	return m.Select(name, FieldMetric, metric)
}

// SelectAggregation sets the aggregation of row name
func (m *Manager) SelectAggregation(name, agg string) error {
	return m.Select(name, FieldAggregation, agg)
}

// SelectScope adds a scope chip to row name
func (m *Manager) SelectScope(name, tag string) error {
	return m.Select(name, FieldScope, tag)
}

// RemoveScope removes a scope chip from row name
func (m *Manager) RemoveScope(name, tag string) error {
	return m.Deselect(name, FieldScope, tag)
}

// SelectGroupBy adds a grouping chip to row name
func (m *Manager) SelectGroupBy(name, tag string) error {
	return m.Select(name, FieldGroupBy, tag)
}

// RemoveGroupBy removes a grouping chip from row name
func (m *Manager) RemoveGroupBy(name, tag string) error {
	return m.Deselect(name, FieldGroupBy, tag)
}

// SetInput records text typed into field f and opens its suggestions
func (m *Manager) SetInput(name string, f Field, text string) error {
	rs, err := m.field(name, f)
	if err != nil {
		return err
	}
	rs.widgets[f] = widgetState{input: text, term: text, open: true}
	return nil
}

// Activate handles a click on field f. A closed panel opens with the full
// candidate list; an open one closes. It returns whether the panel is open.
func (m *Manager) Activate(name string, f Field) (bool, error) {
	rs, err := m.field(name, f)
	if err != nil {
		return false, err
	}

	ws := &rs.widgets[f]
	ws.open = !ws.open
	ws.term = ""
	return ws.open, nil
}

// Close hides the suggestion panel of field f
func (m *Manager) Close(name string, f Field) error {
	rs, err := m.field(name, f)
	if err != nil {
		return err
	}
	rs.widgets[f].open = false
	return nil
}

// Search returns the candidates of field f in row name matching term,
// ignoring case. Metric candidates keep catalog order, aggregations are
// sorted, and chip fields only offer values not chosen yet.
func (m *Manager) Search(name string, f Field, term string) ([]string, error) {
	rs, err := m.field(name, f)
	if err != nil {
		return nil, err
	}

	switch f {
	case FieldMetric:
		return candidates.Filter(m.catalog.MetricOptions(), term), nil
	case FieldAggregation:
		opts := m.catalog.AggregationOptions()
		names := make([]string, len(opts))
		for i, agg := range opts {
			names[i] = string(agg)
		}
		return candidates.Filter(names, term), nil
	default:
		return rs.pool(f).Search(term), nil
	}
}

// Suggestions returns the candidates the panel of field f currently lists.
// A closed panel lists nothing.
func (m *Manager) Suggestions(name string, f Field) ([]string, error) {
	rs, err := m.field(name, f)
	if err != nil {
		return nil, err
	}
	if !rs.widgets[f].open {
		return []string{}, nil
	}
	return m.Search(name, f, rs.widgets[f].term)
}

// Widget returns the presentation state of field f in row name
func (m *Manager) Widget(name string, f Field) (Widget, error) {
	rs, err := m.field(name, f)
	if err != nil {
		return Widget{}, err
	}
	return rs.widget(f), nil
}

func containsAggregation(aggs []models.Aggregation, agg models.Aggregation) bool {
	for _, a := range aggs {
		if a == agg {
			return true
		}
	}
	return false
}
