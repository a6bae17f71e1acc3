package queryset

import (
	"github.com/siglens/metrics-explorer/pkg/candidates"
	"github.com/siglens/metrics-explorer/pkg/catalog"
	"github.com/siglens/metrics-explorer/pkg/models"
)

// DeriveRow builds the record for a new row named name. When prev is not
// nil its metric, scope, group-by and aggregation are carried over so the
// user can continue from the last configuration. The alias is not.
func DeriveRow(prev *models.QueryRow, name string) models.QueryRow {
	row := models.NewQueryRow(name)
	if prev == nil {
		return row
	}

	copied := prev.Clone()
	row.Metric = copied.Metric
	row.Scope = copied.Scope
	row.GroupBy = copied.GroupBy
	if copied.Aggregation != "" {
		row.Aggregation = copied.Aggregation
	}
	return row
}

type widgetState struct {
	input string
	term  string
	open  bool
}

// rowState is a record plus everything needed to keep it in sync with its
// widgets: one candidate pool per chip field and the input state per field
type rowState struct {
	record    models.QueryRow
	scope     *candidates.Pool
	groupBy   *candidates.Pool
	widgets   [fieldCount]widgetState
	aliasOpen bool
}

func newRowState(record models.QueryRow, cat *catalog.Catalog) *rowState {
	rs := &rowState{
		record:  record,
		scope:   candidates.NewPool(cat.ScopeTags),
		groupBy: candidates.NewPool(cat.GroupTags),
	}

	// Seeded selections are no longer available
	for _, tag := range record.Scope {
		rs.scope.Take(tag)
	}
	for _, tag := range record.GroupBy {
		rs.groupBy.Take(tag)
	}

	rs.widgets[FieldMetric].input = record.Metric
	rs.widgets[FieldAggregation].input = string(record.Aggregation)
	return rs
}

func (rs *rowState) pool(f Field) *candidates.Pool {
	switch f {
	case FieldScope:
		return rs.scope
	case FieldGroupBy:
		return rs.groupBy
	default:
		return nil
	}
}

func (rs *rowState) list(f Field) *[]string {
	switch f {
	case FieldScope:
		return &rs.record.Scope
	case FieldGroupBy:
		return &rs.record.GroupBy
	default:
		return nil
	}
}

func (rs *rowState) widget(f Field) Widget {
	ws := rs.widgets[f]
	w := Widget{
		Field: f,
		Input: ws.input,
		Term:  ws.term,
		Open:  ws.open,
	}
	if list := rs.list(f); list != nil {
		w.Chips = len(*list)
	}
	return w
}

func (rs *rowState) view() RowView {
	v := RowView{
		Row:       rs.record.Clone(),
		Widgets:   make([]Widget, fieldCount),
		AliasOpen: rs.aliasOpen,
	}
	for _, f := range Fields() {
		v.Widgets[f] = rs.widget(f)
	}
	return v
}

func indexOf(values []string, v string) int {
	for i, item := range values {
		if item == v {
			return i
		}
	}
	return -1
}
