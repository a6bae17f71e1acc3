package queryset

import (
	"fmt"
	"strings"

	"github.com/siglens/metrics-explorer/pkg/models"
)

// Field identifies one typeahead widget of a query row
type Field int

const (
	FieldMetric Field = iota
	FieldScope
	FieldAggregation
	FieldGroupBy

	fieldCount = 4
)

// Fields returns every field in the order they appear in a row
func Fields() []Field {
	return []Field{FieldMetric, FieldScope, FieldAggregation, FieldGroupBy}
}

func (f Field) String() string {
	switch f {
	case FieldMetric:
		return "metric"
	case FieldScope:
		return "scope"
	case FieldAggregation:
		return "aggregation"
	case FieldGroupBy:
		return "group_by"
	default:
		return "unknown"
	}
}

// Class returns the element class the field is rendered with
func (f Field) Class() string {
	switch f {
	case FieldMetric:
		return "metrics"
	case FieldScope:
		return "everywhere"
	case FieldAggregation:
		return "agg-function"
	case FieldGroupBy:
		return "everything"
	default:
		return ""
	}
}

// MultiValued reports whether the field holds a chip list
func (f Field) MultiValued() bool {
	return f == FieldScope || f == FieldGroupBy
}

// Placeholder returns the text shown while the field has no value
func (f Field) Placeholder() string {
	switch f {
	case FieldMetric:
		return "Select a metric"
	case FieldScope:
		return "(everywhere)"
	case FieldGroupBy:
		return "(everything)"
	default:
		return ""
	}
}

func (f Field) valid() bool {
	return f >= 0 && f < fieldCount
}

// ParseField accepts a field name, its element class, or the label shown
// next to it ("from", "by")
func ParseField(s string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "metric", "metrics":
		return FieldMetric, nil
	case "scope", "everywhere", "from":
		return FieldScope, nil
	case "aggregation", "agg", "agg-function":
		return FieldAggregation, nil
	case "group_by", "groupby", "group-by", "everything", "by":
		return FieldGroupBy, nil
	}
	return 0, fmt.Errorf("%w: %q", models.ErrUnknownField, s)
}

// Widget is the presentation state of one field of one row
type Widget struct {
	Field Field  `json:"field" yaml:"field"`
	Input string `json:"input" yaml:"input"` // text displayed in the input
	Term  string `json:"term" yaml:"term"`   // text the suggestions are filtered by
	Open  bool   `json:"open" yaml:"open"`   // suggestion panel visible
	Chips int    `json:"chips" yaml:"chips"`
}

// Placeholder returns the placeholder attribute for the input. Chip lists
// replace the placeholder once they are non-empty.
func (w Widget) Placeholder() string {
	if w.Field.MultiValued() && w.Chips > 0 {
		return ""
	}
	return w.Field.Placeholder()
}

// Width returns the input width of a chip field: full width while empty,
// almost nothing once chips precede it
func (w Widget) Width() string {
	if !w.Field.MultiValued() {
		return ""
	}
	if w.Chips == 0 {
		return "100%"
	}
	return "5px"
}
