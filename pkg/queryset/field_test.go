package queryset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siglens/metrics-explorer/pkg/models"
)

func TestParseField(t *testing.T) {
	tests := []struct {
		input string
		want  Field
	}{
		{"metric", FieldMetric},
		{"metrics", FieldMetric},
		{"scope", FieldScope},
		{"everywhere", FieldScope},
		{"From", FieldScope},
		{"aggregation", FieldAggregation},
		{"agg-function", FieldAggregation},
		{"group_by", FieldGroupBy},
		{"everything", FieldGroupBy},
		{" by ", FieldGroupBy},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseField(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseField("alias")
	assert.ErrorIs(t, err, models.ErrUnknownField)
}

func TestFieldNamesRoundTrip(t *testing.T) {
	for _, f := range Fields() {
		parsed, err := ParseField(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)

		parsed, err = ParseField(f.Class())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}
}

func TestWidgetPresentation(t *testing.T) {
	tests := []struct {
		name            string
		widget          Widget
		wantPlaceholder string
		wantWidth       string
	}{
		{"metric", Widget{Field: FieldMetric}, "Select a metric", ""},
		{"aggregation", Widget{Field: FieldAggregation}, "", ""},
		{"empty scope", Widget{Field: FieldScope}, "(everywhere)", "100%"},
		{"scope with chips", Widget{Field: FieldScope, Chips: 2}, "", "5px"},
		{"empty group by", Widget{Field: FieldGroupBy}, "(everything)", "100%"},
		{"group by with chips", Widget{Field: FieldGroupBy, Chips: 1}, "", "5px"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantPlaceholder, tt.widget.Placeholder())
			assert.Equal(t, tt.wantWidth, tt.widget.Width())
		})
	}
}

func TestFieldMultiValued(t *testing.T) {
	assert.False(t, FieldMetric.MultiValued())
	assert.True(t, FieldScope.MultiValued())
	assert.False(t, FieldAggregation.MultiValued())
	assert.True(t, FieldGroupBy.MultiValued())
	assert.Equal(t, "unknown", Field(7).String())
}
