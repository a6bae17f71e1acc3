package models

import (
	"fmt"
	"sort"
	"strings"
)

// Aggregation is the function applied across the grouping tags of a query
type Aggregation string

const (
	AggregationMax Aggregation = "max by"
	AggregationMin Aggregation = "min by"
	AggregationAvg Aggregation = "avg by"
	AggregationSum Aggregation = "sum by"

	DefaultAggregation = AggregationAvg
)

// Aggregations returns the supported aggregations in display order
func Aggregations() []Aggregation {
	aggs := []Aggregation{AggregationMax, AggregationMin, AggregationAvg, AggregationSum}
	sort.Slice(aggs, func(i, j int) bool { return aggs[i] < aggs[j] })
	return aggs
}

// ParseAggregation maps a displayed aggregation verb to its Aggregation
func ParseAggregation(s string) (Aggregation, error) {
	normalized := strings.Join(strings.Fields(strings.ToLower(s)), " ")
	for _, agg := range Aggregations() {
		if string(agg) == normalized {
			return agg, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAggregation, s)
}

// Function returns the aggregation verb without the trailing "by"
func (a Aggregation) Function() string {
	return strings.TrimSuffix(string(a), " by")
}

// QueryRow is one query being built in the explorer
type QueryRow struct {
	Name        string      `json:"name" yaml:"name"`
	Metric      string      `json:"metric" yaml:"metric"`
	Scope       []string    `json:"scope" yaml:"scope"`
	GroupBy     []string    `json:"group_by" yaml:"group_by"`
	Aggregation Aggregation `json:"aggregation" yaml:"aggregation"`
	Alias       string      `json:"alias,omitempty" yaml:"alias,omitempty"`
}

// NewQueryRow returns an empty row named name with the default aggregation
func NewQueryRow(name string) QueryRow {
	return QueryRow{
		Name:        name,
		Scope:       []string{},
		GroupBy:     []string{},
		Aggregation: DefaultAggregation,
	}
}

// Clone returns a deep copy of the row. The tag lists are never shared.
func (q QueryRow) Clone() QueryRow {
	c := q
	c.Scope = append([]string{}, q.Scope...)
	c.GroupBy = append([]string{}, q.GroupBy...)
	return c
}

// HasSelections reports whether anything beyond the defaults has been chosen
func (q QueryRow) HasSelections() bool {
	return q.Metric != "" || len(q.Scope) > 0 || len(q.GroupBy) > 0 ||
		q.Alias != "" || (q.Aggregation != "" && q.Aggregation != DefaultAggregation)
}

// Expression renders the row as a single line, e.g.
// "avg by (host) system.cpu.idle{cpu}"
func (q QueryRow) Expression() string {
	if q.Metric == "" {
		return ""
	}

	agg := q.Aggregation
	if agg == "" {
		agg = DefaultAggregation
	}

	var b strings.Builder
	b.WriteString(string(agg))
	b.WriteString(" (")
	b.WriteString(strings.Join(q.GroupBy, ", "))
	b.WriteString(") ")
	b.WriteString(q.Metric)
	if len(q.Scope) > 0 {
		b.WriteString("{")
		b.WriteString(strings.Join(q.Scope, ", "))
		b.WriteString("}")
	}
	if q.Alias != "" {
		b.WriteString(" as ")
		b.WriteString(q.Alias)
	}
	return b.String()
}

// FormulaRow is a free-text expression over query rows, such as "2*a".
// It is never validated against the live row names.
type FormulaRow struct {
	ID         int    `json:"id" yaml:"id"`
	Expression string `json:"expression" yaml:"expression"`
}

// VisualizationSlot is the chart container paired with a query row
type VisualizationSlot struct {
	Query     string `json:"query" yaml:"query"`
	FullWidth bool   `json:"full_width" yaml:"full_width"`
}
