// Package render turns a query set snapshot into the HTML fragments of the
// metrics explorer page. Every function is pure: the same View always
// renders to the same markup.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/siglens/metrics-explorer/pkg/models"
	"github.com/siglens/metrics-explorer/pkg/queryset"
)

const templates = `
{{- define "page" -}}
<div id="metrics-explorer">
{{template "queries" .}}
{{- if .FormulasEnabled}}
{{template "formulas" .}}
{{- end}}
{{- if .VisualizationsEnabled}}
{{template "graphs" .}}
{{- end}}
</div>
{{- end}}

{{- define "queries" -}}
<div id="metrics-queries">
{{- range .Rows}}
{{template "row" (rowData . $.CloseIconVisible)}}
{{- end}}
</div>
{{- end}}

{{- define "row" -}}
{{- $row := .View.Row -}}
<div class="metrics-query" data-query="{{$row.Name}}">
  <div class="query-box">
    <div class="query-name">{{$row.Name}}</div>
    {{with .Metric}}<input type="text" class="metrics"{{with .Placeholder}} placeholder="{{.}}"{{end}} value="{{.Input}}">{{end}}
    <div>from</div>
    <div class="tag-container">
      {{- range $row.Scope}}
      <span class="tag">{{.}}<span class="close">×</span></span>
      {{- end}}
      {{with .Scope}}<input type="text" class="everywhere"{{with .Placeholder}} placeholder="{{.}}"{{end}} value="{{.Input}}" style="width: {{.Width}}">{{end}}
    </div>
    {{with .Aggregation}}<input class="agg-function" value="{{.Input}}">{{end}}
    <div class="value-container">
      {{- range $row.GroupBy}}
      <span class="value">{{.}}<span class="close">×</span></span>
      {{- end}}
      {{with .GroupBy}}<input class="everything"{{with .Placeholder}} placeholder="{{.}}"{{end}} value="{{.Input}}" style="width: {{.Width}}">{{end}}
    </div>
  </div>
  <div>
    <div class="alias-box">
      <div class="as-btn"{{if .View.AliasOpen}} style="display: none;"{{end}}>as...</div>
      <div class="alias-filling-box"{{if not .View.AliasOpen}} style="display: none;"{{end}}>
        <div>as</div>
        <input type="text" placeholder="alias" value="{{$row.Alias}}">
        <div> X </div>
      </div>
    </div>
    <div class="remove-query"{{if not .CloseVisible}} style="display: none;"{{end}}>X</div>
  </div>
</div>
{{- end}}

{{- define "formulas" -}}
<div id="metrics-formula">
{{- range .Formulas}}
{{template "formula" .}}
{{- end}}
</div>
{{- end}}

{{- define "formula" -}}
<div class="metrics-query" data-formula="{{.ID}}">
  <input class="formula" placeholder="Formula, eg. 2*a" value="{{.Expression}}">
  <div>
    <div class="remove-query">X</div>
  </div>
</div>
{{- end}}

{{- define "graphs" -}}
<div id="metrics-graphs">
{{- range .Slots}}
{{template "graph" .}}
{{- end}}
</div>
{{- end}}

{{- define "graph" -}}
<div class="metrics-graph{{if .FullWidth}} full-width{{end}}" data-query="{{.Query}}"></div>
{{- end}}
`

type rowTemplateData struct {
	View         queryset.RowView
	CloseVisible bool
	Metric       queryset.Widget
	Scope        queryset.Widget
	Aggregation  queryset.Widget
	GroupBy      queryset.Widget
}

func newRowData(v queryset.RowView, closeVisible bool) rowTemplateData {
	return rowTemplateData{
		View:         v,
		CloseVisible: closeVisible,
		Metric:       v.Widget(queryset.FieldMetric),
		Scope:        v.Widget(queryset.FieldScope),
		Aggregation:  v.Widget(queryset.FieldAggregation),
		GroupBy:      v.Widget(queryset.FieldGroupBy),
	}
}

var tmpl = template.Must(template.New("metrics-explorer").
	Funcs(template.FuncMap{"rowData": newRowData}).
	Parse(templates))

func execute(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}

// Page renders the query rows, formula rows and visualization slots
func Page(v queryset.View) (string, error) {
	return execute("page", v)
}

// Queries renders the #metrics-queries container
func Queries(v queryset.View) (string, error) {
	return execute("queries", v)
}

// Row renders a single .metrics-query element
func Row(v queryset.RowView, closeVisible bool) (string, error) {
	return execute("row", newRowData(v, closeVisible))
}

// Formulas renders the #metrics-formula container
func Formulas(v queryset.View) (string, error) {
	return execute("formulas", v)
}

// Formula renders a single formula row
func Formula(f models.FormulaRow) (string, error) {
	return execute("formula", f)
}

// Graphs renders the #metrics-graphs container
func Graphs(v queryset.View) (string, error) {
	return execute("graphs", v)
}
