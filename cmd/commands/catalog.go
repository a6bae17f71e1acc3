package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/siglens/metrics-explorer/internal/cli"
	"github.com/siglens/metrics-explorer/pkg/catalog"
)

// CatalogResult is the output of the catalog command
type CatalogResult struct {
	Metrics      []string `json:"metrics,omitempty" yaml:"metrics,omitempty"`
	ScopeTags    []string `json:"scope_tags,omitempty" yaml:"scope_tags,omitempty"`
	GroupTags    []string `json:"group_tags,omitempty" yaml:"group_tags,omitempty"`
	Aggregations []string `json:"aggregations,omitempty" yaml:"aggregations,omitempty"`
}

// NewCatalogCommand creates the catalog command
func NewCatalogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog [kind]",
		Short: "List the metrics, tags and aggregations offered by the explorer",
		Long: `List the candidates offered in each query field.

Kinds:
  metrics       - Metric names
  scope         - Tags for the "from" field
  groupby       - Tags for the "by" field
  aggregations  - Aggregation functions
  all           - Everything (default)

Examples:
  # List everything
  metrics-explorer catalog

  # List metrics from another catalog as JSON
  metrics-explorer catalog metrics --catalog metrics.toml -o json`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"metrics", "scope", "groupby", "aggregations", "all"},
		RunE:      runCatalog,
	}
}

func runCatalog(cmd *cobra.Command, args []string) error {
	kind := "all"
	if len(args) > 0 {
		kind = strings.ToLower(args[0])
	}

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	_, c, err := LoadCatalog(cmd)
	if err != nil {
		return err
	}

	result, err := catalogResult(c, kind)
	if err != nil {
		return err
	}

	if format != cli.FormatText {
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	}
	if kind == "all" {
		return outputCatalogTable(cmd.OutOrStdout(), result)
	}
	for _, values := range [][]string{result.Metrics, result.ScopeTags, result.GroupTags, result.Aggregations} {
		for _, v := range values {
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}
	}
	return nil
}

func catalogResult(c *catalog.Catalog, kind string) (CatalogResult, error) {
	var aggs []string
	for _, agg := range c.AggregationOptions() {
		aggs = append(aggs, string(agg))
	}

	all := CatalogResult{
		Metrics:      c.MetricOptions(),
		ScopeTags:    append([]string{}, c.ScopeTags...),
		GroupTags:    append([]string{}, c.GroupTags...),
		Aggregations: aggs,
	}

	switch kind {
	case "all":
		return all, nil
	case "metrics":
		return CatalogResult{Metrics: all.Metrics}, nil
	case "scope":
		return CatalogResult{ScopeTags: all.ScopeTags}, nil
	case "groupby":
		return CatalogResult{GroupTags: all.GroupTags}, nil
	case "aggregations":
		return CatalogResult{Aggregations: all.Aggregations}, nil
	}
	return CatalogResult{}, fmt.Errorf("unknown catalog kind %q (use metrics, scope, groupby, aggregations or all)", kind)
}

func outputCatalogTable(w io.Writer, result CatalogResult) error {
	table := cli.NewTableFormatter(w)
	table.Header("KIND", "VALUE")
	for _, section := range []struct {
		kind   string
		values []string
	}{
		{"metric", result.Metrics},
		{"scope", result.ScopeTags},
		{"groupby", result.GroupTags},
		{"aggregation", result.Aggregations},
	} {
		for _, v := range section.values {
			table.Row(section.kind, v)
		}
	}
	return table.Flush()
}
