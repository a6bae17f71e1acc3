package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/siglens/metrics-explorer/internal/cli"
	"github.com/siglens/metrics-explorer/pkg/render"
	"github.com/siglens/metrics-explorer/pkg/session"
)

var renderPart string

// NewRenderCommand creates the render command
func NewRenderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [script.yaml]",
		Short: "Replay a session script and print the resulting page",
		Long: `Apply the actions of a session script to an empty query set and print
the result. Without a script a single default query is rendered. Use "-"
to read the script from stdin.

Text output is HTML; json and yaml print the query set state instead.

Parts:
  page      - The whole page (default)
  queries   - Only the query rows
  formulas  - Only the formula rows
  graphs    - Only the visualization slots

Example script:
  actions:
    - add: {}
    - select: {row: a, field: metric, value: system.cpu.idle}
    - select: {row: a, field: scope, value: cpu}
    - alias: {row: a, value: idle}`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRender,
	}

	cmd.Flags().StringVar(&renderPart, "part", "page", "Part of the page to render: page, queries, formulas or graphs")
	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	settings, c, err := LoadCatalog(cmd)
	if err != nil {
		return err
	}

	log := commandLogger(cmd)
	m := NewManager(settings, c, log)

	if len(args) == 0 {
		m.AddRow()
	} else {
		var script *session.Script
		if args[0] == "-" {
			script, err = session.Load(cmd.InOrStdin())
		} else {
			script, err = session.LoadFile(args[0])
		}
		if err != nil {
			return err
		}
		if err := session.Apply(m, script, log); err != nil {
			return err
		}
	}

	view := m.Snapshot()
	if format != cli.FormatText {
		return cli.OutputResults(cmd.OutOrStdout(), format, view)
	}

	var html string
	switch strings.ToLower(renderPart) {
	case "page":
		html, err = render.Page(view)
	case "queries":
		html, err = render.Queries(view)
	case "formulas":
		html, err = render.Formulas(view)
	case "graphs":
		html, err = render.Graphs(view)
	default:
		return fmt.Errorf("unknown part %q (use page, queries, formulas or graphs)", renderPart)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), html)
	return nil
}
