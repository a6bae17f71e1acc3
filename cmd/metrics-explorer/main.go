package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/siglens/metrics-explorer/cmd/commands"
	"github.com/siglens/metrics-explorer/internal/cli"
	"github.com/siglens/metrics-explorer/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var flags commands.GlobalFlags

var rootCmd = &cobra.Command{
	Use:   "metrics-explorer",
	Short: "Terminal-based builder for metric queries",
	Long: `Metrics explorer lets you compose metric queries row by row: pick a
metric, narrow it with scope tags, choose an aggregation and group the
result. Every new query starts from the previous one.

Run without arguments to open the interactive explorer, or use 'render' to
replay a session script without a terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(flags.Quiet, flags.NoColor)
	},
	RunE: runExplorer,
}

func runExplorer(cmd *cobra.Command, args []string) error {
	if !cli.IsTerminal(os.Stdout) || !cli.IsTerminal(os.Stdin) {
		return errors.New("the explorer needs a terminal, use 'metrics-explorer render' for non-interactive output")
	}

	settings, cat, err := commands.LoadCatalog(cmd)
	if err != nil {
		return err
	}

	log, closer, err := commands.FileLogger(settings, flags.Debug)
	if err != nil {
		return err
	}
	defer closer.Close()

	m := commands.NewManager(settings, cat, log)
	app := tui.NewApp(m, tui.WithLogger(log))

	log.Debug().Int("metrics", len(cat.Metrics)).Msg("explorer started")
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}
	return nil
}

func init() {
	commands.BindGlobalFlags(rootCmd, &flags)

	rootCmd.AddCommand(commands.NewInitCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(version))
	rootCmd.AddCommand(commands.NewCatalogCommand())
	rootCmd.AddCommand(commands.NewRenderCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
