package commands

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/siglens/metrics-explorer/internal/cli"
	"github.com/siglens/metrics-explorer/pkg/catalog"
	"github.com/siglens/metrics-explorer/pkg/files"
	"github.com/siglens/metrics-explorer/pkg/logging"
	"github.com/siglens/metrics-explorer/pkg/models"
	"github.com/siglens/metrics-explorer/pkg/queryset"
)

// GlobalFlags holds the flags shared by every command
type GlobalFlags struct {
	Catalog string
	Debug   bool
	Output  string
	Quiet   bool
	NoColor bool
}

// BindGlobalFlags registers the shared flags as persistent flags of cmd
func BindGlobalFlags(cmd *cobra.Command, f *GlobalFlags) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&f.Catalog, "catalog", "", "Catalog file with metrics and tags (yaml or toml)")
	pf.BoolVar(&f.Debug, "debug", false, "Write debug logs")
	pf.StringVarP(&f.Output, "output", "o", "text", "Output format: text, json or yaml")
	pf.BoolVarP(&f.Quiet, "quiet", "q", false, "Suppress informational messages")
	pf.BoolVar(&f.NoColor, "no-color", false, "Disable colored output")
}

func outputFormat(cmd *cobra.Command) (cli.OutputFormat, error) {
	value, _ := cmd.Flags().GetString("output")
	return cli.ParseOutputFormat(value)
}

// LoadCatalog reads the settings and the catalog they point to, honoring
// the --catalog flag
func LoadCatalog(cmd *cobra.Command) (*models.Settings, *catalog.Catalog, error) {
	settings, err := files.ReadSettings()
	if err != nil {
		return nil, nil, err
	}

	override, _ := cmd.Flags().GetString("catalog")
	c, err := files.LoadCatalog(cmd.Context(), settings, override)
	if err != nil {
		return nil, nil, err
	}
	return settings, c, nil
}

// NewManager creates a query set configured by settings
func NewManager(settings *models.Settings, c *catalog.Catalog, log zerolog.Logger) *queryset.Manager {
	opts := []queryset.Option{queryset.WithLogger(log)}
	if !settings.UI.ShowVisualizations {
		opts = append(opts, queryset.WithoutVisualizations())
	}
	if !settings.UI.Formulas {
		opts = append(opts, queryset.WithoutFormulas())
	}
	return queryset.New(c, opts...)
}

// commandLogger logs to stderr for non-interactive commands. Only warnings
// and errors are shown unless --debug is set.
func commandLogger(cmd *cobra.Command) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = zerolog.DebugLevel
	}
	return logging.Console(level, cli.NoColor())
}

// FileLogger opens the debug log used while the explorer owns the
// terminal. Logging is off unless debug is set or the configured level is
// debug or lower.
func FileLogger(settings *models.Settings, debug bool) (zerolog.Logger, io.Closer, error) {
	level, err := logging.ParseLevel(settings.Logging.Level)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	if debug {
		level = zerolog.DebugLevel
	}
	if level > zerolog.DebugLevel || settings.Logging.File == "" {
		return zerolog.Nop(), io.NopCloser(nil), nil
	}
	return logging.OpenFile(settings.Logging.File, level)
}
