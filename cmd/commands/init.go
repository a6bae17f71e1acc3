package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/siglens/metrics-explorer/internal/cli"
	"github.com/siglens/metrics-explorer/pkg/files"
)

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a metrics explorer project",
		Long: `Creates the .metrics-explorer folder in the current directory with a
default settings.yaml and a catalog.yaml holding the built-in metrics and
tags. Existing files are kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to determine current directory: %w", err)
			}

			existed := files.Exists()
			if err := files.InitProjectStructure(); err != nil {
				return fmt.Errorf("failed to initialize project structure: %w", err)
			}

			if existed {
				cli.PrintInfo("%s already exists in %s, missing files were restored", files.ProjectDir, cwd)
				return nil
			}
			cli.PrintSuccess("Created %s in %s", files.ProjectDir, cwd)
			cli.PrintInfo("Edit %s to change the offered metrics and tags", files.CatalogPath())
			return nil
		},
	}
}
