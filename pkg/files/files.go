package files

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/siglens/metrics-explorer/pkg/catalog"
	"github.com/siglens/metrics-explorer/pkg/models"
)

const (
	ProjectDir   = ".metrics-explorer"
	SettingsFile = "settings.yaml"
	CatalogFile  = "catalog.yaml"
	LogFile      = "debug.log"
)

// InitProjectStructure creates the project directory with default settings
// and catalog files. Existing files are left untouched.
func InitProjectStructure() error {
	if err := os.MkdirAll(ProjectDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ProjectDir, err)
	}

	if _, err := os.Stat(SettingsPath()); os.IsNotExist(err) {
		if err := WriteSettings(models.DefaultSettings()); err != nil {
			return err
		}
	}

	if _, err := os.Stat(CatalogPath()); os.IsNotExist(err) {
		if err := catalog.Save(CatalogPath(), catalog.Default()); err != nil {
			return err
		}
	}

	return nil
}

// Exists reports whether the project directory has been initialized
func Exists() bool {
	info, err := os.Stat(ProjectDir)
	return err == nil && info.IsDir()
}

// SettingsPath returns the location of the settings file
func SettingsPath() string {
	return filepath.Join(ProjectDir, SettingsFile)
}

// CatalogPath returns the default location of the catalog file
func CatalogPath() string {
	return filepath.Join(ProjectDir, CatalogFile)
}

// ReadSettings loads the settings file. A missing file yields the defaults.
func ReadSettings() (*models.Settings, error) {
	data, err := os.ReadFile(SettingsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	// Start from the defaults so missing keys keep their default values
	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return settings, nil
}

// WriteSettings saves settings to the settings file
func WriteSettings(settings *models.Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(ProjectDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ProjectDir, err)
	}

	if err := os.WriteFile(SettingsPath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// LoadCatalog fetches the catalog named by settings, or by override when
// set. When the configured file does not exist the built-in catalog is
// used. Metric patterns from the settings are applied to the result.
func LoadCatalog(ctx context.Context, settings *models.Settings, override string) (*catalog.Catalog, error) {
	path := settings.Catalog.Path
	if override != "" {
		path = override
	}

	var src catalog.Source
	if _, err := os.Stat(path); err == nil {
		src = catalog.NewFileSource(path)
	} else if override != "" {
		return nil, fmt.Errorf("catalog file not found: %s", override)
	} else {
		src = catalog.NewStaticSource(nil)
	}

	c, err := catalog.Fetch(ctx, src)
	if err != nil {
		return nil, err
	}

	metrics, err := catalog.FilterMetrics(c.Metrics, settings.Catalog.MetricPatterns)
	if err != nil {
		return nil, err
	}
	c.Metrics = metrics
	return c, nil
}
