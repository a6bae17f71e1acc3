package models

// Settings represents the application configuration
type Settings struct {
	Catalog CatalogSettings `yaml:"catalog"`
	UI      UISettings      `yaml:"ui"`
	Logging LoggingSettings `yaml:"logging"`
}

// CatalogSettings controls where candidate lists come from
type CatalogSettings struct {
	Path           string   `yaml:"path"`
	MetricPatterns []string `yaml:"metric_patterns"`
}

// UISettings controls which parts of the explorer are shown
type UISettings struct {
	ShowVisualizations bool `yaml:"show_visualizations"`
	Formulas           bool `yaml:"formulas"`
}

// LoggingSettings controls the debug log
type LoggingSettings struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // relative to the working directory
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Catalog: CatalogSettings{
			Path:           ".metrics-explorer/catalog.yaml",
			MetricPatterns: []string{},
		},
		UI: UISettings{
			ShowVisualizations: true,
			Formulas:           true,
		},
		Logging: LoggingSettings{
			Level: "info",
			File:  ".metrics-explorer/debug.log",
		},
	}
}
