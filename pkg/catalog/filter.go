package catalog

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// FilterMetrics keeps the metrics matching at least one glob pattern, such
// as "system.cpu.*". No patterns keeps everything.
func FilterMetrics(metrics []string, patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return append([]string{}, metrics...), nil
	}

	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid metric pattern %q", pattern)
		}
	}

	var kept []string
	for _, metric := range metrics {
		for _, pattern := range patterns {
			// Patterns were validated above
			if ok, _ := doublestar.Match(pattern, metric); ok {
				kept = append(kept, metric)
				break
			}
		}
	}
	return kept, nil
}
