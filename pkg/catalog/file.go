package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads a catalog file. The format is chosen by extension: .toml is
// decoded as TOML, anything else as YAML.
func Load(path string) (*Catalog, error) {
	var c Catalog

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		metadata, err := toml.DecodeFile(path, &c)
		if err != nil {
			return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
		}

		if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
			var unknown []string
			for _, key := range undecoded {
				unknown = append(unknown, key.String())
			}
			return nil, fmt.Errorf("unknown fields in catalog %s: %s", path, strings.Join(unknown, ", "))
		}

	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
		}
	}

	return &c, nil
}

// Save writes c to path as YAML
func Save(path string, c *Catalog) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create catalog directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	// Write atomically
	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}

	if err := os.Rename(tmpFile, path); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("failed to save catalog: %w", err)
	}

	return nil
}

// FileSource serves a catalog file, loading it on first use
type FileSource struct {
	mu      sync.RWMutex
	path    string
	catalog *Catalog
}

// NewFileSource creates a source for the catalog file at path
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Path returns the catalog file location
func (f *FileSource) Path() string {
	return f.path
}

// Reload discards the cached catalog so the next call reads the file again
func (f *FileSource) Reload() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.catalog = nil
}

func (f *FileSource) load(ctx context.Context) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.mu.RLock()
	c := f.catalog
	f.mu.RUnlock()
	if c != nil {
		return c, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.catalog == nil {
		loaded, err := Load(f.path)
		if err != nil {
			return nil, err
		}
		f.catalog = loaded
	}
	return f.catalog, nil
}

func (f *FileSource) Metrics(ctx context.Context) ([]string, error) {
	c, err := f.load(ctx)
	if err != nil {
		return nil, err
	}
	return append([]string{}, c.Metrics...), nil
}

func (f *FileSource) ScopeTags(ctx context.Context) ([]string, error) {
	c, err := f.load(ctx)
	if err != nil {
		return nil, err
	}
	return append([]string{}, c.ScopeTags...), nil
}

func (f *FileSource) GroupTags(ctx context.Context) ([]string, error) {
	c, err := f.load(ctx)
	if err != nil {
		return nil, err
	}
	return append([]string{}, c.GroupTags...), nil
}

func (f *FileSource) Aggregations(ctx context.Context) ([]string, error) {
	c, err := f.load(ctx)
	if err != nil {
		return nil, err
	}
	return append([]string{}, c.Aggregations...), nil
}
