// Package catalog supplies the candidate lists offered by the query
// builder: metric names, scope tags, grouping tags and aggregations.
package catalog

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/siglens/metrics-explorer/pkg/candidates"
	"github.com/siglens/metrics-explorer/pkg/models"
)

// Catalog holds the candidate lists for every query field
type Catalog struct {
	Metrics      []string `yaml:"metrics" toml:"metrics" json:"metrics"`
	ScopeTags    []string `yaml:"scope_tags" toml:"scope_tags" json:"scope_tags"`
	GroupTags    []string `yaml:"group_tags" toml:"group_tags" json:"group_tags"`
	Aggregations []string `yaml:"aggregations,omitempty" toml:"aggregations" json:"aggregations,omitempty"`
}

// Default returns the built-in candidate lists
func Default() *Catalog {
	return &Catalog{
		Metrics: []string{
			"system.cpu.interrupt",
			"system.disk.used",
			"system.cpu.stolen",
			"system.cpu.num_cores",
			"system.cpu.stolen",
			"system.cpu.idle",
			"system.cpu.guest",
			"system.cpu.system",
		},
		ScopeTags: []string{
			"disk space",
			"memory space",
			"cpu",
		},
		GroupTags: []string{
			"device",
			"device_name",
			"host",
		},
		Aggregations: aggregationNames(),
	}
}

// Clone returns a deep copy of the catalog
func (c *Catalog) Clone() *Catalog {
	return &Catalog{
		Metrics:      append([]string{}, c.Metrics...),
		ScopeTags:    append([]string{}, c.ScopeTags...),
		GroupTags:    append([]string{}, c.GroupTags...),
		Aggregations: append([]string{}, c.Aggregations...),
	}
}

// MetricOptions returns the metric names in display order without
// duplicates
func (c *Catalog) MetricOptions() []string {
	return candidates.Unique(c.Metrics)
}

// HasMetric reports whether name is a known metric
func (c *Catalog) HasMetric(name string) bool {
	for _, m := range c.Metrics {
		if m == name {
			return true
		}
	}
	return false
}

// AggregationOptions returns the aggregations in display order. Entries
// that are not supported aggregations are skipped.
func (c *Catalog) AggregationOptions() []models.Aggregation {
	if len(c.Aggregations) == 0 {
		return models.Aggregations()
	}

	seen := make(map[models.Aggregation]bool)
	var opts []models.Aggregation
	for _, name := range c.Aggregations {
		agg, err := models.ParseAggregation(name)
		if err != nil || seen[agg] {
			continue
		}
		seen[agg] = true
		opts = append(opts, agg)
	}

	// Display order is lexicographic regardless of the source order
	sort.Slice(opts, func(i, j int) bool { return opts[i] < opts[j] })
	return opts
}

// Source provides candidate lists. Implementations may be backed by a
// metadata service, so every call takes a context.
type Source interface {
	Metrics(ctx context.Context) ([]string, error)
	ScopeTags(ctx context.Context) ([]string, error)
	GroupTags(ctx context.Context) ([]string, error)
	Aggregations(ctx context.Context) ([]string, error)
}

// StaticSource serves a fixed catalog
type StaticSource struct {
	Catalog *Catalog
}

// NewStaticSource wraps c. A nil catalog serves Default().
func NewStaticSource(c *Catalog) *StaticSource {
	if c == nil {
		c = Default()
	}
	return &StaticSource{Catalog: c.Clone()}
}

func (s *StaticSource) Metrics(ctx context.Context) ([]string, error) {
	return append([]string{}, s.Catalog.Metrics...), ctx.Err()
}

func (s *StaticSource) ScopeTags(ctx context.Context) ([]string, error) {
	return append([]string{}, s.Catalog.ScopeTags...), ctx.Err()
}

func (s *StaticSource) GroupTags(ctx context.Context) ([]string, error) {
	return append([]string{}, s.Catalog.GroupTags...), ctx.Err()
}

func (s *StaticSource) Aggregations(ctx context.Context) ([]string, error) {
	return append([]string{}, s.Catalog.Aggregations...), ctx.Err()
}

// Fetch loads all four lists from src concurrently. The first failure
// cancels the remaining requests.
func Fetch(ctx context.Context, src Source) (*Catalog, error) {
	var c Catalog
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		metrics, err := src.Metrics(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch metrics: %w", err)
		}
		c.Metrics = metrics
		return nil
	})
	g.Go(func() error {
		tags, err := src.ScopeTags(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch scope tags: %w", err)
		}
		c.ScopeTags = tags
		return nil
	})
	g.Go(func() error {
		tags, err := src.GroupTags(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch group tags: %w", err)
		}
		c.GroupTags = tags
		return nil
	})
	g.Go(func() error {
		aggs, err := src.Aggregations(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch aggregations: %w", err)
		}
		c.Aggregations = aggs
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(c.Aggregations) == 0 {
		c.Aggregations = aggregationNames()
	}
	return &c, nil
}

func aggregationNames() []string {
	aggs := models.Aggregations()
	names := make([]string, len(aggs))
	for i, agg := range aggs {
		names[i] = string(agg)
	}
	return names
}
