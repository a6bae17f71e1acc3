// Package candidates holds the selectable values behind each typeahead
// field of a query row.
package candidates

import "strings"

// Pool is the set of values still selectable for one multi-valued field.
// Values leave the pool when chosen and return to the end of it when the
// chip is removed. A Pool is owned by a single field of a single row.
type Pool struct {
	items []string
}

// NewPool creates a pool from values. Duplicates are dropped, keeping the
// first occurrence.
func NewPool(values []string) *Pool {
	return &Pool{items: Unique(values)}
}

// Take removes value from the pool. It returns false if value was not
// available.
func (p *Pool) Take(value string) bool {
	for i, item := range p.items {
		if item == value {
			p.items = append(p.items[:i], p.items[i+1:]...)
			return true
		}
	}
	return false
}

// Release returns value to the end of the pool. It returns false if value
// was already available.
func (p *Pool) Release(value string) bool {
	if p.Contains(value) {
		return false
	}
	p.items = append(p.items, value)
	return true
}

// Contains reports whether value is still available
func (p *Pool) Contains(value string) bool {
	for _, item := range p.items {
		if item == value {
			return true
		}
	}
	return false
}

// Len returns the number of available values
func (p *Pool) Len() int {
	return len(p.items)
}

// Items returns a copy of the available values in pool order
func (p *Pool) Items() []string {
	return append([]string{}, p.items...)
}

// Search returns the available values containing term, ignoring case
func (p *Pool) Search(term string) []string {
	return Filter(p.items, term)
}

// Clone returns an independent copy of the pool
func (p *Pool) Clone() *Pool {
	return &Pool{items: p.Items()}
}

// Filter returns the values containing term, ignoring case, in their
// original order. An empty term matches everything.
func Filter(values []string, term string) []string {
	needle := strings.ToLower(term)
	matches := make([]string, 0, len(values))
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), needle) {
			matches = append(matches, v)
		}
	}
	return matches
}

// Unique returns values without duplicates, keeping first occurrences
func Unique(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
