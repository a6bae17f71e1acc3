package candidates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var scopeTags = []string{"disk space", "memory space", "cpu"}

func TestNewPool(t *testing.T) {
	source := []string{"cpu", "host", "cpu"}
	p := NewPool(source)

	assert.Equal(t, []string{"cpu", "host"}, p.Items())
	assert.Equal(t, 2, p.Len())

	// The pool must not alias the caller's slice
	source[1] = "changed"
	assert.Equal(t, []string{"cpu", "host"}, p.Items())
}

func TestPool_TakeRelease(t *testing.T) {
	p := NewPool(scopeTags)

	assert.True(t, p.Take("memory space"))
	assert.False(t, p.Contains("memory space"))
	assert.False(t, p.Take("memory space"), "second take must fail")
	assert.Equal(t, []string{"disk space", "cpu"}, p.Items())

	assert.True(t, p.Release("memory space"))
	assert.False(t, p.Release("memory space"), "value already available")
	assert.Equal(t, []string{"disk space", "cpu", "memory space"}, p.Items())
}

func TestPool_RoundTripKeepsItemSet(t *testing.T) {
	for _, value := range scopeTags {
		p := NewPool(scopeTags)
		before := p.Items()

		assert.True(t, p.Take(value))
		assert.True(t, p.Release(value))

		assert.ElementsMatch(t, before, p.Items())
	}
}

func TestPool_Search(t *testing.T) {
	p := NewPool(scopeTags)

	tests := []struct {
		name string
		term string
		want []string
	}{
		{"empty term lists everything", "", []string{"disk space", "memory space", "cpu"}},
		{"substring", "space", []string{"disk space", "memory space"}},
		{"case insensitive", "CPU", []string{"cpu"}},
		{"no match", "gpu", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Search(tt.term))
		})
	}

	p.Take("cpu")
	assert.Empty(t, p.Search("cpu"), "taken values are not searchable")
}

func TestPool_ItemsIsCopy(t *testing.T) {
	p := NewPool(scopeTags)
	items := p.Items()
	items[0] = "mutated"

	assert.True(t, p.Contains("disk space"))
}

func TestPool_Clone(t *testing.T) {
	p := NewPool(scopeTags)
	c := p.Clone()
	c.Take("cpu")

	assert.True(t, p.Contains("cpu"))
	assert.False(t, c.Contains("cpu"))
}

func TestFilter(t *testing.T) {
	metrics := []string{"system.cpu.idle", "system.disk.used", "system.cpu.guest"}

	assert.Equal(t, []string{"system.cpu.idle", "system.cpu.guest"}, Filter(metrics, "Cpu"))
	assert.Equal(t, metrics, Filter(metrics, ""))
	assert.Empty(t, Filter(nil, "x"))
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Unique([]string{"a", "b", "a", "c", "b"}))
	assert.Empty(t, Unique(nil))
}
