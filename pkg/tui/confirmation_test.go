package tui

import (
	"testing"

	"github.com/acarl005/stripansi"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestConfirmationModel(t *testing.T) {
	tests := []struct {
		name          string
		key           tea.KeyMsg
		wantConfirmed bool
		wantCancelled bool
		wantActive    bool
	}{
		{"yes", runes("y"), true, false, false},
		{"upper yes", runes("Y"), true, false, false},
		{"no", runes("n"), false, true, false},
		{"escape", key(tea.KeyEsc), false, true, false},
		{"other keys are ignored", runes("x"), false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var confirmed, cancelled bool
			m := NewConfirmation()
			m.Show("Remove query b?", true,
				func() tea.Cmd { confirmed = true; return nil },
				func() tea.Cmd { cancelled = true; return nil })

			m.Update(tt.key)

			assert.Equal(t, tt.wantConfirmed, confirmed)
			assert.Equal(t, tt.wantCancelled, cancelled)
			assert.Equal(t, tt.wantActive, m.Active())
		})
	}
}

func TestConfirmationModel_View(t *testing.T) {
	m := NewConfirmation()
	assert.Empty(t, m.View(80))

	m.Show("Remove query b?", false, nil, nil)
	view := stripansi.Strip(m.View(0))
	assert.Equal(t, "Remove query b? [y]es / [n]o", view)

	m.Update(runes("y"))
	assert.False(t, m.Active())
	assert.Empty(t, m.View(80))
}
