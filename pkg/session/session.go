// Package session replays scripted interactions against a query set. A
// script is a YAML list of actions, each naming exactly one operation.
package session

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/siglens/metrics-explorer/pkg/models"
	"github.com/siglens/metrics-explorer/pkg/queryset"
)

var ErrInvalidAction = errors.New("invalid action")

// Script is an ordered list of actions
type Script struct {
	Actions []Action `yaml:"actions"`
}

// Action holds one operation. Exactly one field must be set.
type Action struct {
	Add      *Empty  `yaml:"add,omitempty"`
	Remove   *Target `yaml:"remove,omitempty"`
	Select   *Target `yaml:"select,omitempty"`
	Deselect *Target `yaml:"deselect,omitempty"`
	Input    *Target `yaml:"input,omitempty"`
	Activate *Target `yaml:"activate,omitempty"`
	Alias    *Target `yaml:"alias,omitempty"`
	Formula  *Target `yaml:"formula,omitempty"`
}

// Empty is the argument of actions that take none
type Empty struct{}

// Target addresses a row, a field of it, or a formula
type Target struct {
	Row   string `yaml:"row,omitempty"`
	Field string `yaml:"field,omitempty"`
	Value string `yaml:"value,omitempty"`
	ID    int    `yaml:"id,omitempty"`
}

// Kind returns the name of the operation the action performs
func (a Action) Kind() string {
	var kinds []string
	if a.Add != nil {
		kinds = append(kinds, "add")
	}
	if a.Remove != nil {
		kinds = append(kinds, "remove")
	}
	if a.Select != nil {
		kinds = append(kinds, "select")
	}
	if a.Deselect != nil {
		kinds = append(kinds, "deselect")
	}
	if a.Input != nil {
		kinds = append(kinds, "input")
	}
	if a.Activate != nil {
		kinds = append(kinds, "activate")
	}
	if a.Alias != nil {
		kinds = append(kinds, "alias")
	}
	if a.Formula != nil {
		kinds = append(kinds, "formula")
	}
	if len(kinds) != 1 {
		return ""
	}
	return kinds[0]
}

// Load parses a script
func Load(r io.Reader) (*Script, error) {
	var script Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&script); err != nil {
		if errors.Is(err, io.EOF) {
			return &script, nil
		}
		return nil, fmt.Errorf("failed to parse session script: %w", err)
	}

	for i, action := range script.Actions {
		if action.Kind() == "" {
			return nil, fmt.Errorf("action %d: %w: expected exactly one operation", i, ErrInvalidAction)
		}
	}
	return &script, nil
}

// LoadFile parses the script at path
func LoadFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open session script: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Apply runs the actions of script against m in order. The first failure
// is logged and returned with the index of the failing action. Actions
// before it stay applied.
func Apply(m *queryset.Manager, script *Script, log zerolog.Logger) error {
	if script == nil {
		return nil
	}

	for i, action := range script.Actions {
		if err := apply(m, action); err != nil {
			log.Error().Err(err).Int("action", i).Str("kind", action.Kind()).Msg("session action failed")
			return fmt.Errorf("action %d (%s): %w", i, action.Kind(), err)
		}
	}
	return nil
}

func apply(m *queryset.Manager, a Action) error {
	switch a.Kind() {
	case "add":
		m.AddRow()
		return nil

	case "remove":
		if !m.RemoveRow(a.Remove.Row) {
			return fmt.Errorf("%w: %q", models.ErrUnknownRow, a.Remove.Row)
		}
		return nil

	case "select":
		f, err := queryset.ParseField(a.Select.Field)
		if err != nil {
			return err
		}
		return m.Select(a.Select.Row, f, a.Select.Value)

	case "deselect":
		f, err := queryset.ParseField(a.Deselect.Field)
		if err != nil {
			return err
		}
		return m.Deselect(a.Deselect.Row, f, a.Deselect.Value)

	case "input":
		f, err := queryset.ParseField(a.Input.Field)
		if err != nil {
			return err
		}
		return m.SetInput(a.Input.Row, f, a.Input.Value)

	case "activate":
		f, err := queryset.ParseField(a.Activate.Field)
		if err != nil {
			return err
		}
		_, err = m.Activate(a.Activate.Row, f)
		return err

	case "alias":
		if a.Alias.Value == "" {
			return m.CloseAlias(a.Alias.Row)
		}
		return m.SetAlias(a.Alias.Row, a.Alias.Value)

	case "formula":
		// An id edits an existing formula, otherwise a new one is added
		id := a.Formula.ID
		if id == 0 {
			f, err := m.AddFormula()
			if err != nil {
				return err
			}
			id = f.ID
		}
		return m.SetFormula(id, a.Formula.Value)
	}

	return ErrInvalidAction
}
