package queryset

import "strings"

// OpenAlias swaps the "as..." button of row name for the alias input
func (m *Manager) OpenAlias(name string) error {
	rs, err := m.row(name)
	if err != nil {
		return err
	}
	rs.aliasOpen = true
	return nil
}

// CloseAlias hides the alias input again and drops the alias
func (m *Manager) CloseAlias(name string) error {
	rs, err := m.row(name)
	if err != nil {
		return err
	}
	rs.aliasOpen = false
	rs.record.Alias = ""
	return nil
}

// SetAlias names the result of row name, opening the alias input
func (m *Manager) SetAlias(name, alias string) error {
	rs, err := m.row(name)
	if err != nil {
		return err
	}
	rs.aliasOpen = true
	rs.record.Alias = strings.TrimSpace(alias)

	m.log.Debug().Str("row", name).Str("alias", rs.record.Alias).Msg("alias set")
	return nil
}

// AliasOpen reports whether the alias input of row name is shown
func (m *Manager) AliasOpen(name string) bool {
	rs, ok := m.rows[name]
	return ok && rs.aliasOpen
}
