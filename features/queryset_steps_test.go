package features

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/cucumber/godog"

	"github.com/siglens/metrics-explorer/pkg/models"
	"github.com/siglens/metrics-explorer/pkg/queryset"
	"github.com/siglens/metrics-explorer/pkg/render"
)

// querySetContext holds the state of one scenario
type querySetContext struct {
	manager    *queryset.Manager
	remembered []string
}

func splitList(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func (c *querySetContext) anEmptyQuerySet() error {
	c.manager = queryset.New(nil)
	c.remembered = nil
	return nil
}

func (c *querySetContext) iAddARow() error {
	c.manager.AddRow()
	return nil
}

func (c *querySetContext) iRemoveRow(name string) error {
	c.manager.RemoveRow(name)
	return nil
}

func (c *querySetContext) theRowsAre(list string) error {
	want := splitList(list)
	got := c.manager.Names()
	if !reflect.DeepEqual(want, got) {
		return fmt.Errorf("expected rows %v, got %v", want, got)
	}

	html, err := render.Queries(c.manager.Snapshot())
	if err != nil {
		return err
	}
	if n := strings.Count(html, `<div class="metrics-query"`); n != len(want) {
		return fmt.Errorf("expected %d rendered rows, got %d", len(want), n)
	}
	return nil
}

func (c *querySetContext) theCloseIconIs(state string) error {
	html, err := render.Queries(c.manager.Snapshot())
	if err != nil {
		return err
	}

	visible := strings.Count(html, `<div class="remove-query">X</div>`)
	hidden := strings.Count(html, `<div class="remove-query" style="display: none;">X</div>`)

	switch state {
	case "visible":
		if !c.manager.CloseIconVisible() || hidden != 0 || visible != c.manager.Len() {
			return fmt.Errorf("expected the close icon on every row, %d visible and %d hidden", visible, hidden)
		}
	case "hidden":
		if c.manager.CloseIconVisible() || visible != 0 {
			return fmt.Errorf("expected no close icon, %d visible", visible)
		}
	}
	return nil
}

func (c *querySetContext) theVisualizationSlotsAre(list string) error {
	want := splitList(list)
	got := []string{}
	for _, slot := range c.manager.Slots() {
		got = append(got, slot.Query)
	}
	if !reflect.DeepEqual(want, got) {
		return fmt.Errorf("expected slots %v, got %v", want, got)
	}
	return nil
}

func (c *querySetContext) theFullWidthClassIs(state string) error {
	html, err := render.Graphs(c.manager.Snapshot())
	if err != nil {
		return err
	}

	present := strings.Contains(html, "full-width")
	if present != (state == "present") {
		return fmt.Errorf("expected the full-width class to be %s in %s", state, html)
	}
	return nil
}

func (c *querySetContext) iSelect(field, value, name string) error {
	f, err := queryset.ParseField(field)
	if err != nil {
		return err
	}
	return c.manager.Select(name, f, value)
}

func (c *querySetContext) selectingFails(field, value, name string) error {
	err := c.iSelect(field, value, name)
	if !errors.Is(err, models.ErrNotCandidate) {
		return fmt.Errorf("expected the selection to be rejected, got %v", err)
	}
	return nil
}

func (c *querySetContext) iRemoveChip(field, value, name string) error {
	f, err := queryset.ParseField(field)
	if err != nil {
		return err
	}
	return c.manager.Deselect(name, f, value)
}

func (c *querySetContext) iSetTheAlias(name, alias string) error {
	return c.manager.SetAlias(name, alias)
}

func (c *querySetContext) row(name string) (models.QueryRow, error) {
	row, ok := c.manager.Row(name)
	if !ok {
		return models.QueryRow{}, fmt.Errorf("row %s does not exist", name)
	}
	return row, nil
}

func (c *querySetContext) rowHasValue(name, field, value string) error {
	row, err := c.row(name)
	if err != nil {
		return err
	}

	var got string
	switch field {
	case "metric":
		got = row.Metric
	case "aggregation":
		got = string(row.Aggregation)
	case "alias":
		got = row.Alias
	case "scope":
		got = strings.Join(row.Scope, ",")
	case "group_by":
		got = strings.Join(row.GroupBy, ",")
	}
	if got != value {
		return fmt.Errorf("expected %s of row %s to be %q, got %q", field, name, value, got)
	}
	return nil
}

func (c *querySetContext) rowHasNo(name, field string) error {
	return c.rowHasValue(name, field, "")
}

func (c *querySetContext) rowShowsChip(name, field, value string) error {
	v, ok := c.manager.Snapshot().Row(name)
	if !ok {
		return fmt.Errorf("row %s does not exist", name)
	}
	html, err := render.Row(v, c.manager.CloseIconVisible())
	if err != nil {
		return err
	}

	class := "tag"
	if field == "group_by" {
		class = "value"
	}
	chip := fmt.Sprintf(`<span class="%s">%s<span class="close">×</span></span>`, class, value)
	if !strings.Contains(html, chip) {
		return fmt.Errorf("expected chip %q in %s", chip, html)
	}
	return nil
}

func (c *querySetContext) search(field, name, term string) ([]string, error) {
	f, err := queryset.ParseField(field)
	if err != nil {
		return nil, err
	}
	return c.manager.Search(name, f, term)
}

func (c *querySetContext) theSearchIncludes(field, name, mode, value string) error {
	results, err := c.search(field, name, "")
	if err != nil {
		return err
	}

	found := false
	for _, r := range results {
		if r == value {
			found = true
		}
	}
	if found != (mode == "includes") {
		return fmt.Errorf("expected %s search on row %s to %s %q, got %v", field, name, strings.TrimSuffix(mode, "s"), value, results)
	}
	return nil
}

func (c *querySetContext) theSearchForReturns(field, name, term, list string) error {
	results, err := c.search(field, name, term)
	if err != nil {
		return err
	}
	if want := splitList(list); !reflect.DeepEqual(want, results) {
		return fmt.Errorf("expected %v for %q, got %v", want, term, results)
	}
	return nil
}

func (c *querySetContext) theInputHasPlaceholder(field, name, placeholder string) error {
	f, err := queryset.ParseField(field)
	if err != nil {
		return err
	}
	w, err := c.manager.Widget(name, f)
	if err != nil {
		return err
	}
	if got := w.Placeholder(); got != placeholder {
		return fmt.Errorf("expected placeholder %q, got %q", placeholder, got)
	}
	return nil
}

func (c *querySetContext) theInputHasNoPlaceholder(field, name string) error {
	return c.theInputHasPlaceholder(field, name, "")
}

func (c *querySetContext) iRememberThePool(field, name string) error {
	results, err := c.search(field, name, "")
	if err != nil {
		return err
	}
	c.remembered = results
	return nil
}

func (c *querySetContext) thePoolHasTheRememberedTags(field, name string) error {
	results, err := c.search(field, name, "")
	if err != nil {
		return err
	}

	want := append([]string{}, c.remembered...)
	got := append([]string{}, results...)
	sort.Strings(want)
	sort.Strings(got)
	if !reflect.DeepEqual(want, got) {
		return fmt.Errorf("expected pool %v, got %v", c.remembered, results)
	}
	return nil
}

// InitializeQuerySetScenario registers the query set steps
func InitializeQuerySetScenario(sc *godog.ScenarioContext) {
	c := &querySetContext{}

	sc.Step(`^an empty query set$`, c.anEmptyQuerySet)
	sc.Step(`^I add a row$`, c.iAddARow)
	sc.Step(`^I remove row "([^"]*)"$`, c.iRemoveRow)
	sc.Step(`^the rows are "([^"]*)"$`, c.theRowsAre)
	sc.Step(`^the close icon is (visible|hidden)$`, c.theCloseIconIs)
	sc.Step(`^the visualization slots are "([^"]*)"$`, c.theVisualizationSlotsAre)
	sc.Step(`^the full-width class is (present|absent)$`, c.theFullWidthClassIs)

	sc.Step(`^I select (metric|aggregation|scope|group_by) "([^"]*)" on row "([^"]*)"$`, c.iSelect)
	sc.Step(`^selecting (metric|aggregation|scope|group_by) "([^"]*)" on row "([^"]*)" fails$`, c.selectingFails)
	sc.Step(`^I remove (scope|group_by) "([^"]*)" from row "([^"]*)"$`, c.iRemoveChip)
	sc.Step(`^I set the alias of row "([^"]*)" to "([^"]*)"$`, c.iSetTheAlias)

	sc.Step(`^row "([^"]*)" has (metric|aggregation|alias|scope|group_by) "([^"]*)"$`, c.rowHasValue)
	sc.Step(`^row "([^"]*)" has no (metric|alias|scope|group_by)$`, c.rowHasNo)
	sc.Step(`^row "([^"]*)" shows the (scope|group_by) chip "([^"]*)"$`, c.rowShowsChip)

	sc.Step(`^the (metric|scope|group_by) search on row "([^"]*)" (includes|excludes) "([^"]*)"$`, c.theSearchIncludes)
	sc.Step(`^the (metric|aggregation|scope|group_by) search on row "([^"]*)" for "([^"]*)" returns "([^"]*)"$`, c.theSearchForReturns)
	sc.Step(`^the (scope|group_by) input on row "([^"]*)" has placeholder "([^"]*)"$`, c.theInputHasPlaceholder)
	sc.Step(`^the (scope|group_by) input on row "([^"]*)" has no placeholder$`, c.theInputHasNoPlaceholder)

	sc.Step(`^I remember the (scope|group_by) pool of row "([^"]*)"$`, c.iRememberThePool)
	sc.Step(`^the (scope|group_by) pool of row "([^"]*)" has the remembered tags$`, c.thePoolHasTheRememberedTags)
}
