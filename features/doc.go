// Package features holds the behaviour scenarios of the query builder,
// written in Gherkin and run with godog.
package features
