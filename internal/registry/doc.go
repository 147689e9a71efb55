// Package registry provides the fixed catalog of number properties.
//
// The Registry maps the property names typed by users (e.g., "EVEN", "-spy")
// to the compiled predicates in package predicate. It also holds the pairs of
// properties that can never hold together, which the request validator uses
// to reject filter combinations no number could satisfy.
//
// The catalog is closed: every Property is declared here at compile time and
// a Registry is immutable once constructed. During application startup the
// registry is validated so that the catalog, its orderings and its exclusion
// pairs stay in sync.
package registry
