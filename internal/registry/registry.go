package registry

import (
	"slices"
	"strings"

	"github.com/vk/amazingnumbers/internal/predicate"
)

var propertyLabels = func() [numProperties]string {
	var labels [numProperties]string
	for i, name := range propertyNames {
		labels[i] = strings.ToLower(name)
	}
	return labels
}()

// Registry holds the property catalog for a single application instance.
// It is safe for concurrent reads; nothing mutates it after New returns.
type Registry struct {
	predicates [numProperties]predicate.Func
	byName     map[string]Property
	names      []string
	exclusions []Pair
}

// New creates a Registry populated with the full, fixed catalog.
func New() *Registry {
	r := &Registry{
		predicates: [numProperties]predicate.Func{
			Even:        predicate.Even,
			Odd:         predicate.Odd,
			Buzz:        predicate.Buzz,
			Duck:        predicate.Duck,
			Palindromic: predicate.Palindromic,
			Gapful:      predicate.Gapful,
			Spy:         predicate.Spy,
			Square:      predicate.Square,
			Sunny:       predicate.Sunny,
			Jumping:     predicate.Jumping,
			Happy:       predicate.Happy,
			Sad:         predicate.Sad,
		},
		byName:     make(map[string]Property, numProperties),
		exclusions: slices.Clone(exclusionPairs),
	}
	for i, name := range propertyNames {
		r.byName[name] = Property(i)
		r.names = append(r.names, name)
	}
	slices.Sort(r.names)
	return r
}

// Lookup resolves a property name regardless of case.
func (r *Registry) Lookup(name string) (Property, bool) {
	p, ok := r.byName[strings.ToUpper(name)]
	return p, ok
}

// IsValidName reports whether name, compared case-insensitively, is in the catalog.
func (r *Registry) IsValidName(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Evaluate runs the predicate of p against n. Properties outside the catalog
// never hold.
func (r *Registry) Evaluate(n int64, p Property) bool {
	if !p.valid() || r.predicates[p] == nil {
		return false
	}
	return r.predicates[p](n)
}

// EvaluateName is Evaluate keyed by name. Unknown names return false, so
// callers should check IsValidName first when the difference matters.
func (r *Registry) EvaluateName(n int64, name string) bool {
	p, ok := r.Lookup(name)
	if !ok {
		return false
	}
	return r.Evaluate(n, p)
}

// ExclusionPairs returns the mutual-exclusion pairs in catalog order.
func (r *Registry) ExclusionPairs() []Pair {
	return slices.Clone(r.exclusions)
}

// Names returns every canonical property name, sorted alphabetically.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// DisplayOrder returns the catalog in the order used for one-line descriptions.
func (r *Registry) DisplayOrder() []Property {
	return slices.Clone(displayOrder)
}

// ReportOrder returns the catalog in the order of the full single-number report.
func (r *Registry) ReportOrder() []Property {
	return slices.Clone(reportOrder)
}

// Held returns the properties n has, in display order.
func (r *Registry) Held(n int64) []Property {
	var held []Property
	for _, p := range displayOrder {
		if r.Evaluate(n, p) {
			held = append(held, p)
		}
	}
	return held
}
