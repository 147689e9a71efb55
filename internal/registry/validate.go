package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/amazingnumbers/internal/ctxlog"
)

// ValidateRegistry performs a strict consistency check of the catalog.
// It checks that every property has a name and a predicate, that both
// output orderings list each property exactly once, and that every
// exclusion pair joins two distinct catalog properties.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for i := 0; i < numProperties; i++ {
		p := Property(i)
		if p.Name() == "" {
			errs = append(errs, fmt.Sprintf("property #%d has no name", i))
		}
		if r.predicates[p] == nil {
			errs = append(errs, fmt.Sprintf("property '%s' has no predicate", p))
		}
		if got, ok := r.byName[p.Name()]; !ok || got != p {
			errs = append(errs, fmt.Sprintf("property '%s' is not reachable by name", p))
		}
	}

	errs = append(errs, checkOrdering("display order", displayOrder)...)
	errs = append(errs, checkOrdering("report order", reportOrder)...)

	seen := make(map[Pair]struct{}, len(r.exclusions))
	for _, pr := range r.exclusions {
		if !pr[0].valid() || !pr[1].valid() {
			errs = append(errs, fmt.Sprintf("exclusion pair %v references a property outside the catalog", pr))
			continue
		}
		if pr[0] == pr[1] {
			errs = append(errs, fmt.Sprintf("exclusion pair %v excludes a property from itself", pr))
			continue
		}
		if _, dup := seen[pr]; dup {
			errs = append(errs, fmt.Sprintf("exclusion pair %v is declared twice", pr))
		}
		if _, dup := seen[Pair{pr[1], pr[0]}]; dup {
			errs = append(errs, fmt.Sprintf("exclusion pair %v is declared twice in reverse", pr))
		}
		seen[pr] = struct{}{}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Debug("Registry validation passed.", "properties", numProperties, "exclusion_pairs", len(r.exclusions))
	return nil
}

func checkOrdering(name string, order []Property) []string {
	var errs []string
	if len(order) != numProperties {
		errs = append(errs, fmt.Sprintf("%s lists %d properties, catalog has %d", name, len(order), numProperties))
	}
	var seen [numProperties]bool
	for _, p := range order {
		if !p.valid() {
			errs = append(errs, fmt.Sprintf("%s contains an unknown property %d", name, int(p)))
			continue
		}
		if seen[p] {
			errs = append(errs, fmt.Sprintf("%s lists '%s' twice", name, p))
		}
		seen[p] = true
	}
	return errs
}
