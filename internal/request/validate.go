package request

import "github.com/vk/amazingnumbers/internal/registry"

// Validate checks the completed filter sets of a search request for
// contradictions. Only the first conflict is reported: both members of an
// exclusion pair included, then both excluded, then a property that is
// included and excluded at once.
func Validate(req *Request, reg *registry.Registry) error {
	pairs := reg.ExclusionPairs()

	for _, pr := range pairs {
		if req.Include.HasAll(pr) {
			return &ConflictError{Tokens: [2]string{pr[0].Name(), pr[1].Name()}}
		}
	}
	for _, pr := range pairs {
		if req.Exclude.HasAll(pr) {
			return &ConflictError{Tokens: [2]string{"-" + pr[0].Name(), "-" + pr[1].Name()}}
		}
	}
	for _, p := range req.Include.Items() {
		if req.Exclude.Has(p) {
			return &ConflictError{Tokens: [2]string{p.Name(), "-" + p.Name()}}
		}
	}
	return nil
}
