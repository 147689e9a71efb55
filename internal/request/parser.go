package request

import (
	"strconv"
	"strings"

	"github.com/vk/amazingnumbers/internal/registry"
)

// Parse converts a line into a Request. Malformed lines produce a UserError;
// a blank line is not an error but a KindInstructions request.
func Parse(line string, reg *registry.Registry) (*Request, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return &Request{Kind: KindInstructions}, nil
	}

	start, err := strconv.ParseInt(tokens[0], 10, 64)
	if err != nil || start < 0 {
		return nil, &ParamError{Position: 1, Token: tokens[0]}
	}
	if start == 0 {
		return &Request{Kind: KindTerminate}, nil
	}
	if len(tokens) == 1 {
		return &Request{Kind: KindSingle, Start: start}, nil
	}

	count, err := strconv.ParseInt(tokens[1], 10, 64)
	if err != nil || count <= 0 {
		return nil, &ParamError{Position: 2, Token: tokens[1]}
	}

	req := &Request{Kind: KindSearch, Start: start, Count: count}
	if err := collectFilters(req, tokens[2:], reg); err != nil {
		return nil, err
	}
	if err := Validate(req, reg); err != nil {
		return nil, err
	}
	return req, nil
}

// collectFilters fills the include and exclude sets of req. Every unknown
// token is gathered before failing so they can be reported together.
func collectFilters(req *Request, tokens []string, reg *registry.Registry) error {
	var invalid []string
	for _, tok := range tokens {
		name, excluded := strings.CutPrefix(tok, "-")
		p, ok := reg.Lookup(name)
		if !ok {
			invalid = append(invalid, tok)
			continue
		}
		if excluded {
			req.Exclude.Add(p)
		} else {
			req.Include.Add(p)
		}
	}
	if len(invalid) > 0 {
		return &PropertyError{Invalid: invalid, Available: reg.Names()}
	}
	return nil
}
