package request

import "github.com/vk/amazingnumbers/internal/registry"

// Kind tells the caller what to do with a parsed line.
type Kind int

const (
	// KindInstructions asks for the instruction banner (blank line).
	KindInstructions Kind = iota
	// KindTerminate ends the session (first parameter is zero).
	KindTerminate
	// KindSingle asks for the full report of one number.
	KindSingle
	// KindSearch asks for Count numbers from Start matching the filters.
	KindSearch
)

func (k Kind) String() string {
	switch k {
	case KindInstructions:
		return "instructions"
	case KindTerminate:
		return "terminate"
	case KindSingle:
		return "single"
	case KindSearch:
		return "search"
	default:
		return "unknown"
	}
}

// Request is the structured form of one input line.
type Request struct {
	Kind  Kind
	Start int64
	// Count, Include and Exclude are only set for KindSearch.
	Count   int64
	Include registry.Set
	Exclude registry.Set
}
