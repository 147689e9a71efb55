package registry

// Property identifies one entry of the property catalog.
type Property int

// The catalog, declared in display order.
const (
	Even Property = iota
	Odd
	Buzz
	Duck
	Palindromic
	Gapful
	Spy
	Square
	Sunny
	Jumping
	Happy
	Sad

	numProperties int = iota
)

var propertyNames = [numProperties]string{
	Even:        "EVEN",
	Odd:         "ODD",
	Buzz:        "BUZZ",
	Duck:        "DUCK",
	Palindromic: "PALINDROMIC",
	Gapful:      "GAPFUL",
	Spy:         "SPY",
	Square:      "SQUARE",
	Sunny:       "SUNNY",
	Jumping:     "JUMPING",
	Happy:       "HAPPY",
	Sad:         "SAD",
}

// Name returns the canonical upper-case name, e.g. "PALINDROMIC".
func (p Property) Name() string {
	if !p.valid() {
		return ""
	}
	return propertyNames[p]
}

// Label returns the lower-case form used in reports, e.g. "palindromic".
func (p Property) Label() string {
	if !p.valid() {
		return ""
	}
	return propertyLabels[p]
}

// String implements fmt.Stringer.
func (p Property) String() string {
	if !p.valid() {
		return "Property(invalid)"
	}
	return propertyNames[p]
}

func (p Property) valid() bool {
	return p >= 0 && int(p) < numProperties
}

// Pair is a mutual-exclusion pair: no number has both properties.
type Pair [2]Property

// Contains reports whether p is one of the pair's members.
func (pr Pair) Contains(p Property) bool {
	return pr[0] == p || pr[1] == p
}

var exclusionPairs = []Pair{
	{Even, Odd},
	{Duck, Spy},
	{Square, Sunny},
	{Happy, Sad},
}

// displayOrder is the order used when describing a single match.
var displayOrder = []Property{
	Even, Odd, Buzz, Duck, Palindromic, Gapful, Spy, Square, Sunny, Jumping, Happy, Sad,
}

// reportOrder is the order of the full single-number report.
var reportOrder = []Property{
	Buzz, Duck, Palindromic, Gapful, Spy, Square, Sunny, Jumping, Happy, Sad, Even, Odd,
}
