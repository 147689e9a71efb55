package presenter

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/vk/amazingnumbers/internal/registry"
)

const instructions = `Welcome to Amazing Numbers!

Supported requests:
- enter a natural number to know its properties;
- enter two natural numbers to obtain the properties of the list:
  * the first parameter represents a starting number;
  * the second parameter shows how many consecutive numbers are to be processed;
- two natural numbers and properties to search for;
- a property preceded by minus must not be present in numbers;
- separate the parameters with one space;
- enter 0 to exit.

`

// labelWidth fits the longest label, "palindromic", with one leading space.
const labelWidth = 12

// Presenter writes everything the user sees to a single writer.
type Presenter struct {
	out io.Writer
	reg *registry.Registry
}

// New creates a Presenter writing to out.
func New(out io.Writer, reg *registry.Registry) *Presenter {
	return &Presenter{out: out, reg: reg}
}

// FormatNumber renders n with comma thousands separators, e.g. 1,234,567.
func FormatNumber(n int64) string {
	return humanize.Comma(n)
}

// Instructions prints the usage banner.
func (p *Presenter) Instructions() error {
	_, err := io.WriteString(p.out, instructions)
	return err
}

// Prompt prints the request prompt without a trailing newline.
func (p *Presenter) Prompt(prompt string) error {
	_, err := io.WriteString(p.out, prompt)
	return err
}

// Goodbye prints the farewell line.
func (p *Presenter) Goodbye() error {
	_, err := fmt.Fprintln(p.out, "Goodbye!")
	return err
}

// Error prints a user-facing diagnostic.
func (p *Presenter) Error(err error) error {
	_, werr := fmt.Fprintln(p.out, err.Error())
	return werr
}

// Report prints every property of n, one labeled line each.
func (p *Presenter) Report(n int64) error {
	var b strings.Builder
	fmt.Fprintf(&b, "\nProperties of %s\n", FormatNumber(n))
	for _, prop := range p.reg.ReportOrder() {
		fmt.Fprintf(&b, "%*s: %t\n", labelWidth, prop.Label(), p.reg.Evaluate(n, prop))
	}
	b.WriteString("\n")
	_, err := io.WriteString(p.out, b.String())
	return err
}

// Describe returns the one-line summary of n, e.g. "7 is odd, buzz, palindromic".
func (p *Presenter) Describe(n int64) string {
	held := p.reg.Held(n)
	labels := make([]string, len(held))
	for i, prop := range held {
		labels[i] = prop.Label()
	}
	return FormatNumber(n) + " is " + strings.Join(labels, ", ")
}

// Line prints Describe(n) followed by a newline.
func (p *Presenter) Line(n int64) error {
	_, err := fmt.Fprintln(p.out, p.Describe(n))
	return err
}
