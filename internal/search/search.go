package search

import (
	"iter"
	"math"

	"github.com/vk/amazingnumbers/internal/registry"
	"github.com/vk/amazingnumbers/internal/request"
)

// Filter is the conjunction applied to every candidate number.
type Filter struct {
	Include registry.Set
	Exclude registry.Set
}

// Engine evaluates filters against the property registry.
type Engine struct {
	reg *registry.Registry
}

// New creates an Engine backed by reg.
func New(reg *registry.Registry) *Engine {
	return &Engine{reg: reg}
}

// Match reports whether n has every included property and none of the
// excluded ones. Both checks stop at the first deciding property.
func (e *Engine) Match(n int64, f Filter) bool {
	for i := range f.Include.Len() {
		if !e.reg.Evaluate(n, f.Include.At(i)) {
			return false
		}
	}
	for i := range f.Exclude.Len() {
		if e.reg.Evaluate(n, f.Exclude.At(i)) {
			return false
		}
	}
	return true
}

// Stream yields every n >= start that matches f, in increasing order. The
// sequence ends only when the consumer stops or the int64 range runs out.
func (e *Engine) Stream(start int64, f Filter) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for n := max(start, 0); ; n++ {
			if e.Match(n, f) && !yield(n) {
				return
			}
			if n == math.MaxInt64 {
				return
			}
		}
	}
}

// Find yields the first req.Count numbers of the request's stream.
func (e *Engine) Find(req *request.Request) iter.Seq[int64] {
	f := Filter{Include: req.Include, Exclude: req.Exclude}
	return func(yield func(int64) bool) {
		if req.Count <= 0 {
			return
		}
		var found int64
		for n := range e.Stream(req.Start, f) {
			if !yield(n) {
				return
			}
			found++
			if found == req.Count {
				return
			}
		}
	}
}
