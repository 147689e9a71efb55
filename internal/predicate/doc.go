// Package predicate implements the numeric properties the classifier knows
// about. Every function is pure and total over non-negative int64 values and
// works on the decimal representation of its argument unless noted.
package predicate
