// Package search streams the numbers that satisfy a request's filters.
//
// The stream is a lazy iterator over consecutive integers. It has no upper
// bound of its own: a request asking for many numbers of a rare combination
// keeps scanning until it has found them all.
package search
