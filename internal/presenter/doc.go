// Package presenter renders classifier results and diagnostics as text.
package presenter
