// Package config defines the format-agnostic settings model for the
// application, along with the Loader interface for reading settings from
// configuration files.
//
// Concrete implementations of the interface, such as for HCL, are provided
// in separate packages.
package config
