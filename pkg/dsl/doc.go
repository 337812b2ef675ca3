// Package dsl provides a fluent builder for assembling chains in Go code,
// as an alternative to YAML manifests.
package dsl
