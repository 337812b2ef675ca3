// Package domain contains the core entities of the Ouro engine: labeled
// transformation steps, the validated closed chain they form, and the
// execution results produced by driving text through that chain.
//
// The package has no dependencies on adapters or I/O. A Chain is validated
// once at construction and is immutable afterwards; results and history are
// created fresh per execution and owned by the caller.
package domain
