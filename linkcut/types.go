// Package linkcut defines the Node handle type, tunable options and
// sentinel errors for the dynamic forest.
package linkcut

import "errors"

// Sentinel errors for forest construction and operations.
var (
	// ErrNilCombine is returned by New when no combine function is supplied.
	ErrNilCombine = errors.New("linkcut: combine function is nil")

	// ErrOptionViolation is returned by New when an invalid Option is supplied.
	ErrOptionViolation = errors.New("linkcut: invalid option supplied")

	// ErrNodeNotFound is returned when a handle is zero, negative,
	// or was never issued by this forest.
	ErrNodeNotFound = errors.New("linkcut: node not found")

	// ErrLinkWouldCycle is returned by Link when both endpoints already
	// belong to the same represented tree.
	ErrLinkWouldCycle = errors.New("linkcut: link would create a cycle")

	// ErrNotAnEdge is returned by Cut when the given pair is not an
	// existing edge of the represented forest.
	ErrNotAnEdge = errors.New("linkcut: not an edge of the forest")

	// ErrDisconnected is returned by path queries whose endpoints lie in
	// different represented trees.
	ErrDisconnected = errors.New("linkcut: nodes are in different trees")
)

// Node is a stable handle to a forest node: an index into the forest arena.
// The zero Node is never issued and acts as the nil sentinel; handles are
// never recycled, since Cut removes edges, not nodes.
type Node int

// nilNode is the arena nil sentinel (slot 0 of every arena).
const nilNode Node = 0

// Option configures forest construction via functional arguments.
// An invalid Option (e.g. negative capacity) is recorded internally and
// surfaced as ErrOptionViolation when New is invoked.
type Option func(*Options)

// Options holds construction parameters for a Forest.
// Use DefaultOptions() to obtain the defaults.
type Options struct {
	// Capacity preallocates arena slots for this many nodes,
	// avoiding regrowth during bulk MakeNode loops. 0 means no preallocation.
	Capacity int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - no preallocation (Capacity == 0)
func DefaultOptions() Options {
	return Options{Capacity: 0}
}

// WithCapacity returns an Option that preallocates arena slots for n nodes.
// Negative n is an option violation.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.Capacity = n
	}
}
