// Package pathfind types: predicates, options, and sentinel errors.
package pathfind

import (
	"errors"

	"github.com/roverlab/topomap/graph"
)

// Sentinel errors for path searches.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("pathfind: graph is nil")

	// ErrNilPredicate is returned if a nil goal predicate is passed.
	ErrNilPredicate = errors.New("pathfind: predicate is nil")

	// ErrSourceOutOfRange is returned when the source id does not name an
	// existing node of a non-empty graph.
	ErrSourceOutOfRange = errors.New("pathfind: source node id out of range")

	// ErrNoQualifyingNode is returned when no reachable node satisfies the
	// goal predicate. Callers should treat it as "nowhere left to go", not
	// as a failure of the map.
	ErrNoQualifyingNode = errors.New("pathfind: no reachable node satisfies the predicate")
)

// Predicate classifies a node as a qualifying point of interest.
// It must be pure: searches evaluate it against an immutable snapshot.
type Predicate func(graph.Node) bool

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds search parameters.
type Options struct {
	// LegacyQueue selects the FIFO relaxation engine of the original robot
	// stack instead of exact Dijkstra. See the package documentation for
	// how the two can disagree.
	LegacyQueue bool
}

// DefaultOptions returns the stock configuration: exact Dijkstra.
func DefaultOptions() Options {
	return Options{LegacyQueue: false}
}

// WithLegacyQueue selects the FIFO relaxation engine for compatibility with
// the original navigation stack.
func WithLegacyQueue() Option {
	return func(o *Options) { o.LegacyQueue = true }
}
