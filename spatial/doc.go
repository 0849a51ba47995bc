// Package spatial provides an R-tree backed nearest-node index satisfying
// graph.Locator.
//
// The default locator in package graph is a linear scan — exact and fast
// enough for the node counts a single exploration session produces. Index
// is the drop-in replacement for larger maps: nearest-neighbor lookups in
// O(log n) instead of O(n), behind the same contract.
//
//	g, err := graph.New(graph.WithLocator(spatial.NewIndex()))
//
// One caveat: R-tree nearest-neighbor tie-breaking is structural, not
// insertion-ordered. Callers that rely on the lowest-id tie rule of the
// linear scan should keep the default locator.
package spatial
