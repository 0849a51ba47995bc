// Package topomap builds a topological map of an environment explored one
// grid cell at a time, and answers "where is the nearest place worth going"
// queries over it.
//
// A mobile robot reports each cell it occupies together with the cardinal
// directions it found impassable there; topomap incrementally grows a graph
// of discrete locations, merges repeated visits to the same physical spot,
// keeps the four-way links between neighboring locations symmetric, and
// computes shortest paths to the closest node that still has unexplored
// directions (a frontier) or that hosts a detected object.
//
// Everything is organized under three subpackages:
//
//	graph/    — Node & Graph types, placement, merging, four-way connectivity
//	spatial/  — R-tree nearest-node index, drop-in for the default linear scan
//	pathfind/ — single-source shortest paths to predicate-selected goals
//
// Quick ASCII example of a partially explored map:
//
//	    ⊙
//	    │
//	0───1───2
//
// nodes 0, 1, 2 were placed travelling west→east, an object node ⊙ hangs
// north of node 1, and every other perpendicular direction is still unknown.
//
// topomap is a pure library: it owns no transport, persistence, or robot
// control. A higher-level service layer invokes it and carries node and path
// data to the rest of the robot software.
package topomap
