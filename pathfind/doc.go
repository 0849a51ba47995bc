// Package pathfind computes single-source shortest paths over a topological
// map to the nearest node satisfying a caller-supplied predicate — the two
// stock goals being "still has an unexplored direction" (frontier) and
// "hosts a detected object".
//
// Edge weight is the squared Euclidean distance between linked node
// positions. Two relaxation engines are available:
//
//   - Default: min-heap Dijkstra with lazy decrease-key — exact shortest
//     paths for arbitrary non-negative weights.
//   - WithLegacyQueue: a FIFO-ordered relaxation that re-enqueues a node
//     whenever its tentative distance improves but never reprocesses a
//     visited node. This reproduces, bug-for-bug, the behavior of the
//     original robot navigation stack; on non-uniform weights it can
//     overestimate distances and therefore pick a different (non-optimal)
//     goal than the exact engine. On uniform grids the two agree.
//
// After relaxation the nodes are scanned in id order and the qualifying node
// with the minimum finite distance is selected (ties to lowest id); the path
// source..goal inclusive is reconstructed from predecessor links. When no
// qualifying node is reachable the search reports ErrNoQualifyingNode
// rather than guessing a goal.
//
// Searches operate on an atomic snapshot of the graph and never hold its
// lock while computing.
//
// Complexity:
//
//   - Default engine: O((V + E) log V) time, O(V + E) space.
//   - Legacy engine:  O(V·E) worst-case time, O(V) space.
package pathfind
