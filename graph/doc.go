// Package graph implements the node store, placement & merge engine, and
// connectivity manager of the topological map.
//
// A Graph owns an append-only, densely indexed sequence of Nodes: ids are
// exactly 0..NumNodes()-1, assigned at creation, never reused, never
// removed. Each Node anchors a physical location in a shared planar frame
// and carries four cardinal neighbor slots, each in one of three states:
//
//   - LinkUnknown   — not yet explored
//   - LinkBlocked   — explored, confirmed impassable
//   - LinkConnected — an edge exists to a concrete node id
//
// Two placement flavors exist. PlaceNode merges any observation that falls
// within the merge radius of an existing node (optionally smoothing its
// coordinates toward the new observation); PlaceObject merges only into an
// existing object node, so object detections never silently collapse into
// ordinary traversal nodes.
//
// Connect is the sole writer of neighbor links and always establishes both
// halves of an edge, so the link-symmetry invariant
//
//	nodes[a].Neighbors[d] == b  ⇒  nodes[b].Neighbors[d.Opposite()] == a
//
// holds after every operation.
//
// All public operations are guarded by a single RWMutex: mutations take the
// write lock, reads and snapshots the read lock, so concurrent callers never
// observe a node appended but not yet linked.
package graph
