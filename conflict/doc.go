// Package conflict implements the bipartite conflict graph the hull builder
// uses to answer "which faces does point p see?" and "which outstanding
// points see face f?" queries in time linear in the answer.
//
// State is two parallel adjacency-list sides, one keyed by point index
// (pointSide) and one keyed by face index (faceSide); Link is idempotent,
// and RemoveFaceNode/RemovePointNode tear down both sides of every edge
// touching the removed node. Order within an adjacency list is never
// meaningful.
//
// Grounded directly on conflict_graph.cpp/conflict_node.cpp from the
// original C++ engine: f_conflict/p_conflict there are this package's
// pointSide/faceSide, and conflict_node's add_arch/remove_arch are Link
// and the two Remove*Node methods.
package conflict
