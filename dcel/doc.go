// Package dcel implements a doubly-connected edge list over three indexed,
// append-mostly collections: vertices, half-edges and faces. Every
// cross-reference (twin, next, prev, incident face, incident half-edge) is a
// plain index into one of those three slices, never a pointer; NoIndex (-1)
// marks a reference that is not set.
//
// Indices are stable for the lifetime of a DCEL: nothing is ever physically
// removed. "Deletion" flips an InConvexHull flag to false, since the
// conflict graph (package conflict) holds onto face and vertex indices
// across the hull construction and must never see one reused for a
// different entity.
//
// Accessors (GetVertex, GetHalfEdge, GetFace) return copies. Mutating a returned copy
// never changes the store; every mutation goes through an explicit Set*
// method keyed by index. This asymmetry is intentional: it forces callers
// through the setters so the three slices stay the single source of truth.
//
// The store enforces none of the topological invariants documented on
// Vertex/HalfEdge/Face itself; it is a typed record of indices. Callers
// (the hull package) are responsible for calling setters in an order that
// keeps twin/next/prev/face consistent.
package dcel
