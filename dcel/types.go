package dcel

import "github.com/go-hull/hull3d/geom"

// NoIndex marks the absence of an index reference (e.g. a vertex with no
// incident half-edge yet).
const NoIndex = -1

// Vertex is a point in 3-space plus its DCEL bookkeeping.
type Vertex struct {
	Coords geom.Point

	// Incident is the index of one half-edge whose From is this vertex, or
	// NoIndex if the vertex has none yet.
	Incident int

	// Normal is the averaged, renormalized normal of the incident in-hull
	// faces. It is a rendering concern and is left at its zero value unless
	// ComputeNormals is called.
	Normal geom.Vector

	// InConvexHull marks whether this vertex currently bounds the hull. It is
	// false in the zero value; the hull builder sets it when a vertex joins
	// the boundary and clears it when a later insertion swallows the vertex,
	// and off.Load sets it for every vertex it reads.
	InConvexHull bool

	// Cardinality is a generic incidence counter carried as part of the
	// DCEL's broader contract; the hull builder does not read or write it.
	Cardinality int
}

// HalfEdge is one of the two oppositely-directed edges created for each
// undirected mesh edge.
type HalfEdge struct {
	From, To         int // vertex indices
	Twin, Next, Prev int // half-edge indices
	Face             int // face index
	InConvexHull     bool
}

// Face is a triangular boundary face. Its three vertices are obtained by
// walking Next three times starting at Inner.
type Face struct {
	Inner  int // index of one bounding half-edge
	Normal geom.Vector

	// Outer is a second bounding half-edge index, carried as part of the
	// DCEL's broader contract for faces with an outer boundary distinct
	// from Inner (e.g. a face with holes); the hull builder only ever
	// produces plain triangles, so it never reads or writes this field,
	// the same way Cardinality is unused on Vertex.
	Outer        int
	InConvexHull bool
}
