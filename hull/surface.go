package hull

import (
	"errors"

	"github.com/go-hull/hull3d/dcel"
)

// ErrVertexNotOnHull is returned by BFS when the requested start vertex is
// not a node of the SurfaceGraph it was asked to walk.
var ErrVertexNotOnHull = errors.New("hull: start vertex is not on the hull surface")

// SurfaceGraph is the 1-skeleton of a finished hull: its nodes are hull
// vertex indices (dcel.Vertex indices with InConvexHull true) and its
// edges are the hull's in-hull half-edges, weighted by Euclidean length.
// It exists to answer geodesic-over-the-surface queries (BFS) without
// pulling in a general-purpose weighted-graph package for one traversal.
type SurfaceGraph struct {
	adjacency map[int]map[int]float64
}

// NewSurfaceGraph builds the surface graph of a hull's current boundary.
// Every in-hull half-edge contributes one directed adjacency entry; since
// every boundary edge has an in-hull twin, the result is symmetric.
func NewSurfaceGraph(d *dcel.DCEL) *SurfaceGraph {
	g := &SurfaceGraph{adjacency: make(map[int]map[int]float64)}

	for h := 0; h < d.HalfEdgeCount(); h++ {
		he := d.GetHalfEdge(h)
		if !he.InConvexHull {
			continue
		}
		if g.adjacency[he.From] == nil {
			g.adjacency[he.From] = make(map[int]float64)
		}
		length := d.VertexCoords(he.To).Sub(d.VertexCoords(he.From)).Len()
		g.adjacency[he.From][he.To] = length
	}

	return g
}

// Neighbors returns the vertex indices adjacent to v and the edge length
// to each, or nil if v is not a node of the graph.
func (g *SurfaceGraph) Neighbors(v int) map[int]float64 {
	return g.adjacency[v]
}

// HasVertex reports whether v is a node of the graph.
func (g *SurfaceGraph) HasVertex(v int) bool {
	_, ok := g.adjacency[v]
	return ok
}
