package dcel

import "github.com/go-hull/hull3d/geom"

// FaceVertices returns the three vertex indices of face f, obtained by
// walking Next three times starting at f's inner half-edge, in next-cycle
// (i.e. outward-consistent) order.
func (d *DCEL) FaceVertices(f int) (v0, v1, v2 int) {
	h0 := d.faces[f].Inner
	h1 := d.halfEdges[h0].Next
	h2 := d.halfEdges[h1].Next

	return d.halfEdges[h0].From, d.halfEdges[h1].From, d.halfEdges[h2].From
}

// FaceHalfEdges returns the three half-edge indices bounding face f, in
// next-cycle order starting at its inner half-edge.
func (d *DCEL) FaceHalfEdges(f int) (h0, h1, h2 int) {
	h0 = d.faces[f].Inner
	h1 = d.halfEdges[h0].Next
	h2 = d.halfEdges[h1].Next

	return h0, h1, h2
}

// VertexCoords returns the coordinates of vertex v. Convenience wrapper
// around GetVertex for call sites that only need the point.
func (d *DCEL) VertexCoords(v int) geom.Point {
	return d.vertices[v].Coords
}
