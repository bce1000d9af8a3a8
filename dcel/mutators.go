package dcel

import "github.com/go-hull/hull3d/geom"

// This file holds the field-level mutators keyed by index. Each returns
// false (and changes nothing) when the index is out of range; this mirrors
// the DCEL accessor contract documented in doc.go. There is no other way
// to mutate a stored Vertex/HalfEdge/Face than through one of these.

// SetVertexIncident sets the incident half-edge index of vertex v.
func (d *DCEL) SetVertexIncident(v, he int) bool {
	if !d.validVertex(v) {
		return false
	}
	d.vertices[v].Incident = he
	return true
}

// SetVertexNormal sets the normal of vertex v.
func (d *DCEL) SetVertexNormal(v int, n geom.Vector) bool {
	if !d.validVertex(v) {
		return false
	}
	d.vertices[v].Normal = n
	return true
}

// SetVertexInConvexHull sets the InConvexHull flag of vertex v.
func (d *DCEL) SetVertexInConvexHull(v int, b bool) bool {
	if !d.validVertex(v) {
		return false
	}
	d.vertices[v].InConvexHull = b
	return true
}

// SetVertexCardinality sets the cardinality counter of vertex v.
func (d *DCEL) SetVertexCardinality(v, card int) bool {
	if !d.validVertex(v) {
		return false
	}
	d.vertices[v].Cardinality = card
	return true
}

// IncVertexCardinality increments the cardinality counter of vertex v and
// returns its new value, or (0, false) if v is out of range.
func (d *DCEL) IncVertexCardinality(v int) (int, bool) {
	if !d.validVertex(v) {
		return 0, false
	}
	d.vertices[v].Cardinality++
	return d.vertices[v].Cardinality, true
}

// DecVertexCardinality decrements the cardinality counter of vertex v and
// returns its new value, or (0, false) if v is out of range.
func (d *DCEL) DecVertexCardinality(v int) (int, bool) {
	if !d.validVertex(v) {
		return 0, false
	}
	d.vertices[v].Cardinality--
	return d.vertices[v].Cardinality, true
}

// SetHalfEdgeFrom sets the From vertex of half-edge he.
func (d *DCEL) SetHalfEdgeFrom(he, from int) bool {
	if !d.validHalfEdge(he) {
		return false
	}
	d.halfEdges[he].From = from
	return true
}

// SetHalfEdgeTo sets the To vertex of half-edge he.
func (d *DCEL) SetHalfEdgeTo(he, to int) bool {
	if !d.validHalfEdge(he) {
		return false
	}
	d.halfEdges[he].To = to
	return true
}

// SetHalfEdgeTwin sets the twin of half-edge he.
func (d *DCEL) SetHalfEdgeTwin(he, twin int) bool {
	if !d.validHalfEdge(he) {
		return false
	}
	d.halfEdges[he].Twin = twin
	return true
}

// SetHalfEdgeNext sets the next half-edge of he.
func (d *DCEL) SetHalfEdgeNext(he, next int) bool {
	if !d.validHalfEdge(he) {
		return false
	}
	d.halfEdges[he].Next = next
	return true
}

// SetHalfEdgePrev sets the prev half-edge of he.
func (d *DCEL) SetHalfEdgePrev(he, prev int) bool {
	if !d.validHalfEdge(he) {
		return false
	}
	d.halfEdges[he].Prev = prev
	return true
}

// SetHalfEdgeFace sets the incident face of half-edge he.
func (d *DCEL) SetHalfEdgeFace(he, f int) bool {
	if !d.validHalfEdge(he) {
		return false
	}
	d.halfEdges[he].Face = f
	return true
}

// SetHalfEdgeInConvexHull sets the InConvexHull flag of half-edge he.
func (d *DCEL) SetHalfEdgeInConvexHull(he int, b bool) bool {
	if !d.validHalfEdge(he) {
		return false
	}
	d.halfEdges[he].InConvexHull = b
	return true
}

// SetFaceInnerHalfEdge sets the bounding half-edge of face f.
func (d *DCEL) SetFaceInnerHalfEdge(f, he int) bool {
	if !d.validFace(f) {
		return false
	}
	d.faces[f].Inner = he
	return true
}

// SetFaceOuterHalfEdge sets the outer bounding half-edge of face f. Like
// Vertex.Cardinality, this is carried for the DCEL's broader contract; the
// hull builder's faces are always plain triangles and never call it.
func (d *DCEL) SetFaceOuterHalfEdge(f, he int) bool {
	if !d.validFace(f) {
		return false
	}
	d.faces[f].Outer = he
	return true
}

// SetFaceNormal sets the normal of face f.
func (d *DCEL) SetFaceNormal(f int, n geom.Vector) bool {
	if !d.validFace(f) {
		return false
	}
	d.faces[f].Normal = n
	return true
}

// SetFaceInConvexHull sets the InConvexHull flag of face f.
func (d *DCEL) SetFaceInConvexHull(f int, b bool) bool {
	if !d.validFace(f) {
		return false
	}
	d.faces[f].InConvexHull = b
	return true
}

// DeleteVertex logically deletes vertex v (InConvexHull = false). Physical
// removal never happens during a hull construction: indices must stay
// stable for the conflict graph.
func (d *DCEL) DeleteVertex(v int) bool { return d.SetVertexInConvexHull(v, false) }

// DeleteHalfEdge logically deletes half-edge he.
func (d *DCEL) DeleteHalfEdge(he int) bool { return d.SetHalfEdgeInConvexHull(he, false) }

// DeleteFace logically deletes face f.
func (d *DCEL) DeleteFace(f int) bool { return d.SetFaceInConvexHull(f, false) }
