package dcel

import (
	"fmt"
)

// CheckInvariants verifies the structural invariants that must hold after
// every full build (and, in an instrumented build, after every insertion
// step): twin/next/prev symmetry, triangular faces, and Euler's formula for
// a triangulated convex polytope (V - E + F = 2).
//
// It returns the first violation found as a plain error. BuildConvexHull
// reports such a failure as hull.ErrTopologyInvariantViolation with this
// error's message appended, so callers can recognize it distinctly from
// ordinary construction failures.
func (d *DCEL) CheckInvariants() error {
	for h := range d.halfEdges {
		he := d.halfEdges[h]
		if !he.InConvexHull {
			continue
		}
		twin := d.halfEdges[he.Twin]
		if twin.Twin != h {
			return fmt.Errorf("half-edge %d: twin(twin(h)) != h", h)
		}
		if twin.From != he.To || twin.To != he.From {
			return fmt.Errorf("half-edge %d: twin endpoints not reversed", h)
		}
		prevOfNext := d.halfEdges[he.Next].Prev
		if prevOfNext != h {
			return fmt.Errorf("half-edge %d: prev(next(h)) != h", h)
		}
		nextOfPrev := d.halfEdges[he.Prev].Next
		if nextOfPrev != h {
			return fmt.Errorf("half-edge %d: next(prev(h)) != h", h)
		}
		if d.halfEdges[he.Next].From != he.To {
			return fmt.Errorf("half-edge %d: from(next(h)) != to(h)", h)
		}
		if d.halfEdges[he.Next].Face != he.Face {
			return fmt.Errorf("half-edge %d: face(h) != face(next(h))", h)
		}
	}

	for f := range d.faces {
		if !d.faces[f].InConvexHull {
			continue
		}
		h0, h1, h2 := d.FaceHalfEdges(f)
		if !d.halfEdges[h0].InConvexHull || !d.halfEdges[h1].InConvexHull || !d.halfEdges[h2].InConvexHull {
			return fmt.Errorf("face %d: not all three bounding half-edges are in-hull", f)
		}
		if d.halfEdges[h2].Next != h0 {
			return fmt.Errorf("face %d: next-cycle does not close after three edges", f)
		}
	}

	v, e, fN := d.EulerCounts()
	if v-e+fN != 2 {
		return fmt.Errorf("euler's formula violated: V=%d E=%d F=%d, V-E+F=%d (want 2)", v, e, fN, v-e+fN)
	}

	for vi := range d.vertices {
		if !d.vertices[vi].InConvexHull {
			continue
		}
		if !d.vertexHasInHullFace(vi) {
			return fmt.Errorf("vertex %d: in-hull but belongs to no in-hull face", vi)
		}
	}

	return nil
}

// EulerCounts returns the (V, E, F) triple used in the V - E + F = 2 check:
// the number of in-hull vertices, undirected edges (in-hull half-edges / 2),
// and in-hull faces.
func (d *DCEL) EulerCounts() (v, e, f int) {
	for i := range d.vertices {
		if d.vertices[i].InConvexHull {
			v++
		}
	}
	for i := range d.halfEdges {
		if d.halfEdges[i].InConvexHull {
			e++
		}
	}
	for i := range d.faces {
		if d.faces[i].InConvexHull {
			f++
		}
	}
	return v, e / 2, f
}

func (d *DCEL) vertexHasInHullFace(v int) bool {
	for h := range d.halfEdges {
		he := d.halfEdges[h]
		if he.InConvexHull && he.From == v && d.faces[he.Face].InConvexHull {
			return true
		}
	}
	return false
}
