package dcel

import "fmt"

// String renders a short diagnostic summary of the store: counts of
// vertices/half-edges/faces, split into in-hull vs. total. Grounded on
// DCEL.hh's describe() in the original C++ source, which dumped the same
// counts for debugging; here it backs test failure output instead of a
// console dump.
func (d *DCEL) String() string {
	vHull, heHull, fHull := 0, 0, 0
	for i := range d.vertices {
		if d.vertices[i].InConvexHull {
			vHull++
		}
	}
	for i := range d.halfEdges {
		if d.halfEdges[i].InConvexHull {
			heHull++
		}
	}
	for i := range d.faces {
		if d.faces[i].InConvexHull {
			fHull++
		}
	}

	return fmt.Sprintf(
		"DCEL{vertices: %d/%d in-hull, half-edges: %d/%d in-hull, faces: %d/%d in-hull}",
		vHull, len(d.vertices), heHull, len(d.halfEdges), fHull, len(d.faces),
	)
}
