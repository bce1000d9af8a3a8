package hull

import (
	"github.com/go-hull/hull3d/dcel"
	"github.com/go-hull/hull3d/geom"
)

// seedGeneralPosition finds four affinely independent points among pts and
// permutes them into positions 0..3: a second point distinct from the
// first, a third not collinear with the first two (xy-projection test),
// and a fourth not coplanar with the first three. pts is reordered in
// place; the rest of the slice (from index 4 on) is left in whatever order
// the search left it.
func seedGeneralPosition(pts []geom.Point) error {
	n := len(pts)

	distinct := -1
	for i := 1; i < n; i++ {
		if !geom.Equal(pts[i], pts[0]) {
			distinct = i
			break
		}
	}
	if distinct < 0 {
		return ErrAllCollinear
	}
	pts[1], pts[distinct] = pts[distinct], pts[1]

	notCollinear := -1
	for i := 2; i < n; i++ {
		if geom.Collinear2D(pts[0], pts[1], pts[i]) != 0 {
			notCollinear = i
			break
		}
	}
	if notCollinear < 0 {
		return ErrAllCollinear
	}
	pts[2], pts[notCollinear] = pts[notCollinear], pts[2]

	notCoplanar := -1
	for i := 3; i < n; i++ {
		if geom.SignedVolume(pts[0], pts[1], pts[2], pts[i]) != 0 {
			notCoplanar = i
			break
		}
	}
	if notCoplanar < 0 {
		return ErrAllCoplanar
	}
	pts[3], pts[notCoplanar] = pts[notCoplanar], pts[3]

	return nil
}

// buildSeedTetrahedron adds the four seed vertices and the four outward-
// oriented triangular faces to d, swapping p1/p2 first if necessary so
// that SignedVolume(p0,p1,p2,p3) <= 0. It returns the four seed face
// indices in creation order.
func buildSeedTetrahedron(d *dcel.DCEL, p0, p1, p2, p3 geom.Point) []int {
	if geom.SignedVolume(p0, p1, p2, p3) > 0 {
		p1, p2 = p2, p1
	}

	v0 := d.AddVertex(dcel.Vertex{Coords: p0, Incident: dcel.NoIndex, InConvexHull: true})
	v1 := d.AddVertex(dcel.Vertex{Coords: p1, Incident: dcel.NoIndex, InConvexHull: true})
	v2 := d.AddVertex(dcel.Vertex{Coords: p2, Incident: dcel.NoIndex, InConvexHull: true})
	v3 := d.AddVertex(dcel.Vertex{Coords: p3, Incident: dcel.NoIndex, InConvexHull: true})

	// With p3 guaranteed on the non-outward side of face (p0,p1,p2), the
	// other three faces pairing p3 with each edge of the base triangle are
	// outward-consistent in this exact vertex order; this is the standard
	// tetrahedron face enumeration (equivalent to the construction used by
	// textbook incremental-hull implementations).
	triangles := [4][3]int{
		{v0, v1, v2},
		{v0, v3, v1},
		{v1, v3, v2},
		{v2, v3, v0},
	}

	type edgeKey struct{ a, b int }
	halfEdgeOf := make(map[edgeKey]int, 12)

	faces := make([]int, 0, 4)
	for _, tri := range triangles {
		var h [3]int
		for i := 0; i < 3; i++ {
			a, b := tri[i], tri[(i+1)%3]
			h[i] = d.AddHalfEdge(dcel.HalfEdge{From: a, To: b, InConvexHull: true})
			halfEdgeOf[edgeKey{a, b}] = h[i]
			d.SetVertexIncident(a, h[i])
		}
		for i := 0; i < 3; i++ {
			d.SetHalfEdgeNext(h[i], h[(i+1)%3])
			d.SetHalfEdgePrev(h[(i+1)%3], h[i])
		}
		f := d.AddFace(dcel.Face{Inner: h[0], InConvexHull: true})
		for i := 0; i < 3; i++ {
			d.SetHalfEdgeFace(h[i], f)
		}
		faces = append(faces, f)
	}

	for key, h := range halfEdgeOf {
		if twinH, ok := halfEdgeOf[edgeKey{key.b, key.a}]; ok {
			d.SetHalfEdgeTwin(h, twinH)
		}
	}

	return faces
}
