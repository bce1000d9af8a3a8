package dcel_test

import (
	"testing"

	"github.com/go-hull/hull3d/dcel"
	"github.com/go-hull/hull3d/geom"
)

// buildTetrahedron wires up the minimal four-vertex, four-face DCEL by hand,
// the same construction the hull builder's seed phase performs, to exercise
// the store's accessors/mutators and invariant checker in isolation.
func buildTetrahedron(t *testing.T) *dcel.DCEL {
	t.Helper()
	d := dcel.New()

	v0 := d.AddVertex(dcel.Vertex{Coords: geom.NewPoint(0, 0, 0), Incident: dcel.NoIndex})
	v1 := d.AddVertex(dcel.Vertex{Coords: geom.NewPoint(1, 0, 0), Incident: dcel.NoIndex})
	v2 := d.AddVertex(dcel.Vertex{Coords: geom.NewPoint(0, 1, 0), Incident: dcel.NoIndex})
	v3 := d.AddVertex(dcel.Vertex{Coords: geom.NewPoint(0, 0, 1), Incident: dcel.NoIndex})

	type pair struct{ a, b int }
	edges := []pair{{v2, v1}, {v2, v0}, {v2, v3}, {v1, v0}, {v1, v3}, {v0, v3}}

	he := make(map[pair]int)
	for _, e := range edges {
		h0 := d.AddHalfEdge(dcel.HalfEdge{From: e.a, To: e.b, InConvexHull: true})
		h1 := d.AddHalfEdge(dcel.HalfEdge{From: e.b, To: e.a, InConvexHull: true})
		d.SetHalfEdgeTwin(h0, h1)
		d.SetHalfEdgeTwin(h1, h0)
		he[pair{e.a, e.b}] = h0
		he[pair{e.b, e.a}] = h1
	}

	cycle := func(a, b, c int) int {
		h0, h1, h2 := he[pair{a, b}], he[pair{b, c}], he[pair{c, a}]
		d.SetHalfEdgeNext(h0, h1)
		d.SetHalfEdgeNext(h1, h2)
		d.SetHalfEdgeNext(h2, h0)
		d.SetHalfEdgePrev(h0, h2)
		d.SetHalfEdgePrev(h1, h0)
		d.SetHalfEdgePrev(h2, h1)
		f := d.AddFace(dcel.Face{Inner: h0, InConvexHull: true})
		d.SetHalfEdgeFace(h0, f)
		d.SetHalfEdgeFace(h1, f)
		d.SetHalfEdgeFace(h2, f)
		return f
	}

	cycle(v2, v1, v0)
	cycle(v2, v3, v1)
	cycle(v2, v0, v3)
	cycle(v0, v1, v3)

	d.SetVertexIncident(v0, he[pair{v0, v3}])
	d.SetVertexIncident(v1, he[pair{v1, v0}])
	d.SetVertexIncident(v2, he[pair{v2, v1}])
	d.SetVertexIncident(v3, he[pair{v3, v2}])
	for _, v := range []int{v0, v1, v2, v3} {
		d.SetVertexInConvexHull(v, true)
	}

	return d
}

func TestDCEL_AccessorReturnsCopy(t *testing.T) {
	d := dcel.New()
	idx := d.AddVertex(dcel.Vertex{Coords: geom.NewPoint(1, 2, 3)})

	v := d.GetVertex(idx)
	v.Coords = geom.NewPoint(9, 9, 9)

	if got := d.GetVertex(idx).Coords; got != geom.NewPoint(1, 2, 3) {
		t.Errorf("mutating a returned Vertex copy leaked into the store: got %v", got)
	}
}

func TestDCEL_SettersOutOfRange(t *testing.T) {
	d := dcel.New()
	if d.SetVertexIncident(5, 0) {
		t.Error("SetVertexIncident on an out-of-range index should return false")
	}
	if d.SetHalfEdgeTwin(0, 1) {
		t.Error("SetHalfEdgeTwin on an out-of-range index should return false")
	}
	if d.SetFaceInConvexHull(0, true) {
		t.Error("SetFaceInConvexHull on an out-of-range index should return false")
	}
}

func TestDCEL_TetrahedronInvariants(t *testing.T) {
	d := buildTetrahedron(t)
	if err := d.CheckInvariants(); err != nil {
		t.Fatalf("unexpected invariant violation: %v", err)
	}

	v, e, f := d.EulerCounts()
	if v != 4 || e != 6 || f != 4 {
		t.Errorf("EulerCounts() = (%d,%d,%d), want (4,6,4)", v, e, f)
	}
}

func TestDCEL_FaceVertices(t *testing.T) {
	d := buildTetrahedron(t)
	v0, v1, v2 := d.FaceVertices(0)
	if v0 == v1 || v1 == v2 || v0 == v2 {
		t.Errorf("FaceVertices(0) returned non-distinct vertices: %d %d %d", v0, v1, v2)
	}
}

func TestDCEL_String(t *testing.T) {
	d := buildTetrahedron(t)
	got := d.String()
	if got == "" {
		t.Error("String() returned empty diagnostic summary")
	}
}
