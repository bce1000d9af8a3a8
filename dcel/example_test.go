package dcel_test

import (
	"fmt"

	"github.com/go-hull/hull3d/dcel"
	"github.com/go-hull/hull3d/geom"
)

// ExampleDCEL_getReturnsByValue demonstrates the store's deliberate
// get/mutate asymmetry: mutating what GetVertex returns never touches the
// store; only a Set* call does.
func ExampleDCEL_getReturnsByValue() {
	d := dcel.New()
	v := d.AddVertex(dcel.Vertex{Coords: geom.NewPoint(1, 2, 3), Incident: dcel.NoIndex})

	snapshot := d.GetVertex(v)
	snapshot.Coords = geom.NewPoint(9, 9, 9)

	fmt.Println(d.GetVertex(v).Coords)
	// Output:
	// [1 2 3]
}

// ExampleDCEL_CheckInvariants builds, by hand, the smallest possible closed
// triangulated surface wiring can produce — two triangles sharing all three
// edges, like a flattened pillow — and confirms CheckInvariants accepts it.
func ExampleDCEL_CheckInvariants() {
	d := dcel.New()
	v0 := d.AddVertex(dcel.Vertex{Coords: geom.NewPoint(0, 0, 0), Incident: dcel.NoIndex, InConvexHull: true})
	v1 := d.AddVertex(dcel.Vertex{Coords: geom.NewPoint(1, 0, 0), Incident: dcel.NoIndex, InConvexHull: true})
	v2 := d.AddVertex(dcel.Vertex{Coords: geom.NewPoint(0, 1, 0), Incident: dcel.NoIndex, InConvexHull: true})

	h0 := d.AddHalfEdge(dcel.HalfEdge{From: v0, To: v1, InConvexHull: true})
	h1 := d.AddHalfEdge(dcel.HalfEdge{From: v1, To: v2, InConvexHull: true})
	h2 := d.AddHalfEdge(dcel.HalfEdge{From: v2, To: v0, InConvexHull: true})

	t0 := d.AddHalfEdge(dcel.HalfEdge{From: v1, To: v0, InConvexHull: true})
	t1 := d.AddHalfEdge(dcel.HalfEdge{From: v2, To: v1, InConvexHull: true})
	t2 := d.AddHalfEdge(dcel.HalfEdge{From: v0, To: v2, InConvexHull: true})

	d.SetHalfEdgeNext(h0, h1)
	d.SetHalfEdgeNext(h1, h2)
	d.SetHalfEdgeNext(h2, h0)
	d.SetHalfEdgePrev(h1, h0)
	d.SetHalfEdgePrev(h2, h1)
	d.SetHalfEdgePrev(h0, h2)

	d.SetHalfEdgeNext(t0, t2)
	d.SetHalfEdgeNext(t2, t1)
	d.SetHalfEdgeNext(t1, t0)
	d.SetHalfEdgePrev(t2, t0)
	d.SetHalfEdgePrev(t1, t2)
	d.SetHalfEdgePrev(t0, t1)

	d.SetHalfEdgeTwin(h0, t0)
	d.SetHalfEdgeTwin(t0, h0)
	d.SetHalfEdgeTwin(h1, t1)
	d.SetHalfEdgeTwin(t1, h1)
	d.SetHalfEdgeTwin(h2, t2)
	d.SetHalfEdgeTwin(t2, h2)

	front := d.AddFace(dcel.Face{Inner: h0, InConvexHull: true})
	back := d.AddFace(dcel.Face{Inner: t0, InConvexHull: true})
	d.SetHalfEdgeFace(h0, front)
	d.SetHalfEdgeFace(h1, front)
	d.SetHalfEdgeFace(h2, front)
	d.SetHalfEdgeFace(t0, back)
	d.SetHalfEdgeFace(t1, back)
	d.SetHalfEdgeFace(t2, back)

	err := d.CheckInvariants()
	fmt.Println(err)
	// Output:
	// <nil>
}
