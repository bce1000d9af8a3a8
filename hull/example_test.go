package hull_test

import (
	"fmt"

	"github.com/go-hull/hull3d/geom"
	"github.com/go-hull/hull3d/hull"
)

// ExampleBuildConvexHull_tetrahedron builds the hull of four points already
// in general position: every input point ends up a hull vertex.
func ExampleBuildConvexHull_tetrahedron() {
	points := []geom.Point{
		geom.NewPoint(0, 0, 0),
		geom.NewPoint(1, 0, 0),
		geom.NewPoint(0, 1, 0),
		geom.NewPoint(0, 0, 1),
	}

	d, err := hull.BuildConvexHull(points)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	v, e, f := d.EulerCounts()
	fmt.Println("V:", v, "E:", e, "F:", f)
	// Output:
	// V: 4 E: 6 F: 4
}

// ExampleBuildConvexHull_interiorPoint shows that a point strictly inside
// the hull of the remaining input, and not picked for the seed tetrahedron,
// is never promoted to a DCEL vertex at all: it has no face to see at its
// turn, so it is left out entirely. With this seed it is not a seed point.
func ExampleBuildConvexHull_interiorPoint() {
	points := []geom.Point{
		geom.NewPoint(0, 0, 0), geom.NewPoint(1, 0, 0),
		geom.NewPoint(1, 1, 0), geom.NewPoint(0, 1, 0),
		geom.NewPoint(0, 0, 1), geom.NewPoint(1, 0, 1),
		geom.NewPoint(1, 1, 1), geom.NewPoint(0, 1, 1),
		geom.NewPoint(0.5, 0.5, 0.5),
	}

	d, err := hull.BuildConvexHull(points, hull.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("vertices in DCEL:", d.VertexCount())
	// Output:
	// vertices in DCEL: 8
}

// ExampleBuildConvexHull_allCollinear shows the error kind surfaced when no
// seed triangle can be formed from the input.
func ExampleBuildConvexHull_allCollinear() {
	points := []geom.Point{
		geom.NewPoint(0, 0, 0), geom.NewPoint(1, 0, 0),
		geom.NewPoint(2, 0, 0), geom.NewPoint(3, 0, 0),
	}

	_, err := hull.BuildConvexHull(points)
	fmt.Println(err)
	// Output:
	// hull: all points are collinear
}
