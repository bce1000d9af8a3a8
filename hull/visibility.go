package hull

import (
	"github.com/go-hull/hull3d/dcel"
	"github.com/go-hull/hull3d/geom"
)

// isFaceVisible reports whether point p strictly sees face f: the signed
// volume of the tetrahedron formed by f's three vertices (in next-cycle,
// i.e. outward, order) and p is strictly positive. Points exactly on the
// plane (signed volume = 0) are not visible.
func isFaceVisible(d *dcel.DCEL, f int, p geom.Point) bool {
	v0, v1, v2 := d.FaceVertices(f)
	return geom.SignedVolume(d.VertexCoords(v0), d.VertexCoords(v1), d.VertexCoords(v2), p) > 0
}
