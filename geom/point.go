package geom

import "github.com/go-gl/mathgl/mgl64"

// Point is a location in 3-space. It is a plain alias for mgl64.Vec3 so that
// point arithmetic reuses mathgl's vector operations instead of duplicating
// them.
type Point = mgl64.Vec3

// Vector is a displacement in 3-space; same representation as Point.
type Vector = mgl64.Vec3

// NewPoint builds a Point from its three coordinates.
func NewPoint(x, y, z float64) Point {
	return Point{x, y, z}
}

// Sub returns the vector from b to a (a - b).
func Sub(a, b Point) Vector {
	return a.Sub(b)
}

// Cross returns the cross product of two vectors.
func Cross(a, b Vector) Vector {
	return a.Cross(b)
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged (mgl64.Vec3.Normalize does the same rather than dividing by
// zero).
func Normalize(v Vector) Vector {
	if v.Len() == 0 {
		return v
	}
	return v.Normalize()
}

// FaceNormal returns the outward unit normal of the triangle (v0, v1, v2) in
// next-cycle order, computed as cross(v1-v0, v2-v0) normalized.
func FaceNormal(v0, v1, v2 Point) Vector {
	return Normalize(Cross(Sub(v1, v0), Sub(v2, v0)))
}

// Equal reports whether a and b have identical coordinates. There is no
// epsilon here; callers that need a tolerance should compare
// Sub(a, b).Len() themselves.
func Equal(a, b Point) bool {
	return a[0] == b[0] && a[1] == b[1] && a[2] == b[2]
}
