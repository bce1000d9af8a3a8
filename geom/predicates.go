package geom

// SignedVolume computes (up to the fixed scale and sign convention spelled
// out below) the determinant of the 4x4 matrix whose rows are
// (a.x, a.y, a.z, 1), (b.x, b.y, b.z, 1), (c.x, c.y, c.z, 1) and
// (d.x, d.y, d.z, 1).
//
// Subtracting row a from the other three rows does not change a
// determinant, and expanding the resulting matrix along its now-mostly-zero
// last column reduces the 4x4 determinant to minus the 3x3 determinant of
// the edge vectors (b-a), (c-a), (d-a). This function returns that 3x3
// determinant — their scalar triple product, i.e. the 4x4 determinant with
// its sign flipped — using mgl64's Sub/Cross/Dot instead of a literal 4x4
// cofactor expansion; the flipped sign is what gives the convention below.
//
// Sign convention: positive when d lies on the same side of plane(a,b,c) as
// the outward normal of the triangle (a,b,c) traversed counter-clockwise
// when viewed from outside. A face with vertices (v0,v1,v2) in next order is
// visible from point p iff SignedVolume(v0,v1,v2,p) > 0.
func SignedVolume(a, b, c, d Point) float64 {
	ab := Sub(b, a)
	ac := Sub(c, a)
	ad := Sub(d, a)

	return ab.Dot(Cross(ac, ad))
}

// Collinear2D is the scalar a.x*(b.y-c.y) + b.x*(c.y-a.y) + c.x*(a.y-b.y);
// zero iff a, b and c are collinear in their xy-projection.
//
// This is a weak test: it only looks at x and y, so it can spuriously report
// collinearity for three points whose xy-projections line up even though
// they are not collinear in 3D (for instance, whenever a and b share x and
// y, it returns zero for every c). It is used exclusively
// by the hull seed phase, never for general-purpose 3D collinearity.
func Collinear2D(a, b, c Point) float64 {
	return a.X()*(b.Y()-c.Y()) + b.X()*(c.Y()-a.Y()) + c.X()*(a.Y()-b.Y())
}
