// Package geom provides the exact-enough arithmetic the hull builder needs
// to decide the orientation of a point relative to a plane: 3D points and
// vectors (backed by mgl64.Vec3), the signed volume of a tetrahedron, and a
// weak 2D collinearity test used only while seeding the hull.
//
// Points and vectors share the same underlying representation: both are
// mgl64.Vec3 values. Point arithmetic (subtraction, cross product, length)
// is delegated to mathgl rather than hand-rolled.
//
// Complexity: every function here is O(1).
//
// Errors: none of these functions fail. They return a sign or magnitude;
// callers interpret a zero result as degenerate and retry with a different
// point.
package geom
