// Package hull drives the randomized incremental construction of a 3D
// convex hull on top of the dcel and conflict packages.
//
// BuildConvexHull is the entry point: it shuffles the input (optionally,
// via WithRand/WithSeed), seeds a non-degenerate tetrahedron, builds the
// initial conflict graph, and then processes each remaining point in
// shuffle order, growing the hull by one vertex at a time whenever the
// point sees at least one current face.
//
// Error policy: only sentinel error variables are exported (those in
// errors.go, plus ErrVertexNotOnHull in surface.go).
// Callers branch on them with errors.Is; wrapping happens with %w so the
// sentinel stays recoverable underneath whatever context a method adds.
package hull
