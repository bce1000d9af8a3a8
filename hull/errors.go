package hull

import "errors"

// ErrInsufficientPoints is returned when fewer than four points are given;
// a convex hull in 3-space needs at least a tetrahedron's worth of input.
var ErrInsufficientPoints = errors.New("hull: need at least four points")

// ErrAllCollinear is returned when every input point lies on a single line,
// so no non-degenerate seed triangle (and therefore no seed tetrahedron)
// can be formed. Because the seed search tests collinearity on the
// xy-projection only, it is also returned for some inputs that are not
// collinear in 3D, such as when the first two seed points share x and y.
var ErrAllCollinear = errors.New("hull: all points are collinear")

// ErrAllCoplanar is returned when every input point lies on a single plane.
// A 3D hull builder cannot seed a tetrahedron from a flat point set.
var ErrAllCoplanar = errors.New("hull: all points are coplanar")

// ErrTopologyInvariantViolation wraps a dcel.CheckInvariants failure
// surfaced after a build, or an internal inconsistency caught mid-insertion
// (e.g. a horizon edge with no twin sibling in its fan). It should never
// occur in practice; seeing it indicates a bug in the incremental insertion
// step rather than bad input.
var ErrTopologyInvariantViolation = errors.New("hull: topology invariant violation")
