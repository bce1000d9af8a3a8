package hull

import (
	"fmt"

	"github.com/go-hull/hull3d/conflict"
	"github.com/go-hull/hull3d/dcel"
	"github.com/go-hull/hull3d/geom"
)

// BuildConvexHull runs the randomized incremental algorithm over points and
// returns the resulting DCEL, whose in-hull faces/vertices/half-edges form
// the triangulated convex hull boundary. It is a total operation: either a
// fully invariant-respecting DCEL comes back, or an error does and the
// returned DCEL is nil.
//
// With no options, insertion order is the input order, which is valid but
// not randomized. Pass WithSeed or WithRand for the algorithm's expected
// O(N log N) behavior on adversarial inputs.
func BuildConvexHull(points []geom.Point, opts ...Option) (*dcel.DCEL, error) {
	if len(points) < 4 {
		return nil, ErrInsufficientPoints
	}

	cfg := newConfig(opts...)

	pts := make([]geom.Point, len(points))
	copy(pts, points)
	if cfg.rng != nil {
		cfg.rng.Shuffle(len(pts), func(i, j int) {
			pts[i], pts[j] = pts[j], pts[i]
		})
	}

	if err := seedGeneralPosition(pts); err != nil {
		return nil, err
	}

	d := dcel.New()
	seedFaces := buildSeedTetrahedron(d, pts[0], pts[1], pts[2], pts[3])

	cg := conflict.New()
	for _, f := range seedFaces {
		cg.AddFaceNode(f)
	}
	for p := 4; p < len(pts); p++ {
		cg.AddPointNode(p)
		for _, f := range seedFaces {
			if isFaceVisible(d, f, pts[p]) {
				cg.Link(f, p)
			}
		}
	}

	for p := 4; p < len(pts); p++ {
		if len(cg.VisibleFaces(p)) == 0 {
			continue
		}
		if err := insertPoint(d, cg, pts, p); err != nil {
			return nil, err
		}
	}

	d.ComputeNormals()

	if err := d.CheckInvariants(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTopologyInvariantViolation, err)
	}

	return d, nil
}
