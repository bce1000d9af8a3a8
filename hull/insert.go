package hull

import (
	"fmt"

	"github.com/go-hull/hull3d/conflict"
	"github.com/go-hull/hull3d/dcel"
	"github.com/go-hull/hull3d/geom"
)

// horizonEdge is a half-edge bounding a to-be-removed face whose twin
// belongs to a face that survives the insertion of the current point.
type horizonEdge struct {
	h, faceOld, faceTwin int
}

// insertPoint promotes point index p (visible from at least one current
// face) to a hull vertex: it computes the horizon around p's visible
// faces, hides now-interior vertices, fans new triangles out from p along
// the horizon, stitches the fan's internal twins, rewires the conflict
// graph for the new faces, and tears down the conflict-graph nodes for the
// faces and point just consumed.
//
// It returns an error only if the fan fails to stitch into a closed cycle
// around p, which indicates a topology bug elsewhere in the builder rather
// than a property of the input.
func insertPoint(d *dcel.DCEL, cg *conflict.Graph, pts []geom.Point, p int) error {
	visible := cg.VisibleFaces(p)
	visibleSet := make(map[int]struct{}, len(visible))
	for _, f := range visible {
		visibleSet[f] = struct{}{}
	}

	newV := d.AddVertex(dcel.Vertex{Coords: pts[p], Incident: dcel.NoIndex, InConvexHull: true})

	horizon, candidatesToHide, horizonVertices := computeHorizon(d, visible, visibleSet)

	for f := range visibleSet {
		d.SetFaceInConvexHull(f, false)
	}
	for v := range candidatesToHide {
		if _, onHorizon := horizonVertices[v]; !onHorizon {
			d.SetVertexInConvexHull(v, false)
		}
	}

	needsTwin := buildFan(d, cg, pts, p, newV, horizon)
	if err := stitchTwins(d, needsTwin); err != nil {
		return err
	}

	for _, f := range visible {
		cg.RemoveFaceNode(f)
	}
	cg.RemovePointNode(p)
	return nil
}

// computeHorizon walks the three half-edges of every visible face. An edge
// is a horizon edge iff its twin's face is not itself visible; the other
// (non-horizon) half-edges are retired immediately since their face is
// about to disappear. It also gathers candidatesToHide (every vertex of a
// visible face) and horizonVertices (every vertex touched by a horizon
// edge) so the caller can tell which candidates are now strictly interior.
func computeHorizon(d *dcel.DCEL, visible []int, visibleSet map[int]struct{}) (horizon []horizonEdge, candidatesToHide, horizonVertices map[int]struct{}) {
	candidatesToHide = make(map[int]struct{})
	horizonVertices = make(map[int]struct{})

	for _, f := range visible {
		h0, h1, h2 := d.FaceHalfEdges(f)
		for _, h := range [3]int{h0, h1, h2} {
			he := d.GetHalfEdge(h)
			candidatesToHide[he.From] = struct{}{}

			twin := d.GetHalfEdge(he.Twin)
			if _, twinVisible := visibleSet[twin.Face]; twinVisible {
				d.SetHalfEdgeInConvexHull(h, false)
				continue
			}
			horizon = append(horizon, horizonEdge{h: h, faceOld: f, faceTwin: twin.Face})
			horizonVertices[he.From] = struct{}{}
			horizonVertices[he.To] = struct{}{}
		}
	}
	return horizon, candidatesToHide, horizonVertices
}

// buildFan creates one new triangular face per horizon edge, each sharing
// the horizon edge itself as a base and newV as its apex, and links each
// new face into the conflict graph against the candidate points inherited
// from the two faces that met at that horizon edge. It returns the bag of
// newly created half-edges still needing a twin.
func buildFan(d *dcel.DCEL, cg *conflict.Graph, pts []geom.Point, p, newV int, horizon []horizonEdge) []int {
	needsTwin := make([]int, 0, 2*len(horizon))

	for _, he := range horizon {
		candidates := unionExcluding(cg.VisiblePoints(he.faceOld), cg.VisiblePoints(he.faceTwin), p)

		h := he.h
		old := d.GetHalfEdge(h)
		from, to := old.From, old.To

		h1 := d.AddHalfEdge(dcel.HalfEdge{From: to, To: newV, InConvexHull: true})
		h2 := d.AddHalfEdge(dcel.HalfEdge{From: newV, To: from, InConvexHull: true})

		d.SetHalfEdgeNext(h, h1)
		d.SetHalfEdgeNext(h1, h2)
		d.SetHalfEdgeNext(h2, h)
		d.SetHalfEdgePrev(h1, h)
		d.SetHalfEdgePrev(h2, h1)
		d.SetHalfEdgePrev(h, h2)

		fNew := d.AddFace(dcel.Face{Inner: h, InConvexHull: true})
		d.SetHalfEdgeFace(h, fNew)
		d.SetHalfEdgeFace(h1, fNew)
		d.SetHalfEdgeFace(h2, fNew)

		d.SetVertexIncident(newV, h2)
		d.SetVertexIncident(to, h1)

		cg.AddFaceNode(fNew)
		for _, q := range candidates {
			if isFaceVisible(d, fNew, pts[q]) {
				cg.Link(fNew, q)
			}
		}

		needsTwin = append(needsTwin, h1, h2)
	}

	return needsTwin
}

// stitchTwins pairs up every half-edge in needsTwin with the sibling
// elsewhere in the fan whose endpoints are reversed. The fan forms a
// closed cycle around newV, so every interior edge appears exactly twice;
// finding no sibling for some half-edge means the horizon never closed into
// a cycle, which is an internal invariant violation rather than a
// recoverable condition.
func stitchTwins(d *dcel.DCEL, needsTwin []int) error {
	for len(needsTwin) > 0 {
		a := needsTwin[0]
		rest := needsTwin[1:]
		aEdge := d.GetHalfEdge(a)

		match := -1
		for i, b := range rest {
			bEdge := d.GetHalfEdge(b)
			if aEdge.From == bEdge.To && aEdge.To == bEdge.From {
				match = i
				break
			}
		}
		if match < 0 {
			return fmt.Errorf("%w: half-edge %d has no reversed-endpoint sibling in its fan", ErrTopologyInvariantViolation, a)
		}

		b := rest[match]
		d.SetHalfEdgeTwin(a, b)
		d.SetHalfEdgeTwin(b, a)

		needsTwin = append(rest[:match], rest[match+1:]...)
	}
	return nil
}

// unionExcluding returns the set union of a and b, minus exclude, as a
// slice in unspecified order.
func unionExcluding(a, b []int, exclude int) []int {
	set := make(map[int]struct{}, len(a)+len(b))
	for _, x := range a {
		if x != exclude {
			set[x] = struct{}{}
		}
	}
	for _, x := range b {
		if x != exclude {
			set[x] = struct{}{}
		}
	}
	out := make([]int, 0, len(set))
	for x := range set {
		out = append(out, x)
	}
	return out
}
