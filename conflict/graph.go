package conflict

// seedPointSlots is the number of sentinel entries pre-allocated on the
// point side for the tetrahedron's four seed points: those points never
// become outstanding conflict-graph nodes, but pre-sizing lets later point
// indices be used directly as slice offsets without an off-by-four
// translation at every call site.
const seedPointSlots = 4

// Graph is the bipartite point<->face visibility structure. The zero value
// is not usable; construct with New.
type Graph struct {
	// faceSide[f] is the set of outstanding point indices that see face f.
	faceSide []map[int]struct{}

	// pointSide[p] is the set of face indices that point p sees. Indices
	// 0..3 are reserved, empty sentinel slots for the seed tetrahedron's
	// four points.
	pointSide []map[int]struct{}
}

// New returns an empty conflict graph with the four seed-point sentinel
// slots already allocated.
func New() *Graph {
	g := &Graph{
		pointSide: make([]map[int]struct{}, seedPointSlots),
	}
	for i := range g.pointSide {
		g.pointSide[i] = map[int]struct{}{}
	}
	return g
}

// AddFaceNode allocates an empty adjacency slot for face f. Faces are added
// in index order by the hull builder, so f is always len(faceSide).
func (g *Graph) AddFaceNode(f int) {
	for len(g.faceSide) <= f {
		g.faceSide = append(g.faceSide, nil)
	}
	g.faceSide[f] = map[int]struct{}{}
}

// AddPointNode allocates an empty adjacency slot for point p.
func (g *Graph) AddPointNode(p int) {
	for len(g.pointSide) <= p {
		g.pointSide = append(g.pointSide, nil)
	}
	g.pointSide[p] = map[int]struct{}{}
}

// Link records that point p sees face f. Idempotent: linking an existing
// edge is a no-op.
func (g *Graph) Link(f, p int) {
	g.faceSide[f][p] = struct{}{}
	g.pointSide[p][f] = struct{}{}
}

// VisibleFaces returns the face indices that point p sees.
func (g *Graph) VisibleFaces(p int) []int {
	return keys(g.pointSide[p])
}

// VisiblePoints returns the outstanding point indices that see face f.
func (g *Graph) VisiblePoints(f int) []int {
	return keys(g.faceSide[f])
}

// RemoveFaceNode deletes face f: every point that saw f stops seeing it.
// faceSide[f] itself is left as an emptied tombstone rather than removed,
// which avoids a slice-shrinking index shift; nothing reads a removed
// face's conflict set again.
func (g *Graph) RemoveFaceNode(f int) {
	for p := range g.faceSide[f] {
		delete(g.pointSide[p], f)
	}
	g.faceSide[f] = map[int]struct{}{}
}

// RemovePointNode deletes point p: every face that p saw stops being seen
// by it.
func (g *Graph) RemovePointNode(p int) {
	for f := range g.pointSide[p] {
		delete(g.faceSide[f], p)
	}
	g.pointSide[p] = map[int]struct{}{}
}

func keys(s map[int]struct{}) []int {
	out := make([]int, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	return out
}
