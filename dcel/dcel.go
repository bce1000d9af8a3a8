package dcel

// DCEL is a typed record of indices: three append-mostly slices and the
// accessors/mutators that read and write them by index. It enforces no
// topological invariants of its own (see doc.go); those are the hull
// builder's responsibility.
type DCEL struct {
	vertices  []Vertex
	halfEdges []HalfEdge
	faces     []Face
}

// New returns an empty DCEL.
func New() *DCEL {
	return &DCEL{}
}

// VertexCount returns the number of vertices ever added.
func (d *DCEL) VertexCount() int { return len(d.vertices) }

// HalfEdgeCount returns the number of half-edges ever added.
func (d *DCEL) HalfEdgeCount() int { return len(d.halfEdges) }

// FaceCount returns the number of faces ever added.
func (d *DCEL) FaceCount() int { return len(d.faces) }

// AddVertex appends v and returns its index.
func (d *DCEL) AddVertex(v Vertex) int {
	d.vertices = append(d.vertices, v)
	return len(d.vertices) - 1
}

// AddHalfEdge appends he and returns its index.
func (d *DCEL) AddHalfEdge(he HalfEdge) int {
	d.halfEdges = append(d.halfEdges, he)
	return len(d.halfEdges) - 1
}

// AddFace appends f and returns its index.
func (d *DCEL) AddFace(f Face) int {
	d.faces = append(d.faces, f)
	return len(d.faces) - 1
}

// GetVertex returns a copy of the vertex at index i. Mutating the returned
// value does not affect the store; use the Set* methods in mutators.go.
func (d *DCEL) GetVertex(i int) Vertex { return d.vertices[i] }

// GetHalfEdge returns a copy of the half-edge at index i.
func (d *DCEL) GetHalfEdge(i int) HalfEdge { return d.halfEdges[i] }

// GetFace returns a copy of the face at index i.
func (d *DCEL) GetFace(i int) Face { return d.faces[i] }

func (d *DCEL) validVertex(i int) bool  { return i >= 0 && i < len(d.vertices) }
func (d *DCEL) validHalfEdge(i int) bool { return i >= 0 && i < len(d.halfEdges) }
func (d *DCEL) validFace(i int) bool    { return i >= 0 && i < len(d.faces) }
