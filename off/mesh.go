package off

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-hull/hull3d/dcel"
	"github.com/go-hull/hull3d/geom"
)

// Mesh is the result of loading an OFF file: a DCEL with every vertex and
// face it read marked in-hull. Load has no notion of an "outstanding"
// point — every vertex in the file belongs to the mesh.
type Mesh struct {
	DCEL *dcel.DCEL
}

// Load reads path as an OFF triangle mesh and returns the resulting Mesh.
// Every half-edge must find a twin by the time the last face is read;
// otherwise the file describes a non-manifold mesh and ErrMalformedInput
// is returned.
func Load(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedInput, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	header, ok := nextNonEmptyLine(sc)
	if !ok || header != "OFF" {
		return nil, fmt.Errorf("%w: missing OFF header", ErrMalformedInput)
	}

	countsLine, ok := nextNonEmptyLine(sc)
	if !ok {
		return nil, fmt.Errorf("%w: missing counts line", ErrMalformedInput)
	}
	counts := strings.Fields(countsLine)
	if len(counts) < 2 {
		return nil, fmt.Errorf("%w: counts line needs at least nv and nf", ErrMalformedInput)
	}
	nv, err := strconv.Atoi(counts[0])
	if err != nil || nv < 0 {
		return nil, fmt.Errorf("%w: bad vertex count", ErrMalformedInput)
	}
	nf, err := strconv.Atoi(counts[1])
	if err != nil || nf < 0 {
		return nil, fmt.Errorf("%w: bad face count", ErrMalformedInput)
	}

	d := dcel.New()

	for i := 0; i < nv; i++ {
		line, ok := nextNonEmptyLine(sc)
		if !ok {
			return nil, fmt.Errorf("%w: truncated vertex list", ErrMalformedInput)
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: vertex %d needs 3 coordinates", ErrMalformedInput, i)
		}
		x, errX := strconv.ParseFloat(fields[0], 64)
		y, errY := strconv.ParseFloat(fields[1], 64)
		z, errZ := strconv.ParseFloat(fields[2], 64)
		if errX != nil || errY != nil || errZ != nil {
			return nil, fmt.Errorf("%w: vertex %d has a non-numeric coordinate", ErrMalformedInput, i)
		}
		d.AddVertex(dcel.Vertex{Coords: geom.NewPoint(x, y, z), Incident: dcel.NoIndex})
	}

	pending := make(map[int]map[int]int)
	recordEdge := func(a, b, h int) {
		if pending[a] == nil {
			pending[a] = make(map[int]int)
		}
		pending[a][b] = h
	}
	resolveTwin := func(a, b, h int) bool {
		inner, ok := pending[b]
		if !ok {
			return false
		}
		twinH, ok := inner[a]
		if !ok {
			return false
		}
		d.SetHalfEdgeTwin(twinH, h)
		d.SetHalfEdgeTwin(h, twinH)
		delete(inner, a)
		return true
	}

	for i := 0; i < nf; i++ {
		line, ok := nextNonEmptyLine(sc)
		if !ok {
			return nil, fmt.Errorf("%w: truncated face list", ErrMalformedInput)
		}
		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, fmt.Errorf("%w: face %d must list its valence and 3 vertex indices", ErrMalformedInput, i)
		}
		valence, err := strconv.Atoi(fields[0])
		if err != nil || valence != 3 {
			return nil, fmt.Errorf("%w: face %d is not a triangle", ErrMalformedInput, i)
		}

		var vs [3]int
		for k := 0; k < 3; k++ {
			vi, err := strconv.Atoi(fields[k+1])
			if err != nil || vi < 0 || vi >= nv {
				return nil, fmt.Errorf("%w: face %d has an out-of-range vertex index", ErrMalformedInput, i)
			}
			vs[k] = vi
		}

		var h [3]int
		for k := 0; k < 3; k++ {
			h[k] = d.AddHalfEdge(dcel.HalfEdge{From: vs[k], To: vs[(k+1)%3], InConvexHull: true})
		}
		for k := 0; k < 3; k++ {
			a, b := vs[k], vs[(k+1)%3]
			if !resolveTwin(a, b, h[k]) {
				recordEdge(a, b, h[k])
			}
		}
		for k := 0; k < 3; k++ {
			d.SetHalfEdgeNext(h[k], h[(k+1)%3])
			d.SetHalfEdgePrev(h[(k+1)%3], h[k])
		}

		face := d.AddFace(dcel.Face{Inner: h[0], InConvexHull: true})
		for k := 0; k < 3; k++ {
			d.SetHalfEdgeFace(h[k], face)
			if d.GetVertex(vs[k]).Incident == dcel.NoIndex {
				d.SetVertexIncident(vs[k], h[k])
			}
		}
	}

	for _, inner := range pending {
		if len(inner) > 0 {
			return nil, fmt.Errorf("%w: mesh is not manifold, some half-edges have no twin", ErrMalformedInput)
		}
	}

	for v := 0; v < nv; v++ {
		d.SetVertexInConvexHull(v, true)
	}
	d.ComputeNormals()

	return &Mesh{DCEL: d}, nil
}

func nextNonEmptyLine(sc *bufio.Scanner) (string, bool) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line, true
	}
	return "", false
}
