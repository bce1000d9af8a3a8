package off

import (
	"bufio"
	"fmt"
	"os"

	"github.com/go-hull/hull3d/dcel"
)

// Save writes d's in-hull boundary to path in OFF format. Vertices not
// currently marked in-hull (interior points swallowed during construction)
// are never written, so the file is renumbered to a dense 0..V-1 range
// independent of the DCEL's internal indices.
func Save(d *dcel.DCEL, path string) error {
	newIndex := make(map[int]int)
	var vertexOrder []int
	for v := 0; v < d.VertexCount(); v++ {
		if d.GetVertex(v).InConvexHull {
			newIndex[v] = len(vertexOrder)
			vertexOrder = append(vertexOrder, v)
		}
	}

	var faceList []int
	for f := 0; f < d.FaceCount(); f++ {
		if d.GetFace(f).InConvexHull {
			faceList = append(faceList, f)
		}
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	fmt.Fprintln(w, "OFF")
	fmt.Fprintf(w, "%d %d 0\n", len(vertexOrder), len(faceList))

	for _, v := range vertexOrder {
		c := d.VertexCoords(v)
		fmt.Fprintf(w, "%g %g %g\n", c.X(), c.Y(), c.Z())
	}
	for _, f := range faceList {
		v0, v1, v2 := d.FaceVertices(f)
		fmt.Fprintf(w, "3 %d %d %d\n", newIndex[v0], newIndex[v1], newIndex[v2])
	}

	return w.Flush()
}
